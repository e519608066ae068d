package services

import (
	"context"

	"github.com/eduadvisor/backoffice/internal/app/models"
	"github.com/eduadvisor/backoffice/internal/app/repositories"
)

// CatalogService defines read operations on the college and course catalog
type CatalogService interface {
	ListColleges(ctx context.Context) ([]models.College, error)
	GetCollege(ctx context.Context, id string) (*models.College, error)
	ListCourses(ctx context.Context) ([]models.Course, error)
	FindCourse(ctx context.Context, idOrName string) (*models.Course, error)
}

type catalogServiceImpl struct {
	store repositories.CatalogStore
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(store repositories.CatalogStore) CatalogService {
	return &catalogServiceImpl{store: store}
}

func (s *catalogServiceImpl) ListColleges(ctx context.Context) ([]models.College, error) {
	return s.store.ListColleges(ctx)
}

func (s *catalogServiceImpl) GetCollege(ctx context.Context, id string) (*models.College, error) {
	return s.store.GetCollege(ctx, id)
}

func (s *catalogServiceImpl) ListCourses(ctx context.Context) ([]models.Course, error) {
	return s.store.ListCourses(ctx)
}

func (s *catalogServiceImpl) FindCourse(ctx context.Context, idOrName string) (*models.Course, error) {
	return s.store.FindCourse(ctx, idOrName)
}
