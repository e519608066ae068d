package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eduadvisor/backoffice/internal/app/models"
	"github.com/eduadvisor/backoffice/internal/app/repositories"
	"github.com/eduadvisor/backoffice/internal/pkg/apperrors"
)

// InquiryService defines student inquiry operations
type InquiryService interface {
	Create(ctx context.Context, in *models.StudentInquiry) (*models.StudentInquiry, error)
	List(ctx context.Context) ([]models.StudentInquiry, error)
	Get(ctx context.Context, id string) (*models.StudentInquiry, error)
	Update(ctx context.Context, id string, patch models.InquiryPatch) (*models.StudentInquiry, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type inquiryServiceImpl struct {
	store repositories.InquiryStore
	now   func() time.Time
}

// NewInquiryService creates a new inquiry service instance
func NewInquiryService(store repositories.InquiryStore) InquiryService {
	return &inquiryServiceImpl{store: store, now: utcNow}
}

func (s *inquiryServiceImpl) Create(ctx context.Context, in *models.StudentInquiry) (*models.StudentInquiry, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Phone) == "" {
		return nil, apperrors.NewBadRequestError("name and phone are required")
	}

	now := s.now()
	q := *in
	q.ID = uuid.NewString()
	q.Status = models.InquiryStatusNew
	q.CreatedAt = now
	q.UpdatedAt = now

	if err := s.store.Create(ctx, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *inquiryServiceImpl) List(ctx context.Context) ([]models.StudentInquiry, error) {
	return s.store.List(ctx)
}

func (s *inquiryServiceImpl) Get(ctx context.Context, id string) (*models.StudentInquiry, error) {
	return s.store.GetByID(ctx, id)
}

func (s *inquiryServiceImpl) Update(ctx context.Context, id string, patch models.InquiryPatch) (*models.StudentInquiry, error) {
	if err := s.store.Update(ctx, id, patch, s.now()); err != nil {
		return nil, err
	}
	return s.store.GetByID(ctx, id)
}

// UpdateStatus validates status before touching the store, so a rejected value
// leaves the record unchanged.
func (s *inquiryServiceImpl) UpdateStatus(ctx context.Context, id, status string) error {
	parsed, err := models.ParseInquiryStatus(status)
	if err != nil {
		return err
	}
	return s.store.Update(ctx, id, models.InquiryPatch{Status: &parsed}, s.now())
}

func (s *inquiryServiceImpl) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
