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

// AdmissionService defines admission ledger operations
type AdmissionService interface {
	// Create records an admission. An empty ConsultantName is resolved from the roster.
	Create(ctx context.Context, in models.Admission) (*models.Admission, error)
	List(ctx context.Context) ([]models.Admission, error)
	ListForConsultant(ctx context.Context, consultantID string) ([]models.Admission, error)
	Update(ctx context.Context, id string, patch models.AdmissionPatch) (*models.Admission, error)
	Delete(ctx context.Context, id string) error
}

type admissionServiceImpl struct {
	store       repositories.AdmissionStore
	credentials CredentialService
	now         func() time.Time
}

// NewAdmissionService creates a new admission service instance
func NewAdmissionService(store repositories.AdmissionStore, credentials CredentialService) AdmissionService {
	return &admissionServiceImpl{store: store, credentials: credentials, now: utcNow}
}

func (s *admissionServiceImpl) Create(ctx context.Context, in models.Admission) (*models.Admission, error) {
	if strings.TrimSpace(in.StudentName) == "" || strings.TrimSpace(in.ConsultantID) == "" {
		return nil, apperrors.NewBadRequestError("student_name and consultant_id are required")
	}

	if in.ConsultantName == "" {
		name, ok := s.credentials.LookupName(in.ConsultantID)
		if !ok {
			return nil, apperrors.NewBadRequestError("Unknown consultant_id; provide consultant_name")
		}
		in.ConsultantName = name
	}
	if in.PayoutStatus == "" {
		in.PayoutStatus = models.PayoutNotCredited
	}

	now := s.now()
	in.ID = uuid.NewString()
	in.CreatedAt = now
	in.UpdatedAt = now

	if err := s.store.Create(ctx, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (s *admissionServiceImpl) List(ctx context.Context) ([]models.Admission, error) {
	return s.store.List(ctx, models.RecordFilter{})
}

func (s *admissionServiceImpl) ListForConsultant(ctx context.Context, consultantID string) ([]models.Admission, error) {
	return s.store.List(ctx, models.RecordFilter{ConsultantID: consultantID})
}

func (s *admissionServiceImpl) Update(ctx context.Context, id string, patch models.AdmissionPatch) (*models.Admission, error) {
	if patch.IsEmpty() {
		return nil, apperrors.NewBadRequestError("No fields to update")
	}
	if err := s.store.Update(ctx, id, patch, s.now()); err != nil {
		return nil, err
	}
	return s.store.GetByID(ctx, id)
}

func (s *admissionServiceImpl) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
