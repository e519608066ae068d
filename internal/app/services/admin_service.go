package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/eduadvisor/backoffice/internal/app/models"
	"github.com/eduadvisor/backoffice/internal/app/repositories"
	"github.com/eduadvisor/backoffice/internal/pkg/apperrors"
	"github.com/eduadvisor/backoffice/internal/pkg/auth"
	"github.com/eduadvisor/backoffice/internal/pkg/logger"
)

// DeleteKind names the collections a bulk delete may target.
type DeleteKind string

const (
	DeleteReports    DeleteKind = "reports"
	DeleteCalls      DeleteKind = "calls"
	DeleteQueries    DeleteKind = "queries"
	DeleteAdmissions DeleteKind = "admissions"
	DeleteAll        DeleteKind = "all"
)

// dateLayout is the accepted format of bulk delete date bounds.
const dateLayout = "2006-01-02"

// BulkDeleteRequest describes a bulk delete. StartDate and EndDate are
// YYYY-MM-DD days in UTC; both are inclusive.
type BulkDeleteRequest struct {
	Password     string
	Kind         string
	ConsultantID string
	StartDate    string
	EndDate      string
}

// AdminService defines operations gated by the shared admin secret
type AdminService interface {
	VerifyPassword(password string) error
	BulkDelete(ctx context.Context, req BulkDeleteRequest) (map[string]int64, error)
	DeleteConsultantCalls(ctx context.Context, password, consultantID string) (int64, error)
}

type adminServiceImpl struct {
	secret *auth.SharedSecret
	stores *repositories.Stores
}

// NewAdminService creates a new admin service instance
func NewAdminService(secret *auth.SharedSecret, stores *repositories.Stores) AdminService {
	return &adminServiceImpl{secret: secret, stores: stores}
}

func (s *adminServiceImpl) VerifyPassword(password string) error {
	if !s.secret.Verify(password) {
		return apperrors.NewCustomError(apperrors.ErrInvalidAdminPassword, "Invalid admin password")
	}
	return nil
}

func (s *adminServiceImpl) BulkDelete(ctx context.Context, req BulkDeleteRequest) (map[string]int64, error) {
	if err := s.VerifyPassword(req.Password); err != nil {
		return nil, err
	}

	kind := DeleteKind(strings.ToLower(strings.TrimSpace(req.Kind)))
	targets, err := s.targetsFor(kind)
	if err != nil {
		return nil, err
	}

	filter, err := buildDeleteFilter(req)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(targets))
	for _, t := range targets {
		n, err := t.store.DeleteMatching(ctx, filter)
		if err != nil {
			return counts, fmt.Errorf("failed to delete %s: %w", t.name, err)
		}
		counts[t.name] = n
	}

	logger.Info().
		Str("kind", string(kind)).
		Str("consultantID", filter.ConsultantID).
		Interface("deleted", counts).
		Msg("Bulk delete completed")

	return counts, nil
}

func (s *adminServiceImpl) DeleteConsultantCalls(ctx context.Context, password, consultantID string) (int64, error) {
	if err := s.VerifyPassword(password); err != nil {
		return 0, err
	}
	if strings.TrimSpace(consultantID) == "" {
		return 0, apperrors.NewBadRequestError("consultant_id is required")
	}
	return s.stores.Calls.DeleteMatching(ctx, models.DeleteFilter{ConsultantID: consultantID})
}

type matchDeleter interface {
	DeleteMatching(ctx context.Context, filter models.DeleteFilter) (int64, error)
}

type deleteTarget struct {
	name  string
	store matchDeleter
}

func (s *adminServiceImpl) targetsFor(kind DeleteKind) ([]deleteTarget, error) {
	reports := deleteTarget{"reports", s.stores.Reports}
	calls := deleteTarget{"calls", s.stores.Calls}
	queries := deleteTarget{"queries", s.stores.Inquiries}
	admissions := deleteTarget{"admissions", s.stores.Admissions}

	switch kind {
	case DeleteReports:
		return []deleteTarget{reports}, nil
	case DeleteCalls:
		return []deleteTarget{calls}, nil
	case DeleteQueries:
		return []deleteTarget{queries}, nil
	case DeleteAdmissions:
		return []deleteTarget{admissions}, nil
	case DeleteAll:
		return []deleteTarget{reports, calls, queries, admissions}, nil
	default:
		return nil, apperrors.NewBadRequestError(fmt.Sprintf(
			"Invalid delete_type '%s'. Must be one of: reports, calls, queries, admissions, all", kind))
	}
}

func buildDeleteFilter(req BulkDeleteRequest) (models.DeleteFilter, error) {
	filter := models.DeleteFilter{ConsultantID: strings.TrimSpace(req.ConsultantID)}

	if req.StartDate != "" {
		from, err := time.ParseInLocation(dateLayout, req.StartDate, time.UTC)
		if err != nil {
			return filter, apperrors.NewBadRequestError("Invalid start_date, expected YYYY-MM-DD")
		}
		filter.From = &from
	}
	if req.EndDate != "" {
		end, err := time.ParseInLocation(dateLayout, req.EndDate, time.UTC)
		if err != nil {
			return filter, apperrors.NewBadRequestError("Invalid end_date, expected YYYY-MM-DD")
		}
		to := end.AddDate(0, 0, 1)
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return filter, apperrors.NewBadRequestError("start_date must not be after end_date")
	}
	return filter, nil
}
