package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eduadvisor/backoffice/internal/app/models"
	"github.com/eduadvisor/backoffice/internal/app/repositories"
	"github.com/eduadvisor/backoffice/internal/pkg/apperrors"
	"github.com/eduadvisor/backoffice/internal/pkg/logger"
	"github.com/eduadvisor/backoffice/internal/pkg/metrics"
)

// ReportInput is the body of a consultant report submission.
type ReportInput struct {
	StudentName               string
	ContactNumber             string
	InstitutionName           string
	CompetitiveExamPreference string
	CareerInterest            string
	CollegeInterest           string
	InterestScope             string
	OtherRemarks              string
}

// ReportService defines consultant report operations
type ReportService interface {
	// Create stores a report and then records a successful call for the same
	// consultant. A failed call append is logged and does not fail the report.
	Create(ctx context.Context, consultantID string, in ReportInput) (*models.ConsultantReport, error)
	ListForConsultant(ctx context.Context, consultantID string) ([]models.ConsultantReport, error)
	ListAll(ctx context.Context) ([]models.ConsultantReport, map[string][]models.ConsultantReport, error)
	Delete(ctx context.Context, id string) error
}

type reportServiceImpl struct {
	reports     repositories.ReportStore
	calls       repositories.CallLogStore
	credentials CredentialService
	now         func() time.Time
}

// NewReportService creates a new report service instance
func NewReportService(reports repositories.ReportStore, calls repositories.CallLogStore, credentials CredentialService) ReportService {
	return &reportServiceImpl{
		reports:     reports,
		calls:       calls,
		credentials: credentials,
		now:         utcNow,
	}
}

func (s *reportServiceImpl) Create(ctx context.Context, consultantID string, in ReportInput) (*models.ConsultantReport, error) {
	name, ok := s.credentials.LookupName(consultantID)
	if !ok {
		return nil, apperrors.NewUnauthorizedError("Invalid consultant ID")
	}

	scope, err := models.ParseInterestScope(in.InterestScope)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.StudentName) == "" || strings.TrimSpace(in.ContactNumber) == "" {
		return nil, apperrors.NewBadRequestError("student_name and contact_number are required")
	}

	now := s.now()
	report := &models.ConsultantReport{
		ID:                        uuid.NewString(),
		ConsultantID:              consultantID,
		ConsultantName:            name,
		StudentName:               in.StudentName,
		ContactNumber:             in.ContactNumber,
		InstitutionName:           in.InstitutionName,
		CompetitiveExamPreference: in.CompetitiveExamPreference,
		CareerInterest:            in.CareerInterest,
		CollegeInterest:           in.CollegeInterest,
		InterestScope:             scope,
		OtherRemarks:              in.OtherRemarks,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return nil, err
	}
	metrics.ReportsCreated.Inc()

	_, err = appendCallLog(ctx, s.calls, now, models.CallLog{
		ConsultantID:   consultantID,
		ConsultantName: name,
		CallType:       models.CallTypeSuccessful,
		StudentName:    in.StudentName,
		ContactNumber:  in.ContactNumber,
		Remarks:        "Auto-logged from detailed report (" + string(scope) + ")",
	})
	if err != nil {
		logger.Warn().Err(err).
			Str("reportID", report.ID).
			Str("consultantID", consultantID).
			Msg("Report saved but the successful call could not be logged")
	}

	return report, nil
}

func (s *reportServiceImpl) ListForConsultant(ctx context.Context, consultantID string) ([]models.ConsultantReport, error) {
	return s.reports.List(ctx, models.RecordFilter{ConsultantID: consultantID})
}

func (s *reportServiceImpl) ListAll(ctx context.Context) ([]models.ConsultantReport, map[string][]models.ConsultantReport, error) {
	reports, err := s.reports.List(ctx, models.RecordFilter{})
	if err != nil {
		return nil, nil, err
	}
	return reports, GroupReportsByConsultantName(reports), nil
}

func (s *reportServiceImpl) Delete(ctx context.Context, id string) error {
	return s.reports.Delete(ctx, id)
}
