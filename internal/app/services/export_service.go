package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/eduadvisor/backoffice/internal/app/models"
	"github.com/eduadvisor/backoffice/internal/app/repositories"
	"github.com/eduadvisor/backoffice/internal/export"
	"github.com/eduadvisor/backoffice/internal/pkg/apperrors"
)

// exportTimeLayout formats timestamps in exported sheets.
const exportTimeLayout = "2006-01-02 15:04:05"

// ExportService renders a collection as an xlsx workbook
type ExportService interface {
	// Export returns the workbook and a download file name for kind, one of
	// queries, reports, calls or admissions.
	Export(ctx context.Context, kind string) ([]byte, string, error)
}

type exportServiceImpl struct {
	stores *repositories.Stores
	now    func() time.Time
}

// NewExportService creates a new export service instance
func NewExportService(stores *repositories.Stores) ExportService {
	return &exportServiceImpl{stores: stores, now: utcNow}
}

func (s *exportServiceImpl) Export(ctx context.Context, kind string) ([]byte, string, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))

	var (
		table export.Table
		err   error
	)
	switch kind {
	case "queries":
		table, err = s.queriesTable(ctx)
	case "reports":
		table, err = s.reportsTable(ctx)
	case "calls":
		table, err = s.callsTable(ctx)
	case "admissions":
		table, err = s.admissionsTable(ctx)
	default:
		return nil, "", apperrors.NewBadRequestError(fmt.Sprintf(
			"Invalid export type '%s'. Must be one of: queries, reports, calls, admissions", kind))
	}
	if err != nil {
		return nil, "", err
	}

	data, err := export.Render(table)
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("%s_%s.xlsx", kind, s.now().Format("2006-01-02")), nil
}

func (s *exportServiceImpl) queriesTable(ctx context.Context) (export.Table, error) {
	queries, err := s.stores.Inquiries.List(ctx)
	if err != nil {
		return export.Table{}, err
	}
	t := export.Table{
		Sheet:  "Queries",
		Header: []string{"Name", "Phone", "Email", "Institution", "Course", "Message", "Status", "Created At"},
	}
	for _, q := range queries {
		t.Rows = append(t.Rows, []interface{}{
			q.Name, q.Phone, q.Email, q.CurrentInstitution, q.Course, q.Message,
			string(q.Status), q.CreatedAt.Format(exportTimeLayout),
		})
	}
	return t, nil
}

func (s *exportServiceImpl) reportsTable(ctx context.Context) (export.Table, error) {
	reports, err := s.stores.Reports.List(ctx, models.RecordFilter{})
	if err != nil {
		return export.Table{}, err
	}
	t := export.Table{
		Sheet: "Reports",
		Header: []string{"Consultant", "Student Name", "Contact Number", "Institution",
			"Exam Preference", "Career Interest", "College Interest", "Interest Scope",
			"Remarks", "Created At"},
	}
	for _, r := range reports {
		t.Rows = append(t.Rows, []interface{}{
			r.ConsultantName, r.StudentName, r.ContactNumber, r.InstitutionName,
			r.CompetitiveExamPreference, r.CareerInterest, r.CollegeInterest,
			string(r.InterestScope), r.OtherRemarks, r.CreatedAt.Format(exportTimeLayout),
		})
	}
	return t, nil
}

func (s *exportServiceImpl) callsTable(ctx context.Context) (export.Table, error) {
	calls, err := s.stores.Calls.List(ctx, models.RecordFilter{})
	if err != nil {
		return export.Table{}, err
	}
	t := export.Table{
		Sheet:  "Calls",
		Header: []string{"Consultant ID", "Consultant", "Call Type", "Student Name", "Contact Number", "Remarks", "Created At"},
	}
	for _, c := range calls {
		t.Rows = append(t.Rows, []interface{}{
			c.ConsultantID, c.ConsultantName, string(c.CallType), c.StudentName,
			c.ContactNumber, c.Remarks, c.CreatedAt.Format(exportTimeLayout),
		})
	}
	return t, nil
}

func (s *exportServiceImpl) admissionsTable(ctx context.Context) (export.Table, error) {
	admissions, err := s.stores.Admissions.List(ctx, models.RecordFilter{})
	if err != nil {
		return export.Table{}, err
	}
	t := export.Table{
		Sheet: "Admissions",
		Header: []string{"Student Name", "Course", "College", "Admission Date",
			"Consultant", "Payout Amount", "Payout Status"},
	}
	for _, a := range admissions {
		t.Rows = append(t.Rows, []interface{}{
			a.StudentName, a.Course, a.College, a.AdmissionDate,
			a.ConsultantName, a.PayoutAmount, a.PayoutStatus,
		})
	}
	return t, nil
}
