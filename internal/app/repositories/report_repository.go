package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eduadvisor/backoffice/internal/app/models"
	"github.com/eduadvisor/backoffice/internal/pkg/apperrors"
	"github.com/eduadvisor/backoffice/internal/pkg/logger"
)

const reportsTable = "consultant_reports"

var reportColumns = []string{
	"id", "consultant_id", "consultant_name", "student_name", "contact_number",
	"institution_name", "competitive_exam_preference", "career_interest",
	"college_interest", "interest_scope", "other_remarks", "created_at", "updated_at",
}

// ReportRepository handles consultant report database operations
type ReportRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{db: db, sb: newStatementBuilder()}
}

func scanReport(row pgx.Row) (*models.ConsultantReport, error) {
	r := &models.ConsultantReport{}
	err := row.Scan(&r.ID, &r.ConsultantID, &r.ConsultantName, &r.StudentName, &r.ContactNumber,
		&r.InstitutionName, &r.CompetitiveExamPreference, &r.CareerInterest,
		&r.CollegeInterest, &r.InterestScope, &r.OtherRemarks, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

// Create inserts a new report
func (r *ReportRepository) Create(ctx context.Context, rep *models.ConsultantReport) error {
	sql, args, err := r.sb.Insert(reportsTable).
		Columns(reportColumns...).
		Values(rep.ID, rep.ConsultantID, rep.ConsultantName, rep.StudentName, rep.ContactNumber,
			rep.InstitutionName, rep.CompetitiveExamPreference, rep.CareerInterest,
			rep.CollegeInterest, string(rep.InterestScope), rep.OtherRemarks, rep.CreatedAt, rep.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create report query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("consultantID", rep.ConsultantID).Msg("Error executing create report query")
		return fmt.Errorf("error creating report: %w", err)
	}
	return nil
}

// List returns reports matching filter, newest first
func (r *ReportRepository) List(ctx context.Context, filter models.RecordFilter) ([]models.ConsultantReport, error) {
	query := r.sb.Select(reportColumns...).From(reportsTable).OrderBy("created_at DESC")
	if filter.ConsultantID != "" {
		query = query.Where(squirrel.Eq{"consultant_id": filter.ConsultantID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list reports query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list reports query")
		return nil, fmt.Errorf("error querying reports: %w", err)
	}
	defer rows.Close()

	reports := []models.ConsultantReport{}
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning report row: %w", err)
		}
		reports = append(reports, *rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report rows: %w", err)
	}
	return reports, nil
}

// GetByID retrieves a report by ID
func (r *ReportRepository) GetByID(ctx context.Context, id string) (*models.ConsultantReport, error) {
	sql, args, err := r.sb.Select(reportColumns...).
		From(reportsTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get report query: %w", err)
	}

	rep, err := scanReport(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("Report not found")
		}
		return nil, fmt.Errorf("error getting report by ID: %w", err)
	}
	return rep, nil
}

// Delete removes a report by ID
func (r *ReportRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete(reportsTable).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete report query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("reportID", id).Msg("Error executing delete report query")
		return fmt.Errorf("error deleting report: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("Report not found")
	}
	return nil
}

// DeleteMatching removes every report matching filter
func (r *ReportRepository) DeleteMatching(ctx context.Context, filter models.DeleteFilter) (int64, error) {
	sql, args, err := r.sb.Delete(reportsTable).Where(deleteConditions(filter, true)).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build bulk delete reports query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing bulk delete reports query")
		return 0, fmt.Errorf("error bulk deleting reports: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
