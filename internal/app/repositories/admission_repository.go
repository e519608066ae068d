package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eduadvisor/backoffice/internal/app/models"
	"github.com/eduadvisor/backoffice/internal/pkg/apperrors"
	"github.com/eduadvisor/backoffice/internal/pkg/logger"
)

const admissionsTable = "admissions"

var admissionColumns = []string{
	"id", "student_name", "course", "college", "admission_date", "consultant_id",
	"consultant_name", "payout_amount", "payout_status", "created_at", "updated_at",
}

// AdmissionRepository handles admission database operations
type AdmissionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAdmissionRepository creates a new AdmissionRepository
func NewAdmissionRepository(db *pgxpool.Pool) *AdmissionRepository {
	return &AdmissionRepository{db: db, sb: newStatementBuilder()}
}

func scanAdmission(row pgx.Row) (*models.Admission, error) {
	a := &models.Admission{}
	err := row.Scan(&a.ID, &a.StudentName, &a.Course, &a.College, &a.AdmissionDate, &a.ConsultantID,
		&a.ConsultantName, &a.PayoutAmount, &a.PayoutStatus, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// Create inserts a new admission
func (r *AdmissionRepository) Create(ctx context.Context, a *models.Admission) error {
	sql, args, err := r.sb.Insert(admissionsTable).
		Columns(admissionColumns...).
		Values(a.ID, a.StudentName, a.Course, a.College, a.AdmissionDate, a.ConsultantID,
			a.ConsultantName, a.PayoutAmount, a.PayoutStatus, a.CreatedAt, a.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create admission query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("consultantID", a.ConsultantID).Msg("Error executing create admission query")
		return fmt.Errorf("error creating admission: %w", err)
	}
	return nil
}

// List returns admissions matching filter, newest first
func (r *AdmissionRepository) List(ctx context.Context, filter models.RecordFilter) ([]models.Admission, error) {
	query := r.sb.Select(admissionColumns...).From(admissionsTable).OrderBy("created_at DESC")
	if filter.ConsultantID != "" {
		query = query.Where(squirrel.Eq{"consultant_id": filter.ConsultantID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list admissions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list admissions query")
		return nil, fmt.Errorf("error querying admissions: %w", err)
	}
	defer rows.Close()

	admissions := []models.Admission{}
	for rows.Next() {
		a, err := scanAdmission(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning admission row: %w", err)
		}
		admissions = append(admissions, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating admission rows: %w", err)
	}
	return admissions, nil
}

// GetByID retrieves an admission by ID
func (r *AdmissionRepository) GetByID(ctx context.Context, id string) (*models.Admission, error) {
	sql, args, err := r.sb.Select(admissionColumns...).
		From(admissionsTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get admission query: %w", err)
	}

	a, err := scanAdmission(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("Admission not found")
		}
		return nil, fmt.Errorf("error getting admission by ID: %w", err)
	}
	return a, nil
}

// Update overwrites the fields set in patch and refreshes updated_at
func (r *AdmissionRepository) Update(ctx context.Context, id string, patch models.AdmissionPatch, updatedAt time.Time) error {
	cols := patch.Columns()
	cols["updated_at"] = updatedAt

	sql, args, err := r.sb.Update(admissionsTable).
		SetMap(cols).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update admission query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("admissionID", id).Msg("Error executing update admission query")
		return fmt.Errorf("error updating admission: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("Admission not found")
	}
	return nil
}

// Delete removes an admission by ID
func (r *AdmissionRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete(admissionsTable).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete admission query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("admissionID", id).Msg("Error executing delete admission query")
		return fmt.Errorf("error deleting admission: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("Admission not found")
	}
	return nil
}

// DeleteMatching removes every admission matching filter
func (r *AdmissionRepository) DeleteMatching(ctx context.Context, filter models.DeleteFilter) (int64, error) {
	sql, args, err := r.sb.Delete(admissionsTable).Where(deleteConditions(filter, true)).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build bulk delete admissions query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing bulk delete admissions query")
		return 0, fmt.Errorf("error bulk deleting admissions: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
