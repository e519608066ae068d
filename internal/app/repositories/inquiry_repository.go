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

const inquiriesTable = "student_queries"

var inquiryColumns = []string{
	"id", "name", "phone", "email", "current_institution", "course",
	"message", "status", "created_at", "updated_at",
}

// InquiryRepository handles student inquiry database operations
type InquiryRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInquiryRepository creates a new InquiryRepository
func NewInquiryRepository(db *pgxpool.Pool) *InquiryRepository {
	return &InquiryRepository{db: db, sb: newStatementBuilder()}
}

func scanInquiry(row pgx.Row) (*models.StudentInquiry, error) {
	q := &models.StudentInquiry{}
	err := row.Scan(&q.ID, &q.Name, &q.Phone, &q.Email, &q.CurrentInstitution, &q.Course,
		&q.Message, &q.Status, &q.CreatedAt, &q.UpdatedAt)
	return q, err
}

// Create inserts a new inquiry
func (r *InquiryRepository) Create(ctx context.Context, q *models.StudentInquiry) error {
	sql, args, err := r.sb.Insert(inquiriesTable).
		Columns(inquiryColumns...).
		Values(q.ID, q.Name, q.Phone, q.Email, q.CurrentInstitution, q.Course,
			q.Message, string(q.Status), q.CreatedAt, q.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create inquiry query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("queryID", q.ID).Msg("Error executing create inquiry query")
		return fmt.Errorf("error creating inquiry: %w", err)
	}
	return nil
}

// List returns every inquiry, newest first
func (r *InquiryRepository) List(ctx context.Context) ([]models.StudentInquiry, error) {
	sql, args, err := r.sb.Select(inquiryColumns...).
		From(inquiriesTable).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list inquiries query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list inquiries query")
		return nil, fmt.Errorf("error querying inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := []models.StudentInquiry{}
	for rows.Next() {
		q, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning inquiry row: %w", err)
		}
		inquiries = append(inquiries, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inquiry rows: %w", err)
	}
	return inquiries, nil
}

// GetByID retrieves an inquiry by ID
func (r *InquiryRepository) GetByID(ctx context.Context, id string) (*models.StudentInquiry, error) {
	sql, args, err := r.sb.Select(inquiryColumns...).
		From(inquiriesTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get inquiry query: %w", err)
	}

	q, err := scanInquiry(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("Query not found")
		}
		logger.Error().Err(err).Str("queryID", id).Msg("Error scanning inquiry row")
		return nil, fmt.Errorf("error getting inquiry by ID: %w", err)
	}
	return q, nil
}

// Update overwrites the fields set in patch and refreshes updated_at
func (r *InquiryRepository) Update(ctx context.Context, id string, patch models.InquiryPatch, updatedAt time.Time) error {
	cols := patch.Columns()
	cols["updated_at"] = updatedAt

	sql, args, err := r.sb.Update(inquiriesTable).
		SetMap(cols).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update inquiry query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("queryID", id).Msg("Error executing update inquiry query")
		return fmt.Errorf("error updating inquiry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("Query not found")
	}
	return nil
}

// Delete removes an inquiry by ID
func (r *InquiryRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete(inquiriesTable).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete inquiry query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("queryID", id).Msg("Error executing delete inquiry query")
		return fmt.Errorf("error deleting inquiry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("Query not found")
	}
	return nil
}

// DeleteMatching removes every inquiry created inside the filter's date range
func (r *InquiryRepository) DeleteMatching(ctx context.Context, filter models.DeleteFilter) (int64, error) {
	if filter.ConsultantID != "" {
		return 0, nil
	}

	sql, args, err := r.sb.Delete(inquiriesTable).Where(deleteConditions(filter, false)).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build bulk delete inquiries query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing bulk delete inquiries query")
		return 0, fmt.Errorf("error bulk deleting inquiries: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
