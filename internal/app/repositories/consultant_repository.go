package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eduadvisor/backoffice/internal/app/models"
	"github.com/eduadvisor/backoffice/internal/pkg/apperrors"
	"github.com/eduadvisor/backoffice/internal/pkg/dberrors"
	"github.com/eduadvisor/backoffice/internal/pkg/logger"
)

const (
	consultantsTable  = "consultants"
	consultantsPKName = "consultants_pkey"
)

// ConsultantRepository handles consultant roster database operations
type ConsultantRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewConsultantRepository creates a new ConsultantRepository
func NewConsultantRepository(db *pgxpool.Pool) *ConsultantRepository {
	return &ConsultantRepository{db: db, sb: newStatementBuilder()}
}

// List returns the roster in creation order
func (r *ConsultantRepository) List(ctx context.Context) ([]models.Consultant, error) {
	sql, args, err := r.sb.Select("user_id", "name", "password").
		From(consultantsTable).
		OrderBy("created_at ASC", "user_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list consultants query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list consultants query")
		return nil, fmt.Errorf("error querying consultants: %w", err)
	}
	defer rows.Close()

	consultants := []models.Consultant{}
	for rows.Next() {
		var c models.Consultant
		if err := rows.Scan(&c.UserID, &c.Name, &c.Password); err != nil {
			return nil, fmt.Errorf("error scanning consultant row: %w", err)
		}
		consultants = append(consultants, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating consultant rows: %w", err)
	}
	return consultants, nil
}

// Create inserts a consultant
func (r *ConsultantRepository) Create(ctx context.Context, c models.Consultant) error {
	sql, args, err := r.sb.Insert(consultantsTable).
		Columns("user_id", "name", "password").
		Values(c.UserID, c.Name, c.Password).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create consultant query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, consultantsPKName) {
			return apperrors.NewCustomError(apperrors.ErrConsultantExists, "Consultant ID already exists")
		}
		logger.Error().Err(err).Str("consultantID", c.UserID).Msg("Error executing create consultant query")
		return fmt.Errorf("error creating consultant: %w", err)
	}
	return nil
}

// Replace moves the consultant stored under userID to c.UserID and c.Password.
// The stored name is never touched.
func (r *ConsultantRepository) Replace(ctx context.Context, userID string, c models.Consultant) error {
	sql, args, err := r.sb.Update(consultantsTable).
		SetMap(map[string]interface{}{
			"user_id":  c.UserID,
			"password": c.Password,
		}).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update consultant query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, consultantsPKName) {
			return apperrors.NewCustomError(apperrors.ErrConsultantExists, "New consultant ID already exists")
		}
		logger.Error().Err(err).Str("consultantID", userID).Msg("Error executing update consultant query")
		return fmt.Errorf("error updating consultant: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewCustomError(apperrors.ErrConsultantNotFound, "Consultant not found")
	}
	return nil
}

// Delete removes a consultant
func (r *ConsultantRepository) Delete(ctx context.Context, userID string) error {
	sql, args, err := r.sb.Delete(consultantsTable).Where(squirrel.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete consultant query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("consultantID", userID).Msg("Error executing delete consultant query")
		return fmt.Errorf("error deleting consultant: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewCustomError(apperrors.ErrConsultantNotFound, "Consultant not found")
	}
	return nil
}
