package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eduadvisor/backoffice/internal/app/models"
	"github.com/eduadvisor/backoffice/internal/pkg/logger"
)

const callLogsTable = "call_logs"

var callLogColumns = []string{
	"id", "consultant_id", "consultant_name", "call_type",
	"student_name", "contact_number", "remarks", "created_at",
}

// CallLogRepository handles call log database operations
type CallLogRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCallLogRepository creates a new CallLogRepository
func NewCallLogRepository(db *pgxpool.Pool) *CallLogRepository {
	return &CallLogRepository{db: db, sb: newStatementBuilder()}
}

// Create inserts a new call log
func (r *CallLogRepository) Create(ctx context.Context, c *models.CallLog) error {
	sql, args, err := r.sb.Insert(callLogsTable).
		Columns(callLogColumns...).
		Values(c.ID, c.ConsultantID, c.ConsultantName, string(c.CallType),
			c.StudentName, c.ContactNumber, c.Remarks, c.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create call log query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("consultantID", c.ConsultantID).Msg("Error executing create call log query")
		return fmt.Errorf("error creating call log: %w", err)
	}
	return nil
}

// List returns call logs matching filter, newest first
func (r *CallLogRepository) List(ctx context.Context, filter models.RecordFilter) ([]models.CallLog, error) {
	query := r.sb.Select(callLogColumns...).From(callLogsTable).OrderBy("created_at DESC")
	if filter.ConsultantID != "" {
		query = query.Where(squirrel.Eq{"consultant_id": filter.ConsultantID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list call logs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list call logs query")
		return nil, fmt.Errorf("error querying call logs: %w", err)
	}
	defer rows.Close()

	calls := []models.CallLog{}
	for rows.Next() {
		var c models.CallLog
		if err := rows.Scan(&c.ID, &c.ConsultantID, &c.ConsultantName, &c.CallType,
			&c.StudentName, &c.ContactNumber, &c.Remarks, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning call log row: %w", err)
		}
		calls = append(calls, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating call log rows: %w", err)
	}
	return calls, nil
}

// DeleteMatching removes every call log matching filter
func (r *CallLogRepository) DeleteMatching(ctx context.Context, filter models.DeleteFilter) (int64, error) {
	sql, args, err := r.sb.Delete(callLogsTable).Where(deleteConditions(filter, true)).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build bulk delete call logs query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing bulk delete call logs query")
		return 0, fmt.Errorf("error bulk deleting call logs: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
