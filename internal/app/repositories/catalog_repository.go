package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eduadvisor/backoffice/internal/app/models"
	"github.com/eduadvisor/backoffice/internal/db"
	"github.com/eduadvisor/backoffice/internal/pkg/apperrors"
)

const (
	collegesTable = "colleges"
	coursesTable  = "courses"
)

// CatalogRepository serves colleges and courses stored as JSONB documents
type CatalogRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: pool, sb: newStatementBuilder()}
}

// ListColleges returns colleges in seed order
func (r *CatalogRepository) ListColleges(ctx context.Context) ([]models.College, error) {
	return listDocuments[models.College](ctx, r, collegesTable)
}

// GetCollege retrieves a college by ID
func (r *CatalogRepository) GetCollege(ctx context.Context, id string) (*models.College, error) {
	college, err := getDocument[models.College](ctx, r, collegesTable, squirrel.Eq{"id": id})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewResourceNotFoundError("College not found")
	}
	return college, err
}

// ListCourses returns courses in seed order
func (r *CatalogRepository) ListCourses(ctx context.Context) ([]models.Course, error) {
	return listDocuments[models.Course](ctx, r, coursesTable)
}

// FindCourse retrieves a course by ID or case-insensitive name
func (r *CatalogRepository) FindCourse(ctx context.Context, idOrName string) (*models.Course, error) {
	cond := squirrel.Or{
		squirrel.Eq{"id": idOrName},
		squirrel.Expr("LOWER(name) = LOWER(?)", idOrName),
	}
	course, err := getDocument[models.Course](ctx, r, coursesTable, cond)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewResourceNotFoundError("Course not found")
	}
	return course, err
}

// IsEmpty reports whether no college has been seeded yet
func (r *CatalogRepository) IsEmpty(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM "+collegesTable+")").Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking catalog: %w", err)
	}
	return !exists, nil
}

// Seed replaces the catalog in a single transaction
func (r *CatalogRepository) Seed(ctx context.Context, colleges []models.College, courses []models.Course) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, table := range []string{collegesTable, coursesTable} {
			if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("error clearing %s: %w", table, err)
			}
		}
		for i, c := range colleges {
			if err := r.insertDocument(ctx, tx, collegesTable, c.ID, c.Name, i, c); err != nil {
				return err
			}
		}
		for i, c := range courses {
			if err := r.insertDocument(ctx, tx, coursesTable, c.ID, c.Name, i, c); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *CatalogRepository) insertDocument(ctx context.Context, tx pgx.Tx, table, id, name string, position int, doc interface{}) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s document %s: %w", table, id, err)
	}

	sql, args, err := r.sb.Insert(table).
		Columns("id", "name", "position", "document").
		Values(id, name, position, body).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert %s query: %w", table, err)
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error inserting %s document %s: %w", table, id, err)
	}
	return nil
}

func listDocuments[T any](ctx context.Context, r *CatalogRepository, table string) ([]T, error) {
	sql, args, err := r.sb.Select("document").From(table).OrderBy("position ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list %s query: %w", table, err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying %s: %w", table, err)
	}
	defer rows.Close()

	docs := []T{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("error scanning %s row: %w", table, err)
		}
		var doc T
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("error decoding %s document: %w", table, err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", table, err)
	}
	return docs, nil
}

func getDocument[T any](ctx context.Context, r *CatalogRepository, table string, where squirrel.Sqlizer) (*T, error) {
	sql, args, err := r.sb.Select("document").From(table).Where(where).OrderBy("position ASC").Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get %s query: %w", table, err)
	}

	var raw []byte
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("error getting %s document: %w", table, err)
	}

	var doc T
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("error decoding %s document: %w", table, err)
	}
	return &doc, nil
}
