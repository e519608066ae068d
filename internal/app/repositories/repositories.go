package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eduadvisor/backoffice/internal/app/models"
)

// InquiryStore persists student inquiries.
type InquiryStore interface {
	Create(ctx context.Context, q *models.StudentInquiry) error
	List(ctx context.Context) ([]models.StudentInquiry, error)
	GetByID(ctx context.Context, id string) (*models.StudentInquiry, error)
	Update(ctx context.Context, id string, patch models.InquiryPatch, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
	// Inquiries have no owner, so a consultant-scoped filter matches none.
	DeleteMatching(ctx context.Context, filter models.DeleteFilter) (int64, error)
}

// ReportStore persists consultant reports.
type ReportStore interface {
	Create(ctx context.Context, r *models.ConsultantReport) error
	List(ctx context.Context, filter models.RecordFilter) ([]models.ConsultantReport, error)
	GetByID(ctx context.Context, id string) (*models.ConsultantReport, error)
	Delete(ctx context.Context, id string) error
	DeleteMatching(ctx context.Context, filter models.DeleteFilter) (int64, error)
}

// CallLogStore persists call logs.
type CallLogStore interface {
	Create(ctx context.Context, c *models.CallLog) error
	List(ctx context.Context, filter models.RecordFilter) ([]models.CallLog, error)
	DeleteMatching(ctx context.Context, filter models.DeleteFilter) (int64, error)
}

// AdmissionStore persists admissions.
type AdmissionStore interface {
	Create(ctx context.Context, a *models.Admission) error
	List(ctx context.Context, filter models.RecordFilter) ([]models.Admission, error)
	GetByID(ctx context.Context, id string) (*models.Admission, error)
	Update(ctx context.Context, id string, patch models.AdmissionPatch, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
	DeleteMatching(ctx context.Context, filter models.DeleteFilter) (int64, error)
}

// ConsultantStore persists the consultant roster.
type ConsultantStore interface {
	List(ctx context.Context) ([]models.Consultant, error)
	Create(ctx context.Context, c models.Consultant) error
	// Replace overwrites the consultant stored under userID, which may move it to c.UserID.
	Replace(ctx context.Context, userID string, c models.Consultant) error
	Delete(ctx context.Context, userID string) error
}

// CatalogStore serves the read-only college and course catalog.
type CatalogStore interface {
	ListColleges(ctx context.Context) ([]models.College, error)
	GetCollege(ctx context.Context, id string) (*models.College, error)
	ListCourses(ctx context.Context) ([]models.Course, error)
	// FindCourse matches the id exactly or the name case-insensitively.
	FindCourse(ctx context.Context, idOrName string) (*models.Course, error)
	IsEmpty(ctx context.Context) (bool, error)
	Seed(ctx context.Context, colleges []models.College, courses []models.Course) error
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Stores holds one store per collection
type Stores struct {
	Inquiries   InquiryStore
	Reports     ReportStore
	Calls       CallLogStore
	Admissions  AdmissionStore
	Consultants ConsultantStore
	Catalog     CatalogStore
	Health      Pinger
}

// NewPostgresStores initializes all Postgres-backed stores
func NewPostgresStores(db *pgxpool.Pool) *Stores {
	return &Stores{
		Inquiries:   NewInquiryRepository(db),
		Reports:     NewReportRepository(db),
		Calls:       NewCallLogRepository(db),
		Admissions:  NewAdmissionRepository(db),
		Consultants: NewConsultantRepository(db),
		Catalog:     NewCatalogRepository(db),
		Health:      db,
	}
}

func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// deleteConditions turns a DeleteFilter into a WHERE clause. An empty filter matches every row.
func deleteConditions(filter models.DeleteFilter, ownedByConsultant bool) squirrel.And {
	conds := squirrel.And{}
	if ownedByConsultant && filter.ConsultantID != "" {
		conds = append(conds, squirrel.Eq{"consultant_id": filter.ConsultantID})
	}
	if filter.From != nil {
		conds = append(conds, squirrel.GtOrEq{"created_at": *filter.From})
	}
	if filter.To != nil {
		conds = append(conds, squirrel.Lt{"created_at": *filter.To})
	}
	return conds
}
