// Package memstore is an in-process implementation of the persistence gateway.
// It backs unit tests and the database.driver=memory mode; nothing survives a restart.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/eduadvisor/backoffice/internal/app/models"
	"github.com/eduadvisor/backoffice/internal/app/repositories"
	"github.com/eduadvisor/backoffice/internal/pkg/apperrors"
)

// New returns a Stores set backed by memory.
func New() *repositories.Stores {
	return &repositories.Stores{
		Inquiries:   &InquiryStore{},
		Reports:     &ReportStore{},
		Calls:       &CallLogStore{},
		Admissions:  &AdmissionStore{},
		Consultants: &ConsultantStore{},
		Catalog:     &CatalogStore{},
		Health:      pinger{},
	}
}

type pinger struct{}

func (pinger) Ping(context.Context) error { return nil }

// newestFirst returns a copy of items ordered by created time descending.
// Items created at the same instant keep reverse insertion order.
func newestFirst[T any](items []T, createdAt func(T) time.Time) []T {
	out := make([]T, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		out = append(out, items[i])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return createdAt(out[i]).After(createdAt(out[j]))
	})
	return out
}

// removeMatching drops the items remove selects and returns the survivors and the removed count.
func removeMatching[T any](items []T, remove func(T) bool) ([]T, int64) {
	kept := items[:0]
	var n int64
	for _, it := range items {
		if remove(it) {
			n++
			continue
		}
		kept = append(kept, it)
	}
	return kept, n
}

// InquiryStore keeps inquiries in memory.
type InquiryStore struct {
	mu    sync.RWMutex
	items []models.StudentInquiry
}

func (s *InquiryStore) Create(_ context.Context, q *models.StudentInquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, *q)
	return nil
}

func (s *InquiryStore) List(context.Context) ([]models.StudentInquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestFirst(s.items, func(q models.StudentInquiry) time.Time { return q.CreatedAt }), nil
}

func (s *InquiryStore) GetByID(_ context.Context, id string) (*models.StudentInquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, q := range s.items {
		if q.ID == id {
			found := q
			return &found, nil
		}
	}
	return nil, apperrors.NewResourceNotFoundError("Query not found")
}

func (s *InquiryStore) Update(_ context.Context, id string, patch models.InquiryPatch, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			patch.ApplyTo(&s.items[i])
			s.items[i].UpdatedAt = updatedAt
			return nil
		}
	}
	return apperrors.NewResourceNotFoundError("Query not found")
}

func (s *InquiryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	s.items, n = removeMatching(s.items, func(q models.StudentInquiry) bool { return q.ID == id })
	if n == 0 {
		return apperrors.NewResourceNotFoundError("Query not found")
	}
	return nil
}

func (s *InquiryStore) DeleteMatching(_ context.Context, filter models.DeleteFilter) (int64, error) {
	if filter.ConsultantID != "" {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	s.items, n = removeMatching(s.items, func(q models.StudentInquiry) bool {
		return filter.Matches("", q.CreatedAt)
	})
	return n, nil
}

// ReportStore keeps consultant reports in memory.
type ReportStore struct {
	mu    sync.RWMutex
	items []models.ConsultantReport
}

func (s *ReportStore) Create(_ context.Context, r *models.ConsultantReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, *r)
	return nil
}

func (s *ReportStore) List(_ context.Context, filter models.RecordFilter) ([]models.ConsultantReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matched []models.ConsultantReport
	for _, r := range s.items {
		if filter.ConsultantID == "" || r.ConsultantID == filter.ConsultantID {
			matched = append(matched, r)
		}
	}
	return newestFirst(matched, func(r models.ConsultantReport) time.Time { return r.CreatedAt }), nil
}

func (s *ReportStore) GetByID(_ context.Context, id string) (*models.ConsultantReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.items {
		if r.ID == id {
			found := r
			return &found, nil
		}
	}
	return nil, apperrors.NewResourceNotFoundError("Report not found")
}

func (s *ReportStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	s.items, n = removeMatching(s.items, func(r models.ConsultantReport) bool { return r.ID == id })
	if n == 0 {
		return apperrors.NewResourceNotFoundError("Report not found")
	}
	return nil
}

func (s *ReportStore) DeleteMatching(_ context.Context, filter models.DeleteFilter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	s.items, n = removeMatching(s.items, func(r models.ConsultantReport) bool {
		return filter.Matches(r.ConsultantID, r.CreatedAt)
	})
	return n, nil
}

// CallLogStore keeps call logs in memory.
type CallLogStore struct {
	mu    sync.RWMutex
	items []models.CallLog
	// FailCreate, when set, is returned by Create. Tests use it to exercise best-effort paths.
	FailCreate error
}

func (s *CallLogStore) Create(_ context.Context, c *models.CallLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailCreate != nil {
		return s.FailCreate
	}
	s.items = append(s.items, *c)
	return nil
}

func (s *CallLogStore) List(_ context.Context, filter models.RecordFilter) ([]models.CallLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matched []models.CallLog
	for _, c := range s.items {
		if filter.ConsultantID == "" || c.ConsultantID == filter.ConsultantID {
			matched = append(matched, c)
		}
	}
	return newestFirst(matched, func(c models.CallLog) time.Time { return c.CreatedAt }), nil
}

func (s *CallLogStore) DeleteMatching(_ context.Context, filter models.DeleteFilter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	s.items, n = removeMatching(s.items, func(c models.CallLog) bool {
		return filter.Matches(c.ConsultantID, c.CreatedAt)
	})
	return n, nil
}

// AdmissionStore keeps admissions in memory.
type AdmissionStore struct {
	mu    sync.RWMutex
	items []models.Admission
}

func (s *AdmissionStore) Create(_ context.Context, a *models.Admission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, *a)
	return nil
}

func (s *AdmissionStore) List(_ context.Context, filter models.RecordFilter) ([]models.Admission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matched []models.Admission
	for _, a := range s.items {
		if filter.ConsultantID == "" || a.ConsultantID == filter.ConsultantID {
			matched = append(matched, a)
		}
	}
	return newestFirst(matched, func(a models.Admission) time.Time { return a.CreatedAt }), nil
}

func (s *AdmissionStore) GetByID(_ context.Context, id string) (*models.Admission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.items {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, apperrors.NewResourceNotFoundError("Admission not found")
}

func (s *AdmissionStore) Update(_ context.Context, id string, patch models.AdmissionPatch, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			patch.ApplyTo(&s.items[i])
			s.items[i].UpdatedAt = updatedAt
			return nil
		}
	}
	return apperrors.NewResourceNotFoundError("Admission not found")
}

func (s *AdmissionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	s.items, n = removeMatching(s.items, func(a models.Admission) bool { return a.ID == id })
	if n == 0 {
		return apperrors.NewResourceNotFoundError("Admission not found")
	}
	return nil
}

func (s *AdmissionStore) DeleteMatching(_ context.Context, filter models.DeleteFilter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	s.items, n = removeMatching(s.items, func(a models.Admission) bool {
		return filter.Matches(a.ConsultantID, a.CreatedAt)
	})
	return n, nil
}

// ConsultantStore keeps the roster in memory, in creation order.
type ConsultantStore struct {
	mu    sync.RWMutex
	items []models.Consultant
}

func (s *ConsultantStore) List(context.Context) ([]models.Consultant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Consultant{}, s.items...), nil
}

func (s *ConsultantStore) Create(_ context.Context, c models.Consultant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(c.UserID) >= 0 {
		return apperrors.NewCustomError(apperrors.ErrConsultantExists, "Consultant ID already exists")
	}
	s.items = append(s.items, c)
	return nil
}

func (s *ConsultantStore) Replace(_ context.Context, userID string, c models.Consultant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(userID)
	if i < 0 {
		return apperrors.NewCustomError(apperrors.ErrConsultantNotFound, "Consultant not found")
	}
	if c.UserID != userID && s.indexOf(c.UserID) >= 0 {
		return apperrors.NewCustomError(apperrors.ErrConsultantExists, "New consultant ID already exists")
	}
	s.items[i].UserID = c.UserID
	s.items[i].Password = c.Password
	return nil
}

func (s *ConsultantStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(userID)
	if i < 0 {
		return apperrors.NewCustomError(apperrors.ErrConsultantNotFound, "Consultant not found")
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

func (s *ConsultantStore) indexOf(userID string) int {
	for i, c := range s.items {
		if c.UserID == userID {
			return i
		}
	}
	return -1
}

// CatalogStore keeps the college and course catalog in memory.
type CatalogStore struct {
	mu       sync.RWMutex
	colleges []models.College
	courses  []models.Course
}

func (s *CatalogStore) ListColleges(context.Context) ([]models.College, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.College{}, s.colleges...), nil
}

func (s *CatalogStore) GetCollege(_ context.Context, id string) (*models.College, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.colleges {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, apperrors.NewResourceNotFoundError("College not found")
}

func (s *CatalogStore) ListCourses(context.Context) ([]models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Course{}, s.courses...), nil
}

func (s *CatalogStore) FindCourse(_ context.Context, idOrName string) (*models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.courses {
		if c.ID == idOrName || strings.EqualFold(c.Name, idOrName) {
			found := c
			return &found, nil
		}
	}
	return nil, apperrors.NewResourceNotFoundError("Course not found")
}

func (s *CatalogStore) IsEmpty(context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.colleges) == 0, nil
}

func (s *CatalogStore) Seed(_ context.Context, colleges []models.College, courses []models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.colleges = append([]models.College{}, colleges...)
	s.courses = append([]models.Course{}, courses...)
	return nil
}
