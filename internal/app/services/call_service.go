package services

import (
	"context"
	"time"

	"github.com/eduadvisor/backoffice/internal/app/models"
	"github.com/eduadvisor/backoffice/internal/app/repositories"
	"github.com/eduadvisor/backoffice/internal/pkg/apperrors"
	"github.com/eduadvisor/backoffice/internal/pkg/metrics"
)

// CallInput is a quick call log submitted by a consultant.
type CallInput struct {
	ConsultantID  string
	CallType      string
	StudentName   string
	ContactNumber string
	Remarks       string
}

// ConsultantCalls is one consultant's call history and its counts.
type ConsultantCalls struct {
	Calls []models.CallLog
	Stats models.CallStats
}

// AllCallStats is the admin view of call activity.
type AllCallStats struct {
	Overall      models.CallStats
	ByConsultant map[string]*models.ConsultantCallStats
}

// CallService defines call logging and call statistics operations
type CallService interface {
	Log(ctx context.Context, in CallInput) (*models.CallLog, error)
	ForConsultant(ctx context.Context, consultantID string) (*ConsultantCalls, error)
	AllStats(ctx context.Context) (*AllCallStats, error)
}

type callServiceImpl struct {
	store       repositories.CallLogStore
	credentials CredentialService
	now         func() time.Time
}

// NewCallService creates a new call service instance
func NewCallService(store repositories.CallLogStore, credentials CredentialService) CallService {
	return &callServiceImpl{store: store, credentials: credentials, now: utcNow}
}

func (s *callServiceImpl) Log(ctx context.Context, in CallInput) (*models.CallLog, error) {
	name, ok := s.credentials.LookupName(in.ConsultantID)
	if !ok {
		return nil, apperrors.NewUnauthorizedError("Invalid consultant ID")
	}

	callType, err := models.ParseCallType(in.CallType)
	if err != nil {
		return nil, err
	}

	return appendCallLog(ctx, s.store, s.now(), models.CallLog{
		ConsultantID:   in.ConsultantID,
		ConsultantName: name,
		CallType:       callType,
		StudentName:    in.StudentName,
		ContactNumber:  in.ContactNumber,
		Remarks:        in.Remarks,
	})
}

func (s *callServiceImpl) ForConsultant(ctx context.Context, consultantID string) (*ConsultantCalls, error) {
	calls, err := s.store.List(ctx, models.RecordFilter{ConsultantID: consultantID})
	if err != nil {
		return nil, err
	}
	return &ConsultantCalls{Calls: calls, Stats: SummarizeCalls(calls)}, nil
}

func (s *callServiceImpl) AllStats(ctx context.Context) (*AllCallStats, error) {
	calls, err := s.store.List(ctx, models.RecordFilter{})
	if err != nil {
		return nil, err
	}
	overall, byConsultant := SummarizeCallsByConsultant(calls)
	return &AllCallStats{Overall: overall, ByConsultant: byConsultant}, nil
}

// appendCallLog stamps and stores a call log. The id takes the wall clock in
// nanoseconds so two calls inside one microsecond stay distinct.
func appendCallLog(ctx context.Context, store repositories.CallLogStore, at time.Time, c models.CallLog) (*models.CallLog, error) {
	c.ID = models.NewCallLogID(c.ConsultantID, time.Now())
	c.CreatedAt = at
	if err := store.Create(ctx, &c); err != nil {
		return nil, err
	}
	metrics.IncCallLog(string(c.CallType))
	return &c, nil
}
