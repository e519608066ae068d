package services

import (
	"context"
	"errors"
	"strings"

	"github.com/eduadvisor/backoffice/internal/knowledge"
	"github.com/eduadvisor/backoffice/internal/pkg/apperrors"
	"github.com/eduadvisor/backoffice/internal/pkg/llm"
	"github.com/eduadvisor/backoffice/internal/pkg/logger"
)

// Completer sends one prompt to the completion service. Conversation memory,
// if any, is kept by the service under sessionID.
type Completer interface {
	Complete(ctx context.Context, sessionID, system, user string) (string, error)
}

// AdvisorService defines the advisory chat operations
type AdvisorService interface {
	Chat(ctx context.Context, sessionID, message string) (string, error)
	Analyze(ctx context.Context, profile knowledge.StudentProfile) (string, error)
	PopularQueries() []knowledge.PopularQuery
}

type advisorServiceImpl struct {
	completer Completer
	system    string
}

// NewAdvisorService creates a new advisor service instance
func NewAdvisorService(completer Completer) AdvisorService {
	return &advisorServiceImpl{
		completer: completer,
		system:    knowledge.SystemPrompt(),
	}
}

func (s *advisorServiceImpl) Chat(ctx context.Context, sessionID, message string) (string, error) {
	if strings.TrimSpace(message) == "" || strings.TrimSpace(sessionID) == "" {
		return "", apperrors.NewBadRequestError("message and session_id are required")
	}

	reply, err := s.completer.Complete(ctx, sessionID, s.system, message)
	if err != nil {
		logger.Error().Err(err).Str("sessionID", sessionID).Msg("Advisor chat failed")
		return "", upstreamError(err, "Failed to get response")
	}

	logger.Info().Str("sessionID", sessionID).Msg("Advisor chat answered")
	return reply, nil
}

func (s *advisorServiceImpl) Analyze(ctx context.Context, profile knowledge.StudentProfile) (string, error) {
	if strings.TrimSpace(profile.Subjects) == "" {
		return "", apperrors.NewBadRequestError("subjects is required")
	}
	if profile.Marks < 0 || profile.Marks > 100 {
		return "", apperrors.NewBadRequestError("marks_percentage must be between 0 and 100")
	}
	if profile.Category == "" {
		profile.Category = "General"
	}

	sessionID := knowledge.AnalysisSessionID(profile.Marks)
	analysis, err := s.completer.Complete(ctx, sessionID, s.system, knowledge.AnalysisPrompt(profile))
	if err != nil {
		logger.Error().Err(err).Str("sessionID", sessionID).Msg("Student profile analysis failed")
		return "", upstreamError(err, "Failed to analyze")
	}
	return analysis, nil
}

func (s *advisorServiceImpl) PopularQueries() []knowledge.PopularQuery {
	return knowledge.PopularQueries()
}

// upstreamError hides the completion failure behind a generic message. A
// missing API key is reported as such since it is an operator problem.
func upstreamError(err error, generic string) error {
	if errors.Is(err, llm.ErrMissingAPIKey) {
		return apperrors.NewUpstreamError(llm.ErrMissingAPIKey.Error(), err)
	}
	return apperrors.NewUpstreamError(generic, err)
}
