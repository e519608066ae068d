package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/eduadvisor/backoffice/internal/app/models"
	"github.com/eduadvisor/backoffice/internal/app/repositories"
	"github.com/eduadvisor/backoffice/internal/pkg/apperrors"
	"github.com/eduadvisor/backoffice/internal/pkg/auth"
	"github.com/eduadvisor/backoffice/internal/pkg/logger"
)

// CredentialService owns the consultant roster and checks consultant logins.
type CredentialService interface {
	// Load fills the roster from the store, seeding it with seed when the store is empty.
	Load(ctx context.Context, seed []models.Consultant) error
	Verify(userID, password string) (name string, ok bool)
	LookupName(userID string) (string, bool)
	List() []models.Consultant
	Add(ctx context.Context, userID, name, password string) error
	Rename(ctx context.Context, userID string, rename models.ConsultantRename) error
	Remove(ctx context.Context, userID string) error
}

// credentialServiceImpl keeps the roster in memory and writes every change
// through to the consultant store. Writers are serialized by mu.
type credentialServiceImpl struct {
	mu    sync.RWMutex
	byID  map[string]models.Consultant
	order []string
	store repositories.ConsultantStore
}

// NewCredentialService creates an empty roster backed by store
func NewCredentialService(store repositories.ConsultantStore) CredentialService {
	return &credentialServiceImpl{
		byID:  map[string]models.Consultant{},
		store: store,
	}
}

func (s *credentialServiceImpl) Load(ctx context.Context, seed []models.Consultant) error {
	existing, err := s.store.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load consultants: %w", err)
	}

	if len(existing) == 0 && len(seed) > 0 {
		for _, c := range seed {
			if err := s.store.Create(ctx, c); err != nil {
				return fmt.Errorf("failed to seed consultant %s: %w", c.UserID, err)
			}
		}
		existing = seed
		logger.Info().Int("count", len(seed)).Msg("Seeded consultant roster")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID = make(map[string]models.Consultant, len(existing))
	s.order = s.order[:0]
	for _, c := range existing {
		s.byID[c.UserID] = c
		s.order = append(s.order, c.UserID)
	}
	return nil
}

func (s *credentialServiceImpl) Verify(userID, password string) (string, bool) {
	s.mu.RLock()
	c, found := s.byID[userID]
	s.mu.RUnlock()

	if !found || !auth.ConstantTimeEqual(c.Password, password) {
		return "", false
	}
	return c.Name, true
}

func (s *credentialServiceImpl) LookupName(userID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, found := s.byID[userID]
	return c.Name, found
}

func (s *credentialServiceImpl) List() []models.Consultant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Consultant, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

func (s *credentialServiceImpl) Add(ctx context.Context, userID, name, password string) error {
	userID = strings.TrimSpace(userID)
	name = strings.TrimSpace(name)
	if userID == "" || name == "" || password == "" {
		return apperrors.NewBadRequestError("user_id, name and password are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[userID]; exists {
		return apperrors.NewCustomError(apperrors.ErrConsultantExists, "Consultant ID already exists")
	}

	c := models.Consultant{UserID: userID, Name: name, Password: password}
	if err := s.store.Create(ctx, c); err != nil {
		return err
	}
	s.byID[userID] = c
	s.order = append(s.order, userID)
	return nil
}

func (s *credentialServiceImpl) Rename(ctx context.Context, userID string, rename models.ConsultantRename) error {
	rename.NewUserID = strings.TrimSpace(rename.NewUserID)
	if rename.IsEmpty() {
		return apperrors.NewBadRequestError("Nothing to update: provide new_user_id and/or password")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, found := s.byID[userID]
	if !found {
		return apperrors.NewCustomError(apperrors.ErrConsultantNotFound, "Consultant not found")
	}

	next := current
	if rename.NewUserID != "" && rename.NewUserID != userID {
		if _, taken := s.byID[rename.NewUserID]; taken {
			return apperrors.NewCustomError(apperrors.ErrConsultantExists, "New consultant ID already exists")
		}
		next.UserID = rename.NewUserID
	}
	if rename.NewPassword != "" {
		next.Password = rename.NewPassword
	}

	if err := s.store.Replace(ctx, userID, next); err != nil {
		return err
	}

	delete(s.byID, userID)
	s.byID[next.UserID] = next
	for i, id := range s.order {
		if id == userID {
			s.order[i] = next.UserID
			break
		}
	}
	return nil
}

func (s *credentialServiceImpl) Remove(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.byID[userID]; !found {
		return apperrors.NewCustomError(apperrors.ErrConsultantNotFound, "Consultant not found")
	}
	if err := s.store.Delete(ctx, userID); err != nil {
		return err
	}

	delete(s.byID, userID)
	for i, id := range s.order {
		if id == userID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
