package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/vlad-d/RiseOnBack/internal/models"
	"github.com/vlad-d/RiseOnBack/internal/survey"
)

var ErrSessionNotFound = errors.New("wizard session not found")

type draftStore interface {
	Save(ctx context.Context, draft *survey.Draft) (*models.UserProfile, error)
}

// WizardService owns the active wizard sessions. One mutex serializes every
// draft mutation, which matches the single-writer model: validation and
// navigation are O(1), so the critical sections stay short. This is a
// single-user install, so starting a new session discards any previous one.
type WizardService struct {
	mu       sync.Mutex
	store    draftStore
	sessions map[string]*survey.Wizard
	active   string
}

func NewWizardService(store draftStore) *WizardService {
	return &WizardService{
		store:    store,
		sessions: make(map[string]*survey.Wizard),
	}
}

// Start opens a fresh session and returns its id. The previous session's
// draft, if any, is discarded unsaved.
func (s *WizardService) Start() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != "" {
		delete(s.sessions, s.active)
	}
	id := uuid.NewString()
	s.sessions[id] = survey.NewWizard(s.store)
	s.active = id
	return id
}

// Do runs fn against the session's wizard under the service lock.
func (s *WizardService) Do(id string, fn func(w *survey.Wizard) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	wizard, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	return fn(wizard)
}

// End discards the session. Called after completion or when the user backs
// out of the flow.
func (s *WizardService) End(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	if s.active == id {
		s.active = ""
	}
}
