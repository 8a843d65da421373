package survey

import (
	"context"
	"errors"

	"github.com/vlad-d/RiseOnBack/internal/models"
)

var ErrAlreadyCompleted = errors.New("wizard already completed")

type draftSaver interface {
	Save(ctx context.Context, draft *Draft) (*models.UserProfile, error)
}

// Wizard sequences the survey steps linearly and gates forward navigation on
// the current step's predicate. The draft is committed exactly once, when the
// final step advances; no earlier step persists anything.
type Wizard struct {
	store     draftSaver
	steps     []StepDescriptor
	draft     *Draft
	index     int
	completed bool
}

func NewWizard(store draftSaver) *Wizard {
	return &Wizard{
		store: store,
		steps: Steps(),
		draft: NewDraft(),
	}
}

func (w *Wizard) Draft() *Draft {
	return w.draft
}

// Step returns the current step descriptor.
func (w *Wizard) Step() StepDescriptor {
	return w.steps[w.index]
}

func (w *Wizard) Completed() bool {
	return w.completed
}

// CanAdvance recomputes the gate for the current step. It is evaluated fresh
// on every call, so a field invalidated after a previous check closes the
// gate again.
func (w *Wizard) CanAdvance() bool {
	return w.steps[w.index].Complete(w.draft)
}

// Advance moves forward one step when the gate is open. Advancing from the
// final step commits the draft through the profile store and marks the wizard
// complete; the completion signal fires at most once per session. A closed
// gate is a no-op, not an error. A commit failure is returned to the caller
// but still completes the session — the store's availability policy treats
// persistence failures as logged no-ops.
func (w *Wizard) Advance(ctx context.Context) (*models.UserProfile, bool, error) {
	if w.completed {
		return nil, false, ErrAlreadyCompleted
	}
	if !w.CanAdvance() {
		return nil, false, nil
	}

	if w.index < len(w.steps)-1 {
		w.index++
		return nil, false, nil
	}

	w.completed = true
	profile, err := w.store.Save(ctx, w.draft)
	if err != nil {
		return nil, true, err
	}
	return profile, true, nil
}

// Retreat moves back one step. Backward navigation is always legal above the
// first step and never requires validity.
func (w *Wizard) Retreat() {
	if w.index > 0 {
		w.index--
	}
}
