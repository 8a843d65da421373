package services

import (
	"context"
	"log"

	"github.com/vlad-d/RiseOnBack/internal/models"
)

type appStateRepo interface {
	Get(ctx context.Context) (*models.AppState, error)
	SetLaunched(ctx context.Context, launched bool) error
	SetAuthenticated(ctx context.Context, authenticated bool) error
	SetSurveyCompleted(ctx context.Context, completed bool) error
	Reset(ctx context.Context) error
}

type profileWiper interface {
	Delete(ctx context.Context) error
}

// AppFlow is the outer coordinator. Splash resolves to exactly one of
// welcome, auth, survey or main by checking the persisted flags in fixed
// priority order; main is reachable only once both authenticated and
// survey-completed hold. Flag read failures degrade to the most conservative
// destination (welcome) instead of interrupting startup.
type AppFlow struct {
	flags   appStateRepo
	profile profileWiper
}

func NewAppFlow(flags appStateRepo, profile profileWiper) *AppFlow {
	return &AppFlow{flags: flags, profile: profile}
}

func (f *AppFlow) Resolve(ctx context.Context) models.FlowState {
	state, err := f.flags.Get(ctx)
	if err != nil {
		log.Printf("app flow: read flags: %v", err)
		return models.FlowWelcome
	}

	switch {
	case !state.HasLaunchedBefore:
		return models.FlowWelcome
	case !state.IsAuthenticated:
		return models.FlowAuth
	case !state.SurveyCompleted:
		return models.FlowSurvey
	default:
		return models.FlowMain
	}
}

func (f *AppFlow) State(ctx context.Context) (*models.AppState, error) {
	return f.flags.Get(ctx)
}

// MarkLaunched records that the welcome screen has been shown once.
func (f *AppFlow) MarkLaunched(ctx context.Context) (models.FlowState, error) {
	if err := f.flags.SetLaunched(ctx, true); err != nil {
		log.Printf("app flow: mark launched: %v", err)
		return f.Resolve(ctx), err
	}
	return f.Resolve(ctx), nil
}

// Login flips the opaque auth gate. Guest and bypass flows go through here
// too; there are no additional side effects.
func (f *AppFlow) Login(ctx context.Context) (models.FlowState, error) {
	if err := f.flags.SetAuthenticated(ctx, true); err != nil {
		log.Printf("app flow: login: %v", err)
		return f.Resolve(ctx), err
	}
	return f.Resolve(ctx), nil
}

func (f *AppFlow) Logout(ctx context.Context) (models.FlowState, error) {
	if err := f.flags.SetAuthenticated(ctx, false); err != nil {
		log.Printf("app flow: logout: %v", err)
		return f.Resolve(ctx), err
	}
	return f.Resolve(ctx), nil
}

// CompleteSurvey records the wizard's completion signal.
func (f *AppFlow) CompleteSurvey(ctx context.Context) (models.FlowState, error) {
	if err := f.flags.SetSurveyCompleted(ctx, true); err != nil {
		log.Printf("app flow: complete survey: %v", err)
		return f.Resolve(ctx), err
	}
	return f.Resolve(ctx), nil
}

// Reset returns unconditionally to splash: all three flags cleared and the
// stored profile removed. The profile delete is idempotent, so a reset on a
// fresh install is safe.
func (f *AppFlow) Reset(ctx context.Context) (models.FlowState, error) {
	if err := f.flags.Reset(ctx); err != nil {
		log.Printf("app flow: reset flags: %v", err)
		return f.Resolve(ctx), err
	}
	if err := f.profile.Delete(ctx); err != nil {
		return models.FlowSplash, err
	}
	return models.FlowSplash, nil
}
