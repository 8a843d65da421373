package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/vlad-d/RiseOnBack/internal/models"
)

// AppStateRepository persists the three installation flags as a single row.
// A missing row reads as a fresh install with every flag false.
type AppStateRepository struct {
	db DBTX
}

func NewAppStateRepository(db DBTX) *AppStateRepository {
	return &AppStateRepository{db: db}
}

func (r *AppStateRepository) Get(ctx context.Context) (*models.AppState, error) {
	query := `
		SELECT has_launched_before, is_authenticated, survey_completed
		FROM app_state
		WHERE id = 1
	`
	var state models.AppState
	err := r.db.QueryRow(ctx, query).Scan(
		&state.HasLaunchedBefore,
		&state.IsAuthenticated,
		&state.SurveyCompleted,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return &models.AppState{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *AppStateRepository) SetLaunched(ctx context.Context, launched bool) error {
	return r.setFlag(ctx, "has_launched_before", launched)
}

func (r *AppStateRepository) SetAuthenticated(ctx context.Context, authenticated bool) error {
	return r.setFlag(ctx, "is_authenticated", authenticated)
}

func (r *AppStateRepository) SetSurveyCompleted(ctx context.Context, completed bool) error {
	return r.setFlag(ctx, "survey_completed", completed)
}

// Reset clears all three flags in one statement.
func (r *AppStateRepository) Reset(ctx context.Context) error {
	query := `
		INSERT INTO app_state (id, has_launched_before, is_authenticated, survey_completed)
		VALUES (1, FALSE, FALSE, FALSE)
		ON CONFLICT (id) DO UPDATE
		SET has_launched_before = FALSE,
			is_authenticated = FALSE,
			survey_completed = FALSE
	`
	_, err := r.db.Exec(ctx, query)
	return err
}

func (r *AppStateRepository) setFlag(ctx context.Context, column string, value bool) error {
	// column comes from the fixed call sites above, never from input.
	query := `
		INSERT INTO app_state (id, ` + column + `)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET ` + column + ` = $1
	`
	_, err := r.db.Exec(ctx, query, value)
	return err
}
