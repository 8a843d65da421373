package services

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/vlad-d/RiseOnBack/internal/models"
	"github.com/vlad-d/RiseOnBack/internal/repository"
	"github.com/vlad-d/RiseOnBack/internal/survey"
)

// stubTx satisfies pgx.Tx for the save path; only Commit and Rollback are
// ever reached because the in-memory repo ignores the transaction handle.
type stubTx struct {
	pgx.Tx
	commitErr  error
	committed  bool
	rolledBack bool
}

func (t *stubTx) Commit(context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}

func (t *stubTx) Rollback(context.Context) error {
	t.rolledBack = true
	return nil
}

type stubBeginner struct {
	tx       *stubTx
	beginErr error
}

func (b *stubBeginner) Begin(context.Context) (pgx.Tx, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	return b.tx, nil
}

// memProfileRepo mimics the single-row table. Reads hand out copies so a
// failed write can never leak half-applied state back into the "database".
type memProfileRepo struct {
	profile   *models.UserProfile
	getErr    error
	insertErr error
	updateErr error
}

var memBase = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func (r *memProfileRepo) GetLatest(context.Context) (*models.UserProfile, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	if r.profile == nil {
		return nil, pgx.ErrNoRows
	}
	copied := *r.profile
	return &copied, nil
}

func (r *memProfileRepo) GetLatestForUpdate(ctx context.Context) (*models.UserProfile, error) {
	return r.GetLatest(ctx)
}

func (r *memProfileRepo) Insert(_ context.Context, profile *models.UserProfile) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	profile.ID = 1
	profile.CreatedAt = memBase
	profile.UpdatedAt = memBase
	copied := *profile
	r.profile = &copied
	return nil
}

func (r *memProfileRepo) Update(_ context.Context, profile *models.UserProfile) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	profile.CreatedAt = r.profile.CreatedAt
	profile.UpdatedAt = r.profile.UpdatedAt.Add(time.Second)
	copied := *profile
	r.profile = &copied
	return nil
}

func (r *memProfileRepo) DeleteAll(context.Context) error {
	r.profile = nil
	return nil
}

func newTestStore(repo *memProfileRepo) (*ProfileStore, *stubTx) {
	tx := &stubTx{}
	store := newProfileStore(&stubBeginner{tx: tx}, repo, func(repository.DBTX) profileRepo {
		return repo
	})
	return store, tx
}

func testDraft() *survey.Draft {
	draft := survey.NewDraft()
	draft.SetName("Alex")
	draft.SetAge("30")
	draft.SetGender("male")
	draft.SetGoal("lose_weight")
	draft.SetActivityLevel("moderate")
	draft.SetDiet("balanced")
	draft.SetHeight("180")
	draft.SetWeight("81")
	draft.SetTargetWeight("65")
	draft.ToggleTrainingPreference("strength")
	draft.ToggleTrainingPreference("cardio")
	draft.ToggleWorkoutDay("monday")
	draft.ToggleWorkoutDay("thursday")
	return draft
}

func TestSaveDerivesBMIAndWeightDelta(t *testing.T) {
	repo := &memProfileRepo{}
	store, _ := newTestStore(repo)

	profile, err := store.Save(context.Background(), testDraft())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if profile.BMI == nil || math.Abs(*profile.BMI-25.0) > 0.01 {
		t.Fatalf("expected BMI 25.0, got %v", profile.BMI)
	}
	if profile.WeightDifference == nil || *profile.WeightDifference != 16 {
		t.Fatalf("expected weight difference 16, got %v", profile.WeightDifference)
	}
	if profile.PreferredTrainingTypes != `["cardio","strength"]` {
		t.Fatalf("unexpected training encoding %s", profile.PreferredTrainingTypes)
	}
	if profile.SelectedWorkoutDays != `["monday","thursday"]` {
		t.Fatalf("unexpected day encoding %s", profile.SelectedWorkoutDays)
	}
}

func TestSaveIsUpsert(t *testing.T) {
	repo := &memProfileRepo{}
	store, _ := newTestStore(repo)

	first, err := store.Save(context.Background(), testDraft())
	if err != nil {
		t.Fatalf("first Save: %v", err)
	}
	second, err := store.Save(context.Background(), testDraft())
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("expected one profile row, got ids %d and %d", first.ID, second.ID)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatal("created_at must not change on upsert")
	}
	if !second.UpdatedAt.After(first.UpdatedAt) {
		t.Fatal("updated_at must advance on upsert")
	}
}

func TestSaveFailureIsAtomic(t *testing.T) {
	repo := &memProfileRepo{}
	store, _ := newTestStore(repo)

	if _, err := store.Save(context.Background(), testDraft()); err != nil {
		t.Fatalf("seed Save: %v", err)
	}
	before, err := store.FetchLatest(context.Background())
	if err != nil {
		t.Fatalf("FetchLatest: %v", err)
	}

	repo.updateErr = errors.New("disk full")
	tx := &stubTx{}
	store.db = &stubBeginner{tx: tx}

	changed := testDraft()
	changed.SetWeight("90")
	if _, err := store.Save(context.Background(), changed); err == nil {
		t.Fatal("expected save failure to surface")
	}
	if tx.committed {
		t.Fatal("failed save must not commit")
	}
	if !tx.rolledBack {
		t.Fatal("failed save must roll back")
	}

	after, err := store.FetchLatest(context.Background())
	if err != nil {
		t.Fatalf("FetchLatest after failure: %v", err)
	}
	if *after.WeightKG != *before.WeightKG || *after.BMI != *before.BMI {
		t.Fatal("failed save must leave the prior state intact, not a mixture")
	}
}

func TestFetchLatestDistinguishesAbsentFromError(t *testing.T) {
	repo := &memProfileRepo{}
	store, _ := newTestStore(repo)

	profile, err := store.FetchLatest(context.Background())
	if profile != nil || err != nil {
		t.Fatalf("expected (nil, nil) for absent profile, got (%v, %v)", profile, err)
	}

	repo.getErr = errors.New("connection refused")
	if _, err := store.FetchLatest(context.Background()); err == nil {
		t.Fatal("expected store failure to be observable")
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	repo := &memProfileRepo{}
	store, _ := newTestStore(repo)

	if err := store.Delete(context.Background()); err != nil {
		t.Fatalf("delete with no profile: %v", err)
	}

	store.Save(context.Background(), testDraft())
	if err := store.Delete(context.Background()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(context.Background()); err != nil {
		t.Fatalf("repeat delete: %v", err)
	}
	if profile, _ := store.FetchLatest(context.Background()); profile != nil {
		t.Fatal("expected no profile after delete")
	}
}

func TestProgressCountsFacetsEqually(t *testing.T) {
	repo := &memProfileRepo{}
	store, _ := newTestStore(repo)

	progress, err := store.Progress(context.Background())
	if err != nil || progress != 0 {
		t.Fatalf("expected zero progress with no profile, got %v (%v)", progress, err)
	}

	// Fill facets one at a time; progress must never decrease.
	draft := survey.NewDraft()
	fill := []func(){
		func() { draft.SetName("Alex") },
		func() { draft.SetAge("30") },
		func() { draft.SetGender("male") },
		func() { draft.SetGoal("keep_fit") },
		func() { draft.SetHeight("175"); draft.SetWeight("70") },
		func() { draft.SetActivityLevel("light") },
		func() { draft.SetDiet("vegan") },
		func() { draft.ToggleWorkoutDay("friday") },
	}

	previous := 0.0
	for i, step := range fill {
		step()
		if _, err := store.Save(context.Background(), draft); err != nil {
			t.Fatalf("save at facet %d: %v", i, err)
		}
		progress, err := store.Progress(context.Background())
		if err != nil {
			t.Fatalf("progress at facet %d: %v", i, err)
		}
		if progress < previous {
			t.Fatalf("progress decreased from %v to %v at facet %d", previous, progress, i)
		}
		previous = progress
	}

	if previous != 1.0 {
		t.Fatalf("expected full progress 1.0, got %v", previous)
	}
}

func TestExportBackupDecodesPreferenceSets(t *testing.T) {
	repo := &memProfileRepo{}
	store, _ := newTestStore(repo)

	if export, err := store.ExportBackup(context.Background()); export != nil || err != nil {
		t.Fatalf("expected no export without a profile, got (%v, %v)", export, err)
	}

	store.Save(context.Background(), testDraft())
	export, err := store.ExportBackup(context.Background())
	if err != nil {
		t.Fatalf("ExportBackup: %v", err)
	}
	if export.ExportDate.IsZero() {
		t.Fatal("expected export date to be stamped")
	}
	if len(export.Profile.TrainingPreferences) != 2 {
		t.Fatalf("expected 2 decoded training preferences, got %v", export.Profile.TrainingPreferences)
	}
	if len(export.Profile.WorkoutDays) != 2 {
		t.Fatalf("expected 2 decoded workout days, got %v", export.Profile.WorkoutDays)
	}
}
