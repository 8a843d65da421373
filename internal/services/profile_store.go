package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vlad-d/RiseOnBack/internal/models"
	"github.com/vlad-d/RiseOnBack/internal/prefs"
	"github.com/vlad-d/RiseOnBack/internal/repository"
	"github.com/vlad-d/RiseOnBack/internal/survey"
)

// surveyFacetCount is the fixed completion checklist length behind Progress.
const surveyFacetCount = 8

type profileRepo interface {
	GetLatest(ctx context.Context) (*models.UserProfile, error)
	GetLatestForUpdate(ctx context.Context) (*models.UserProfile, error)
	Insert(ctx context.Context, profile *models.UserProfile) error
	Update(ctx context.Context, profile *models.UserProfile) error
	DeleteAll(ctx context.Context) error
}

type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// ProfileStore owns the single durable profile. All mutation routes through
// Save, which runs one all-or-nothing transaction, so a second caller never
// observes a partial write. Errors are logged here at the store boundary;
// callers that follow the availability policy may then treat them as no-ops,
// while "no profile" stays distinguishable from "failed" at the type level.
type ProfileStore struct {
	db            txBeginner
	readRepo      profileRepo
	newRepo       func(db repository.DBTX) profileRepo
	trainingCodec *prefs.Codec
	dayCodec      *prefs.Codec
}

func NewProfileStore(pool *pgxpool.Pool) *ProfileStore {
	return newProfileStore(pool, repository.NewProfileRepository(pool), func(db repository.DBTX) profileRepo {
		return repository.NewProfileRepository(db)
	})
}

func newProfileStore(db txBeginner, readRepo profileRepo, newRepo func(db repository.DBTX) profileRepo) *ProfileStore {
	return &ProfileStore{
		db:            db,
		readRepo:      readRepo,
		newRepo:       newRepo,
		trainingCodec: newTrainingCodec(),
		dayCodec:      newWorkoutDayCodec(),
	}
}

// Save commits the whole draft as the one stored profile: existing row
// updated in place, otherwise a new row. Derived fields and both portable
// encodings are recomputed on every call; they are never written stale.
func (s *ProfileStore) Save(ctx context.Context, draft *survey.Draft) (*models.UserProfile, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("profile store: begin save: %v", err)
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	repo := s.newRepo(tx)

	profile, err := repo.GetLatestForUpdate(ctx)
	if errors.Is(err, pgx.ErrNoRows) {
		profile = &models.UserProfile{}
	} else if err != nil {
		log.Printf("profile store: resolve existing profile: %v", err)
		return nil, err
	}

	s.applyDraft(profile, draft)

	if profile.ID == 0 {
		err = repo.Insert(ctx, profile)
	} else {
		err = repo.Update(ctx, profile)
	}
	if err != nil {
		log.Printf("profile store: write profile: %v", err)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("profile store: commit save: %v", err)
		return nil, err
	}
	return profile, nil
}

// FetchLatest returns the stored profile, (nil, nil) when none exists, or
// (nil, err) on a store failure.
func (s *ProfileStore) FetchLatest(ctx context.Context) (*models.UserProfile, error) {
	profile, err := s.readRepo.GetLatest(ctx)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Printf("profile store: fetch latest: %v", err)
		return nil, err
	}
	return profile, nil
}

// Delete removes the profile if present. Deleting when none exists is a
// no-op, not an error.
func (s *ProfileStore) Delete(ctx context.Context) error {
	if err := s.readRepo.DeleteAll(ctx); err != nil {
		log.Printf("profile store: delete: %v", err)
		return err
	}
	return nil
}

// Progress reports survey completion as a ratio over the 8 equally weighted
// facets: name, age, gender, goal, height+weight pair, activity level, diet,
// workout days. No profile means zero progress.
func (s *ProfileStore) Progress(ctx context.Context) (float64, error) {
	profile, err := s.FetchLatest(ctx)
	if err != nil {
		return 0, err
	}
	if profile == nil {
		return 0, nil
	}

	facets := []bool{
		profile.Name != nil && *profile.Name != "",
		profile.Age != nil,
		profile.Gender != nil && *profile.Gender != "",
		profile.Goal != nil && *profile.Goal != "",
		profile.HeightCM != nil && profile.WeightKG != nil,
		profile.ActivityLevel != nil && *profile.ActivityLevel != "",
		profile.Diet != nil && *profile.Diet != "",
		len(s.dayCodec.Decode(profile.SelectedWorkoutDays)) > 0,
	}

	complete := 0
	for _, done := range facets {
		if done {
			complete++
		}
	}
	return float64(complete) / surveyFacetCount, nil
}

// ExportBackup builds the portable backup document with both preference sets
// decoded alongside the raw record.
func (s *ProfileStore) ExportBackup(ctx context.Context) (*models.ProfileExport, error) {
	profile, err := s.FetchLatest(ctx)
	if err != nil || profile == nil {
		return nil, err
	}

	record := models.ExportedRecord{
		UserProfile:         *profile,
		TrainingPreferences: []models.TrainingPreference{},
		WorkoutDays:         []models.WorkoutDay{},
	}
	for _, id := range s.trainingCodec.Decode(profile.PreferredTrainingTypes) {
		if pref, ok := models.ParseTrainingPreference(id); ok {
			record.TrainingPreferences = append(record.TrainingPreferences, pref)
		}
	}
	for _, id := range s.dayCodec.Decode(profile.SelectedWorkoutDays) {
		if day, ok := models.ParseWorkoutDay(id); ok {
			record.WorkoutDays = append(record.WorkoutDays, day)
		}
	}

	return &models.ProfileExport{
		ExportDate: time.Now().UTC(),
		Profile:    record,
	}, nil
}

func (s *ProfileStore) applyDraft(profile *models.UserProfile, draft *survey.Draft) {
	profile.Name = stringPtr(draft.Name)
	profile.Age = draft.Age
	profile.Gender = enumPtr(draft.Gender)
	profile.Goal = enumPtr(draft.Goal)
	profile.ActivityLevel = enumPtr(draft.ActivityLevel)
	profile.Diet = enumPtr(draft.Diet)
	profile.HeightCM = draft.HeightCM
	profile.WeightKG = draft.WeightKG
	profile.TargetWeightKG = draft.TargetWeightKG
	profile.SelectedUnit = string(models.UnitOrDefault(string(draft.Unit)))
	profile.PreferredTrainingTypes = s.trainingCodec.Encode(draft.SelectedTrainingIDs())
	profile.SelectedWorkoutDays = s.dayCodec.Encode(draft.SelectedWorkoutDayIDs())
	profile.RemindersEnabled = draft.RemindersEnabled
	profile.ReminderTimeHour = draft.ReminderTimeHour
	profile.ReminderTimeMinute = draft.ReminderTimeMinute
	profile.BMI = computeBMI(draft.HeightCM, draft.WeightKG)
	profile.WeightDifference = computeWeightDelta(draft.WeightKG, draft.TargetWeightKG)
}

func computeBMI(heightCM, weightKG *float64) *float64 {
	if heightCM == nil || weightKG == nil || *heightCM <= 0 {
		return nil
	}
	meters := *heightCM / 100
	bmi := *weightKG / (meters * meters)
	return &bmi
}

func computeWeightDelta(weightKG, targetKG *float64) *float64 {
	if weightKG == nil || targetKG == nil {
		return nil
	}
	delta := *weightKG - *targetKG
	return &delta
}

func stringPtr(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func enumPtr[T ~string](value *T) *string {
	if value == nil {
		return nil
	}
	id := string(*value)
	return &id
}
