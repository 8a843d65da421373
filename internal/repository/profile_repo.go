package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/vlad-d/RiseOnBack/internal/models"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx, so repositories run
// inside or outside a transaction unchanged.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const profileColumns = `id, name, age, gender, goal, activity_level, diet,
		   height_cm, weight_kg, target_weight_kg, selected_unit,
		   preferred_training_types, selected_workout_days,
		   reminders_enabled, reminder_time_hour, reminder_time_minute,
		   bmi, weight_difference, created_at, updated_at`

type ProfileRepository struct {
	db DBTX
}

func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetLatest returns the most recently updated profile. The upsert invariant
// keeps the table at one row; should more exist, the greatest updated_at wins
// deterministically.
func (r *ProfileRepository) GetLatest(ctx context.Context) (*models.UserProfile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM user_profiles
		ORDER BY updated_at DESC, id DESC
		LIMIT 1
	`
	return r.scanProfile(r.db.QueryRow(ctx, query))
}

// GetLatestForUpdate is GetLatest with a row lock, for use inside the save
// transaction.
func (r *ProfileRepository) GetLatestForUpdate(ctx context.Context) (*models.UserProfile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM user_profiles
		ORDER BY updated_at DESC, id DESC
		LIMIT 1
		FOR UPDATE
	`
	return r.scanProfile(r.db.QueryRow(ctx, query))
}

func (r *ProfileRepository) Insert(ctx context.Context, profile *models.UserProfile) error {
	query := `
		INSERT INTO user_profiles (
			name, age, gender, goal, activity_level, diet,
			height_cm, weight_kg, target_weight_kg, selected_unit,
			preferred_training_types, selected_workout_days,
			reminders_enabled, reminder_time_hour, reminder_time_minute,
			bmi, weight_difference
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		profile.Name,
		profile.Age,
		profile.Gender,
		profile.Goal,
		profile.ActivityLevel,
		profile.Diet,
		profile.HeightCM,
		profile.WeightKG,
		profile.TargetWeightKG,
		profile.SelectedUnit,
		profile.PreferredTrainingTypes,
		profile.SelectedWorkoutDays,
		profile.RemindersEnabled,
		profile.ReminderTimeHour,
		profile.ReminderTimeMinute,
		profile.BMI,
		profile.WeightDifference,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

// Update rewrites every mutable column of the row in place. created_at is
// never touched; updated_at is stamped by the database.
func (r *ProfileRepository) Update(ctx context.Context, profile *models.UserProfile) error {
	query := `
		UPDATE user_profiles
		SET name = $1,
			age = $2,
			gender = $3,
			goal = $4,
			activity_level = $5,
			diet = $6,
			height_cm = $7,
			weight_kg = $8,
			target_weight_kg = $9,
			selected_unit = $10,
			preferred_training_types = $11,
			selected_workout_days = $12,
			reminders_enabled = $13,
			reminder_time_hour = $14,
			reminder_time_minute = $15,
			bmi = $16,
			weight_difference = $17,
			updated_at = NOW()
		WHERE id = $18
		RETURNING created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		profile.Name,
		profile.Age,
		profile.Gender,
		profile.Goal,
		profile.ActivityLevel,
		profile.Diet,
		profile.HeightCM,
		profile.WeightKG,
		profile.TargetWeightKG,
		profile.SelectedUnit,
		profile.PreferredTrainingTypes,
		profile.SelectedWorkoutDays,
		profile.RemindersEnabled,
		profile.ReminderTimeHour,
		profile.ReminderTimeMinute,
		profile.BMI,
		profile.WeightDifference,
		profile.ID,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

// DeleteAll clears the table. Deleting with no profile present is a no-op.
func (r *ProfileRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM user_profiles`)
	return err
}

func (r *ProfileRepository) scanProfile(row pgx.Row) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := row.Scan(
		&profile.ID,
		&profile.Name,
		&profile.Age,
		&profile.Gender,
		&profile.Goal,
		&profile.ActivityLevel,
		&profile.Diet,
		&profile.HeightCM,
		&profile.WeightKG,
		&profile.TargetWeightKG,
		&profile.SelectedUnit,
		&profile.PreferredTrainingTypes,
		&profile.SelectedWorkoutDays,
		&profile.RemindersEnabled,
		&profile.ReminderTimeHour,
		&profile.ReminderTimeMinute,
		&profile.BMI,
		&profile.WeightDifference,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
