package models

import "time"

// UserProfile is the single durable onboarding record. At most one row exists
// per installation; writes go through the profile store's upsert. BMI and
// WeightDifference are derived on every save and never independently settable.
type UserProfile struct {
	ID                     int64     `json:"id"`
	Name                   *string   `json:"name"`
	Age                    *int      `json:"age"`
	Gender                 *string   `json:"gender"`
	Goal                   *string   `json:"goal"`
	ActivityLevel          *string   `json:"activity_level"`
	Diet                   *string   `json:"diet"`
	HeightCM               *float64  `json:"height_cm"`
	WeightKG               *float64  `json:"weight_kg"`
	TargetWeightKG         *float64  `json:"target_weight_kg"`
	SelectedUnit           string    `json:"selected_unit"`
	PreferredTrainingTypes string    `json:"preferred_training_types"`
	SelectedWorkoutDays    string    `json:"selected_workout_days"`
	RemindersEnabled       bool      `json:"reminders_enabled"`
	ReminderTimeHour       int       `json:"reminder_time_hour"`
	ReminderTimeMinute     int       `json:"reminder_time_minute"`
	BMI                    *float64  `json:"bmi"`
	WeightDifference       *float64  `json:"weight_difference"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// ProfileExport is the backup document served by the data-export endpoint.
// TrainingPreferences and WorkoutDays carry the decoded sets alongside the
// raw profile so consumers do not need the portable encoding.
type ProfileExport struct {
	ExportDate time.Time      `json:"export_date"`
	Profile    ExportedRecord `json:"profile"`
}

type ExportedRecord struct {
	UserProfile
	TrainingPreferences []TrainingPreference `json:"training_preferences"`
	WorkoutDays         []WorkoutDay         `json:"workout_days"`
}
