package services

import (
	"context"
	"log"

	"github.com/vlad-d/RiseOnBack/internal/models"
	"github.com/vlad-d/RiseOnBack/internal/prefs"
)

// FeatureSchemaVersion tracks the exported key set. The recommendation
// consumer pins key names against this version; renaming or removing a key
// requires bumping it.
const FeatureSchemaVersion = 1

type profileFetcher interface {
	FetchLatest(ctx context.Context) (*models.UserProfile, error)
}

// FeatureExporter flattens the stored profile into the numeric feature map
// consumed by the recommendation component. It is a read-only projection:
// no stored profile (or a store failure, which is already logged upstream)
// yields an empty map rather than an error.
type FeatureExporter struct {
	store         profileFetcher
	trainingCodec *prefs.Codec
	dayCodec      *prefs.Codec
}

func NewFeatureExporter(store profileFetcher) *FeatureExporter {
	return &FeatureExporter{
		store:         store,
		trainingCodec: newTrainingCodec(),
		dayCodec:      newWorkoutDayCodec(),
	}
}

func (e *FeatureExporter) Export(ctx context.Context) map[string]float64 {
	profile, err := e.store.FetchLatest(ctx)
	if err != nil {
		log.Printf("feature exporter: fetch profile: %v", err)
		return map[string]float64{}
	}
	if profile == nil {
		return map[string]float64{}
	}
	return e.Project(profile)
}

// Project computes the feature map for one profile. Keys are prefixed by
// category, so variant ids can never collide across enums.
func (e *FeatureExporter) Project(profile *models.UserProfile) map[string]float64 {
	features := map[string]float64{
		"age":              floatFromInt(profile.Age),
		"height_cm":        floatValue(profile.HeightCM),
		"weight_kg":        floatValue(profile.WeightKG),
		"target_weight_kg": floatValue(profile.TargetWeightKG),
		"bmi":              floatValue(profile.BMI),
		"weight_delta_kg":  floatValue(profile.WeightDifference),
	}

	// An unrecognized stored id one-hots as the enum's documented fallback.
	for _, variant := range models.Genders() {
		features["gender_"+string(variant)] = oneHot(profile.Gender != nil && models.GenderOrDefault(*profile.Gender) == variant)
	}
	for _, variant := range models.Goals() {
		features["goal_"+string(variant)] = oneHot(profile.Goal != nil && models.GoalOrDefault(*profile.Goal) == variant)
	}
	for _, variant := range models.ActivityLevels() {
		features["level_"+string(variant)] = oneHot(profile.ActivityLevel != nil && models.ActivityLevelOrDefault(*profile.ActivityLevel) == variant)
	}
	for _, variant := range models.Diets() {
		features["diet_"+string(variant)] = oneHot(profile.Diet != nil && models.DietOrDefault(*profile.Diet) == variant)
	}

	selectedPrefs := toSet(e.trainingCodec.Decode(profile.PreferredTrainingTypes))
	for _, id := range e.trainingCodec.Variants() {
		_, on := selectedPrefs[id]
		features["pref_"+id] = oneHot(on)
	}

	selectedDays := toSet(e.dayCodec.Decode(profile.SelectedWorkoutDays))
	for _, id := range e.dayCodec.Variants() {
		_, on := selectedDays[id]
		features["day_"+id] = oneHot(on)
	}
	features["selected_day_count"] = float64(len(selectedDays))

	features["reminders_enabled"] = oneHot(profile.RemindersEnabled)
	features["reminder_hour"] = float64(profile.ReminderTimeHour)
	features["reminder_minute"] = float64(profile.ReminderTimeMinute)

	return features
}

func oneHot(on bool) float64 {
	if on {
		return 1
	}
	return 0
}

func floatValue(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}

func floatFromInt(value *int) float64 {
	if value == nil {
		return 0
	}
	return float64(*value)
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
