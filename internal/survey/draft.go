package survey

import (
	"sort"
	"strconv"
	"strings"

	"github.com/vlad-d/RiseOnBack/internal/models"
)

// Draft holds the in-progress wizard answers for one session. It is owned
// exclusively by that session, is never persisted field-by-field, and is
// either discarded or committed whole through the profile store.
type Draft struct {
	Name           string
	Age            *int
	Gender         *models.Gender
	Goal           *models.Goal
	ActivityLevel  *models.ActivityLevel
	Diet           *models.Diet
	HeightCM       *float64
	WeightKG       *float64
	TargetWeightKG *float64
	Unit           models.Unit

	TrainingPreferences map[models.TrainingPreference]struct{}
	WorkoutDays         map[models.WorkoutDay]struct{}

	RemindersEnabled   bool
	ReminderTimeHour   int
	ReminderTimeMinute int
}

func NewDraft() *Draft {
	return &Draft{
		Unit:                models.DefaultUnit,
		TrainingPreferences: make(map[models.TrainingPreference]struct{}),
		WorkoutDays:         make(map[models.WorkoutDay]struct{}),
	}
}

// Setters validate raw input before mutating; an invalid value leaves the
// draft untouched and reports the field-scoped reason.

func (d *Draft) SetName(raw string) (bool, string) {
	if ok, reason := ValidateName(raw); !ok {
		return false, reason
	}
	d.Name = strings.TrimSpace(raw)
	return true, ""
}

func (d *Draft) SetAge(raw string) (bool, string) {
	if ok, reason := ValidateAge(raw); !ok {
		return false, reason
	}
	age, _ := strconv.Atoi(strings.TrimSpace(raw))
	d.Age = &age
	return true, ""
}

func (d *Draft) SetGender(id string) (bool, string) {
	gender, ok := models.ParseGender(id)
	if !ok {
		return false, "gender is not a known option"
	}
	d.Gender = &gender
	return true, ""
}

// ForceGender fills the gender with the default variant. The mobile client
// uses this when the user skips the picker without choosing.
func (d *Draft) ForceGender() {
	if d.Gender == nil {
		gender := models.DefaultGender
		d.Gender = &gender
	}
}

func (d *Draft) SetGoal(id string) (bool, string) {
	goal, ok := models.ParseGoal(id)
	if !ok {
		return false, "goal is not a known option"
	}
	d.Goal = &goal
	return true, ""
}

func (d *Draft) SetActivityLevel(id string) (bool, string) {
	level, ok := models.ParseActivityLevel(id)
	if !ok {
		return false, "activity level is not a known option"
	}
	d.ActivityLevel = &level
	return true, ""
}

func (d *Draft) SetDiet(id string) (bool, string) {
	diet, ok := models.ParseDiet(id)
	if !ok {
		return false, "diet is not a known option"
	}
	d.Diet = &diet
	return true, ""
}

func (d *Draft) SetHeight(raw string) (bool, string) {
	if ok, reason := ValidateHeight(raw); !ok {
		return false, reason
	}
	height, _ := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	d.HeightCM = &height
	return true, ""
}

func (d *Draft) SetWeight(raw string) (bool, string) {
	if ok, reason := ValidateWeight(raw); !ok {
		return false, reason
	}
	weight, _ := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	d.WeightKG = &weight
	return true, ""
}

func (d *Draft) SetTargetWeight(raw string) (bool, string) {
	if ok, reason := ValidateTargetWeight(raw); !ok {
		return false, reason
	}
	target, _ := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	d.TargetWeightKG = &target
	return true, ""
}

func (d *Draft) SetUnit(id string) (bool, string) {
	unit, ok := models.ParseUnit(id)
	if !ok {
		return false, "unit must be metric or imperial"
	}
	d.Unit = unit
	return true, ""
}

func (d *Draft) SetReminders(enabled bool, hour, minute int) (bool, string) {
	if hour < 0 || hour > 23 {
		return false, "reminder hour must be between 0 and 23"
	}
	if minute < 0 || minute > 59 {
		return false, "reminder minute must be between 0 and 59"
	}
	d.RemindersEnabled = enabled
	d.ReminderTimeHour = hour
	d.ReminderTimeMinute = minute
	return true, ""
}

// ToggleTrainingPreference flips membership: selecting adds, re-selecting
// removes.
func (d *Draft) ToggleTrainingPreference(id string) (bool, string) {
	pref, ok := models.ParseTrainingPreference(id)
	if !ok {
		return false, "training preference is not a known option"
	}
	if _, selected := d.TrainingPreferences[pref]; selected {
		delete(d.TrainingPreferences, pref)
	} else {
		d.TrainingPreferences[pref] = struct{}{}
	}
	return true, ""
}

func (d *Draft) ToggleWorkoutDay(id string) (bool, string) {
	day, ok := models.ParseWorkoutDay(id)
	if !ok {
		return false, "workout day is not a known option"
	}
	if _, selected := d.WorkoutDays[day]; selected {
		delete(d.WorkoutDays, day)
	} else {
		d.WorkoutDays[day] = struct{}{}
	}
	return true, ""
}

// Complete reports whether every required field is filled and at least one
// training preference and one workout day are selected.
func (d *Draft) Complete() bool {
	return d.Name != "" &&
		d.Age != nil &&
		d.Gender != nil &&
		d.Goal != nil &&
		d.ActivityLevel != nil &&
		d.Diet != nil &&
		d.HeightCM != nil &&
		d.WeightKG != nil &&
		d.TargetWeightKG != nil &&
		len(d.TrainingPreferences) > 0 &&
		len(d.WorkoutDays) > 0
}

// SelectedTrainingIDs returns the chosen preferences in canonical variant
// order, for stable rendering and encoding.
func (d *Draft) SelectedTrainingIDs() []string {
	ids := make([]string, 0, len(d.TrainingPreferences))
	for pref := range d.TrainingPreferences {
		ids = append(ids, string(pref))
	}
	sort.Slice(ids, func(i, j int) bool {
		return trainingRank(ids[i]) < trainingRank(ids[j])
	})
	return ids
}

func (d *Draft) SelectedWorkoutDayIDs() []string {
	ids := make([]string, 0, len(d.WorkoutDays))
	for day := range d.WorkoutDays {
		ids = append(ids, string(day))
	}
	sort.Slice(ids, func(i, j int) bool {
		return dayRank(ids[i]) < dayRank(ids[j])
	})
	return ids
}

func trainingRank(id string) int {
	for idx, pref := range models.TrainingPreferences() {
		if string(pref) == id {
			return idx
		}
	}
	return len(models.TrainingPreferences())
}

func dayRank(id string) int {
	for idx, day := range models.WorkoutDays() {
		if string(day) == id {
			return idx
		}
	}
	return len(models.WorkoutDays())
}
