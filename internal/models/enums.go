package models

// Survey enums are persisted by their stable string id. Ids never change once
// assigned; descriptions are display-only and free to change. Each enum has a
// documented fallback used when a stored value no longer parses — applied only
// through the *OrDefault helpers, never at call sites.

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// DefaultGender is the first variant; a forced gender selection starts here.
const DefaultGender = GenderMale

func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderOther}
}

func ParseGender(id string) (Gender, bool) {
	switch Gender(id) {
	case GenderMale, GenderFemale, GenderOther:
		return Gender(id), true
	}
	return "", false
}

func GenderOrDefault(id string) Gender {
	if g, ok := ParseGender(id); ok {
		return g
	}
	return DefaultGender
}

func (g Gender) Description() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	case GenderOther:
		return "Other"
	}
	return string(g)
}

type Goal string

const (
	GoalLoseWeight     Goal = "lose_weight"
	GoalGainMuscle     Goal = "gain_muscle"
	GoalKeepFit        Goal = "keep_fit"
	GoalBuildEndurance Goal = "build_endurance"
)

const DefaultGoal = GoalKeepFit

func Goals() []Goal {
	return []Goal{GoalLoseWeight, GoalGainMuscle, GoalKeepFit, GoalBuildEndurance}
}

func ParseGoal(id string) (Goal, bool) {
	switch Goal(id) {
	case GoalLoseWeight, GoalGainMuscle, GoalKeepFit, GoalBuildEndurance:
		return Goal(id), true
	}
	return "", false
}

func GoalOrDefault(id string) Goal {
	if g, ok := ParseGoal(id); ok {
		return g
	}
	return DefaultGoal
}

func (g Goal) Description() string {
	switch g {
	case GoalLoseWeight:
		return "Lose weight"
	case GoalGainMuscle:
		return "Gain muscle"
	case GoalKeepFit:
		return "Keep fit"
	case GoalBuildEndurance:
		return "Build endurance"
	}
	return string(g)
}

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityVeryActive ActivityLevel = "very_active"
)

const DefaultActivityLevel = ActivitySedentary

func ActivityLevels() []ActivityLevel {
	return []ActivityLevel{ActivitySedentary, ActivityLight, ActivityModerate, ActivityVeryActive}
}

func ParseActivityLevel(id string) (ActivityLevel, bool) {
	switch ActivityLevel(id) {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityVeryActive:
		return ActivityLevel(id), true
	}
	return "", false
}

func ActivityLevelOrDefault(id string) ActivityLevel {
	if l, ok := ParseActivityLevel(id); ok {
		return l
	}
	return DefaultActivityLevel
}

func (l ActivityLevel) Description() string {
	switch l {
	case ActivitySedentary:
		return "Sedentary (little or no exercise)"
	case ActivityLight:
		return "Lightly active (1-3 days a week)"
	case ActivityModerate:
		return "Moderately active (3-5 days a week)"
	case ActivityVeryActive:
		return "Very active (6-7 days a week)"
	}
	return string(l)
}

type Diet string

const (
	DietBalanced   Diet = "balanced"
	DietVegetarian Diet = "vegetarian"
	DietVegan      Diet = "vegan"
	DietKeto       Diet = "keto"
)

const DefaultDiet = DietBalanced

func Diets() []Diet {
	return []Diet{DietBalanced, DietVegetarian, DietVegan, DietKeto}
}

func ParseDiet(id string) (Diet, bool) {
	switch Diet(id) {
	case DietBalanced, DietVegetarian, DietVegan, DietKeto:
		return Diet(id), true
	}
	return "", false
}

func DietOrDefault(id string) Diet {
	if d, ok := ParseDiet(id); ok {
		return d
	}
	return DefaultDiet
}

func (d Diet) Description() string {
	switch d {
	case DietBalanced:
		return "Balanced"
	case DietVegetarian:
		return "Vegetarian"
	case DietVegan:
		return "Vegan"
	case DietKeto:
		return "Keto"
	}
	return string(d)
}

type TrainingPreference string

const (
	TrainingCardio     TrainingPreference = "cardio"
	TrainingStrength   TrainingPreference = "strength"
	TrainingYoga       TrainingPreference = "yoga"
	TrainingPilates    TrainingPreference = "pilates"
	TrainingHIIT       TrainingPreference = "hiit"
	TrainingStretching TrainingPreference = "stretching"
)

func TrainingPreferences() []TrainingPreference {
	return []TrainingPreference{
		TrainingCardio,
		TrainingStrength,
		TrainingYoga,
		TrainingPilates,
		TrainingHIIT,
		TrainingStretching,
	}
}

func ParseTrainingPreference(id string) (TrainingPreference, bool) {
	switch TrainingPreference(id) {
	case TrainingCardio, TrainingStrength, TrainingYoga, TrainingPilates, TrainingHIIT, TrainingStretching:
		return TrainingPreference(id), true
	}
	return "", false
}

func (p TrainingPreference) Description() string {
	switch p {
	case TrainingCardio:
		return "Cardio"
	case TrainingStrength:
		return "Strength training"
	case TrainingYoga:
		return "Yoga"
	case TrainingPilates:
		return "Pilates"
	case TrainingHIIT:
		return "HIIT"
	case TrainingStretching:
		return "Stretching"
	}
	return string(p)
}

type WorkoutDay string

const (
	Monday    WorkoutDay = "monday"
	Tuesday   WorkoutDay = "tuesday"
	Wednesday WorkoutDay = "wednesday"
	Thursday  WorkoutDay = "thursday"
	Friday    WorkoutDay = "friday"
	Saturday  WorkoutDay = "saturday"
	Sunday    WorkoutDay = "sunday"
)

func WorkoutDays() []WorkoutDay {
	return []WorkoutDay{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

func ParseWorkoutDay(id string) (WorkoutDay, bool) {
	switch WorkoutDay(id) {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return WorkoutDay(id), true
	}
	return "", false
}

func (d WorkoutDay) Description() string {
	switch d {
	case Monday:
		return "Monday"
	case Tuesday:
		return "Tuesday"
	case Wednesday:
		return "Wednesday"
	case Thursday:
		return "Thursday"
	case Friday:
		return "Friday"
	case Saturday:
		return "Saturday"
	case Sunday:
		return "Sunday"
	}
	return string(d)
}

// Unit is a display preference only; heights and weights are stored metric.
type Unit string

const (
	UnitMetric   Unit = "metric"
	UnitImperial Unit = "imperial"
)

const DefaultUnit = UnitMetric

func ParseUnit(id string) (Unit, bool) {
	switch Unit(id) {
	case UnitMetric, UnitImperial:
		return Unit(id), true
	}
	return "", false
}

func UnitOrDefault(id string) Unit {
	if u, ok := ParseUnit(id); ok {
		return u
	}
	return DefaultUnit
}
