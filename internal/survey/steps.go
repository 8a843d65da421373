package survey

// StepDescriptor declares one wizard step: its position, a display title and
// the predicate gating forward navigation. The wizard iterates this list, so
// inserting or removing a step is a data change, not a control-flow rewrite.
type StepDescriptor struct {
	ID       int
	Title    string
	Complete func(d *Draft) bool
}

// Steps is the fixed onboarding sequence. Step 1 is the welcome screen and is
// always advanceable; every other step gates on its own required fields.
func Steps() []StepDescriptor {
	return []StepDescriptor{
		{
			ID:       1,
			Title:    "Welcome",
			Complete: func(*Draft) bool { return true },
		},
		{
			ID:    2,
			Title: "About you",
			Complete: func(d *Draft) bool {
				return d.Name != "" && d.Age != nil && d.Gender != nil
			},
		},
		{
			ID:    3,
			Title: "Your goal",
			Complete: func(d *Draft) bool {
				return d.Goal != nil
			},
		},
		{
			ID:    4,
			Title: "Body metrics",
			Complete: func(d *Draft) bool {
				return d.HeightCM != nil && d.WeightKG != nil
			},
		},
		{
			ID:    5,
			Title: "Target weight",
			Complete: func(d *Draft) bool {
				return d.TargetWeightKG != nil
			},
		},
		{
			ID:    6,
			Title: "Activity level",
			Complete: func(d *Draft) bool {
				return d.ActivityLevel != nil
			},
		},
		{
			ID:    7,
			Title: "Diet and training",
			Complete: func(d *Draft) bool {
				return d.Diet != nil && len(d.TrainingPreferences) > 0
			},
		},
		{
			ID:    8,
			Title: "Schedule",
			Complete: func(d *Draft) bool {
				return len(d.WorkoutDays) > 0
			},
		},
	}
}

// StepCount is the number of wizard steps.
func StepCount() int {
	return len(Steps())
}
