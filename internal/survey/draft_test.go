package survey

import (
	"reflect"
	"testing"

	"github.com/vlad-d/RiseOnBack/internal/models"
)

func TestSetterRejectionsLeaveDraftUntouched(t *testing.T) {
	draft := NewDraft()

	if ok, _ := draft.SetAge("9"); ok {
		t.Fatal("expected age 9 to be rejected")
	}
	if draft.Age != nil {
		t.Fatal("rejected age must not mutate the draft")
	}

	if ok, _ := draft.SetGoal("get_swole"); ok {
		t.Fatal("expected unknown goal to be rejected")
	}
	if draft.Goal != nil {
		t.Fatal("rejected goal must not mutate the draft")
	}
}

func TestToggleIsSymmetricDifference(t *testing.T) {
	draft := NewDraft()

	if ok, _ := draft.ToggleTrainingPreference("yoga"); !ok {
		t.Fatal("toggle yoga")
	}
	if _, selected := draft.TrainingPreferences[models.TrainingYoga]; !selected {
		t.Fatal("expected yoga selected after first toggle")
	}

	if ok, _ := draft.ToggleTrainingPreference("yoga"); !ok {
		t.Fatal("toggle yoga again")
	}
	if _, selected := draft.TrainingPreferences[models.TrainingYoga]; selected {
		t.Fatal("expected yoga deselected after second toggle")
	}

	if ok, _ := draft.ToggleWorkoutDay("someday"); ok {
		t.Fatal("expected unknown day to be rejected")
	}
}

func TestSelectedIDsAreCanonicallyOrdered(t *testing.T) {
	draft := NewDraft()
	draft.ToggleTrainingPreference("yoga")
	draft.ToggleTrainingPreference("cardio")
	draft.ToggleWorkoutDay("friday")
	draft.ToggleWorkoutDay("monday")

	if got := draft.SelectedTrainingIDs(); !reflect.DeepEqual(got, []string{"cardio", "yoga"}) {
		t.Fatalf("training ids out of order: %v", got)
	}
	if got := draft.SelectedWorkoutDayIDs(); !reflect.DeepEqual(got, []string{"monday", "friday"}) {
		t.Fatalf("day ids out of order: %v", got)
	}
}

func TestForceGenderUsesDefaultVariantOnce(t *testing.T) {
	draft := NewDraft()
	draft.ForceGender()
	if draft.Gender == nil || *draft.Gender != models.DefaultGender {
		t.Fatalf("expected default gender, got %v", draft.Gender)
	}

	draft.SetGender("female")
	draft.ForceGender()
	if *draft.Gender != models.GenderFemale {
		t.Fatal("ForceGender must not override an explicit choice")
	}
}

func TestCompleteRequiresEverything(t *testing.T) {
	draft := completeDraft()
	if !draft.Complete() {
		t.Fatal("expected fully answered draft to be complete")
	}

	draft.ToggleWorkoutDay("monday")
	if draft.Complete() {
		t.Fatal("draft without workout days must be incomplete")
	}
}

func TestSetRemindersValidatesTime(t *testing.T) {
	draft := NewDraft()

	if ok, _ := draft.SetReminders(true, 24, 0); ok {
		t.Fatal("hour 24 must be rejected")
	}
	if ok, _ := draft.SetReminders(true, 8, 60); ok {
		t.Fatal("minute 60 must be rejected")
	}
	if ok, _ := draft.SetReminders(true, 7, 30); !ok {
		t.Fatal("expected 07:30 to be accepted")
	}
	if !draft.RemindersEnabled || draft.ReminderTimeHour != 7 || draft.ReminderTimeMinute != 30 {
		t.Fatal("reminder settings not applied")
	}
}

func completeDraft() *Draft {
	draft := NewDraft()
	draft.SetName("Alex")
	draft.SetAge("30")
	draft.SetGender("male")
	draft.SetGoal("lose_weight")
	draft.SetActivityLevel("moderate")
	draft.SetDiet("balanced")
	draft.SetHeight("175")
	draft.SetWeight("70")
	draft.SetTargetWeight("65")
	draft.ToggleTrainingPreference("strength")
	draft.ToggleWorkoutDay("monday")
	return draft
}
