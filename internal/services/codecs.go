package services

import (
	"github.com/vlad-d/RiseOnBack/internal/models"
	"github.com/vlad-d/RiseOnBack/internal/prefs"
)

// The two preference codecs share one implementation, parameterized by the
// enum's variant set.

func newTrainingCodec() *prefs.Codec {
	variants := models.TrainingPreferences()
	ids := make([]string, len(variants))
	for i, v := range variants {
		ids[i] = string(v)
	}
	return prefs.NewCodec(ids)
}

func newWorkoutDayCodec() *prefs.Codec {
	variants := models.WorkoutDays()
	ids := make([]string, len(variants))
	for i, v := range variants {
		ids[i] = string(v)
	}
	return prefs.NewCodec(ids)
}
