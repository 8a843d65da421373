package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/vlad-d/RiseOnBack/internal/events"
	"github.com/vlad-d/RiseOnBack/internal/models"
	"github.com/vlad-d/RiseOnBack/internal/services"
	"github.com/vlad-d/RiseOnBack/internal/survey"
)

// SurveyHandler drives the onboarding wizard over HTTP: one session per
// wizard run, partial answer submission with field-scoped validation, and
// gated navigation. The final advance commits the draft, flips the
// survey-completed flag and pushes the refreshed feature vector to event
// subscribers.
type SurveyHandler struct {
	wizards  *services.WizardService
	flow     *services.AppFlow
	exporter *services.FeatureExporter
	hub      *events.Hub
}

func NewSurveyHandler(
	wizards *services.WizardService,
	flow *services.AppFlow,
	exporter *services.FeatureExporter,
	hub *events.Hub,
) *SurveyHandler {
	return &SurveyHandler{
		wizards:  wizards,
		flow:     flow,
		exporter: exporter,
		hub:      hub,
	}
}

type reminderSettings struct {
	Enabled bool `json:"enabled"`
	Hour    int  `json:"hour"`
	Minute  int  `json:"minute"`
}

// answersRequest carries a partial batch of field updates. Numeric fields
// arrive as raw text because the mobile client forwards its text inputs
// unparsed; the validators own parsing.
type answersRequest struct {
	Name             *string           `json:"name"`
	Age              *string           `json:"age"`
	Gender           *string           `json:"gender"`
	ForceGender      bool              `json:"force_gender"`
	Goal             *string           `json:"goal"`
	ActivityLevel    *string           `json:"activity_level"`
	Diet             *string           `json:"diet"`
	HeightCM         *string           `json:"height_cm"`
	WeightKG         *string           `json:"weight_kg"`
	TargetWeightKG   *string           `json:"target_weight_kg"`
	Unit             *string           `json:"unit"`
	ToggleTraining   *string           `json:"toggle_training_preference"`
	ToggleWorkoutDay *string           `json:"toggle_workout_day"`
	Reminders        *reminderSettings `json:"reminders"`
}

func (h *SurveyHandler) Start(c *fiber.Ctx) error {
	id := h.wizards.Start()

	var view fiber.Map
	_ = h.wizards.Do(id, func(w *survey.Wizard) error {
		view = wizardView(id, w)
		return nil
	})
	return c.JSON(view)
}

func (h *SurveyHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")

	var view fiber.Map
	err := h.wizards.Do(id, func(w *survey.Wizard) error {
		view = wizardView(id, w)
		return nil
	})
	if errors.Is(err, services.ErrSessionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown wizard session"})
	}
	return c.JSON(view)
}

// SubmitAnswers applies every provided field. Invalid values never block the
// others: each failure is reported next to its field and the rest still land.
func (h *SurveyHandler) SubmitAnswers(c *fiber.Ctx) error {
	id := c.Params("id")

	var req answersRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	fieldErrors := map[string]string{}
	var view fiber.Map
	err := h.wizards.Do(id, func(w *survey.Wizard) error {
		applyAnswers(w.Draft(), req, fieldErrors)
		view = wizardView(id, w)
		return nil
	})
	if errors.Is(err, services.ErrSessionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown wizard session"})
	}

	view["errors"] = fieldErrors
	return c.JSON(view)
}

// Advance moves the wizard forward when the current step's gate is open; a
// closed gate leaves the step unchanged. Advancing from the final step is the
// single commit point.
func (h *SurveyHandler) Advance(c *fiber.Ctx) error {
	id := c.Params("id")

	var (
		profile  *models.UserProfile
		finished bool
		view     fiber.Map
	)
	err := h.wizards.Do(id, func(w *survey.Wizard) error {
		var saveErr error
		profile, finished, saveErr = w.Advance(c.Context())
		view = wizardView(id, w)
		return saveErr
	})
	if errors.Is(err, services.ErrSessionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown wizard session"})
	}
	if errors.Is(err, survey.ErrAlreadyCompleted) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Wizard already completed"})
	}
	if err != nil {
		// The store has already logged the failure; the session still
		// completes and the user is not interrupted.
		log.Printf("survey handler: commit failed for session %s: %v", id, err)
	}

	if finished {
		h.wizards.End(id)
		state, flowErr := h.flow.CompleteSurvey(c.Context())
		if flowErr != nil {
			log.Printf("survey handler: mark survey completed: %v", flowErr)
		}
		h.publishCompletion(profile)
		view["finished"] = true
		view["state"] = state
		return c.JSON(view)
	}

	view["finished"] = false
	return c.JSON(view)
}

func (h *SurveyHandler) Retreat(c *fiber.Ctx) error {
	id := c.Params("id")

	var view fiber.Map
	err := h.wizards.Do(id, func(w *survey.Wizard) error {
		w.Retreat()
		view = wizardView(id, w)
		return nil
	})
	if errors.Is(err, services.ErrSessionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown wizard session"})
	}
	return c.JSON(view)
}

// Abandon discards the session without committing anything.
func (h *SurveyHandler) Abandon(c *fiber.Ctx) error {
	h.wizards.End(c.Params("id"))
	return c.JSON(fiber.Map{"discarded": true})
}

func (h *SurveyHandler) publishCompletion(profile *models.UserProfile) {
	if h.hub == nil {
		return
	}
	h.hub.Publish(events.Event{Type: events.TypeSurveyCompleted})
	if profile != nil {
		h.hub.Publish(events.Event{
			Type:     events.TypeProfileUpdated,
			Features: h.exporter.Project(profile),
		})
	}
}

func applyAnswers(draft *survey.Draft, req answersRequest, fieldErrors map[string]string) {
	apply := func(field string, value *string, set func(string) (bool, string)) {
		if value == nil {
			return
		}
		if ok, reason := set(*value); !ok {
			fieldErrors[field] = reason
		}
	}

	apply("name", req.Name, draft.SetName)
	apply("age", req.Age, draft.SetAge)
	apply("gender", req.Gender, draft.SetGender)
	apply("goal", req.Goal, draft.SetGoal)
	apply("activity_level", req.ActivityLevel, draft.SetActivityLevel)
	apply("diet", req.Diet, draft.SetDiet)
	apply("height_cm", req.HeightCM, draft.SetHeight)
	apply("weight_kg", req.WeightKG, draft.SetWeight)
	apply("target_weight_kg", req.TargetWeightKG, draft.SetTargetWeight)
	apply("unit", req.Unit, draft.SetUnit)
	apply("toggle_training_preference", req.ToggleTraining, draft.ToggleTrainingPreference)
	apply("toggle_workout_day", req.ToggleWorkoutDay, draft.ToggleWorkoutDay)

	if req.ForceGender {
		draft.ForceGender()
	}
	if req.Reminders != nil {
		if ok, reason := draft.SetReminders(req.Reminders.Enabled, req.Reminders.Hour, req.Reminders.Minute); !ok {
			fieldErrors["reminders"] = reason
		}
	}
}

func wizardView(id string, w *survey.Wizard) fiber.Map {
	step := w.Step()
	return fiber.Map{
		"session_id":  id,
		"step":        step.ID,
		"title":       step.Title,
		"total_steps": survey.StepCount(),
		"can_advance": w.CanAdvance(),
		"completed":   w.Completed(),
	}
}
