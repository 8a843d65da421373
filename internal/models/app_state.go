package models

// AppState holds the installation-level flags that gate the outer app flow.
// They live outside the profile aggregate: a full reset clears them together
// with the stored profile.
type AppState struct {
	HasLaunchedBefore bool `json:"has_launched_before"`
	IsAuthenticated   bool `json:"is_authenticated"`
	SurveyCompleted   bool `json:"survey_completed"`
}

// FlowState is one of the outer coordinator's resolved destinations.
type FlowState string

const (
	FlowSplash  FlowState = "splash"
	FlowWelcome FlowState = "welcome"
	FlowAuth    FlowState = "auth"
	FlowSurvey  FlowState = "survey"
	FlowMain    FlowState = "main"
)
