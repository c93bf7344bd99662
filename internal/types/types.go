package types

import (
	"encoding/json"

	"github.com/hyperengineering/icp/internal/icp"
	"github.com/hyperengineering/icp/internal/onboarding"
)

// ClassifyRequest is the canonical input record as received over the wire.
// Codes are kept as plain strings until validated.
type ClassifyRequest struct {
	Goal              string   `json:"goal"`
	TrainingFrequency string   `json:"training_frequency"`
	AgeBand           string   `json:"age_band"`
	SleepBaseline     string   `json:"sleep_baseline"`
	CaffeineUse       string   `json:"caffeine_use"`
	MetabolicContext  bool     `json:"metabolic_context"`
	Constraints       []string `json:"constraints"`
}

// Input converts a validated request into a classifier input.
func (r ClassifyRequest) Input() icp.Input {
	constraints := make([]icp.Constraint, len(r.Constraints))
	for i, c := range r.Constraints {
		constraints[i] = icp.Constraint(c)
	}
	return icp.Input{
		Goal:              icp.Goal(r.Goal),
		TrainingFrequency: icp.TrainingFrequency(r.TrainingFrequency),
		AgeBand:           icp.AgeBand(r.AgeBand),
		SleepBaseline:     icp.SleepBaseline(r.SleepBaseline),
		CaffeineUse:       icp.CaffeineUse(r.CaffeineUse),
		MetabolicContext:  r.MetabolicContext,
		Constraints:       constraints,
	}
}

// ClassifyResponse wraps a classification with its evaluation id.
type ClassifyResponse struct {
	EvaluationID string      `json:"evaluation_id"`
	Result       *icp.Result `json:"result"`
	DisplayName  string      `json:"display_name,omitempty"`
	Description  string      `json:"description,omitempty"`
}

// NewClassifyResponse builds a response, attaching display metadata for the primary category.
func NewClassifyResponse(evaluationID string, res *icp.Result) ClassifyResponse {
	resp := ClassifyResponse{EvaluationID: evaluationID, Result: res}
	if res != nil {
		resp.DisplayName = res.Primary.DisplayName()
		resp.Description = res.Primary.Description()
	}
	return resp
}

// OnboardingClassifyRequest carries raw questionnaire answers.
type OnboardingClassifyRequest = onboarding.Answers

// OnboardingClassifyResponse is returned for raw answers.
// Result is null until every blocking question is answered; System is
// present only alongside a result.
type OnboardingClassifyResponse struct {
	ClassifyResponse
	Missing []string           `json:"missing"`
	Drift   []onboarding.Drift `json:"drift,omitempty"`
	System  *onboarding.System `json:"system,omitempty"`
}

// MarshalJSON ensures a nil Missing slice marshals as [] not null.
func (r OnboardingClassifyResponse) MarshalJSON() ([]byte, error) {
	if r.Missing == nil {
		r.Missing = []string{}
	}
	type Alias OnboardingClassifyResponse
	return json.Marshal(Alias(r))
}

// CategoryInfo is the display metadata for one category.
type CategoryInfo struct {
	ID          icp.Category `json:"id"`
	DisplayName string       `json:"display_name"`
	Description string       `json:"description"`
}

// CategoriesResponse lists every category in canonical order.
type CategoriesResponse struct {
	Categories []CategoryInfo `json:"categories"`
}

// NewCategoriesResponse collects display metadata for all categories.
func NewCategoriesResponse() CategoriesResponse {
	cats := icp.Categories()
	out := make([]CategoryInfo, len(cats))
	for i, c := range cats {
		out[i] = CategoryInfo{ID: c, DisplayName: c.DisplayName(), Description: c.Description()}
	}
	return CategoriesResponse{Categories: out}
}

// QuestionsResponse is the onboarding questionnaire.
type QuestionsResponse struct {
	TotalSteps      int               `json:"total_steps"`
	Steps           []onboarding.Step `json:"steps"`
	WearableDevices []string          `json:"wearable_devices"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status     string `json:"status"`
	Version    string `json:"version"`
	Categories int    `json:"categories"`
}
