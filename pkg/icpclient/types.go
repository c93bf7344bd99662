package icpclient

import "fmt"

// Input is a canonical input record. All fields except Constraints and
// MetabolicContext are required codes.
type Input struct {
	Goal              string   `json:"goal"`
	TrainingFrequency string   `json:"training_frequency"`
	AgeBand           string   `json:"age_band"`
	SleepBaseline     string   `json:"sleep_baseline"`
	CaffeineUse       string   `json:"caffeine_use"`
	MetabolicContext  bool     `json:"metabolic_context"`
	Constraints       []string `json:"constraints"`
}

// Answers are raw questionnaire answers keyed by option label.
type Answers struct {
	PrimaryGoal       string   `json:"primary_goal"`
	Constraints       []string `json:"constraints"`
	AgeBand           string   `json:"age_band"`
	TrainingFrequency string   `json:"training_frequency"`
	SleepBaseline     string   `json:"sleep_baseline"`
	CaffeineUse       string   `json:"caffeine_use"`
	ProteinReality    string   `json:"protein_reality,omitempty"`
	Sensitivities     []string `json:"sensitivities"`
	SystemStrictness  string   `json:"system_strictness,omitempty"`
	UsesWearable      *bool    `json:"uses_wearable,omitempty"`
	WearableDevice    string   `json:"wearable_device,omitempty"`
	ReviewCadence     string   `json:"review_cadence,omitempty"`
}

// Result is a classification outcome.
type Result struct {
	PrimaryICP string         `json:"primary_icp"`
	Scores     map[string]int `json:"scores"`
	Confidence string         `json:"confidence"`
}

// Classification is the response to a classify call.
type Classification struct {
	EvaluationID string  `json:"evaluation_id"`
	Result       *Result `json:"result"`
	DisplayName  string  `json:"display_name,omitempty"`
	Description  string  `json:"description,omitempty"`
}

// Drift is an answer label the service did not recognize.
type Drift struct {
	Dimension string `json:"dimension"`
	Label     string `json:"label"`
}

// AnswersClassification is the response to ClassifyAnswers.
// Result and System are nil while Missing is non-empty.
type AnswersClassification struct {
	Classification
	Missing []string `json:"missing"`
	Drift   []Drift  `json:"drift,omitempty"`
	System  *System  `json:"system,omitempty"`
}

// System is the recommended baseline protocol.
type System struct {
	Sections []struct {
		Title string `json:"title"`
		Items []struct {
			Name        string `json:"name"`
			Description string `json:"description,omitempty"`
		} `json:"items"`
	} `json:"sections"`
	Conditional []ConditionalItem `json:"conditional"`
	Exclusions  []string          `json:"exclusions"`
}

// ConditionalItem is a protocol add-on and whether it applies yet.
type ConditionalItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Eligible    bool   `json:"eligible"`
	Status      string `json:"status"`
}

// Category is the display metadata for one category.
type Category struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
}

// Health is the service health report.
type Health struct {
	Status     string `json:"status"`
	Version    string `json:"version"`
	Categories int    `json:"categories"`
}

// FieldError is a single validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is a non-2xx response decoded from RFC 7807 Problem Details.
type APIError struct {
	StatusCode int          `json:"status"`
	Type       string       `json:"type"`
	Title      string       `json:"title"`
	Detail     string       `json:"detail"`
	Errors     []FieldError `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("icp: %d %s", e.StatusCode, e.Title)
	}
	return fmt.Sprintf("icp: %d %s: %s", e.StatusCode, e.Title, e.Detail)
}
