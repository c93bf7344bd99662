package onboarding

import "github.com/hyperengineering/icp/internal/labels"

// StepKind selects how a questionnaire step is answered.
type StepKind string

const (
	KindSingle   StepKind = "single_choice"
	KindMulti    StepKind = "multi_choice"
	KindWearable StepKind = "wearable"
)

// TotalSteps is the number of steps counted by the progress indicator.
const TotalSteps = 13

// Step is one question of the onboarding flow.
type Step struct {
	Number         int      `json:"number"`
	ID             string   `json:"id"`
	Kind           StepKind `json:"kind"`
	Question       string   `json:"question"`
	HelperText     string   `json:"helper_text,omitempty"`
	ComplianceNote string   `json:"compliance_note,omitempty"`
	Options        []string `json:"options"`
	// Classifier is the dimension this answer feeds, empty when unused for classification.
	Classifier string `json:"classifier,omitempty"`
}

// WearableDevices are the device choices offered after answering yes.
func WearableDevices() []string {
	return []string{"WHOOP", "Oura", "Apple Watch", "Garmin", "Other"}
}

// Questionnaire returns the ordered question steps of the onboarding flow.
func Questionnaire() []Step {
	return []Step{
		{
			Number:     1,
			ID:         "primary_goal",
			Kind:       KindSingle,
			Question:   "What are you optimizing for right now?",
			Options:    labels.GoalOptions(),
			Classifier: string(labels.DimensionGoal),
		},
		{
			Number:     2,
			ID:         "constraints",
			Kind:       KindMulti,
			Question:   "What constraints must this fit?",
			Options:    labels.ConstraintOptions(),
			Classifier: string(labels.DimensionConstraint),
		},
		{
			Number:     3,
			ID:         "age_band",
			Kind:       KindSingle,
			Question:   "What's your age range?",
			HelperText: "This helps calibrate supplement timing and dosage recommendations.",
			Options:    labels.AgeOptions(),
			Classifier: string(labels.DimensionAgeBand),
		},
		{
			Number:     4,
			ID:         "training_frequency",
			Kind:       KindSingle,
			Question:   "How often do you train?",
			Options:    labels.TrainingOptions(),
			Classifier: string(labels.DimensionTrainingFrequency),
		},
		{
			Number:     5,
			ID:         "sleep_baseline",
			Kind:       KindSingle,
			Question:   "On most nights, your sleep is…",
			Options:    labels.SleepOptions(),
			Classifier: string(labels.DimensionSleepBaseline),
		},
		{
			Number:     6,
			ID:         "caffeine_use",
			Kind:       KindSingle,
			Question:   "Which best describes your caffeine use?",
			HelperText: "We don't police this. We simply don't interpret cognitive optimization when acute stimulants are present.",
			Options:    labels.CaffeineOptions(),
			Classifier: string(labels.DimensionCaffeineUse),
		},
		{
			Number:     7,
			ID:         "protein_reality",
			Kind:       KindSingle,
			Question:   "Protein is handled via food, not supplements. Are you getting enough daily?",
			HelperText: "We'll give you a protein target and food-based guidance. Protein is not included in shipments.",
			Options:    []string{"Yes, usually", "Not sure", "No, I struggle"},
		},
		{
			Number:         8,
			ID:             "sensitivities",
			Kind:           KindMulti,
			Question:       "Anything we should be aware of?",
			ComplianceNote: "Consult your clinician if applicable.",
			Options:        labels.SensitivityOptions(),
			Classifier:     string(labels.DimensionSensitivity),
		},
		{
			Number:   9,
			ID:       "system_strictness",
			Kind:     KindSingle,
			Question: "How strict should the system be?",
			Options:  StrictnessOptions(),
		},
		{
			Number:     10,
			ID:         "uses_wearable",
			Kind:       KindWearable,
			Question:   "Do you use a wearable?",
			HelperText: "We use trends to decide when NOT to change your protocol. No daily optimization.",
			Options:    []string{"Yes", "No"},
		},
		{
			Number:   11,
			ID:       "review_cadence",
			Kind:     KindSingle,
			Question: "How often should we review your system?",
			Options:  []string{"Every 4 weeks (recommended)", "Every 8 weeks"},
		},
	}
}
