// Package onboarding holds the respondent's raw questionnaire answers and
// turns them into a classifier input once enough has been answered.
package onboarding

import (
	"github.com/hyperengineering/icp/internal/icp"
	"github.com/hyperengineering/icp/internal/labels"
)

// Answers is the raw questionnaire state, keyed by option label.
// An empty string means the question has not been answered.
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

// Drift records an answer whose label was not recognized and was mapped to a default.
type Drift struct {
	Dimension labels.Dimension `json:"dimension"`
	Label     string           `json:"label"`
}

// ToggleConstraint selects or deselects a constraint option.
// Selecting any option clears the "None of these" sentinel.
func (a *Answers) ToggleConstraint(option string) {
	a.Constraints = toggle(a.Constraints, option, labels.ConstraintNone)
}

// ToggleSensitivity selects or deselects a sensitivity option.
// Selecting any option clears the "None / prefer not to say" sentinel.
func (a *Answers) ToggleSensitivity(option string) {
	a.Sensitivities = toggle(a.Sensitivities, option, labels.SensitivityNone)
}

// SetWearable records whether a wearable is used; answering no clears the device.
func (a *Answers) SetWearable(uses bool) {
	a.UsesWearable = &uses
	if !uses {
		a.WearableDevice = ""
	}
}

func toggle(selected []string, option, sentinel string) []string {
	out := make([]string, 0, len(selected)+1)
	found := false
	for _, s := range selected {
		if s == option {
			found = true
			continue
		}
		out = append(out, s)
	}
	if found {
		return out
	}

	kept := out[:0]
	for _, s := range out {
		if s != sentinel {
			kept = append(kept, s)
		}
	}
	return append(kept, option)
}

// Missing lists the classifier dimensions that are still unanswered.
// Constraints and sensitivities never block classification.
func (a Answers) Missing() []string {
	var missing []string
	if a.PrimaryGoal == "" {
		missing = append(missing, string(labels.DimensionGoal))
	}
	if a.TrainingFrequency == "" {
		missing = append(missing, string(labels.DimensionTrainingFrequency))
	}
	if a.AgeBand == "" {
		missing = append(missing, string(labels.DimensionAgeBand))
	}
	if a.SleepBaseline == "" {
		missing = append(missing, string(labels.DimensionSleepBaseline))
	}
	if a.CaffeineUse == "" {
		missing = append(missing, string(labels.DimensionCaffeineUse))
	}
	return missing
}

// Complete reports whether every blocking answer is present.
func (a Answers) Complete() bool {
	return len(a.Missing()) == 0
}

// Input maps the answers into a classifier input.
// It returns false while any blocking answer is missing; partial answers are
// never filled with defaults.
func (a Answers) Input() (icp.Input, bool) {
	if !a.Complete() {
		return icp.Input{}, false
	}
	return icp.Input{
		Goal:              labels.MapGoal(a.PrimaryGoal),
		TrainingFrequency: labels.MapTrainingFrequency(a.TrainingFrequency),
		AgeBand:           labels.MapAgeBand(a.AgeBand),
		SleepBaseline:     labels.MapSleepBaseline(a.SleepBaseline),
		CaffeineUse:       labels.MapCaffeineUse(a.CaffeineUse),
		MetabolicContext:  labels.DeriveMetabolicContext(a.Sensitivities),
		Constraints:       labels.MapConstraints(a.Constraints),
	}, true
}

// Classify returns the classification, or nil while answers are incomplete.
func (a Answers) Classify() *icp.Result {
	in, ok := a.Input()
	if !ok {
		return nil
	}
	res := icp.Classify(in)
	return &res
}

// Drift reports answered labels that the mapping layer did not recognize.
func (a Answers) Drift() []Drift {
	var drift []Drift
	check := func(dim labels.Dimension, label string) {
		if label != "" && !labels.Recognized(dim, label) {
			drift = append(drift, Drift{Dimension: dim, Label: label})
		}
	}
	check(labels.DimensionGoal, a.PrimaryGoal)
	check(labels.DimensionTrainingFrequency, a.TrainingFrequency)
	check(labels.DimensionAgeBand, a.AgeBand)
	check(labels.DimensionSleepBaseline, a.SleepBaseline)
	check(labels.DimensionCaffeineUse, a.CaffeineUse)
	for _, c := range a.Constraints {
		check(labels.DimensionConstraint, c)
	}
	for _, s := range a.Sensitivities {
		check(labels.DimensionSensitivity, s)
	}
	return drift
}
