// Package labels converts onboarding option labels into classifier codes.
//
// Mapping never fails: a label that is not recognized falls back to a fixed
// default code so that wording changes in the questionnaire cannot break
// classification. Recognized reports whether a default was applied.
package labels

import "github.com/hyperengineering/icp/internal/icp"

// Dimension names a questionnaire answer that maps to a classifier code.
type Dimension string

const (
	DimensionGoal              Dimension = "goal"
	DimensionTrainingFrequency Dimension = "training_frequency"
	DimensionAgeBand           Dimension = "age_band"
	DimensionSleepBaseline     Dimension = "sleep_baseline"
	DimensionCaffeineUse       Dimension = "caffeine_use"
	DimensionConstraint        Dimension = "constraint"
	DimensionSensitivity       Dimension = "sensitivity"
)

// Option labels as shown in the questionnaire.
const (
	GoalEnergyClarity  = "Sustainable energy & mental clarity"
	GoalSleepRecovery  = "Sleep quality & recovery"
	GoalLongevity      = "Longevity baseline"
	GoalStressWorkload = "Stress resilience during heavy workload"

	Training0To1  = "0–1 days/week"
	Training2To3  = "2–3 days/week"
	Training4To6  = "4–6 days/week"
	Training6Plus = "6+ days/week"

	Age18To29 = "18–29"
	Age30To39 = "30–39"
	Age40To49 = "40–49"
	Age50To65 = "50–65"

	SleepConsistent     = "Consistent (7+ hours)"
	SleepInconsistent   = "Inconsistent schedule"
	SleepTroubleFalling = "Trouble falling asleep"
	SleepWakingNight    = "Waking during the night"
	SleepShort          = "Short sleep (≤6h)"

	CaffeineLow                = "0–1 per day"
	CaffeineModerateBeforeNoon = "2–3 per day, before noon"
	CaffeineAfterNoon          = "2–3 per day, sometimes after noon"
	CaffeineStimulants         = "I sometimes use stimulants or pre-workouts"

	ConstraintMinimalPills     = "Minimal pills"
	ConstraintFrequentTravel   = "Frequent travel"
	ConstraintSensitiveStomach = "Sensitive stomach"
	ConstraintVegetarian       = "Vegetarian / vegan"
	ConstraintAvoidStim        = "Avoid anything stim-like"
	ConstraintPowders          = "Prefer powders over capsules"
	ConstraintNone             = "None of these"

	SensitivityBloodThinners = "Blood thinners"
	SensitivityThyroid       = "Thyroid medication"
	SensitivityKidney        = "Kidney issues (past or present)"
	SensitivityMagnesium     = "Magnesium sensitivity"
	SensitivityMigraines     = "Frequent migraines"
	SensitivityNone          = "None / prefer not to say"
)

// Defaults applied to unrecognized labels.
const (
	DefaultGoal              = icp.GoalEnergyClarity
	DefaultTrainingFrequency = icp.Training2To3
	DefaultAgeBand           = icp.Age30To39
	DefaultSleepBaseline     = icp.SleepConsistent
	DefaultCaffeineUse       = icp.CaffeineLow
)

var goalLabels = map[string]icp.Goal{
	GoalEnergyClarity:  icp.GoalEnergyClarity,
	GoalSleepRecovery:  icp.GoalSleepRecovery,
	GoalLongevity:      icp.GoalLongevity,
	GoalStressWorkload: icp.GoalStressWorkload,
}

var trainingLabels = map[string]icp.TrainingFrequency{
	Training0To1:  icp.Training0To1,
	Training2To3:  icp.Training2To3,
	Training4To6:  icp.Training4To6,
	Training6Plus: icp.Training6Plus,
}

var ageLabels = map[string]icp.AgeBand{
	Age18To29: icp.Age18To29,
	Age30To39: icp.Age30To39,
	Age40To49: icp.Age40To49,
	Age50To65: icp.Age50To65,
}

var sleepLabels = map[string]icp.SleepBaseline{
	SleepConsistent:     icp.SleepConsistent,
	SleepInconsistent:   icp.SleepInconsistent,
	SleepTroubleFalling: icp.SleepTroubleFalling,
	SleepWakingNight:    icp.SleepWakingNight,
	SleepShort:          icp.SleepShort,
}

var caffeineLabels = map[string]icp.CaffeineUse{
	CaffeineLow:                icp.CaffeineLow,
	CaffeineModerateBeforeNoon: icp.CaffeineModerateBeforeNoon,
	CaffeineAfterNoon:          icp.CaffeineAfterNoon,
	CaffeineStimulants:         icp.CaffeineStimulants,
}

// Constraint options without a classifier code are ignored when mapping.
var constraintLabels = map[string]icp.Constraint{
	ConstraintMinimalPills:     icp.ConstraintMinimalPills,
	ConstraintFrequentTravel:   icp.ConstraintFrequentTravel,
	ConstraintAvoidStim:        icp.ConstraintAvoidStim,
	ConstraintSensitiveStomach: icp.ConstraintSensitiveStomach,
}

var metabolicSensitivities = map[string]bool{
	SensitivityKidney:  true,
	SensitivityThyroid: true,
}

func mapOr[T any](table map[string]T, label string, fallback T) T {
	if v, ok := table[label]; ok {
		return v
	}
	return fallback
}

// MapGoal maps a goal label, defaulting to energy_clarity.
func MapGoal(label string) icp.Goal {
	return mapOr(goalLabels, label, DefaultGoal)
}

// MapTrainingFrequency maps a training label, defaulting to 2_3.
func MapTrainingFrequency(label string) icp.TrainingFrequency {
	return mapOr(trainingLabels, label, DefaultTrainingFrequency)
}

// MapAgeBand maps an age label, defaulting to 30_39.
func MapAgeBand(label string) icp.AgeBand {
	return mapOr(ageLabels, label, DefaultAgeBand)
}

// MapSleepBaseline maps a sleep label, defaulting to consistent.
func MapSleepBaseline(label string) icp.SleepBaseline {
	return mapOr(sleepLabels, label, DefaultSleepBaseline)
}

// MapCaffeineUse maps a caffeine label, defaulting to low.
func MapCaffeineUse(label string) icp.CaffeineUse {
	return mapOr(caffeineLabels, label, DefaultCaffeineUse)
}

// MapConstraints maps selected constraint labels to codes.
// Labels without a code are dropped and repeated codes are collapsed,
// so the result is always a valid constraint set in selection order.
func MapConstraints(selected []string) []icp.Constraint {
	out := make([]icp.Constraint, 0, len(selected))
	seen := make(map[icp.Constraint]bool, len(selected))
	for _, label := range selected {
		c, ok := constraintLabels[label]
		if !ok || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// DeriveMetabolicContext reports whether the respondent flagged kidney issues
// or thyroid medication among their sensitivities.
func DeriveMetabolicContext(sensitivities []string) bool {
	for _, s := range sensitivities {
		if metabolicSensitivities[s] {
			return true
		}
	}
	return false
}

// Recognized reports whether label is a known option for dimension.
func Recognized(dim Dimension, label string) bool {
	var ok bool
	switch dim {
	case DimensionGoal:
		_, ok = goalLabels[label]
	case DimensionTrainingFrequency:
		_, ok = trainingLabels[label]
	case DimensionAgeBand:
		_, ok = ageLabels[label]
	case DimensionSleepBaseline:
		_, ok = sleepLabels[label]
	case DimensionCaffeineUse:
		_, ok = caffeineLabels[label]
	case DimensionConstraint:
		ok = contains(ConstraintOptions(), label)
	case DimensionSensitivity:
		ok = contains(SensitivityOptions(), label)
	}
	return ok
}

func contains(options []string, label string) bool {
	for _, o := range options {
		if o == label {
			return true
		}
	}
	return false
}
