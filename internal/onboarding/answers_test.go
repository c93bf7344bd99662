package onboarding

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hyperengineering/icp/internal/icp"
	"github.com/hyperengineering/icp/internal/labels"
)

func completeAnswers() Answers {
	return Answers{
		PrimaryGoal:       labels.GoalLongevity,
		TrainingFrequency: labels.Training0To1,
		AgeBand:           labels.Age50To65,
		SleepBaseline:     labels.SleepWakingNight,
		CaffeineUse:       labels.CaffeineLow,
		Sensitivities:     []string{labels.SensitivityKidney},
	}
}

// --- Toggle Tests ---

func TestToggleConstraint(t *testing.T) {
	var a Answers
	a.ToggleConstraint(labels.ConstraintNone)
	a.ToggleConstraint(labels.ConstraintMinimalPills)
	if diff := cmp.Diff([]string{labels.ConstraintMinimalPills}, a.Constraints); diff != "" {
		t.Errorf("selecting an option did not clear the sentinel (-want +got):\n%s", diff)
	}

	a.ToggleConstraint(labels.ConstraintAvoidStim)
	a.ToggleConstraint(labels.ConstraintMinimalPills)
	if diff := cmp.Diff([]string{labels.ConstraintAvoidStim}, a.Constraints); diff != "" {
		t.Errorf("deselect mismatch (-want +got):\n%s", diff)
	}

	// The sentinel can be added next to existing selections.
	a.ToggleConstraint(labels.ConstraintNone)
	if diff := cmp.Diff([]string{labels.ConstraintAvoidStim, labels.ConstraintNone}, a.Constraints); diff != "" {
		t.Errorf("sentinel select mismatch (-want +got):\n%s", diff)
	}
}

func TestToggleSensitivity(t *testing.T) {
	a := Answers{Sensitivities: []string{labels.SensitivityNone}}
	a.ToggleSensitivity(labels.SensitivityThyroid)
	if diff := cmp.Diff([]string{labels.SensitivityThyroid}, a.Sensitivities); diff != "" {
		t.Errorf("Sensitivities mismatch (-want +got):\n%s", diff)
	}
	a.ToggleSensitivity(labels.SensitivityThyroid)
	if len(a.Sensitivities) != 0 {
		t.Errorf("Sensitivities = %v, want empty", a.Sensitivities)
	}
}

func TestSetWearable(t *testing.T) {
	a := Answers{WearableDevice: "Oura"}
	a.SetWearable(true)
	if a.UsesWearable == nil || !*a.UsesWearable || a.WearableDevice != "Oura" {
		t.Errorf("SetWearable(true) = %v/%q, want true/Oura", a.UsesWearable, a.WearableDevice)
	}
	a.SetWearable(false)
	if a.UsesWearable == nil || *a.UsesWearable || a.WearableDevice != "" {
		t.Errorf("SetWearable(false) = %v/%q, want false/empty", a.UsesWearable, a.WearableDevice)
	}
}

// --- Completeness Tests ---

func TestMissing(t *testing.T) {
	a := Answers{PrimaryGoal: labels.GoalLongevity, SleepBaseline: labels.SleepShort}
	want := []string{"training_frequency", "age_band", "caffeine_use"}
	if diff := cmp.Diff(want, a.Missing()); diff != "" {
		t.Errorf("Missing() mismatch (-want +got):\n%s", diff)
	}
	if a.Complete() {
		t.Error("Complete() = true, want false")
	}
}

func TestClassify_IncompleteReturnsNil(t *testing.T) {
	full := completeAnswers()
	blanks := []func(*Answers){
		func(a *Answers) { a.PrimaryGoal = "" },
		func(a *Answers) { a.TrainingFrequency = "" },
		func(a *Answers) { a.AgeBand = "" },
		func(a *Answers) { a.SleepBaseline = "" },
		func(a *Answers) { a.CaffeineUse = "" },
	}
	for i, blank := range blanks {
		a := full
		blank(&a)
		if res := a.Classify(); res != nil {
			t.Errorf("case %d: Classify() = %+v, want nil", i, res)
		}
		if _, ok := a.Input(); ok {
			t.Errorf("case %d: Input() ok = true, want false", i)
		}
	}
}

func TestClassify_OptionalAnswersNeverBlock(t *testing.T) {
	a := completeAnswers()
	a.Sensitivities = nil
	a.Constraints = nil
	if res := a.Classify(); res == nil {
		t.Fatal("Classify() = nil with constraints and sensitivities unset")
	}
}

func TestClassify_MetabolicScenario(t *testing.T) {
	res := completeAnswers().Classify()
	if res == nil {
		t.Fatal("Classify() = nil, want result")
	}
	if res.Primary != icp.CategoryMetabolic {
		t.Errorf("Primary = %s, want %s", res.Primary, icp.CategoryMetabolic)
	}
	if res.Scores[icp.CategoryMetabolic] != 14 || res.Scores[icp.CategoryMidlife] != 14 {
		t.Errorf("Scores = %v, want metabolic and midlife at 14", res.Scores)
	}
	if res.Confidence != icp.ConfidenceHigh {
		t.Errorf("Confidence = %s, want high", res.Confidence)
	}
}

func TestInput_MapsLabels(t *testing.T) {
	a := completeAnswers()
	a.Constraints = []string{labels.ConstraintVegetarian, labels.ConstraintSensitiveStomach}

	got, ok := a.Input()
	if !ok {
		t.Fatal("Input() ok = false, want true")
	}
	want := icp.Input{
		Goal:              icp.GoalLongevity,
		TrainingFrequency: icp.Training0To1,
		AgeBand:           icp.Age50To65,
		SleepBaseline:     icp.SleepWakingNight,
		CaffeineUse:       icp.CaffeineLow,
		MetabolicContext:  true,
		Constraints:       []icp.Constraint{icp.ConstraintSensitiveStomach},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Input() mismatch (-want +got):\n%s", diff)
	}
}

func TestDrift(t *testing.T) {
	a := completeAnswers()
	a.PrimaryGoal = "Build muscle"
	a.Constraints = []string{labels.ConstraintVegetarian, "Keto"}

	want := []Drift{
		{Dimension: labels.DimensionGoal, Label: "Build muscle"},
		{Dimension: labels.DimensionConstraint, Label: "Keto"},
	}
	if diff := cmp.Diff(want, a.Drift()); diff != "" {
		t.Errorf("Drift() mismatch (-want +got):\n%s", diff)
	}

	res := a.Classify()
	if res == nil {
		t.Fatal("Classify() = nil, unrecognized labels must not block classification")
	}
}

// --- Questionnaire Tests ---

func TestQuestionnaire(t *testing.T) {
	steps := Questionnaire()
	if len(steps) != 11 {
		t.Fatalf("len(Questionnaire()) = %d, want 11", len(steps))
	}
	seen := map[string]bool{}
	for i, s := range steps {
		if s.Number != i+1 {
			t.Errorf("step %d has Number %d", i+1, s.Number)
		}
		if s.Number > TotalSteps {
			t.Errorf("step %s numbered past TotalSteps", s.ID)
		}
		if seen[s.ID] {
			t.Errorf("duplicate step id %s", s.ID)
		}
		seen[s.ID] = true
		if len(s.Options) == 0 {
			t.Errorf("step %s has no options", s.ID)
		}
	}

	for _, dim := range []labels.Dimension{
		labels.DimensionGoal,
		labels.DimensionTrainingFrequency,
		labels.DimensionAgeBand,
		labels.DimensionSleepBaseline,
		labels.DimensionCaffeineUse,
	} {
		found := false
		for _, s := range steps {
			if s.Classifier == string(dim) {
				found = true
				for _, o := range s.Options {
					if !labels.Recognized(dim, o) {
						t.Errorf("step %s option %q is not mapped", s.ID, o)
					}
				}
			}
		}
		if !found {
			t.Errorf("no step feeds %s", dim)
		}
	}
}
