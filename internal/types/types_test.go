package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hyperengineering/icp/internal/icp"
)

func TestClassifyRequest_Input(t *testing.T) {
	var req ClassifyRequest
	body := `{
		"goal": "stress_workload",
		"training_frequency": "6_plus",
		"age_band": "18_29",
		"sleep_baseline": "trouble_falling",
		"caffeine_use": "stimulants",
		"metabolic_context": false,
		"constraints": ["frequent_travel", "avoid_stim"]
	}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	want := icp.Input{
		Goal:              icp.GoalStressWorkload,
		TrainingFrequency: icp.Training6Plus,
		AgeBand:           icp.Age18To29,
		SleepBaseline:     icp.SleepTroubleFalling,
		CaffeineUse:       icp.CaffeineStimulants,
		Constraints:       []icp.Constraint{icp.ConstraintFrequentTravel, icp.ConstraintAvoidStim},
	}
	if diff := cmp.Diff(want, req.Input()); diff != "" {
		t.Errorf("Input() mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyResponse_JSONShape(t *testing.T) {
	res := icp.Classify(icp.Input{
		Goal:              icp.GoalEnergyClarity,
		TrainingFrequency: icp.Training2To3,
		AgeBand:           icp.Age30To39,
		SleepBaseline:     icp.SleepConsistent,
		CaffeineUse:       icp.CaffeineLow,
	})
	data, err := json.Marshal(NewClassifyResponse("01HZX3J8Q0K1C2V3B4N5M6P7Q8", &res))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if decoded["display_name"] != "Executive Optimizer" {
		t.Errorf("display_name = %v, want Executive Optimizer", decoded["display_name"])
	}
	result, ok := decoded["result"].(map[string]any)
	if !ok {
		t.Fatalf("result = %T, want object", decoded["result"])
	}
	if result["primary_icp"] != "ICP1_EXEC" {
		t.Errorf("primary_icp = %v, want ICP1_EXEC", result["primary_icp"])
	}
	if result["confidence"] != "high" {
		t.Errorf("confidence = %v, want high", result["confidence"])
	}
	scores, ok := result["scores"].(map[string]any)
	if !ok || len(scores) != 5 {
		t.Errorf("scores = %v, want 5 entries", result["scores"])
	}
	if scores["ICP1_EXEC"] != float64(12) {
		t.Errorf("scores.ICP1_EXEC = %v, want 12", scores["ICP1_EXEC"])
	}
}

func TestOnboardingClassifyResponse_NullResult(t *testing.T) {
	resp := OnboardingClassifyResponse{
		ClassifyResponse: NewClassifyResponse("id", nil),
	}
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	got := string(data)
	if !strings.Contains(got, `"result":null`) {
		t.Errorf("JSON = %s, want result null", got)
	}
	if !strings.Contains(got, `"missing":[]`) {
		t.Errorf("JSON = %s, want empty missing array", got)
	}
	if strings.Contains(got, "display_name") {
		t.Errorf("JSON = %s, want no display_name without a result", got)
	}
}

func TestNewCategoriesResponse(t *testing.T) {
	resp := NewCategoriesResponse()
	if len(resp.Categories) != 5 {
		t.Fatalf("len(Categories) = %d, want 5", len(resp.Categories))
	}
	first := resp.Categories[0]
	if first.ID != icp.CategoryExec || first.DisplayName != "Executive Optimizer" {
		t.Errorf("Categories[0] = %+v, want ICP1_EXEC Executive Optimizer", first)
	}
	last := resp.Categories[4]
	if last.ID != icp.CategoryKnowledge || last.DisplayName != "Knowledge Worker" {
		t.Errorf("Categories[4] = %+v, want ICP5_KNOWLEDGE Knowledge Worker", last)
	}
}
