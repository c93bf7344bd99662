package icp

import "fmt"

// Confidence is a coarse label for how far the winning score rose from zero.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Confidence thresholds on the winner's raw score.
const (
	HighConfidenceMin   = 10
	MediumConfidenceMin = 7
)

// ConfidenceFor maps a raw winning score to a confidence label.
func ConfidenceFor(score int) Confidence {
	switch {
	case score >= HighConfidenceMin:
		return ConfidenceHigh
	case score >= MediumConfidenceMin:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// Result is the outcome of one classification.
type Result struct {
	Primary    Category   `json:"primary_icp"`
	Scores     Scores     `json:"scores"`
	Confidence Confidence `json:"confidence"`
}

// Score accumulates every table entry selected by in.
// It panics if in carries a code outside its enumeration; callers at a trust
// boundary should run Input.Validate first.
func Score(in Input) Scores {
	scores := newScores()
	scores.add(lookup(goalScores, in.Goal, "goal"))
	scores.add(lookup(trainingScores, in.TrainingFrequency, "training_frequency"))
	scores.add(lookup(ageScores, in.AgeBand, "age_band"))
	scores.add(lookup(sleepScores, in.SleepBaseline, "sleep_baseline"))
	scores.add(lookup(caffeineScores, in.CaffeineUse, "caffeine_use"))
	scores.add(metabolicScores[in.MetabolicContext])
	for _, c := range in.Constraints {
		scores.add(lookup(constraintScores, c, "constraints"))
	}
	return scores
}

// Classify scores in, resolves the primary category and derives confidence.
func Classify(in Input) Result {
	res, _ := ClassifyWithRule(in)
	return res
}

// ClassifyWithRule is Classify that also reports the tie-break rule that fired.
func ClassifyWithRule(in Input) (Result, string) {
	scores := Score(in)
	primary, rule := Resolve(scores, in.AgeBand)
	return Result{
		Primary:    primary,
		Scores:     scores,
		Confidence: ConfidenceFor(scores[primary]),
	}, rule
}

func lookup[K ~string](table map[K]Contribution, key K, field string) Contribution {
	c, ok := table[key]
	if !ok {
		panic(fmt.Sprintf("icp: unmapped %s code %q", field, string(key)))
	}
	return c
}
