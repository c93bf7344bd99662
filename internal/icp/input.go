package icp

import "fmt"

// Input is the canonical, already-mapped questionnaire answers.
// All five scalar codes must be set to members of their enumerations;
// MetabolicContext and Constraints default to false and empty.
type Input struct {
	Goal              Goal              `json:"goal"`
	TrainingFrequency TrainingFrequency `json:"training_frequency"`
	AgeBand           AgeBand           `json:"age_band"`
	SleepBaseline     SleepBaseline     `json:"sleep_baseline"`
	CaffeineUse       CaffeineUse       `json:"caffeine_use"`
	MetabolicContext  bool              `json:"metabolic_context"`
	Constraints       []Constraint      `json:"constraints"`
}

// FieldErrors returns one error per field that violates the input contract,
// in field order. Boundaries check it before calling Classify.
func (in Input) FieldErrors() []*FieldError {
	var errs []*FieldError
	check := func(field string, ok bool, value string) {
		if !ok {
			errs = append(errs, &FieldError{
				Field: field,
				Err:   fmt.Errorf("%q: %w", value, ErrUnknownCode),
			})
		}
	}

	check("goal", in.Goal.Valid(), string(in.Goal))
	check("training_frequency", in.TrainingFrequency.Valid(), string(in.TrainingFrequency))
	check("age_band", in.AgeBand.Valid(), string(in.AgeBand))
	check("sleep_baseline", in.SleepBaseline.Valid(), string(in.SleepBaseline))
	check("caffeine_use", in.CaffeineUse.Valid(), string(in.CaffeineUse))

	seen := make(map[Constraint]bool, len(in.Constraints))
	for i, c := range in.Constraints {
		field := fmt.Sprintf("constraints[%d]", i)
		if !c.Valid() {
			check(field, false, string(c))
			continue
		}
		if seen[c] {
			errs = append(errs, &FieldError{
				Field: field,
				Err:   fmt.Errorf("%q: %w", c, ErrDuplicateConstraint),
			})
			continue
		}
		seen[c] = true
	}
	return errs
}
