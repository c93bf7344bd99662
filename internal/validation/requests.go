package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hyperengineering/icp/internal/icp"
	"github.com/hyperengineering/icp/internal/types"
)

// MaxLabelLength bounds every free-text answer label.
const MaxLabelLength = 200

// MaxSelections bounds multi-choice answer lists.
const MaxSelections = 16

func codes[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// allowedCodes lists the enumeration behind each input field.
var allowedCodes = map[string][]string{
	"goal":               codes(icp.Goals()),
	"training_frequency": codes(icp.TrainingFrequencies()),
	"age_band":           codes(icp.AgeBands()),
	"sleep_baseline":     codes(icp.SleepBaselines()),
	"caffeine_use":       codes(icp.CaffeineUses()),
	"constraints":        codes(icp.Constraints()),
}

// fieldMessage renders an engine field error for API callers.
func fieldMessage(fe *icp.FieldError) string {
	if errors.Is(fe, icp.ErrDuplicateConstraint) {
		return "duplicate constraint"
	}
	field, _, _ := strings.Cut(fe.Field, "[")
	if allowed, ok := allowedCodes[field]; ok {
		return "must be one of: " + strings.Join(allowed, ", ")
	}
	return fe.Err.Error()
}

// ValidateClassifyRequest checks a request against the engine's input
// contract. Blank required fields are reported once, as "is required".
func ValidateClassifyRequest(req types.ClassifyRequest) []ValidationError {
	c := &Collector{}

	required := map[string]string{
		"goal":               req.Goal,
		"training_frequency": req.TrainingFrequency,
		"age_band":           req.AgeBand,
		"sleep_baseline":     req.SleepBaseline,
		"caffeine_use":       req.CaffeineUse,
	}
	for _, fe := range req.Input().FieldErrors() {
		if value, ok := required[fe.Field]; ok {
			if err := ValidateRequired(fe.Field, value); err != nil {
				c.Add(err)
				continue
			}
		}
		c.Add(&ValidationError{Field: fe.Field, Message: fieldMessage(fe)})
	}

	return c.Errors()
}

// validateLabel checks a free-text answer label. Empty labels are allowed.
func validateLabel(c *Collector, field, value string) {
	if err := ValidateUTF8(field, value); err != nil {
		c.Add(err)
		return
	}
	c.Add(ValidateNoNullBytes(field, value))
	c.Add(ValidateMaxLength(field, value, MaxLabelLength))
}

func validateLabels(c *Collector, field string, values []string) {
	if len(values) > MaxSelections {
		c.Add(&ValidationError{
			Field:   field,
			Message: fmt.Sprintf("exceeds maximum of %d selections", MaxSelections),
		})
		return
	}
	for i, v := range values {
		validateLabel(c, fmt.Sprintf("%s[%d]", field, i), v)
	}
}

// ValidateAnswers checks raw questionnaire answers for malformed text.
// Unrecognized labels are not errors; the mapping layer defaults them.
func ValidateAnswers(a types.OnboardingClassifyRequest) []ValidationError {
	c := &Collector{}

	validateLabel(c, "primary_goal", a.PrimaryGoal)
	validateLabel(c, "age_band", a.AgeBand)
	validateLabel(c, "training_frequency", a.TrainingFrequency)
	validateLabel(c, "sleep_baseline", a.SleepBaseline)
	validateLabel(c, "caffeine_use", a.CaffeineUse)
	validateLabel(c, "protein_reality", a.ProteinReality)
	validateLabel(c, "system_strictness", a.SystemStrictness)
	validateLabel(c, "wearable_device", a.WearableDevice)
	validateLabel(c, "review_cadence", a.ReviewCadence)
	validateLabels(c, "constraints", a.Constraints)
	validateLabels(c, "sensitivities", a.Sensitivities)

	return c.Errors()
}
