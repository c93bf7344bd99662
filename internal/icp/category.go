// Package icp implements the deterministic Ideal Customer Profile classifier.
//
// Classification is a pure function of an Input record: fixed scoring tables
// are summed per category, ties are broken by an ordered rule list, and a
// confidence label is derived from the winner's raw score. Nothing in this
// package holds mutable state, so every exported function is safe for
// concurrent use.
package icp

import "fmt"

// Category identifies one of the five ICP archetypes.
type Category string

const (
	CategoryExec      Category = "ICP1_EXEC"
	CategoryAthlete   Category = "ICP2_ATHLETE"
	CategoryMetabolic Category = "ICP3_METABOLIC"
	CategoryMidlife   Category = "ICP4_MIDLIFE"
	CategoryKnowledge Category = "ICP5_KNOWLEDGE"
)

// categoryOrder is the canonical ordering used for display and iteration.
var categoryOrder = [...]Category{
	CategoryExec,
	CategoryAthlete,
	CategoryMetabolic,
	CategoryMidlife,
	CategoryKnowledge,
}

// Categories returns all categories in canonical order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder[:])
	return out
}

type categoryInfo struct {
	displayName string
	description string
}

// categoryMetadata must carry an entry for every member of categoryOrder.
var categoryMetadata = map[Category]categoryInfo{
	CategoryExec: {
		displayName: "Executive Optimizer",
		description: "System-driven approach for busy professionals prioritizing consistency and cognitive clarity.",
	},
	CategoryAthlete: {
		displayName: "Performance Athlete",
		description: "Performance-oriented protocol optimized for high training volume and recovery.",
	},
	CategoryMetabolic: {
		displayName: "Metabolic Focus",
		description: "Targeted support for metabolic health and body composition goals.",
	},
	CategoryMidlife: {
		displayName: "Midlife Vitality",
		description: "Longevity-focused system addressing age-related optimization priorities.",
	},
	CategoryKnowledge: {
		displayName: "Knowledge Worker",
		description: "Cognitive enhancement focus for demanding intellectual work.",
	},
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	_, ok := categoryMetadata[c]
	return ok
}

// DisplayName returns the short presentation name, or "" for an unknown category.
func (c Category) DisplayName() string {
	return categoryMetadata[c].displayName
}

// Description returns the one-paragraph presentation description.
func (c Category) Description() string {
	return categoryMetadata[c].description
}

// ParseCategory converts a wire value into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("category %q: %w", s, ErrUnknownCode)
	}
	return c, nil
}
