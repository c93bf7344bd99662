package onboarding

// System strictness options, in questionnaire order.
const (
	StrictnessMinimalist    = "Minimalist"
	StrictnessStandard      = "Standard (recommended)"
	StrictnessComprehensive = "Comprehensive (still lean)"
)

// StrictnessOptions returns the system strictness choices.
func StrictnessOptions() []string {
	return []string{StrictnessMinimalist, StrictnessStandard, StrictnessComprehensive}
}

// SystemItem is one product in a protocol section.
type SystemItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// SystemSection groups items taken at the same point of the day.
type SystemSection struct {
	Title string       `json:"title"`
	Items []SystemItem `json:"items"`
}

// ConditionalItem is added only once its condition is met.
type ConditionalItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Eligible    bool   `json:"eligible"`
	Status      string `json:"status"`
}

// System is the baseline protocol shown after the questionnaire.
type System struct {
	Sections    []SystemSection   `json:"sections"`
	Conditional []ConditionalItem `json:"conditional"`
	Exclusions  []string          `json:"exclusions"`
}

// RecommendSystem builds the baseline protocol for a strictness answer.
// The core sections and exclusions are fixed; only the cognitive load add-on
// depends on strictness, and it is eligible immediately only for
// StrictnessComprehensive. Any other answer, including none, defers it.
func RecommendSystem(strictness string) System {
	cognitive := ConditionalItem{
		Name:        "Cognitive Load Support",
		Description: "Citicoline + L-Tyrosine",
		Status:      "Eligible after first stable cycle",
	}
	if strictness == StrictnessComprehensive {
		cognitive.Eligible = true
		cognitive.Status = "Eligible now"
	}

	return System{
		Sections: []SystemSection{
			{
				Title: "AM Core",
				Items: []SystemItem{
					{Name: "Micronutrient Foundation", Description: "Baseline coverage"},
					{Name: "Vitamin D3 + K2", Description: "Absorption optimized"},
					{Name: "Omega-3 (High EPA)", Description: "Inflammation baseline"},
				},
			},
			{
				Title: "Daily Capacity",
				Items: []SystemItem{
					{Name: "Creatine Monohydrate", Description: "Cognitive + physical reserve"},
				},
			},
			{
				Title: "PM Recovery",
				Items: []SystemItem{
					{Name: "Magnesium Bisglycinate", Description: "Sleep + muscle"},
					{Name: "Glycine", Description: "Deep sleep support"},
				},
			},
		},
		Conditional: []ConditionalItem{cognitive},
		Exclusions: []string{
			"Stimulant-based focus products",
			"Protein supplements (handled via food)",
			"Pre-workout formulas",
			"Adaptogen stacks (added only if needed)",
			"Nootropic cocktails",
		},
	}
}

// System returns the baseline protocol for the recorded strictness answer.
func (a Answers) System() System {
	return RecommendSystem(a.SystemStrictness)
}
