package icp

// TieBreakRule picks a winner from the categories tied for the maximum score,
// or declines by returning false so the next rule can run.
type TieBreakRule struct {
	Name   string
	Decide func(tied []Category, age AgeBand) (Category, bool)
}

// Tie-break rule names, reported by Resolve.
const (
	RuleSingleMax    = "single_max"
	RuleMetabolic    = "metabolic_dominates"
	RuleAthlete      = "athlete_over_exec_knowledge"
	RuleMidlifeByAge = "midlife_by_age"
	RuleExecTied     = "exec_tied"
	RuleExecFallback = "exec_fallback"
)

// tieBreakRules is the ordered decision list. The first rule that decides wins.
// The final rule always decides, so resolution is total.
var tieBreakRules = []TieBreakRule{
	{Name: RuleSingleMax, Decide: decideSingleMax},
	{Name: RuleMetabolic, Decide: decideMetabolic},
	{Name: RuleAthlete, Decide: decideAthlete},
	{Name: RuleMidlifeByAge, Decide: decideMidlife},
	{Name: RuleExecTied, Decide: decideExecTied},
	// Returns ICP1_EXEC even when it is not among the tied categories.
	{Name: RuleExecFallback, Decide: decideExecFallback},
}

// Resolve selects the primary category for scores and reports which rule fired.
func Resolve(scores Scores, age AgeBand) (Category, string) {
	tied := scores.TiedForMax()
	for _, rule := range tieBreakRules {
		if c, ok := rule.Decide(tied, age); ok {
			return c, rule.Name
		}
	}
	// Unreachable while exec_fallback terminates the list.
	return CategoryExec, RuleExecFallback
}

func contains(set []Category, c Category) bool {
	for _, x := range set {
		if x == c {
			return true
		}
	}
	return false
}

func decideSingleMax(tied []Category, _ AgeBand) (Category, bool) {
	if len(tied) == 1 {
		return tied[0], true
	}
	return "", false
}

func decideMetabolic(tied []Category, _ AgeBand) (Category, bool) {
	if contains(tied, CategoryMetabolic) {
		return CategoryMetabolic, true
	}
	return "", false
}

// decideAthlete lets the athlete beat exec and knowledge workers only.
// If anything else remains tied alongside it, the rule declines.
func decideAthlete(tied []Category, _ AgeBand) (Category, bool) {
	if !contains(tied, CategoryAthlete) {
		return "", false
	}
	var beats []Category
	for _, c := range tied {
		if c != CategoryExec && c != CategoryKnowledge {
			beats = append(beats, c)
		}
	}
	if len(beats) == 0 || (len(beats) == 1 && beats[0] == CategoryAthlete) {
		return CategoryAthlete, true
	}
	return "", false
}

func decideMidlife(tied []Category, age AgeBand) (Category, bool) {
	if contains(tied, CategoryMidlife) && (age == Age40To49 || age == Age50To65) {
		return CategoryMidlife, true
	}
	return "", false
}

func decideExecTied(tied []Category, _ AgeBand) (Category, bool) {
	if contains(tied, CategoryExec) {
		return CategoryExec, true
	}
	return "", false
}

func decideExecFallback(_ []Category, _ AgeBand) (Category, bool) {
	return CategoryExec, true
}
