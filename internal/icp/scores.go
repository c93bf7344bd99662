package icp

// Scores holds the accumulated points for every category.
// A Scores produced by this package always carries all five categories.
type Scores map[Category]int

func newScores() Scores {
	s := make(Scores, len(categoryOrder))
	for _, c := range categoryOrder {
		s[c] = 0
	}
	return s
}

// add merges a contribution into s. Absent categories count as zero.
func (s Scores) add(c Contribution) {
	for cat, pts := range c {
		s[cat] += pts
	}
}

// Max returns the highest score across all categories.
func (s Scores) Max() int {
	best := 0
	for _, c := range categoryOrder {
		if s[c] > best {
			best = s[c]
		}
	}
	return best
}

// TiedForMax returns the categories sharing the highest score, in canonical order.
func (s Scores) TiedForMax() []Category {
	best := s.Max()
	var tied []Category
	for _, c := range categoryOrder {
		if s[c] == best {
			tied = append(tied, c)
		}
	}
	return tied
}
