package domain

// Grade is the rarity tier of a prize.
type Grade string

const (
	GradeSSR Grade = "SSR"
	GradeSR  Grade = "SR"
	GradeR   Grade = "R"
	GradeN   Grade = "N"
)

// PrizeTier is a single entry in the reward catalog.
type PrizeTier struct {
	Name     string `json:"name"`
	Grade    Grade  `json:"grade"`
	Score    int    `json:"score"`
	ImageURL string `json:"img"`
	Weight   int    `json:"weight"` // relative selection weight, must be positive
}

// IsHighGrade reports whether the tier gets the highlighted card color (SSR/SR).
func (p PrizeTier) IsHighGrade() bool {
	return p.Grade == GradeSSR || p.Grade == GradeSR
}
