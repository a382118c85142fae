package game

import "webex_gacha/internal/domain"

// DefaultCatalog returns the built-in prize catalog. Order matters: the draw
// walks tiers in this order, and each tier's probability is Weight over the
// catalog total (5/15/30/50 out of 100).
func DefaultCatalog() []domain.PrizeTier {
	return []domain.PrizeTier{
		{Name: "👑 황금망토 로티", Grade: domain.GradeSSR, Score: 100, ImageURL: "https://i.imgur.com/example_ssr.png", Weight: 5},
		{Name: "🎢 자이로드롭 로티", Grade: domain.GradeSR, Score: 70, ImageURL: "https://i.imgur.com/example_sr.png", Weight: 15},
		{Name: "🐻 화이트 베어", Grade: domain.GradeR, Score: 40, ImageURL: "https://i.imgur.com/example_r.png", Weight: 30},
		{Name: "🎈 놓쳐버린 풍선", Grade: domain.GradeN, Score: 5, ImageURL: "https://via.placeholder.com/300?text=Balloon", Weight: 50},
	}
}

// TotalWeight sums the selection weights of the catalog.
func TotalWeight(catalog []domain.PrizeTier) int {
	total := 0
	for _, tier := range catalog {
		total += tier.Weight
	}
	return total
}
