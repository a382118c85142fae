package game

import (
	crand "crypto/rand"
	"errors"
	"math/big"
	"math/rand"
	"sync"

	"webex_gacha/internal/domain"
)

var (
	ErrEmptyCatalog   = errors.New("empty prize catalog")
	ErrInvalidWeights = errors.New("catalog weights must be positive")
)

// Engine performs weighted random draws over a fixed prize catalog. It is pure
// with respect to ledger state; ticket consumption is the dispatcher's job.
type Engine struct {
	catalog []domain.PrizeTier
	total   int
	randInt func(max int) int
}

// NewEngine creates a draw engine backed by crypto/rand.
func NewEngine(catalog []domain.PrizeTier) (*Engine, error) {
	return newEngine(catalog, secureRandInt)
}

// NewEngineWithRand creates a draw engine backed by a seeded math/rand source,
// so draw sequences are reproducible. The source is serialized internally.
func NewEngineWithRand(catalog []domain.PrizeTier, rng *rand.Rand) (*Engine, error) {
	var mu sync.Mutex
	return newEngine(catalog, func(max int) int {
		mu.Lock()
		defer mu.Unlock()
		return rng.Intn(max)
	})
}

func newEngine(catalog []domain.PrizeTier, randInt func(max int) int) (*Engine, error) {
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}
	for _, tier := range catalog {
		if tier.Weight <= 0 {
			return nil, ErrInvalidWeights
		}
	}
	return &Engine{
		catalog: catalog,
		total:   TotalWeight(catalog),
		randInt: randInt,
	}, nil
}

// Draw picks one tier with probability Weight/total: a single uniform value in
// [0, total) walks the catalog's cumulative weights.
func (e *Engine) Draw() domain.PrizeTier {
	n := e.randInt(e.total)

	cumulative := 0
	for _, tier := range e.catalog {
		cumulative += tier.Weight
		if n < cumulative {
			return tier
		}
	}

	// Unreachable for validated weights, but never return a zero tier.
	return e.catalog[len(e.catalog)-1]
}

// Catalog returns the engine's prize catalog.
func (e *Engine) Catalog() []domain.PrizeTier {
	return e.catalog
}

func secureRandInt(max int) int {
	n, err := crand.Int(crand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0
	}
	return int(n.Int64())
}
