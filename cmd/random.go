package cmd

import (
	"errors"
	"fmt"
	mrand "math/rand"
	"sync"
	"time"
)

var errInvalidWeights = errors.New("invalid weights")

// GenContext carries the mutable state of one generation run: a single
// pseudo-random stream and a monotonic id counter per entity type. The
// orchestrator creates one context per run and threads it through every
// builder, so a seeded run is fully reproducible and nothing leaks between
// runs. The mutex keeps the context safe if table generation is ever fanned
// out; today's single-threaded pipeline never contends on it.
type GenContext struct {
	mu       sync.Mutex
	rng      *mrand.Rand
	counters map[string]int
	today    time.Time
}

// newGenContext builds a run context. A zero seed means a wall-clock seed
// (non-reproducible, the default for production runs); any other value pins
// the stream. today is truncated to a calendar day and frozen for the run.
func newGenContext(seed int64, today time.Time) *GenContext {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &GenContext{
		rng:      mrand.New(mrand.NewSource(seed)),
		counters: make(map[string]int),
		today:    truncateDay(today),
	}
}

// nextID issues the next id for an entity type. The first call for a type
// returns start; ids are strictly increasing within a run.
func (g *GenContext) nextID(entity string, start int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	id, ok := g.counters[entity]
	if !ok {
		id = start
	} else {
		id++
	}
	g.counters[entity] = id
	return id
}

func (g *GenContext) intn(n int) int {
	if n <= 0 {
		return 0
	}
	g.mu.Lock()
	v := g.rng.Intn(n)
	g.mu.Unlock()
	return v
}

func (g *GenContext) float64() float64 {
	g.mu.Lock()
	v := g.rng.Float64()
	g.mu.Unlock()
	return v
}

// intRange returns a random int in [min, max] inclusive.
func (g *GenContext) intRange(min, max int) int {
	if min >= max {
		return min
	}
	return min + g.intn(max-min+1)
}

// weightedBool draws true with probability pTrue.
func (g *GenContext) weightedBool(pTrue float64) bool {
	return g.float64() < pTrue
}

// chooseWeighted draws one option with probability proportional to its
// weight. Weights need not sum to 1; they are normalized against their total.
// Mismatched lengths, negative weights, or a zero total are programmer errors
// and return errInvalidWeights.
func chooseWeighted[T any](g *GenContext, options []T, weights []float64) (T, error) {
	var zero T
	if len(options) == 0 || len(options) != len(weights) {
		return zero, fmt.Errorf("%w: %d options, %d weights", errInvalidWeights, len(options), len(weights))
	}
	var total float64
	for _, w := range weights {
		if w < 0 {
			return zero, fmt.Errorf("%w: negative weight %v", errInvalidWeights, w)
		}
		total += w
	}
	if total == 0 {
		return zero, fmt.Errorf("%w: weights sum to zero", errInvalidWeights)
	}

	target := g.float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if cum > target {
			return options[i], nil
		}
	}
	// Float accumulation can land exactly on the total; the last option wins.
	return options[len(options)-1], nil
}

// mustChoose is chooseWeighted for the fixed in-repo weight tables, which are
// validated by tests; a failure here is a programmer error.
func mustChoose[T any](g *GenContext, options []T, weights []float64) T {
	v, err := chooseWeighted(g, options, weights)
	if err != nil {
		panic(err)
	}
	return v
}
