package market

import (
	"math/rand"
	"sync"
)

// DefaultStartPrice is where the EURUSD walk begins when no config overrides it.
const DefaultStartPrice = 1.0850

// DefaultVolatility is the width of the uniform perturbation interval applied
// on each step, so a single step moves price by at most half of this.
const DefaultVolatility = 0.0001

// Walker produces a synthetic price series as a bounded-step random walk.
// Each step adds a uniform perturbation in (-volatility/2, +volatility/2) and
// rounds to the standard price precision. The walk is intentionally unclamped:
// over a long run the price may drift arbitrarily far from its start. That is
// a documented limitation of the simulation, not something to correct here.
type Walker struct {
	mu         sync.RWMutex
	price      float64
	volatility float64
	rng        *rand.Rand
	subs       []func(float64)
}

// NewWalker returns a walker starting at start. rng is the entropy source for
// the walk; pass a seeded source to replay a deterministic tick sequence.
func NewWalker(start, volatility float64, rng *rand.Rand) *Walker {
	if volatility <= 0 {
		volatility = DefaultVolatility
	}
	return &Walker{
		price:      RoundPrice(start),
		volatility: volatility,
		rng:        rng,
	}
}

// Price returns the current value of the walk.
func (w *Walker) Price() float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.price
}

// Next advances the walk one step and publishes the new price to all
// subscribers. It never fails; the process only produces values.
func (w *Walker) Next() float64 {
	w.mu.Lock()
	change := (w.rng.Float64() - 0.5) * w.volatility
	w.price = RoundPrice(w.price + change)
	p := w.price
	subs := w.subs
	w.mu.Unlock()

	for _, fn := range subs {
		fn(p)
	}
	return p
}

// Subscribe registers fn to be called with every price produced by Next.
// Subscribers run synchronously on the ticking goroutine, in registration
// order.
func (w *Walker) Subscribe(fn func(price float64)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.subs = append(w.subs, fn)
}
