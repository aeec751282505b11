package market

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"exact", 1.08500, 1.08500},
		{"roundDown", 1.085004, 1.08500},
		{"roundUp", 1.085006, 1.08501},
		{"halfUp", 1.085005, 1.08501},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, RoundPrice(tt.in), 1e-12)
		})
	}
}

func TestPips(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 30.0, Pips(1.0850, 1.0820), 1e-9)
	assert.InDelta(t, 30.0, Pips(1.0820, 1.0850), 1e-9)
	assert.InDelta(t, 0.0, Pips(1.0850, 1.0850), 1e-9)
}

func TestWalkerStepBounds(t *testing.T) {
	t.Parallel()

	w := NewWalker(DefaultStartPrice, DefaultVolatility, rand.New(rand.NewSource(7)))

	prev := w.Price()
	for i := 0; i < 1000; i++ {
		next := w.Next()
		step := math.Abs(next - prev)
		// half the volatility window plus rounding slack
		assert.LessOrEqual(t, step, DefaultVolatility/2+1e-5)
		prev = next
	}
}

func TestWalkerDeterministicReplay(t *testing.T) {
	t.Parallel()

	a := NewWalker(1.0850, DefaultVolatility, rand.New(rand.NewSource(42)))
	b := NewWalker(1.0850, DefaultVolatility, rand.New(rand.NewSource(42)))

	for i := 0; i < 200; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestWalkerPrecision(t *testing.T) {
	t.Parallel()

	w := NewWalker(1.0850, DefaultVolatility, rand.New(rand.NewSource(3)))
	for i := 0; i < 100; i++ {
		p := w.Next()
		assert.InDelta(t, p, RoundPrice(p), 1e-12, "price must carry 5 decimals")
	}
}

func TestWalkerPublishesToSubscribers(t *testing.T) {
	t.Parallel()

	w := NewWalker(1.0850, DefaultVolatility, rand.New(rand.NewSource(1)))

	var got []float64
	w.Subscribe(func(p float64) { got = append(got, p) })
	w.Subscribe(func(p float64) { got = append(got, p) })

	p := w.Next()
	assert.Equal(t, []float64{p, p}, got)
}

func TestValidSymbol(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidSymbol("EURUSD"))
	assert.True(t, ValidSymbol("XAUUSD"))
	assert.False(t, ValidSymbol("EUR_USD"))
	assert.False(t, ValidSymbol(""))
}
