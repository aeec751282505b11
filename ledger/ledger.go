// Package ledger owns the authoritative trade collection and its lifecycle.
// Trades enter OPEN via Execute and leave exactly once via price resolution.
package ledger

import (
	"sync"
	"time"

	"github.com/forexschool/riskmaster/internal/id"
	"github.com/forexschool/riskmaster/journal"
)

// Closure is emitted when a trade resolves. The profile accumulator consumes
// it to apply the capital delta.
type Closure struct {
	TradeID      string
	Symbol       string
	Outcome      Outcome
	ExitPrice    float64
	ProfitAmount float64
	RiskPercent  float64
	ClosedAt     time.Time
}

// ClosureListener is notified after a trade has been closed and recorded.
type ClosureListener interface {
	OnTradeClosed(Closure)
}

// Ledger holds every trade of the session. All mutation goes through the
// mutex: evaluating open trades against a tick and executing a new trade must
// never interleave with partial visibility of trade state.
type Ledger struct {
	mu       sync.Mutex
	trades   map[string]*Trade
	order    []string // insertion order, for stable listings
	journal  journal.Journal
	listener ClosureListener
	now      func() time.Time
}

func New(j journal.Journal) *Ledger {
	return &Ledger{
		trades:  make(map[string]*Trade),
		journal: j,
		now:     time.Now,
	}
}

// SetClosureListener registers the single listener notified on every closure.
// The listener is called after the ledger lock is released.
func (l *Ledger) SetClosureListener(listener ClosureListener) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listener = listener
}

// Execute turns a finalized order into an OPEN trade. The order's entry price
// must already be pinned to the live market price by the proposal gate.
func (l *Ledger) Execute(o Order) Trade {
	l.mu.Lock()
	defer l.mu.Unlock()

	t := &Trade{
		ID:           id.New(),
		CreatedAt:    l.now(),
		Symbol:       o.Symbol,
		Bias:         o.Bias,
		EntryPrice:   o.EntryPrice,
		StopLoss:     o.StopLoss,
		TakeProfit:   o.TakeProfit,
		RiskPercent:  o.RiskPercent,
		PositionSize: o.PositionSize,
		Thesis:       o.Thesis,
		Critique:     o.Critique,
		Status:       StatusOpen,
	}
	l.trades[t.ID] = t
	l.order = append(l.order, t.ID)

	return *t
}

// OnPrice evaluates every OPEN trade against the new price and closes those
// whose stop or target has been hit. capital is the account capital the
// profit computation is based on. When both levels are hit by the same tick
// the target wins; a real market would resolve by intrabar path, and this
// simplification is deliberate.
//
// Closure is one-way and exactly-once: a trade already CLOSED is never
// touched again. The returned error reflects journal write failures only;
// closures are applied regardless.
func (l *Ledger) OnPrice(price, capital float64) ([]Closure, error) {
	l.mu.Lock()

	var (
		closures []Closure
		firstErr error
	)
	for _, tid := range l.order {
		t := l.trades[tid]
		if t.Status != StatusOpen {
			continue
		}

		hitStop := t.hitStop(price)
		hitTarget := t.hitTarget(price)
		if !hitStop && !hitTarget {
			continue
		}

		outcome := Loss
		multiple := -1.0
		if hitTarget {
			outcome = Profit
			multiple = RewardMultiple
		}

		t.Status = StatusClosed
		t.ExitPrice = price
		t.ClosedAt = l.now()
		t.Outcome = outcome
		t.ProfitAmount = (t.RiskPercent / 100) * capital * multiple

		if err := l.journal.RecordTrade(journal.TradeRecord{
			TradeID:      t.ID,
			Symbol:       t.Symbol,
			Bias:         string(t.Bias),
			PositionSize: t.PositionSize,
			RiskPercent:  t.RiskPercent,
			EntryPrice:   t.EntryPrice,
			ExitPrice:    t.ExitPrice,
			OpenTime:     t.CreatedAt,
			CloseTime:    t.ClosedAt,
			Outcome:      string(t.Outcome),
			ProfitAmount: t.ProfitAmount,
			Thesis:       t.Thesis,
			Critique:     t.Critique,
		}); err != nil && firstErr == nil {
			firstErr = err
		}

		closures = append(closures, Closure{
			TradeID:      t.ID,
			Symbol:       t.Symbol,
			Outcome:      t.Outcome,
			ExitPrice:    t.ExitPrice,
			ProfitAmount: t.ProfitAmount,
			RiskPercent:  t.RiskPercent,
			ClosedAt:     t.ClosedAt,
		})
	}

	listener := l.listener
	l.mu.Unlock()

	if listener != nil {
		for _, c := range closures {
			listener.OnTradeClosed(c)
		}
	}

	return closures, firstErr
}

// Get returns a copy of the trade with the given id.
func (l *Ledger) Get(tid string) (Trade, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	t, ok := l.trades[tid]
	if !ok {
		return Trade{}, false
	}
	return *t, true
}

// Trades returns copies of all trades in execution order.
func (l *Ledger) Trades() []Trade {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Trade, 0, len(l.order))
	for _, tid := range l.order {
		out = append(out, *l.trades[tid])
	}
	return out
}

// OpenCount returns the number of OPEN trades.
func (l *Ledger) OpenCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, t := range l.trades {
		if t.Status == StatusOpen {
			n++
		}
	}
	return n
}
