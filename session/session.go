// Package session wires the price process, proposal gate, ledger and profile
// accumulator into one running simulation.
package session

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/forexschool/riskmaster/academy"
	"github.com/forexschool/riskmaster/config"
	"github.com/forexschool/riskmaster/journal"
	"github.com/forexschool/riskmaster/ledger"
	"github.com/forexschool/riskmaster/market"
	"github.com/forexschool/riskmaster/mentor"
	"github.com/forexschool/riskmaster/profile"
	"github.com/forexschool/riskmaster/proposal"
	"github.com/forexschool/riskmaster/risk"
)

// PriceProcess is what the session ticks. *market.Walker satisfies it; tests
// substitute a scripted sequence.
type PriceProcess interface {
	Price() float64
	Next() float64
}

// Session owns one simulated trading session. All trade and profile mutation
// funnels through the ledger's and accumulator's own locks, so ticking,
// execution and review completion may run on different goroutines.
type Session struct {
	prices   PriceProcess
	ledger   *ledger.Ledger
	account  *profile.Accumulator
	builder  *proposal.Builder
	journal  journal.Journal
	interval time.Duration
	log      *zap.Logger
}

// New builds a session from config. reviewer may be nil, in which case the
// offline mentor is used and every critique is the fallback text.
func New(cfg *config.Config, reviewer mentor.Reviewer, j journal.Journal, log *zap.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if reviewer == nil {
		reviewer = mentor.Offline{}
	}
	if log == nil {
		log = zap.NewNop()
	}

	interval, err := cfg.Market.ParseTickInterval()
	if err != nil {
		return nil, err
	}

	seed := cfg.Market.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	walker := market.NewWalker(cfg.Market.StartPrice, cfg.Market.Volatility, rand.New(rand.NewSource(seed)))

	p := profile.Default()
	p.Name = cfg.Account.Name
	p.Capital = cfg.Account.Balance
	if cfg.Account.Stage != "" {
		p.Stage = academy.Stage(cfg.Account.Stage)
	}

	limits := risk.Limits{
		MaxTradeRisk:   cfg.Risk.MaxTradeRisk,
		MinRiskPercent: cfg.Risk.MinRiskPercent,
		MaxRiskPercent: cfg.Risk.MaxRiskPercent,
	}

	s := &Session{
		prices:   walker,
		ledger:   ledger.New(j),
		account:  profile.NewAccumulator(p),
		builder:  proposal.NewBuilder(reviewer, walker, limits),
		journal:  j,
		interval: interval,
		log:      log,
	}
	return s, nil
}

// NewWithPrices is New with an explicit price process, for scripted runs.
func NewWithPrices(cfg *config.Config, prices PriceProcess, reviewer mentor.Reviewer, j journal.Journal, log *zap.Logger) (*Session, error) {
	s, err := New(cfg, reviewer, j, log)
	if err != nil {
		return nil, err
	}
	s.prices = prices
	s.builder = proposal.NewBuilder(reviewerOrOffline(reviewer), prices, risk.Limits{
		MaxTradeRisk:   cfg.Risk.MaxTradeRisk,
		MinRiskPercent: cfg.Risk.MinRiskPercent,
		MaxRiskPercent: cfg.Risk.MaxRiskPercent,
	})
	return s, nil
}

func reviewerOrOffline(r mentor.Reviewer) mentor.Reviewer {
	if r == nil {
		return mentor.Offline{}
	}
	return r
}

// Price returns the current simulated market price.
func (s *Session) Price() float64 { return s.prices.Price() }

// Profile returns the current account snapshot.
func (s *Session) Profile() profile.Profile { return s.account.Profile() }

// Ledger exposes the trade collection for listing and inspection.
func (s *Session) Ledger() *ledger.Ledger { return s.ledger }

// Review runs a proposal through the mentor gate. The call blocks on the
// critique service, so callers that must stay responsive run it on its own
// goroutine; it takes no locks shared with the tick path.
func (s *Session) Review(ctx context.Context, p *proposal.Proposal) error {
	err := s.builder.RequestReview(ctx, p, s.account.Profile().Stage)
	if err != nil {
		return err
	}
	s.log.Info("thesis reviewed",
		zap.String("symbol", p.Symbol),
		zap.String("bias", string(p.Bias)),
		zap.Int("critique_len", len(p.Review)))
	return nil
}

// Execute finalizes a reviewed proposal and opens the trade, pinning entry to
// the live price.
func (s *Session) Execute(p *proposal.Proposal, riskPercent float64) (ledger.Trade, error) {
	order, err := s.builder.Finalize(p, s.account.Capital(), riskPercent)
	if err != nil {
		return ledger.Trade{}, err
	}

	t := s.ledger.Execute(order)
	s.log.Info("trade executed",
		zap.String("trade_id", t.ID),
		zap.String("symbol", t.Symbol),
		zap.String("bias", string(t.Bias)),
		zap.Float64("entry", t.EntryPrice),
		zap.Float64("stop", t.StopLoss),
		zap.Float64("target", t.TakeProfit),
		zap.Float64("size", t.PositionSize))
	return t, nil
}

// Step advances the simulation one tick: a new price is produced, every open
// trade is evaluated against it, and any closures are folded into the
// profile and journaled.
func (s *Session) Step() (float64, []ledger.Closure, error) {
	price := s.prices.Next()

	closures, err := s.ledger.OnPrice(price, s.account.Capital())
	for _, c := range closures {
		p := s.account.Apply(c)

		if jerr := s.journal.RecordCapital(journal.CapitalSnapshot{
			Time:        c.ClosedAt,
			Capital:     p.Capital,
			TotalTrades: p.TotalTrades,
		}); jerr != nil && err == nil {
			err = jerr
		}

		s.log.Info("trade closed",
			zap.String("trade_id", c.TradeID),
			zap.String("outcome", string(c.Outcome)),
			zap.Float64("exit", c.ExitPrice),
			zap.Float64("profit", c.ProfitAmount),
			zap.Float64("capital", p.Capital))
	}

	return price, closures, err
}

// Run ticks the session at the configured interval until ctx is canceled.
func (s *Session) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, _, err := s.Step(); err != nil {
				s.log.Warn("journal write failed", zap.Error(err))
			}
		}
	}
}
