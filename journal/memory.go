package journal

import "sync"

// Memory keeps records in process memory. Used by tests and by runs that do
// not care about an on-disk journal.
type Memory struct {
	mu      sync.Mutex
	trades  []TradeRecord
	capital []CapitalSnapshot
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) RecordTrade(t TradeRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trades = append(m.trades, t)
	return nil
}

func (m *Memory) RecordCapital(c CapitalSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.capital = append(m.capital, c)
	return nil
}

func (m *Memory) Trades() []TradeRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]TradeRecord, len(m.trades))
	copy(out, m.trades)
	return out
}

func (m *Memory) Capital() []CapitalSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]CapitalSnapshot, len(m.capital))
	copy(out, m.capital)
	return out
}

func (m *Memory) Close() error { return nil }
