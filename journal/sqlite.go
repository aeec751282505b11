package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(trade_id, symbol, bias, position_size, risk_percent, entry_price, exit_price, open_time, close_time, outcome, profit_amount, thesis, critique)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.TradeID, t.Symbol, t.Bias, t.PositionSize, t.RiskPercent,
		t.EntryPrice, t.ExitPrice, t.OpenTime, t.CloseTime,
		t.Outcome, t.ProfitAmount, t.Thesis, t.Critique,
	)
	return err
}

func (j *SQLiteJournal) RecordCapital(c CapitalSnapshot) error {
	_, err := j.db.Exec(`
		INSERT INTO capital (time, capital, total_trades)
		VALUES (?, ?, ?)`,
		c.Time, c.Capital, c.TotalTrades,
	)
	return err
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
