package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	symbol TEXT NOT NULL,
	bias TEXT NOT NULL,
	position_size REAL NOT NULL,
	risk_percent REAL NOT NULL,
	entry_price REAL NOT NULL,
	exit_price REAL NOT NULL,
	open_time DATETIME NOT NULL,
	close_time DATETIME NOT NULL,
	outcome TEXT NOT NULL,
	profit_amount REAL NOT NULL,
	thesis TEXT NOT NULL,
	critique TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS capital (
	time DATETIME NOT NULL,
	capital REAL NOT NULL,
	total_trades INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_capital_time ON capital(time);
`
