package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/forexschool/riskmaster/academy"
	"github.com/forexschool/riskmaster/market"
	"gopkg.in/yaml.v3"
)

// Config represents the complete simulator configuration.
type Config struct {
	Account AccountConfig `json:"account" yaml:"account"`
	Risk    RiskConfig    `json:"risk" yaml:"risk"`
	Market  MarketConfig  `json:"market" yaml:"market"`
	Mentor  MentorConfig  `json:"mentor" yaml:"mentor"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
}

// AccountConfig seeds the session profile.
type AccountConfig struct {
	Name    string  `json:"name" yaml:"name"`
	Stage   string  `json:"stage" yaml:"stage"`
	Balance float64 `json:"balance" yaml:"balance"`
}

// RiskConfig carries the platform risk policy.
type RiskConfig struct {
	MaxTradeRisk   float64 `json:"max_trade_risk" yaml:"max_trade_risk"`
	MinRiskPercent float64 `json:"min_risk_percent" yaml:"min_risk_percent"`
	MaxRiskPercent float64 `json:"max_risk_percent" yaml:"max_risk_percent"`
}

// MarketConfig parameterizes the synthetic price process.
type MarketConfig struct {
	Symbol     string  `json:"symbol" yaml:"symbol"`
	StartPrice float64 `json:"start_price" yaml:"start_price"`
	Volatility float64 `json:"volatility" yaml:"volatility"`
	// TickInterval is a duration string, e.g. "1s" or "500ms".
	TickInterval string `json:"tick_interval" yaml:"tick_interval"`
	Seed         int64  `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// ParseTickInterval converts the tick interval string to a time.Duration.
func (m MarketConfig) ParseTickInterval() (time.Duration, error) {
	if m.TickInterval == "" {
		return time.Second, nil
	}
	return time.ParseDuration(m.TickInterval)
}

// MentorConfig points at the critique service. An empty APIKey means the
// session runs with the offline mentor and fallback critiques.
type MentorConfig struct {
	APIURL  string `json:"api_url,omitempty" yaml:"api_url,omitempty"`
	APIKey  string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	Model   string `json:"model,omitempty" yaml:"model,omitempty"`
	// Timeout is a duration string, e.g. "30s".
	Timeout string `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// ParseTimeout converts the mentor timeout string to a time.Duration.
func (m MentorConfig) ParseTimeout() (time.Duration, error) {
	if m.Timeout == "" {
		return 30 * time.Second, nil
	}
	return time.ParseDuration(m.Timeout)
}

// JournalConfig selects the session journal backend.
type JournalConfig struct {
	Type        string `json:"type" yaml:"type"` // "csv", "sqlite" or "memory"
	TradesFile  string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
	CapitalFile string `json:"capital_file,omitempty" yaml:"capital_file,omitempty"`
	DBPath      string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file, choosing the format by extension.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	if c.Account.Balance <= 0 {
		return fmt.Errorf("account.balance must be positive")
	}
	if c.Account.Stage != "" && !validStage(c.Account.Stage) {
		return fmt.Errorf("unknown account.stage: %s", c.Account.Stage)
	}
	if c.Risk.MaxTradeRisk <= 0 || c.Risk.MaxTradeRisk > 1 {
		return fmt.Errorf("risk.max_trade_risk must be between 0 and 1")
	}
	if c.Risk.MinRiskPercent <= 0 || c.Risk.MaxRiskPercent < c.Risk.MinRiskPercent {
		return fmt.Errorf("risk percent bounds are inconsistent")
	}
	if !market.ValidSymbol(c.Market.Symbol) {
		return fmt.Errorf("unknown market.symbol: %s", c.Market.Symbol)
	}
	if c.Market.StartPrice <= 0 {
		return fmt.Errorf("market.start_price must be positive")
	}
	if c.Market.Volatility <= 0 {
		return fmt.Errorf("market.volatility must be positive")
	}
	if d, err := c.Market.ParseTickInterval(); err != nil || d <= 0 {
		return fmt.Errorf("market.tick_interval must be a positive duration")
	}
	if d, err := c.Mentor.ParseTimeout(); err != nil || d <= 0 {
		return fmt.Errorf("mentor.timeout must be a positive duration")
	}
	switch c.Journal.Type {
	case "csv":
		if c.Journal.TradesFile == "" || c.Journal.CapitalFile == "" {
			return fmt.Errorf("journal trades_file and capital_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	case "memory":
	default:
		return fmt.Errorf("journal.type must be 'csv', 'sqlite' or 'memory'")
	}
	return nil
}

func validStage(s string) bool {
	for _, stage := range academy.Stages {
		if string(stage) == s {
			return true
		}
	}
	return false
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Name:    "Forex Apprentice",
			Stage:   string(academy.StageFundamentals),
			Balance: 10000,
		},
		Risk: RiskConfig{
			MaxTradeRisk:   0.01,
			MinRiskPercent: 0.1,
			MaxRiskPercent: 1.5,
		},
		Market: MarketConfig{
			Symbol:       "EURUSD",
			StartPrice:   market.DefaultStartPrice,
			Volatility:   market.DefaultVolatility,
			TickInterval: "1s",
		},
		Mentor: MentorConfig{
			Timeout: "30s",
		},
		Journal: JournalConfig{
			Type:        "csv",
			TradesFile:  "./trades.csv",
			CapitalFile: "./capital.csv",
		},
	}
}
