package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/forexschool/riskmaster/config"
	"github.com/forexschool/riskmaster/journal"
	"github.com/forexschool/riskmaster/mentor"
	"github.com/forexschool/riskmaster/session"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a trading session from a config file",
	Long: `Run a simulated trading session using settings from a configuration file.

The config file specifies the account, the risk policy, the synthetic market
parameters, the mentor endpoint and the journal backend.

Example:
  riskmaster run -f examples/configs/basic.yaml`,
	RunE: runRun,
}

var runConfigPath string

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "f", "", "path to config file (YAML or JSON) (required)")
	runCmd.MarkFlagRequired("config")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(runConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	fmt.Printf("Running session with config: %s\n", runConfigPath)
	fmt.Printf("  Account: %s (Balance: $%.2f, Stage: %s)\n", cfg.Account.Name, cfg.Account.Balance, cfg.Account.Stage)
	fmt.Printf("  Market:  %s starting at %.5f, tick every %s\n", cfg.Market.Symbol, cfg.Market.StartPrice, cfg.Market.TickInterval)
	fmt.Printf("  Risk:    ceiling %.1f%% per trade\n", cfg.Risk.MaxTradeRisk*100)
	fmt.Println()

	j, err := journalFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("create journal: %w", err)
	}
	defer j.Close()

	log, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer log.Sync()

	s, err := session.New(cfg, reviewerFromConfig(cfg), j, log)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Println("Session running. Ctrl-C to stop.")
	if err := s.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}

	p := s.Profile()
	fmt.Printf("\nSession ended. Capital: $%.2f, total trades: %d\n", p.Capital, p.TotalTrades)
	return nil
}

func journalFromConfig(cfg *config.Config) (journal.Journal, error) {
	switch cfg.Journal.Type {
	case "csv":
		return journal.NewCSV(cfg.Journal.TradesFile, cfg.Journal.CapitalFile)
	case "sqlite":
		return journal.NewSQLite(cfg.Journal.DBPath)
	default:
		return journal.NewMemory(), nil
	}
}

func reviewerFromConfig(cfg *config.Config) mentor.Reviewer {
	if cfg.Mentor.APIKey == "" || cfg.Mentor.APIURL == "" {
		return mentor.Offline{}
	}
	timeout, err := cfg.Mentor.ParseTimeout()
	if err != nil {
		return mentor.Offline{}
	}
	return mentor.NewClient(cfg.Mentor.APIURL, cfg.Mentor.APIKey, cfg.Mentor.Model, timeout)
}
