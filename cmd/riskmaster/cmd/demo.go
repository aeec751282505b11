package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forexschool/riskmaster/academy"
	"github.com/forexschool/riskmaster/config"
	"github.com/forexschool/riskmaster/journal"
	"github.com/forexschool/riskmaster/proposal"
	"github.com/forexschool/riskmaster/session"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted end-to-end session with the offline mentor",
	Long: `Deploy a strategy template, pass it through the review gate (the offline
mentor supplies the fallback critique), execute it, and tick the market until
the trade resolves. Everything stays in memory.`,
	RunE: runDemo,
}

var demoStrategy string
var demoRisk float64

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().StringVar(&demoStrategy, "strategy", academy.Strategies[0].Name, "strategy template to deploy")
	demoCmd.Flags().Float64Var(&demoRisk, "risk", 0.5, "risk percent per trade")
}

func runDemo(cmd *cobra.Command, args []string) error {
	tmpl, err := academy.StrategyByName(demoStrategy)
	if err != nil {
		return err
	}

	cfg := config.Default()
	cfg.Journal.Type = "memory"

	s, err := session.New(cfg, nil, journal.NewMemory(), nil)
	if err != nil {
		return err
	}

	fmt.Printf("Deploying %q at %.5f\n", tmpl.Name, s.Price())

	p := proposal.Deploy(cfg.Market.Symbol, tmpl, s.Price())
	fmt.Printf("  Bias: %s  Stop: %.5f  Target: %.5f\n", p.Bias, p.StopLoss, p.TakeProfit)

	if err := s.Review(cmd.Context(), &p); err != nil {
		return err
	}
	fmt.Printf("\nMentor critique:\n  %s\n\n", p.Review)

	t, err := s.Execute(&p, demoRisk)
	if err != nil {
		return err
	}
	fmt.Printf("Executed trade %s: %s %s @ %.5f (%.2f lots, %.1f%% risk)\n",
		t.ID, t.Bias, t.Symbol, t.EntryPrice, t.PositionSize, t.RiskPercent)

	fmt.Println("\nTicking until resolution...")
	for tick := 1; ; tick++ {
		price, closures, err := s.Step()
		if err != nil {
			return err
		}
		if tick%10 == 0 {
			fmt.Printf("  tick %4d  price %.5f\n", tick, price)
		}
		if len(closures) == 0 {
			continue
		}

		c := closures[0]
		fmt.Printf("\nTrade %s closed: %s at %.5f (P/L $%.2f)\n", c.TradeID, c.Outcome, c.ExitPrice, c.ProfitAmount)
		break
	}

	p2 := s.Profile()
	fmt.Printf("Capital: $%.2f  Total trades: %d\n", p2.Capital, p2.TotalTrades)
	return nil
}
