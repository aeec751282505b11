package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "riskmaster",
	Short: "An educational FX trading simulator with a risk-gated trade lifecycle",
	Long: `Risk Master is an educational trading simulator written in Go.

It provides:
  - A synthetic price feed (seeded random walk, 5-decimal FX pricing)
  - Risk-based position sizing with a hard 1% platform ceiling
  - A mentor review gate: no trade executes without a critique on record
  - A trade ledger that resolves open trades against every tick
  - Session journaling to CSV or SQLite for post-session review
  - A built-in academy of lessons and deployable strategy templates`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
