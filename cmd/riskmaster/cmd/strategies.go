package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forexschool/riskmaster/academy"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the deployable strategy templates",
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range academy.Strategies {
			fmt.Printf("%s\n", s.Name)
			fmt.Printf("  Context:      %s\n", s.Context)
			fmt.Printf("  Entry:        %s\n", s.Entry)
			fmt.Printf("  Invalidation: %s\n", s.Invalidation)
			fmt.Printf("  Expectancy:   %s\n", s.Expectancy)
			fmt.Printf("  Default bias: %s, suggested stop: %.0f pips\n\n", s.DefaultBias, s.SuggestedStopPips)
		}
	},
}

func init() {
	rootCmd.AddCommand(strategiesCmd)
}
