package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/forexschool/riskmaster/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or initialize a session configuration",
	RunE:  runConfig,
}

var configInitPath string

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().StringVar(&configInitPath, "init", "", "write the default config to this path instead of printing it")
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := config.Default()

	if configInitPath != "" {
		if err := cfg.SaveToFile(configInitPath); err != nil {
			return err
		}
		fmt.Println("Wrote default config to", configInitPath)
		return nil
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
