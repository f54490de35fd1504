package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hiravi/volt-parser/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "volt-parser",
	Short: "Extract and enrich organization names from text",
	Long:  "Detects organization names in free text via an external NER service and enriches each into a structured profile from Wikidata, Wikipedia, and an optional LLM-assisted fallback.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
