package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var lookupLLMFallback bool

var lookupCmd = &cobra.Command{
	Use:   "lookup <name>...",
	Short: "Enrich a single organization name and print the profile",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")

		env, err := initEnv()
		if err != nil {
			return err
		}
		defer env.Close()

		profile, err := env.Enricher.Enrich(cmd.Context(), name, lookupLLMFallback)
		if err != nil {
			return err
		}

		doc, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return eris.Wrap(err, "marshal profile")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(doc))
		return nil
	},
}

func init() {
	lookupCmd.Flags().BoolVar(&lookupLLMFallback, "llm-fallback", false, "use the configured assistant to fill gaps the knowledge base leaves")
	rootCmd.AddCommand(lookupCmd)
}
