package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hiravi/volt-parser/internal/output"
)

var (
	runOutput      string
	runPretty      bool
	runLLMFallback bool
)

var runCmd = &cobra.Command{
	Use:   "run <input-file>",
	Short: "Extract organizations from a text file and write enriched profiles",
	Long:  "Reads text from the given file (or stdin when the argument is \"-\"), extracts organization names, enriches each concurrently, and writes a schema-validated JSON document.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		runID := uuid.New().String()
		log := zap.L().With(zap.String("run_id", runID))

		text, err := readInput(args[0])
		if err != nil {
			return err
		}

		env, err := initEnv()
		if err != nil {
			return err
		}
		defer env.Close()

		names, err := env.Extractor.Organizations(ctx, text)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			log.Info("no organizations detected, writing empty result")
			return output.Write(nil, runOutput)
		}

		log.Info("detected organizations",
			zap.Int("count", len(names)),
			zap.Strings("names", names),
		)

		profiles, outcomes := env.Enricher.EnrichAll(ctx, names, runLLMFallback)
		for _, outcome := range outcomes {
			if outcome.Failed() {
				log.Warn("candidate not enriched",
					zap.String("name", outcome.Name),
					zap.Error(outcome.Err),
				)
			}
		}

		if err := output.Write(profiles, runOutput); err != nil {
			return err
		}
		log.Info("result written",
			zap.String("path", runOutput),
			zap.Int("profiles", len(profiles)),
		)

		if runPretty {
			doc, err := output.Document(profiles)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(doc))
		}
		return nil
	},
}

func readInput(arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", eris.Wrap(err, "read stdin")
		}
		return strings.ToValidUTF8(string(data), ""), nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", eris.Wrapf(err, "read input %s", arg)
	}
	return strings.ToValidUTF8(string(data), ""), nil
}

func init() {
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "result.json", "output JSON path")
	runCmd.Flags().BoolVar(&runPretty, "pretty", false, "print the JSON document to stdout as well")
	runCmd.Flags().BoolVar(&runLLMFallback, "llm-fallback", false, "use the configured assistant to fill gaps the knowledge base leaves")
	rootCmd.AddCommand(runCmd)
}
