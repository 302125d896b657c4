/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/valpere/mangler/internal"
	"github.com/valpere/mangler/internal/detector"
	"github.com/valpere/mangler/internal/mangler"
	"github.com/valpere/mangler/internal/translator"
	"github.com/valpere/mangler/internal/validator"
)

var (
	inputFile  string
	outputFile string
	sourceLang string
	seed       uint64
	preview    bool
	verbose    bool
	jsonOut    bool
	checkDrift bool
)

var mangleCmd = &cobra.Command{
	Use:   "mangle [text]",
	Short: "Mangle text through a random chain of languages",
	Long: `Translate text through a randomly planned chain of languages drawn from
the language bank, ending back in the original language.

The text is taken from the arguments, --input, or stdin. The mangled text is
written to stdout (or --output); logs go to stderr.

Examples:
  mangler mangle -b baidu -s en --rounds 10 "Ignorance is strength."
  echo "Hello, world" | mangler mangle -b youdao -s en --bank en,ja,fr --preview`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readText(args, inputFile, cmd.InOrStdin())
		if err != nil {
			return err
		}

		tr, err := buildTranslator(cfg)
		if err != nil {
			return err
		}
		defer closeTranslator(tr)

		source, err := resolveSource(tr, sourceLang, text)
		if err != nil {
			return err
		}

		bank, err := resolveBank(cfg, tr)
		if err != nil {
			return err
		}
		if err := mangler.CheckBank(source, bank, cfg.Rounds); err != nil {
			return err
		}

		path := mangler.Plan(source, bank, cfg.Rounds, newChooser(cmd, seed))
		if preview {
			fmt.Fprintf(cmd.ErrOrStderr(), "Planned path (%d hops): %s\n", len(path), formatPath(path))
		}

		report := internal.MangleReport{
			ID:         uuid.New().String(),
			Backend:    tr.Name(),
			SourceLang: source,
			SourceText: text,
			Path:       path,
			Timestamp:  time.Now(),
		}
		log := logger.With().Str("run_id", report.ID).Str("backend", tr.Name()).Logger()

		pipeline := mangler.New(tr, mangler.Config{
			Delay:  cfg.Delay(),
			Logger: log,
			OnHop:  hopPrinter(cmd.ErrOrStderr()),
		})

		log.Info().Int("hops", len(path)).Str("source", source).Msg("Mangling")
		result, attempts, err := runWithAttempts(cmd.Context(), log, pipeline, text, path, cfg.Attempts)
		report.Attempts = attempts
		report.Duration = time.Since(report.Timestamp)
		if err != nil {
			report.Error = err.Error()
			if jsonOut {
				if reportErr := writeReport(cmd.OutOrStdout(), report); reportErr != nil {
					log.Debug().Err(reportErr).Msg("Failed to write report")
				}
			}
			return err
		}
		report.Result = result

		if checkDrift {
			if ok, driftErr := validator.New().IsValid(result, source); !ok {
				log.Warn().Err(driftErr).Msg("Mangled text drifted away from the original language")
			}
		}

		if outputFile != "" {
			if err := writeOutput(outputFile, result); err != nil {
				return err
			}
		}

		log.Info().Dur("elapsed", report.Duration).Int("attempts", attempts).Msg("Done")

		if jsonOut {
			return writeReport(cmd.OutOrStdout(), report)
		}
		if outputFile == "" {
			fmt.Fprintln(cmd.OutOrStdout(), result)
		}
		return nil
	},
}

// resolveSource validates the original language against the backend, running
// language detection first when it is "auto".
func resolveSource(tr translator.Translator, source, text string) (string, error) {
	if source == "" || source == "auto" {
		detected, ok := detector.New().DetectISO(text)
		if !ok {
			return "", fmt.Errorf("could not detect the source language, pass --source")
		}
		if !tr.IsLanguageSupported(detected) {
			return "", fmt.Errorf("detected source language %q is not a %s code, pass --source", detected, tr.Name())
		}
		logger.Info().Str("source", detected).Msg("Detected source language")
		return detected, nil
	}

	if !tr.IsLanguageSupported(source) {
		return "", fmt.Errorf("source language %q is not supported by %s (see \"mangler langs -b %s\")", source, tr.Name(), tr.Name())
	}
	return source, nil
}

// runWithAttempts re-runs the whole walk on failure, up to attempts times.
// Unsupported languages and cancellation are never retried.
func runWithAttempts(ctx context.Context, log zerolog.Logger, p *mangler.Pipeline, text string, path []translator.LanguagePair, attempts int) (string, int, error) {
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		result, err := p.Execute(ctx, text, path)
		if err == nil {
			return result, attempt, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return "", attempt, err
		}
		if kind, ok := translator.KindOf(err); ok && kind == translator.KindUnsupportedLanguage {
			return "", attempt, err
		}
		if attempt < attempts {
			log.Warn().Err(err).Int("attempt", attempt).Msg("Mangling failed, retrying")
		}
	}
	return "", attempts, lastErr
}

func newChooser(cmd *cobra.Command, seed uint64) mangler.Chooser {
	if !cmd.Flags().Changed("seed") {
		return mangler.DefaultChooser
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func hopPrinter(w io.Writer) func(mangler.HopResult) {
	if !verbose {
		return nil
	}
	return func(h mangler.HopResult) {
		if h.Err != nil {
			fmt.Fprintf(w, "[%d] %s: %v\n", h.Index+1, h.Pair, h.Err)
			return
		}
		fmt.Fprintf(w, "[%d] %s (%s): %s\n", h.Index+1, h.Pair, h.Latency.Round(time.Millisecond), h.Text)
	}
}

func writeReport(w io.Writer, report internal.MangleReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(mangleCmd)

	mangleCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file to mangle (default stdin)")
	mangleCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file for the mangled text (default stdout)")
	mangleCmd.Flags().StringVarP(&sourceLang, "source", "s", "auto", "Original language code of the text, as the backend names it")

	mangleCmd.Flags().IntP("rounds", "r", 20, "Number of translation hops")
	mangleCmd.Flags().Int("delay-ms", 1000, "Cool-down between API calls in milliseconds")
	mangleCmd.Flags().StringSlice("bank", nil, "Language bank, comma-separated (default: every language the backend supports)")
	mangleCmd.Flags().Int("attempts", 1, "Total attempts of the whole walk including the first (1 = no retries)")

	mangleCmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for the path planner, for reproducible paths")
	mangleCmd.Flags().BoolVar(&preview, "preview", false, "Print the planned path before mangling")
	mangleCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print the text after every hop")
	mangleCmd.Flags().BoolVar(&jsonOut, "json", false, "Print a JSON report instead of the bare text")
	mangleCmd.Flags().BoolVar(&checkDrift, "check-drift", false, "Warn when the result no longer reads as the original language")
}
