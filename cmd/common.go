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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/valpere/mangler/internal/config"
	"github.com/valpere/mangler/internal/translator"
)

var errNoText = errors.New("no text to mangle")

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"backend":            "backend",
	"log-level":          "log.level",
	"log-format":         "log.format",
	"rounds":             "rounds",
	"delay-ms":           "delay_ms",
	"bank":               "bank",
	"attempts":           "attempts",
	"baidu-app-id":       "baidu.app_id",
	"baidu-api-key":      "baidu.api_key",
	"google-api-key":     "google.api_key",
	"google-credentials": "google.credentials",
	"youdao-app-key":     "youdao.app_id",
	"youdao-app-secret":  "youdao.secret",
	"mymemory-email":     "mymemory.email",
	"ollama-url":         "ollama.base_url",
	"ollama-model":       "ollama.model",
}

// bindFlags binds every flag the running command knows about. Only flags the
// user actually set take precedence over file and environment values.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || !f.Changed || bindErr != nil {
			return
		}
		bindErr = v.BindPFlag(key, f)
	})
	return bindErr
}

// buildTranslator constructs the backend selected in the configuration.
func buildTranslator(c *config.Config) (translator.Translator, error) {
	return translator.New(c.Backend, c.Service(c.Backend))
}

func closeTranslator(tr translator.Translator) {
	if closer, ok := tr.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			logger.Debug().Err(err).Str("backend", tr.Name()).Msg("Failed to close translator")
		}
	}
}

// resolveBank returns the configured bank, or every language tr supports when
// none is configured. Codes tr does not know are rejected up front.
func resolveBank(c *config.Config, tr translator.Translator) ([]string, error) {
	if len(c.Bank) == 0 {
		return tr.SupportedLanguages(), nil
	}

	var unknown []string
	for _, code := range c.Bank {
		if !tr.IsLanguageSupported(code) {
			unknown = append(unknown, code)
		}
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("language bank contains codes %s does not support: %s", tr.Name(), strings.Join(unknown, ", "))
	}
	return c.Bank, nil
}

// readText takes the text from positional arguments, an input file, or stdin,
// in that order.
func readText(args []string, inputFile string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	var data []byte
	var err error
	if inputFile != "" && inputFile != "-" {
		data, err = os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
	} else {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	text := strings.TrimRight(string(data), "\r\n")
	if strings.TrimSpace(text) == "" {
		return "", errNoText
	}
	return text, nil
}

func writeOutput(outputFile, text string) error {
	if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outputFile, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// formatPath renders a path as the chain of languages it visits.
func formatPath(path []translator.LanguagePair) string {
	if len(path) == 0 {
		return "(empty)"
	}
	codes := make([]string, 0, len(path)+1)
	codes = append(codes, path[0].From)
	for _, hop := range path {
		codes = append(codes, hop.To)
	}
	return strings.Join(codes, " -> ")
}
