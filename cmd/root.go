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
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/valpere/mangler/internal/config"
	"github.com/valpere/mangler/internal/logging"
)

var version = "0.3.0"

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mangler",
	Short: "Mangle text by machine-translating it around the world",
	Long: `A CLI application that translates text through a random chain of
intermediate languages and back to its original language, producing a
drifted paraphrase.

Supported backends: Baidu, Google Cloud, Youdao AI, MyMemory, Ollama (LLM)

Credentials come from flags, a mangler.yaml config file, or MANGLER_*
environment variables (e.g. MANGLER_BAIDU_API_KEY).

Use "mangler mangle --help" for mangling options.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile, func(v *viper.Viper) error {
			return bindFlags(v, cmd)
		})
		if err != nil {
			return err
		}

		logger, err = logging.New(cfg.Log.Format, cfg.Log.Level)
		return err
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()

	pf.StringVar(&cfgFile, "config", "", "Config file (default ./mangler.yaml or $HOME/.mangler/mangler.yaml)")
	pf.StringP("backend", "b", "google", "Translation backend (baidu, google, youdao, mymemory, ollama)")
	pf.String("log-level", "info", "Log level (debug, info, warn, error)")
	pf.String("log-format", "console", "Log format (console, json)")

	pf.String("baidu-app-id", "", "App ID for the Baidu Translation API")
	pf.String("baidu-api-key", "", "API key for the Baidu Translation API")
	pf.String("google-api-key", "", "API key for the Google Cloud Translation API")
	pf.String("google-credentials", "", "Path to Google Cloud credentials (used when no API key is set)")
	pf.String("youdao-app-key", "", "App key for Youdao AI")
	pf.String("youdao-app-secret", "", "App secret for Youdao AI")
	pf.String("mymemory-email", "", "MyMemory email (for higher limits)")
	pf.String("ollama-url", "", "Ollama base URL (default http://localhost:11434)")
	pf.String("ollama-model", "", "Ollama model (default llama3.2)")
}
