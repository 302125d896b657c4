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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valpere/mangler/internal/mangler"
)

var (
	planSource string
	planSeed   uint64
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print a random language path without translating anything",
	Long: `Plan a language path the way "mangle" would and print it hop by hop.
No translation requests are made, so no credentials are needed.

Example:
  mangler plan -b baidu -s en --rounds 5 --bank en,jp,fra,de --seed 42`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if planSource == "" || planSource == "auto" {
			return fmt.Errorf("plan needs an explicit --source language")
		}

		tr, err := buildTranslator(cfg)
		if err != nil {
			return err
		}
		defer closeTranslator(tr)

		if !tr.IsLanguageSupported(planSource) {
			return fmt.Errorf("source language %q is not supported by %s", planSource, tr.Name())
		}
		bank, err := resolveBank(cfg, tr)
		if err != nil {
			return err
		}
		if err := mangler.CheckBank(planSource, bank, cfg.Rounds); err != nil {
			return err
		}

		path := mangler.Plan(planSource, bank, cfg.Rounds, newChooser(cmd, planSeed))

		out := cmd.OutOrStdout()
		for i, hop := range path {
			fmt.Fprintf(out, "%3d  %s\n", i+1, hop)
		}
		fmt.Fprintf(out, "\n%s\n", formatPath(path))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringVarP(&planSource, "source", "s", "", "Original language code")
	planCmd.Flags().IntP("rounds", "r", 20, "Number of translation hops")
	planCmd.Flags().StringSlice("bank", nil, "Language bank, comma-separated (default: every language the backend supports)")
	planCmd.Flags().Uint64Var(&planSeed, "seed", 0, "Seed for the path planner")
}
