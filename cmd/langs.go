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
	"strings"

	"github.com/spf13/cobra"
)

var langsComma bool

var langsCmd = &cobra.Command{
	Use:   "langs",
	Short: "List the language codes a backend accepts",
	Long: `List the language codes the selected backend accepts, in the backend's
own naming (Baidu uses "jp" and "fra", Youdao uses "zh-CHS", and so on).
These are the codes --source and --bank expect.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := buildTranslator(cfg)
		if err != nil {
			return err
		}
		defer closeTranslator(tr)

		codes := tr.SupportedLanguages()
		out := cmd.OutOrStdout()
		if langsComma {
			fmt.Fprintln(out, strings.Join(codes, ","))
			return nil
		}
		for _, code := range codes {
			fmt.Fprintln(out, code)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(langsCmd)

	langsCmd.Flags().BoolVar(&langsComma, "comma", false, "Print the codes on one comma-separated line, ready for --bank")
}
