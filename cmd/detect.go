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

	"github.com/valpere/mangler/internal/detector"
)

var detectInput string

var detectCmd = &cobra.Command{
	Use:   "detect [text]",
	Short: "Detect the language of a text",
	Long: `Detect the language of a text offline and report whether the selected
backend accepts the detected code as --source.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readText(args, detectInput, cmd.InOrStdin())
		if err != nil {
			return err
		}

		lang, ok := detector.New().Detect(text)
		if !ok {
			return fmt.Errorf("could not detect the language")
		}

		tr, err := buildTranslator(cfg)
		if err != nil {
			return err
		}
		defer closeTranslator(tr)

		code := detector.ISOCode(lang)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n", code, lang)
		if tr.IsLanguageSupported(code) {
			fmt.Fprintf(out, "supported by %s\n", tr.Name())
		} else {
			fmt.Fprintf(out, "not a %s code, see \"mangler langs -b %s\"\n", tr.Name(), tr.Name())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)

	detectCmd.Flags().StringVarP(&detectInput, "input", "i", "", "Input file (default stdin)")
}
