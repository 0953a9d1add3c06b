// Package cmd implements the command-line interface for libria.
package cmd

import (
	"encoding/json"
	"io"
	"os"

	"github.com/libria-cli/libria/anilibria"
	"github.com/libria-cli/libria/filesystem"
	"github.com/libria-cli/libria/inline"
	"github.com/libria-cli/libria/key"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "The search query; omit to list the latest releases")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")
	inlineCmd.Flags().Bool("json-schema", false, "Print the JSON schema of the structured output and exit")
}

// inlineCmd executes the application in non-interactive, scriptable inline mode.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Execute the application in non-interactive, scriptable inline mode",
	Long: `List or search the catalog without entering the interactive browser.

Without a query the latest releases are listed. With --json the output is a
structured object suitable for scripting; --json-schema describes its shape.`,
	Example: "  libria inline --query frieren --json",
	Run: func(cmd *cobra.Command, args []string) {
		var out io.Writer = os.Stdout
		if path := lo.Must(cmd.Flags().GetString("output")); path != "" {
			f, err := filesystem.API().Create(path)
			handleErr(err)
			defer func() { _ = f.Close() }()
			out = f
		}

		if lo.Must(cmd.Flags().GetBool("json-schema")) {
			schema := jsonschema.Reflect(&inline.Output{})
			encoded, err := json.MarshalIndent(schema, "", "  ")
			handleErr(err)
			_, err = out.Write(append(encoded, '\n'))
			handleErr(err)
			return
		}

		login, password, err := credentials()
		handleErr(err)

		session, err := anilibria.Authenticate(viper.GetString(key.APIBaseURL), login, password)
		handleErr(err)

		handleErr(inline.Run(&inline.Options{
			Out:     out,
			API:     anilibria.New(session),
			BaseURL: session.BaseURL,
			Query:   lo.Must(cmd.Flags().GetString("query")),
			Json:    lo.Must(cmd.Flags().GetBool("json")),
		}))
	},
}
