// Package cmd implements the command-line interface for libria.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/libria-cli/libria/constant"
	"github.com/libria-cli/libria/host"
	"github.com/libria-cli/libria/key"
	"github.com/libria-cli/libria/log"
	"github.com/libria-cli/libria/style"
	"github.com/libria-cli/libria/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("api-url", "u", "", "Base URL of the Anilibria API")
	lo.Must0(viper.BindPFlag(key.APIBaseURL, rootCmd.PersistentFlags().Lookup("api-url")))

	rootCmd.PersistentFlags().StringP("login", "l", "", "Account login used for API authentication")
	lo.Must0(viper.BindPFlag(key.APILogin, rootCmd.PersistentFlags().Lookup("login")))

	rootCmd.PersistentFlags().StringP("password", "p", "", "Account password used for API authentication")
	lo.Must0(viper.BindPFlag(key.APIPassword, rootCmd.PersistentFlags().Lookup("password")))

	rootCmd.Flags().StringP("player", "P", "", "Media player application used for playback")
	lo.Must0(viper.BindPFlag(key.PlayerApp, rootCmd.Flags().Lookup("player")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd defines the entry point for the libria application.
var rootCmd = &cobra.Command{
	Use:   constant.Libria,
	Short: "A terminal browser for the Anilibria catalog",
	Long: style.Bold("libria") + "\n" +
		style.Italic("    - browse, search and play Anilibria releases from the terminal"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(browse(host.NewTerminal()))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.ErrorTitle("✗"), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

// credentials reads the configured account credentials, failing when either is missing.
func credentials() (login, password string, err error) {
	login = viper.GetString(key.APILogin)
	password = viper.GetString(key.APIPassword)
	if login == "" || password == "" {
		err = fmt.Errorf(
			"missing credentials: set %s and %s (or the matching environment variables)",
			key.APILogin, key.APIPassword,
		)
	}
	return
}
