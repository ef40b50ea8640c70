package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"xtensup/internal/logger"
)

// debug indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// settingsPath holds the path to an optional YAML settings file overriding
// the built-in release locations and sweep exclusions.
var settingsPath string

// rootCmd is the base command for the CLI tool `xtensup`.
var rootCmd = &cobra.Command{
	Use:   "xtensup",
	Short: "Xtensa Rust toolchain installer",

	// PersistentPreRun runs before any subcommand; it initializes the logger
	// based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},

	// Errors are printed once, by Execute, in the logger's style.
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute initializes flags, registers subcommands, and starts command
// execution. It's the entry point for the CLI when invoked by the user.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&settingsPath, "config", "c", "", "Path to optional settings file")

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(checkCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("[ERROR] %v\n", err)
		os.Exit(1)
	}
}
