package cmd

import (
	"github.com/spf13/cobra"

	"xtensup/internal/logger"
	"xtensup/internal/toolchain"
)

// checkCmd verifies the host prerequisites without installing anything.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the host Rust installation",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := toolchain.CheckRustup(); err != nil {
			return err
		}
		logger.Info("[INFO] rustup is installed and working\n")
		return nil
	},
}
