package cmd

import (
	"github.com/spf13/cobra"

	"xtensup/internal/config"
	"xtensup/internal/logger"
	"xtensup/internal/toolchain"
)

var (
	uninstallName    string
	uninstallDir     string
	uninstallNightly string
)

// uninstallCmd removes the Xtensa Rust toolchain from its directory while
// preserving the GCC and clang components other tools keep there.
var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Uninstall the Xtensa Rust toolchain",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load(settingsPath)
		if err != nil {
			return err
		}
		dest, err := resolveToolchainDir(settings, uninstallName, uninstallDir)
		if err != nil {
			return err
		}

		logger.Info("[INFO] Uninstalling Xtensa Rust toolchain\n")
		if err := toolchain.Sweep(dest, settings.SiblingExclusions); err != nil {
			return err
		}

		if uninstallNightly != "" {
			if err := toolchain.NewRiscvTarget(uninstallNightly).Uninstall(); err != nil {
				return err
			}
		}

		logger.Info("[INFO] Uninstallation successfully completed!\n")
		return nil
	},
}

func init() {
	uninstallCmd.Flags().StringVarP(&uninstallName, "name", "n", "",
		"Toolchain name to uninstall (default \"esp\")")
	uninstallCmd.Flags().StringVar(&uninstallDir, "toolchain-dir", "",
		"Toolchain directory (default {rustup home}/toolchains/{name})")
	uninstallCmd.Flags().StringVar(&uninstallNightly, "riscv-nightly", "",
		"Also remove the bare-metal RISC-V targets from this nightly toolchain")
}
