package cmd

import (
	"github.com/spf13/cobra"

	"xtensup/internal/catalog"
	"xtensup/internal/config"
	"xtensup/internal/host"
	"xtensup/internal/logger"
	"xtensup/internal/toolchain"
)

// Flags for the install command. An empty version means "latest release";
// an empty name or directory falls back to the settings file / rustup home
// defaults.
var (
	installVersion string
	installName    string
	installDir     string
	installTriple  string
	riscvNightly   string
)

// installCmd resolves the requested toolchain version against the release
// catalog and drives the install lifecycle for it.
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the Xtensa Rust toolchain",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load(settingsPath)
		if err != nil {
			return err
		}

		// The toolchain lands inside rustup's toolchains directory, so a
		// working rustup must exist before anything is downloaded.
		if err := toolchain.CheckRustup(); err != nil {
			return err
		}

		resolver := &catalog.Resolver{
			Catalog: &catalog.GitHubClient{
				ReleasesURL: settings.ReleasesAPIURL,
				LatestURL:   settings.LatestAPIURL,
			},
			SkipValidation: config.SkipVersionParse(),
		}
		version := installVersion
		if version == "" {
			version, err = resolver.Latest()
		} else {
			version, err = resolver.Resolve(version)
		}
		if err != nil {
			return err
		}

		triple, err := resolveTriple(installTriple)
		if err != nil {
			return err
		}
		dest, err := resolveToolchainDir(settings, installName, installDir)
		if err != nil {
			return err
		}

		descriptor := toolchain.NewDescriptor(version, triple, dest, settings.ReleaseBaseURL)
		manager := toolchain.NewManager(descriptor, settings.SiblingExclusions)
		if err := manager.Install(); err != nil {
			return err
		}

		if riscvNightly != "" {
			if err := toolchain.NewRiscvTarget(riscvNightly).Install(); err != nil {
				return err
			}
		}

		logger.Info("[INFO] Installation successfully completed!\n")
		return nil
	},
}

// resolveTriple uses the override when given, otherwise detects the host.
func resolveTriple(override string) (host.Triple, error) {
	if override != "" {
		return host.Parse(override)
	}
	return host.Detect()
}

// resolveToolchainDir picks the destination directory: the explicit flag if
// set, otherwise {rustup home}/toolchains/{name}.
func resolveToolchainDir(settings config.Settings, name, dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	if name == "" {
		name = settings.ToolchainName
	}
	return config.DefaultToolchainDir(name)
}

func init() {
	installCmd.Flags().StringVarP(&installVersion, "toolchain-version", "v", "",
		"Toolchain version to install, full (1.65.0.1) or abbreviated (1.65.0); latest release when unset")
	installCmd.Flags().StringVarP(&installName, "name", "n", "",
		"Toolchain name to install under (default \"esp\")")
	installCmd.Flags().StringVar(&installDir, "toolchain-dir", "",
		"Destination directory (default {rustup home}/toolchains/{name})")
	installCmd.Flags().StringVarP(&installTriple, "default-host", "d", "",
		"Host triple override, e.g. x86_64-unknown-linux-gnu")
	installCmd.Flags().StringVar(&riscvNightly, "riscv-nightly", "",
		"Also install the bare-metal RISC-V targets for this nightly toolchain")
}
