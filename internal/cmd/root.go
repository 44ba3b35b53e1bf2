// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/upmkit/cli/internal/config"
	"github.com/upmkit/cli/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	loadedConfig *config.Config
	configPath   config.ResolveConfigPathResult
)

// NewRootCmd creates the root command for the upm CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "upm",
		Short: "Unity package scaffold generator",
		Long: `upm creates Unity Package Manager packages from templates.

A package is written to <output>/<prefix>.<company>.<package> with a
package.json manifest, assembly definitions, documentation and C# stubs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: UPM_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewNewCmd())
	rootCmd.AddCommand(NewTemplatesCmd())
	rootCmd.AddCommand(NewVetCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads the config file and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	pathResult, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		return err
	}
	configPath = pathResult

	// A broken config file should not block commands like "config init".
	cfg, loadErr := config.NewLoader().Load(pathResult.ConfigPath)
	if loadErr != nil {
		cfg = nil
	}
	loadedConfig = cfg

	// flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if cfg != nil && cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if loadErr != nil {
		output.Warn("ignoring config file", "path", pathResult.ConfigPath, "error", loadErr)
	}
	output.Debug("initializing CLI",
		"config", pathResult.ConfigPath,
		"source", pathResult.Source,
	)

	return nil
}

// GetConfig returns the loaded configuration, or nil when none was loaded.
func GetConfig() *config.Config {
	return loadedConfig
}

// GetConfigPath returns the resolved config path value.
func GetConfigPath() string {
	if configPath.ConfigPath != "" {
		return configPath.ConfigPath
	}
	return configFlag
}
