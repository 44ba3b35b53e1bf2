package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/upmkit/cli/internal/config"
	oerrors "github.com/upmkit/cli/internal/errors"
	"github.com/upmkit/cli/internal/output"
)

var configInitForce bool

// configHeader is written above the generated defaults.
const configHeader = `# upm configuration.
#
# Every key is optional and can be overridden per run by a flag or a
# UPM_* environment variable (outputDir -> UPM_OUTPUT_DIR,
# author.name -> UPM_AUTHOR_NAME).
`

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the upm configuration file.

Writes the built-in defaults to ~/.upm/config.yaml (or the path given by
--config / UPM_CONFIG). Edit it to set your company, author and preferred
template once instead of passing flags on every run.

Examples:
  # Initialize configuration
  upm config init

  # Overwrite existing configuration
  upm config init --force`,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	pathResult, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
	}
	configFile, err := config.ExpandPath(pathResult.ConfigPath)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not expand config path")
	}

	exists, err := config.FileExists(configFile)
	if err != nil {
		return err
	}
	if exists && !configInitForce {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: configFile,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	body, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0o700); err != nil {
		return oerrors.NewPermissionError("could not create config directory",
			map[string]string{"path": filepath.Dir(configFile)}, "")
	}
	if err := os.WriteFile(configFile, append([]byte(configHeader+"\n"), body...), 0o600); err != nil {
		return oerrors.NewPermissionError("could not write config file",
			map[string]string{"path": configFile}, "")
	}

	output.Println(output.FormatCheckmark("Configuration initialized at " + configFile))
	output.Println("Validate with: upm config vet")

	return nil
}
