package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/upmkit/cli/internal/config"
	oerrors "github.com/upmkit/cli/internal/errors"
	"github.com/upmkit/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the upm configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML
  3. Every key is known and every value passes the config schema

The config path is resolved using precedence:
  --config flag > UPM_CONFIG env > ~/.upm/config.yaml

Examples:
  # Validate default configuration
  upm config vet

  # Validate custom config path
  upm config vet --config /path/to/config.yaml`,
		RunE: runConfigVet,
	}

	return cmd
}

func runConfigVet(_ *cobra.Command, _ []string) error {
	pathResult, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not resolve config path")
	}
	configFile, err := config.ExpandPath(pathResult.ConfigPath)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not expand config path")
	}

	output.Debug("validating config",
		"path", configFile,
		"source", pathResult.Source,
	)

	exists, err := config.FileExists(configFile)
	if err != nil {
		return err
	}
	if !exists {
		return oerrors.NewNotFoundError(
			"configuration file not found",
			configFile,
			"Run 'upm config init' to create default configuration",
		)
	}

	validator, err := config.NewValidator()
	if err != nil {
		return err
	}

	if err := validator.ValidateFile(configFile); err != nil {
		var verrs config.ValidationErrors
		if !errors.As(err, &verrs) {
			return oerrors.NewValidationError(err.Error(), configFile, "", "")
		}
		output.Error("configuration is invalid", "path", configFile)
		for _, v := range verrs {
			output.Println(output.FormatFileLine(v.Field, output.StatusInvalid) + "  " + v.Message)
		}
		return &ExitError{
			Code:    ExitValidationError,
			Err:     fmt.Errorf("%d config error(s): %w", len(verrs), oerrors.ErrValidation),
			Printed: true,
		}
	}

	output.Println(output.FormatCheckmark("Configuration is valid: " + configFile))
	return nil
}
