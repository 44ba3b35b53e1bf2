package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/upmkit/cli/internal/cmdutil"
	oerrors "github.com/upmkit/cli/internal/errors"
	"github.com/upmkit/cli/internal/manifest"
	"github.com/upmkit/cli/internal/output"
)

// NewVetCmd creates the vet command.
func NewVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet [path]",
		Short: "Validate a package",
		Long: `Validate an existing package directory.

Checks performed:
  1. package.json exists and is valid JSON
  2. package.json passes the package manifest schema
  3. every .asmdef under the package passes the assembly definition schema

Arguments:
  path    Path to the package root (default: current directory)

Examples:
  # Validate the package in the current directory
  upm vet

  # Validate a generated package
  upm vet ./com.myco.cool-tool`,
		Args: cobra.MaximumNArgs(1),
		RunE: runVet,
	}
}

func runVet(_ *cobra.Command, args []string) error {
	dir := cmdutil.ResolvePackagePath(args)

	pkg, data, err := manifest.LoadPackage(dir)
	if err != nil {
		return err
	}

	log := output.PackageLogger(pkg.Name)
	log.Debug("validating package", "path", dir)

	if base := filepath.Base(filepath.Clean(dir)); base != "." && base != pkg.Name {
		log.Warn("directory name does not match package name", "dir", base)
	}

	invalid := 0
	check := func(file string, res *manifest.ValidationResult) {
		if res.Valid {
			output.Println(output.FormatFileLine(file, output.StatusValid))
			return
		}
		invalid++
		cmdutil.PrintIssues(file, res.Issues)
	}

	res, err := manifest.ValidatePackage(data)
	if err != nil {
		return err
	}
	check(manifest.FileName, res)

	asmdefs, err := manifest.FindAssemblies(dir)
	if err != nil {
		return err
	}
	if len(asmdefs) == 0 {
		log.Warn("no assembly definitions found")
	}

	for _, rel := range asmdefs {
		content, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
		if err != nil {
			return fmt.Errorf("reading %s: %w", rel, err)
		}
		res, err := manifest.ValidateAssembly(content)
		if err != nil {
			res = &manifest.ValidationResult{Issues: []manifest.Issue{{Message: err.Error()}}}
		}
		check(rel, res)
	}

	if invalid > 0 {
		log.Error(fmt.Sprintf("%d invalid file(s)", invalid))
		return &ExitError{
			Code:    ExitValidationError,
			Err:     oerrors.Wrap(oerrors.ErrValidation, fmt.Sprintf("%d invalid file(s)", invalid)),
			Printed: true,
		}
	}

	output.Println(output.FormatCheckmark("Package " + output.StyleNoun.Render(pkg.Name) + " is valid"))
	return nil
}
