package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/upmkit/cli/internal/cmdutil"
	"github.com/upmkit/cli/internal/config"
	oerrors "github.com/upmkit/cli/internal/errors"
	"github.com/upmkit/cli/internal/form"
	"github.com/upmkit/cli/internal/output"
	"github.com/upmkit/cli/internal/templates"
)

// Swapped in tests.
var (
	newPrompter form.Prompter = form.HuhPrompter{}
	stdinIsTTY                = output.IsStdinTTY
)

// writeTimeout bounds writing the planned files.
const writeTimeout = 2 * time.Minute

// NewNewCmd creates the new command.
func NewNewCmd() *cobra.Command {
	var (
		pf cmdutil.PackageFlags
		gf cmdutil.GenerateFlags
	)

	cmd := &cobra.Command{
		Use:   "new [package]",
		Short: "Create a new package from a template",
		Long: `Create a new Unity package from a template.

The package is written to <output>/<prefix>.<company>.<package>, e.g.
./com.myco.cool-tool. Without a package argument on a terminal, or with
--interactive, every field is asked for in a form.

If the package directory already exists it is deleted and recreated after
confirmation. Use --force to skip the question; without a terminal the
command fails unless --force is given.

Templates:
  standard      Runtime, Editor and Tests assemblies (default)
  xr-device     XR loader, subsystem and input device stubs
  editor-only   A single editor window and its tests
  platform      Android plugin folder and AndroidManifest.xml

Examples:
  # Ask for everything
  upm new

  # Non-interactive
  upm new cool-tool --company MyCo --author "Jane Doe" --unity 6000.2.1f1

  # XR device package into ./Packages, replacing any previous run
  upm new my-headset -t xr-device -o ./Packages --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runNew(c.Context(), args, &pf, &gf)
		},
	}

	pf.AddTo(cmd)
	gf.AddTo(cmd)

	return cmd
}

func runNew(ctx context.Context, args []string, pf *cmdutil.PackageFlags, gf *cmdutil.GenerateFlags) error {
	f, resolved := form.Resolve(pf.Form(cmdutil.PackageArg(args)), GetConfig())
	config.LogResolvedValues(resolved)

	if !templates.IsValidTemplate(f.Template) {
		return oerrors.NewValidationError("unknown template: "+f.Template, "", "template",
			"run 'upm templates' to list available templates")
	}

	tty := stdinIsTTY()
	if gf.Interactive || (tty && len(args) == 0) {
		if err := newPrompter.Fill(ctx, &f, templateChoices()); err != nil {
			return err
		}
	}

	opts := templates.GenerateOptions{
		Form:  f,
		Force: gf.Force,
		Color: output.IsTTY(),
	}
	if tty {
		opts.Confirm = newPrompter.Confirm
	}
	gen := templates.NewGenerator(opts)

	plan, err := gen.Plan()
	if err != nil {
		return err
	}

	replaced, err := gen.PrepareRoot(plan)
	if err != nil {
		return err
	}

	var res *templates.Result
	err = output.RunWithSpinner(ctx, func(ctx context.Context) error {
		var werr error
		res, werr = gen.Write(ctx, plan)
		return werr
	},
		output.WithTitle("Creating "+plan.PackageID),
		output.WithTimeout(writeTimeout),
	)
	if err != nil {
		cmdutil.PrintValidationError("package generation failed", err)
		return &ExitError{Code: ExitCodeFromError(err), Err: err, Printed: true}
	}
	res.Replaced = replaced

	if verboseFlag {
		cmdutil.WriteVerboseResult(res)
	}
	cmdutil.WriteResult(res)

	return nil
}

// templateChoices lists the templates for the form's select field.
func templateChoices() []form.Choice {
	list := templates.List()
	choices := make([]form.Choice, len(list))
	for i, t := range list {
		choices[i] = form.Choice{
			Value: string(t.Name),
			Label: string(t.Name) + " - " + t.Description,
		}
	}
	return choices
}
