package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/upmkit/cli/internal/errors"
	"github.com/upmkit/cli/internal/output"
	"github.com/upmkit/cli/internal/templates"
)

var templatesOutputFlag string

// templateInfo is the structured (json/yaml) form of a template.
type templateInfo struct {
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Default      bool              `json:"default,omitempty"`
	Directories  []string          `json:"directories"`
	Files        []string          `json:"files"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// NewTemplatesCmd creates the templates command.
func NewTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List available package templates",
		Long: `List the package templates, their directory sets and files.

File paths are shown unrendered: {{.ClassName}} and {{.Namespace}} are
replaced by values derived from the company and package names.

Examples:
  # Table
  upm templates

  # Full detail as YAML
  upm templates -o yaml`,
		Args: cobra.NoArgs,
		RunE: runTemplates,
	}

	cmd.Flags().StringVarP(&templatesOutputFlag, "output", "o", "table",
		"Output format: "+strings.Join(output.ValidFormats(), ", "))

	return cmd
}

func runTemplates(cmd *cobra.Command, _ []string) error {
	format, err := output.ParseFormat(templatesOutputFlag)
	if err != nil {
		return oerrors.NewValidationError(err.Error(), "", "output", "")
	}

	infos, err := collectTemplates()
	if err != nil {
		return err
	}

	if format != output.FormatTable {
		return output.WriteStructured(cmd.OutOrStdout(), infos, format)
	}

	tbl := output.NewTable("NAME", "DIRS", "FILES", "DESCRIPTION")
	for _, ti := range infos {
		name := ti.Name
		if ti.Default {
			name += " (default)"
		}
		tbl.Row(name, fmt.Sprint(len(ti.Directories)), fmt.Sprint(len(ti.Files)), ti.Description)
	}
	output.Println(tbl.String())
	return nil
}

func collectTemplates() ([]templateInfo, error) {
	def := templates.GetDefault()

	var infos []templateInfo
	for _, t := range templates.List() {
		dirs, err := templates.Directories(string(t.Name))
		if err != nil {
			return nil, err
		}
		files, err := templates.ListTemplateFiles(string(t.Name))
		if err != nil {
			return nil, err
		}
		infos = append(infos, templateInfo{
			Name:         string(t.Name),
			Description:  t.Description,
			Default:      t.Name == def.Name,
			Directories:  dirs,
			Files:        files,
			Dependencies: t.Dependencies,
		})
	}
	return infos, nil
}
