// Package cmdutil provides shared command utilities: flag groups for the
// package form and result/diagnostic printers.
package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/upmkit/cli/internal/form"
)

// PackageFlags holds the flags that fill a package form (new).
// Empty values fall through to UPM_* env, the config file and defaults.
type PackageFlags struct {
	Company       string
	DisplayName   string
	Description   string
	Version       string
	AuthorName    string
	AuthorEmail   string
	AuthorURL     string
	UnityVersion  string
	Keywords      []string
	OutputDir     string
	Template      string
	PackagePrefix string
	License       string
}

// AddTo registers the package flags on the given cobra command.
func (f *PackageFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Company, "company", "",
		"Company name (env: UPM_COMPANY)")
	cmd.Flags().StringVar(&f.DisplayName, "display-name", "",
		"Display name (default: derived from the package name)")
	cmd.Flags().StringVar(&f.Description, "description", "",
		"Package description")
	cmd.Flags().StringVar(&f.Version, "version", "",
		"Package version (default: "+form.DefaultVersion+")")
	cmd.Flags().StringVar(&f.AuthorName, "author", "",
		"Author name (env: UPM_AUTHOR_NAME)")
	cmd.Flags().StringVar(&f.AuthorEmail, "author-email", "",
		"Author email (env: UPM_AUTHOR_EMAIL)")
	cmd.Flags().StringVar(&f.AuthorURL, "author-url", "",
		"Author URL (env: UPM_AUTHOR_URL)")
	cmd.Flags().StringVar(&f.UnityVersion, "unity", "",
		"Full Unity editor version, e.g. 6000.2.1f1 (env: UPM_UNITY_VERSION)")
	cmd.Flags().StringArrayVar(&f.Keywords, "keyword", nil,
		"Manifest keyword (can be repeated)")
	cmd.Flags().StringVarP(&f.OutputDir, "output", "o", "",
		"Parent directory of the package root (env: UPM_OUTPUT_DIR)")
	cmd.Flags().StringVarP(&f.Template, "template", "t", "",
		"Template to use (env: UPM_TEMPLATE)")
	cmd.Flags().StringVar(&f.PackagePrefix, "prefix", "",
		"Leading segment of the package identifier (env: UPM_PACKAGE_PREFIX)")
	cmd.Flags().StringVar(&f.License, "license", "",
		"SPDX license identifier (env: UPM_LICENSE)")
}

// Form converts the flag values into a form, with pkg as the package name.
func (f *PackageFlags) Form(pkg string) form.Form {
	return form.Form{
		Company:       f.Company,
		Package:       pkg,
		DisplayName:   f.DisplayName,
		Description:   f.Description,
		Version:       f.Version,
		AuthorName:    f.AuthorName,
		AuthorEmail:   f.AuthorEmail,
		AuthorURL:     f.AuthorURL,
		OutputDir:     f.OutputDir,
		Template:      f.Template,
		UnityVersion:  f.UnityVersion,
		PackagePrefix: f.PackagePrefix,
		License:       f.License,
		Keywords:      append([]string(nil), f.Keywords...),
	}
}

// GenerateFlags controls prompting and overwrite behavior (new).
type GenerateFlags struct {
	Force       bool
	Interactive bool
}

// AddTo registers the generate flags on the given cobra command.
func (f *GenerateFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.Force, "force", "f", false,
		"Replace an existing package directory without asking")
	cmd.Flags().BoolVarP(&f.Interactive, "interactive", "i", false,
		"Prompt for every field even when a package name is given")
}

// ResolvePackagePath returns the package path from command args,
// defaulting to the current directory.
func ResolvePackagePath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// PackageArg returns the package name argument, or "" when absent.
func PackageArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
