// Package form holds the configuration record filled by flags or prompts
// and consumed once by package generation.
package form

import (
	"strings"

	"github.com/upmkit/cli/internal/config"
	oerrors "github.com/upmkit/cli/internal/errors"
	"github.com/upmkit/cli/internal/naming"
)

// Default values for fields the user leaves empty.
const (
	DefaultPackage = "my-package"
	DefaultVersion = "0.1.0"
)

// Form is the flat record describing one package to generate.
type Form struct {
	Company     string
	Package     string
	DisplayName string
	Description string
	Version     string

	AuthorName  string
	AuthorEmail string
	AuthorURL   string

	// OutputDir is the parent directory; the package root is OutputDir/<id>.
	OutputDir string
	Template  string

	// UnityVersion is the full host version, e.g. "6000.2.1f1".
	UnityVersion  string
	PackagePrefix string
	License       string
	Keywords      []string
}

// Defaults returns a Form with every built-in default populated.
func Defaults() Form {
	return Form{
		Company:       config.DefaultCompany,
		Package:       DefaultPackage,
		Version:       DefaultVersion,
		OutputDir:     config.DefaultOutputDir,
		Template:      config.DefaultTemplate,
		UnityVersion:  config.DefaultUnityVersion,
		PackagePrefix: config.DefaultPackagePrefix,
		License:       config.DefaultLicense,
	}
}

// Resolve merges flag values over UPM_* env, the config file and the
// built-in defaults, field by field. Fields without a config key
// (package, display name, description, version) take the flag value or
// the default. The returned values record each field's source. A
// leading ~ in the output directory is expanded to the home directory.
func Resolve(flags Form, cfg *config.Config) (Form, []config.ResolvedValue) {
	if cfg == nil {
		cfg = &config.Config{}
	}
	def := Defaults()
	out := flags

	var resolved []config.ResolvedValue
	resolve := func(key, flag, cfgValue, defValue string, dst *string) {
		rv := config.Resolve(config.ResolveOptions{
			Key:         key,
			FlagValue:   flag,
			ConfigValue: cfgValue,
			Default:     defValue,
		})
		*dst = rv.Value
		resolved = append(resolved, rv)
	}

	resolve("company", flags.Company, cfg.Company, def.Company, &out.Company)
	resolve("author.name", flags.AuthorName, cfg.Author.Name, "", &out.AuthorName)
	resolve("author.email", flags.AuthorEmail, cfg.Author.Email, "", &out.AuthorEmail)
	resolve("author.url", flags.AuthorURL, cfg.Author.URL, "", &out.AuthorURL)
	resolve("outputDir", flags.OutputDir, cfg.OutputDir, def.OutputDir, &out.OutputDir)
	resolve("template", flags.Template, cfg.Template, def.Template, &out.Template)
	resolve("unityVersion", flags.UnityVersion, cfg.UnityVersion, def.UnityVersion, &out.UnityVersion)
	resolve("packagePrefix", flags.PackagePrefix, cfg.PackagePrefix, def.PackagePrefix, &out.PackagePrefix)
	resolve("license", flags.License, cfg.License, def.License, &out.License)

	if dir, err := config.ExpandPath(out.OutputDir); err == nil {
		out.OutputDir = dir
	}

	if out.Package == "" {
		out.Package = def.Package
	}
	if out.Version == "" {
		out.Version = def.Version
	}
	return out, resolved
}

// Normalize trims whitespace and derives the display name when empty.
func (f *Form) Normalize() {
	for _, s := range []*string{
		&f.Company, &f.Package, &f.DisplayName, &f.Description, &f.Version,
		&f.AuthorName, &f.AuthorEmail, &f.AuthorURL,
		&f.OutputDir, &f.Template, &f.UnityVersion, &f.PackagePrefix, &f.License,
	} {
		*s = strings.TrimSpace(*s)
	}

	keywords := f.Keywords[:0]
	for _, k := range f.Keywords {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	f.Keywords = keywords

	if f.DisplayName == "" {
		f.DisplayName = naming.DisplayName(f.Package)
	}
}

// PackageID returns the lower-cased "prefix.company.package" identifier.
func (f *Form) PackageID() string {
	prefix := f.PackagePrefix
	if prefix == "" {
		prefix = naming.DefaultPrefix
	}
	return naming.PackageID(prefix, f.Company, f.Package)
}

// AssemblyName returns the PascalCase assembly root, e.g. "MyCo.CoolTool".
func (f *Form) AssemblyName() string {
	return naming.AssemblyName(f.Company, f.Package)
}

// Validate checks the form before generation. Company and package must
// be non-blank and yield names that start with a letter. An author email
// or URL needs an author name. The version must be strict semver and the
// derived identifier a valid reverse-domain name.
func (f *Form) Validate() error {
	if strings.TrimSpace(f.Company) == "" {
		return oerrors.NewValidationError(
			"company name is required", "", "company",
			"pass --company or set 'company' in ~/.upm/config.yaml",
		)
	}
	if strings.TrimSpace(f.Package) == "" {
		return oerrors.NewValidationError(
			"package name is required", "", "package",
			"pass the package name as the first argument",
		)
	}
	if naming.Sanitize(f.Company) == "" {
		return oerrors.NewValidationError(
			"company name has no usable characters: "+f.Company, "", "company",
			"use letters, digits, hyphens or spaces",
		)
	}
	if naming.Sanitize(f.Package) == "" {
		return oerrors.NewValidationError(
			"package name has no usable characters: "+f.Package, "", "package",
			"use letters, digits, hyphens or spaces",
		)
	}
	if err := naming.ValidateCodeName(naming.CompanyNamespace(f.Company)); err != nil {
		return oerrors.NewValidationError(err.Error(), "", "company",
			"the company name becomes a C# namespace; start it with a letter")
	}
	if err := naming.ValidateCodeName(naming.PascalCase(naming.Sanitize(f.Package))); err != nil {
		return oerrors.NewValidationError(err.Error(), "", "package",
			"the package name becomes a C# class name; start it with a letter")
	}
	if (f.AuthorEmail != "" || f.AuthorURL != "") && strings.TrimSpace(f.AuthorName) == "" {
		return oerrors.NewValidationError(
			"author name is required when an author email or URL is set", "", "author",
			"pass --author or set 'author.name' in ~/.upm/config.yaml")
	}
	if err := naming.ValidateVersion(f.Version); err != nil {
		return oerrors.NewValidationError(err.Error(), "", "version", "use MAJOR.MINOR.PATCH, e.g. 0.1.0")
	}
	if err := naming.ValidateIdentifier(f.PackageID()); err != nil {
		return oerrors.NewValidationError(err.Error(), "", "package", "")
	}
	return nil
}
