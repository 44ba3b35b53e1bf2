package templates

import (
	"sort"
	"time"

	"github.com/upmkit/cli/internal/form"
	"github.com/upmkit/cli/internal/manifest"
	"github.com/upmkit/cli/internal/naming"
)

// NewData derives template data from a normalized form.
func NewData(f form.Form, t Template, now time.Time) Data {
	deps := make(map[string]string, len(t.Dependencies))
	for k, v := range t.Dependencies {
		deps[k] = v
	}

	keywords := append([]string{}, f.Keywords...)

	return Data{
		PackageID:    f.PackageID(),
		PackageName:  naming.Sanitize(f.Package),
		DisplayName:  f.DisplayName,
		Description:  f.Description,
		Version:      f.Version,
		Company:      f.Company,
		Namespace:    f.AssemblyName(),
		ClassName:    naming.PascalCase(naming.Sanitize(f.Package)),
		AuthorName:   f.AuthorName,
		AuthorEmail:  f.AuthorEmail,
		AuthorURL:    f.AuthorURL,
		Unity:        naming.HostMajorMinor(f.UnityVersion),
		UnityRelease: naming.HostRelease(f.UnityVersion),
		UnityVersion: f.UnityVersion,
		License:      f.License,
		Year:         now.Year(),
		Template:     t.Name,
		Keywords:     keywords,
		Dependencies: deps,
	}
}

// BuildManifest returns the package.json for the data. Form values are
// copied verbatim; only the name is derived.
func BuildManifest(d Data) *manifest.PackageManifest {
	m := &manifest.PackageManifest{
		Name:         d.PackageID,
		Version:      d.Version,
		DisplayName:  d.DisplayName,
		Description:  d.Description,
		Unity:        d.Unity,
		UnityRelease: d.UnityRelease,
		Keywords:     d.Keywords,
		License:      d.License,
	}
	if m.Keywords == nil {
		m.Keywords = []string{}
	}
	if len(d.Dependencies) > 0 {
		m.Dependencies = d.Dependencies
	}
	if d.AuthorName != "" {
		m.Author = &manifest.Author{
			Name:  d.AuthorName,
			Email: d.AuthorEmail,
			URL:   d.AuthorURL,
		}
	}
	return m
}

// BuildAssembly expands a declared assembly for a namespace.
func BuildAssembly(namespace string, a Assembly) *manifest.AssemblyDefinition {
	name := namespace + a.Suffix
	def := manifest.NewAssembly(name, name)

	for _, ref := range a.References {
		def.References = append(def.References, namespace+ref)
	}
	def.References = append(def.References, a.External...)
	def.IncludePlatforms = append(def.IncludePlatforms, a.IncludePlatforms...)

	if a.Tests {
		def.References = append(def.References, testRunner...)
		def.OverrideReferences = true
		def.PrecompiledReferences = append(def.PrecompiledReferences, "nunit.framework.dll")
		def.AutoReferenced = false
		def.DefineConstraints = append(def.DefineConstraints, "UNITY_INCLUDE_TESTS")
	}
	return def
}

// AssemblyPath returns the slash-separated .asmdef path for a namespace.
func AssemblyPath(namespace string, a Assembly) string {
	return a.Dir + "/" + namespace + a.Suffix + manifest.AssemblyExt
}

// Plan is every file of a package, rendered in memory.
type Plan struct {
	Template  Template
	Data      Data
	PackageID string

	// Root is OutputDir joined with the package identifier.
	Root string

	// Manifest is the encoded package.json.
	Manifest []byte
	Files    []File
}

// sortedFiles returns the plan's file paths.
func (p *Plan) sortedFiles() []string {
	out := make([]string, 0, len(p.Files))
	for _, f := range p.Files {
		out = append(out, f.Path)
	}
	sort.Strings(out)
	return out
}
