package form

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upmkit/cli/internal/config"
	oerrors "github.com/upmkit/cli/internal/errors"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"company", "author.name", "author.email", "author.url", "outputDir",
		"template", "unityVersion", "packagePrefix", "license",
	} {
		t.Setenv(config.EnvVar(key), "")
	}
}

func TestDefaults(t *testing.T) {
	f := Defaults()
	assert.Equal(t, "MyCompany", f.Company)
	assert.Equal(t, "my-package", f.Package)
	assert.Equal(t, "0.1.0", f.Version)
	assert.Equal(t, ".", f.OutputDir)
	assert.Equal(t, "standard", f.Template)
	assert.Equal(t, "com", f.PackagePrefix)
	assert.NoError(t, f.Validate())
}

func TestResolve_Precedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("UPM_TEMPLATE", "platform")

	cfg := &config.Config{
		Company:   "FileCo",
		Template:  "editor-only",
		OutputDir: "/file/out",
		Author:    config.AuthorConfig{Name: "File Author"},
	}
	flags := Form{Company: "FlagCo", Package: "cool-tool"}

	f, resolved := Resolve(flags, cfg)

	assert.Equal(t, "FlagCo", f.Company)
	assert.Equal(t, "cool-tool", f.Package)
	assert.Equal(t, "platform", f.Template, "env beats config")
	assert.Equal(t, "/file/out", f.OutputDir)
	assert.Equal(t, "File Author", f.AuthorName)
	assert.Equal(t, "MIT", f.License)
	assert.Equal(t, "0.1.0", f.Version)

	sources := map[string]config.ConfigSource{}
	for _, rv := range resolved {
		sources[rv.Key] = rv.Source
	}
	assert.Equal(t, config.SourceFlag, sources["company"])
	assert.Equal(t, config.SourceEnv, sources["template"])
	assert.Equal(t, config.SourceConfig, sources["outputDir"])
	assert.Equal(t, config.SourceDefault, sources["license"])
}

func TestResolve_ExpandsHomeInOutputDir(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	f, _ := Resolve(Form{Company: "MyCo", Package: "cool-tool"}, &config.Config{OutputDir: "~/Packages"})
	assert.Equal(t, filepath.Join(home, "Packages"), f.OutputDir)

	t.Setenv("UPM_OUTPUT_DIR", "~")
	f, _ = Resolve(Form{}, nil)
	assert.Equal(t, home, f.OutputDir)

	f, _ = Resolve(Form{OutputDir: "rel/~dir"}, nil)
	assert.Equal(t, "rel/~dir", f.OutputDir)
}

func TestResolve_NilConfig(t *testing.T) {
	clearEnv(t)

	f, _ := Resolve(Form{}, nil)
	assert.Equal(t, Defaults().Company, f.Company)
	assert.Equal(t, Defaults().Package, f.Package)
}

func TestNormalize(t *testing.T) {
	f := Form{
		Company:  "  MyCo ",
		Package:  " cool-tool",
		Keywords: []string{" xr ", "", "tools"},
	}
	f.Normalize()

	assert.Equal(t, "MyCo", f.Company)
	assert.Equal(t, "cool-tool", f.Package)
	assert.Equal(t, "Cool Tool", f.DisplayName)
	assert.Equal(t, []string{"xr", "tools"}, f.Keywords)
}

func TestNormalize_KeepsDisplayName(t *testing.T) {
	f := Form{Package: "cool-tool", DisplayName: "The Cool Tool"}
	f.Normalize()
	assert.Equal(t, "The Cool Tool", f.DisplayName)
}

func TestPackageID(t *testing.T) {
	f := Form{Company: "MyCo", Package: "cool-tool", PackagePrefix: "com"}
	assert.Equal(t, "com.myco.cool-tool", f.PackageID())
	assert.Equal(t, "MyCo.CoolTool", f.AssemblyName())

	f.PackagePrefix = ""
	assert.Equal(t, "com.myco.cool-tool", f.PackageID())
}

func TestValidate(t *testing.T) {
	valid := Form{Company: "MyCo", Package: "cool-tool", Version: "0.1.0", PackagePrefix: "com"}

	tests := []struct {
		name      string
		mutate    func(f *Form)
		wantField string
	}{
		{name: "valid"},
		{name: "blank company", mutate: func(f *Form) { f.Company = "  " }, wantField: "company"},
		{name: "empty package", mutate: func(f *Form) { f.Package = "" }, wantField: "package"},
		{name: "company without usable characters", mutate: func(f *Form) { f.Company = "!!!" }, wantField: "company"},
		{name: "package without usable characters", mutate: func(f *Form) { f.Package = "@@" }, wantField: "package"},
		{name: "package starting with a digit", mutate: func(f *Form) { f.Package = "3d-tools" }, wantField: "package"},
		{name: "company starting with a digit", mutate: func(f *Form) { f.Company = "3M" }, wantField: "company"},
		{name: "digit inside package", mutate: func(f *Form) { f.Package = "cool-3d-tool" }},
		{name: "author email without name", mutate: func(f *Form) { f.AuthorEmail = "dev@myco.io" }, wantField: "author"},
		{name: "author url without name", mutate: func(f *Form) { f.AuthorURL = "https://myco.io" }, wantField: "author"},
		{name: "author with name", mutate: func(f *Form) { f.AuthorName = "Dev"; f.AuthorEmail = "dev@myco.io" }},
		{name: "bad version", mutate: func(f *Form) { f.Version = "1.0" }, wantField: "version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			if tt.mutate != nil {
				tt.mutate(&f)
			}

			err := f.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrValidation))
			var de *oerrors.DetailError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.wantField, de.Field)
		})
	}
}
