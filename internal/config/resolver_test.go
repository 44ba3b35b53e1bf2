package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvVar(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"company", "UPM_COMPANY"},
		{"outputDir", "UPM_OUTPUT_DIR"},
		{"unityVersion", "UPM_UNITY_VERSION"},
		{"packagePrefix", "UPM_PACKAGE_PREFIX"},
		{"author.name", "UPM_AUTHOR_NAME"},
		{"log.timestamps", "UPM_LOG_TIMESTAMPS"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, EnvVar(tt.key))
		})
	}
}

func TestResolve_FlagPrecedence(t *testing.T) {
	t.Setenv("UPM_COMPANY", "EnvCo")

	result := Resolve(ResolveOptions{
		Key:         "company",
		FlagValue:   "FlagCo",
		ConfigValue: "FileCo",
		Default:     DefaultCompany,
	})

	assert.Equal(t, "FlagCo", result.Value)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "EnvCo", result.Shadowed[SourceEnv])
	assert.Equal(t, "FileCo", result.Shadowed[SourceConfig])
	assert.NotContains(t, result.Shadowed, SourceDefault)
}

func TestResolve_EnvPrecedence(t *testing.T) {
	t.Setenv("UPM_COMPANY", "EnvCo")

	result := Resolve(ResolveOptions{
		Key:         "company",
		ConfigValue: "FileCo",
		Default:     DefaultCompany,
	})

	assert.Equal(t, "EnvCo", result.Value)
	assert.Equal(t, SourceEnv, result.Source)
	assert.Equal(t, "FileCo", result.Shadowed[SourceConfig])
	assert.NotContains(t, result.Shadowed, SourceFlag)
}

func TestResolve_ConfigFallback(t *testing.T) {
	t.Setenv("UPM_COMPANY", "")

	result := Resolve(ResolveOptions{
		Key:         "company",
		ConfigValue: "FileCo",
		Default:     DefaultCompany,
	})

	assert.Equal(t, "FileCo", result.Value)
	assert.Equal(t, SourceConfig, result.Source)
	assert.Empty(t, result.Shadowed)
}

func TestResolve_Default(t *testing.T) {
	t.Setenv("UPM_TEMPLATE", "")

	result := Resolve(ResolveOptions{Key: "template", Default: DefaultTemplate})
	assert.Equal(t, "standard", result.Value)
	assert.Equal(t, SourceDefault, result.Source)
}

func TestResolve_NothingSet(t *testing.T) {
	t.Setenv("UPM_AUTHOR_EMAIL", "")

	result := Resolve(ResolveOptions{Key: "author.email"})
	assert.Empty(t, result.Value)
	assert.Empty(t, result.Source)
}

func TestResolveConfigPath_FlagPrecedence(t *testing.T) {
	t.Setenv("UPM_CONFIG", "/env/path/config.yaml")

	result, err := ResolveConfigPath("/flag/path/config.yaml")
	require.NoError(t, err)

	assert.Equal(t, "/flag/path/config.yaml", result.ConfigPath)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "/env/path/config.yaml", result.Shadowed[SourceEnv])
	assert.Contains(t, result.Shadowed, SourceDefault)
}

func TestResolveConfigPath_EnvPrecedence(t *testing.T) {
	t.Setenv("UPM_CONFIG", "/env/path/config.yaml")

	result, err := ResolveConfigPath("")
	require.NoError(t, err)

	assert.Equal(t, "/env/path/config.yaml", result.ConfigPath)
	assert.Equal(t, SourceEnv, result.Source)
}

func TestResolveConfigPath_Default(t *testing.T) {
	t.Setenv("UPM_CONFIG", "")

	result, err := ResolveConfigPath("")
	require.NoError(t, err)

	paths, err := DefaultPaths()
	require.NoError(t, err)
	assert.Equal(t, paths.ConfigFile, result.ConfigPath)
	assert.Equal(t, SourceDefault, result.Source)
	assert.Empty(t, result.Shadowed)
}
