package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upmkit/cli/internal/config"
)

func executeConfigVet(t *testing.T) error {
	t.Helper()
	cmd := NewConfigVetCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.Execute()
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0o600))
	t.Setenv(config.EnvConfig, configFile)
	return configFile
}

func TestNewConfigVetCmd(t *testing.T) {
	cmd := NewConfigVetCmd()

	assert.Equal(t, "vet", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}

func TestConfigVet_MissingConfigFile(t *testing.T) {
	isolate(t)
	captureStdout(t)

	err := executeConfigVet(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Equal(t, ExitNotFound, ExitCodeFromError(err))
}

func TestConfigVet_ValidConfig(t *testing.T) {
	isolate(t)
	stdout := captureStdout(t)
	writeConfig(t, "company: MyCo\ntemplate: xr-device\nunityVersion: 6000.2.1f1\n")

	require.NoError(t, executeConfigVet(t))
	assert.Contains(t, stdout.String(), "Configuration is valid")
}

func TestConfigVet_AfterInit(t *testing.T) {
	isolate(t)
	captureStdout(t)

	require.NoError(t, executeConfigInit(t))
	assert.NoError(t, executeConfigVet(t))
}

func TestConfigVet_SchemaViolation(t *testing.T) {
	isolate(t)
	stdout := captureStdout(t)
	writeConfig(t, "template: fancy\nauthor:\n  email: nope\n")

	err := executeConfigVet(t)
	require.Error(t, err)
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
	assert.Contains(t, stdout.String(), "template")
	assert.Contains(t, stdout.String(), "author.email")
}

func TestConfigVet_SyntaxError(t *testing.T) {
	isolate(t)
	captureStdout(t)
	writeConfig(t, "company: [unclosed\n")

	err := executeConfigVet(t)
	require.Error(t, err)
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
}
