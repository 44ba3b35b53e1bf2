package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/upmkit/cli/internal/config"
	"github.com/upmkit/cli/internal/form"
	"github.com/upmkit/cli/internal/output"
)

// upmEnv lists every variable the resolver reads.
var upmEnv = []string{
	config.EnvConfig,
	"UPM_COMPANY",
	"UPM_AUTHOR_NAME",
	"UPM_AUTHOR_EMAIL",
	"UPM_AUTHOR_URL",
	"UPM_OUTPUT_DIR",
	"UPM_TEMPLATE",
	"UPM_UNITY_VERSION",
	"UPM_PACKAGE_PREFIX",
	"UPM_LICENSE",
}

// isolate points HOME at a temp dir, clears UPM_* variables and resets
// package-level command state when the test ends.
func isolate(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range upmEnv {
		t.Setenv(k, "")
	}

	t.Cleanup(func() {
		configFlag = ""
		verboseFlag = false
		timestampsFlag = true
		configInitForce = false
		templatesOutputFlag = "table"
		loadedConfig = nil
		configPath = config.ResolveConfigPathResult{}
	})
	return home
}

// captureStdout redirects command output into a buffer.
func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	restore := output.SetStdout(&buf)
	t.Cleanup(restore)
	return &buf
}

// fakePrompter records calls and answers from fixed values.
type fakePrompter struct {
	fill    func(f *form.Form)
	fillErr error
	answer  bool

	filled    int
	confirmed int
}

func (p *fakePrompter) Fill(_ context.Context, f *form.Form, _ []form.Choice) error {
	p.filled++
	if p.fillErr != nil {
		return p.fillErr
	}
	if p.fill != nil {
		p.fill(f)
	}
	return nil
}

func (p *fakePrompter) Confirm(string, string) (bool, error) {
	p.confirmed++
	return p.answer, nil
}

// usePrompter installs p and fakes whether stdin is a terminal.
func usePrompter(t *testing.T, p form.Prompter, tty bool) {
	t.Helper()
	origPrompter, origTTY := newPrompter, stdinIsTTY
	newPrompter = p
	stdinIsTTY = func() bool { return tty }
	t.Cleanup(func() {
		newPrompter = origPrompter
		stdinIsTTY = origTTY
	})
}
