package cmdutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/upmkit/cli/internal/manifest"
	"github.com/upmkit/cli/internal/output"
	"github.com/upmkit/cli/internal/templates"
)

func TestWriteResult(t *testing.T) {
	var buf bytes.Buffer
	restore := output.SetStdout(&buf)
	defer restore()

	WriteResult(&templates.Result{
		Root:      "/tmp/out/com.myco.cool-tool",
		PackageID: "com.myco.cool-tool",
		Template:  templates.Standard,
		Dirs:      []string{"Runtime", "Tests"},
		Files:     []string{"package.json", "Runtime/MyCo.CoolTool.asmdef"},
	})

	out := buf.String()
	assert.Contains(t, out, "com.myco.cool-tool")
	assert.Contains(t, out, "package.json")
	assert.Contains(t, out, "Package manifest")
	assert.Contains(t, out, "Assembly definition")
	assert.Contains(t, out, "Tests")
	assert.Contains(t, out, output.StatusCreated)
}

func TestWriteResult_Replaced(t *testing.T) {
	var buf bytes.Buffer
	restore := output.SetStdout(&buf)
	defer restore()

	WriteResult(&templates.Result{
		Root:      "/tmp/out/com.myco.cool-tool",
		PackageID: "com.myco.cool-tool",
		Template:  templates.Standard,
		Files:     []string{"package.json"},
		Replaced:  true,
	})

	assert.Contains(t, buf.String(), output.StatusReplaced)
}

func TestPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	restore := output.SetStdout(&buf)
	defer restore()

	PrintIssues("package.json", []manifest.Issue{
		{Path: "/name", Message: "invalid value"},
		{Path: "/version", Message: "not semver"},
	})

	out := buf.String()
	assert.Contains(t, out, "/name: invalid value")
	assert.Contains(t, out, "/version: not semver")
	assert.Contains(t, out, output.StatusInvalid)
}

func TestDescribeFile(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"package.json", "Package manifest"},
		{"Editor/MyCo.CoolTool.Editor.asmdef", "Assembly definition"},
		{"Plugins/Android/AndroidManifest.xml", "Android manifest"},
		{"README.md", "Package overview"},
		{"Runtime/CoolTool.cs", ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, describeFile(tt.path))
		})
	}
}
