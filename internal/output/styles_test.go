package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantBold bool
		wantFG   lipgloss.TerminalColor
	}{
		{name: "created returns green", status: StatusCreated, wantFG: ColorGreen},
		{name: "valid returns green", status: StatusValid, wantFG: ColorGreen},
		{name: "replaced returns yellow", status: StatusReplaced, wantFG: ColorYellow},
		{name: "invalid returns yellow", status: StatusInvalid, wantFG: ColorYellow},
		{name: "deleted returns red", status: StatusDeleted, wantFG: ColorRed},
		{name: "failed returns bold red", status: StatusFailed, wantBold: true, wantFG: ColorBoldRed},
		{name: "unknown returns default", status: "unknown-value", wantFG: lipgloss.NoColor{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := StatusStyle(tt.status)
			assert.Equal(t, tt.wantBold, style.GetBold())
			assert.Equal(t, tt.wantFG, style.GetForeground())
		})
	}
}

func TestFormatFileLine(t *testing.T) {
	line := FormatFileLine("Runtime/CoolTool.cs", StatusCreated)
	assert.Contains(t, line, "f:")
	assert.Contains(t, line, "Runtime/CoolTool.cs")
	assert.Contains(t, line, StatusCreated)
}

func TestFormatFileLine_LongPathKeepsGap(t *testing.T) {
	long := strings.Repeat("a", minPathColumnWidth+10)
	line := FormatFileLine(long, StatusValid)
	assert.Contains(t, line, "  ")
	assert.Contains(t, line, StatusValid)
}

func TestFormatCheckmark(t *testing.T) {
	out := FormatCheckmark("Package created")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "Package created")
}
