package cmdutil

import (
	"errors"
	"fmt"
	"path"
	"strings"

	oerrors "github.com/upmkit/cli/internal/errors"
	"github.com/upmkit/cli/internal/manifest"
	"github.com/upmkit/cli/internal/output"
	"github.com/upmkit/cli/internal/templates"
)

// PrintValidationError prints an error in a user-friendly format.
// A DetailError prints a one-line summary followed by its details;
// other errors fall back to the key-value log format.
func PrintValidationError(msg string, err error) {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		output.Error(fmt.Sprintf("%s: %s", msg, detail.Message))
		output.Details(detail.Error())
		return
	}
	output.Error(msg, "error", err)
}

// PrintIssues prints schema findings for one file, one line per issue.
func PrintIssues(file string, issues []manifest.Issue) {
	for _, is := range issues {
		output.Println(output.FormatFileLine(file, output.StatusInvalid) + "  " + is.String())
	}
}

// WriteResult prints the created tree and a completion line to stdout,
// and logs schema warnings on stderr.
func WriteResult(res *templates.Result) {
	entries := make(map[string]string, len(res.Dirs)+len(res.Files))
	for _, d := range res.Dirs {
		entries[d+"/"] = ""
	}
	for _, f := range res.Files {
		entries[f] = describeFile(f)
	}

	output.Println(output.RenderFileTree(res.PackageID, entries))

	status := output.StatusCreated
	if res.Replaced {
		status = output.StatusReplaced
	}
	output.Println(output.FormatCheckmark(fmt.Sprintf("Package %s %s from template %s",
		output.StyleNoun.Render(res.PackageID), status, output.StyleNoun.Render(string(res.Template)))))
	output.Println(output.StyleDim.Render("  " + res.Root))

	if len(res.Warnings) > 0 {
		log := output.PackageLogger(res.PackageID)
		for _, w := range res.Warnings {
			log.Warn("schema check", "finding", w)
		}
	}
}

// WriteVerboseResult logs one status line per written file (--verbose only).
func WriteVerboseResult(res *templates.Result) {
	log := output.PackageLogger(res.PackageID)
	status := output.StatusCreated
	if res.Replaced {
		status = output.StatusReplaced
	}
	for _, f := range res.Files {
		log.Debug(output.FormatFileLine(f, status))
	}
}

// describeFile returns the tree annotation for well-known files.
func describeFile(p string) string {
	base := path.Base(p)
	switch {
	case base == manifest.FileName:
		return "Package manifest"
	case strings.HasSuffix(base, manifest.AssemblyExt):
		return "Assembly definition"
	case base == "AndroidManifest.xml":
		return "Android manifest"
	case base == "README.md":
		return "Package overview"
	case base == "CHANGELOG.md":
		return "Release notes"
	case base == "LICENSE.md":
		return "License"
	default:
		return ""
	}
}
