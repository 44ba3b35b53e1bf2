package templates

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	oerrors "github.com/upmkit/cli/internal/errors"
	"github.com/upmkit/cli/internal/form"
	"github.com/upmkit/cli/internal/manifest"
	"github.com/upmkit/cli/internal/output"
)

// ConfirmFunc asks the user a yes/no question.
type ConfirmFunc func(title, description string) (bool, error)

// GenerateOptions configures package generation.
type GenerateOptions struct {
	Form form.Form

	// Force replaces an existing package root without asking.
	Force bool

	// Confirm is asked before an existing package root is deleted.
	// When nil and Force is false, an existing root is an error.
	Confirm ConfirmFunc

	// Color enables ANSI color in the package.json preview diff.
	Color bool

	// Now stamps the license year. Defaults to time.Now.
	Now func() time.Time
}

// Generator handles package generation from templates.
type Generator struct {
	opts GenerateOptions
}

// NewGenerator creates a new generator with the given options.
func NewGenerator(opts GenerateOptions) *Generator {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Generator{opts: opts}
}

// Plan validates the form and renders every file in memory.
// Nothing is written.
func (g *Generator) Plan() (*Plan, error) {
	f := g.opts.Form
	f.Normalize()

	if err := f.Validate(); err != nil {
		return nil, err
	}

	tmpl, err := Get(f.Template)
	if err != nil {
		return nil, oerrors.NewValidationError(err.Error(), "", "template",
			"run 'upm templates' to list available templates")
	}

	data := NewData(f, tmpl, g.opts.Now())

	output.Debug("planning package",
		"template", tmpl.Name,
		"id", data.PackageID,
		"namespace", data.Namespace,
		"unity", data.Unity)

	files, err := NewRenderer(data).RenderTemplate(tmpl)
	if err != nil {
		return nil, fmt.Errorf("rendering template %s: %w", tmpl.Name, err)
	}

	pkg, err := manifest.Marshal(BuildManifest(data))
	if err != nil {
		return nil, err
	}
	files = append(files, File{Path: manifest.FileName, Content: pkg})

	for _, a := range tmpl.Assemblies {
		content, err := manifest.Marshal(BuildAssembly(data.Namespace, a))
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: AssemblyPath(data.Namespace, a), Content: content})
	}

	if err := checkLayout(tmpl, files); err != nil {
		return nil, err
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	return &Plan{
		Template:  tmpl,
		Data:      data,
		PackageID: data.PackageID,
		Root:      filepath.Join(f.OutputDir, data.PackageID),
		Manifest:  pkg,
		Files:     files,
	}, nil
}

// checkLayout ensures every file lands in the package root or one of
// the template's declared directories, and that no path repeats.
func checkLayout(t Template, files []File) error {
	dirs := make(map[string]bool, len(t.Dirs)+1)
	dirs["."] = true
	for _, d := range t.Dirs {
		dirs[d] = true
	}

	seen := make(map[string]bool, len(files))
	for _, f := range files {
		if seen[f.Path] {
			return fmt.Errorf("template %s writes %s twice", t.Name, f.Path)
		}
		seen[f.Path] = true
		if !dirs[path.Dir(f.Path)] {
			return fmt.Errorf("template %s writes %s outside its directory set", t.Name, f.Path)
		}
	}
	return nil
}

// PrepareRoot clears the way for the package root. An existing root is
// deleted after confirmation (or unconditionally with Force). It reports
// whether a root was deleted.
func (g *Generator) PrepareRoot(plan *Plan) (bool, error) {
	info, err := os.Stat(plan.Root)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fsError("inspect", plan.Root, err)
	}
	if !info.IsDir() {
		return false, oerrors.NewValidationError(
			"output path exists and is not a directory", plan.Root, "",
			"remove the file or choose another --output directory")
	}

	if !g.opts.Force {
		if g.opts.Confirm == nil {
			return false, oerrors.NewValidationError(
				"package directory already exists", plan.Root, "",
				"pass --force to replace it")
		}

		g.previewManifest(plan)

		ok, err := g.opts.Confirm(
			fmt.Sprintf("Replace %s?", plan.PackageID),
			fmt.Sprintf("%s and everything in it will be deleted.", plan.Root),
		)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, oerrors.NewAbortedError("kept existing package directory", plan.Root)
		}
	}

	output.Debug("deleting existing package directory", "path", plan.Root)
	if err := os.RemoveAll(plan.Root); err != nil {
		return false, fsError("delete", plan.Root, err)
	}
	return true, nil
}

// previewManifest logs how the existing package.json would change.
func (g *Generator) previewManifest(plan *Plan) {
	existing, err := os.ReadFile(filepath.Join(plan.Root, manifest.FileName))
	if err != nil {
		output.Debug("no existing manifest to compare", "error", err)
		return
	}

	diff, err := output.DiffDocuments("existing", existing, "new", plan.Manifest, g.opts.Color)
	if err != nil {
		output.Debug("manifest diff failed", "error", err)
		return
	}
	if diff == "" {
		output.Info("existing package.json is identical", "path", plan.Root)
		return
	}

	output.Info("package.json will change", "path", plan.Root)
	output.Details(diff)
}

// Write creates the root, the template's directories and every planned
// file. There is no rollback: a failure leaves the files written so far.
func (g *Generator) Write(ctx context.Context, plan *Plan) (*Result, error) {
	log := output.PackageLogger(plan.PackageID)

	if err := os.MkdirAll(plan.Root, 0o755); err != nil {
		return nil, fsError("create", plan.Root, err)
	}
	for _, d := range plan.Template.Dirs {
		p := filepath.Join(plan.Root, filepath.FromSlash(d))
		if err := os.MkdirAll(p, 0o755); err != nil {
			return nil, fsError("create", p, err)
		}
	}

	for _, f := range plan.Files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p := filepath.Join(plan.Root, filepath.FromSlash(f.Path))
		if err := os.WriteFile(p, f.Content, 0o644); err != nil {
			log.Error("write failed", "file", f.Path, "error", err)
			return nil, fsError("write", p, err)
		}
		log.Debug("created file", "file", f.Path)
	}

	dirs := append([]string(nil), plan.Template.Dirs...)
	sort.Strings(dirs)

	return &Result{
		Root:      plan.Root,
		PackageID: plan.PackageID,
		Template:  plan.Template.Name,
		Dirs:      dirs,
		Files:     plan.sortedFiles(),
		Warnings:  Validate(plan.Files),
	}, nil
}

// Generate plans, prepares the root and writes the package.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	plan, err := g.Plan()
	if err != nil {
		return nil, err
	}

	replaced, err := g.PrepareRoot(plan)
	if err != nil {
		return nil, err
	}

	res, err := g.Write(ctx, plan)
	if err != nil {
		return nil, err
	}
	res.Replaced = replaced
	return res, nil
}

// Validate checks package.json against the manifest schema and each
// .asmdef against the assembly schema, returning findings as text.
func Validate(files []File) []string {
	var warnings []string
	for _, f := range files {
		var (
			res *manifest.ValidationResult
			err error
		)
		switch {
		case f.Path == manifest.FileName:
			res, err = manifest.ValidatePackage(f.Content)
		case strings.HasSuffix(f.Path, manifest.AssemblyExt):
			res, err = manifest.ValidateAssembly(f.Content)
		default:
			continue
		}

		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", f.Path, err))
			continue
		}
		for _, is := range res.Issues {
			warnings = append(warnings, f.Path+": "+is.String())
		}
	}
	return warnings
}

// fsError maps filesystem failures to permission errors where possible.
func fsError(op, p string, err error) error {
	if os.IsPermission(err) {
		return oerrors.NewPermissionError(
			fmt.Sprintf("cannot %s %s", op, p),
			map[string]string{"path": p},
			"check write access to the output directory",
		)
	}
	return fmt.Errorf("%s %s: %w", op, p, err)
}
