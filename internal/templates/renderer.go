package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Renderer handles template rendering with data substitution.
type Renderer struct {
	data Data
}

// NewRenderer creates a new renderer with the given template data.
func NewRenderer(data Data) *Renderer {
	return &Renderer{data: data}
}

func (r *Renderer) execute(name, text string) ([]byte, error) {
	tmpl, err := template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderString renders a template string and returns the result.
func (r *Renderer) RenderString(text string) (string, error) {
	out, err := r.execute("string", text)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// RenderPath renders a templated target path and checks it stays
// inside the package root.
func (r *Renderer) RenderPath(target string) (string, error) {
	if !strings.Contains(target, "{{") {
		return target, nil
	}
	rendered, err := r.RenderString(target)
	if err != nil {
		return "", fmt.Errorf("rendering path %s: %w", target, err)
	}
	clean := path.Clean(rendered)
	if clean == "." || strings.HasPrefix(clean, "../") || path.IsAbs(clean) {
		return "", fmt.Errorf("rendered path %q escapes the package root", rendered)
	}
	return clean, nil
}

// RenderTemplate renders every file of a template's layers.
func (r *Renderer) RenderTemplate(t Template) ([]File, error) {
	sources, err := templateSources(t)
	if err != nil {
		return nil, err
	}

	files := make([]File, 0, len(sources))
	for _, s := range sources {
		content, err := fs.ReadFile(templateFS, s.Path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", s.Path, err)
		}

		target, err := r.RenderPath(s.Target)
		if err != nil {
			return nil, err
		}

		rendered, err := r.execute(s.Path, string(content))
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", s.Path, err)
		}

		files = append(files, File{Path: target, Content: rendered})
	}
	return files, nil
}
