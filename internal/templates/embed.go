package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed files
var templateFS embed.FS

// filesRoot is the embedded directory holding one tree per layer.
const filesRoot = "files"

// tmplExt is stripped from target paths.
const tmplExt = ".tmpl"

// source is one embedded template file of a layer.
type source struct {
	// Path is the embedded path, e.g. "files/standard/Runtime/{{.ClassName}}.cs.tmpl".
	Path string
	// Target is the unrendered target path, e.g. "Runtime/{{.ClassName}}.cs".
	Target string
}

// layerSources lists the files of one layer, sorted by target.
func layerSources(layer string) ([]source, error) {
	root := path.Join(filesRoot, layer)

	var out []source
	err := fs.WalkDir(templateFS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel := strings.TrimPrefix(p, root+"/")
		out = append(out, source{
			Path:   p,
			Target: strings.TrimSuffix(rel, tmplExt),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking layer %s: %w", layer, err)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Target < out[j].Target })
	return out, nil
}

// templateSources merges a template's layers. A later layer replaces an
// earlier one's file with the same target.
func templateSources(t Template) ([]source, error) {
	byTarget := make(map[string]source)
	for _, layer := range t.Layers {
		sources, err := layerSources(layer)
		if err != nil {
			return nil, err
		}
		for _, s := range sources {
			byTarget[s.Target] = s
		}
	}

	out := make([]source, 0, len(byTarget))
	for _, s := range byTarget {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Target < out[j].Target })
	return out, nil
}

// ListTemplateFiles returns the unrendered target paths of a template's
// files, assembly definitions and package.json included.
func ListTemplateFiles(name string) ([]string, error) {
	t, err := Get(name)
	if err != nil {
		return nil, err
	}

	sources, err := templateSources(t)
	if err != nil {
		return nil, err
	}

	files := []string{"package.json"}
	for _, s := range sources {
		files = append(files, s.Target)
	}
	for _, a := range t.Assemblies {
		files = append(files, a.Dir+"/{{.Namespace}}"+a.Suffix+".asmdef")
	}
	sort.Strings(files)
	return files, nil
}

// Directories returns the fixed directory set of a template.
func Directories(name string) ([]string, error) {
	t, err := Get(name)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), t.Dirs...), nil
}
