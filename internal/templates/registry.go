package templates

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultTemplateName is the template used when --template is not specified.
const DefaultTemplateName = Standard

var (
	standardDirs = []string{
		"Documentation~",
		"Editor",
		"Runtime",
		"Samples~",
		"Tests",
		"Tests/Editor",
		"Tests/Runtime",
	}

	testRunner = []string{"UnityEngine.TestRunner", "UnityEditor.TestRunner"}
	editorOnly = []string{"Editor"}
)

// templates is the internal registry of available templates.
var templates = map[Name]Template{
	Standard: {
		Name:        Standard,
		Description: "Runtime and editor assemblies with tests and samples",
		Dirs:        standardDirs,
		Layers:      []string{"common", "standard"},
		Assemblies:  standardAssemblies(nil, nil, nil),
	},
	XRDevice: {
		Name:        XRDevice,
		Description: "XR device integration with subsystems, input and native plugins",
		Dirs: concat(standardDirs,
			"Editor/Settings",
			"Plugins",
			"Plugins/Android",
			"Plugins/Windows",
			"Plugins/Windows/x64",
			"Runtime/Input",
			"Runtime/Subsystems",
		),
		Layers: []string{"common", "standard", "xr-device"},
		Assemblies: standardAssemblies(
			nil,
			[]string{"Unity.XR.Management", "Unity.InputSystem"},
			[]string{"Unity.XR.Management.Editor"},
		),
		Dependencies: map[string]string{
			"com.unity.xr.management": "4.5.0",
			"com.unity.inputsystem":   "1.11.2",
		},
	},
	EditorOnly: {
		Name:        EditorOnly,
		Description: "Editor tooling only, no runtime assembly",
		Dirs: []string{
			"Documentation~",
			"Editor",
			"Tests",
			"Tests/Editor",
		},
		Layers: []string{"common", "editor-only"},
		Assemblies: []Assembly{
			{Dir: "Editor", Suffix: ".Editor", IncludePlatforms: editorOnly},
			{
				Dir:              "Tests/Editor",
				Suffix:           ".Editor.Tests",
				References:       []string{".Editor"},
				IncludePlatforms: editorOnly,
				Tests:            true,
			},
		},
	},
	Platform: {
		Name:        Platform,
		Description: "Android platform plugin with a manifest stub",
		Dirs:        concat(standardDirs, "Plugins", "Plugins/Android"),
		Layers:      []string{"common", "standard", "platform"},
		Assemblies:  standardAssemblies([]string{"Android", "Editor"}, nil, nil),
	},
}

// standardAssemblies is the two-module layout: runtime and editor
// assemblies, each with a test assembly.
func standardAssemblies(runtimePlatforms, runtimeExternal, editorExternal []string) []Assembly {
	return []Assembly{
		{
			Dir:              "Runtime",
			External:         runtimeExternal,
			IncludePlatforms: runtimePlatforms,
		},
		{
			Dir:              "Editor",
			Suffix:           ".Editor",
			References:       []string{""},
			External:         editorExternal,
			IncludePlatforms: editorOnly,
		},
		{
			Dir:        "Tests/Runtime",
			Suffix:     ".Tests",
			References: []string{""},
			Tests:      true,
		},
		{
			Dir:              "Tests/Editor",
			Suffix:           ".Editor.Tests",
			References:       []string{"", ".Editor"},
			IncludePlatforms: editorOnly,
			Tests:            true,
		},
	}
}

func concat(base []string, extra ...string) []string {
	out := make([]string, 0, len(base)+len(extra))
	out = append(out, base...)
	out = append(out, extra...)
	sort.Strings(out)
	return out
}

// Get returns a template by name.
// Returns an error if the template is not found.
func Get(name string) (Template, error) {
	t, ok := templates[Name(name)]
	if !ok {
		return Template{}, fmt.Errorf("unknown template %q; valid templates: %s", name, strings.Join(Names(), ", "))
	}
	return t, nil
}

// List returns all available templates in display order.
func List() []Template {
	names := Names()
	out := make([]Template, len(names))
	for i, n := range names {
		out[i] = templates[Name(n)]
	}
	return out
}

// GetDefault returns the default template.
func GetDefault() Template {
	return templates[DefaultTemplateName]
}

// Names returns all template names in display order.
func Names() []string {
	return []string{
		string(Standard),
		string(XRDevice),
		string(EditorOnly),
		string(Platform),
	}
}

// IsValidTemplate checks if a template name is valid.
func IsValidTemplate(name string) bool {
	_, ok := templates[Name(name)]
	return ok
}
