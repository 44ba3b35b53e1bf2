// Package templates provides the package template registry, the embedded
// template trees, and the generator that writes a package to disk.
package templates

// Name identifies a template.
type Name string

const (
	// Standard is the default runtime + editor layout.
	Standard Name = "standard"

	// XRDevice adds subsystem, input and native plugin folders.
	XRDevice Name = "xr-device"

	// EditorOnly has a single editor assembly and no runtime code.
	EditorOnly Name = "editor-only"

	// Platform adds an Android plugin folder and manifest stub.
	Platform Name = "platform"
)

// Assembly declares one assembly definition a template emits. Names are
// relative to the package namespace: Suffix ".Editor" on "MyCo.CoolTool"
// yields "MyCo.CoolTool.Editor".
type Assembly struct {
	// Dir is the slash-separated directory the .asmdef is written to.
	Dir    string
	Suffix string

	// References are suffixes of sibling assemblies ("" is the runtime one).
	References []string

	// External are fully qualified assemblies from other packages.
	External []string

	IncludePlatforms []string

	// Tests marks a test assembly: test runner references, NUnit,
	// UNITY_INCLUDE_TESTS and no auto-referencing.
	Tests bool
}

// Template is a named preset of directories, files and assemblies.
type Template struct {
	Name        Name
	Description string

	// Dirs is the exact set of directories created under the package root.
	Dirs []string

	// Layers are the embedded file trees rendered, in order. Later layers
	// win on identical target paths.
	Layers []string

	Assemblies []Assembly

	// Dependencies are added to the manifest's dependency map.
	Dependencies map[string]string
}

// Data is passed to every template file and path.
type Data struct {
	PackageID   string
	PackageName string
	DisplayName string
	Description string
	Version     string

	Company   string
	Namespace string
	ClassName string

	AuthorName  string
	AuthorEmail string
	AuthorURL   string

	// Unity is the host "major.minor"; UnityRelease the remainder.
	Unity        string
	UnityRelease string
	UnityVersion string

	License      string
	Year         int
	Template     Name
	Keywords     []string
	Dependencies map[string]string
}

// File is one rendered output file.
type File struct {
	// Path is slash-separated and relative to the package root.
	Path    string
	Content []byte
}

// Result describes a completed generation.
type Result struct {
	Root      string
	PackageID string
	Template  Name

	// Dirs and Files are slash-separated, relative to Root and sorted.
	Dirs  []string
	Files []string

	// Replaced is set when an existing package root was deleted first.
	Replaced bool

	// Warnings are schema findings on the generated manifest and assemblies.
	Warnings []string
}
