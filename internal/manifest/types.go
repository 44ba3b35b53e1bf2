// Package manifest defines the package manager's on-disk formats, the
// package.json manifest and .asmdef assembly definitions, and validates them.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FileName is the manifest file name at a package root.
const FileName = "package.json"

// AssemblyExt is the file extension of assembly definitions.
const AssemblyExt = ".asmdef"

// Author identifies the package author. Only Name is required.
type Author struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	URL   string `json:"url,omitempty"`
}

// PackageManifest is the package.json read by the host package manager.
// Field order matches the order written to disk.
type PackageManifest struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	DisplayName  string            `json:"displayName"`
	Description  string            `json:"description"`
	Unity        string            `json:"unity"`
	UnityRelease string            `json:"unityRelease,omitempty"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
	Keywords     []string          `json:"keywords"`
	Author       *Author           `json:"author,omitempty"`
	License      string            `json:"license"`
}

// VersionDefine is one entry of an assembly's versionDefines list.
type VersionDefine struct {
	Name       string `json:"name"`
	Expression string `json:"expression"`
	Define     string `json:"define"`
}

// AssemblyDefinition is the fixed .asmdef schema.
type AssemblyDefinition struct {
	Name                  string          `json:"name"`
	RootNamespace         string          `json:"rootNamespace"`
	References            []string        `json:"references"`
	IncludePlatforms      []string        `json:"includePlatforms"`
	ExcludePlatforms      []string        `json:"excludePlatforms"`
	AllowUnsafeCode       bool            `json:"allowUnsafeCode"`
	OverrideReferences    bool            `json:"overrideReferences"`
	PrecompiledReferences []string        `json:"precompiledReferences"`
	AutoReferenced        bool            `json:"autoReferenced"`
	DefineConstraints     []string        `json:"defineConstraints"`
	VersionDefines        []VersionDefine `json:"versionDefines"`
	NoEngineReferences    bool            `json:"noEngineReferences"`
}

// NewAssembly returns an assembly definition with the host's defaults:
// empty lists (never null) and auto-referencing on.
func NewAssembly(name, rootNamespace string) *AssemblyDefinition {
	return &AssemblyDefinition{
		Name:                  name,
		RootNamespace:         rootNamespace,
		References:            []string{},
		IncludePlatforms:      []string{},
		ExcludePlatforms:      []string{},
		PrecompiledReferences: []string{},
		AutoReferenced:        true,
		DefineConstraints:     []string{},
		VersionDefines:        []VersionDefine{},
	}
}

// Marshal encodes v the way the host editor writes these files:
// four-space indentation, no HTML escaping, trailing newline.
func Marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}
	return buf.Bytes(), nil
}
