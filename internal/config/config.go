// Package config provides configuration loading and management.
package config

// AuthorConfig holds the default package author.
type AuthorConfig struct {
	// Env: UPM_AUTHOR_NAME
	Name string `json:"name,omitempty"`

	// Env: UPM_AUTHOR_EMAIL
	Email string `json:"email,omitempty"`

	// Env: UPM_AUTHOR_URL
	URL string `json:"url,omitempty"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty"`
}

// Config represents the upm CLI configuration, loaded from ~/.upm/config.yaml.
// Every field is optional; unset fields fall back to built-in defaults.
type Config struct {
	// Company is the default company name used in package identifiers.
	// Env: UPM_COMPANY
	Company string `json:"company,omitempty"`

	// Author is the default author written to package.json.
	Author AuthorConfig `json:"author,omitempty"`

	// OutputDir is where new packages are created.
	// Env: UPM_OUTPUT_DIR, Default: "."
	OutputDir string `json:"outputDir,omitempty"`

	// UnityVersion is the full host editor version, e.g. "6000.2.1f1".
	// Env: UPM_UNITY_VERSION
	UnityVersion string `json:"unityVersion,omitempty"`

	// Template is the default template name.
	// Env: UPM_TEMPLATE, Default: "standard"
	Template string `json:"template,omitempty"`

	// PackagePrefix is the first segment(s) of generated package identifiers.
	// Env: UPM_PACKAGE_PREFIX, Default: "com"
	PackagePrefix string `json:"packagePrefix,omitempty"`

	// License is the SPDX identifier written to package.json.
	// Env: UPM_LICENSE, Default: "MIT"
	License string `json:"license,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty"`
}

// Built-in defaults.
const (
	DefaultCompany       = "MyCompany"
	DefaultOutputDir     = "."
	DefaultUnityVersion  = "6000.0.0f1"
	DefaultTemplate      = "standard"
	DefaultPackagePrefix = "com"
	DefaultLicense       = "MIT"
)

// DefaultConfig returns a Config with all default values populated.
// Used by `upm config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Company:       DefaultCompany,
		OutputDir:     DefaultOutputDir,
		UnityVersion:  DefaultUnityVersion,
		Template:      DefaultTemplate,
		PackagePrefix: DefaultPackagePrefix,
		License:       DefaultLicense,
	}
}
