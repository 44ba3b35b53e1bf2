// Package naming holds the pure string transforms used to derive package
// identifiers, assembly names and host versions from free-text form input.
package naming

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"k8s.io/apimachinery/pkg/util/validation"
)

// DefaultPrefix is the reverse-domain prefix of package identifiers.
const DefaultPrefix = "com"

// Sanitize lower-cases s and reduces it to [a-z0-9-]. Spaces, underscores
// and dots become hyphens, other characters are dropped, runs of hyphens
// collapse to one, and leading/trailing hyphens are trimmed.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastHyphen := true // suppresses a leading hyphen
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == '-' || r == '_' || r == '.' || r == ' ' || r == '\t':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

// isSeparator reports whether r splits words for PascalCase.
func isSeparator(r rune) bool {
	return r == '-' || r == '_' || r == ' ' || r == '\t'
}

// PascalCase joins the hyphen/underscore/space delimited segments of s,
// capitalizing the first letter of each and lower-casing the rest.
// Other characters are kept as they are: "cool-3d-tool" is "Cool3dTool".
func PascalCase(s string) string {
	var b strings.Builder
	for _, segment := range strings.FieldsFunc(s, isSeparator) {
		b.WriteString(capitalize(segment))
	}
	return b.String()
}

// capitalize upper-cases the first rune of word and lower-cases the rest.
func capitalize(word string) string {
	if word == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(word)
	return cases.Upper(language.Und).String(word[:size]) +
		cases.Lower(language.Und).String(word[size:])
}

// DisplayName turns a package name into space-separated title words:
// "cool-tool" becomes "Cool Tool".
func DisplayName(pkg string) string {
	words := strings.Split(Sanitize(pkg), "-")
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

// HostMajorMinor reduces a host editor version such as "6000.2.1f1" to
// its "major.minor" form ("6000.2"). Input with fewer than two dotted
// parts is returned trimmed.
func HostMajorMinor(version string) string {
	version = strings.TrimSpace(version)
	parts := strings.SplitN(version, ".", 3)
	if len(parts) < 2 {
		return version
	}
	return parts[0] + "." + parts[1]
}

// HostRelease returns the part of a host version after "major.minor."
// ("1f1" for "6000.2.1f1"), or "" when there is none.
func HostRelease(version string) string {
	parts := strings.SplitN(strings.TrimSpace(version), ".", 3)
	if len(parts) < 3 {
		return ""
	}
	return parts[2]
}

// PackageID builds the lower-cased "prefix.company.package" identifier.
// Every segment is sanitized; a dotted prefix ("com.example") keeps its
// dots and empty segments are skipped.
func PackageID(prefix, company, pkg string) string {
	raw := append(strings.Split(prefix, "."), company, pkg)

	segments := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = Sanitize(s); s != "" {
			segments = append(segments, s)
		}
	}
	return strings.ToLower(strings.Join(segments, "."))
}

// AssemblyName builds the dotted PascalCase assembly and namespace root,
// e.g. "MyCo.CoolTool" for company "MyCo" and package "cool-tool".
// A company that is already PascalCase keeps its inner capitals.
func AssemblyName(company, pkg string) string {
	return CompanyNamespace(company) + "." + PascalCase(Sanitize(pkg))
}

// CompanyNamespace returns the namespace segment for a company name.
// Single-word names such as "MyCo" are kept as typed; multi-word names
// are Pascal-cased.
func CompanyNamespace(company string) string {
	company = strings.TrimSpace(company)
	if strings.IndexFunc(company, isSeparator) < 0 && isIdentifier(company) {
		return strings.ToUpper(company[:1]) + company[1:]
	}
	return PascalCase(Sanitize(company))
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

// ValidateIdentifier checks that a package identifier is a lower-case
// reverse-domain name the package manager accepts.
func ValidateIdentifier(id string) error {
	if id == "" {
		return fmt.Errorf("package identifier cannot be empty")
	}
	if strings.Count(id, ".") < 2 {
		return fmt.Errorf("package identifier %q must have the form <prefix>.<company>.<package>", id)
	}
	if errs := validation.IsDNS1123Subdomain(id); len(errs) > 0 {
		return fmt.Errorf("invalid package identifier %q: %s", id, strings.Join(errs, "; "))
	}
	return nil
}

// ValidateCodeName checks that a derived class or namespace segment is
// usable as a C# identifier: it must start with a letter.
func ValidateCodeName(name string) error {
	if name == "" {
		return fmt.Errorf("code name cannot be empty")
	}
	r, _ := utf8.DecodeRuneInString(name)
	if !unicode.IsLetter(r) {
		return fmt.Errorf("code name %q must start with a letter", name)
	}
	return nil
}

// ValidateVersion checks that v is a strict semantic version ("1.2.3").
func ValidateVersion(v string) error {
	if _, err := semver.StrictNewVersion(v); err != nil {
		return fmt.Errorf("invalid version %q: %w", v, err)
	}
	return nil
}
