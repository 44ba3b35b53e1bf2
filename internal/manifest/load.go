package manifest

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	oerrors "github.com/upmkit/cli/internal/errors"
)

// LoadPackage reads and decodes the package.json under dir.
// The raw bytes are returned alongside for schema validation and diffing.
func LoadPackage(dir string) (*PackageManifest, []byte, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, oerrors.NewNotFoundError(
				"no "+FileName+" found",
				dir,
				"run 'upm vet' on a package root, or create one with 'upm new'",
			)
		}
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var m PackageManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, data, oerrors.NewValidationError(
			fmt.Sprintf("invalid JSON: %v", err),
			path, "", "",
		)
	}
	return &m, data, nil
}

// FindAssemblies returns the slash-separated paths, relative to root, of
// every assembly definition in the tree, sorted.
func FindAssemblies(root string) ([]string, error) {
	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), AssemblyExt) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		found = append(found, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	sort.Strings(found)
	return found, nil
}
