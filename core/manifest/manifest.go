// Package manifest performs the non-core record edits of the migration:
// merging the replacement dependency table into package.json and flipping
// the synthetic-default-imports compiler flag in the TypeScript config.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/codemods/apollo-migrate/core/logger"
	"github.com/codemods/apollo-migrate/core/mapping"
)

// PackageResult reports what UpdatePackage changed.
type PackageResult struct {
	Path    string
	Added   []string
	Removed []string
}

// UpdatePackage merges the replacement dependencies into package.json and
// drops every superseded legacy package from both dependencies and
// devDependencies. A missing file or a file without a dependencies record
// is a no-op, not an error.
func UpdatePackage(root string) (*PackageResult, error) {
	path := filepath.Join(root, "package.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("No package.json at %s, skipping dependency update", root)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var pkg map[string]any
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	deps, ok := pkg["dependencies"].(map[string]any)
	if !ok {
		logger.Debug("package.json has no dependencies record, skipping")
		return nil, nil
	}

	result := &PackageResult{Path: path}

	for _, name := range mapping.LegacyPackages() {
		if _, exists := deps[name]; exists {
			delete(deps, name)
			result.Removed = append(result.Removed, name)
		}
		if devDeps, ok := pkg["devDependencies"].(map[string]any); ok {
			if _, exists := devDeps[name]; exists {
				delete(devDeps, name)
				result.Removed = append(result.Removed, name)
			}
		}
	}

	for name, version := range mapping.ReplacementPackages() {
		if deps[name] != version {
			deps[name] = version
			result.Added = append(result.Added, name)
		}
	}

	out, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", path, err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(path, out, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return result, nil
}
