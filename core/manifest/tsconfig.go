package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/codemods/apollo-migrate/core/logger"
)

// tsconfigCandidates is probed in order; the first file with a usable
// compilerOptions record wins.
var tsconfigCandidates = []string{"tsconfig.json", "tsconfig.base.json"}

// EnableSyntheticDefaultImports sets
// compilerOptions.allowSyntheticDefaultImports to true in the project's
// TypeScript configuration. It returns the path of the file it modified,
// or empty when no candidate had the expected structure (a no-op, not an
// error, matching the tolerance of the other manifest steps).
func EnableSyntheticDefaultImports(root string) (string, error) {
	for _, name := range tsconfigCandidates {
		path := filepath.Join(root, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}

		var cfg map[string]any
		if err := json.Unmarshal(data, &cfg); err != nil {
			// tsconfig files may carry comments the JSON decoder rejects;
			// fall through to the next candidate rather than failing.
			logger.Debug("Could not parse %s: %v", path, err)
			continue
		}

		opts, ok := cfg["compilerOptions"].(map[string]any)
		if !ok {
			logger.Debug("%s has no compilerOptions record", path)
			continue
		}

		if current, ok := opts["allowSyntheticDefaultImports"].(bool); ok && current {
			return path, nil
		}
		opts["allowSyntheticDefaultImports"] = true

		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode %s: %w", path, err)
		}
		out = append(out, '\n')

		if err := os.WriteFile(path, out, 0644); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", path, err)
		}
		return path, nil
	}

	logger.Debug("No tsconfig with compilerOptions found under %s", root)
	return "", nil
}
