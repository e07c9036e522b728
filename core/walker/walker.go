package walker

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/codemods/apollo-migrate/core/config"
	"github.com/codemods/apollo-migrate/core/logger"
)

// SourceWalker enumerates the candidate source files of a project tree.
type SourceWalker interface {
	Walk(root string) ([]string, error)
}

type SourceWalkerImpl struct {
	Exclude    []string
	Extensions []string
}

func NewSourceWalker(cfg *config.Config) *SourceWalkerImpl {
	return &SourceWalkerImpl{
		Exclude:    cfg.Exclude,
		Extensions: cfg.Extensions,
	}
}

// Walk returns every file under root whose extension is recognized,
// skipping excluded directories entirely.
func (w *SourceWalkerImpl) Walk(root string) ([]string, error) {
	var files []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			for _, ex := range w.Exclude {
				if info.Name() == ex {
					logger.Debug("Skipping directory: %s", path)
					return filepath.SkipDir
				}
			}
			return nil
		}

		for _, ext := range w.Extensions {
			if strings.HasSuffix(info.Name(), ext) {
				files = append(files, path)
				break
			}
		}

		return nil
	})

	return files, err
}
