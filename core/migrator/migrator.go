// Package migrator drives the migration across a project tree: walk,
// rewrite each file's imports, commit non-empty patches, then run the
// manifest and tsconfig sub-steps.
package migrator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/codemods/apollo-migrate/core/config"
	"github.com/codemods/apollo-migrate/core/edit"
	"github.com/codemods/apollo-migrate/core/logger"
	"github.com/codemods/apollo-migrate/core/manifest"
	"github.com/codemods/apollo-migrate/core/mapping"
	"github.com/codemods/apollo-migrate/core/rewriter"
	"github.com/codemods/apollo-migrate/core/walker"
)

type Options struct {
	// DryRun computes every patch and collects diffs without writing.
	DryRun bool
	// SkipManifest disables the package.json sub-step.
	SkipManifest bool
	// SkipTsconfig disables the tsconfig flag sub-step.
	SkipTsconfig bool
}

type Migrator struct {
	root    string
	walker  walker.SourceWalker
	rules   []mapping.Rule
	defRule mapping.DefaultRule
	opts    Options
}

func NewMigrator(root string, opts Options) (*Migrator, error) {
	cfg, err := config.Load(root)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &Migrator{
		root:    root,
		walker:  walker.NewSourceWalker(cfg),
		rules:   mapping.DefaultRules(),
		defRule: mapping.GraphQLTagRule(),
		opts:    opts,
	}, nil
}

// Run walks the tree and rewrites every file with matching imports. A
// single unreadable or unwritable file is recorded as failed and the run
// continues; only a tree-walk error aborts.
func (m *Migrator) Run() (*Report, error) {
	files, err := m.walker.Walk(m.root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", m.root, err)
	}
	logger.Debug("Found %d candidate files under %s", len(files), m.root)

	report := NewReport()

	for _, path := range files {
		m.migrateFile(path, report)
	}

	if !m.opts.DryRun && !m.opts.SkipManifest {
		pkgResult, err := manifest.UpdatePackage(m.root)
		if err != nil {
			logger.Error("Dependency update failed: %v", err)
		} else if pkgResult != nil {
			report.Manifest = pkgResult
			logger.Info("Updated %s (added %d, removed %d packages)",
				pkgResult.Path, len(pkgResult.Added), len(pkgResult.Removed))
		}
	}

	if !m.opts.DryRun && !m.opts.SkipTsconfig {
		tsPath, err := manifest.EnableSyntheticDefaultImports(m.root)
		if err != nil {
			logger.Error("tsconfig update failed: %v", err)
		} else if tsPath != "" {
			report.Tsconfig = tsPath
			logger.Info("Enabled allowSyntheticDefaultImports in %s", tsPath)
		}
	}

	return report, nil
}

func (m *Migrator) migrateFile(path string, report *Report) {
	rel, err := filepath.Rel(m.root, path)
	if err != nil {
		rel = path
	}

	info, err := os.Stat(path)
	if err != nil {
		report.AddFailed(rel, err)
		logger.Error("Cannot stat %s: %v", rel, err)
		return
	}

	content, err := os.ReadFile(path)
	if err != nil {
		report.AddFailed(rel, err)
		logger.Error("Cannot read %s: %v", rel, err)
		return
	}

	src := string(content)
	result := rewriter.Rewrite(src, m.rules, m.defRule)
	if !result.Changed() {
		report.AddUnchanged(rel)
		return
	}

	for _, module := range result.SideEffectDrops {
		logger.Warn("%s: side-effect import of %q removed with no replacement", rel, module)
	}
	for _, module := range result.DroppedDefaults {
		logger.Warn("%s: default import from %q has no destination and was removed", rel, module)
	}

	rewritten, err := edit.Apply(src, result.Edits)
	if err != nil {
		report.AddFailed(rel, err)
		logger.Error("Cannot patch %s: %v", rel, err)
		return
	}

	if m.opts.DryRun {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(src, rewritten, false)
		report.AddRewritten(rel, result, dmp.DiffPrettyText(diffs))
		return
	}

	if err := os.WriteFile(path, []byte(rewritten), info.Mode().Perm()); err != nil {
		report.AddFailed(rel, err)
		logger.Error("Cannot write %s: %v", rel, err)
		return
	}

	report.AddRewritten(rel, result, "")
	logger.Info("Rewrote imports in %s (%d statements merged into %d)",
		rel, result.Deleted, len(result.Buckets))
}
