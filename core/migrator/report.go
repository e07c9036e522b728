package migrator

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/codemods/apollo-migrate/core/manifest"
	"github.com/codemods/apollo-migrate/core/rewriter"
)

type FileStatus uint8

const (
	StatusUnchanged FileStatus = iota
	StatusRewritten
	StatusFailed
)

type FileResult struct {
	Path   string
	Status FileStatus
	Err    error
	// Buckets holds the merged imports emitted into the file.
	Buckets []rewriter.Bucket
	// Diff carries the rendered patch in dry-run mode.
	Diff string
}

// Report accumulates per-file outcomes and the sub-step results of a run.
type Report struct {
	Files    []FileResult
	Manifest *manifest.PackageResult
	Tsconfig string

	moduleOrder  []string
	symbolsByMod map[string]int
	rewrittenCnt int
	unchangedCnt int
	failedCnt    int
}

func NewReport() *Report {
	return &Report{symbolsByMod: make(map[string]int)}
}

func (r *Report) AddUnchanged(path string) {
	r.unchangedCnt++
	r.Files = append(r.Files, FileResult{Path: path, Status: StatusUnchanged})
}

func (r *Report) AddFailed(path string, err error) {
	r.failedCnt++
	r.Files = append(r.Files, FileResult{Path: path, Status: StatusFailed, Err: err})
}

func (r *Report) AddRewritten(path string, result rewriter.Result, diff string) {
	r.rewrittenCnt++
	r.Files = append(r.Files, FileResult{
		Path:    path,
		Status:  StatusRewritten,
		Buckets: result.Buckets,
		Diff:    diff,
	})
	for _, b := range result.Buckets {
		if _, ok := r.symbolsByMod[b.Module]; !ok {
			r.moduleOrder = append(r.moduleOrder, b.Module)
		}
		r.symbolsByMod[b.Module] += len(b.Symbols)
	}
}

func (r *Report) Rewritten() int { return r.rewrittenCnt }
func (r *Report) Unchanged() int { return r.unchangedCnt }
func (r *Report) Failed() int    { return r.failedCnt }

// Diffs renders the collected dry-run patches, one block per file.
func (r *Report) Diffs() string {
	var sb strings.Builder
	for _, f := range r.Files {
		if f.Status != StatusRewritten || f.Diff == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("--- %s\n", f.Path))
		sb.WriteString(f.Diff)
		if !strings.HasSuffix(f.Diff, "\n") {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Summary renders the destination-module table plus run totals.
func (r *Report) Summary() string {
	var sb strings.Builder

	if len(r.moduleOrder) > 0 {
		tbl := table.NewWriter()
		tbl.SetStyle(table.StyleLight)
		tbl.AppendHeader(table.Row{"Destination module", "Symbols"})
		for _, module := range r.moduleOrder {
			tbl.AppendRow(table.Row{module, r.symbolsByMod[module]})
		}
		tbl.AppendFooter(table.Row{"Files rewritten", r.rewrittenCnt})
		sb.WriteString(tbl.Render())
		sb.WriteByte('\n')
	}

	sb.WriteString(fmt.Sprintf("%d rewritten, %d unchanged, %d failed\n",
		r.rewrittenCnt, r.unchangedCnt, r.failedCnt))

	if r.Manifest != nil {
		if len(r.Manifest.Removed) > 0 {
			sb.WriteString(fmt.Sprintf("Removed packages: %s\n", strings.Join(r.Manifest.Removed, ", ")))
		}
		if len(r.Manifest.Added) > 0 {
			sb.WriteString(fmt.Sprintf("Added packages: %s\n", strings.Join(r.Manifest.Added, ", ")))
		}
	}
	if r.Tsconfig != "" {
		sb.WriteString(fmt.Sprintf("allowSyntheticDefaultImports enabled in %s\n", r.Tsconfig))
	}

	return sb.String()
}
