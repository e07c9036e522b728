// Package rewriter is the import-rewrite engine. Given a file's source and
// the rule tables, it finds every import of a legacy module, merges the
// requested symbols per destination module, and produces the edit script
// that deletes the originals and inserts one consolidated import per
// destination at the top of the file.
package rewriter

import (
	"strings"

	"github.com/codemods/apollo-migrate/core/edit"
	"github.com/codemods/apollo-migrate/core/mapping"
	"github.com/codemods/apollo-migrate/core/parser"
)

// Symbol is one imported binding destined for a new module. Alias is set
// only when the local name differs from the exported name.
type Symbol struct {
	Name     string
	Alias    string
	TypeOnly bool
}

// Bucket collects the merged symbols for one destination module,
// first-seen order preserved.
type Bucket struct {
	Module  string
	Symbols []Symbol
}

// match is one scanned statement that hit a rule: the span to delete, the
// destination its symbols move to, and the symbols themselves. A
// side-effect import produces a match with no symbols.
type match struct {
	start          int
	end            int
	dest           string
	symbols        []Symbol
	sideEffect     bool
	droppedDefault bool
	source         string
}

// Result is the outcome of rewriting one file. Empty Edits means the file
// needs no change and must not be written.
type Result struct {
	Edits   []edit.Edit
	Buckets []Bucket
	// Deleted counts removed import statements.
	Deleted int
	// SideEffectDrops lists module specifiers of matched side-effect-only
	// imports, which are deleted with no replacement.
	SideEffectDrops []string
	// DroppedDefaults lists modules whose default binding had no
	// destination and was removed along with its statement.
	DroppedDefaults []string
}

// Changed reports whether the result carries any edits.
func (r *Result) Changed() bool {
	return len(r.Edits) > 0
}

// Rewrite scans src against the rule tables and returns the edit script
// for the file. The computation is a pure fold: scan produces immutable
// match records, merge reduces them into buckets, render emits the new
// statements. Zero matches yield an empty result.
func Rewrite(src string, rules []mapping.Rule, defRule mapping.DefaultRule) Result {
	matches := scan([]byte(src), rules, defRule)
	if len(matches) == 0 {
		return Result{}
	}

	result := Result{Deleted: len(matches)}
	buckets := merge(matches)

	for _, m := range matches {
		result.Edits = append(result.Edits, edit.Delete(m.start, m.end))
		if m.sideEffect {
			result.SideEffectDrops = append(result.SideEffectDrops, m.source)
		}
	}
	for _, m := range matches {
		if m.droppedDefault {
			result.DroppedDefaults = append(result.DroppedDefaults, m.source)
		}
	}

	for _, b := range buckets {
		result.Edits = append(result.Edits, edit.Insert(0, render(b)))
	}
	result.Buckets = buckets

	return result
}

// scan walks the parsed imports and emits one match record per statement
// hitting a rule. Namespace, dynamic, and whole-statement type imports are
// never matched; neither is a statement without a plain string specifier.
func scan(src []byte, rules []mapping.Rule, defRule mapping.DefaultRule) []match {
	var matches []match

	for _, stmt := range parser.Scan(src) {
		if stmt.Module == "" || stmt.TypeOnly {
			continue
		}
		switch stmt.Form {
		case parser.FormNamespace, parser.FormDynamic:
			continue
		}

		// The fixed default-import rule applies only to the pure default
		// form; anything else from its module falls through to the table.
		if stmt.Form == parser.FormDefault && stmt.Module == defRule.Source {
			sym := Symbol{Name: defRule.ExportedName}
			if stmt.Default != defRule.ExportedName {
				sym.Alias = stmt.Default
			}
			matches = append(matches, match{
				start:   stmt.Start,
				end:     stmt.End,
				dest:    defRule.Target,
				symbols: []Symbol{sym},
				source:  stmt.Module,
			})
			continue
		}

		rule, ok := mapping.Match(rules, stmt.Module)
		if !ok {
			continue
		}

		m := match{
			start:          stmt.Start,
			end:            stmt.End,
			dest:           rule.Target,
			sideEffect:     stmt.Form == parser.FormSideEffect,
			droppedDefault: stmt.Default != "",
			source:         stmt.Module,
		}
		for _, spec := range stmt.Named {
			sym := Symbol{Name: spec.Exported, TypeOnly: spec.TypeOnly}
			if spec.Local != spec.Exported {
				sym.Alias = spec.Local
			}
			m.symbols = append(m.symbols, sym)
		}
		matches = append(matches, m)
	}

	return matches
}

// merge folds match records into destination buckets, deduplicating
// symbols by value and preserving first-seen order of both destinations
// and symbols.
func merge(matches []match) []Bucket {
	var order []string
	byModule := make(map[string]*Bucket)
	seen := make(map[string]map[Symbol]bool)

	for _, m := range matches {
		if len(m.symbols) == 0 {
			continue
		}
		b, ok := byModule[m.dest]
		if !ok {
			b = &Bucket{Module: m.dest}
			byModule[m.dest] = b
			seen[m.dest] = make(map[Symbol]bool)
			order = append(order, m.dest)
		}
		for _, sym := range m.symbols {
			if seen[m.dest][sym] {
				continue
			}
			seen[m.dest][sym] = true
			b.Symbols = append(b.Symbols, sym)
		}
	}

	buckets := make([]Bucket, 0, len(order))
	for _, module := range order {
		buckets = append(buckets, *byModule[module])
	}
	return buckets
}

// render builds the consolidated statement for one destination bucket.
func render(b Bucket) string {
	var sb strings.Builder
	sb.WriteString("import {")
	for i, sym := range b.Symbols {
		if i > 0 {
			sb.WriteString(", ")
		}
		if sym.TypeOnly {
			sb.WriteString("type ")
		}
		sb.WriteString(sym.Name)
		if sym.Alias != "" {
			sb.WriteString(" as ")
			sb.WriteString(sym.Alias)
		}
	}
	sb.WriteString("} from '")
	sb.WriteString(b.Module)
	sb.WriteString("';\n")
	return sb.String()
}
