// Package mapping holds the module rename tables driving the migration.
// The tables are plain data so the rewrite engine stays reusable for any
// future module migration with a different rule set.
package mapping

// Rule maps one legacy module specifier to its replacement module.
// Several sources may collapse into the same target; the statements are
// merged into a single import of the target.
type Rule struct {
	Source string
	Target string
}

// DefaultRule is the one fixed special case: a default import from Source
// becomes a named import of ExportedName from Target, aliased to the
// original local binding when that binding differs from ExportedName.
type DefaultRule struct {
	Source       string
	ExportedName string
	Target       string
}

// DefaultRules returns the ordered rule table for the Apollo Client v3 /
// apollo-angular v2 migration. Order matters: Match takes the first hit.
func DefaultRules() []Rule {
	return []Rule{
		{Source: "apollo-client", Target: "@apollo/client/core"},
		{Source: "apollo-cache-inmemory", Target: "@apollo/client/core"},
		{Source: "apollo-link", Target: "@apollo/client/core"},
		{Source: "apollo-link-error", Target: "@apollo/client/link/error"},
		{Source: "apollo-link-batch", Target: "@apollo/client/link/batch"},
		{Source: "apollo-link-context", Target: "@apollo/client/link/context"},
		{Source: "apollo-link-retry", Target: "@apollo/client/link/retry"},
		{Source: "apollo-link-ws", Target: "@apollo/client/link/ws"},
		{Source: "apollo-utilities", Target: "@apollo/client/utilities"},
		{Source: "apollo-angular-link-http", Target: "apollo-angular/http"},
		{Source: "apollo-angular-link-http-common", Target: "apollo-angular/http"},
		// Identity rule: imports of apollo-angular itself are re-emitted,
		// which merges and dedupes them alongside everything else.
		{Source: "apollo-angular", Target: "apollo-angular"},
	}
}

// GraphQLTagRule returns the fixed default-import rule:
// `import gql from 'graphql-tag'` becomes `import {gql} from 'apollo-angular'`.
func GraphQLTagRule() DefaultRule {
	return DefaultRule{
		Source:       "graphql-tag",
		ExportedName: "gql",
		Target:       "apollo-angular",
	}
}

// Match scans the ordered rules and returns the first one whose Source
// equals the specifier.
func Match(rules []Rule, specifier string) (Rule, bool) {
	for _, r := range rules {
		if r.Source == specifier {
			return r, true
		}
	}
	return Rule{}, false
}

// LegacyPackages returns the names of the packages superseded by the
// migration, for removal from a dependency manifest.
func LegacyPackages() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range DefaultRules() {
		if r.Source == r.Target {
			continue
		}
		if !seen[r.Source] {
			seen[r.Source] = true
			out = append(out, r.Source)
		}
	}
	out = append(out, GraphQLTagRule().Source)
	return out
}

// ReplacementPackages returns the dependency-name to version table merged
// into a project manifest by the migration.
func ReplacementPackages() map[string]string {
	return map[string]string{
		"@apollo/client": "^3.0.0",
		"apollo-angular": "^2.0.0",
		"graphql":        "^15.0.0",
	}
}
