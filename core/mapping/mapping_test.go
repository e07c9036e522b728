package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	rules := DefaultRules()

	rule, ok := Match(rules, "apollo-cache-inmemory")
	require.True(t, ok)
	assert.Equal(t, "@apollo/client/core", rule.Target)

	rule, ok = Match(rules, "apollo-angular-link-http")
	require.True(t, ok)
	assert.Equal(t, "apollo-angular/http", rule.Target)

	_, ok = Match(rules, "graphql-tag")
	assert.False(t, ok, "graphql-tag is handled by the default-import rule, not the table")

	_, ok = Match(rules, "@angular/core")
	assert.False(t, ok)
}

func TestMatchIdentityRule(t *testing.T) {
	rule, ok := Match(DefaultRules(), "apollo-angular")
	require.True(t, ok)
	assert.Equal(t, "apollo-angular", rule.Target)
}

func TestMatchTakesFirstRule(t *testing.T) {
	rules := []Rule{
		{Source: "m", Target: "first"},
		{Source: "m", Target: "second"},
	}
	rule, ok := Match(rules, "m")
	require.True(t, ok)
	assert.Equal(t, "first", rule.Target)
}

func TestLegacyPackages(t *testing.T) {
	pkgs := LegacyPackages()

	assert.Contains(t, pkgs, "apollo-client")
	assert.Contains(t, pkgs, "graphql-tag")
	assert.NotContains(t, pkgs, "apollo-angular", "identity rules are not superseded packages")

	seen := make(map[string]bool)
	for _, p := range pkgs {
		assert.False(t, seen[p], "duplicate package %s", p)
		seen[p] = true
	}
}

func TestGraphQLTagRule(t *testing.T) {
	r := GraphQLTagRule()
	assert.Equal(t, "graphql-tag", r.Source)
	assert.Equal(t, "gql", r.ExportedName)
	assert.Equal(t, "apollo-angular", r.Target)
}
