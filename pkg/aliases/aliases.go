// Package aliases resolves ingredient names to a canonical "main ingredient"
// through a static Portuguese synonym table. It is an enhancement layer on top
// of normalized substring matching, used by search surfaces; the stock matcher
// itself does not consult it.
package aliases

import (
	"strings"

	"github.com/mazzuks/meu-menu/pkg/textnorm"
)

// Resolver holds the synonym table. Construct one per process with
// NewResolver; tests can inject their own table via NewResolverWithTable.
type Resolver struct {
	table map[string][]string
}

// NewResolver creates a resolver over the default ingredient table.
func NewResolver() *Resolver {
	return &Resolver{table: defaultTable}
}

// NewResolverWithTable creates a resolver over a caller-supplied table.
// Keys and aliases are expected to be lowercase.
func NewResolverWithTable(table map[string][]string) *Resolver {
	return &Resolver{table: table}
}

// FindMain returns the main ingredient for the given name. The lookup is
// case-insensitive: a direct table key wins, then an exact alias match; an
// unknown name passes through unchanged.
func (r *Resolver) FindMain(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))

	if _, ok := r.table[normalized]; ok {
		return normalized
	}

	for main, aliasList := range r.table {
		for _, alias := range aliasList {
			if strings.ToLower(alias) == normalized {
				return main
			}
		}
	}

	return name
}

// Aliases returns all known aliases of a main ingredient, or nil.
func (r *Resolver) Aliases(main string) []string {
	return r.table[strings.ToLower(strings.TrimSpace(main))]
}

// Equivalent reports whether two names resolve to the same main ingredient.
func (r *Resolver) Equivalent(a, b string) bool {
	return strings.EqualFold(r.FindMain(a), r.FindMain(b))
}

// NormalizeForSearch resolves the main ingredient and then applies the
// canonical text normalization, producing a stable search key.
func (r *Resolver) NormalizeForSearch(name string) string {
	return textnorm.Normalize(r.FindMain(name))
}
