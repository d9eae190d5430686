package aliases

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindMainDirectKey(t *testing.T) {
	r := NewResolver()

	assert.Equal(t, "tomate", r.FindMain("tomate"))
	assert.Equal(t, "tomate", r.FindMain("  Tomate "))
	assert.Equal(t, "açúcar mascavo", r.FindMain("Açúcar Mascavo"))
}

func TestFindMainViaAlias(t *testing.T) {
	r := NewResolver()

	assert.Equal(t, "açúcar", r.FindMain("açúcar cristal"))
	assert.Equal(t, "tomate", r.FindMain("tomates"))
	assert.Equal(t, "farinha de rosca", r.FindMain("panko"))
	assert.Equal(t, "massa de pizza", r.FindMain("disco de pizza"))
}

func TestFindMainUnknownPassesThrough(t *testing.T) {
	r := NewResolver()

	assert.Equal(t, "caviar beluga", r.FindMain("caviar beluga"))
}

func TestEquivalent(t *testing.T) {
	r := NewResolver()

	assert.True(t, r.Equivalent("panko", "farinha rosca"))
	assert.True(t, r.Equivalent("Tomate Cereja", "tomates"))
	assert.True(t, r.Equivalent("caviar", "Caviar"))
	assert.False(t, r.Equivalent("tomate", "cebola"))
}

func TestNormalizeForSearch(t *testing.T) {
	r := NewResolver()

	assert.Equal(t, "acucar", r.NormalizeForSearch("açúcar cristal"))
	assert.Equal(t, "tomate", r.NormalizeForSearch("Tomates"))
}

func TestCustomTable(t *testing.T) {
	r := NewResolverWithTable(map[string][]string{
		"refrigerante": {"refri", "coca"},
	})

	assert.Equal(t, "refrigerante", r.FindMain("refri"))
	assert.Equal(t, "tomate", r.FindMain("tomate"), "custom table knows nothing about tomatoes")
}
