package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mazzuks/meu-menu/pkg/models"
)

func TestMatchesBidirectional(t *testing.T) {
	// ingredient contained in stock description
	assert.True(t, Matches("tomate", "Tomate Italiano Premium 2kg"))
	// stock description contained in ingredient
	assert.True(t, Matches("Molho de tomate caseiro", "molho de tomate"))
	// accents and units don't break the match
	assert.True(t, Matches("Açúcar", "acucar cristal 1kg"))
	assert.True(t, Matches("Massa de pizza", "Massa de Pizza"))
}

func TestMatchesNegative(t *testing.T) {
	assert.False(t, Matches("tomate", "cebola roxa"))
	assert.False(t, Matches("frango", "peixe branco"))
}

func TestMatchesEmptyNeverMatches(t *testing.T) {
	assert.False(t, Matches("", "tomate"))
	assert.False(t, Matches("tomate", ""))
	assert.False(t, Matches("", ""))
	// strings that normalize to empty
	assert.False(t, Matches("2 kg", "tomate"))
	assert.False(t, Matches("tomate", "500"))
}

func TestFindStockForFirstWins(t *testing.T) {
	stock := []models.StockItem{
		{ID: "a", Desc: "Tomate Cereja", Qtd: 1},
		{ID: "b", Desc: "Tomate Italiano", Qtd: 5},
	}

	item, ok := FindStockFor("tomate", stock)
	assert.True(t, ok)
	assert.Equal(t, "a", item.ID)

	assert.Equal(t, 0, IndexOf("tomate", stock))
}

func TestFindStockForNoMatch(t *testing.T) {
	stock := []models.StockItem{{ID: "a", Desc: "Cebola", Qtd: 1}}

	_, ok := FindStockFor("tomate", stock)
	assert.False(t, ok)
	assert.Equal(t, -1, IndexOf("tomate", stock))
	assert.Equal(t, -1, IndexOf("tomate", nil))
}
