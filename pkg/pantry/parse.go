package pantry

import (
	"strconv"
	"strings"

	"github.com/mazzuks/meu-menu/pkg/list"
	"github.com/mazzuks/meu-menu/pkg/models"
)

// ParseItems extracts stock items from manually typed lines such as
// "Tomate 2 kg" or "Ovos 12 un". One item per line; a line without a
// trailing quantity becomes one unit. Used when AI parsing is unavailable.
func ParseItems(text string) []models.StockItem {
	var items []models.StockItem

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		desc := line
		qtd := 1.0
		un := "un"

		tokens := strings.Fields(line)
		if len(tokens) >= 3 {
			if v, err := strconv.ParseFloat(strings.ReplaceAll(tokens[len(tokens)-2], ",", "."), 64); err == nil {
				qtd = v
				un = tokens[len(tokens)-1]
				desc = strings.Join(tokens[:len(tokens)-2], " ")
			}
		} else if len(tokens) == 2 {
			if v, err := strconv.ParseFloat(strings.ReplaceAll(tokens[1], ",", "."), 64); err == nil {
				qtd = v
				desc = tokens[0]
			}
		}

		items = append(items, models.StockItem{
			Desc:      desc,
			Qtd:       qtd,
			Un:        un,
			Categoria: list.InferCategory(desc),
		})
	}

	return items
}
