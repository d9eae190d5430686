package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mazzuks/meu-menu/pkg/models"
	"github.com/mazzuks/meu-menu/pkg/suggest"
)

// apiError is the canonical error envelope for every 4xx/5xx response
type apiError struct {
	Detail string `json:"detail"`
}

func errJSON(msg string) apiError { return apiError{Detail: msg} }

// householdID identifies the household a request concerns. The app sends it
// as the "casa" query parameter; absent means the default household.
func householdID(c *gin.Context) int64 {
	raw := c.Query("casa")
	if raw == "" {
		return 1
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 1
	}
	return id
}

func (r *Router) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Recipes

func (r *Router) listRecipes(c *gin.Context) {
	recipes, err := r.catalog.Recipes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, errJSON("Erro ao listar receitas"))
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (r *Router) searchRecipes(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, errJSON("Parâmetro q é obrigatório"))
		return
	}

	recipes, err := r.catalog.Search(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errJSON("Erro ao buscar receitas"))
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (r *Router) getRecipe(c *gin.Context) {
	recipe, err := r.catalog.BySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, errJSON("Receita não encontrada"))
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// Suggestions

func (r *Router) suggestions(c *gin.Context) {
	limit := r.suggestionLimit
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}

	stock, err := r.pantry.Items(householdID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, errJSON("Erro ao consultar despensa"))
		return
	}

	recipes, err := r.catalog.Recipes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, errJSON("Erro ao listar receitas"))
		return
	}

	suggested := suggest.ByLeftovers(stock, recipes, limit)
	if suggested == nil {
		suggested = []models.Recipe{}
	}
	c.JSON(http.StatusOK, suggested)
}

// Stock

func (r *Router) listStock(c *gin.Context) {
	items, err := r.pantry.Items(householdID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, errJSON("Erro ao consultar despensa"))
		return
	}
	c.JSON(http.StatusOK, items)
}

func (r *Router) addStock(c *gin.Context) {
	var items []models.StockItem
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, errJSON(err.Error()))
		return
	}

	if err := r.pantry.AddMany(householdID(c), items); err != nil {
		c.JSON(http.StatusInternalServerError, errJSON("Erro ao adicionar itens"))
		return
	}
	c.Status(http.StatusCreated)
}

func (r *Router) clearStock(c *gin.Context) {
	if err := r.pantry.Clear(householdID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, errJSON("Erro ao limpar despensa"))
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) removeStock(c *gin.Context) {
	if err := r.pantry.Remove(householdID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, errJSON("Erro ao remover item"))
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) applyRecipe(c *gin.Context) {
	recipe, err := r.catalog.BySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, errJSON("Receita não encontrada"))
		return
	}

	debited, err := r.pantry.Apply(householdID(c), *recipe)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errJSON("Erro ao descontar despensa"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"debited": debited})
}

// Shopping list

func (r *Router) listItems(c *gin.Context) {
	items, err := r.list.Items(householdID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, errJSON("Erro ao consultar lista"))
		return
	}
	c.JSON(http.StatusOK, items)
}

func (r *Router) consolidated(c *gin.Context) {
	groups, err := r.list.Consolidated(householdID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, errJSON("Erro ao consolidar lista"))
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (r *Router) addItem(c *gin.Context) {
	var item models.ShoppingListItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, errJSON(err.Error()))
		return
	}

	if err := r.list.Add(householdID(c), item); err != nil {
		c.JSON(http.StatusInternalServerError, errJSON("Erro ao adicionar item"))
		return
	}
	c.Status(http.StatusCreated)
}

func (r *Router) addRecipeToList(c *gin.Context) {
	recipe, err := r.catalog.BySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, errJSON("Receita não encontrada"))
		return
	}

	if err := r.list.AddRecipe(householdID(c), *recipe); err != nil {
		c.JSON(http.StatusInternalServerError, errJSON("Erro ao adicionar receita à lista"))
		return
	}
	c.Status(http.StatusCreated)
}

type completeRequest struct {
	Slugs []string `json:"slugs" binding:"required,min=1"`
}

func (r *Router) completeForRecipes(c *gin.Context) {
	var req completeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errJSON(err.Error()))
		return
	}

	var recipes []models.Recipe
	for _, slug := range req.Slugs {
		recipe, err := r.catalog.BySlug(slug)
		if err != nil {
			c.JSON(http.StatusNotFound, errJSON("Receita não encontrada: "+slug))
			return
		}
		recipes = append(recipes, *recipe)
	}

	household := householdID(c)
	stock, err := r.pantry.Items(household)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errJSON("Erro ao consultar despensa"))
		return
	}

	added, err := r.list.CompleteForRecipes(household, recipes, stock)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errJSON("Erro ao completar lista"))
		return
	}
	if added == nil {
		added = []models.ShoppingListItem{}
	}
	c.JSON(http.StatusOK, added)
}

func (r *Router) togglePurchased(c *gin.Context) {
	if err := r.list.TogglePurchased(householdID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, errJSON("Erro ao atualizar item"))
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) removeItem(c *gin.Context) {
	if err := r.list.Remove(householdID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, errJSON("Erro ao remover item"))
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) clearList(c *gin.Context) {
	if err := r.list.Clear(householdID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, errJSON("Erro ao limpar lista"))
		return
	}
	c.Status(http.StatusNoContent)
}
