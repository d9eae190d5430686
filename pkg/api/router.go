// Package api exposes the pantry, shopping list and suggestion engine over
// REST, mirroring the thin endpoints of the mobile app.
package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/mazzuks/meu-menu/pkg/catalog"
	"github.com/mazzuks/meu-menu/pkg/pantry"
	"github.com/mazzuks/meu-menu/pkg/shoppinglist"
)

// Router wires the HTTP handlers to their services
type Router struct {
	engine  *gin.Engine
	pantry  *pantry.Service
	list    *shoppinglist.Service
	catalog *catalog.Service

	suggestionLimit int
}

// NewRouter builds the gin engine with every route registered
func NewRouter(pantrySvc *pantry.Service, listSvc *shoppinglist.Service, catalogSvc *catalog.Service, suggestionLimit int) *Router {
	r := &Router{
		engine:          gin.Default(),
		pantry:          pantrySvc,
		list:            listSvc,
		catalog:         catalogSvc,
		suggestionLimit: suggestionLimit,
	}

	api := r.engine.Group("/api")
	{
		api.GET("/health", r.health)

		api.GET("/receitas", r.listRecipes)
		api.GET("/receitas/busca", r.searchRecipes)
		api.GET("/receitas/:slug", r.getRecipe)

		api.GET("/sugestoes", r.suggestions)

		api.GET("/despensa", r.listStock)
		api.POST("/despensa", r.addStock)
		api.DELETE("/despensa", r.clearStock)
		api.DELETE("/despensa/:id", r.removeStock)
		api.POST("/despensa/preparar/:slug", r.applyRecipe)

		api.GET("/lista", r.listItems)
		api.GET("/lista/consolidada", r.consolidated)
		api.POST("/lista", r.addItem)
		api.POST("/lista/receita/:slug", r.addRecipeToList)
		api.POST("/lista/completar", r.completeForRecipes)
		api.PATCH("/lista/:id/comprar", r.togglePurchased)
		api.DELETE("/lista/:id", r.removeItem)
		api.DELETE("/lista", r.clearList)
	}

	return r
}

// Run starts the HTTP server
func (r *Router) Run(port int) error {
	return r.engine.Run(fmt.Sprintf(":%d", port))
}

// Engine exposes the underlying gin engine, mainly for tests
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
