package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazzuks/meu-menu/pkg/models"
	"github.com/mazzuks/meu-menu/pkg/storage"
)

func newTestCatalog(t *testing.T) (*Service, *storage.Store) {
	t.Helper()

	store, err := storage.New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return New(store, nil), store
}

func TestRecipesIncludesBuiltinsAndStored(t *testing.T) {
	svc, store := newTestCatalog(t)

	recipes, err := svc.Recipes()
	require.NoError(t, err)
	builtins := len(recipes)
	assert.GreaterOrEqual(t, builtins, 5)

	custom := models.Recipe{ID: "feijoada", Slug: "feijoada", Title: "Feijoada"}
	require.NoError(t, store.Set("recipe:feijoada", custom))

	recipes, err = svc.Recipes()
	require.NoError(t, err)
	assert.Len(t, recipes, builtins+1)
}

func TestBySlug(t *testing.T) {
	svc, store := newTestCatalog(t)

	recipe, err := svc.BySlug("pizza-margherita")
	require.NoError(t, err)
	assert.Equal(t, "Pizza Margherita", recipe.Title)

	_, err = svc.BySlug("feijoada")
	assert.Error(t, err)

	require.NoError(t, store.Set("recipe:feijoada", models.Recipe{ID: "feijoada", Slug: "feijoada", Title: "Feijoada"}))
	recipe, err = svc.BySlug("feijoada")
	require.NoError(t, err)
	assert.Equal(t, "Feijoada", recipe.Title)
}

func TestSearchByTitleAndTag(t *testing.T) {
	svc, _ := newTestCatalog(t)

	found, err := svc.Search("caprese")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "salada-caprese", found[0].Slug)

	found, err = svc.Search("Sopa")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "sopa-abobora", found[0].Slug)
}

func TestSearchByIngredientWithAlias(t *testing.T) {
	svc, _ := newTestCatalog(t)

	// "tomates" resolves to "tomate" and matches every recipe using it
	found, err := svc.Search("tomates")
	require.NoError(t, err)

	slugs := make([]string, 0, len(found))
	for _, r := range found {
		slugs = append(slugs, r.Slug)
	}
	assert.Contains(t, slugs, "salada-caprese")
	assert.Contains(t, slugs, "pizza-margherita")
}

func TestSearchEmptyQuery(t *testing.T) {
	svc, _ := newTestCatalog(t)

	found, err := svc.Search("   ")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestEnsureWithoutAI(t *testing.T) {
	svc, _ := newTestCatalog(t)

	recipe, err := svc.Ensure("Pizza Margherita")
	require.NoError(t, err)
	assert.Equal(t, "pizza-margherita", recipe.Slug)

	_, err = svc.Ensure("Feijoada Completa")
	assert.Error(t, err)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "pizza-margherita", Slugify("Pizza Margherita"))
	assert.Equal(t, "sopa-de-abobora", Slugify("Sopa de Abóbora"))
	assert.Equal(t, "pao-de-queijo", Slugify("Pão de Queijo"))
}
