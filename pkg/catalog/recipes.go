package catalog

import "github.com/mazzuks/meu-menu/pkg/models"

// builtinRecipes is the static catalog shipped with the app.
var builtinRecipes = []models.Recipe{
	{
		ID:          "1",
		Slug:        "pizza-margherita",
		Title:       "Pizza Margherita",
		Description: "Pizza clássica italiana com molho de tomate, mussarela e manjericão fresco",
		Image:       "https://images.pexels.com/photos/315755/pexels-photo-315755.jpeg?auto=compress&cs=tinysrgb&w=800",
		PrepTime:    45,
		Difficulty:  models.DifficultyMedium,
		Servings:    4,
		Category:    "Italiana",
		Tags:        []string{"pizza", "italiana", "vegetariana"},
		Ingredients: []models.Ingredient{
			{ID: "1", Name: "Massa de pizza", Amount: "1", Unit: "unidade"},
			{ID: "2", Name: "Molho de tomate", Amount: "200", Unit: "ml"},
			{ID: "3", Name: "Mussarela", Amount: "200", Unit: "g"},
			{ID: "4", Name: "Manjericão fresco", Amount: "10", Unit: "folhas"},
			{ID: "5", Name: "Azeite", Amount: "2", Unit: "colheres de sopa"},
		},
		Instructions: []string{
			"Pré-aqueça o forno a 220°C",
			"Abra a massa de pizza em uma forma untada",
			"Espalhe o molho de tomate uniformemente",
			"Adicione a mussarela por toda a pizza",
			"Leve ao forno por 15-20 minutos até dourar",
			"Retire do forno e adicione o manjericão fresco",
			"Regue com azeite e sirva quente",
		},
		Nutrition: &models.Nutrition{Calories: 280, Protein: 12, Carbs: 35, Fat: 8},
	},
	{
		ID:          "2",
		Slug:        "sopa-abobora",
		Title:       "Sopa de Abóbora",
		Description: "Sopa cremosa e nutritiva de abóbora com gengibre",
		Image:       "https://images.pexels.com/photos/539451/pexels-photo-539451.jpeg?auto=compress&cs=tinysrgb&w=800",
		PrepTime:    30,
		Difficulty:  models.DifficultyEasy,
		Servings:    4,
		Category:    "Brasileira",
		Tags:        []string{"sopa", "saudável", "vegetariana"},
		Ingredients: []models.Ingredient{
			{ID: "1", Name: "Abóbora", Amount: "500", Unit: "g"},
			{ID: "2", Name: "Cebola", Amount: "1", Unit: "unidade"},
			{ID: "3", Name: "Gengibre", Amount: "1", Unit: "cm"},
			{ID: "4", Name: "Creme de leite", Amount: "200", Unit: "ml"},
			{ID: "5", Name: "Azeite", Amount: "1", Unit: "colher de sopa"},
		},
		Instructions: []string{
			"Descasque e corte a abóbora em cubos",
			"Refogue a cebola e o gengibre no azeite",
			"Adicione a abóbora e cubra com água",
			"Cozinhe por 20 minutos até amolecer",
			"Bata tudo no liquidificador",
			"Volte à panela, junte o creme de leite e acerte o sal",
		},
		Nutrition: &models.Nutrition{Calories: 160, Protein: 3, Carbs: 18, Fat: 9},
	},
	{
		ID:          "3",
		Slug:        "strogonoff-de-frango",
		Title:       "Strogonoff de Frango",
		Description: "Strogonoff cremoso de frango com champignon, servido com arroz e batata palha",
		Image:       "https://images.pexels.com/photos/6210747/pexels-photo-6210747.jpeg?auto=compress&cs=tinysrgb&w=800",
		PrepTime:    40,
		Difficulty:  models.DifficultyEasy,
		Servings:    4,
		Category:    "Brasileira",
		Tags:        []string{"frango", "cremoso", "almoço"},
		Ingredients: []models.Ingredient{
			{ID: "1", Name: "Peito de frango", Amount: "500", Unit: "g"},
			{ID: "2", Name: "Creme de leite", Amount: "200", Unit: "ml"},
			{ID: "3", Name: "Champignon", Amount: "100", Unit: "g"},
			{ID: "4", Name: "Cebola", Amount: "1", Unit: "unidade"},
			{ID: "5", Name: "Molho de tomate", Amount: "3", Unit: "colheres de sopa"},
			{ID: "6", Name: "Batata palha", Amount: "100", Unit: "g"},
		},
		Instructions: []string{
			"Corte o frango em cubos e tempere com sal e pimenta",
			"Refogue a cebola até dourar",
			"Junte o frango e frite até cozinhar",
			"Adicione o champignon e o molho de tomate",
			"Desligue o fogo e misture o creme de leite",
			"Sirva com arroz branco e batata palha",
		},
		Nutrition: &models.Nutrition{Calories: 420, Protein: 32, Carbs: 22, Fat: 21},
	},
	{
		ID:          "4",
		Slug:        "salada-caprese",
		Title:       "Salada Caprese",
		Description: "Salada italiana de tomate, mussarela de búfala e manjericão",
		Image:       "https://images.pexels.com/photos/1213710/pexels-photo-1213710.jpeg?auto=compress&cs=tinysrgb&w=800",
		PrepTime:    10,
		Difficulty:  models.DifficultyEasy,
		Servings:    2,
		Category:    "Italiana",
		Tags:        []string{"salada", "italiana", "vegetariana", "rápida"},
		Ingredients: []models.Ingredient{
			{ID: "1", Name: "Tomate", Amount: "2", Unit: "unidades"},
			{ID: "2", Name: "Mussarela de búfala", Amount: "200", Unit: "g"},
			{ID: "3", Name: "Manjericão fresco", Amount: "8", Unit: "folhas"},
			{ID: "4", Name: "Azeite", Amount: "2", Unit: "colheres de sopa"},
		},
		Instructions: []string{
			"Fatie os tomates e a mussarela",
			"Intercale as fatias em um prato",
			"Distribua as folhas de manjericão",
			"Regue com azeite, sal e pimenta-do-reino",
		},
		Nutrition: &models.Nutrition{Calories: 310, Protein: 18, Carbs: 6, Fat: 24},
	},
	{
		ID:          "5",
		Slug:        "omelete-de-queijo",
		Title:       "Omelete de Queijo",
		Description: "Omelete simples e rápida para aproveitar ovos e queijo da geladeira",
		Image:       "https://images.pexels.com/photos/6294361/pexels-photo-6294361.jpeg?auto=compress&cs=tinysrgb&w=800",
		PrepTime:    10,
		Difficulty:  models.DifficultyEasy,
		Servings:    1,
		Category:    "Brasileira",
		Tags:        []string{"café da manhã", "rápida", "vegetariana"},
		Ingredients: []models.Ingredient{
			{ID: "1", Name: "Ovo", Amount: "3", Unit: "unidades"},
			{ID: "2", Name: "Queijo", Amount: "50", Unit: "g"},
			{ID: "3", Name: "Cebolinha", Amount: "1", Unit: "colher de sopa"},
			{ID: "4", Name: "Manteiga", Amount: "1", Unit: "colher de sopa"},
		},
		Instructions: []string{
			"Bata os ovos com sal e a cebolinha picada",
			"Derreta a manteiga em frigideira antiaderente",
			"Despeje os ovos e cozinhe em fogo baixo",
			"Adicione o queijo, dobre ao meio e sirva",
		},
		Nutrition: &models.Nutrition{Calories: 380, Protein: 24, Carbs: 3, Fat: 30},
	},
}
