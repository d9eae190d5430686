package aliases

// defaultTable maps each main ingredient to its known synonyms and
// variations. Keys and aliases are lowercase Portuguese.
var defaultTable = map[string][]string{
	// Grãos e cereais
	"arroz branco":       {"arroz", "arroz cozido", "arroz quente"},
	"arroz arbório":      {"arroz arboreo"},
	"arroz basmati":      {},
	"arroz glutinoso":    {"arroz doce", "arroz pegajoso"},
	"arroz jasmine":      {"arroz jasmim"},
	"arroz selvagem":     {"wild rice"},
	"arroz sushi":        {"arroz japonês", "arroz para sushi"},
	"farinha de arroz":   {"farinha arroz"},
	"farinha de milho":   {"farinha milho", "fubá"},
	"farinha de trigo":   {"farinha trigo", "farinha comum"},
	"farinha 00":         {"farinha italiana", "farinha tipo 00"},
	"farinha integral":   {"farinha de trigo integral"},
	"farinha de rosca":   {"farinha rosca", "panko"},
	"milho":              {"espigas milho", "chalas milho", "chalas de milho", "pipoca", "milho verde"},
	"macarrão de arroz":  {"macarrão arroz", "rice noodles"},
	"macarrão de trigo":  {"macarrão trigo", "pasta"},
	"macarrão ramen":     {"ramen noodles"},
	"macarrão udon":      {"udon noodles"},
	"macarrão vermicelli": {"vermicelli"},
	"aveia":              {"aveia em flocos", "oats"},
	"quinoa":             {"quinua"},
	"cevada":             {"malte cevada", "malte de cevada"},
	"cuscuz":             {"cuscuz marroquino", "couscous"},
	"polenta":            {"fubá grosso"},
	"semolina":           {"sêmola", "farinha de sêmola"},
	"tapioca":            {"goma de tapioca", "fécula de mandioca"},
	"polvilho":           {"polvilho doce", "polvilho azedo"},

	// Massas específicas
	"massa de pizza":   {"massa pizza", "disco de pizza"},
	"massa de lasanha": {"massa lasanha", "folhas de lasanha"},
	"massa folhada":    {"massa folhada pronta"},
	"massa filo":       {"massa phyllo", "filo pastry"},

	// Pães e bases
	"pão francês":        {"pão de sal", "pãozinho"},
	"pão de forma":       {"pão forma", "pão de sanduíche"},
	"pão integral":       {"pão de forma integral"},
	"pão pita":           {"pita bread"},
	"tortillas de milho": {"tortillas milho", "tortilla"},
	"tortillas de trigo": {"tortillas trigo", "flour tortillas"},
	"naan":               {"pão naan", "naan bread"},
	"chapati":            {"roti"},

	// Cereais matinais e sementes
	"granola":    {"granola caseira"},
	"cornflakes": {"flocos de milho"},
	"chia":       {"semente de chia"},
	"linhaça":    {"semente de linhaça"},
	"gergelim":   {"semente de gergelim", "tahine"},
	"girassol":   {"semente de girassol"},

	// Hortifruti
	"abacate":     {"abacate maduro"},
	"abacaxi":     {},
	"abobrinha":   {},
	"abóbora":     {},
	"aipo":        {},
	"alface":      {},
	"alho":        {"alho em pó", "alho negro"},
	"banana":      {},
	"batata":      {"batata doce", "batata inglesa", "batata cozida", "batata média cozida"},
	"berinjela":   {},
	"beterraba":   {},
	"brócolis":    {"brócolis ninja"},
	"cebola":      {"cebola branca", "cebola média", "cebola pequena"},
	"cebola roxa": {},
	"cebolinha":   {"cebolinha verde", "cebolinha fresca"},
	"cenoura":     {},
	"coentro":     {"coentro fresco", "sementes de coentro"},
	"cogumelo":    {"cogumelos", "cogumelo paris", "cogumelo shiitake", "cogumelo shimeji"},
	"champignon":  {},
	"couve":       {"couve manteiga"},
	"couve-flor":  {},
	"ervilha":     {"ervilhas frescas", "ervilhas congeladas"},
	"espinafre":   {},
	"figo":        {},
	"goiaba":      {},
	"jiló":        {},
	"kiwi":        {},
	"limão":       {"limão siciliano", "limão taiti"},
	"maçã":        {"maçã verde", "maçã fuji", "maçã gala"},
	"maracujá":    {},
	"melancia":    {},
	"melão":       {},
	"nabo":        {},
	"palmito":     {},
	"pepino":      {"pepino japonês"},
	"pera":        {},
	"pimentão":    {"pimentão vermelho", "pimentão amarelo", "pimentão verde"},
	"quiabo":      {},
	"rabanete":    {},
	"repolho":     {"repolho roxo", "repolho branco"},
	"rúcula":      {},
	"salsão":      {},
	"tangerina":   {},
	"tomate":      {"tomates", "tomate italiano", "tomate cereja", "tomate grape"},
	"uva":         {"uvas verdes", "uvas roxas"},
	"uva passa":   {"passas", "uvas passas"},

	// Ervas e temperos
	"alecrim":     {"alecrim fresco"},
	"açafrão":     {},
	"canela":      {"canela em pó", "canela em rama"},
	"curry":       {},
	"ervas finas": {},
	"estragão":    {},
	"gengibre":    {"gengibre fresco", "gengibre em pó"},
	"hortelã":     {"hortelã fresca"},
	"louro":       {"folha de louro"},
	"manjericão":  {"manjericão fresco", "manjericão seco"},
	"manjerona":   {},
	"menta":       {},
	"noz-moscada": {},
	"páprica":     {"páprica doce", "páprica picante"},
	"pimenta":     {"pimenta preta", "pimenta-do-reino", "pimenta calabresa"},
	"sálvia":      {},
	"salsinha":    {"salsa", "salsa fresca"},
	"tomilho":     {"tomilho fresco", "tomilho seco"},

	// Açougue e peixaria
	"acém":           {"acém bovino"},
	"atum sashimi":   {},
	"bacalhau":       {},
	"bacon":          {},
	"camarão":        {"camarão seco", "camarão fresco"},
	"camarões":       {},
	"carne moída":    {"carne bovina moída", "carne moida"},
	"carne seca":     {},
	"carneiro":       {},
	"chouriço":       {},
	"file de frango": {"peito de frango"},
	"file mignon":    {"filé mignon"},
	"frango":         {"frango inteiro", "peito de frango", "sobrecoxa de frango", "coxa de frango"},
	"lagosta":        {},
	"linguiça":       {"linguiça calabresa", "linguiça toscana"},
	"marisco":        {},
	"mexilhão":       {},
	"peixe":          {"peixe branco", "peixe grelhado", "peixe assado"},
	"peru":           {"peito de peru", "peru assado"},
	"presunto":       {"presunto cru", "presunto cozido", "presunto parma"},
	"sardinha":       {},
	"serrano":        {"presunto serrano"},
	"siri":           {},
	"torresmo":       {},

	// Laticínios e ovos
	"cheddar":        {},
	"creme de leite": {"nata", "creme leite fresco"},
	"crème fraîche":  {},
	"manteiga":       {"manteiga com sal", "manteiga sem sal"},
	"margarina":      {"margarina vegetal"},
	"ovo":            {"ovo caipira", "ovo de galinha", "ovo para recheio"},
	"ovo cozido":     {},
	"ovo mexido":     {},
	"queijo": {
		"queijo parmesão",
		"queijo mussarela",
		"queijo gorgonzola",
		"queijo minas",
		"queijo prato",
		"queijo brie",
		"queijo cheddar",
	},
	"ricota":  {},
	"yogurte": {"iogurte", "iogurte natural", "iogurte grego", "iogurte integral"},

	// Mercearia
	"açúcar": {
		"açúcar cristal",
		"açúcar de confeiteiro",
		"açúcar de palma",
		"açúcar escuro",
		"açúcar mascavo",
		"açúcar palma",
		"açúcar para caramelo",
		"açúcar para polvilhar",
	},
	"açúcar branco":      {"açúcar refinado", "açucar refinado", "açúcar cristal fino"},
	"açúcar mascavo":     {"açucar mascavo", "açúcar marrom"},
	"alcaparras":         {},
	"amendoim":           {"amendoim moído", "amendoim torrado"},
	"amido":              {"amido batata doce"},
	"azeite":             {"azeite de oliva", "azeite extra virgem"},
	"azeitona":           {"azeitona verde"},
	"azeitonas":          {"azeitonas kalamata", "azeitonas verdes"},
	"batata palha":       {},
	"croutons":           {},
	"feijão":             {"feijão preto", "feijão carioca", "feijão branco", "feijão manteiga"},
	"lata de milho":      {},
	"lata de tomate":     {"molho de tomate", "tomate pelado"},
	"lentilha":           {"lentilhas"},
	"levedura":           {},
	"maionese":           {},
	"mel":                {"melado"},
	"molho inglês":       {},
	"molho shoyu":        {"shoyu", "molho de soja"},
	"mostarda":           {"mostarda dijon", "mostarda amarela"},
	"nozes":              {"noz pecã", "pecã", "nozes pecã"},
	"pasta de amendoim":  {},
	"pasta de gergelim":  {"tahine", "tahini"},
	"picles":             {},
	"pinoli":             {},
	"pistache":           {},
	"rapadura":           {},
	"sal refinado":       {"sal de cozinha", "sal comum"},
	"sal grosso":         {"sal churrasco", "sal parrilla"},
	"soja":               {},
	"sopa miso":          {"missoshiru"},
	"suco de laranja":    {},
	"suco de limão":      {},
	"tamarindo":          {},
	"vinagre":            {"vinagre de vinho", "vinagre branco", "vinagre de maçã"},

	// Padaria
	"pão":      {"pão francês", "pão integral", "pão de forma"},
	"pão sírio": {"pão pita"},

	// Bebidas e outros
	"saquê":       {"sakê"},
	"saquê mirin": {"mirin"},
	"vinho branco": {},
	"vinho tinto":  {},
	"vodka":        {},
	"whisky":       {},
	"wasabi":       {},
}
