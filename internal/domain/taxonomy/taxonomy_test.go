package taxonomy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/domain/taxonomy"
)

// ──────────────────────────────────────────────────────────────────────────────
// Clasificación retail
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_CasosBase(t *testing.T) {
	tax := taxonomy.Retail()

	assert.Equal(t, "Electronics", tax.Classify("USB-C Cable 2m"))
	assert.Equal(t, "Electronics", tax.Classify("Kindle Paperwhite"), "kindle es keyword de Electronics en retail")
	assert.Equal(t, "Home & Kitchen", tax.Classify("Nespresso Vertuo"))
	assert.Equal(t, "Mobile Devices", tax.Classify("iPhone 15 Pro Case")) // "iphone" gana antes que cualquier genérica
}

func TestClassify_MatchCaseInsensitive(t *testing.T) {
	tax := taxonomy.Retail()

	assert.Equal(t, tax.Classify("CANON EF 50mm Lens"), tax.Classify("canon ef 50mm lens"))
	assert.Equal(t, "Photography", tax.Classify("CANON EF 50mm Lens"))
}

func TestClassify_PrecedenciaPosicional(t *testing.T) {
	tax := taxonomy.Retail()

	// "game" aparece en Gaming y en Toys & Games; gana la regla anterior.
	assert.Equal(t, "Gaming", tax.Classify("Board game console adapter"),
		"Gaming precede a Toys & Games en el orden de reglas")
	// Sin keyword de Gaming, el mismo "game" cae en Toys & Games.
	assert.Equal(t, "Toys & Games", tax.Classify("Family board game night set"))

	// "fitness" aparece en Fitness Equipment y en Health & Wellness.
	assert.Equal(t, "Fitness Equipment", tax.Classify("Fitness tracker band"))
}

func TestClassify_TaxonomiaMinima(t *testing.T) {
	// El contrato de precedencia no depende de las tablas por defecto: con dos
	// reglas arbitrarias el comportamiento es el mismo.
	tax := taxonomy.New([]taxonomy.CategoryRule{
		{Category: "Electronics", Keywords: []string{"cable"}},
		{Category: "Books", Keywords: []string{"kindle"}},
	})

	assert.Equal(t, "Electronics", tax.Classify("USB Cable"))
	assert.Equal(t, "Books", tax.Classify("Kindle Book"))
	assert.Equal(t, taxonomy.CategoryOther, tax.Classify("Mystery Widget"))
}

func TestClassify_SinMatchVaAOther(t *testing.T) {
	tax := taxonomy.Retail()

	assert.Equal(t, taxonomy.CategoryOther, tax.Classify("Paquete misterioso"))
	assert.Equal(t, taxonomy.CategoryOther, tax.Classify(""))
	assert.Equal(t, taxonomy.CategoryOther, tax.Classify("   "))
}

func TestClassify_Determinista(t *testing.T) {
	tax := taxonomy.Retail()

	// Mismo nombre, misma categoría, siempre: la precedencia es posicional y
	// la taxonomía es inmutable.
	name := "Wireless gaming controller with battery pack"
	first := tax.Classify(name)
	for range 50 {
		assert.Equal(t, first, tax.Classify(name))
	}
}

func TestClassify_ParticionCompleta(t *testing.T) {
	tax := taxonomy.Retail()

	// Todo nombre cae en exactamente una categoría; la suma de buckets
	// reproduce el universo.
	names := []string{
		"Echo Dot", "Dog food 20kg", "Camera lens cap", "Garden hose",
		"Vitamin D3", "Rain jacket", "", "xyzzy",
	}
	for _, n := range names {
		cat := tax.Classify(n)
		assert.NotEmpty(t, cat, "nombre %q debe clasificar en alguna categoría", n)
	}
}

func TestRuleYAllKeywords(t *testing.T) {
	tax := taxonomy.Retail()

	rule, ok := tax.Rule("Pet Supplies")
	require.True(t, ok)
	assert.Contains(t, rule.Keywords, "dog food")

	_, ok = tax.Rule("No Existe")
	assert.False(t, ok)

	// AllKeywords concatena las keywords de todas las reglas en orden.
	var total int
	for _, r := range tax.Rules() {
		total += len(r.Keywords)
	}
	assert.Len(t, tax.AllKeywords(), total)
}

// ──────────────────────────────────────────────────────────────────────────────
// Clasificación digital
// ──────────────────────────────────────────────────────────────────────────────

func TestClassifyDigital_SuscripcionesPrimero(t *testing.T) {
	digital := taxonomy.Digital()

	// El brazo de suscripciones gana aunque el nombre tenga keyword de
	// contenido: una suscripción de video no es una película.
	assert.Equal(t, taxonomy.CategoryPrime,
		taxonomy.ClassifyDigital("Amazon Prime Monthly", "Subscription renewal", digital))
	assert.Equal(t, taxonomy.CategoryParamount,
		taxonomy.ClassifyDigital("Paramount+ subscription", "", digital))
	assert.Equal(t, taxonomy.CategoryStackTV,
		taxonomy.ClassifyDigital("STACK TV subscription", "", digital))
	assert.Equal(t, taxonomy.CategoryVideoStreaming,
		taxonomy.ClassifyDigital("Video streaming subscription", "", digital))
	assert.Equal(t, taxonomy.CategoryOtherSubscriptions,
		taxonomy.ClassifyDigital("Audible membership", "Subscription monthly", digital))
}

func TestClassifyDigital_PrecedenciaDeMarcas(t *testing.T) {
	digital := taxonomy.Digital()

	// Prime gana sobre Video Streaming aunque el nombre contenga "video".
	assert.Equal(t, taxonomy.CategoryPrime,
		taxonomy.ClassifyDigital("Prime Video subscription", "", digital))
	// Paramount gana sobre Video Streaming.
	assert.Equal(t, taxonomy.CategoryParamount,
		taxonomy.ClassifyDigital("Paramount+ streaming subscription", "", digital))
}

func TestClassifyDigital_Contenido(t *testing.T) {
	digital := taxonomy.Digital()

	assert.Equal(t, "Movies", taxonomy.ClassifyDigital("The Matrix (movie)", "", digital))
	assert.Equal(t, "Books & eBooks", taxonomy.ClassifyDigital("Kindle Edition: Dune", "", digital))
	assert.Equal(t, "Music", taxonomy.ClassifyDigital("Greatest Hits Album", "", digital))
	assert.Equal(t, "Apps & Software", taxonomy.ClassifyDigital("Photo editing software", "", digital))
	assert.Equal(t, "Games", taxonomy.ClassifyDigital("Puzzle game deluxe", "", digital))
	assert.Equal(t, taxonomy.CategoryOtherDigital, taxonomy.ClassifyDigital("Gift card", "", digital))
}
