package taxonomy

import "strings"

// Categorías digitales con lógica propia (no siguen el esquema genérico de
// substring): las suscripciones se resuelven con predicados combinados
// positivo/negativo, ver ClassifyDigital y el filter builder de postgres.
const (
	CategoryPrime              = "Prime Membership"
	CategoryParamount          = "Paramount+"
	CategoryStackTV            = "STACK TV"
	CategoryVideoStreaming     = "Video Streaming"
	CategoryOtherSubscriptions = "Other Subscriptions"
	CategoryOtherDigital       = "Other Digital"
)

// Retail devuelve la taxonomía de pedidos físicos. El orden del slice ES la
// precedencia: las categorías específicas (Baby & Kids, Pet Supplies, ...)
// van antes que las genéricas (Electronics, Home & Kitchen) porque comparten
// keywords; moverlas cambia la clasificación de los nombres ambiguos.
func Retail() Taxonomy {
	return New([]CategoryRule{
		{Category: "Baby & Kids", Keywords: []string{
			"car seat", "booster seat", "booster", "baby", "infant", "toddler", "stroller", "diaper",
		}},
		{Category: "Pet Supplies", Keywords: []string{
			"dog food", "cat food", "pet food", "chicken feed", "layer pellets", "layer pellet",
			"mixed grains scratch", "goat feed", "goat snax", "pet treat", "bully stick",
			"dog chew", "dog treat", "animal feed", "feed for", "dog chews",
		}},
		{Category: "Mobile Devices", Keywords: []string{
			"iphone", "ipad", "smartphone", "tablet", "apple watch", "smartwatch",
			"smart watch", "huawei watch", "samsung phone", "google pixel", "oura ring",
		}},
		{Category: "Photography", Keywords: []string{
			"lens", "canon ef", "canon ef-", "canon ef-m", "sigma", "photography",
			"dslr", "mirrorless", "camcorder", "vixia", "powershot", "eos",
			"viewfinder", "camera lens",
		}},
		{Category: "Gaming", Keywords: []string{
			"playstation", "nintendo", "xbox", "switch", "ps4", "ps5", "wii", "game console",
			"gamepad", "controller", "video game", "gaming",
		}},
		{Category: "Fitness Equipment", Keywords: []string{
			"elliptical", "treadmill", "walking pad", "exercise", "fitness", "gym",
			"weights", "yoga", "workout", "dumbbell",
		}},
		{Category: "Tools & Garden", Keywords: []string{
			"lawn mower", "lawn sweepr", "string trimmer", "chipper", "shredder",
			"fence", "mesh", "generator", "tool", "garden", "yard", "landscaping",
			"arborist", "utility cart", "garden cart",
		}},
		{Category: "Food & Groceries", Keywords: []string{
			"pancake mix", "food", "grocery", "ingredient", "spice", "seasoning",
		}},
		{Category: "Services", Keywords: []string{
			"hire", "service", "arborist",
		}},
		{Category: "Automotive", Keywords: []string{
			"truck", "vehicle", "automotive", "auto tire", "auto oil", "car tire", "car oil",
		}},
		{Category: "Electronics", Keywords: []string{
			"battery", "charger", "headphone", "earbud", "cable", "wireless", "led", "display", "screen",
			"monitor", "keyboard", "mouse", "router", "wifi", "ethernet", "speaker", "amplifier",
			"kindle", "e-reader", "chromebook", "laptop", "computer", "hard drive", "external drive",
			"smart lock", "smart home", "security camera", "nvr", "camera system",
		}},
		{Category: "Home & Kitchen", Keywords: []string{
			"cabinet", "organizer", "storage", "container", "mattress", "bedding",
			"curtain", "drape", "coffee maker", "coffee brewer", "nespresso",
			"moccamaster", "blender", "vitamix", "pasta maker", "smoker",
			"air conditioner", "vacuum", "roomba", "dyson", "air purifier",
			"hepa", "popcorn machine", "aerogarden", "chicken coop door",
		}},
		{Category: "Clothing", Keywords: []string{
			"shirt", "jacket", "hoodie", "pants", "dress", "shoes", "socks", "clothing", "apparel",
			"slipper", "boot", "sunglasses", "glasses", "rain jacket", "raincoat",
		}},
		{Category: "Beauty & Personal Care", Keywords: []string{
			"makeup", "cosmetic", "beauty", "skincare", "shampoo", "soap",
			"hair mask", "hair growth", "toothbrush", "sonicare", "oral-b",
			"laser hair", "jewelry polisher",
		}},
		{Category: "Sports & Outdoors", Keywords: []string{
			"sport", "outdoor", "camping", "hiking", "tent", "backpack", "paddle",
			"sup", "paddleboard", "volleyball", "badminton", "trampoline",
		}},
		{Category: "Toys & Games", Keywords: []string{
			"toy", "game", "lego", "puzzle", "board game", "building kit", "playset",
		}},
		{Category: "Health & Wellness", Keywords: []string{
			"vitamin", "supplement", "health", "wellness", "fitness", "electrolyte",
			"multivitamin", "gummy vitamin", "dna test", "23andme", "protein",
		}},
	})
}

// Digital devuelve la taxonomía de compras digitales NO suscritas (el brazo
// de suscripciones se resuelve antes, en ClassifyDigital).
func Digital() Taxonomy {
	return New([]CategoryRule{
		{Category: "Movies", Keywords: []string{"movie", "film"}},
		{Category: "Books & eBooks", Keywords: []string{"book", "kindle"}},
		{Category: "Music", Keywords: []string{"music", "song", "album"}},
		{Category: "Apps & Software", Keywords: []string{"app", "software"}},
		{Category: "Games", Keywords: []string{"game"}},
	})
}

// ClassifyDigital clasifica un ítem digital. Las suscripciones van primero:
// si el descriptor de suscripción o el nombre mencionan "subscription", se
// asigna al bucket de marca (Prime > Paramount+ > STACK TV > Video Streaming)
// o al residual de suscripciones. Si no es suscripción, aplica la taxonomía
// digital; sin match queda en Other Digital.
func ClassifyDigital(name, subscriptionInfo string, digital Taxonomy) string {
	lower := strings.ToLower(name)
	if strings.Contains(strings.ToLower(subscriptionInfo), "subscription") ||
		strings.Contains(lower, "subscription") {
		switch {
		case strings.Contains(lower, "prime"):
			return CategoryPrime
		case strings.Contains(lower, "paramount"):
			return CategoryParamount
		case strings.Contains(lower, "stacktv") || strings.Contains(lower, "stack tv"):
			return CategoryStackTV
		case strings.Contains(lower, "video") || strings.Contains(lower, "streaming"):
			return CategoryVideoStreaming
		default:
			return CategoryOtherSubscriptions
		}
	}
	if c := digital.Classify(name); c != CategoryOther {
		return c
	}
	return CategoryOtherDigital
}
