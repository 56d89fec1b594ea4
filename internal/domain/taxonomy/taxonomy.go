// Package taxonomy implementa la clasificación de productos por palabras clave.
//
// Una Taxonomy es una lista ORDENADA de reglas; el orden define la precedencia:
// el producto se asigna a la PRIMERA regla cuyo conjunto de keywords contenga
// algún substring del nombre (case-insensitive). Una regla posterior nunca
// desplaza a una anterior, aunque su keyword sea más larga o más específica.
// Esa precedencia posicional es un invariante de diseño, no un accidente de
// iteración: varias keywords se repiten entre categorías (ej. "game" aparece
// en Gaming y en Toys & Games) y el resultado depende de la posición.
//
// El matching es contención de substring, sin tokenizar ni respetar límites de
// palabra. Eso produce falsos positivos conocidos ("cable" matchea dentro de
// "battery cable" a propósito, pero también dentro de palabras no relacionadas
// más largas); es una heurística aceptada, no una garantía de precisión, y se
// conserva tal cual por compatibilidad con los datos ya clasificados.
package taxonomy

import "strings"

// CategoryOther es la categoría residual: acumula todo registro que no matchea
// ninguna regla, para que los totales de los reportes sigan siendo completos.
const CategoryOther = "Other"

// CategoryRule una categoría y sus keywords (substrings en minúsculas).
type CategoryRule struct {
	Category string
	Keywords []string
}

// Taxonomy secuencia ordenada e inmutable de reglas de categoría.
// Se construye una sola vez en el arranque y se comparte por referencia entre
// el clasificador y el constructor de filtros; nunca se muta después.
type Taxonomy struct {
	rules []CategoryRule
}

// New construye una Taxonomy a partir de reglas en orden de precedencia.
// Las keywords se normalizan a minúsculas una sola vez.
func New(rules []CategoryRule) Taxonomy {
	owned := make([]CategoryRule, len(rules))
	for i, r := range rules {
		kws := make([]string, len(r.Keywords))
		for j, kw := range r.Keywords {
			kws[j] = strings.ToLower(kw)
		}
		owned[i] = CategoryRule{Category: r.Category, Keywords: kws}
	}
	return Taxonomy{rules: owned}
}

// Rules devuelve las reglas en orden de precedencia (copia defensiva no
// necesaria: los llamadores del paquete no mutan el slice).
func (t Taxonomy) Rules() []CategoryRule {
	return t.rules
}

// Rule busca la regla de una categoría por nombre exacto.
func (t Taxonomy) Rule(category string) (CategoryRule, bool) {
	for _, r := range t.rules {
		if r.Category == category {
			return r, true
		}
	}
	return CategoryRule{}, false
}

// AllKeywords devuelve todas las keywords de todas las reglas, en orden.
// Es la base del predicado complemento: "no matchea NINGUNA keyword de la
// taxonomía" materializa el bucket Other como filtro listable.
func (t Taxonomy) AllKeywords() []string {
	var all []string
	for _, r := range t.rules {
		all = append(all, r.Keywords...)
	}
	return all
}

// Classify asigna el nombre de producto a la primera regla con match.
// Nombres vacíos o en blanco van a Other; nunca falla.
func (t Taxonomy) Classify(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return CategoryOther
	}
	for _, r := range t.rules {
		for _, kw := range r.Keywords {
			if strings.Contains(lower, kw) {
				return r.Category
			}
		}
	}
	return CategoryOther
}

// Matches indica si el nombre matchea alguna keyword de alguna regla.
func (t Taxonomy) Matches(name string) bool {
	return t.Classify(name) != CategoryOther
}
