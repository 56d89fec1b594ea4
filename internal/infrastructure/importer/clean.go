package importer

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

// Las exportaciones usan estos centinelas en vez de celdas vacías; se
// normalizan a NULL para que los predicados de elegibilidad y los agregados
// no los cuenten como valores reales.
const (
	sentinelNotAvailable  = "Not Available"
	sentinelNotApplicable = "Not Applicable"
)

// CleanText normaliza una celda de texto: recorta espacios, aplica NFC y
// convierte vacíos y centinelas a nil.
func CleanText(value string) *string {
	s := strings.TrimSpace(value)
	if s == "" || s == sentinelNotAvailable || s == sentinelNotApplicable {
		return nil
	}
	s = norm.NFC.String(s)
	return &s
}

// CleanNumeric parsea una celda monetaria. Las exportaciones a veces escapan
// números con comilla simple ('12.99); se remueve antes de parsear. Celdas
// vacías, centinelas o no parseables quedan en nil, nunca en error: una celda
// corrupta no debe abortar la importación de la fila.
func CleanNumeric(value string) *decimal.Decimal {
	s := strings.TrimSpace(value)
	if s == "" || s == sentinelNotAvailable || s == sentinelNotApplicable {
		return nil
	}
	s = strings.ReplaceAll(s, "'", "")
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

// CleanInt parsea una celda de cantidad; ilegible o vacía vale 0.
func CleanInt(value string) int {
	d := CleanNumeric(value)
	if d == nil {
		return 0
	}
	return int(d.IntPart())
}
