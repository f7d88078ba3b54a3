package sales

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// Token legado en notes para enviar el monto bruto (con IGV) fuera del total
// contable: pagado_bruto=118.00, gross=118, importe=S/ 118.00, etc.
var grossNotePattern = regexp.MustCompile(`(?i)\b(?:pagado_bruto|pago_bruto|importe|gross|amount_paid)\s*=\s*(?:S/\s*)?([0-9]+(?:\.[0-9]+)?)`)

// grossFromNotes extrae el monto bruto embebido en notes, si existe.
func grossFromNotes(notes string) (decimal.Decimal, bool) {
	m := grossNotePattern.FindStringSubmatch(notes)
	if m == nil {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(m[1])
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d.Round(2), true
}

// resolveGrossAmount decide el monto a usar en el crédito o pago derivado:
// campo estructurado gross_amount primero, luego el token legado en notes,
// y como fallback el monto final (neto) de la venta.
func resolveGrossAmount(structured *decimal.Decimal, notes string, finalAmount decimal.Decimal) decimal.Decimal {
	if structured != nil && structured.GreaterThan(decimal.Zero) {
		return structured.Round(2)
	}
	if g, ok := grossFromNotes(notes); ok {
		return g
	}
	return finalAmount
}
