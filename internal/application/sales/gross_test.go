package sales

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrossFromNotes(t *testing.T) {
	cases := []struct {
		name  string
		notes string
		want  string
		found bool
	}{
		{"pagado_bruto", "venta normal pagado_bruto=118.00", "118.00", true},
		{"pago_bruto", "pago_bruto=50", "50", true},
		{"importe con prefijo de moneda", "importe = S/ 236.50", "236.50", true},
		{"gross en inglés", "GROSS=99.9", "99.90", true},
		{"amount_paid", "amount_paid=12.345", "12.35", true},
		{"mayúsculas en la clave", "PAGADO_BRUTO=75", "75", true},
		{"espacios alrededor del igual", "pagado_bruto  =  80.5", "80.50", true},
		{"sin token", "venta al contado sin nada especial", "", false},
		{"token incompleto", "pagado_bruto=", "", false},
		{"clave parecida pero distinta", "subpagado_bruto=10", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := grossFromNotes(tc.notes)
			require.Equal(t, tc.found, ok)
			if tc.found {
				assert.True(t, got.Equal(mustDec(tc.want)), "esperado %s, fue %s", tc.want, got)
			}
		})
	}
}

func TestResolveGrossAmountPrecedence(t *testing.T) {
	structured := mustDec("118.00")
	final := mustDec("100.00")

	// El campo estructurado manda sobre el token en notes.
	got := resolveGrossAmount(&structured, "pagado_bruto=999", final)
	assert.True(t, got.Equal(structured))

	// Sin campo estructurado, gana el token de notes.
	got = resolveGrossAmount(nil, "pagado_bruto=118.00", final)
	assert.True(t, got.Equal(structured))

	// Sin ninguno, fallback al monto final.
	got = resolveGrossAmount(nil, "sin token", final)
	assert.True(t, got.Equal(final))

	// Un estructurado en cero se ignora.
	zero := decimal.Zero
	got = resolveGrossAmount(&zero, "", final)
	assert.True(t, got.Equal(final))
}

func mustDec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
