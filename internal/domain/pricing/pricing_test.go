package pricing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grifosol/grifo-api/internal/domain/pricing"
)

func at(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04", value)
	require.NoError(t, err)
	return ts
}

func TestCalculate_TurnoMananaSinRecargos(t *testing.T) {
	// Miércoles 10:00: turno mañana x1.0, sin rango horario.
	res := pricing.Calculate(pricing.DefaultRules(), decimal.NewFromInt(100), "morning", at(t, "2025-03-12 10:00"))
	assert.True(t, res.FinalPrice.Equal(decimal.NewFromInt(100)), "final=%s", res.FinalPrice)
	assert.True(t, res.ShiftMultiplier.Equal(decimal.NewFromInt(1)))
	assert.True(t, res.TimeMultiplier.Equal(decimal.NewFromInt(1)))
}

func TestCalculate_TurnoNocheEnHoraPico(t *testing.T) {
	// Miércoles 19:30: turno noche x1.10 y hora pico x1.08 -> 100 * 1.10 * 1.08 = 118.80
	res := pricing.Calculate(pricing.DefaultRules(), decimal.NewFromInt(100), "night", at(t, "2025-03-12 19:30"))
	want, _ := decimal.NewFromString("118.80")
	assert.True(t, res.FinalPrice.Equal(want), "final=%s", res.FinalPrice)
	assert.Len(t, res.AppliedRules, 2)
}

func TestCalculate_FinDeSemanaPisaTurnoMenor(t *testing.T) {
	// Sábado: el piso weekend (1.15) supera al turno tarde (1.05).
	res := pricing.Calculate(pricing.DefaultRules(), decimal.NewFromInt(200), "afternoon", at(t, "2025-03-15 12:00"))
	want, _ := decimal.NewFromString("1.15")
	assert.True(t, res.ShiftMultiplier.Equal(want))
	assert.True(t, res.FinalPrice.Equal(decimal.NewFromInt(230)))
}

func TestCalculate_MadrugadaConDescuento(t *testing.T) {
	// Lunes 06:30: turno mañana x1.0, madrugada x0.95.
	res := pricing.Calculate(pricing.DefaultRules(), decimal.NewFromInt(80), "morning", at(t, "2025-03-10 06:30"))
	want, _ := decimal.NewFromString("76.00")
	assert.True(t, res.FinalPrice.Equal(want), "final=%s", res.FinalPrice)
}

func TestCalculate_TurnoDesconocidoNoMultiplica(t *testing.T) {
	res := pricing.Calculate(pricing.DefaultRules(), decimal.NewFromInt(50), "otro", at(t, "2025-03-12 10:00"))
	assert.True(t, res.FinalPrice.Equal(decimal.NewFromInt(50)))
	assert.Empty(t, res.AppliedRules)
}

func TestCalculate_RedondeaADosDecimales(t *testing.T) {
	// 33.33 * 1.05 = 34.9965 -> 35.00
	base, _ := decimal.NewFromString("33.33")
	res := pricing.Calculate(pricing.DefaultRules(), base, "afternoon", at(t, "2025-03-12 10:00"))
	want, _ := decimal.NewFromString("35.00")
	assert.True(t, res.FinalPrice.Equal(want), "final=%s", res.FinalPrice)
}
