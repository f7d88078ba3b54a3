package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rules es la configuración inmutable de precios dinámicos. Se inyecta al
// caso de uso de ventas en su construcción; no hay estado global mutable.
type Rules struct {
	Shifts     []ShiftRule
	Weekend    ShiftRule // piso aplicado como max(turno, weekend) en sábado/domingo
	TimeRanges []TimeRule
}

// ShiftRule multiplica el precio base según el turno declarado en la venta.
type ShiftRule struct {
	Shift       string
	Multiplier  decimal.Decimal
	Description string
}

// TimeRule multiplica el precio base cuando la hora local cae en [Start, End]
// (formato HH:MM, comparación inclusiva). Entre varias que apliquen gana la mayor.
type TimeRule struct {
	Start       string
	End         string
	Multiplier  decimal.Decimal
	Description string
}

// DefaultRules replica la tabla operativa del grifo: turnos mañana/tarde/noche,
// recargo de fin de semana, horas pico y descuento de madrugada.
func DefaultRules() Rules {
	return Rules{
		Shifts: []ShiftRule{
			{Shift: "morning", Multiplier: dec("1.0"), Description: "Precio normal - turno mañana"},
			{Shift: "afternoon", Multiplier: dec("1.05"), Description: "Precio +5% - turno tarde"},
			{Shift: "night", Multiplier: dec("1.1"), Description: "Precio +10% - turno noche"},
		},
		Weekend: ShiftRule{Shift: "weekend", Multiplier: dec("1.15"), Description: "Precio +15% - fin de semana"},
		TimeRanges: []TimeRule{
			{Start: "18:00", End: "21:00", Multiplier: dec("1.08"), Description: "Precio +8% - horas pico"},
			{Start: "06:00", End: "08:00", Multiplier: dec("0.95"), Description: "Precio -5% - madrugada"},
		},
	}
}

// Result detalla el cálculo aplicado sobre el precio base.
type Result struct {
	BasePrice       decimal.Decimal
	ShiftMultiplier decimal.Decimal
	TimeMultiplier  decimal.Decimal
	FinalPrice      decimal.Decimal // base * turno * hora, redondeado a 2 decimales
	AppliedRules    []string
}

// Calculate evalúa las reglas de forma determinista: multiplicador de turno
// (con piso de fin de semana) por el mayor multiplicador horario que aplique.
func Calculate(rules Rules, basePrice decimal.Decimal, shift string, at time.Time) Result {
	shiftMult := decimal.NewFromInt(1)
	timeMult := decimal.NewFromInt(1)
	var applied []string

	for _, r := range rules.Shifts {
		if r.Shift == shift {
			shiftMult = r.Multiplier
			applied = append(applied, r.Description)
			break
		}
	}

	if wd := at.Weekday(); wd == time.Saturday || wd == time.Sunday {
		if rules.Weekend.Multiplier.GreaterThan(shiftMult) {
			shiftMult = rules.Weekend.Multiplier
		}
		applied = append(applied, rules.Weekend.Description)
	}

	clock := at.Format("15:04")
	for _, r := range rules.TimeRanges {
		if clock >= r.Start && clock <= r.End {
			if r.Multiplier.GreaterThan(timeMult) {
				timeMult = r.Multiplier
			}
			applied = append(applied, r.Description)
		}
	}

	final := basePrice.Mul(shiftMult).Mul(timeMult).Round(2)
	return Result{
		BasePrice:       basePrice,
		ShiftMultiplier: shiftMult,
		TimeMultiplier:  timeMult,
		FinalPrice:      final,
		AppliedRules:    applied,
	}
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}
