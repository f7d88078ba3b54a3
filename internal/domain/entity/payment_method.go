package entity

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Formas de liquidación de un método de pago. Un método deferred abre un
// crédito en lugar de registrar el pago de inmediato.
const (
	SettlementImmediate = "immediate"
	SettlementDeferred  = "deferred"
)

// PaymentMethod es dato de referencia de solo lectura para este núcleo.
type PaymentMethod struct {
	PaymentMethodID int64
	MethodName      string // único
	Description     string
	SettlementKind  string // immediate | deferred; vacío en datos legados
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NormalizeMethodName pasa a minúsculas y quita tildes ("Crédito" -> "credito")
// para comparar nombres de métodos de pago enviados por el cliente.
func NormalizeMethodName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
