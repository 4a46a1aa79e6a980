package material

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/prodcost-backend/internal/domain"
)

func joinColumns() string {
	return strings.Join(columns, ", ")
}

// nullDecimal converts a *decimal.Decimal to decimal.NullDecimal (nil -> NULL).
func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func weighedAt(m domain.MaterialUsage) time.Time {
	if m.WeighedAt.IsZero() {
		return time.Now().UTC()
	}
	return m.WeighedAt
}
