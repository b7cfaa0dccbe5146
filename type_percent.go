package folio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a display-only percentage. Engines compute exact decimal
// ratios; Percent only ever appears at the rendering boundary.
type Percent float64

// PercentOf converts an exact ratio (0.05 for 5%) into a displayable Percent.
func PercentOf(ratio decimal.Decimal) Percent {
	return Percent(100 * ratio.InexactFloat64())
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
