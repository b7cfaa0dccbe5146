package renderer

import (
	"bytes"
	"fmt"

	"github.com/ghamel/folio"
	md "github.com/nao1215/markdown"
)

// ClosedMarkdown renders the closed-position report, most recently
// closed first.
func ClosedMarkdown(closed []folio.ClosedPosition) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Closed Positions")
	if len(closed) == 0 {
		doc.PlainText("No closed positions.")
		return doc.String()
	}

	rows := make([][]string, 0, len(closed))
	for _, c := range closed {
		rows = append(rows, []string{
			c.Symbol,
			c.TotalBoughtQty.String(),
			c.AvgBuyPrice.String(),
			c.AvgSellPrice.String(),
			c.RealizedPnL.SignedString(),
			fmt.Sprintf("%+.2f%%", c.RealizedPnLPct.InexactFloat64()),
			fmt.Sprintf("%s to %s", c.FirstTradeDate, c.LastTradeDate),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Symbol", "Qty", "Avg Buy", "Avg Sell", "Realized P&L", "Return", "Held"},
		Rows:   rows,
	})

	return doc.String()
}
