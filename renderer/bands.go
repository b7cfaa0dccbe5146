package renderer

import (
	"bytes"
	"fmt"

	"github.com/ghamel/folio"
	md "github.com/nao1215/markdown"
)

// BandsMarkdown renders the ATR volatility band report for held
// positions.
func BandsMarkdown(bands []folio.AtrBand) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("ATR Volatility Bands")
	if len(bands) == 0 {
		doc.PlainText("No holdings with enough market history.")
		return doc.String()
	}

	rows := make([][]string, 0, len(bands))
	for _, b := range bands {
		rows = append(rows, []string{
			b.Symbol,
			b.Price.String(),
			b.CostPrice.String(),
			fmt.Sprintf("%.2f", b.ATR.InexactFloat64()),
			b.Lower.String(),
			b.Upper.String(),
			b.Signal.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Symbol", "Price", "Cost", "ATR", "Lower", "Upper", "Signal"},
		Rows:   rows,
	})

	return doc.String()
}
