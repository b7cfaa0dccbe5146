package renderer

import (
	"bytes"
	"fmt"

	"github.com/ghamel/folio"
	md "github.com/nao1215/markdown"
)

// RebalanceMarkdown renders the suggested trades bringing the portfolio
// back toward its target allocations.
func RebalanceMarkdown(suggestions []folio.RebalanceSuggestion) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Rebalancing Suggestions")
	if len(suggestions) == 0 {
		doc.PlainText("All positions are within the configured threshold.")
		return doc.String()
	}

	rows := make([][]string, 0, len(suggestions))
	for _, s := range suggestions {
		rows = append(rows, []string{
			s.Action.String(),
			s.Symbol,
			fmt.Sprintf("%d", s.Quantity),
			s.Price.String(),
			s.Value.String(),
			folio.PercentOf(s.CurrentWeight).String(),
			folio.PercentOf(s.TargetWeight).String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Action", "Symbol", "Shares", "Price", "Value", "Current", "Target"},
		Rows:   rows,
	})

	return doc.String()
}
