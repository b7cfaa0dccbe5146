// Package renderer turns folio results into markdown reports.
package renderer

import (
	"bytes"
	"io"

	"github.com/ghamel/folio"
)

// ConditionalBlock lets you fully write a block and decide at the end to
// print it or not. If the block function returns true, the content is
// printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// percent renders a return metric as a signed percentage, or "n/a" when
// the metric is unavailable.
func percent(m folio.Metric) string {
	if !m.Valid {
		return "n/a"
	}
	return folio.PercentOf(m.Value).SignedString()
}

// amount renders a money metric in the given currency, or "n/a" when the
// metric is unavailable.
func amount(m folio.Metric, currency string) string {
	if !m.Valid {
		return "n/a"
	}
	return folio.M(m.Value, currency).SignedString()
}
