package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ghamel/folio"
	md "github.com/nao1215/markdown"
)

// PerformanceMarkdown renders the full performance bundle: portfolio
// TWR and P&L per period, capital summary, and per-holding returns.
func PerformanceMarkdown(p *folio.PortfolioPerformance) string {
	var b strings.Builder
	b.WriteString(portfolioSection(p))
	ConditionalBlock(&b, func(w io.Writer) bool {
		io.WriteString(w, holdingsSection(p.Holdings))
		return len(p.Holdings) > 0
	})
	return b.String()
}

func portfolioSection(p *folio.PortfolioPerformance) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Performance Report on %s", p.AsOf))
	doc.PlainText(fmt.Sprintf("Total NAV: %s", p.NAV))
	if !p.Inception.IsZero() {
		doc.PlainText(fmt.Sprintf("Inception: %s", p.Inception))
	}

	doc.H2("Portfolio Returns")
	currency := p.NAV.Currency()
	doc.Table(md.TableSet{
		Header: []string{"Period", "TWR", "P&L"},
		Rows: [][]string{
			{"Week", percent(p.WoW), amount(p.WoWPnL, currency)},
			{"Month to date", percent(p.MTD), amount(p.MTDPnL, currency)},
			{"Quarter to date", percent(p.QTD), amount(p.QTDPnL, currency)},
			{"Year to date", percent(p.YTD), amount(p.YTDPnL, currency)},
			{"Previous year", percent(p.PrevYear), amount(p.PrevYearPnL, currency)},
			{"Since inception", percent(p.SinceStart), amount(p.SinceStartPnL, currency)},
		},
	})

	doc.H2("Capital")
	doc.Table(md.TableSet{
		Header: []string{"Net Deposits", "Deposit ROI"},
		Rows: [][]string{
			{p.NetDeposits.String(), percent(p.DepositROI)},
		},
	})

	return doc.String()
}

func holdingsSection(holdings []folio.HoldingPerformance) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Holdings")
	rows := make([][]string, 0, len(holdings))
	for _, h := range holdings {
		rows = append(rows, []string{
			h.Symbol,
			percent(h.WoW),
			percent(h.MTD),
			percent(h.QTD),
			percent(h.YTD),
			percent(h.PrevYear),
			percent(h.TotalReturn),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Symbol", "WoW", "MTD", "QTD", "YTD", "Prev Year", "Total"},
		Rows:   rows,
	})

	return doc.String()
}
