package cmd

import (
	"context"
	"flag"

	"github.com/ghamel/folio"
	"github.com/ghamel/folio/renderer"
	"github.com/google/subcommands"
)

type closedCmd struct {
	holdings string
}

func (*closedCmd) Name() string { return "closed" }
func (*closedCmd) Synopsis() string {
	return "reports realized P&L of fully exited positions"
}
func (*closedCmd) Usage() string {
	return `pfm closed [-holdings <file>]

  Scans the ledger for symbols whose bought quantity was fully sold
  again and reports volume-weighted average prices and realized P&L.
  A symbol still present in the holdings file is never reported as
  closed.

`
}

func (c *closedCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.holdings, "holdings", "", "Current brokerage holdings (JSONL)")
}

func (c *closedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := DecodeLedgerFile()
	if err != nil {
		return fail("could not load ledger: %v", err)
	}
	holdings, err := decodeHoldingsFile(c.holdings)
	if err != nil {
		return fail("could not load holdings: %v", err)
	}

	closed := folio.ClosedPositions(l, folio.HoldingQuantities(holdings))
	printMarkdown(renderer.ClosedMarkdown(closed))
	return subcommands.ExitSuccess
}
