package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ghamel/folio"
	"github.com/google/subcommands"
)

type importCmd struct {
	tradesFile    string
	cashFlowsFile string
}

func (*importCmd) Name() string { return "import" }
func (*importCmd) Synopsis() string {
	return "merges raw brokerage trade and cash-flow exports into the ledger"
}
func (*importCmd) Usage() string {
	return `pfm import -trades <file> [-cashflows <file>]

  Reads raw brokerage exports (JSONL), merges them into a canonically
  ordered event ledger, and writes it to the ledger file. Stock
  settlement cash flows are dropped; dividend-looking inflows are
  classified as dividends.

Usage Examples:
# Build the ledger from both exports.
$ pfm import -trades trades.jsonl -cashflows cashflows.jsonl

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tradesFile, "trades", "", "Raw trade rows (JSONL)")
	f.StringVar(&c.cashFlowsFile, "cashflows", "", "Raw cash-flow rows (JSONL)")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var trades []folio.TradeRow
	var flows []folio.CashFlowRow

	if c.tradesFile != "" {
		tf, err := os.Open(c.tradesFile)
		if err != nil {
			return fail("could not open trades %q: %v", c.tradesFile, err)
		}
		trades, err = folio.DecodeTradeRows(tf)
		tf.Close()
		if err != nil {
			return fail("could not read trades: %v", err)
		}
	}
	if c.cashFlowsFile != "" {
		cf, err := os.Open(c.cashFlowsFile)
		if err != nil {
			return fail("could not open cash flows %q: %v", c.cashFlowsFile, err)
		}
		flows, err = folio.DecodeCashFlowRows(cf)
		cf.Close()
		if err != nil {
			return fail("could not read cash flows: %v", err)
		}
	}
	if len(trades) == 0 && len(flows) == 0 {
		return fail("nothing to import: provide -trades and/or -cashflows")
	}

	l := folio.BuildLedger(trades, flows)

	out, err := os.Create(*ledgerFile)
	if err != nil {
		return fail("could not create ledger %q: %v", *ledgerFile, err)
	}
	defer out.Close()
	if err := folio.EncodeLedger(out, l); err != nil {
		return fail("could not write ledger: %v", err)
	}

	fmt.Printf("Imported %d events into %s\n", l.Len(), *ledgerFile)
	return subcommands.ExitSuccess
}
