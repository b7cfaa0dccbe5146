package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/ghamel/folio"
	"github.com/google/subcommands"
)

type checkCmd struct {
	date     string
	holdings string
	cash     float64
}

func (*checkCmd) Name() string { return "check" }
func (*checkCmd) Synopsis() string {
	return "compares replayed positions against current brokerage holdings"
}
func (*checkCmd) Usage() string {
	return `pfm check -holdings <file> [-d <date>] [-cash <amount>]

  Replays the ledger and compares the derived positions against the
  current brokerage holdings. A mismatch usually means a split or other
  corporate action the ledger never saw.

`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Replay date (YYYY-MM-DD), defaults to today")
	f.StringVar(&c.holdings, "holdings", "", "Current brokerage holdings (JSONL)")
	f.Float64Var(&c.cash, "cash", 0, "Cash balance predating the ledger's first event")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.holdings == "" {
		return fail("missing -holdings: nothing to compare against")
	}
	cfg, err := LoadAppConfig()
	if err != nil {
		return fail("could not load config: %v", err)
	}
	l, err := DecodeLedgerFile()
	if err != nil {
		return fail("could not load ledger: %v", err)
	}
	holdings, err := decodeHoldingsFile(c.holdings)
	if err != nil {
		return fail("could not load holdings: %v", err)
	}

	asOf := folio.Today()
	if c.date != "" {
		asOf, err = folio.ParseDate(c.date)
		if err != nil {
			return fail("invalid date %q: %v", c.date, err)
		}
	}

	state := l.Replay(asOf, folio.M(c.cash, cfg.BaseCurrency))
	warnings := folio.CheckConsistency(state, folio.HoldingQuantities(holdings))
	if len(warnings) == 0 {
		fmt.Printf("Ledger and holdings agree on %s.\n", asOf)
		return subcommands.ExitSuccess
	}
	for _, w := range warnings {
		fmt.Println(w)
	}
	return subcommands.ExitFailure
}
