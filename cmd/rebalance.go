package cmd

import (
	"context"
	"flag"

	"github.com/ghamel/folio"
	"github.com/ghamel/folio/renderer"
	"github.com/google/subcommands"
)

type rebalanceCmd struct {
	holdings string
	cash     float64
}

func (*rebalanceCmd) Name() string { return "rebalance" }
func (*rebalanceCmd) Synopsis() string {
	return "suggests whole-share trades toward the target allocations"
}
func (*rebalanceCmd) Usage() string {
	return `pfm rebalance -holdings <file> [-cash <amount>]

  Compares live position weights against the target allocations in the
  configuration and suggests bounded whole-share trades. Buys never
  exceed the available cash; sells never exceed the held quantity.

`
}

func (c *rebalanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.holdings, "holdings", "", "Current brokerage holdings (JSONL)")
	f.Float64Var(&c.cash, "cash", 0, "Cash available for buys")
}

func (c *rebalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.holdings == "" {
		return fail("missing -holdings: nothing to rebalance")
	}
	cfg, err := LoadAppConfig()
	if err != nil {
		return fail("could not load config: %v", err)
	}
	if len(cfg.TargetAllocations) == 0 {
		return fail("no target_allocations configured in %s", *configFile)
	}
	holdings, err := decodeHoldingsFile(c.holdings)
	if err != nil {
		return fail("could not load holdings: %v", err)
	}

	cash := folio.M(c.cash, cfg.BaseCurrency)
	nav := cash
	for _, h := range holdings {
		nav = nav.Add(h.MarketValue())
	}

	suggestions := folio.Rebalance(holdings, nav, cash, cfg)
	printMarkdown(renderer.RebalanceMarkdown(suggestions))
	return subcommands.ExitSuccess
}
