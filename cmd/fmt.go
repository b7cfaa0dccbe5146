package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ghamel/folio"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the ledger file into canonical form"
}
func (*fmtCmd) Usage() string {
	return `pfm fmt

  Reads the ledger file, validates every event, sorts the timeline into
  canonical order (date, then event-type precedence) and writes it back.
  A hand-edited ledger comes out normalized.

`
}

func (*fmtCmd) SetFlags(*flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := DecodeLedgerFile()
	if err != nil {
		return fail("could not load ledger: %v", err)
	}

	out, err := os.Create(*ledgerFile)
	if err != nil {
		return fail("could not rewrite ledger %q: %v", *ledgerFile, err)
	}
	defer out.Close()
	if err := folio.EncodeLedger(out, l); err != nil {
		return fail("could not write ledger: %v", err)
	}

	fmt.Printf("Formatted %d events in %s\n", l.Len(), *ledgerFile)
	return subcommands.ExitSuccess
}
