// Package cmd implements the CLI application to inspect a portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/ghamel/folio"
	"github.com/google/subcommands"
)

// Commands lists the subcommands a main package registers.
var Commands = []subcommands.Command{
	&importCmd{},
	&fmtCmd{},
	&reportCmd{},
	&closedCmd{},
	&checkCmd{},
	&rebalanceCmd{},
	&bandsCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "ledger.jsonl", "Path to the ledger file containing events (JSONL format)")
var marketFile = flag.String("market-file", "market.jsonl", "Path to the market data file containing daily candles (JSONL format)")
var configFile = flag.String("config-file", "folio.toml", "Path to the portfolio configuration file (TOML format)")

// LoadAppConfig loads the app configuration; a missing file yields the
// defaults.
func LoadAppConfig() (*folio.Config, error) {
	return folio.LoadConfig(*configFile)
}

// DecodeLedgerFile loads the ledger from the app ledger file.
func DecodeLedgerFile() (*folio.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if err != nil {
		return nil, fmt.Errorf("opening ledger %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	l, err := folio.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("ledger %q: %w", *ledgerFile, err)
	}
	return l, nil
}

// DecodeMarketFile loads the market data from the app market file,
// quoting prices in the configured base currency. A missing file yields
// an empty repository.
func DecodeMarketFile(currency string) (*folio.MarketData, error) {
	f, err := os.Open(*marketFile)
	if os.IsNotExist(err) {
		return folio.NewMarketData(currency), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening market data %q: %w", *marketFile, err)
	}
	defer f.Close()
	m, err := folio.DecodeMarketData(f, currency)
	if err != nil {
		return nil, fmt.Errorf("market data %q: %w", *marketFile, err)
	}
	return m, nil
}

// decodeHoldingsFile loads the current brokerage holdings from path. An
// empty path yields no holdings.
func decodeHoldingsFile(path string) ([]folio.Holding, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening holdings %q: %w", path, err)
	}
	defer f.Close()
	holdings, err := folio.DecodeHoldings(f)
	if err != nil {
		return nil, fmt.Errorf("holdings %q: %w", path, err)
	}
	return holdings, nil
}

// fail prints an error and returns the failure exit status.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitFailure
}
