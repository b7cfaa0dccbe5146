package folio

import (
	"fmt"
	"log"
	"slices"
)

// CheckConsistency diffs replayed holdings against externally reported
// holdings. A mismatch is the signature of an event the ledger does not
// model, typically a split or merger, so it produces a warning rather
// than an error: there is nothing to recover from, only something to
// investigate.
func CheckConsistency(replayed PortfolioState, current map[string]Quantity) []string {
	seen := make(map[string]struct{}, len(replayed.Positions)+len(current))
	var symbols []string
	for s := range replayed.Positions {
		seen[s] = struct{}{}
		symbols = append(symbols, s)
	}
	for s := range current {
		if _, ok := seen[s]; !ok {
			symbols = append(symbols, s)
		}
	}
	slices.Sort(symbols)

	var warnings []string
	for _, symbol := range symbols {
		replayedQty := replayed.Positions[symbol]
		currentQty := current[symbol]
		if replayedQty.Equal(currentQty) {
			continue
		}
		msg := fmt.Sprintf("position mismatch for %s: replayed=%s, current=%s (possible split/corporate action)",
			symbol, replayedQty, currentQty)
		warnings = append(warnings, msg)
		log.Printf("warning: %s", msg)
	}
	return warnings
}
