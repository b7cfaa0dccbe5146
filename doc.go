// Package folio derives portfolio state, valuation and performance from
// an immutable event ledger.
//
// Raw brokerage exports (trades and cash flows) are merged into a
// canonically ordered ledger of events. Every other artifact is a pure
// function of that ledger plus market data: replayed positions and cash
// on any date, net asset value, time-weighted returns between anchor
// dates, closed-position aggregates, rebalancing suggestions and ATR
// volatility bands.
//
// All money and share arithmetic uses exact decimals; floating point
// only appears at the display boundary.
package folio
