// Package bonds values a small portfolio of fixed-income instruments
// (bonds and short term notes) under three interest rate scenarios.
//
// The core functionalities include:
//   - Valuation: the theoretical price of a redemption value paid at
//     maturity, discounted at an annual nominal rate (TNA) with either
//     simple or compound discounting, and the inverse implied rate of an
//     observed market price.
//   - Settlement: prices for cash (T+0) and 24h (T+1) settlement, the
//     latter settling one calendar day later.
//   - Scenarios: optimistic, normal and pessimistic rates derived from a
//     target rate and two spreads.
//   - Portfolio: an ordered set of instruments stored as a single JSON
//     array, the same format used to import and export it.
//
// Valuation is stateless: every report is recomputed from the instruments,
// the scenario parameters and the current date.
//
// This package serves as the foundational logic for the `bcs` command-line
// tool.
package bonds
