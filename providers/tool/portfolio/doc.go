// Package portfolio provides the analyze_investment_portfolio tool.
//
// An allocation maps asset classes to percentages. It is compared class by
// class against a recommended range for the investor's risk tolerance, and a
// few independent heuristics add observations. Allocations must total
// between 99% and 101% to absorb rounding.
package portfolio
