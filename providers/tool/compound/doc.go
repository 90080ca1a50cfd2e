// Package compound provides the calculate_compound_interest tool, which
// projects the growth of an investment with optional yearly contributions.
//
// Contributions are spread evenly over the compounding periods and valued with
// the future-value-of-annuity formula. That formula divides by the periodic
// rate, so a zero rate combined with a contribution is reported as a
// computation error rather than special-cased.
package compound
