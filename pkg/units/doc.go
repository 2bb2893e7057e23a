// Package units converts token amounts between human decimal strings and
// integer base units for a given number of decimal places.
//
//	baseUnits, err := units.ToBaseUnits("0.1", 18) // "100000000000000000"
//	human, err := units.ToDecimal(baseUnits, 18)   // "0.1"
//
// Base-unit amounts are bounded to 256 bits, the range of an on-chain uint256.
package units
