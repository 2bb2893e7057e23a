package units

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// MaxDecimals bounds the decimal places accepted by the conversions. A uint256
// holds at most 78 decimal digits.
const MaxDecimals = 77

var decimalPattern = regexp.MustCompile(`^([0-9]+(\.[0-9]*)?|\.[0-9]+)$`)

// ToDecimal scales an integer amount in base units down by 10^decimals and
// returns the shortest exact decimal representation.
func ToDecimal(amount string, decimals int) (string, error) {
	if err := validateDecimals(decimals); err != nil {
		return "", err
	}

	value, err := ParseBaseUnits(amount)
	if err != nil {
		return "", err
	}

	return decimal.NewFromBigInt(value.ToBig(), -int32(decimals)).String(), nil
}

// ToBaseUnits scales a human decimal amount up by 10^decimals and returns the
// resulting integer string.
func ToBaseUnits(amount string, decimals int) (string, error) {
	value, err := ParseHuman(amount, decimals)
	if err != nil {
		return "", err
	}
	return value.Dec(), nil
}

// ParseHuman is ToBaseUnits returning the integer value.
func ParseHuman(amount string, decimals int) (*uint256.Int, error) {
	if err := validateDecimals(decimals); err != nil {
		return nil, err
	}

	candidate := strings.TrimSpace(amount)
	if !decimalPattern.MatchString(candidate) {
		return nil, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidAmount, amount)
	}

	if strings.HasPrefix(candidate, ".") {
		candidate = "0" + candidate
	}
	candidate = strings.TrimSuffix(candidate, ".")

	parsed, err := decimal.NewFromString(candidate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}

	scaled := parsed.Shift(int32(decimals))
	if !scaled.IsInteger() {
		return nil, fmt.Errorf(
			"%w: %q has more than %d fractional digits",
			ErrInvalidAmount,
			amount,
			decimals,
		)
	}

	value, overflow := uint256.FromBig(scaled.BigInt())
	if overflow {
		return nil, fmt.Errorf("%w: %q overflows 256 bits", ErrInvalidAmount, amount)
	}
	return value, nil
}

// ParseBaseUnits parses a non-negative integer literal in base units.
func ParseBaseUnits(amount string) (*uint256.Int, error) {
	candidate := strings.TrimSpace(amount)
	if candidate == "" {
		return nil, fmt.Errorf("%w: amount is required", ErrInvalidAmount)
	}
	for _, character := range candidate {
		if character < '0' || character > '9' {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidAmount, amount)
		}
	}

	trimmed := strings.TrimLeft(candidate, "0")
	if trimmed == "" {
		return new(uint256.Int), nil
	}

	value, err := uint256.FromDecimal(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	return value, nil
}

func validateDecimals(decimals int) error {
	if decimals < 0 || decimals > MaxDecimals {
		return fmt.Errorf("%w: decimals must be between 0 and %d, got %d", ErrInvalidAmount, MaxDecimals, decimals)
	}
	return nil
}
