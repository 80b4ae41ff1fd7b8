package utils

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyAmount    = errors.New("amount cannot be empty")
	ErrInvalidAmount  = errors.New("amount must be a decimal number")
	ErrNonPositive    = errors.New("amount must be greater than 0")
	ErrTooManyDecimal = errors.New("amount has more decimal places than the token supports")
	ErrAmountTooLarge = errors.New("amount is too large")
)

const (
	// uint256 holds at most 78 decimal digits
	maxAmountDigits = 78
	maxAmountLength = 2*maxAmountDigits + math.MaxUint8
)

func unit(decimals uint8) decimal.Decimal {
	return decimal.New(1, int32(decimals))
}

// ParseAmount converts a human readable decimal amount into the token's base units.
func ParseAmount(amount string, decimals uint8) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, ErrEmptyAmount
	}
	if len(amount) > maxAmountLength {
		return nil, ErrAmountTooLarge
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, ErrInvalidAmount
	}
	if !d.IsPositive() {
		return nil, ErrNonPositive
	}
	// scaling cost grows with the exponent, bound it before any arithmetic
	exp := int64(d.Exponent())
	coefficientDigits := int64(len(d.Coefficient().String()))
	if coefficientDigits+exp > maxAmountDigits {
		return nil, ErrAmountTooLarge
	}
	if -exp > int64(decimals)+maxAmountDigits {
		return nil, fmt.Errorf("%w: max %d", ErrTooManyDecimal, decimals)
	}
	if -exp > int64(decimals) {
		// trailing zeros do not count as precision
		if !d.Equal(d.Truncate(int32(decimals))) {
			return nil, fmt.Errorf("%w: max %d", ErrTooManyDecimal, decimals)
		}
	}
	return d.Mul(unit(decimals)).BigInt(), nil
}

// FormatAmount scales base units down by the token decimals.
func FormatAmount(raw *big.Int, decimals uint8) string {
	if raw == nil {
		return "0"
	}
	return decimal.NewFromBigInt(raw, -int32(decimals)).String()
}

// ValidateAmount checks the amount is a positive decimal without looking at
// token precision, which is only known once the token has been read.
func ValidateAmount(amount string) error {
	_, err := ParseAmount(amount, math.MaxUint8)
	return err
}
