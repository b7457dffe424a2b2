package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	// priceScale is the number of fractional digits a price may carry.
	priceScale = 2
	// priceMaxDigits bounds the total number of digits, matching numeric(10,2).
	priceMaxDigits = 10
)

var maxPrice = decimal.New(1, priceMaxDigits-priceScale)

// Price is a non-negative amount with at most two fractional digits.
// The zero value is a valid price of 0.00.
type Price struct {
	amount decimal.Decimal
}

// NewPrice validates amount and returns it as a Price.
func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, errs.NewValueIsOutOfRangeError("price", amount.String(), 0, maxPrice.String())
	}
	if amount.GreaterThanOrEqual(maxPrice) {
		return Price{}, errs.NewValueIsOutOfRangeError("price", amount.String(), 0, maxPrice.String())
	}
	if !amount.Equal(amount.Truncate(priceScale)) {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s has more than %d decimal places", amount.String(), priceScale),
		)
	}
	return Price{amount: amount}, nil
}

// PriceFromString parses a decimal string such as "150" or "49.99".
func PriceFromString(s string) (Price, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return NewPrice(amount)
}

// MustPrice is for constants and tests.
func MustPrice(s string) Price {
	p, err := PriceFromString(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Price) Decimal() decimal.Decimal {
	return p.amount
}

// String renders the price with exactly two fractional digits.
func (p Price) String() string {
	return p.amount.StringFixed(priceScale)
}

func (p Price) LessThan(other Price) bool {
	return p.amount.LessThan(other.amount)
}

func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}
