package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrice(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "integer", input: "150", want: "150.00"},
		{name: "two decimals", input: "49.99", want: "49.99"},
		{name: "zero", input: "0", want: "0.00"},
		{name: "largest", input: "99999999.99", want: "99999999.99"},
		{name: "negative", input: "-1", wantErr: errs.ErrValueIsOutOfRange},
		{name: "too large", input: "100000000", wantErr: errs.ErrValueIsOutOfRange},
		{name: "three decimals", input: "1.005", wantErr: errs.ErrValueIsInvalid},
		{name: "not a number", input: "ten", wantErr: errs.ErrValueIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			price, err := kernel.PriceFromString(tc.input)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, price.String())
		})
	}
}

func TestPrice_Compare(t *testing.T) {
	low := kernel.MustPrice("50")
	high := kernel.MustPrice("150.5")

	assert.True(t, low.LessThan(high))
	assert.False(t, high.LessThan(low))
	assert.True(t, low.IsEqual(kernel.MustPrice("50.00")))
	assert.True(t, decimal.NewFromInt(50).Equal(low.Decimal()))
}

func TestPrice_ZeroValueIsValid(t *testing.T) {
	var p kernel.Price
	assert.Equal(t, "0.00", p.String())
}
