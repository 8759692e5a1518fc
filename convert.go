package money

import (
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
	sdecimal "github.com/shopspring/decimal"
)

// NewDenseFromDecimal returns an amount exactly equal to decimal d.
func NewDenseFromDecimal[C Currency](d decimal.Decimal) Dense[C] {
	num := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		num.Neg(num)
	}
	return newDenseUnsafe[C]("", new(big.Rat).SetFrac(num, pow10(d.Scale())))
}

// Decimal approximates the amount with method a to a decimal with the given
// number of digits after the decimal point.
//
// Decimal returns an error if:
//   - the scale is negative or greater than [decimal.MaxScale];
//   - the approximated amount has more than [decimal.MaxPrec] digits.
func (d Dense[C]) Decimal(a Approximation, scale int) (decimal.Decimal, error) {
	if scale < 0 || scale > decimal.MaxScale {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal with scale %v: %w", d, scale, ErrInvalidDigits)
	}
	i := a.approximate(new(big.Rat).Mul(d.rat(), new(big.Rat).SetInt(pow10(scale))))
	if !i.IsInt64() {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal with scale %v: coefficient overflow", d, scale)
	}
	res, err := decimal.New(i.Int64(), scale)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal with scale %v: %w", d, scale, err)
	}
	return res, nil
}

// NewDenseFromBigDecimal returns an amount exactly equal to decimal d.
func NewDenseFromBigDecimal[C Currency](d sdecimal.Decimal) Dense[C] {
	return newDenseUnsafe[C]("", d.Rat())
}

// BigDecimal approximates the amount with method a to an arbitrary-precision
// decimal with the given number of digits after the decimal point.
//
// BigDecimal returns an error if the scale is negative.
func (d Dense[C]) BigDecimal(a Approximation, scale int32) (sdecimal.Decimal, error) {
	if scale < 0 {
		return sdecimal.Decimal{}, fmt.Errorf("converting %v to decimal with scale %v: %w", d, scale, ErrInvalidDigits)
	}
	i := a.approximate(new(big.Rat).Mul(d.rat(), new(big.Rat).SetInt(pow10(int(scale)))))
	return sdecimal.NewFromBigInt(i, -scale), nil
}
