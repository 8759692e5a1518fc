package money

import (
	"fmt"
	"math/big"

	"github.com/chris-martin/safe-money/internal/wire"
)

// Binary encoding
//
//	SomeDense:        string(currency) int(num) int(den)
//	SomeDiscrete:     string(currency) int(scale num) int(scale den) int(amount)
//	SomeExchangeRate: string(src) string(dst) int(num) int(den)
//
// Rationals are written in lowest terms with a positive denominator.
// Statically typed values are encoded as their erased form, so both decode
// into each other. See package internal/wire for the framing.

// AppendBinary implements the [encoding.BinaryAppender] interface.
//
// [encoding.BinaryAppender]: https://pkg.go.dev/encoding#BinaryAppender
func (s SomeDense) AppendBinary(data []byte) ([]byte, error) {
	r := s.rat()
	data = wire.AppendString(data, s.curr)
	data = wire.AppendInt(data, r.Num())
	data = wire.AppendInt(data, r.Denom())
	return data, nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (s SomeDense) MarshalBinary() ([]byte, error) {
	return s.AppendBinary(nil)
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (s *SomeDense) UnmarshalBinary(data []byte) error {
	var err error
	*s, err = decodeSomeDense(data)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", SomeDense{}, err)
	}
	return nil
}

func decodeSomeDense(data []byte) (SomeDense, error) {
	r := wire.NewReader(data)
	curr, err := r.String()
	if err != nil {
		return SomeDense{}, wireError(err)
	}
	v, err := readRat(r)
	if err != nil {
		return SomeDense{}, err
	}
	if err := r.Close(); err != nil {
		return SomeDense{}, wireError(err)
	}
	return SomeDense{curr: curr, value: v}, nil
}

// AppendBinary implements the [encoding.BinaryAppender] interface.
//
// [encoding.BinaryAppender]: https://pkg.go.dev/encoding#BinaryAppender
func (s SomeDiscrete) AppendBinary(data []byte) ([]byte, error) {
	scale := s.Scale().rat()
	data = wire.AppendString(data, s.curr)
	data = wire.AppendInt(data, scale.Num())
	data = wire.AppendInt(data, scale.Denom())
	data = wire.AppendInt(data, s.int())
	return data, nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (s SomeDiscrete) MarshalBinary() ([]byte, error) {
	return s.AppendBinary(nil)
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (s *SomeDiscrete) UnmarshalBinary(data []byte) error {
	var err error
	*s, err = decodeSomeDiscrete(data)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", SomeDiscrete{}, err)
	}
	return nil
}

func decodeSomeDiscrete(data []byte) (SomeDiscrete, error) {
	r := wire.NewReader(data)
	curr, err := r.String()
	if err != nil {
		return SomeDiscrete{}, wireError(err)
	}
	sr, err := readRat(r)
	if err != nil {
		return SomeDiscrete{}, err
	}
	if sr.Sign() <= 0 {
		return SomeDiscrete{}, fmt.Errorf("scale %v: %w", sr, ErrNonPositiveScale)
	}
	units, err := r.Int()
	if err != nil {
		return SomeDiscrete{}, wireError(err)
	}
	if err := r.Close(); err != nil {
		return SomeDiscrete{}, wireError(err)
	}
	return SomeDiscrete{curr: curr, scale: newScaleUnsafe(sr), value: units}, nil
}

// AppendBinary implements the [encoding.BinaryAppender] interface.
//
// [encoding.BinaryAppender]: https://pkg.go.dev/encoding#BinaryAppender
func (s SomeExchangeRate) AppendBinary(data []byte) ([]byte, error) {
	r := s.rat()
	data = wire.AppendString(data, s.src)
	data = wire.AppendString(data, s.dst)
	data = wire.AppendInt(data, r.Num())
	data = wire.AppendInt(data, r.Denom())
	return data, nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (s SomeExchangeRate) MarshalBinary() ([]byte, error) {
	return s.AppendBinary(nil)
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (s *SomeExchangeRate) UnmarshalBinary(data []byte) error {
	var err error
	*s, err = decodeSomeExchRate(data)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", SomeExchangeRate{}, err)
	}
	return nil
}

func decodeSomeExchRate(data []byte) (SomeExchangeRate, error) {
	r := wire.NewReader(data)
	src, err := r.String()
	if err != nil {
		return SomeExchangeRate{}, wireError(err)
	}
	dst, err := r.String()
	if err != nil {
		return SomeExchangeRate{}, wireError(err)
	}
	v, err := readRat(r)
	if err != nil {
		return SomeExchangeRate{}, err
	}
	if v.Sign() <= 0 {
		return SomeExchangeRate{}, fmt.Errorf("rate %v: %w", v, ErrNonPositiveRate)
	}
	if err := r.Close(); err != nil {
		return SomeExchangeRate{}, wireError(err)
	}
	return SomeExchangeRate{src: src, dst: dst, value: v}, nil
}

// AppendBinary implements the [encoding.BinaryAppender] interface.
// The amount is encoded as its erased form, see [Dense.Some].
//
// [encoding.BinaryAppender]: https://pkg.go.dev/encoding#BinaryAppender
func (d Dense[C]) AppendBinary(data []byte) ([]byte, error) {
	return d.Some().AppendBinary(data)
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (d Dense[C]) MarshalBinary() ([]byte, error) {
	return d.Some().MarshalBinary()
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// It fails if the encoded currency is not C.
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (d *Dense[C]) UnmarshalBinary(data []byte) error {
	s, err := decodeSomeDense(data)
	if err != nil {
		return fmt.Errorf("unmarshaling %v amount: %w", codeOf[C](), err)
	}
	v, ok := FromSomeDense[C](s)
	if !ok {
		return fmt.Errorf("unmarshaling %v amount from %v: %w", codeOf[C](), s.Currency(), ErrCurrencyMismatch)
	}
	*d = v
	return nil
}

// AppendBinary implements the [encoding.BinaryAppender] interface.
// The amount is encoded as its erased form, see [Discrete.Some].
//
// [encoding.BinaryAppender]: https://pkg.go.dev/encoding#BinaryAppender
func (x Discrete[C, U]) AppendBinary(data []byte) ([]byte, error) {
	return x.Some().AppendBinary(data)
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (x Discrete[C, U]) MarshalBinary() ([]byte, error) {
	return x.Some().MarshalBinary()
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// It fails if the encoded currency is not C or the encoded scale is not
// the scale of U.
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (x *Discrete[C, U]) UnmarshalBinary(data []byte) error {
	s, err := decodeSomeDiscrete(data)
	if err != nil {
		return fmt.Errorf("unmarshaling %v amount: %w", codeOf[C](), err)
	}
	if !isDynamic[C]() && s.Currency() != codeOf[C]() {
		return fmt.Errorf("unmarshaling %v amount from %v: %w", codeOf[C](), s.Currency(), ErrCurrencyMismatch)
	}
	v, ok := FromSomeDiscrete[C, U](s)
	if !ok {
		return fmt.Errorf("unmarshaling %v amount at scale %v: %w", codeOf[C](), s.Scale(), ErrScaleMismatch)
	}
	*x = v
	return nil
}

// AppendBinary implements the [encoding.BinaryAppender] interface.
// The rate is encoded as its erased form, see [ExchangeRate.Some].
//
// [encoding.BinaryAppender]: https://pkg.go.dev/encoding#BinaryAppender
func (r ExchangeRate[Src, Dst]) AppendBinary(data []byte) ([]byte, error) {
	return r.Some().AppendBinary(data)
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (r ExchangeRate[Src, Dst]) MarshalBinary() ([]byte, error) {
	return r.Some().MarshalBinary()
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// It fails if the encoded currencies are not Src and Dst.
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (r *ExchangeRate[Src, Dst]) UnmarshalBinary(data []byte) error {
	s, err := decodeSomeExchRate(data)
	if err != nil {
		return fmt.Errorf("unmarshaling %v/%v exchange rate: %w", codeOf[Src](), codeOf[Dst](), err)
	}
	v, ok := FromSomeExchRate[Src, Dst](s)
	if !ok {
		return fmt.Errorf("unmarshaling %v/%v exchange rate from %v/%v: %w", codeOf[Src](), codeOf[Dst](), s.Src(), s.Dst(), ErrCurrencyMismatch)
	}
	*r = v
	return nil
}

// readRat reads a numerator and a denominator.
func readRat(r *wire.Reader) (*big.Rat, error) {
	num, err := r.Int()
	if err != nil {
		return nil, wireError(err)
	}
	den, err := r.Int()
	if err != nil {
		return nil, wireError(err)
	}
	if den.Sign() == 0 {
		return nil, fmt.Errorf("rational %v/0: %w", num, ErrMalformedRational)
	}
	return new(big.Rat).SetFrac(num, den), nil
}

func wireError(err error) error {
	return fmt.Errorf("%w: %w", ErrWireFormat, err)
}
