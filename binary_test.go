package money

import (
	"bytes"
	"encoding"
	"errors"
	"math/big"
	"testing"
)

var (
	_ encoding.BinaryMarshaler   = SomeDense{}
	_ encoding.BinaryUnmarshaler = (*SomeDense)(nil)
	_ encoding.BinaryMarshaler   = SomeDiscrete{}
	_ encoding.BinaryUnmarshaler = (*SomeDiscrete)(nil)
	_ encoding.BinaryMarshaler   = SomeExchangeRate{}
	_ encoding.BinaryUnmarshaler = (*SomeExchangeRate)(nil)
	_ encoding.BinaryMarshaler   = Dense[USD]{}
	_ encoding.BinaryUnmarshaler = (*Dense[USD])(nil)
	_ encoding.BinaryMarshaler   = Discrete[USD, Minor[USD]]{}
	_ encoding.BinaryUnmarshaler = (*Discrete[USD, Minor[USD]])(nil)
	_ encoding.BinaryMarshaler   = ExchangeRate[USD, EUR]{}
	_ encoding.BinaryUnmarshaler = (*ExchangeRate[USD, EUR])(nil)
)

func TestSomeDense_MarshalBinary(t *testing.T) {
	s := MustNewSomeDense("USD", big.NewRat(-1, 3))
	got, err := s.MarshalBinary()
	if err != nil {
		t.Fatalf("%v.MarshalBinary() failed: %v", s, err)
	}
	want := []byte{
		0, 0, 0, 0, 0, 0, 0, 3, 'U', 'S', 'D',
		0, 0xFF, 0xFF, 0xFF, 0xFF,
		0, 0, 0, 0, 3,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("%v.MarshalBinary() = %v, want %v", s, got, want)
	}

	var d SomeDense
	if err := d.UnmarshalBinary(got); err != nil {
		t.Fatalf("UnmarshalBinary(%v) failed: %v", got, err)
	}
	if !d.Equal(s) {
		t.Errorf("UnmarshalBinary(%v) = %v, want %v", got, d, s)
	}

	// Typed amounts share the encoding
	typed, err := MustNewDense[USD](-1, 3).MarshalBinary()
	if err != nil || !bytes.Equal(typed, want) {
		t.Errorf("Dense.MarshalBinary() = %v, %v, want %v", typed, err, want)
	}

	prefix := []byte{42}
	appended, err := s.AppendBinary(prefix)
	if err != nil || !bytes.Equal(appended, append([]byte{42}, want...)) {
		t.Errorf("%v.AppendBinary(%v) = %v, %v", s, prefix, appended, err)
	}
}

func TestSomeDiscrete_MarshalBinary(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 40) // 2^40
	s := MustNewSomeDiscrete("XAU", MustNewScale(311034768, 10000000), huge)
	got, err := s.MarshalBinary()
	if err != nil {
		t.Fatalf("%v.MarshalBinary() failed: %v", s, err)
	}
	want := []byte{
		0, 0, 0, 0, 0, 0, 0, 3, 'X', 'A', 'U',
		0, 0x01, 0x28, 0xA0, 0x39, // 19439673
		0, 0x00, 0x09, 0x89, 0x68, // 625000
		1, 1, 0, 0, 0, 0, 0, 0, 0, 6, 0, 0, 0, 0, 0, 1, // 2^40
	}
	if !bytes.Equal(got, want) {
		t.Errorf("%v.MarshalBinary() = %v, want %v", s, got, want)
	}

	var d SomeDiscrete
	if err := d.UnmarshalBinary(got); err != nil {
		t.Fatalf("UnmarshalBinary(%v) failed: %v", got, err)
	}
	if !d.Equal(s) {
		t.Errorf("UnmarshalBinary(%v) = %v, want %v", got, d, s)
	}
}

func TestSomeExchangeRate_MarshalBinary(t *testing.T) {
	s := MustNewSomeExchRate("USD", "EUR", big.NewRat(23, 25))
	got, err := s.MarshalBinary()
	if err != nil {
		t.Fatalf("%v.MarshalBinary() failed: %v", s, err)
	}
	want := []byte{
		0, 0, 0, 0, 0, 0, 0, 3, 'U', 'S', 'D',
		0, 0, 0, 0, 0, 0, 0, 3, 'E', 'U', 'R',
		0, 0, 0, 0, 23,
		0, 0, 0, 0, 25,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("%v.MarshalBinary() = %v, want %v", s, got, want)
	}

	var r ExchangeRate[USD, EUR]
	if err := r.UnmarshalBinary(got); err != nil {
		t.Fatalf("ExchangeRate.UnmarshalBinary(%v) failed: %v", got, err)
	}
	if want := MustNewExchRate[USD, EUR](23, 25); !r.Equal(want) {
		t.Errorf("ExchangeRate.UnmarshalBinary(%v) = %v, want %v", got, r, want)
	}
}

func TestUnmarshalBinary_Typed(t *testing.T) {
	t.Run("dense", func(t *testing.T) {
		data, _ := MustNewSomeDense("EUR", big.NewRat(1, 2)).MarshalBinary()
		var eur Dense[EUR]
		if err := eur.UnmarshalBinary(data); err != nil {
			t.Errorf("Dense[EUR].UnmarshalBinary failed: %v", err)
		}
		var usd Dense[USD]
		if err := usd.UnmarshalBinary(data); !errors.Is(err, ErrCurrencyMismatch) {
			t.Errorf("Dense[USD].UnmarshalBinary = %v, want %v", err, ErrCurrencyMismatch)
		}
		var dyn Dense[Dynamic]
		if err := dyn.UnmarshalBinary(data); err != nil || dyn.Currency() != "EUR" {
			t.Errorf("Dense[Dynamic].UnmarshalBinary = %v, %v", dyn, err)
		}
	})

	t.Run("discrete", func(t *testing.T) {
		data, _ := NewDiscrete[USD, Minor[USD]](5).MarshalBinary()
		var x Discrete[USD, Minor[USD]]
		if err := x.UnmarshalBinary(data); err != nil || x.Amount().Int64() != 5 {
			t.Errorf("Discrete.UnmarshalBinary = %v, %v", x, err)
		}
		var eur Discrete[EUR, Minor[EUR]]
		if err := eur.UnmarshalBinary(data); !errors.Is(err, ErrCurrencyMismatch) {
			t.Errorf("Discrete[EUR].UnmarshalBinary = %v, want %v", err, ErrCurrencyMismatch)
		}
		var major Discrete[USD, Major[USD]]
		if err := major.UnmarshalBinary(data); !errors.Is(err, ErrScaleMismatch) {
			t.Errorf("Discrete[USD, Major].UnmarshalBinary = %v, want %v", err, ErrScaleMismatch)
		}
	})

	t.Run("exchange rate", func(t *testing.T) {
		data, _ := MustNewExchRate[USD, EUR](23, 25).MarshalBinary()
		var r ExchangeRate[EUR, USD]
		if err := r.UnmarshalBinary(data); !errors.Is(err, ErrCurrencyMismatch) {
			t.Errorf("ExchangeRate[EUR, USD].UnmarshalBinary = %v, want %v", err, ErrCurrencyMismatch)
		}
	})
}

func TestUnmarshalBinary_Error(t *testing.T) {
	usd := []byte{0, 0, 0, 0, 0, 0, 0, 3, 'U', 'S', 'D'}
	cat := func(parts ...[]byte) []byte {
		var b []byte
		for _, p := range parts {
			b = append(b, p...)
		}
		return b
	}
	i32 := func(v byte) []byte { return []byte{0, 0, 0, 0, v} }
	neg1 := []byte{0, 0xFF, 0xFF, 0xFF, 0xFF}

	tests := map[string]struct {
		data      []byte
		unmarshal encoding.BinaryUnmarshaler
		want      error
	}{
		"dense empty":          {nil, new(SomeDense), ErrWireFormat},
		"dense truncated":      {cat(usd, i32(1)), new(SomeDense), ErrWireFormat},
		"dense zero denom":     {cat(usd, i32(1), i32(0)), new(SomeDense), ErrMalformedRational},
		"dense trailing":       {cat(usd, i32(1), i32(2), []byte{0}), new(SomeDense), ErrWireFormat},
		"dense bad tag":        {cat(usd, []byte{7, 0, 0, 0, 1}, i32(2)), new(SomeDense), ErrWireFormat},
		"discrete zero scale":  {cat(usd, i32(0), i32(1), i32(5)), new(SomeDiscrete), ErrNonPositiveScale},
		"discrete neg scale":   {cat(usd, neg1, i32(1), i32(5)), new(SomeDiscrete), ErrNonPositiveScale},
		"discrete zero denom":  {cat(usd, i32(100), i32(0), i32(5)), new(SomeDiscrete), ErrMalformedRational},
		"discrete truncated":   {cat(usd, i32(100), i32(1)), new(SomeDiscrete), ErrWireFormat},
		"rate zero":            {cat(usd, usd, i32(0), i32(1)), new(SomeExchangeRate), ErrNonPositiveRate},
		"rate negative":        {cat(usd, usd, neg1, i32(1)), new(SomeExchangeRate), ErrNonPositiveRate},
		"rate zero denom":      {cat(usd, usd, i32(1), i32(0)), new(SomeExchangeRate), ErrMalformedRational},
		"rate missing dst":     {cat(usd), new(SomeExchangeRate), ErrWireFormat},
		"typed dense":          {cat(usd, i32(1)), new(Dense[USD]), ErrWireFormat},
		"typed discrete":       {cat(usd, i32(0), i32(1), i32(5)), new(Discrete[USD, Minor[USD]]), ErrNonPositiveScale},
		"typed exchange rate":  {cat(usd, usd, i32(0), i32(1)), new(ExchangeRate[USD, USD]), ErrNonPositiveRate},
		"typed rate truncated": {usd, new(ExchangeRate[USD, USD]), ErrWireFormat},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.unmarshal.UnmarshalBinary(tt.data)
			if !errors.Is(err, tt.want) {
				t.Errorf("UnmarshalBinary(%v) = %v, want %v", tt.data, err, tt.want)
			}
		})
	}
}

func TestMarshalBinary_NegativeDenominator(t *testing.T) {
	// A negative denominator is accepted and normalized.
	data := []byte{
		0, 0, 0, 0, 0, 0, 0, 3, 'U', 'S', 'D',
		0, 0, 0, 0, 2,
		0, 0xFF, 0xFF, 0xFF, 0xFC, // -4
	}
	var s SomeDense
	if err := s.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if s.Rat().Cmp(big.NewRat(-1, 2)) != 0 {
		t.Errorf("UnmarshalBinary = %v, want USD -1/2", s)
	}
	out, _ := s.MarshalBinary()
	if bytes.Equal(out, data) {
		t.Errorf("MarshalBinary did not normalize the rational")
	}
}
