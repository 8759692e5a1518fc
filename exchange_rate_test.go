package money

import (
	"errors"
	"math/big"
	"testing"
)

func TestExchangeRate_ZeroValue(t *testing.T) {
	got := ExchangeRate[USD, EUR]{}
	// The zero value cannot be created with NewExchRate, so we check
	// individual properties instead.
	if got.Src() != "USD" {
		t.Errorf("ExchangeRate{}.Src() = %v, want %v", got.Src(), "USD")
	}
	if got.Dst() != "EUR" {
		t.Errorf("ExchangeRate{}.Dst() = %v, want %v", got.Dst(), "EUR")
	}
	if !got.IsOne() {
		t.Errorf("ExchangeRate{}.IsOne() = false, want true")
	}
}

func TestNewExchRate(t *testing.T) {
	tests := []struct {
		num, den int64
		wantErr  error
	}{
		{6, 5, nil},
		{1, 1, nil},
		{1, 1000000, nil},
		{-1, 1, ErrNonPositiveRate},
		{0, 1, ErrNonPositiveRate},
		{1, -1, ErrNonPositiveRate},
		{1, 0, ErrMalformedRational},
	}
	for _, tt := range tests {
		_, err := NewExchRateFrac[USD, EUR](tt.num, tt.den)
		if tt.wantErr == nil && err != nil {
			t.Errorf("NewExchRateFrac(%v, %v) failed: %v", tt.num, tt.den, err)
		}
		if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
			t.Errorf("NewExchRateFrac(%v, %v) = %v, want %v", tt.num, tt.den, err, tt.wantErr)
		}
	}

	t.Run("nil", func(t *testing.T) {
		if _, err := NewExchRate[USD, EUR](nil); !errors.Is(err, ErrNonPositiveRate) {
			t.Errorf("NewExchRate(nil) = %v, want %v", err, ErrNonPositiveRate)
		}
	})

	t.Run("copy", func(t *testing.T) {
		r := big.NewRat(6, 5)
		x, err := NewExchRate[USD, EUR](r)
		if err != nil {
			t.Fatalf("NewExchRate(%v) failed: %v", r, err)
		}
		r.SetInt64(-1)
		if x.String() != "USD/EUR 6/5" {
			t.Errorf("NewExchRate did not copy its argument, got %v", x)
		}
	})

	t.Run("panic", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustNewExchRate(0, 1) did not panic")
			}
		}()
		MustNewExchRate[USD, EUR](0, 1)
	})
}

func TestExchangeRate_Conv(t *testing.T) {
	tests := []struct {
		rate [2]int64
		d    [2]int64
		want string
	}{
		{[2]int64{23, 25}, [2]int64{100, 1}, "EUR 92"},
		{[2]int64{23, 25}, [2]int64{1, 3}, "EUR 23/75"},
		{[2]int64{1, 1}, [2]int64{-7, 2}, "EUR -7/2"},
		{[2]int64{5, 2}, [2]int64{0, 1}, "EUR 0"},
	}
	for _, tt := range tests {
		r := MustNewExchRate[USD, EUR](tt.rate[0], tt.rate[1])
		d := MustNewDense[USD](tt.d[0], tt.d[1])
		if got := r.Conv(d).String(); got != tt.want {
			t.Errorf("%v.Conv(%v) = %q, want %q", r, d, got, tt.want)
		}
	}
}

func TestExchangeRate_Inv(t *testing.T) {
	r := MustNewExchRate[USD, EUR](23, 25)
	inv := r.Inv()
	if got := inv.String(); got != "EUR/USD 25/23" {
		t.Errorf("%v.Inv() = %q, want %q", r, got, "EUR/USD 25/23")
	}
	if !inv.Inv().Equal(r) {
		t.Errorf("%v.Inv().Inv() = %v", r, inv.Inv())
	}
	d := MustNewDense[USD](10, 1)
	if got := inv.Conv(r.Conv(d)); !got.Equal(d) {
		t.Errorf("converting %v back and forth = %v", d, got)
	}
}

func TestCompose(t *testing.T) {
	ab := MustNewExchRate[USD, EUR](23, 25)
	bc := MustNewExchRate[EUR, JPY](160, 1)
	cd := MustNewExchRate[JPY, GBP](1, 190)

	ac := Compose(bc, ab)
	if got := ac.String(); got != "USD/JPY 736/5" {
		t.Errorf("Compose(%v, %v) = %q, want %q", bc, ab, got, "USD/JPY 736/5")
	}

	t.Run("identity", func(t *testing.T) {
		if got := Compose(IdentityRate[EUR](), ab); !got.Equal(ab) {
			t.Errorf("Compose(id, %v) = %v", ab, got)
		}
		if got := Compose(ab, IdentityRate[USD]()); !got.Equal(ab) {
			t.Errorf("Compose(%v, id) = %v", ab, got)
		}
	})

	t.Run("inverse", func(t *testing.T) {
		if got := Compose(ab.Inv(), ab); !got.IsOne() {
			t.Errorf("Compose(%v, %v) = %v, want 1", ab.Inv(), ab, got)
		}
	})

	t.Run("associative", func(t *testing.T) {
		left := Compose(cd, Compose(bc, ab))
		right := Compose(Compose(cd, bc), ab)
		if !left.Equal(right) {
			t.Errorf("composition is not associative: %v != %v", left, right)
		}
	})

	t.Run("conv", func(t *testing.T) {
		d := MustNewDense[USD](3, 1)
		if got, want := ac.Conv(d), bc.Conv(ab.Conv(d)); !got.Equal(want) {
			t.Errorf("%v.Conv(%v) = %v, want %v", ac, d, got, want)
		}
	})

	t.Run("panic", func(t *testing.T) {
		x := MustNewSomeExchRate("USD", "EUR", big.NewRat(1, 2))
		y := MustNewSomeExchRate("GBP", "JPY", big.NewRat(3, 1))
		xr, _ := FromSomeExchRate[Dynamic, Dynamic](x)
		yr, _ := FromSomeExchRate[Dynamic, Dynamic](y)
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Compose(%v, %v) did not panic", yr, xr)
			}
		}()
		Compose(yr, xr)
	})
}

func TestExchangeRate_Mul(t *testing.T) {
	r := MustNewExchRate[USD, EUR](6, 5)
	got := r.Mul(big.NewRat(5, 2))
	if want := MustNewExchRate[USD, EUR](3, 1); !got.Equal(want) {
		t.Errorf("%v.Mul(5/2) = %v, want %v", r, got, want)
	}
	for _, f := range []*big.Rat{nil, new(big.Rat), big.NewRat(-1, 1)} {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("Mul(%v) did not panic", f)
				}
			}()
			r.Mul(f)
		}()
	}
}

func TestExchangeRate_Dynamic(t *testing.T) {
	s := MustNewSomeExchRate("USD", "EUR", big.NewRat(23, 25))
	r, _ := FromSomeExchRate[Dynamic, Dynamic](s)
	usd, _ := FromSomeDense[Dynamic](MustNewSomeDense("USD", big.NewRat(100, 1)))
	gbp, _ := FromSomeDense[Dynamic](MustNewSomeDense("GBP", big.NewRat(100, 1)))

	if !r.CanConv(usd) {
		t.Errorf("%v.CanConv(%v) = false", r, usd)
	}
	if got := r.Conv(usd).String(); got != "EUR 92" {
		t.Errorf("%v.Conv(%v) = %q, want %q", r, usd, got, "EUR 92")
	}
	if r.CanConv(gbp) {
		t.Errorf("%v.CanConv(%v) = true", r, gbp)
	}
	if got := r.Inv().String(); got != "EUR/USD 25/23" {
		t.Errorf("%v.Inv() = %q", r, got)
	}

	defer func() {
		if p := recover(); p == nil {
			t.Errorf("%v.Conv(%v) did not panic", r, gbp)
		}
	}()
	r.Conv(gbp)
}

func TestExchangeRate_DynamicIdentity(t *testing.T) {
	s := MustNewSomeExchRate("USD", "EUR", big.NewRat(9, 10))
	id := IdentityRate[Dynamic]()

	t.Run("compose", func(t *testing.T) {
		tests := map[string]func(r ExchangeRate[Dynamic, Dynamic]) ExchangeRate[Dynamic, Dynamic]{
			"left":  func(r ExchangeRate[Dynamic, Dynamic]) ExchangeRate[Dynamic, Dynamic] { return Compose(id, r) },
			"right": func(r ExchangeRate[Dynamic, Dynamic]) ExchangeRate[Dynamic, Dynamic] { return Compose(r, id) },
		}
		for name, compose := range tests {
			t.Run(name, func(t *testing.T) {
				got := WithSomeExchRate(s, func(r ExchangeRate[Dynamic, Dynamic]) SomeExchangeRate {
					return compose(r).Some()
				})
				if !got.Equal(s) {
					t.Errorf("composition with identity = %v, want %v", got, s)
				}
			})
		}
	})

	t.Run("both unnamed", func(t *testing.T) {
		if got := Compose(id, id); !got.IsOne() || got.Src() != "" || got.Dst() != "" {
			t.Errorf("Compose(id, id) = %v", got)
		}
	})

	t.Run("conv", func(t *testing.T) {
		usd, _ := FromSomeDense[Dynamic](MustNewSomeDense("USD", big.NewRat(7, 2)))
		if !id.CanConv(usd) {
			t.Errorf("%v.CanConv(%v) = false", id, usd)
		}
		if got := id.Conv(usd); !got.Equal(usd) || got.Currency() != "USD" {
			t.Errorf("%v.Conv(%v) = %v, want %v", id, usd, got, usd)
		}
	})
}

func TestExchangeRate_Rat(t *testing.T) {
	r := MustNewExchRate[USD, EUR](6, 5)
	r.Rat().SetInt64(9)
	if r.Rat().Cmp(big.NewRat(6, 5)) != 0 {
		t.Errorf("Rat() returned a shared value, rate is now %v", r)
	}
}
