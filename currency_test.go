package money

import (
	"fmt"
	"testing"
)

func TestCurrency_Code(t *testing.T) {
	tests := []struct {
		curr Currency
		want string
	}{
		{XXX{}, "XXX"},
		{JPY{}, "JPY"},
		{USD{}, "USD"},
		{OMR{}, "OMR"},
		{BTC{}, "BTC"},
		{Dynamic{}, ""},
	}
	for _, tt := range tests {
		got := tt.curr.Code()
		if got != tt.want {
			t.Errorf("%T.Code() = %v, want %v", tt.curr, got, tt.want)
		}
	}
}

func TestMinorDigits(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr string
			want int
		}{
			{"JPY", 0},
			{"KRW", 0},
			{"AED", 2},
			{"EUR", 2},
			{"usd", 2},
			{"OMR", 3},
			{"IQD", 3},
			{"KWD", 3},
			{"BTC", 8},
		}
		for _, tt := range tests {
			got, ok := MinorDigits(tt.curr)
			if !ok {
				t.Errorf("MinorDigits(%q) failed", tt.curr)
				continue
			}
			if got != tt.want {
				t.Errorf("MinorDigits(%q) = %v, want %v", tt.curr, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		for _, curr := range []string{"", "XAU", "XAG", "XXX", "UUU", "840"} {
			if _, ok := MinorDigits(curr); ok {
				t.Errorf("MinorDigits(%q) did not fail", curr)
			}
		}
	})
}

func TestCurrencyNum(t *testing.T) {
	tests := []struct {
		curr   string
		want   string
		wantOk bool
	}{
		{"XXX", "999", true},
		{"JPY", "392", true},
		{"usd", "840", true},
		{"OMR", "512", true},
		{"AUD", "036", true},
		{"BTC", "", false},
		{"UUU", "", false},
	}
	for _, tt := range tests {
		got, ok := CurrencyNum(tt.curr)
		if ok != tt.wantOk || got != tt.want {
			t.Errorf("CurrencyNum(%q) = %q, %v, want %q, %v", tt.curr, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestCurrencyName(t *testing.T) {
	tests := []struct {
		curr   string
		want   string
		wantOk bool
	}{
		{"USD", "US Dollar", true},
		{"xau", "Gold", true},
		{"BTC", "Bitcoin", true},
		{"UUU", "", false},
	}
	for _, tt := range tests {
		got, ok := CurrencyName(tt.curr)
		if ok != tt.wantOk || got != tt.want {
			t.Errorf("CurrencyName(%q) = %q, %v, want %q, %v", tt.curr, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestISO_LookupScale(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr, unit string
			want       string
		}{
			{"USD", "major", "1"},
			{"USD", "minor", "100"},
			{"usd", "Minor", "100"},
			{"JPY", "minor", "1"},
			{"OMR", "minor", "1000"},
			{"BTC", "minor", "100000000"},
			{"XAU", "major", "1"},
		}
		for _, tt := range tests {
			got, ok := ISO.LookupScale(tt.curr, tt.unit)
			if !ok {
				t.Errorf("ISO.LookupScale(%q, %q) failed", tt.curr, tt.unit)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("ISO.LookupScale(%q, %q) = %v, want %v", tt.curr, tt.unit, got, tt.want)
			}
		}
	})

	t.Run("absent", func(t *testing.T) {
		tests := []struct {
			curr, unit string
		}{
			{"XAU", "minor"},
			{"XAG", "minor"},
			{"XXX", "minor"},
			{"USD", "cent"},
			{"UUU", "major"},
		}
		for _, tt := range tests {
			if got, ok := ISO.LookupScale(tt.curr, tt.unit); ok {
				t.Errorf("ISO.LookupScale(%q, %q) = %v, want absent", tt.curr, tt.unit, got)
			}
		}
	})
}

func TestUnit_Scale(t *testing.T) {
	tests := []struct {
		unit Unit
		want string
	}{
		{Major[USD]{}, "1"},
		{Major[XAU]{}, "1"},
		{Minor[USD]{}, "100"},
		{Minor[KWD]{}, "1000"},
		{Minor[KRW]{}, "1"},
	}
	for _, tt := range tests {
		if got := tt.unit.Scale(); got.String() != tt.want {
			t.Errorf("%T.Scale() = %v, want %v", tt.unit, got, tt.want)
		}
	}

	if (Dynamic{}).Scale().IsValid() {
		t.Errorf("Dynamic{}.Scale() is valid")
	}

	t.Run("panic", func(t *testing.T) {
		defer func() {
			r := recover()
			if r == nil {
				t.Errorf("Minor[XAU]{}.Scale() did not panic")
				return
			}
			if msg := fmt.Sprint(r); msg != "Minor[XAU].Scale() failed: unknown scale" {
				t.Errorf("Minor[XAU]{}.Scale() panicked with %q", msg)
			}
		}()
		Minor[XAU]{}.Scale()
	})
}

// DOGE is declared outside of the package tables.
type DOGE struct{}

func (DOGE) Code() string { return "DOGE" }

func TestCurrency_Custom(t *testing.T) {
	d := MustNewDense[DOGE](42, 1)
	if d.String() != "DOGE 42" {
		t.Errorf("Dense[DOGE].String() = %q", d.String())
	}
	if _, ok := FromSomeDense[DOGE](d.Some()); !ok {
		t.Errorf("FromSomeDense[DOGE] failed")
	}
	if _, ok := MinorDigits("DOGE"); ok {
		t.Errorf("MinorDigits(\"DOGE\") did not fail")
	}
}
