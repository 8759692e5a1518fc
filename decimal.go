package money

import (
	"fmt"
	"math/big"
	"strings"
)

// Separators is a validated pair of a decimal separator and an optional
// thousands separator used to render and parse decimal numbers.
// Neither separator is a digit, and they differ from each other.
// The zero value is [SepDot].
type Separators struct {
	dec  rune
	thou rune // 0 means no grouping
}

// Common separators.
// Thinsp is U+2009, Nbsp is U+00A0 and NarrowNbsp is U+202F.
var (
	SepDot             = Separators{dec: '.'}
	SepComma           = Separators{dec: ','}
	SepDotComma        = Separators{dec: '.', thou: ','}
	SepCommaDot        = Separators{dec: ',', thou: '.'}
	SepDotSpace        = Separators{dec: '.', thou: ' '}
	SepCommaSpace      = Separators{dec: ',', thou: ' '}
	SepDotThinsp       = Separators{dec: '.', thou: '\u2009'}
	SepCommaThinsp     = Separators{dec: ',', thou: '\u2009'}
	SepDotNbsp         = Separators{dec: '.', thou: '\u00a0'}
	SepCommaNbsp       = Separators{dec: ',', thou: '\u00a0'}
	SepDotNarrowNbsp   = Separators{dec: '.', thou: '\u202f'}
	SepCommaNarrowNbsp = Separators{dec: ',', thou: '\u202f'}
)

// NewSeparators returns separators with the given decimal separator and
// thousands separator. A thousands separator of 0 disables digit grouping.
//
// NewSeparators returns an error if a separator is a digit, or if both
// separators are equal.
func NewSeparators(dec, thousands rune) (Separators, error) {
	s := Separators{dec: dec, thou: thousands}
	if err := s.validate(); err != nil {
		return Separators{}, fmt.Errorf("creating separators %q and %q: %w", dec, thousands, err)
	}
	return s, nil
}

// MustNewSeparators is like [NewSeparators] but panics if the separators are invalid.
func MustNewSeparators(dec, thousands rune) Separators {
	s, err := NewSeparators(dec, thousands)
	if err != nil {
		panic(fmt.Sprintf("NewSeparators(%q, %q) failed: %v", dec, thousands, err))
	}
	return s
}

func (s Separators) validate() error {
	dec := s.Decimal()
	switch {
	case isDigit(dec):
		return ErrSeparatorConflict
	case s.thou != 0 && (isDigit(s.thou) || s.thou == dec):
		return ErrSeparatorConflict
	}
	return nil
}

// Decimal returns the decimal separator.
func (s Separators) Decimal() rune {
	if s.dec == 0 {
		return '.'
	}
	return s.dec
}

// Thousands returns the thousands separator, if any.
func (s Separators) Thousands() (rune, bool) {
	return s.thou, s.thou != 0
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// DecimalConf describes how amounts are rendered as decimal text.
type DecimalConf struct {
	// Separators are the decimal and thousands separators.
	Separators Separators
	// LeadingPlus requests a '+' in front of positive numbers.
	LeadingPlus bool
	// Digits is the number of digits after the decimal separator.
	Digits int
	// Scale multiplies the amount before rendering and divides it after
	// parsing, so that amounts can be shown in a unit other than the base
	// unit, for example in cents with a scale of 100.
	// The zero value means 1.
	Scale Scale
}

// DefaultDecimalConf renders amounts like "-1234.57".
var DefaultDecimalConf = DecimalConf{Separators: SepDot, Digits: 2}

// FormatRat renders rational number r as a decimal string with conf.Digits
// digits after the decimal separator, approximating with method a.
//
// The number is first multiplied by conf.Scale and by 10^conf.Digits, then
// approximated to an integer. A sign is shown if that integer is negative,
// or if it is positive and conf.LeadingPlus is set; zero is never signed.
//
// FormatRat returns an error if r is nil, if the separators are invalid,
// or if conf.Digits is negative.
func FormatRat(r *big.Rat, a Approximation, conf DecimalConf) (string, error) {
	if r == nil {
		return "", fmt.Errorf("formatting decimal: %w", ErrMalformedRational)
	}
	if err := conf.Separators.validate(); err != nil {
		return "", fmt.Errorf("formatting decimal: %w", err)
	}
	if conf.Digits < 0 {
		return "", fmt.Errorf("formatting decimal with %v digits: %w", conf.Digits, ErrInvalidDigits)
	}
	return formatRat(r, a, conf), nil
}

func formatRat(r *big.Rat, a Approximation, conf DecimalConf) string {
	// Scaling
	factor := pow10(conf.Digits)
	x := new(big.Rat).Mul(r, conf.Scale.rat())
	x.Mul(x, new(big.Rat).SetInt(factor))
	parts := a.approximate(x)

	// Integer and fractional parts
	ipart, fpart := new(big.Int).QuoRem(new(big.Int).Abs(parts), factor, new(big.Int))

	var buf strings.Builder

	// Arithmetic sign
	switch parts.Sign() {
	case -1:
		buf.WriteByte('-')
	case 1:
		if conf.LeadingPlus {
			buf.WriteByte('+')
		}
	}

	// Integer digits
	idigits := ipart.String()
	if thou, ok := conf.Separators.Thousands(); ok {
		first := len(idigits) % 3
		if first == 0 {
			first = 3
		}
		buf.WriteString(idigits[:first])
		for i := first; i < len(idigits); i += 3 {
			buf.WriteRune(thou)
			buf.WriteString(idigits[i : i+3])
		}
	} else {
		buf.WriteString(idigits)
	}

	// Fractional digits
	if conf.Digits > 0 {
		buf.WriteRune(conf.Separators.Decimal())
		fdigits := fpart.String()
		for i := len(fdigits); i < conf.Digits; i++ {
			buf.WriteByte('0')
		}
		buf.WriteString(fdigits)
	}

	return buf.String()
}

// syntaxError reports where a decimal string stopped matching the grammar.
// Positions count runes and start at 1.
type syntaxError struct {
	pos int
	msg string
}

func (e *syntaxError) Error() string {
	return fmt.Sprintf("%v: %v at pos %d", ErrDecimalSyntax, e.msg, e.pos)
}

func (e *syntaxError) Unwrap() error {
	return ErrDecimalSyntax
}

// ParseRat converts a decimal string to an exact rational number.
// The input string must match the following grammar, where the integer part
// may be grouped by the thousands separator only if one is configured:
//
//	[+|-] digits [decimal-separator digits]
//	[+|-] 1*3digit *(thousands-separator 3digit) [decimal-separator digits]
//
// For example, with [SepDotComma] "1,234.5", "1234.5", "-0.25" and "+7" are
// accepted, while "1,23.5", "1234,567", ".5", "1." and "1.5 " are not.
//
// ParseRat returns an error if the separators are invalid or if the string
// does not match the grammar.
func ParseRat(s string, seps Separators) (*big.Rat, error) {
	if err := seps.validate(); err != nil {
		return nil, fmt.Errorf("parsing decimal: %w", err)
	}
	r, err := parseRat(s, seps)
	if err != nil {
		return nil, fmt.Errorf("parsing decimal %q: %w", s, err)
	}
	return r, nil
}

type decimalParser struct {
	in   []rune
	pos  int
	seps Separators
}

func parseRat(s string, seps Separators) (*big.Rat, error) {
	p := decimalParser{in: []rune(s), seps: seps}

	// Sign
	neg := false
	switch p.peek() {
	case '-':
		neg = true
		p.pos++
	case '+':
		p.pos++
	}

	// Integer part
	digits, err := p.integer()
	if err != nil {
		return nil, err
	}

	// Fractional part
	frac := ""
	if p.more() && p.peek() == seps.Decimal() {
		p.pos++
		frac = p.digits()
		if frac == "" {
			return nil, p.errorf("missing fractional digits")
		}
	}

	if p.more() {
		return nil, p.errorf("unexpected %q", p.peek())
	}

	num, ok := new(big.Int).SetString(digits+frac, 10)
	if !ok {
		return nil, p.errorf("invalid digits")
	}
	if neg {
		num.Neg(num)
	}
	return new(big.Rat).SetFrac(num, pow10(len(frac))), nil
}

func (p *decimalParser) more() bool {
	return p.pos < len(p.in)
}

func (p *decimalParser) peek() rune {
	if !p.more() {
		return 0
	}
	return p.in[p.pos]
}

func (p *decimalParser) errorf(format string, args ...any) error {
	return &syntaxError{pos: p.pos + 1, msg: fmt.Sprintf(format, args...)}
}

// digits consumes a possibly empty run of ASCII digits.
func (p *decimalParser) digits() string {
	start := p.pos
	for p.more() && isDigit(p.peek()) {
		p.pos++
	}
	return string(p.in[start:p.pos])
}

// integer consumes the integer part and returns its digits without separators.
func (p *decimalParser) integer() (string, error) {
	digits := p.digits()
	if digits == "" {
		return "", p.errorf("missing integer digits")
	}
	thou, ok := p.seps.Thousands()
	if !ok || p.peek() != thou {
		return digits, nil
	}
	if len(digits) > 3 {
		return "", p.errorf("unexpected thousands separator")
	}
	for p.more() && p.peek() == thou {
		p.pos++
		group := p.digits()
		if len(group) != 3 {
			return "", p.errorf("digit group of %v digits, want 3", len(group))
		}
		digits += group
	}
	return digits, nil
}

// FormatDecimal renders the amount as a decimal string, see [FormatRat].
func (d Dense[C]) FormatDecimal(a Approximation, conf DecimalConf) (string, error) {
	s, err := FormatRat(d.rat(), a, conf)
	if err != nil {
		return "", fmt.Errorf("formatting %v: %w", d, err)
	}
	return s, nil
}

// ParseDense converts a decimal string to an exact amount, dividing the
// parsed number by conf.Scale. Only conf.Separators and conf.Scale are used.
// See [ParseRat] for the accepted grammar.
func ParseDense[C Currency](s string, conf DecimalConf) (Dense[C], error) {
	r, err := ParseRat(s, conf.Separators)
	if err != nil {
		return Dense[C]{}, fmt.Errorf("parsing %v amount: %w", codeOf[C](), err)
	}
	return newDenseUnsafe[C]("", r.Quo(r, conf.Scale.rat())), nil
}

// MustParseDense is like [ParseDense] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseDense[C Currency](s string, conf DecimalConf) Dense[C] {
	d, err := ParseDense[C](s, conf)
	if err != nil {
		panic(fmt.Sprintf("ParseDense[%v](%q) failed: %v", codeOf[C](), s, err))
	}
	return d
}

// FormatDecimal renders the amount in base units as a decimal string,
// see [FormatRat].
func (x Discrete[C, U]) FormatDecimal(a Approximation, conf DecimalConf) (string, error) {
	return x.Dense().FormatDecimal(a, conf)
}

// ParseDiscrete converts a decimal string of base units to a whole number
// of units U. Unlike [ParseDense], the parsed amount must be representable
// exactly: "0.25" is 25 US cents, while "0.253" is an error.
//
// ParseDiscrete returns an error if the string cannot be parsed, if the
// amount is not a whole number of units, or if U is [Dynamic].
func ParseDiscrete[C Currency, U Unit](s string, conf DecimalConf) (Discrete[C, U], error) {
	if isDynamic[U]() {
		return Discrete[C, U]{}, fmt.Errorf("parsing %v amount: %w", codeOf[C](), ErrUnknownScale)
	}
	d, err := ParseDense[C](s, conf)
	if err != nil {
		return Discrete[C, U]{}, err
	}
	x, rem := DiscreteFromDense[C, U](Truncate, d)
	if !rem.IsZero() {
		return Discrete[C, U]{}, fmt.Errorf("parsing %v amount %q at scale %v: %w", codeOf[C](), s, x.Scale(), ErrInexact)
	}
	return x, nil
}

// FormatDecimal renders the exchange rate as a decimal string with the given
// number of digits after the decimal separator, see [FormatRat].
func (r ExchangeRate[Src, Dst]) FormatDecimal(a Approximation, seps Separators, digits int) (string, error) {
	s, err := FormatRat(r.rat(), a, DecimalConf{Separators: seps, Digits: digits})
	if err != nil {
		return "", fmt.Errorf("formatting %v: %w", r, err)
	}
	return s, nil
}

// ParseExchRate converts a decimal string to an exact exchange rate.
// See [ParseRat] for the accepted grammar; a leading '-' is always rejected.
//
// ParseExchRate returns an error if the string cannot be parsed or if the
// rate is not positive.
func ParseExchRate[Src, Dst Currency](s string, seps Separators) (ExchangeRate[Src, Dst], error) {
	r, err := parseRateText(s, seps)
	if err != nil {
		return ExchangeRate[Src, Dst]{}, fmt.Errorf("parsing %v/%v exchange rate: %w", codeOf[Src](), codeOf[Dst](), err)
	}
	return NewExchRate[Src, Dst](r)
}

// MustParseExchRate is like [ParseExchRate] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding exchange rates.
func MustParseExchRate[Src, Dst Currency](s string, seps Separators) ExchangeRate[Src, Dst] {
	r, err := ParseExchRate[Src, Dst](s, seps)
	if err != nil {
		panic(fmt.Sprintf("ParseExchRate[%v, %v](%q) failed: %v", codeOf[Src](), codeOf[Dst](), s, err))
	}
	return r
}

func parseRateText(s string, seps Separators) (*big.Rat, error) {
	if strings.HasPrefix(s, "-") {
		return nil, fmt.Errorf("parsing decimal %q: %w", s, ErrNonPositiveRate)
	}
	return ParseRat(s, seps)
}
