package money

import "errors"

// Errors returned by constructors, parsers and decoders.
// Use [errors.Is] to test for them, since they are usually wrapped.
var (
	ErrMalformedRational = errors.New("malformed rational: zero denominator")
	ErrNonPositiveScale  = errors.New("scale must be positive")
	ErrNonPositiveRate   = errors.New("exchange rate must be positive")
	ErrSeparatorConflict = errors.New("conflicting separators")
	ErrInvalidDigits     = errors.New("invalid number of fractional digits")
	ErrCurrencyMismatch  = errors.New("currency mismatch")
	ErrScaleMismatch     = errors.New("scale mismatch")
	ErrDecimalSyntax     = errors.New("invalid decimal")
	ErrInexact           = errors.New("value does not fit the scale exactly")
	ErrUnknownScale      = errors.New("unknown scale")
	ErrWireFormat        = errors.New("invalid binary data")
)
