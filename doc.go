/*
Package money implements exact monetary values whose currency is part of
their type.
It uses [math/big] rationals and integers, so amounts never lose precision
and never overflow, and it never produces or accepts floating-point numbers.

# Features

  - Immutable monetary values, ensuring safe usage across multiple goroutines
  - Currencies and units as type parameters, so amounts in different
    currencies or units cannot be mixed by mistake
  - Exact arithmetic on rational amounts, with explicit approximation to
    whole units that returns the remainder
  - Exchange rates that compose like functions
  - Decimal rendering and parsing with configurable separators
  - Type-erased values and a stable binary encoding for storage and transport

# Representation

A [Dense] amount is an exact rational number of base units, for example
1/3 of a US dollar, tagged with its currency:

	var d money.Dense[money.USD]

A [Discrete] amount is a whole number of units of a currency, tagged with the
currency and the unit:

	var x money.Discrete[money.USD, money.Minor[money.USD]] // US cents

A unit has a [Scale], a positive rational number of units per base unit.
[Major] and [Minor] cover the units defined by ISO 4217; callers declare their
own currency and unit markers for anything else, for example grams of gold.
Package scaletable loads scales of named units from configuration.

# Operations

Dense amounts support addition, subtraction, negation and multiplication by
a scalar. There is no multiplication of two amounts and no division: use
[Dense.Rat] to leave the realm of money explicitly.
Discrete amounts additionally support splitting into equal parts.

# Approximation

An exact amount becomes a whole number of units with [DiscreteFromDense],
using one of the [Approximation] methods Round, Floor, Ceiling or Truncate.
The exact remainder is returned alongside, so no money is lost:

	x, rem := money.DiscreteFromDense[money.USD, money.Minor[money.USD]](money.Round, d)

# Exchange Rates

An [ExchangeRate] from Src to Dst converts Dense amounts and composes with
other rates through [Compose], with [IdentityRate] as identity and
[ExchangeRate.Inv] as inverse.

# Erased Values

[SomeDense], [SomeDiscrete] and [SomeExchangeRate] carry the currency and
scale as data. They are obtained with the Some methods, restored with
[FromSomeDense] and similar functions, and handled generically with
[WithSomeDense] and similar functions, which tag the value with [Dynamic].
Every value implements [encoding.BinaryMarshaler] and
[encoding.BinaryUnmarshaler]; a typed value and its erased form share the
same encoding.

# Errors

Constructors, parsers and decoders return errors that wrap one of the
exported sentinel errors, such as [ErrNonPositiveRate] or [ErrInexact].
Must variants and operations on [Dynamic] values with mismatched currencies
or scales panic.
*/
package money
