/*
Package decround implements exact decimal numbers and rounding them to a
given number of places under a chosen rounding mode.
The result of rounding is exact: apart from the discarded digits, no binary
floating-point error is ever introduced.

# Representation

[Decimal] is a struct with three fields:

  - Sign: a boolean indicating whether the decimal is negative.
  - Coefficient: an unsigned integer representing the numeric value of the decimal
    without the decimal point.
  - Scale: a non-negative integer indicating the number of digits after the
    decimal point. The range of allowed values for the scale is from 0 to 19.

The numerical value of a decimal is calculated as:

  - -Coefficient / 10^Scale, if Sign is true.
  - Coefficient / 10^Scale, if Sign is false.

The same numeric value can have multiple representations.
For example, 1, 1.0, and 1.00 all represent the same value but have different
scales and coefficients. [Decimal.Cmp] and [Decimal.Equal] compare values,
the == operator compares representations.

# Constraints

The coefficient has at most 19 digits, so the range of a decimal is
determined by its scale:

	| Scale | Minimum                    | Maximum                   |
	| ----- | -------------------------- | ------------------------- |
	| 0     | -9,999,999,999,999,999,999 | 9,999,999,999,999,999,999 |
	| 2     | -99,999,999,999,999,999.99 | 99,999,999,999,999,999.99 |
	| 3     | -9,999,999,999,999,999.999 | 9,999,999,999,999,999.999 |
	| 19    |     -0.9999999999999999999 |     0.9999999999999999999 |

Special values such as NaN, Infinity, or negative zeros are not supported.

# Rounding

[Decimal.Round] discards digits beyond the requested number of places.
Negative places round above the decimal point, for example, -2 rounds to
the nearest hundred.
The following rounding modes are available:

	| Mode               | 2.345 → 2 places | -2.345 → 2 places | 2.355 → 2 places |
	| ------------------ | ---------------- | ----------------- | ---------------- |
	| [HalfEven]         | 2.34             | -2.34             | 2.36             |
	| [HalfAwayFromZero] | 2.35             | -2.35             | 2.36             |
	| [HalfTowardZero]   | 2.34             | -2.34             | 2.35             |
	| [Ceiling]          | 2.35             | -2.34             | 2.36             |
	| [Floor]            | 2.34             | -2.35             | 2.35             |
	| [TowardZero]       | 2.34             | -2.34             | 2.35             |
	| [AwayFromZero]     | 2.35             | -2.35             | 2.36             |

If a decimal already has no more than the requested number of places,
it is returned unchanged.
Rounding is idempotent and monotonic.

Rounding is carried out with uint64 arithmetic only and never allocates.
Parsing falls back to [big.Int] arithmetic for inputs with more than 19 digits.

# Errors

All methods, except the Must* family, are panic-free and pure.
Every error returned by the package matches one of two kinds with [errors.Is]:

  - [ErrInvalidArgument]: the input is malformed, for example, an unparsable
    string, an unknown rounding mode, or a scale out of range.
  - [ErrOverflow]: the result would need more than 19 digits in the coefficient.
    Rounding can only overflow for negative places, for example, rounding
    9,999,999,999,999,999,999 to the nearest ten.

[big.Int]: https://pkg.go.dev/math/big#Int
*/
package decround
