/*
Package fixed implements immutable fixed-point decimal numbers with the
precision tiers of on-chain collateralized debt protocols.
It is specifically designed for clients that must reproduce contract
arithmetic exactly, digit for digit.

# Representation

The package provides three distinct types:

	| Type  | Scale | Typical use                                      |
	| ----- | ----- | ------------------------------------------------ |
	| [Wad] | 18    | token amounts, prices                            |
	| [Ray] | 27    | rates and ratios (stability fee, redemption rate) |
	| [Rad] | 45    | accumulated debt and surplus (wad * ray)         |

Each type is a struct holding a single signed 256-bit integer, the raw
value, which is equal to the represented number multiplied by 10^scale.
For example, a wad with a raw value of 1500000000000000000 represents 1.5.

The types are nominal: a [Wad] cannot be added to a [Ray] or compared with
one, such code does not compile.
Operations between different types exist only for the combinations used by
the protocol, and every such method names the type of its result,
for example [Wad.MulRay] and [Wad.MulRayToRad].

# Constraints

The raw value is a two's complement int256, the same word the EVM uses.
Here are the resulting ranges:

	| Type  | Minimum                  | Maximum                  |
	| ----- | ------------------------ | ------------------------ |
	| [Wad] | -5.789604...e58          | 5.789604...e58           |
	| [Ray] | -5.789604...e49          | 5.789604...e49           |
	| [Rad] | -5.789604...e31          | 5.789604...e31           |

# Conversions

The package provides methods for converting values:

  - from/to raw integers:
    [NewWad], [WadFromRaw], [WadFromUint256], [WadFromWord],
    [Wad.Raw], [Wad.Uint256], [Wad.Word].
  - from/to string:
    [ParseWad], [Wad.String], [Wad.Trim], [Wad.Format].
  - from/to exact decimals:
    [WadFromDecimal], [Wad.Decimal].
  - from/to int64 and float64:
    [WadFromInt64], [WadFromFloat64], [Wad.Int64], [Wad.Float64].
  - between scales:
    [Wad.Ray], [Wad.Rad], [Ray.Rad] multiply the raw value;
    [Ray.TruncWad], [Rad.TruncWad], [Rad.TruncRay] discard digits.

[Ray] and [Rad] have the same set of constructors and methods.
Parsing uses exact decimal arithmetic, never binary floating point.
A number with a nonzero digit beyond the scale of the target type is
rejected with [ErrPrecision] instead of being rounded.

# Operations

Multiplication and division within one type rescale the result back to
the scale of the type:

	Wad.Mul: w.raw * v.raw / 10^18
	Wad.Quo: w.raw * 10^18 / v.raw

This matches the wmul/wdiv, rmul/rdiv helpers of the protocol contracts.
[Wad.MulInt] and [Wad.QuoInt] multiply and divide by a dimensionless
integer without rescaling.

# Rounding

All multiplications and divisions truncate towards zero, the same way as
integer division in the EVM.
The only exceptions are [Ray.Pow], which rounds half up at every step like
the on-chain rpow, and the explicit [Wad.Round], which rounds half to even.

# Errors

All methods are panic-free and pure, only the Must* helpers panic.
Errors are returned in the following cases:

  - Precision loss.
    Constructors return [ErrPrecision] if a number has more significant
    digits after the decimal point than the type supports.

  - Division by Zero.
    Quotients return [ErrDivisionByZero].

  - Overflow.
    Unlike standard integers, there is no "wrap around".
    If a result falls outside the int256 range, [ErrOverflow] is returned,
    mirroring a reverted contract call. Wad and ray multiplication and
    division also require the intermediate product of raw values to fit,
    the same as multiply and rmultiply on-chain. Operations with a rad
    operand keep the intermediate product in 512 bits.

Errors are wrapped with the operation and operands and can be tested with
[errors.Is].
*/
package fixed
