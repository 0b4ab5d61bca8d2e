package fixed

import (
	"database/sql/driver"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// Ray is a fixed-point decimal number with [RayScale] digits after the
// decimal point.
// Rays are used for rates and ratios, such as stability fees,
// redemption rates and collateralization ratios.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A Ray holds a single signed 256-bit integer, the raw value, equal to
// the represented number multiplied by 10^27.
// Two rays are equal if and only if their raw values are equal, so rays can
// be compared with == and used as map keys.
type Ray struct {
	raw word
}

// NewRay returns a ray with the given raw value.
// NewRay returns an error if the raw value does not fit in int256.
func NewRay(raw *big.Int) (Ray, error) {
	r, ok := wordFromBig(raw)
	if !ok {
		return Ray{}, fmt.Errorf("converting %v to %T: %w", raw, Ray{}, ErrOverflow)
	}
	return Ray{raw: r}, nil
}

// RayFromRaw returns a ray with the given raw value.
// For example, RayFromRaw(5) represents 0.000000000000000000000000005.
func RayFromRaw(raw int64) Ray {
	return Ray{raw: wordFromInt64(raw)}
}

// RayFromUint256 returns a ray with the given raw value, usually decoded
// from an ABI uint256 slot.
// RayFromUint256 returns an error if the raw value is 2^255 or greater.
func RayFromUint256(raw *uint256.Int) (Ray, error) {
	r, ok := wordFromMag(raw, false)
	if !ok {
		return Ray{}, fmt.Errorf("converting %v to %T: %w", raw.Dec(), Ray{}, ErrOverflow)
	}
	return Ray{raw: r}, nil
}

// RayFromWord returns a ray with the raw value encoded as a big-endian
// two's complement ABI int256 word.
func RayFromWord(b [32]byte) Ray {
	var z uint256.Int
	z.SetBytes32(b[:])
	return Ray{raw: word(z)}
}

// ParseRay converts a decimal string to a ray.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	1.83e5
//	0.22e-9
//
// ParseRay returns an error if:
//   - the string does not represent a valid decimal number;
//   - the number has a nonzero digit beyond the 27th digit after the decimal point;
//   - the number does not fit in a ray.
func ParseRay(s string) (Ray, error) {
	r, err := parseWord(s, RayScale)
	if err != nil {
		return Ray{}, fmt.Errorf("converting %q to %T: %w", s, Ray{}, err)
	}
	return Ray{raw: r}, nil
}

// RayFromInt64 converts an integer to a ray, so RayFromInt64(5) represents 5.
// RayFromInt64 never fails for values of int64, the error is returned for
// symmetry with other constructors.
func RayFromInt64(s int64) (Ray, error) {
	r, err := wordFromInt64(s).lsh(RayScale)
	if err != nil {
		return Ray{}, fmt.Errorf("converting %v to %T: %w", s, Ray{}, err)
	}
	return Ray{raw: r}, nil
}

// RayFromDecimal converts an exact decimal to a ray.
// See [ParseRay] for the error conditions.
func RayFromDecimal(d decimal.Decimal) (Ray, error) {
	r, err := wordFromDecimal(d, RayScale)
	if err != nil {
		return Ray{}, fmt.Errorf("converting %v to %T: %w", d, Ray{}, err)
	}
	return Ray{raw: r}, nil
}

// RayFromFloat64 converts a float to a ray.
// The shortest decimal representation of the float is used,
// so RayFromFloat64(0.1) is exactly 0.1.
// RayFromFloat64 returns an error for NaN and infinities.
func RayFromFloat64(f float64) (Ray, error) {
	r, err := wordFromFloat64(f, RayScale)
	if err != nil {
		return Ray{}, fmt.Errorf("converting %v to %T: %w", f, Ray{}, err)
	}
	return Ray{raw: r}, nil
}

// Raw returns the raw value of r as a signed big integer.
func (r Ray) Raw() *big.Int {
	return r.raw.big()
}

// Uint256 returns the raw value of r for an ABI uint256 slot.
// Uint256 returns an error if r is negative.
func (r Ray) Uint256() (*uint256.Int, error) {
	if r.IsNeg() {
		return nil, fmt.Errorf("converting %v to uint256: %w", r, ErrNegative)
	}
	return r.raw.mag(), nil
}

// Word returns the raw value of r as a big-endian two's complement
// ABI int256 word.
func (r Ray) Word() [32]byte {
	return r.raw.u().Bytes32()
}

// Add returns the sum of r and s.
func (r Ray) Add(s Ray) (Ray, error) {
	z, err := r.raw.add(s.raw)
	if err != nil {
		return Ray{}, fmt.Errorf("computing [%v + %v]: %w", r, s, err)
	}
	return Ray{raw: z}, nil
}

// Sub returns the difference of r and s.
func (r Ray) Sub(s Ray) (Ray, error) {
	z, err := r.raw.sub(s.raw)
	if err != nil {
		return Ray{}, fmt.Errorf("computing [%v - %v]: %w", r, s, err)
	}
	return Ray{raw: z}, nil
}

// Neg returns r with opposite sign.
func (r Ray) Neg() (Ray, error) {
	z, err := r.raw.neg()
	if err != nil {
		return Ray{}, fmt.Errorf("computing [-%v]: %w", r, err)
	}
	return Ray{raw: z}, nil
}

// Abs returns the absolute value of r.
func (r Ray) Abs() (Ray, error) {
	z, err := r.raw.abs()
	if err != nil {
		return Ray{}, fmt.Errorf("computing [abs(%v)]: %w", r, err)
	}
	return Ray{raw: z}, nil
}

// Mul returns r * s truncated towards zero, like rmultiply in the contracts:
// r.raw * s.raw / 10^27.
func (r Ray) Mul(s Ray) (Ray, error) {
	z, err := r.raw.mulDiv(s.raw, pow10[RayScale])
	if err != nil {
		return Ray{}, fmt.Errorf("computing [%v * %v]: %w", r, s, err)
	}
	return Ray{raw: z}, nil
}

// Quo returns r / s truncated towards zero, like rdivide in the contracts:
// r.raw * 10^27 / s.raw.
func (r Ray) Quo(s Ray) (Ray, error) {
	z, err := r.raw.mulDiv(pow10[RayScale], s.raw)
	if err != nil {
		return Ray{}, fmt.Errorf("computing [%v / %v]: %w", r, s, err)
	}
	return Ray{raw: z}, nil
}

// MulInt returns r multiplied by a dimensionless integer.
// The raw value of the result is r.raw * k, no rescaling is applied.
func (r Ray) MulInt(k int64) (Ray, error) {
	z, err := r.raw.mul(wordFromInt64(k))
	if err != nil {
		return Ray{}, fmt.Errorf("computing [%v * %v]: %w", r, k, err)
	}
	return Ray{raw: z}, nil
}

// QuoInt returns r divided by a dimensionless integer and truncated
// towards zero.
func (r Ray) QuoInt(k int64) (Ray, error) {
	z, err := r.raw.quo(wordFromInt64(k))
	if err != nil {
		return Ray{}, fmt.Errorf("computing [%v / %v]: %w", r, k, err)
	}
	return Ray{raw: z}, nil
}

// Round returns r rounded to the specified number of digits after the
// decimal point using "half to even" rule.
// The scale of the result is still 27, the discarded digits are zeros.
// Digits outside of [0, 27] are clamped.
func (r Ray) Round(digits int) (Ray, error) {
	digits = min(max(digits, 0), RayScale)
	z, err := r.raw.rshHalfEven(RayScale - digits).lsh(RayScale - digits)
	if err != nil {
		return Ray{}, fmt.Errorf("rounding %v to %v digit(s): %w", r, digits, err)
	}
	return Ray{raw: z}, nil
}

// Trunc returns r truncated towards zero to the specified number of digits
// after the decimal point.
// Digits outside of [0, 27] are clamped.
func (r Ray) Trunc(digits int) Ray {
	digits = min(max(digits, 0), RayScale)
	z, _ := r.raw.rshDown(RayScale - digits).lsh(RayScale - digits) // |z| <= |r|
	return Ray{raw: z}
}

// Cmp compares r and s numerically and returns:
//
//	-1 if r < s
//	 0 if r == s
//	+1 if r > s
func (r Ray) Cmp(s Ray) int {
	return r.raw.cmp(s.raw)
}

// Equal returns true if r == s.
func (r Ray) Equal(s Ray) bool {
	return r.raw == s.raw
}

// Less returns true if r < s.
func (r Ray) Less(s Ray) bool {
	return r.Cmp(s) < 0
}

// Max returns the larger of r and s.
func (r Ray) Max(s Ray) Ray {
	if r.Cmp(s) >= 0 {
		return r
	}
	return s
}

// Min returns the smaller of r and s.
func (r Ray) Min(s Ray) Ray {
	if r.Cmp(s) <= 0 {
		return r
	}
	return s
}

// Sign returns:
//
//	-1 if r < 0
//	 0 if r == 0
//	+1 if r > 0
func (r Ray) Sign() int {
	return r.raw.sign()
}

// IsZero returns true if r == 0.
func (r Ray) IsZero() bool {
	return r.raw.isZero()
}

// IsNeg returns true if r < 0.
func (r Ray) IsNeg() bool {
	return r.raw.isNeg()
}

// IsPos returns true if r > 0.
func (r Ray) IsPos() bool {
	return r.Sign() > 0
}

// Int64 returns the integer part of r truncated towards zero.
// If the integer part does not fit in int64, the second result is false.
func (r Ray) Int64() (int64, bool) {
	b := r.raw.rshDown(RayScale).big()
	if !b.IsInt64() {
		return 0, false
	}
	return b.Int64(), true
}

// Float64 returns the nearest float to r.
// If the conversion is exact, the second result is true.
func (r Ray) Float64() (float64, bool) {
	return r.Decimal().Float64()
}

// Decimal returns r as an exact decimal.
func (r Ray) Decimal() decimal.Decimal {
	return r.raw.decimal(RayScale)
}

// String implements the [fmt.Stringer] interface and returns r with
// exactly 27 digits after the decimal point, for example
// "1.500000000000000000000000000".
// Also see method [Ray.Trim].
func (r Ray) String() string {
	return r.raw.string(RayScale)
}

// Trim returns r without trailing zeros after the decimal point,
// for example "1.5".
func (r Ray) Trim() string {
	return r.raw.trim(RayScale)
}

// GoString implements the [fmt.GoStringer] interface.
func (r Ray) GoString() string {
	return fmt.Sprintf("fixed.MustParseRay(%q)", r.Trim())
}

// Format implements the [fmt.Formatter] interface.
// The following verbs are available:
//
//	%f, %s, %v: -1.500000000000000000000000000
//	%q:        "-1.500000000000000000000000000"
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
// Precision is only supported for %f verb, digits beyond the precision are
// truncated.
func (r Ray) Format(state fmt.State, verb rune) {
	if verb == 'v' && state.Flag('#') {
		fmt.Fprint(state, r.GoString())
		return
	}
	formatWord(state, verb, r.raw, RayScale, "Ray")
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Ray.String].
func (r Ray) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see method [ParseRay].
func (r *Ray) UnmarshalText(text []byte) error {
	var err error
	*r, err = ParseRay(string(text))
	return err
}

// Scan implements the [sql.Scanner] interface.
// Strings, byte slices, int64 and float64 values are supported.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (r *Ray) Scan(value any) error {
	z, err := scanWord(value, RayScale)
	if err != nil {
		return fmt.Errorf("converting from %T to %T: %w", value, Ray{}, err)
	}
	*r = Ray{raw: z}
	return nil
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (r Ray) Value() (driver.Value, error) {
	return r.String(), nil
}

// Pow returns r raised to the power n.
// Every intermediate product is rounded half up to 27 digits after the
// decimal point, exactly as rates are compounded on-chain, so a
// per-second rate raised to the number of elapsed seconds gives the same
// accumulated rate the contracts compute.
//
// Pow returns an error if r is negative or an intermediate product does
// not fit in 256 bits.
func (r Ray) Pow(n uint64) (Ray, error) {
	z, err := r.raw.rpow(n, pow10[RayScale])
	if err != nil {
		return Ray{}, fmt.Errorf("computing [%v^%v]: %w", r, n, err)
	}
	return Ray{raw: z}, nil
}
