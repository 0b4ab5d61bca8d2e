package fixed

import (
	"database/sql/driver"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// Wad is a fixed-point decimal number with [WadScale] digits after the
// decimal point.
// Wads are used for token amounts and prices.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A Wad holds a single signed 256-bit integer, the raw value, equal to
// the represented number multiplied by 10^18.
// Two wads are equal if and only if their raw values are equal, so wads can
// be compared with == and used as map keys.
type Wad struct {
	raw word
}

// NewWad returns a wad with the given raw value.
// NewWad returns an error if the raw value does not fit in int256.
func NewWad(raw *big.Int) (Wad, error) {
	w, ok := wordFromBig(raw)
	if !ok {
		return Wad{}, fmt.Errorf("converting %v to %T: %w", raw, Wad{}, ErrOverflow)
	}
	return Wad{raw: w}, nil
}

// WadFromRaw returns a wad with the given raw value.
// For example, WadFromRaw(5) represents 0.000000000000000005.
func WadFromRaw(raw int64) Wad {
	return Wad{raw: wordFromInt64(raw)}
}

// WadFromUint256 returns a wad with the given raw value, usually decoded
// from an ABI uint256 slot.
// WadFromUint256 returns an error if the raw value is 2^255 or greater.
func WadFromUint256(raw *uint256.Int) (Wad, error) {
	w, ok := wordFromMag(raw, false)
	if !ok {
		return Wad{}, fmt.Errorf("converting %v to %T: %w", raw.Dec(), Wad{}, ErrOverflow)
	}
	return Wad{raw: w}, nil
}

// WadFromWord returns a wad with the raw value encoded as a big-endian
// two's complement ABI int256 word.
func WadFromWord(b [32]byte) Wad {
	var z uint256.Int
	z.SetBytes32(b[:])
	return Wad{raw: word(z)}
}

// ParseWad converts a decimal string to a wad.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	1.83e5
//	0.22e-9
//
// ParseWad returns an error if:
//   - the string does not represent a valid decimal number;
//   - the number has a nonzero digit beyond the 18th digit after the decimal point;
//   - the number does not fit in a wad.
func ParseWad(s string) (Wad, error) {
	w, err := parseWord(s, WadScale)
	if err != nil {
		return Wad{}, fmt.Errorf("converting %q to %T: %w", s, Wad{}, err)
	}
	return Wad{raw: w}, nil
}

// WadFromInt64 converts an integer to a wad, so WadFromInt64(5) represents 5.
// WadFromInt64 never fails for values of int64, the error is returned for
// symmetry with other constructors.
func WadFromInt64(v int64) (Wad, error) {
	w, err := wordFromInt64(v).lsh(WadScale)
	if err != nil {
		return Wad{}, fmt.Errorf("converting %v to %T: %w", v, Wad{}, err)
	}
	return Wad{raw: w}, nil
}

// WadFromDecimal converts an exact decimal to a wad.
// See [ParseWad] for the error conditions.
func WadFromDecimal(d decimal.Decimal) (Wad, error) {
	w, err := wordFromDecimal(d, WadScale)
	if err != nil {
		return Wad{}, fmt.Errorf("converting %v to %T: %w", d, Wad{}, err)
	}
	return Wad{raw: w}, nil
}

// WadFromFloat64 converts a float to a wad.
// The shortest decimal representation of the float is used,
// so WadFromFloat64(0.1) is exactly 0.1.
// WadFromFloat64 returns an error for NaN and infinities.
func WadFromFloat64(f float64) (Wad, error) {
	w, err := wordFromFloat64(f, WadScale)
	if err != nil {
		return Wad{}, fmt.Errorf("converting %v to %T: %w", f, Wad{}, err)
	}
	return Wad{raw: w}, nil
}

// Raw returns the raw value of w as a signed big integer.
func (w Wad) Raw() *big.Int {
	return w.raw.big()
}

// Uint256 returns the raw value of w for an ABI uint256 slot.
// Uint256 returns an error if w is negative.
func (w Wad) Uint256() (*uint256.Int, error) {
	if w.IsNeg() {
		return nil, fmt.Errorf("converting %v to uint256: %w", w, ErrNegative)
	}
	return w.raw.mag(), nil
}

// Word returns the raw value of w as a big-endian two's complement
// ABI int256 word.
func (w Wad) Word() [32]byte {
	return w.raw.u().Bytes32()
}

// Add returns the sum of w and v.
func (w Wad) Add(v Wad) (Wad, error) {
	z, err := w.raw.add(v.raw)
	if err != nil {
		return Wad{}, fmt.Errorf("computing [%v + %v]: %w", w, v, err)
	}
	return Wad{raw: z}, nil
}

// Sub returns the difference of w and v.
func (w Wad) Sub(v Wad) (Wad, error) {
	z, err := w.raw.sub(v.raw)
	if err != nil {
		return Wad{}, fmt.Errorf("computing [%v - %v]: %w", w, v, err)
	}
	return Wad{raw: z}, nil
}

// Neg returns w with opposite sign.
func (w Wad) Neg() (Wad, error) {
	z, err := w.raw.neg()
	if err != nil {
		return Wad{}, fmt.Errorf("computing [-%v]: %w", w, err)
	}
	return Wad{raw: z}, nil
}

// Abs returns the absolute value of w.
func (w Wad) Abs() (Wad, error) {
	z, err := w.raw.abs()
	if err != nil {
		return Wad{}, fmt.Errorf("computing [abs(%v)]: %w", w, err)
	}
	return Wad{raw: z}, nil
}

// Mul returns the product of w and v truncated towards zero to 18 digits
// after the decimal point.
// The raw value of the result is w.raw * v.raw / 10^18.
func (w Wad) Mul(v Wad) (Wad, error) {
	z, err := w.raw.mulDiv(v.raw, pow10[WadScale])
	if err != nil {
		return Wad{}, fmt.Errorf("computing [%v * %v]: %w", w, v, err)
	}
	return Wad{raw: z}, nil
}

// Quo returns the quotient of w and v truncated towards zero to 18 digits
// after the decimal point.
// The raw value of the result is w.raw * 10^18 / v.raw.
func (w Wad) Quo(v Wad) (Wad, error) {
	z, err := w.raw.mulDiv(pow10[WadScale], v.raw)
	if err != nil {
		return Wad{}, fmt.Errorf("computing [%v / %v]: %w", w, v, err)
	}
	return Wad{raw: z}, nil
}

// MulInt returns w multiplied by a dimensionless integer.
// The raw value of the result is w.raw * k, no rescaling is applied.
func (w Wad) MulInt(k int64) (Wad, error) {
	z, err := w.raw.mul(wordFromInt64(k))
	if err != nil {
		return Wad{}, fmt.Errorf("computing [%v * %v]: %w", w, k, err)
	}
	return Wad{raw: z}, nil
}

// QuoInt returns w divided by a dimensionless integer and truncated
// towards zero.
func (w Wad) QuoInt(k int64) (Wad, error) {
	z, err := w.raw.quo(wordFromInt64(k))
	if err != nil {
		return Wad{}, fmt.Errorf("computing [%v / %v]: %w", w, k, err)
	}
	return Wad{raw: z}, nil
}

// Round returns w rounded to the specified number of digits after the
// decimal point using "half to even" rule.
// The scale of the result is still 18, the discarded digits are zeros.
// Digits outside of [0, 18] are clamped.
func (w Wad) Round(digits int) (Wad, error) {
	digits = min(max(digits, 0), WadScale)
	z, err := w.raw.rshHalfEven(WadScale - digits).lsh(WadScale - digits)
	if err != nil {
		return Wad{}, fmt.Errorf("rounding %v to %v digit(s): %w", w, digits, err)
	}
	return Wad{raw: z}, nil
}

// Trunc returns w truncated towards zero to the specified number of digits
// after the decimal point.
// Digits outside of [0, 18] are clamped.
func (w Wad) Trunc(digits int) Wad {
	digits = min(max(digits, 0), WadScale)
	z, _ := w.raw.rshDown(WadScale - digits).lsh(WadScale - digits) // |z| <= |w|
	return Wad{raw: z}
}

// Cmp compares w and v numerically and returns:
//
//	-1 if w < v
//	 0 if w == v
//	+1 if w > v
func (w Wad) Cmp(v Wad) int {
	return w.raw.cmp(v.raw)
}

// Equal returns true if w == v.
func (w Wad) Equal(v Wad) bool {
	return w.raw == v.raw
}

// Less returns true if w < v.
func (w Wad) Less(v Wad) bool {
	return w.Cmp(v) < 0
}

// Max returns the larger of w and v.
func (w Wad) Max(v Wad) Wad {
	if w.Cmp(v) >= 0 {
		return w
	}
	return v
}

// Min returns the smaller of w and v.
func (w Wad) Min(v Wad) Wad {
	if w.Cmp(v) <= 0 {
		return w
	}
	return v
}

// Sign returns:
//
//	-1 if w < 0
//	 0 if w == 0
//	+1 if w > 0
func (w Wad) Sign() int {
	return w.raw.sign()
}

// IsZero returns true if w == 0.
func (w Wad) IsZero() bool {
	return w.raw.isZero()
}

// IsNeg returns true if w < 0.
func (w Wad) IsNeg() bool {
	return w.raw.isNeg()
}

// IsPos returns true if w > 0.
func (w Wad) IsPos() bool {
	return w.Sign() > 0
}

// Int64 returns the integer part of w truncated towards zero.
// If the integer part does not fit in int64, the second result is false.
func (w Wad) Int64() (int64, bool) {
	b := w.raw.rshDown(WadScale).big()
	if !b.IsInt64() {
		return 0, false
	}
	return b.Int64(), true
}

// Float64 returns the nearest float to w.
// If the conversion is exact, the second result is true.
func (w Wad) Float64() (float64, bool) {
	return w.Decimal().Float64()
}

// Decimal returns w as an exact decimal.
func (w Wad) Decimal() decimal.Decimal {
	return w.raw.decimal(WadScale)
}

// String implements the [fmt.Stringer] interface and returns w with
// exactly 18 digits after the decimal point, for example
// "1.500000000000000000".
// Also see method [Wad.Trim].
func (w Wad) String() string {
	return w.raw.string(WadScale)
}

// Trim returns w without trailing zeros after the decimal point,
// for example "1.5".
func (w Wad) Trim() string {
	return w.raw.trim(WadScale)
}

// GoString implements the [fmt.GoStringer] interface.
func (w Wad) GoString() string {
	return fmt.Sprintf("fixed.MustParseWad(%q)", w.Trim())
}

// Format implements the [fmt.Formatter] interface.
// The following verbs are available:
//
//	%f, %s, %v: -1.500000000000000000
//	%q:        "-1.500000000000000000"
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
// Precision is only supported for %f verb, digits beyond the precision are
// truncated.
func (w Wad) Format(state fmt.State, verb rune) {
	if verb == 'v' && state.Flag('#') {
		fmt.Fprint(state, w.GoString())
		return
	}
	formatWord(state, verb, w.raw, WadScale, "Wad")
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Wad.String].
func (w Wad) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see method [ParseWad].
func (w *Wad) UnmarshalText(text []byte) error {
	var err error
	*w, err = ParseWad(string(text))
	return err
}

// Scan implements the [sql.Scanner] interface.
// Strings, byte slices, int64 and float64 values are supported.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (w *Wad) Scan(value any) error {
	z, err := scanWord(value, WadScale)
	if err != nil {
		return fmt.Errorf("converting from %T to %T: %w", value, Wad{}, err)
	}
	*w = Wad{raw: z}
	return nil
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (w Wad) Value() (driver.Value, error) {
	return w.String(), nil
}
