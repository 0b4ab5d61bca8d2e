package fixed

import (
	"database/sql/driver"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// Rad is a fixed-point decimal number with [RadScale] digits after the
// decimal point.
// Rads are used for accumulated debt and surplus amounts, which are
// products of a wad and a ray.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A Rad holds a single signed 256-bit integer, the raw value, equal to
// the represented number multiplied by 10^45.
// Two rads are equal if and only if their raw values are equal, so rads can
// be compared with == and used as map keys.
type Rad struct {
	raw word
}

// NewRad returns a rad with the given raw value.
// NewRad returns an error if the raw value does not fit in int256.
func NewRad(raw *big.Int) (Rad, error) {
	d, ok := wordFromBig(raw)
	if !ok {
		return Rad{}, fmt.Errorf("converting %v to %T: %w", raw, Rad{}, ErrOverflow)
	}
	return Rad{raw: d}, nil
}

// RadFromRaw returns a rad with the given raw value.
// For example, RadFromRaw(5) represents 0.000000000000000000000000000000000000000000005.
func RadFromRaw(raw int64) Rad {
	return Rad{raw: wordFromInt64(raw)}
}

// RadFromUint256 returns a rad with the given raw value, usually decoded
// from an ABI uint256 slot.
// RadFromUint256 returns an error if the raw value is 2^255 or greater.
func RadFromUint256(raw *uint256.Int) (Rad, error) {
	d, ok := wordFromMag(raw, false)
	if !ok {
		return Rad{}, fmt.Errorf("converting %v to %T: %w", raw.Dec(), Rad{}, ErrOverflow)
	}
	return Rad{raw: d}, nil
}

// RadFromWord returns a rad with the raw value encoded as a big-endian
// two's complement ABI int256 word.
func RadFromWord(b [32]byte) Rad {
	var z uint256.Int
	z.SetBytes32(b[:])
	return Rad{raw: word(z)}
}

// ParseRad converts a decimal string to a rad.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	1.83e5
//	0.22e-9
//
// ParseRad returns an error if:
//   - the string does not represent a valid decimal number;
//   - the number has a nonzero digit beyond the 45th digit after the decimal point;
//   - the number does not fit in a rad.
func ParseRad(s string) (Rad, error) {
	d, err := parseWord(s, RadScale)
	if err != nil {
		return Rad{}, fmt.Errorf("converting %q to %T: %w", s, Rad{}, err)
	}
	return Rad{raw: d}, nil
}

// RadFromInt64 converts an integer to a rad.
func RadFromInt64(e int64) (Rad, error) {
	d, err := wordFromInt64(e).lsh(RadScale)
	if err != nil {
		return Rad{}, fmt.Errorf("converting %v to %T: %w", e, Rad{}, err)
	}
	return Rad{raw: d}, nil
}

// RadFromDecimal converts an exact decimal to a rad.
func RadFromDecimal(d decimal.Decimal) (Rad, error) {
	z, err := wordFromDecimal(d, RadScale)
	if err != nil {
		return Rad{}, fmt.Errorf("converting %v to %T: %w", d, Rad{}, err)
	}
	return Rad{raw: z}, nil
}

// RadFromFloat64 converts a float to a rad, see [WadFromFloat64].
func RadFromFloat64(f float64) (Rad, error) {
	d, err := wordFromFloat64(f, RadScale)
	if err != nil {
		return Rad{}, fmt.Errorf("converting %v to %T: %w", f, Rad{}, err)
	}
	return Rad{raw: d}, nil
}

// Raw returns the raw value of d as a signed big integer.
func (d Rad) Raw() *big.Int {
	return d.raw.big()
}

// Uint256 returns the raw value of d, which must not be negative.
func (d Rad) Uint256() (*uint256.Int, error) {
	if d.IsNeg() {
		return nil, fmt.Errorf("converting %v to uint256: %w", d, ErrNegative)
	}
	return d.raw.mag(), nil
}

// Word returns the raw value of d as an ABI int256 word.
func (d Rad) Word() [32]byte {
	return d.raw.u().Bytes32()
}

// Add returns the sum of d and e.
func (d Rad) Add(e Rad) (Rad, error) {
	z, err := d.raw.add(e.raw)
	if err != nil {
		return Rad{}, fmt.Errorf("computing [%v + %v]: %w", d, e, err)
	}
	return Rad{raw: z}, nil
}

// Sub returns the difference of d and e.
func (d Rad) Sub(e Rad) (Rad, error) {
	z, err := d.raw.sub(e.raw)
	if err != nil {
		return Rad{}, fmt.Errorf("computing [%v - %v]: %w", d, e, err)
	}
	return Rad{raw: z}, nil
}

// Neg returns d with opposite sign.
func (d Rad) Neg() (Rad, error) {
	z, err := d.raw.neg()
	if err != nil {
		return Rad{}, fmt.Errorf("computing [-%v]: %w", d, err)
	}
	return Rad{raw: z}, nil
}

// Abs returns the absolute value of d.
func (d Rad) Abs() (Rad, error) {
	z, err := d.raw.abs()
	if err != nil {
		return Rad{}, fmt.Errorf("computing [abs(%v)]: %w", d, err)
	}
	return Rad{raw: z}, nil
}

// Mul returns d.raw * e.raw / 10^45 truncated towards zero.
func (d Rad) Mul(e Rad) (Rad, error) {
	z, err := d.raw.mulDivWide(e.raw, pow10[RadScale])
	if err != nil {
		return Rad{}, fmt.Errorf("computing [%v * %v]: %w", d, e, err)
	}
	return Rad{raw: z}, nil
}

// Quo returns d.raw * 10^45 / e.raw truncated towards zero.
func (d Rad) Quo(e Rad) (Rad, error) {
	z, err := d.raw.mulDivWide(pow10[RadScale], e.raw)
	if err != nil {
		return Rad{}, fmt.Errorf("computing [%v / %v]: %w", d, e, err)
	}
	return Rad{raw: z}, nil
}

// MulInt returns d * k.
func (d Rad) MulInt(k int64) (Rad, error) {
	z, err := d.raw.mul(wordFromInt64(k))
	if err != nil {
		return Rad{}, fmt.Errorf("computing [%v * %v]: %w", d, k, err)
	}
	return Rad{raw: z}, nil
}

// QuoInt returns d / k truncated towards zero.
func (d Rad) QuoInt(k int64) (Rad, error) {
	z, err := d.raw.quo(wordFromInt64(k))
	if err != nil {
		return Rad{}, fmt.Errorf("computing [%v / %v]: %w", d, k, err)
	}
	return Rad{raw: z}, nil
}

// Round is like [Wad.Round] with digits clamped to [0, 45].
func (d Rad) Round(digits int) (Rad, error) {
	digits = min(max(digits, 0), RadScale)
	z, err := d.raw.rshHalfEven(RadScale - digits).lsh(RadScale - digits)
	if err != nil {
		return Rad{}, fmt.Errorf("rounding %v to %v digit(s): %w", d, digits, err)
	}
	return Rad{raw: z}, nil
}

// Trunc is like [Wad.Trunc] with digits clamped to [0, 45].
func (d Rad) Trunc(digits int) Rad {
	digits = min(max(digits, 0), RadScale)
	z, _ := d.raw.rshDown(RadScale - digits).lsh(RadScale - digits) // |z| <= |d|
	return Rad{raw: z}
}

// Cmp compares d and e numerically.
func (d Rad) Cmp(e Rad) int {
	return d.raw.cmp(e.raw)
}

// Equal returns true if d == e.
func (d Rad) Equal(e Rad) bool {
	return d.raw == e.raw
}

// Less returns true if d < e.
func (d Rad) Less(e Rad) bool {
	return d.Cmp(e) < 0
}

// Max returns the larger of d and e.
func (d Rad) Max(e Rad) Rad {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Min returns the smaller of d and e.
func (d Rad) Min(e Rad) Rad {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}

// Sign returns -1, 0 or +1 depending on the sign of d.
func (d Rad) Sign() int {
	return d.raw.sign()
}

// IsZero returns true if d == 0.
func (d Rad) IsZero() bool {
	return d.raw.isZero()
}

// IsNeg returns true if d < 0.
func (d Rad) IsNeg() bool {
	return d.raw.isNeg()
}

// IsPos returns true if d > 0.
func (d Rad) IsPos() bool {
	return d.Sign() > 0
}

// Int64 returns the integer part of d, see [Wad.Int64].
func (d Rad) Int64() (int64, bool) {
	b := d.raw.rshDown(RadScale).big()
	if !b.IsInt64() {
		return 0, false
	}
	return b.Int64(), true
}

// Float64 returns the nearest float to d and whether it is exact.
func (d Rad) Float64() (float64, bool) {
	return d.Decimal().Float64()
}

// Decimal returns d as an exact decimal.
func (d Rad) Decimal() decimal.Decimal {
	return d.raw.decimal(RadScale)
}

// String implements the [fmt.Stringer] interface and returns d with
// exactly 45 digits after the decimal point, for example
// "1.500000000000000000000000000000000000000000000".
// Also see method [Rad.Trim].
func (d Rad) String() string {
	return d.raw.string(RadScale)
}

// Trim returns d without trailing zeros after the decimal point,
// for example "1.5".
func (d Rad) Trim() string {
	return d.raw.trim(RadScale)
}

// GoString implements the [fmt.GoStringer] interface.
func (d Rad) GoString() string {
	return fmt.Sprintf("fixed.MustParseRad(%q)", d.Trim())
}

// Format implements the [fmt.Formatter] interface, see [Wad.Format].
func (d Rad) Format(state fmt.State, verb rune) {
	if verb == 'v' && state.Flag('#') {
		fmt.Fprint(state, d.GoString())
		return
	}
	formatWord(state, verb, d.raw, RadScale, "Rad")
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (d Rad) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (d *Rad) UnmarshalText(text []byte) error {
	var err error
	*d, err = ParseRad(string(text))
	return err
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Rad) Scan(value any) error {
	z, err := scanWord(value, RadScale)
	if err != nil {
		return fmt.Errorf("converting from %T to %T: %w", value, Rad{}, err)
	}
	*d = Rad{raw: z}
	return nil
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Rad) Value() (driver.Value, error) {
	return d.String(), nil
}
