package fixed

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	ethmath "github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// word is a 256-bit two's complement signed integer, the representation
// the EVM uses for int256.
// All arithmetic on words is checked: results outside of
// [-2^255, 2^255 - 1] are reported as errors instead of wrapping around.
type word uint256.Int

// maxPow10 is the largest power of 10 that fits in a positive word.
const maxPow10 = 76

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 [maxPow10 + 1]word

// tt255 is 2^255, the magnitude of the smallest word.
var tt255 = new(big.Int).Lsh(big.NewInt(1), 255)

var (
	minInt256 = new(big.Int).Neg(tt255)
	maxInt256 = new(big.Int).Sub(tt255, big.NewInt(1))
)

func init() {
	one := uint256.NewInt(1)
	ten := uint256.NewInt(10)
	pow10[0] = word(*one)
	for i := 1; i < len(pow10); i++ {
		var z uint256.Int
		z.Mul(pow10[i-1].u(), ten)
		pow10[i] = word(z)
	}
}

func (x *word) u() *uint256.Int {
	return (*uint256.Int)(x)
}

// wordFromInt64 converts int64 to word, which is always exact.
func wordFromInt64(v int64) word {
	var z uint256.Int
	if v < 0 {
		z.SetUint64(uint64(-(v + 1)) + 1)
		z.Neg(&z)
	} else {
		z.SetUint64(uint64(v))
	}
	return word(z)
}

// wordFromBig converts *big.Int to word and checks that x is within
// the int256 range.
func wordFromBig(x *big.Int) (word, bool) {
	if x.Cmp(maxInt256) > 0 || x.Cmp(minInt256) < 0 {
		return word{}, false
	}
	var z uint256.Int
	z.SetBytes32(ethmath.U256Bytes(new(big.Int).Set(x)))
	return word(z), true
}

// wordFromMag builds a word from an unsigned magnitude and a sign.
func wordFromMag(m *uint256.Int, neg bool) (word, bool) {
	if m[3]>>63 != 0 {
		// Only -2^255 has its top bit set in magnitude form.
		if !neg || m[3] != 1<<63 || m[2] != 0 || m[1] != 0 || m[0] != 0 {
			return word{}, false
		}
	}
	var z uint256.Int
	if neg {
		z.Neg(m)
	} else {
		z.Set(m)
	}
	return word(z), true
}

// big converts x to a signed *big.Int.
func (x word) big() *big.Int {
	z := x.mag().ToBig()
	if x.isNeg() {
		z.Neg(z)
	}
	return z
}

func (x word) isNeg() bool {
	return x[3]>>63 != 0
}

func (x word) isZero() bool {
	return x.u().IsZero()
}

func (x word) sign() int {
	return x.u().Sign()
}

// mag returns |x| as an unsigned integer.
// The magnitude of -2^255 is 2^255, which is representable as uint256.
func (x word) mag() *uint256.Int {
	z := new(uint256.Int)
	if x.isNeg() {
		return z.Neg(x.u())
	}
	return z.Set(x.u())
}

// cmp compares x and y as signed integers.
func (x word) cmp(y word) int {
	switch {
	case x.u().Slt(y.u()):
		return -1
	case x.u().Sgt(y.u()):
		return 1
	}
	return 0
}

// add calculates x + y and checks overflow.
func (x word) add(y word) (word, error) {
	var z uint256.Int
	z.Add(x.u(), y.u())
	if x.isNeg() == y.isNeg() && word(z).isNeg() != x.isNeg() {
		return word{}, ErrOverflow
	}
	return word(z), nil
}

// sub calculates x - y and checks overflow.
func (x word) sub(y word) (word, error) {
	var z uint256.Int
	z.Sub(x.u(), y.u())
	if x.isNeg() != y.isNeg() && word(z).isNeg() != x.isNeg() {
		return word{}, ErrOverflow
	}
	return word(z), nil
}

// neg calculates -x and checks overflow.
func (x word) neg() (word, error) {
	z, ok := wordFromMag(x.mag(), !x.isNeg())
	if !ok {
		return word{}, ErrOverflow
	}
	return z, nil
}

// abs calculates |x| and checks overflow.
func (x word) abs() (word, error) {
	if !x.isNeg() {
		return x, nil
	}
	return x.neg()
}

// mul calculates x * y and checks overflow.
func (x word) mul(y word) (word, error) {
	p, overflow := new(uint256.Int).MulOverflow(x.mag(), y.mag())
	if overflow {
		return word{}, ErrOverflow
	}
	z, ok := wordFromMag(p, x.isNeg() != y.isNeg() && !p.IsZero())
	if !ok {
		return word{}, ErrOverflow
	}
	return z, nil
}

// quo calculates x / y and rounds the result towards zero,
// the same way as the EVM SDIV instruction.
func (x word) quo(y word) (word, error) {
	if y.isZero() {
		return word{}, ErrDivisionByZero
	}
	q := new(uint256.Int).Div(x.mag(), y.mag())
	z, ok := wordFromMag(q, x.isNeg() != y.isNeg() && !q.IsZero())
	if !ok {
		return word{}, ErrOverflow
	}
	return z, nil
}

// mulDiv calculates x * y / z and rounds the result towards zero.
// The product x * y must fit in a word, as in checked on-chain arithmetic.
func (x word) mulDiv(y, z word) (word, error) {
	if z.isZero() {
		return word{}, ErrDivisionByZero
	}
	p, err := x.mul(y)
	if err != nil {
		return word{}, err
	}
	return p.quo(z)
}

// mulDivWide calculates x * y / z and rounds the result towards zero.
// The product is kept in 512 bits, only the result must fit in a word.
func (x word) mulDivWide(y, z word) (word, error) {
	if z.isZero() {
		return word{}, ErrDivisionByZero
	}
	q, overflow := new(uint256.Int).MulDivOverflow(x.mag(), y.mag(), z.mag())
	if overflow {
		return word{}, ErrOverflow
	}
	neg := x.isNeg() != y.isNeg() != z.isNeg()
	r, ok := wordFromMag(q, neg && !q.IsZero())
	if !ok {
		return word{}, ErrOverflow
	}
	return r, nil
}

// lsh (Left Shift) calculates x * 10^shift and checks overflow.
func (x word) lsh(shift int) (word, error) {
	switch {
	case shift <= 0:
		return x, nil
	case x.isZero():
		return x, nil
	case shift > maxPow10:
		return word{}, ErrOverflow
	}
	return x.mul(pow10[shift])
}

// rshDown (Right Shift) calculates x / 10^shift and rounds result towards zero.
func (x word) rshDown(shift int) word {
	switch {
	case shift <= 0:
		return x
	case shift > maxPow10:
		return word{}
	}
	z, _ := x.quo(pow10[shift]) // cannot fail for positive divisors
	return z
}

// rshHalfEven (Right Shift) calculates round(x / 10^shift) and rounds
// result using "half to even" rule.
func (x word) rshHalfEven(shift int) word {
	switch {
	case shift <= 0:
		return x
	case shift > maxPow10:
		return word{}
	}
	y := pow10[shift].u()
	q, r := new(uint256.Int), new(uint256.Int)
	q.DivMod(x.mag(), y, r)
	h := new(uint256.Int).Rsh(y, 1) // y / 2, exact as y is a multiple of 10
	var up bool
	switch c := r.Cmp(h); {
	case c > 0:
		up = true
	case c == 0:
		up = q[0]&1 != 0 // half-to-even
	}
	if up {
		q.AddUint64(q, 1)
	}
	z, _ := wordFromMag(q, x.isNeg() && !q.IsZero()) // |q| <= |x| / 5
	return z
}

// parseWord converts a decimal string to a word with the given number of
// digits after the decimal point.
// Exact decimal arithmetic is used, so no digits can be lost silently.
func parseWord(s string, scale int) (word, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return word{}, fmt.Errorf("%w: %v", ErrInvalidNumber, err)
	}
	return wordFromDecimal(d, scale)
}

// wordFromFloat64 converts f * 10^scale to a word.
// The shortest decimal representation of f is used, so 0.1 is exactly 0.1.
func wordFromFloat64(f float64, scale int) (word, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return word{}, fmt.Errorf("%w: %v", ErrInvalidNumber, f)
	}
	return wordFromDecimal(decimal.NewFromFloat(f), scale)
}

// wordFromDecimal converts d * 10^scale to a word.
// Any nonzero digit beyond the scale is reported as precision loss.
func wordFromDecimal(d decimal.Decimal, scale int) (word, error) {
	coef := d.Coefficient()
	if coef.Sign() == 0 {
		return word{}, nil
	}
	exp := int64(d.Exponent()) + int64(scale)
	prec := int64(len(new(big.Int).Abs(coef).String()))
	switch {
	case exp+prec > maxPow10+1:
		return word{}, ErrOverflow
	case exp+prec <= 0:
		// 0 < |d * 10^scale| < 1
		return word{}, ErrPrecision
	}
	d = d.Shift(int32(scale))
	b := d.BigInt() // truncated
	if !d.Equal(decimal.NewFromBigInt(b, 0)) {
		return word{}, ErrPrecision
	}
	z, ok := wordFromBig(b)
	if !ok {
		return word{}, ErrOverflow
	}
	return z, nil
}

// decimal converts x / 10^scale to an exact decimal.
func (x word) decimal(scale int) decimal.Decimal {
	return decimal.NewFromBigInt(x.big(), -int32(scale))
}

// digits returns the sign and the digits of |x| / 10^scale.
// The fractional part always has exactly scale digits.
func (x word) digits(scale int) (neg bool, intg, frac string) {
	s := x.mag().Dec()
	if len(s) <= scale {
		s = strings.Repeat("0", scale-len(s)+1) + s
	}
	n := len(s) - scale
	return x.isNeg(), s[:n], s[n:]
}

// string formats x / 10^scale with exactly scale digits after the decimal point.
func (x word) string(scale int) string {
	neg, intg, frac := x.digits(scale)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(intg)
	if scale > 0 {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// trim formats x / 10^scale without trailing zeros in the fractional part.
func (x word) trim(scale int) string {
	neg, intg, frac := x.digits(scale)
	frac = strings.TrimRight(frac, "0")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(intg)
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// rpow calculates x^n for a fixed-point x with the unit b.
// Every intermediate product is rounded half up and must fit in 256 bits,
// which reproduces the exponentiation used on-chain to compound rates.
func (x word) rpow(n uint64, b word) (word, error) {
	if x.isNeg() {
		return word{}, ErrNegative
	}
	if x.isZero() {
		if n == 0 {
			return b, nil
		}
		return word{}, nil
	}
	var (
		base = b.u()
		half = new(uint256.Int).Rsh(base, 1)
		xx   = new(uint256.Int).Set(x.u())
		z    = new(uint256.Int)
		p    = new(uint256.Int)
		of   bool
	)
	if n%2 == 0 {
		z.Set(base)
	} else {
		z.Set(xx)
	}
	for n /= 2; n > 0; n /= 2 {
		if _, of = p.MulOverflow(xx, xx); of {
			return word{}, ErrOverflow
		}
		if _, of = p.AddOverflow(p, half); of {
			return word{}, ErrOverflow
		}
		xx.Div(p, base)
		if n%2 == 1 {
			if _, of = p.MulOverflow(z, xx); of {
				return word{}, ErrOverflow
			}
			if _, of = p.AddOverflow(p, half); of {
				return word{}, ErrOverflow
			}
			z.Div(p, base)
		}
	}
	w, ok := wordFromMag(z, false)
	if !ok {
		return word{}, ErrOverflow
	}
	return w, nil
}
