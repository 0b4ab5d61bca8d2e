package fixed

import (
	"math"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	maxInt256Str = "57896044618658097711785492504343953926634992332820282019728792003956564819967"
	minInt256Str = "-57896044618658097711785492504343953926634992332820282019728792003956564819968"
)

func mustWord(s string) word {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("invalid integer " + s)
	}
	z, ok := wordFromBig(b)
	if !ok {
		panic("integer out of range " + s)
	}
	return z
}

func TestWord_Pow10(t *testing.T) {
	want := big.NewInt(1)
	for i := range pow10 {
		assert.Equal(t, want.String(), pow10[i].big().String(), "pow10[%v]", i)
		assert.False(t, pow10[i].isNeg(), "pow10[%v]", i)
		want.Mul(want, big.NewInt(10))
	}
}

func TestWordFromInt64(t *testing.T) {
	tests := []int64{math.MinInt64, -1, 0, 1, math.MaxInt64}
	for _, v := range tests {
		got := wordFromInt64(v)
		assert.Equal(t, big.NewInt(v).String(), got.big().String(), "wordFromInt64(%v)", v)
	}
}

func TestWordFromBig(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []string{minInt256Str, "-1", "0", "1", maxInt256Str}
		for _, s := range tests {
			b, _ := new(big.Int).SetString(s, 10)
			got, ok := wordFromBig(b)
			require.True(t, ok, "wordFromBig(%v)", s)
			assert.Equal(t, s, got.big().String())
		}
	})

	t.Run("overflow", func(t *testing.T) {
		tests := []*big.Int{
			new(big.Int).Add(maxInt256, big.NewInt(1)),
			new(big.Int).Sub(minInt256, big.NewInt(1)),
			new(big.Int).Lsh(big.NewInt(1), 300),
		}
		for _, b := range tests {
			_, ok := wordFromBig(b)
			assert.False(t, ok, "wordFromBig(%v)", b)
		}
	})
}

func TestWordFromMag(t *testing.T) {
	tt255u := new(uint256.Int).Lsh(uint256.NewInt(1), 255)

	got, ok := wordFromMag(tt255u, true)
	require.True(t, ok)
	assert.Equal(t, minInt256Str, got.big().String())

	_, ok = wordFromMag(tt255u, false)
	assert.False(t, ok)

	_, ok = wordFromMag(new(uint256.Int).AddUint64(tt255u, 1), true)
	assert.False(t, ok)
}

func TestWord_Arithmetic(t *testing.T) {
	tests := []struct {
		name    string
		f       func() (word, error)
		want    string
		wantErr error
	}{
		{"add", func() (word, error) { return mustWord("7").add(mustWord("-9")) }, "-2", nil},
		{"add max", func() (word, error) { return mustWord(maxInt256Str).add(mustWord("1")) }, "", ErrOverflow},
		{"add min", func() (word, error) { return mustWord(minInt256Str).add(mustWord("-1")) }, "", ErrOverflow},
		{"add mixed", func() (word, error) { return mustWord(maxInt256Str).add(mustWord(minInt256Str)) }, "-1", nil},
		{"sub", func() (word, error) { return mustWord("7").sub(mustWord("9")) }, "-2", nil},
		{"sub min", func() (word, error) { return mustWord(minInt256Str).sub(mustWord("1")) }, "", ErrOverflow},
		{"sub max", func() (word, error) { return mustWord(maxInt256Str).sub(mustWord("-1")) }, "", ErrOverflow},
		{"neg", func() (word, error) { return mustWord(maxInt256Str).neg() }, "-" + maxInt256Str, nil},
		{"neg min", func() (word, error) { return mustWord(minInt256Str).neg() }, "", ErrOverflow},
		{"abs", func() (word, error) { return mustWord("-5").abs() }, "5", nil},
		{"abs min", func() (word, error) { return mustWord(minInt256Str).abs() }, "", ErrOverflow},
		{"mul", func() (word, error) { return mustWord("-3").mul(mustWord("-4")) }, "12", nil},
		{"mul sign", func() (word, error) { return mustWord("-3").mul(mustWord("4")) }, "-12", nil},
		{"mul zero", func() (word, error) { return mustWord("-3").mul(mustWord("0")) }, "0", nil},
		{"mul min", func() (word, error) { return mustWord(minInt256Str).mul(mustWord("1")) }, minInt256Str, nil},
		{"mul min neg", func() (word, error) { return mustWord(minInt256Str).mul(mustWord("-1")) }, "", ErrOverflow},
		{"mul overflow", func() (word, error) { return pow10[40].mul(pow10[40]) }, "", ErrOverflow},
		{"quo", func() (word, error) { return mustWord("7").quo(mustWord("2")) }, "3", nil},
		{"quo neg", func() (word, error) { return mustWord("-7").quo(mustWord("2")) }, "-3", nil},
		{"quo neg divisor", func() (word, error) { return mustWord("7").quo(mustWord("-2")) }, "-3", nil},
		{"quo both neg", func() (word, error) { return mustWord("-7").quo(mustWord("-2")) }, "3", nil},
		{"quo small", func() (word, error) { return mustWord("-1").quo(mustWord("2")) }, "0", nil},
		{"quo zero", func() (word, error) { return mustWord("7").quo(word{}) }, "", ErrDivisionByZero},
		{"quo min neg", func() (word, error) { return mustWord(minInt256Str).quo(mustWord("-1")) }, "", ErrOverflow},
		{"mulDiv", func() (word, error) { return mustWord("10").mulDiv(mustWord("-7"), mustWord("3")) }, "-23", nil},
		{"mulDiv overflow", func() (word, error) { return pow10[40].mulDiv(pow10[40], pow10[40]) }, "", ErrOverflow},
		{"mulDiv zero", func() (word, error) { return pow10[40].mulDiv(pow10[40], word{}) }, "", ErrDivisionByZero},
		{"mulDivWide", func() (word, error) { return mustWord("10").mulDivWide(mustWord("-7"), mustWord("3")) }, "-23", nil},
		{"mulDivWide neg divisor", func() (word, error) { return mustWord("-10").mulDivWide(mustWord("7"), mustWord("-3")) }, "23", nil},
		{"mulDivWide wide", func() (word, error) { return pow10[40].mulDivWide(pow10[40], pow10[40]) }, pow10[40].big().String(), nil},
		{"mulDivWide min", func() (word, error) { return mustWord(minInt256Str).mulDivWide(mustWord("3"), mustWord("3")) }, minInt256Str, nil},
		{"mulDivWide min neg", func() (word, error) { return mustWord(minInt256Str).mulDivWide(mustWord("-1"), mustWord("1")) }, "", ErrOverflow},
		{"mulDivWide int256 overflow", func() (word, error) { return pow10[76].mulDivWide(mustWord("10"), mustWord("1")) }, "", ErrOverflow},
		{"mulDivWide uint256 overflow", func() (word, error) { return pow10[70].mulDivWide(pow10[70], mustWord("1")) }, "", ErrOverflow},
		{"mulDivWide zero", func() (word, error) { return pow10[40].mulDivWide(pow10[40], word{}) }, "", ErrDivisionByZero},
		{"lsh", func() (word, error) { return mustWord("-12").lsh(3) }, "-12000", nil},
		{"lsh zero", func() (word, error) { return word{}.lsh(100) }, "0", nil},
		{"lsh overflow", func() (word, error) { return mustWord("6").lsh(76) }, "", ErrOverflow},
		{"lsh too far", func() (word, error) { return mustWord("1").lsh(77) }, "", ErrOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.f()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.big().String())
		})
	}
}

func TestWord_Rsh(t *testing.T) {
	tests := []struct {
		x                string
		shift            int
		wantDown, wantHE string
	}{
		{"24", 1, "2", "2"},
		{"25", 1, "2", "2"},
		{"26", 1, "2", "3"},
		{"35", 1, "3", "4"},
		{"-25", 1, "-2", "-2"},
		{"-26", 1, "-2", "-3"},
		{"-35", 1, "-3", "-4"},
		{"-19", 1, "-1", "-2"},
		{"4", 1, "0", "0"},
		{"5", 1, "0", "0"},
		{"6", 1, "0", "1"},
		{"-6", 1, "0", "-1"},
		{"12345", 0, "12345", "12345"},
		{"12345", 77, "0", "0"},
		{maxInt256Str, 76, "5", "6"},
		{minInt256Str, 76, "-5", "-6"},
	}
	for _, tt := range tests {
		t.Run(tt.x, func(t *testing.T) {
			x := mustWord(tt.x)
			assert.Equal(t, tt.wantDown, x.rshDown(tt.shift).big().String(), "rshDown(%v)", tt.shift)
			assert.Equal(t, tt.wantHE, x.rshHalfEven(tt.shift).big().String(), "rshHalfEven(%v)", tt.shift)
		})
	}
}

func TestWord_Cmp(t *testing.T) {
	tests := []struct {
		x, y string
		want int
	}{
		{"0", "0", 0},
		{"-1", "1", -1},
		{"1", "-1", 1},
		{minInt256Str, maxInt256Str, -1},
		{maxInt256Str, minInt256Str, 1},
		{"-2", "-1", -1},
	}
	for _, tt := range tests {
		got := mustWord(tt.x).cmp(mustWord(tt.y))
		assert.Equal(t, tt.want, got, "cmp(%v, %v)", tt.x, tt.y)
	}
}

func TestParseWord(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s     string
			scale int
			want  string
		}{
			{"0", 18, "0"},
			{"-0", 18, "0"},
			{"0.00", 2, "0"},
			{"1.5", 18, "1500000000000000000"},
			{"-1.5", 18, "-1500000000000000000"},
			{"+0.000001234", 18, "1234000000000"},
			{"1.83e5", 18, "183000000000000000000000"},
			{"0.22e-9", 18, "220000000"},
			{"1e-18", 18, "1"},
			{"1.000000000000000000000", 18, "1000000000000000000"},
			{"1.00000000000000002", 27, "1000000000000000020000000000"},
			{"123", 0, "123"},
		}
		for _, tt := range tests {
			got, err := parseWord(tt.s, tt.scale)
			require.NoError(t, err, "parseWord(%q, %v)", tt.s, tt.scale)
			assert.Equal(t, tt.want, got.big().String(), "parseWord(%q, %v)", tt.s, tt.scale)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			s       string
			scale   int
			wantErr error
		}{
			{"", 18, ErrInvalidNumber},
			{"abc", 18, ErrInvalidNumber},
			{"1.2.3", 18, ErrInvalidNumber},
			{"1e-19", 18, ErrPrecision},
			{"1.0000000000000000001", 18, ErrPrecision},
			{"0.5", 0, ErrPrecision},
			{"1e59", 18, ErrOverflow},
			{"6e58", 18, ErrOverflow},
			{"1e100", 18, ErrOverflow},
			{"-1e100", 18, ErrOverflow},
		}
		for _, tt := range tests {
			_, err := parseWord(tt.s, tt.scale)
			assert.ErrorIs(t, err, tt.wantErr, "parseWord(%q, %v)", tt.s, tt.scale)
		}
	})
}

func TestWordFromFloat64(t *testing.T) {
	got, err := wordFromFloat64(0.1, 18)
	require.NoError(t, err)
	assert.Equal(t, "100000000000000000", got.big().String())

	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := wordFromFloat64(f, 18)
		assert.ErrorIs(t, err, ErrInvalidNumber, "wordFromFloat64(%v)", f)
	}

	_, err = wordFromFloat64(1e-19, 18)
	assert.ErrorIs(t, err, ErrPrecision)
}

func TestWord_String(t *testing.T) {
	tests := []struct {
		x          string
		scale      int
		want, trim string
	}{
		{"0", 18, "0.000000000000000000", "0"},
		{"1", 18, "0.000000000000000001", "0.000000000000000001"},
		{"-1500000000000000000", 18, "-1.500000000000000000", "-1.5"},
		{"123", 0, "123", "123"},
		{"-120", 2, "-1.20", "-1.2"},
		{"1000000000000000020000000000", 27, "1.000000000000000020000000000", "1.00000000000000002"},
	}
	for _, tt := range tests {
		x := mustWord(tt.x)
		assert.Equal(t, tt.want, x.string(tt.scale), "string(%v)", tt.x)
		assert.Equal(t, tt.trim, x.trim(tt.scale), "trim(%v)", tt.x)
		assert.Equal(t, tt.trim, x.decimal(tt.scale).String(), "decimal(%v)", tt.x)
	}
}

func TestWord_Rpow(t *testing.T) {
	ray := pow10[27]
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x    string
			n    uint64
			want string
		}{
			{"0", 0, "1000000000000000000000000000"},
			{"0", 5, "0"},
			{"1000000000000000000000000000", 1000000, "1000000000000000000000000000"},
			{"1000000001000000000000000000", 86400, "1000086403732544294013328711"},
			{"2000000000000000000000000000", 10, "1024000000000000000000000000000"},
			{"500000000000000000000000000", 3, "125000000000000000000000000"},
			{"1100000000000000000000000000", 5, "1610510000000000000000000000"},
			{"1100000000000000000000000000", 0, "1000000000000000000000000000"},
			{"1100000000000000000000000000", 1, "1100000000000000000000000000"},
		}
		for _, tt := range tests {
			got, err := mustWord(tt.x).rpow(tt.n, ray)
			require.NoError(t, err, "rpow(%v, %v)", tt.x, tt.n)
			assert.Equal(t, tt.want, got.big().String(), "rpow(%v, %v)", tt.x, tt.n)
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := mustWord("-1000000000000000000000000000").rpow(2, ray)
		assert.ErrorIs(t, err, ErrNegative)

		_, err = pow10[54].rpow(2, ray)
		assert.ErrorIs(t, err, ErrOverflow)
	})
}
