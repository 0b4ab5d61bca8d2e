package fixed

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayFromDecimal(t *testing.T) {
	tests := []struct {
		d       string
		want    string
		wantErr error
	}{
		{"0", "0", nil},
		{"1.000000001547125957863212448", "1.000000001547125957863212448", nil},
		{"-0.5", "-0.5", nil},
		{"1e-27", "0.000000000000000000000000001", nil},
		{"1e-28", "", ErrPrecision},
		{"1e50", "", ErrOverflow},
	}
	for _, tt := range tests {
		got, err := RayFromDecimal(decimal.RequireFromString(tt.d))
		if tt.wantErr != nil {
			require.ErrorIs(t, err, tt.wantErr, "RayFromDecimal(%v)", tt.d)
			continue
		}
		require.NoError(t, err, "RayFromDecimal(%v)", tt.d)
		assert.Equal(t, tt.want, got.Trim(), "RayFromDecimal(%v)", tt.d)
	}
}

func TestParseRay(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s, wantRaw, want string
		}{
			{"1.00000000000000002", "1000000000000000020000000000", "1.000000000000000020000000000"},
			{"0.000000000000000000000000001", "1", "0.000000000000000000000000001"},
			{"-1.05", "-1050000000000000000000000000", "-1.050000000000000000000000000"},
			{"5.7e49", "57000000000000000000000000000000000000000000000000000000000000000000000000000", "57000000000000000000000000000000000000000000000000.000000000000000000000000000"},
		}
		for _, tt := range tests {
			got, err := ParseRay(tt.s)
			require.NoError(t, err, "ParseRay(%q)", tt.s)
			assert.Equal(t, tt.wantRaw, got.Raw().String(), "ParseRay(%q)", tt.s)
			assert.Equal(t, tt.want, got.String(), "ParseRay(%q)", tt.s)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]error{
			"x":                              ErrInvalidNumber,
			"1e-28":                          ErrPrecision,
			"0.0000000000000000000000000001": ErrPrecision,
			"5.8e49":                         ErrOverflow,
		}
		for s, wantErr := range tests {
			_, err := ParseRay(s)
			require.ErrorIs(t, err, wantErr, "ParseRay(%q)", s)
			assert.Contains(t, err.Error(), "fixed.Ray")
		}
		assert.Panics(t, func() { MustParseRay("1e-28") })
	})
}

func TestRay_Constructors(t *testing.T) {
	assert.Equal(t, "0.000000000000000000000000005", RayFromRaw(5).String())

	r, err := RayFromInt64(-3)
	require.NoError(t, err)
	assert.Equal(t, "-3", r.Trim())

	r, err = RayFromFloat64(1.25)
	require.NoError(t, err)
	assert.Equal(t, "1.25", r.Trim())
	assert.True(t, r.Decimal().Equal(MustParseWad("1.25").Decimal()))

	u, err := r.Uint256()
	require.NoError(t, err)
	r2, err := RayFromUint256(u)
	require.NoError(t, err)
	assert.Equal(t, r, r2)
	assert.Equal(t, r, RayFromWord(r.Word()))
	assert.Equal(t, r, MustNewRay(r.Raw()))
}

func TestRay_Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		f    func() (Ray, error)
		want string
	}{
		{"add", func() (Ray, error) { return MustParseRay("1.1").Add(MustParseRay("0.000000000000000000000000001")) }, "1.100000000000000000000000001"},
		{"sub", func() (Ray, error) { return MustParseRay("1").Sub(MustParseRay("1.5")) }, "-0.5"},
		{"mul", func() (Ray, error) { return MustParseRay("1.5").Mul(MustParseRay("1.2")) }, "1.8"},
		{"mul trunc", func() (Ray, error) {
			return MustParseRay("0.000000000000000000000000001").Mul(MustParseRay("0.5"))
		}, "0"},
		{"quo", func() (Ray, error) { return MustParseRay("1").Quo(MustParseRay("3")) }, "0.333333333333333333333333333"},
		{"quo neg", func() (Ray, error) { return MustParseRay("-2").Quo(MustParseRay("3")) }, "-0.666666666666666666666666666"},
		{"mul int", func() (Ray, error) { return MustParseRay("1.05").MulInt(4) }, "4.2"},
		{"quo int", func() (Ray, error) { return MustParseRay("1").QuoInt(-8) }, "-0.125"},
		{"neg", func() (Ray, error) { return MustParseRay("1.05").Neg() }, "-1.05"},
		{"abs", func() (Ray, error) { return MustParseRay("-1.05").Abs() }, "1.05"},
		{"round", func() (Ray, error) { return MustParseRay("1.0000000000000000005").Round(18) }, "1"},
		{"round up", func() (Ray, error) { return MustParseRay("1.0000000000000000015").Round(18) }, "1.000000000000000002"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.f()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Trim())
		})
	}

	_, err := MustParseRay("1").Quo(Ray{})
	require.ErrorIs(t, err, ErrDivisionByZero)

	_, err = MustParseRay("1e30").Mul(MustParseRay("1e30"))
	require.ErrorIs(t, err, ErrOverflow)

	assert.Equal(t, "1.99", MustParseRay("1.999").Trunc(2).Trim())
	assert.True(t, MustParseRay("1").Less(MustParseRay("1.000000000000000000000000001")))
}

func TestRay_Pow(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			r    string
			n    uint64
			want string
		}{
			{"1.1", 0, "1"},
			{"1.1", 1, "1.1"},
			{"1.1", 5, "1.61051"},
			{"2", 10, "1024"},
			{"0.5", 3, "0.125"},
			{"0", 0, "1"},
			{"0", 3, "0"},
			{"1.000000001", 86400, "1.000086403732544294013328711"},
		}
		for _, tt := range tests {
			got, err := MustParseRay(tt.r).Pow(tt.n)
			require.NoError(t, err, "Pow(%v, %v)", tt.r, tt.n)
			assert.Equal(t, tt.want, got.Trim(), "Pow(%v, %v)", tt.r, tt.n)
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := MustParseRay("-1.1").Pow(2)
		require.ErrorIs(t, err, ErrNegative)

		_, err = MustParseRay("1e27").Pow(2)
		require.ErrorIs(t, err, ErrOverflow)
	})
}

func TestRay_Format(t *testing.T) {
	r := MustParseRay("1.00000000000000002")
	assert.Equal(t, "1.000000000000000020000000000", fmt.Sprint(r))
	assert.Equal(t, "1.00000000000000002", fmt.Sprintf("%.17f", r))
	assert.Equal(t, `fixed.MustParseRay("1.00000000000000002")`, fmt.Sprintf("%#v", r))
	assert.Equal(t, "%!x(fixed.Ray=1.000000000000000020000000000)", fmt.Sprintf("%x", r))
}

func TestRay_Text(t *testing.T) {
	r := MustParseRay("-0.5")
	text, err := r.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "-0.500000000000000000000000000", string(text))

	var got Ray
	require.NoError(t, got.UnmarshalText(text))
	assert.Equal(t, r, got)

	require.NoError(t, got.Scan("1.05"))
	assert.Equal(t, MustParseRay("1.05"), got)
	v, err := got.Value()
	require.NoError(t, err)
	assert.Equal(t, "1.050000000000000000000000000", v)
}
