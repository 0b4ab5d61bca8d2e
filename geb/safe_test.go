package geb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govalues/fixed"
)

func testSAFE(locked, generated string) SAFE {
	return SAFE{
		CollateralType: CollateralType{
			Name:             "ETH-A",
			AccumulatedRate:  fixed.MustParseRay("1.1"),
			SafetyPrice:      fixed.MustParseRay("100"),
			LiquidationPrice: fixed.MustParseRay("100"),
		},
		LockedCollateral: fixed.MustParseWad(locked),
		GeneratedDebt:    fixed.MustParseWad(generated),
	}
}

func TestSAFE_Debt(t *testing.T) {
	tests := []struct {
		generated, want string
	}{
		{"0", "0"},
		{"500", "550"},
		{"0.000000000000000001", "0.0000000000000000011"},
	}
	for _, tt := range tests {
		t.Run(tt.generated, func(t *testing.T) {
			got, err := testSAFE("10", tt.generated).Debt()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Trim())
		})
	}
}

func TestSAFE_IsCritical(t *testing.T) {
	tests := []struct {
		locked, generated string
		want              bool
	}{
		{"10", "0", false},
		{"10", "500", false},
		{"10", "909", false},
		{"10", "910", true},
		{"0", "1", true},
		{"0", "0", false},
	}
	for _, tt := range tests {
		t.Run(tt.locked+"/"+tt.generated, func(t *testing.T) {
			got, err := testSAFE(tt.locked, tt.generated).IsCritical()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("sub-ray products", func(t *testing.T) {
		s := SAFE{
			CollateralType: CollateralType{
				Name:             "ETH-A",
				AccumulatedRate:  fixed.RayFromRaw(600000000000000000),
				LiquidationPrice: fixed.RayFromRaw(500000000000000000),
			},
			LockedCollateral: fixed.WadFromRaw(1),
			GeneratedDebt:    fixed.WadFromRaw(1),
		}
		got, err := s.IsCritical()
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("no liquidation price", func(t *testing.T) {
		s := testSAFE("0", "1")
		s.CollateralType.LiquidationPrice = fixed.Ray{}
		got, err := s.IsCritical()
		require.NoError(t, err)
		assert.False(t, got)
	})
}

func TestSAFE_CollateralizationRatio(t *testing.T) {
	got, err := testSAFE("10", "500").CollateralizationRatio(fixed.MustParseRay("1.5"))
	require.NoError(t, err)
	assert.Equal(t, "272.7272727272727272", got.Trim())

	_, err = testSAFE("10", "0").CollateralizationRatio(fixed.MustParseRay("1.5"))
	require.ErrorIs(t, err, fixed.ErrDivisionByZero)
}

func TestSAFE_MaxDebt(t *testing.T) {
	s := testSAFE("10", "500")

	got, err := s.MaxDebt()
	require.NoError(t, err)
	assert.Equal(t, "909.090909090909090909", got.Trim())

	available, err := s.AvailableDebt()
	require.NoError(t, err)
	assert.Equal(t, "409.090909090909090909", available.Trim())

	available, err = testSAFE("1", "500").AvailableDebt()
	require.NoError(t, err)
	assert.True(t, available.IsNeg())

	s.CollateralType.AccumulatedRate = fixed.Ray{}
	_, err = s.MaxDebt()
	require.ErrorIs(t, err, fixed.ErrDivisionByZero)
	_, err = s.AvailableDebt()
	require.ErrorIs(t, err, fixed.ErrDivisionByZero)
}
