package geb

import (
	"fmt"

	"github.com/govalues/fixed"
)

// Debt returns the debt of the SAFE including accrued stability fees,
// that is the generated debt multiplied by the accumulated rate.
func (s SAFE) Debt() (fixed.Rad, error) {
	d, err := s.GeneratedDebt.MulRayToRad(s.CollateralType.AccumulatedRate)
	if err != nil {
		return fixed.Rad{}, fmt.Errorf("%v: debt: %w", s, err)
	}
	return d, nil
}

// IsCritical reports whether the SAFE can be liquidated, that is whether the
// collateral valued at the liquidation price is below the debt.
// Both sides are compared as exact rad products, and a SAFE whose collateral
// type has no liquidation price yet is never critical.
func (s SAFE) IsCritical() (bool, error) {
	if s.CollateralType.LiquidationPrice.Sign() <= 0 {
		return false, nil
	}
	value, err := s.LockedCollateral.MulRayToRad(s.CollateralType.LiquidationPrice)
	if err != nil {
		return false, fmt.Errorf("%v: collateral value: %w", s, err)
	}
	debt, err := s.Debt()
	if err != nil {
		return false, err
	}
	return value.Less(debt), nil
}

// CollateralizationRatio returns the collateralization of the SAFE in percent.
// The liquidation price already has the liquidation ratio applied, so the
// ratio is needed to recover the market value of the collateral.
// A SAFE without debt has no ratio and [fixed.ErrDivisionByZero] is returned.
func (s SAFE) CollateralizationRatio(liquidationCRatio fixed.Ray) (fixed.Wad, error) {
	value, err := s.LockedCollateral.MulRay(s.CollateralType.LiquidationPrice)
	if err != nil {
		return fixed.Wad{}, fmt.Errorf("%v: collateral value: %w", s, err)
	}
	value, err = value.MulRay(liquidationCRatio)
	if err != nil {
		return fixed.Wad{}, fmt.Errorf("%v: collateral value: %w", s, err)
	}
	debt, err := s.GeneratedDebt.MulRay(s.CollateralType.AccumulatedRate)
	if err != nil {
		return fixed.Wad{}, fmt.Errorf("%v: debt: %w", s, err)
	}
	ratio, err := value.Quo(debt)
	if err != nil {
		return fixed.Wad{}, fmt.Errorf("%v: collateralization ratio: %w", s, err)
	}
	percent, err := ratio.MulInt(100)
	if err != nil {
		return fixed.Wad{}, fmt.Errorf("%v: collateralization ratio: %w", s, err)
	}
	return percent, nil
}

// MaxDebt returns the largest generated debt the locked collateral can back
// at the safety price, truncated towards zero.
func (s SAFE) MaxDebt() (fixed.Wad, error) {
	limit, err := s.LockedCollateral.MulRayToRad(s.CollateralType.SafetyPrice)
	if err != nil {
		return fixed.Wad{}, fmt.Errorf("%v: max debt: %w", s, err)
	}
	maxDebt, err := limit.QuoRayToWad(s.CollateralType.AccumulatedRate)
	if err != nil {
		return fixed.Wad{}, fmt.Errorf("%v: max debt: %w", s, err)
	}
	return maxDebt, nil
}

// AvailableDebt returns how much more debt the SAFE can generate.
// The result is negative for a SAFE above its safety limit.
func (s SAFE) AvailableDebt() (fixed.Wad, error) {
	maxDebt, err := s.MaxDebt()
	if err != nil {
		return fixed.Wad{}, err
	}
	available, err := maxDebt.Sub(s.GeneratedDebt)
	if err != nil {
		return fixed.Wad{}, fmt.Errorf("%v: available debt: %w", s, err)
	}
	return available, nil
}
