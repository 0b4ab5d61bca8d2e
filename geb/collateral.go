package geb

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/govalues/fixed"
)

// CollateralType is the state of one collateral type in the SAFEEngine.
type CollateralType struct {
	Name             string
	AccumulatedRate  fixed.Ray // debt multiplier, grows with stability fees
	SafeDebt         fixed.Wad // total normalized debt of the type
	SafetyPrice      fixed.Ray // collateral price with the safety ratio applied
	LiquidationPrice fixed.Ray // collateral price with the liquidation ratio applied
	DebtCeiling      fixed.Rad
	DebtFloor        fixed.Rad
}

// CollateralTypeID encodes a collateral type name as the bytes32 key used by
// the contracts. The name is left-aligned and padded with zero bytes.
func CollateralTypeID(name string) ([32]byte, error) {
	var id [32]byte
	if name == "" {
		return id, fmt.Errorf("collateral type name is empty")
	}
	if len(name) > len(id) {
		return id, fmt.Errorf("collateral type name %q is longer than %d bytes", name, len(id))
	}
	copy(id[:], name)
	return id, nil
}

// CollateralTypeName decodes a bytes32 collateral type key.
func CollateralTypeName(id [32]byte) string {
	return string(bytes.TrimRight(id[:], "\x00"))
}

// ID returns the bytes32 key of the collateral type.
func (ct CollateralType) ID() ([32]byte, error) {
	return CollateralTypeID(ct.Name)
}

// Debug returns the fields of the collateral type for structured logging.
func (ct CollateralType) Debug() []zap.Field {
	return []zap.Field{
		zap.String("collateral-type", ct.Name),
		zap.Stringer("accumulated-rate", ct.AccumulatedRate),
		zap.Stringer("safe-debt", ct.SafeDebt),
		zap.Stringer("safety-price", ct.SafetyPrice),
		zap.Stringer("liquidation-price", ct.LiquidationPrice),
		zap.Stringer("debt-ceiling", ct.DebtCeiling),
		zap.Stringer("debt-floor", ct.DebtFloor),
	}
}

// String returns a short description, for example CollateralType("ETH-A").
func (ct CollateralType) String() string {
	return fmt.Sprintf("CollateralType(%q)", ct.Name)
}

// SAFE is a collateralized debt position of one owner in one collateral type.
type SAFE struct {
	Address          common.Address
	CollateralType   CollateralType
	LockedCollateral fixed.Wad
	GeneratedDebt    fixed.Wad // normalized, multiply by the accumulated rate to get the debt
}

// Debug returns the fields of the SAFE for structured logging.
func (s SAFE) Debug() []zap.Field {
	return []zap.Field{
		zap.Stringer("safe", s.Address),
		zap.String("collateral-type", s.CollateralType.Name),
		zap.Stringer("locked-collateral", s.LockedCollateral),
		zap.Stringer("generated-debt", s.GeneratedDebt),
	}
}

func (s SAFE) String() string {
	return fmt.Sprintf("SAFE(%s, %s)[locked=%s debt=%s]",
		s.CollateralType.Name, s.Address.Hex(), s.LockedCollateral.Trim(), s.GeneratedDebt.Trim())
}
