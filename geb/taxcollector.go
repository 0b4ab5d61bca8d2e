package geb

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"github.com/govalues/fixed"
)

const taxCollectorABI = `[
	{"type":"function","name":"globalStabilityFee","stateMutability":"view",
	 "inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"collateralTypes","stateMutability":"view",
	 "inputs":[{"name":"","type":"bytes32"}],
	 "outputs":[
		{"name":"stabilityFee","type":"uint256"},
		{"name":"updateTime","type":"uint256"}]}
]`

// TaxCollector reads the stability fees that compound the accumulated rates.
type TaxCollector struct {
	c *contract
}

// NewTaxCollector returns a reader for the TaxCollector deployed at address.
func NewTaxCollector(address common.Address, caller ethereum.ContractCaller, opts ...Option) (*TaxCollector, error) {
	c, err := newContract("TaxCollector", taxCollectorABI, address, caller, opts)
	if err != nil {
		return nil, err
	}
	return &TaxCollector{c: c}, nil
}

// Address returns the address of the contract.
func (t *TaxCollector) Address() common.Address {
	return t.c.address
}

// GlobalStabilityFee reads the per-second fee charged on every collateral type.
func (t *TaxCollector) GlobalStabilityFee(ctx context.Context) (fixed.Ray, error) {
	return t.c.readRay(ctx, "globalStabilityFee")
}

// StabilityFee reads the per-second fee of a collateral type.
func (t *TaxCollector) StabilityFee(ctx context.Context, ct CollateralType) (fixed.Ray, error) {
	fee, _, err := t.collateralType(ctx, ct)
	return fee, err
}

// UpdateTime reads when the accumulated rate of a collateral type was last
// updated.
func (t *TaxCollector) UpdateTime(ctx context.Context, ct CollateralType) (time.Time, error) {
	_, updated, err := t.collateralType(ctx, ct)
	return updated, err
}

// AccumulatedRateAt projects the accumulated rate of ct to the moment at,
// as it would be after taxing the collateral type at that time.
// The accumulated rate of ct must be read from the SAFEEngine beforehand.
func (t *TaxCollector) AccumulatedRateAt(ctx context.Context, ct CollateralType, at time.Time) (fixed.Ray, error) {
	global, err := t.GlobalStabilityFee(ctx)
	if err != nil {
		return fixed.Ray{}, err
	}
	fee, updated, err := t.collateralType(ctx, ct)
	if err != nil {
		return fixed.Ray{}, err
	}
	if at.Before(updated) {
		return fixed.Ray{}, fmt.Errorf("%v: time %v is before the last update %v", ct, at.Unix(), updated.Unix())
	}
	elapsed := uint64(at.Unix() - updated.Unix())
	return NextAccumulatedRate(ct.AccumulatedRate, global, fee, elapsed)
}

func (t *TaxCollector) collateralType(ctx context.Context, ct CollateralType) (fixed.Ray, time.Time, error) {
	id, err := ct.ID()
	if err != nil {
		return fixed.Ray{}, time.Time{}, err
	}
	values, err := t.c.call(ctx, "collateralTypes", id)
	if err != nil {
		return fixed.Ray{}, time.Time{}, err
	}
	fee, err := rayAt(values, 0)
	if err != nil {
		return fixed.Ray{}, time.Time{}, fmt.Errorf("TaxCollector.collateralTypes: stability fee: %w", err)
	}
	updated, err := bigAt(values, 1)
	if err != nil {
		return fixed.Ray{}, time.Time{}, fmt.Errorf("TaxCollector.collateralTypes: update time: %w", err)
	}
	if !updated.IsInt64() {
		return fixed.Ray{}, time.Time{}, fmt.Errorf("TaxCollector.collateralTypes: update time %v: %w", updated, fixed.ErrOverflow)
	}
	return fee, time.Unix(updated.Int64(), 0).UTC(), nil
}

// NextAccumulatedRate compounds rate by the sum of the global and the
// collateral type stability fees over elapsed seconds:
//
//	(globalFee + fee)^elapsed * rate
//
// The power is computed with [fixed.Ray.Pow], so the result matches the
// rate the TaxCollector writes on-chain.
func NextAccumulatedRate(rate, globalFee, fee fixed.Ray, elapsed uint64) (fixed.Ray, error) {
	perSecond, err := globalFee.Add(fee)
	if err != nil {
		return fixed.Ray{}, err
	}
	compounded, err := perSecond.Pow(elapsed)
	if err != nil {
		return fixed.Ray{}, fmt.Errorf("compounding %v over %d seconds: %w", perSecond, elapsed, err)
	}
	return compounded.Mul(rate)
}
