package geb

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"github.com/govalues/fixed"
)

const safeEngineABI = `[
	{"type":"function","name":"collateralTypes","stateMutability":"view",
	 "inputs":[{"name":"","type":"bytes32"}],
	 "outputs":[
		{"name":"debtAmount","type":"uint256"},
		{"name":"accumulatedRate","type":"uint256"},
		{"name":"safetyPrice","type":"uint256"},
		{"name":"debtCeiling","type":"uint256"},
		{"name":"debtFloor","type":"uint256"},
		{"name":"liquidationPrice","type":"uint256"}]},
	{"type":"function","name":"safes","stateMutability":"view",
	 "inputs":[{"name":"","type":"bytes32"},{"name":"","type":"address"}],
	 "outputs":[
		{"name":"lockedCollateral","type":"uint256"},
		{"name":"generatedDebt","type":"uint256"}]},
	{"type":"function","name":"tokenCollateral","stateMutability":"view",
	 "inputs":[{"name":"","type":"bytes32"},{"name":"","type":"address"}],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"coinBalance","stateMutability":"view",
	 "inputs":[{"name":"","type":"address"}],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"debtBalance","stateMutability":"view",
	 "inputs":[{"name":"","type":"address"}],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"globalDebt","stateMutability":"view",
	 "inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"globalUnbackedDebt","stateMutability":"view",
	 "inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"globalDebtCeiling","stateMutability":"view",
	 "inputs":[],"outputs":[{"name":"","type":"uint256"}]}
]`

// SAFEEngine reads the core accounting contract: collateral types, SAFEs and
// internal coin and debt balances.
type SAFEEngine struct {
	c *contract
}

// NewSAFEEngine returns a reader for the SAFEEngine deployed at address.
func NewSAFEEngine(address common.Address, caller ethereum.ContractCaller, opts ...Option) (*SAFEEngine, error) {
	c, err := newContract("SAFEEngine", safeEngineABI, address, caller, opts)
	if err != nil {
		return nil, err
	}
	return &SAFEEngine{c: c}, nil
}

// Address returns the address of the contract.
func (e *SAFEEngine) Address() common.Address {
	return e.c.address
}

// CollateralType reads the parameters and the accumulated rate of a
// collateral type.
func (e *SAFEEngine) CollateralType(ctx context.Context, name string) (CollateralType, error) {
	id, err := CollateralTypeID(name)
	if err != nil {
		return CollateralType{}, err
	}
	values, err := e.c.call(ctx, "collateralTypes", id)
	if err != nil {
		return CollateralType{}, err
	}
	ct := CollateralType{Name: name}
	if ct.SafeDebt, err = wadAt(values, 0); err != nil {
		return CollateralType{}, fmt.Errorf("SAFEEngine.collateralTypes: debt amount: %w", err)
	}
	if ct.AccumulatedRate, err = rayAt(values, 1); err != nil {
		return CollateralType{}, fmt.Errorf("SAFEEngine.collateralTypes: accumulated rate: %w", err)
	}
	if ct.SafetyPrice, err = rayAt(values, 2); err != nil {
		return CollateralType{}, fmt.Errorf("SAFEEngine.collateralTypes: safety price: %w", err)
	}
	if ct.DebtCeiling, err = radAt(values, 3); err != nil {
		return CollateralType{}, fmt.Errorf("SAFEEngine.collateralTypes: debt ceiling: %w", err)
	}
	if ct.DebtFloor, err = radAt(values, 4); err != nil {
		return CollateralType{}, fmt.Errorf("SAFEEngine.collateralTypes: debt floor: %w", err)
	}
	if ct.LiquidationPrice, err = rayAt(values, 5); err != nil {
		return CollateralType{}, fmt.Errorf("SAFEEngine.collateralTypes: liquidation price: %w", err)
	}
	e.c.log.Debug("read collateral type", ct.Debug()...)
	return ct, nil
}

// SAFE reads the SAFE of owner in the given collateral type.
func (e *SAFEEngine) SAFE(ctx context.Context, ct CollateralType, owner common.Address) (SAFE, error) {
	id, err := ct.ID()
	if err != nil {
		return SAFE{}, err
	}
	values, err := e.c.call(ctx, "safes", id, owner)
	if err != nil {
		return SAFE{}, err
	}
	s := SAFE{Address: owner, CollateralType: ct}
	if s.LockedCollateral, err = wadAt(values, 0); err != nil {
		return SAFE{}, fmt.Errorf("SAFEEngine.safes: locked collateral: %w", err)
	}
	if s.GeneratedDebt, err = wadAt(values, 1); err != nil {
		return SAFE{}, fmt.Errorf("SAFEEngine.safes: generated debt: %w", err)
	}
	e.c.log.Debug("read SAFE", s.Debug()...)
	return s, nil
}

// TokenCollateral reads the collateral of account that is not locked in
// any SAFE.
func (e *SAFEEngine) TokenCollateral(ctx context.Context, ct CollateralType, account common.Address) (fixed.Wad, error) {
	id, err := ct.ID()
	if err != nil {
		return fixed.Wad{}, err
	}
	return e.c.readWad(ctx, "tokenCollateral", id, account)
}

// CoinBalance reads the internal system coin balance of account.
func (e *SAFEEngine) CoinBalance(ctx context.Context, account common.Address) (fixed.Rad, error) {
	return e.c.readRad(ctx, "coinBalance", account)
}

// DebtBalance reads the unbacked debt assigned to account.
func (e *SAFEEngine) DebtBalance(ctx context.Context, account common.Address) (fixed.Rad, error) {
	return e.c.readRad(ctx, "debtBalance", account)
}

// GlobalDebt reads the total debt of the system.
func (e *SAFEEngine) GlobalDebt(ctx context.Context) (fixed.Rad, error) {
	return e.c.readRad(ctx, "globalDebt")
}

// GlobalUnbackedDebt reads the total debt not backed by collateral.
func (e *SAFEEngine) GlobalUnbackedDebt(ctx context.Context) (fixed.Rad, error) {
	return e.c.readRad(ctx, "globalUnbackedDebt")
}

// GlobalDebtCeiling reads the maximum total debt of the system.
func (e *SAFEEngine) GlobalDebtCeiling(ctx context.Context) (fixed.Rad, error) {
	return e.c.readRad(ctx, "globalDebtCeiling")
}
