package geb

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"github.com/govalues/fixed"
)

// redemptionPrice updates the price before returning it, so it is not a view,
// but it is still safe to execute as a call.
const oracleRelayerABI = `[
	{"type":"function","name":"redemptionPrice","stateMutability":"nonpayable",
	 "inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"redemptionRate","stateMutability":"view",
	 "inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"collateralTypes","stateMutability":"view",
	 "inputs":[{"name":"","type":"bytes32"}],
	 "outputs":[
		{"name":"orcl","type":"address"},
		{"name":"safetyCRatio","type":"uint256"},
		{"name":"liquidationCRatio","type":"uint256"}]}
]`

// OracleRelayer reads the redemption price and the collateralization ratios.
type OracleRelayer struct {
	c *contract
}

// NewOracleRelayer returns a reader for the OracleRelayer deployed at address.
func NewOracleRelayer(address common.Address, caller ethereum.ContractCaller, opts ...Option) (*OracleRelayer, error) {
	c, err := newContract("OracleRelayer", oracleRelayerABI, address, caller, opts)
	if err != nil {
		return nil, err
	}
	return &OracleRelayer{c: c}, nil
}

// Address returns the address of the contract.
func (o *OracleRelayer) Address() common.Address {
	return o.c.address
}

// RedemptionPrice reads the current redemption price of the system coin.
func (o *OracleRelayer) RedemptionPrice(ctx context.Context) (fixed.Ray, error) {
	return o.c.readRay(ctx, "redemptionPrice")
}

// RedemptionRate reads the per-second rate applied to the redemption price.
func (o *OracleRelayer) RedemptionRate(ctx context.Context) (fixed.Ray, error) {
	return o.c.readRay(ctx, "redemptionRate")
}

// Oracle reads the address of the price feed of a collateral type.
func (o *OracleRelayer) Oracle(ctx context.Context, ct CollateralType) (common.Address, error) {
	values, err := o.collateralType(ctx, ct)
	if err != nil {
		return common.Address{}, err
	}
	addr, ok := values[0].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("OracleRelayer.collateralTypes: output 0 has type %T, want common.Address: %w", values[0], fixed.ErrTypeMismatch)
	}
	return addr, nil
}

// SafetyCRatio reads the collateralization ratio required to generate debt.
func (o *OracleRelayer) SafetyCRatio(ctx context.Context, ct CollateralType) (fixed.Ray, error) {
	values, err := o.collateralType(ctx, ct)
	if err != nil {
		return fixed.Ray{}, err
	}
	r, err := rayAt(values, 1)
	if err != nil {
		return fixed.Ray{}, fmt.Errorf("OracleRelayer.collateralTypes: safety ratio: %w", err)
	}
	return r, nil
}

// LiquidationCRatio reads the collateralization ratio below which a SAFE
// can be liquidated.
func (o *OracleRelayer) LiquidationCRatio(ctx context.Context, ct CollateralType) (fixed.Ray, error) {
	values, err := o.collateralType(ctx, ct)
	if err != nil {
		return fixed.Ray{}, err
	}
	r, err := rayAt(values, 2)
	if err != nil {
		return fixed.Ray{}, fmt.Errorf("OracleRelayer.collateralTypes: liquidation ratio: %w", err)
	}
	return r, nil
}

func (o *OracleRelayer) collateralType(ctx context.Context, ct CollateralType) ([]any, error) {
	id, err := ct.ID()
	if err != nil {
		return nil, err
	}
	values, err := o.c.call(ctx, "collateralTypes", id)
	if err != nil {
		return nil, err
	}
	if len(values) != 3 {
		return nil, fmt.Errorf("OracleRelayer.collateralTypes: got %d outputs, want 3: %w", len(values), fixed.ErrTypeMismatch)
	}
	return values, nil
}
