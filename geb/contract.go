// Package geb reads the state of a GEB-style stablecoin system and wraps
// every returned integer into the fixed-point type of its field.
//
// Only read calls are supported. Transaction signing, deployments and log
// filtering are left to the Ethereum client of the caller.
package geb

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/govalues/fixed"
)

// Option configures a contract reader.
type Option func(*contract)

// WithLogger sets the logger used for debug output of every call.
func WithLogger(log *zap.Logger) Option {
	return func(c *contract) {
		if log != nil {
			c.log = log
		}
	}
}

// WithBlockNumber pins every call to the given block.
// By default calls are executed against the latest block.
func WithBlockNumber(number *big.Int) Option {
	return func(c *contract) {
		c.block = number
	}
}

type contract struct {
	name    string
	address common.Address
	abi     abi.ABI
	caller  ethereum.ContractCaller
	block   *big.Int
	log     *zap.Logger
}

func newContract(name, abiJSON string, address common.Address, caller ethereum.ContractCaller, opts []Option) (*contract, error) {
	if caller == nil {
		return nil, fmt.Errorf("%s: contract caller required", name)
	}
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, fmt.Errorf("%s: unable to parse abi JSON: %w", name, err)
	}
	c := &contract{
		name:    name,
		address: address,
		abi:     parsed,
		caller:  caller,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(zap.String("contract", name), zap.Stringer("address", address))
	return c, nil
}

// call packs the arguments, executes an eth_call and unpacks the outputs.
func (c *contract) call(ctx context.Context, method string, args ...any) ([]any, error) {
	input, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: failed to pack inputs: %w", c.name, method, err)
	}

	c.log.Debug("calling contract", zap.String("method", method))

	msg := ethereum.CallMsg{
		To:   &c.address,
		Data: input,
	}
	output, err := c.caller.CallContract(ctx, msg, c.block)
	if err != nil {
		c.log.Debug("contract call failed", zap.String("method", method), zap.Error(err))
		return nil, fmt.Errorf("%s.%s: failed to call contract: %w", c.name, method, err)
	}

	values, err := c.abi.Unpack(method, output)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: failed to unpack contract call result: %w", c.name, method, err)
	}
	return values, nil
}

// bigAt returns the i-th output as *big.Int.
func bigAt(values []any, i int) (*big.Int, error) {
	if i >= len(values) {
		return nil, fmt.Errorf("output %d is missing: %w", i, fixed.ErrTypeMismatch)
	}
	b, ok := values[i].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("output %d has type %T, want *big.Int: %w", i, values[i], fixed.ErrTypeMismatch)
	}
	return b, nil
}

func wadAt(values []any, i int) (fixed.Wad, error) {
	b, err := bigAt(values, i)
	if err != nil {
		return fixed.Wad{}, err
	}
	return fixed.NewWad(b)
}

func rayAt(values []any, i int) (fixed.Ray, error) {
	b, err := bigAt(values, i)
	if err != nil {
		return fixed.Ray{}, err
	}
	return fixed.NewRay(b)
}

func radAt(values []any, i int) (fixed.Rad, error) {
	b, err := bigAt(values, i)
	if err != nil {
		return fixed.Rad{}, err
	}
	return fixed.NewRad(b)
}

// readWad calls a method with a single uint256 output holding a wad.
func (c *contract) readWad(ctx context.Context, method string, args ...any) (fixed.Wad, error) {
	values, err := c.call(ctx, method, args...)
	if err != nil {
		return fixed.Wad{}, err
	}
	w, err := wadAt(values, 0)
	if err != nil {
		return fixed.Wad{}, fmt.Errorf("%s.%s: %w", c.name, method, err)
	}
	return w, nil
}

// readRay calls a method with a single uint256 output holding a ray.
func (c *contract) readRay(ctx context.Context, method string, args ...any) (fixed.Ray, error) {
	values, err := c.call(ctx, method, args...)
	if err != nil {
		return fixed.Ray{}, err
	}
	r, err := rayAt(values, 0)
	if err != nil {
		return fixed.Ray{}, fmt.Errorf("%s.%s: %w", c.name, method, err)
	}
	return r, nil
}

// readRad calls a method with a single uint256 output holding a rad.
func (c *contract) readRad(ctx context.Context, method string, args ...any) (fixed.Rad, error) {
	values, err := c.call(ctx, method, args...)
	if err != nil {
		return fixed.Rad{}, err
	}
	d, err := radAt(values, 0)
	if err != nil {
		return fixed.Rad{}, fmt.Errorf("%s.%s: %w", c.name, method, err)
	}
	return d, nil
}
