// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"context"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/orbs-network/ethereum-contract-interface/services/contract"
	"github.com/orbs-network/ethereum-contract-interface/services/contract/adapter"
	"github.com/orbs-network/ethereum-contract-interface/test/contracts"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"time"
)

const (
	TestMnemonic = "test test test test test test test test test test test junk"
	TestAccount  = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

	miningInterval = 50 * time.Millisecond
)

type harness struct {
	simulator *adapter.EthereumSimulator
	contract  *contract.ContractInterface
	logger    log.Logger
}

// newEmitEventHarness deploys the EmitEvent contract on a fresh simulator and binds a contract interface
// to it, using the test mnemonic account which the simulator funds.
func newEmitEventHarness(logger log.Logger) (*harness, error) {
	sim, err := adapter.NewEthereumSimulatorConnection(logger, common.HexToAddress(TestAccount))
	if err != nil {
		return nil, err
	}

	address, err := sim.DeployEthereumContract(contracts.EmitEventAbi, contracts.EmitEventBin)
	if err != nil {
		sim.Close()
		return nil, errors.Wrap(err, "failed deploying EmitEvent")
	}

	ci, err := contract.New(contract.Options{
		Connection: sim,
		Mnemonic:   TestMnemonic,
		Address:    address,
		ABI:        contracts.EmitEventAbi,
		Logger:     logger,
	})
	if err != nil {
		sim.Close()
		return nil, err
	}

	return &harness{
		simulator: sim,
		contract:  ci,
		logger:    logger,
	}, nil
}

// call runs Call while committing blocks, since the simulator only mines on Commit
func (h *harness) call(ctx context.Context, method string, args ...interface{}) (*types.Receipt, error) {
	type result struct {
		receipt *types.Receipt
		err     error
	}

	done := make(chan result, 1)
	go func() {
		receipt, err := h.contract.Call(ctx, method, args...)
		done <- result{receipt, err}
	}()

	for {
		select {
		case res := <-done:
			return res.receipt, res.err
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(miningInterval):
			h.simulator.Commit()
		}
	}
}

func (h *harness) transferOut(ctx context.Context, tuid int64, ethAddress common.Address, orbsAddress [20]byte, value int64) (*types.Receipt, error) {
	return h.call(ctx, "transferOut", bigInt(tuid), ethAddress, orbsAddress, bigInt(value))
}

func (h *harness) shutdown(ctx context.Context) {
	h.contract.WaitUntilShutdown(ctx)
	h.simulator.Close()
}
