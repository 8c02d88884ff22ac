// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package adapter

import (
	"context"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"math/big"
)

type NopEthereumConnection struct {
}

var errNop = errors.Errorf("I'm the NOP Ethereum Connection")

func (n NopEthereumConnection) ChainID(ctx context.Context) (*big.Int, error) {
	return nil, errNop
}

func (n NopEthereumConnection) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return 0, errNop
}

func (n NopEthereumConnection) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return nil, errNop
}

func (n NopEthereumConnection) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	return 0, errNop
}

func (n NopEthereumConnection) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	return errNop
}

func (n NopEthereumConnection) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	return nil, errNop
}

func (n NopEthereumConnection) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	return nil, errNop
}

func (n NopEthereumConnection) FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	return nil, errNop
}

func (n NopEthereumConnection) SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	return nil, errNop
}
