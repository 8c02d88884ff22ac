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
	"github.com/orbs-network/scribe/log"
	"math/big"
)

type ethereumAdapterConfig interface {
	EthereumEndpoint() string
}

// EthereumConnection is the transport handle a contract interface is bound to.
// *ethclient.Client and the simulated backend client both satisfy it.
type EthereumConnection interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
	FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error)
	SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error)
}

type connectorCommon struct {
	logger    log.Logger
	getClient func() (EthereumConnection, error)
}

func (c *connectorCommon) ChainID(ctx context.Context) (*big.Int, error) {
	client, err := c.getClient()
	if err != nil {
		return nil, err
	}
	return client.ChainID(ctx)
}

func (c *connectorCommon) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	client, err := c.getClient()
	if err != nil {
		return 0, err
	}
	return client.PendingNonceAt(ctx, account)
}

func (c *connectorCommon) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	client, err := c.getClient()
	if err != nil {
		return nil, err
	}
	return client.SuggestGasPrice(ctx)
}

func (c *connectorCommon) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	client, err := c.getClient()
	if err != nil {
		return 0, err
	}
	return client.EstimateGas(ctx, msg)
}

func (c *connectorCommon) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	client, err := c.getClient()
	if err != nil {
		return err
	}
	return client.SendTransaction(ctx, tx)
}

func (c *connectorCommon) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	client, err := c.getClient()
	if err != nil {
		return nil, err
	}
	return client.TransactionReceipt(ctx, txHash)
}

func (c *connectorCommon) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	client, err := c.getClient()
	if err != nil {
		return nil, err
	}
	return client.CodeAt(ctx, account, blockNumber)
}

func (c *connectorCommon) FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	client, err := c.getClient()
	if err != nil {
		return nil, err
	}
	return client.FilterLogs(ctx, query)
}

func (c *connectorCommon) SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	client, err := c.getClient()
	if err != nil {
		return nil, err
	}
	return client.SubscribeFilterLogs(ctx, query, ch)
}
