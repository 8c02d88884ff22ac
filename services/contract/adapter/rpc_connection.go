// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package adapter

import (
	"context"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"sync"
)

// EthereumRpcConnection talks to a node over websocket (needed for event subscriptions) or HTTP.
// It dials once, lazily, and keeps the client until Close.
type EthereumRpcConnection struct {
	connectorCommon

	config ethereumAdapterConfig
	mu     struct {
		sync.Mutex
		client *ethclient.Client
	}
}

func NewEthereumRpcConnection(config ethereumAdapterConfig, logger log.Logger) *EthereumRpcConnection {
	rpc := &EthereumRpcConnection{
		connectorCommon: connectorCommon{
			logger: logger.WithTags(log.String("adapter", "ethereum")),
		},
		config: config,
	}
	rpc.getClient = func() (EthereumConnection, error) {
		return rpc.dial(context.Background())
	}
	return rpc
}

// Dial connects eagerly so that a bad endpoint fails at startup rather than on the first call.
func (rpc *EthereumRpcConnection) Dial(ctx context.Context) error {
	_, err := rpc.dial(ctx)
	return err
}

func (rpc *EthereumRpcConnection) dial(ctx context.Context) (EthereumConnection, error) {
	rpc.mu.Lock()
	defer rpc.mu.Unlock()

	if rpc.mu.client != nil {
		return rpc.mu.client, nil
	}

	endpoint := rpc.config.EthereumEndpoint()
	if endpoint == "" {
		return nil, errors.New("ethereum endpoint is not configured")
	}

	client, err := ethclient.DialContext(ctx, endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "failed dialing ethereum endpoint %s", endpoint)
	}

	rpc.logger.Info("connected to ethereum node", log.String("endpoint", endpoint))
	rpc.mu.client = client
	return client, nil
}

// Close tears down the connection and with it every active subscription.
func (rpc *EthereumRpcConnection) Close() {
	rpc.mu.Lock()
	defer rpc.mu.Unlock()

	if rpc.mu.client != nil {
		rpc.mu.client.Close()
		rpc.mu.client = nil
	}
}
