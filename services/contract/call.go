// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package contract

import (
	"context"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/orbs-network/ethereum-contract-interface/instrumentation/logfields"
	"github.com/orbs-network/scribe/log"
	"math/big"
	"time"
)

// Call sends a state-changing transaction invoking methodName with args and blocks until it is mined.
// It returns nil, nil when the signer produced nothing to broadcast.
// Nonces are read from the node per call, so concurrent calls from the same account may collide.
func (c *ContractInterface) Call(ctx context.Context, methodName string, args ...interface{}) (*types.Receipt, error) {
	if c.signer == nil {
		return nil, ErrAccountNotSet
	}

	start := time.Now()
	defer c.metrics.callTime.RecordSince(start)

	logger := c.logger.WithTags(logfields.Method(methodName))

	data, err := c.EncodeCall(methodName, args...)
	if err != nil {
		return nil, c.failed(logger, "failed to encode contract call", err)
	}

	from := c.signer.Address()
	logger.Info("calling contract method", log.Int("args", len(args)))

	gas, err := c.gasLimit(ctx, from, data)
	if err != nil {
		return nil, c.failed(logger, "failed to estimate gas", err)
	}

	tx, chainId, err := c.unsignedTransaction(ctx, from, data, gas)
	if err != nil {
		return nil, c.failed(logger, "failed to prepare transaction", err)
	}

	signed, err := c.signer.SignTransaction(ctx, tx, chainId)
	if err != nil {
		return nil, c.failed(logger, "failed to sign transaction", err)
	}

	if signed.IsEmpty() {
		logger.Info("signer returned no raw transaction, nothing was broadcast")
		return nil, nil
	}

	outgoing, err := signed.Transaction()
	if err != nil {
		return nil, c.failed(logger, "signer returned an undecodable transaction", err)
	}

	if err := c.connection.SendTransaction(ctx, outgoing); err != nil {
		return nil, c.failed(logger, "failed to send transaction", err)
	}

	c.metrics.callsSent.Inc()
	c.metrics.lastTxHash.Update(outgoing.Hash().Hex())
	logger = logger.WithTags(logfields.Transaction(outgoing.Hash()))
	logger.Info("contract method transaction sent", log.Uint64("gas", gas))

	receipt, err := bind.WaitMined(ctx, c.connection, outgoing)
	if err != nil {
		return nil, c.failed(logger, "failed waiting for transaction to be mined", err)
	}

	logger.Info("contract method transaction mined", logfields.BlockNumber(receipt.BlockNumber.Uint64()), log.Uint64("gas-used", receipt.GasUsed), log.Uint64("status", receipt.Status))

	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, c.failed(logger, "contract method transaction reverted", &TransactionRevertedError{Receipt: receipt})
	}

	return receipt, nil
}

func (c *ContractInterface) gasLimit(ctx context.Context, from common.Address, data []byte) (uint64, error) {
	if c.variant == MnemonicRequired {
		return c.staticGasLimit, nil
	}

	return c.connection.EstimateGas(ctx, ethereum.CallMsg{
		From:  from,
		To:    &c.address,
		Value: big.NewInt(0),
		Data:  data,
	})
}

// chain id, nonce and gas price are taken from the node, the way a wallet fills them in before signing
func (c *ContractInterface) unsignedTransaction(ctx context.Context, from common.Address, data []byte, gas uint64) (*types.Transaction, *big.Int, error) {
	chainId, err := c.connection.ChainID(ctx)
	if err != nil {
		return nil, nil, err
	}

	nonce, err := c.connection.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, nil, err
	}

	gasPrice, err := c.connection.SuggestGasPrice(ctx)
	if err != nil {
		return nil, nil, err
	}

	to := c.address
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       &to,
		Value:    big.NewInt(0),
		Data:     data,
	})

	return tx, chainId, nil
}

func (c *ContractInterface) failed(logger log.Logger, msg string, err error) error {
	c.metrics.callsFailed.Inc()
	logger.Error(msg, log.Error(err))
	return err
}
