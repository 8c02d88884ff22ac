// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package contract

import (
	"fmt"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

var ErrAccountNotSet = errors.New("Account is not set")
var ErrMnemonicRequired = errors.New("a mnemonic is required to construct this contract interface")

type MethodNotFoundError struct {
	Method string
}

func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("method '%s' not found in contract abi", e.Method)
}

type EventNotFoundError struct {
	Event string
}

func (e *EventNotFoundError) Error() string {
	return fmt.Sprintf("event '%s' not found in contract abi", e.Event)
}

// TransactionRevertedError is returned together with the receipt of a transaction that was mined but failed.
type TransactionRevertedError struct {
	Receipt *types.Receipt
}

func (e *TransactionRevertedError) Error() string {
	return fmt.Sprintf("transaction %s has been reverted by the EVM", e.Receipt.TxHash.Hex())
}
