// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package logfields

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
	"runtime/debug"
	"strings"
)

func ContractAddress(address common.Address) *log.Field {
	return log.String("contract-address", address.Hex())
}

func Sender(address common.Address) *log.Field {
	return log.String("sender", address.Hex())
}

func Transaction(txHash common.Hash) *log.Field {
	return log.String("txHash", txHash.Hex())
}

func Method(name string) *log.Field {
	return log.String("method", name)
}

func Event(name string) *log.Field {
	return log.String("event", name)
}

func BlockNumber(value uint64) *log.Field {
	return log.Uint64("block-number", value)
}

type govnrErrorer struct {
	logger log.Logger
}

func (h *govnrErrorer) Error(err error) {
	if isRecoveredPanic(err) {
		h.logger.Error("recovered panic", log.Error(err), log.String("panic", "true"), log.String("stack-trace", string(debug.Stack())))
		return
	}

	h.logger.Error("supervised goroutine error", log.Error(err))
}

// govnr formats recovered panics as "\npanic: <value>\n\ngoroutine panicked at: ..."
func isRecoveredPanic(err error) bool {
	return err != nil && strings.HasPrefix(strings.TrimSpace(err.Error()), "panic:")
}

// GovnrErrorer reports errors of govnr-supervised goroutines to the logger.
func GovnrErrorer(logger log.Logger) govnr.Errorer {
	return &govnrErrorer{logger}
}
