// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"reflect"
	"runtime"
	"strings"
)

type validator struct {
	logger log.Logger
}

func NewValidator(logger log.Logger) *validator {
	return &validator{logger: logger}
}

func (v *validator) ValidateContractInterfaceConfig(cfg ContractInterfaceConfig) error {
	if err := v.requireNonEmpty(cfg.EthereumEndpoint, "an ethereum endpoint must be configured"); err != nil {
		return err
	}

	if err := v.requireNonEmpty(cfg.ContractAbi, "a contract abi must be configured"); err != nil {
		return err
	}

	if !common.IsHexAddress(cfg.ContractAddress()) {
		v.logger.Error("invalid contract address", log.String("contract-address", cfg.ContractAddress()))
		return errors.Errorf("contract address %q is not a hex address", cfg.ContractAddress())
	}

	if cfg.MnemonicRequired() {
		// never log the value itself
		if err := v.requireNonEmpty(cfg.Mnemonic, "a mnemonic is required by configuration"); err != nil {
			return err
		}

		if cfg.StaticGasLimit() == 0 {
			return errors.New("a static gas limit is required when gas is not estimated")
		}
	}

	return nil
}

func (v *validator) requireNonEmpty(getter func() string, msg string) error {
	if getter() == "" {
		v.logger.Error(msg, log.String("key", funcName(getter)))
		return errors.New(msg)
	}
	return nil
}

func funcName(i interface{}) string {
	fullName := runtime.FuncForPC(reflect.ValueOf(i).Pointer()).Name()
	lastDot := strings.LastIndex(fullName, ".")
	return strings.TrimSuffix(fullName[lastDot+1:], "-fm")
}
