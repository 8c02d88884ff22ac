// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"time"
)

const DefaultStaticGasLimit = 300000

// all other configs are variations from the default one
func defaultConfig() mutableContractInterfaceConfig {
	cfg := emptyConfig()

	cfg.SetString(DERIVATION_PATH, "m/44'/60'/0'/0/0")
	cfg.SetBool(MNEMONIC_REQUIRED, false)

	// only used when gas is not estimated, enough for a few storage writes
	cfg.SetUint64(STATIC_GAS_LIMIT, DefaultStaticGasLimit)

	cfg.SetDuration(METRICS_REPORT_INTERVAL, 30*time.Second)

	return cfg
}

func ForContract(endpoint string, contractAddress string, contractAbi string, mnemonic string) mutableContractInterfaceConfig {
	cfg := defaultConfig()

	cfg.SetString(ETHEREUM_ENDPOINT, endpoint)
	cfg.SetString(CONTRACT_ADDRESS, contractAddress)
	cfg.SetString(CONTRACT_ABI, contractAbi)
	cfg.SetString(MNEMONIC, mnemonic)

	return cfg
}

func ForTests(contractAddress string, contractAbi string) mutableContractInterfaceConfig {
	cfg := defaultConfig()

	cfg.SetString(CONTRACT_ADDRESS, contractAddress)
	cfg.SetString(CONTRACT_ABI, contractAbi)
	cfg.SetDuration(METRICS_REPORT_INTERVAL, 100*time.Millisecond)

	return cfg
}
