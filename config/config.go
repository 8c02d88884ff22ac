// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"time"
)

type ContractInterfaceConfig interface {
	// transport
	EthereumEndpoint() string

	// contract
	ContractAddress() string
	ContractAbi() string

	// account
	Mnemonic() string
	DerivationPath() string
	MnemonicRequired() bool
	StaticGasLimit() uint64

	// instrumentation
	MetricsReportInterval() time.Duration
}

type mutableContractInterfaceConfig interface {
	ContractInterfaceConfig
	Set(key string, value ConfigValue) mutableContractInterfaceConfig
	SetString(key string, value string) mutableContractInterfaceConfig
	SetBool(key string, value bool) mutableContractInterfaceConfig
	SetUint64(key string, value uint64) mutableContractInterfaceConfig
	SetDuration(key string, value time.Duration) mutableContractInterfaceConfig
	Modify(newValues ...ConfigKeyValue)
}

const (
	ETHEREUM_ENDPOINT = "ETHEREUM_ENDPOINT"

	CONTRACT_ADDRESS = "CONTRACT_ADDRESS"
	CONTRACT_ABI     = "CONTRACT_ABI"

	MNEMONIC          = "MNEMONIC"
	DERIVATION_PATH   = "DERIVATION_PATH"
	MNEMONIC_REQUIRED = "MNEMONIC_REQUIRED"
	STATIC_GAS_LIMIT  = "STATIC_GAS_LIMIT"

	METRICS_REPORT_INTERVAL = "METRICS_REPORT_INTERVAL"
)

type ConfigValue struct {
	Uint64Value   uint64
	DurationValue time.Duration
	StringValue   string
	BoolValue     bool
}

type ConfigKeyValue struct {
	Key   string
	Value ConfigValue
}

type config struct {
	kv map[string]ConfigValue
}

func emptyConfig() mutableContractInterfaceConfig {
	return &config{
		kv: make(map[string]ConfigValue),
	}
}

func (c *config) Set(key string, value ConfigValue) mutableContractInterfaceConfig {
	c.kv[key] = value
	return c
}

func (c *config) SetString(key string, value string) mutableContractInterfaceConfig {
	c.kv[key] = ConfigValue{StringValue: value}
	return c
}

func (c *config) SetBool(key string, value bool) mutableContractInterfaceConfig {
	c.kv[key] = ConfigValue{BoolValue: value}
	return c
}

func (c *config) SetUint64(key string, value uint64) mutableContractInterfaceConfig {
	c.kv[key] = ConfigValue{Uint64Value: value}
	return c
}

func (c *config) SetDuration(key string, value time.Duration) mutableContractInterfaceConfig {
	c.kv[key] = ConfigValue{DurationValue: value}
	return c
}

func (c *config) Modify(newValues ...ConfigKeyValue) {
	for _, kv := range newValues {
		c.kv[kv.Key] = kv.Value
	}
}

func (c *config) EthereumEndpoint() string {
	return c.kv[ETHEREUM_ENDPOINT].StringValue
}

func (c *config) ContractAddress() string {
	return c.kv[CONTRACT_ADDRESS].StringValue
}

func (c *config) ContractAbi() string {
	return c.kv[CONTRACT_ABI].StringValue
}

func (c *config) Mnemonic() string {
	return c.kv[MNEMONIC].StringValue
}

func (c *config) DerivationPath() string {
	return c.kv[DERIVATION_PATH].StringValue
}

func (c *config) MnemonicRequired() bool {
	return c.kv[MNEMONIC_REQUIRED].BoolValue
}

func (c *config) StaticGasLimit() uint64 {
	return c.kv[STATIC_GAS_LIMIT].Uint64Value
}

func (c *config) MetricsReportInterval() time.Duration {
	return c.kv[METRICS_REPORT_INTERVAL].DurationValue
}
