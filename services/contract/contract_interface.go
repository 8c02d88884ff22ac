// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package contract

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/orbs-network/ethereum-contract-interface/config"
	"github.com/orbs-network/ethereum-contract-interface/events"
	"github.com/orbs-network/ethereum-contract-interface/instrumentation/logfields"
	"github.com/orbs-network/ethereum-contract-interface/instrumentation/metric"
	"github.com/orbs-network/ethereum-contract-interface/services/contract/adapter"
	"github.com/orbs-network/ethereum-contract-interface/services/wallet"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"strings"
	"time"
)

var LogTag = log.Service("contract-interface")

type Variant int

const (
	// MnemonicOptional estimates gas per call and fails calls, not construction, when no account is set.
	MnemonicOptional Variant = iota
	// MnemonicRequired fails construction without an account and signs with a static gas limit.
	MnemonicRequired
)

func (v Variant) String() string {
	switch v {
	case MnemonicOptional:
		return "mnemonic-optional"
	case MnemonicRequired:
		return "mnemonic-required"
	default:
		return "unknown"
	}
}

type Options struct {
	Connection     adapter.EthereumConnection
	Mnemonic       string
	DerivationPath string
	Address        common.Address
	ABI            string
	Variant        Variant
	StaticGasLimit uint64

	// Signer replaces the mnemonic account, e.g. for keys held by a custodian
	Signer wallet.Signer

	Logger  log.Logger
	Metrics metric.Factory
}

type metrics struct {
	callTime    *metric.Histogram
	callsSent   *metric.Gauge
	callsFailed *metric.Gauge
	lastTxHash  *metric.Text
	eventRate   *metric.Rate
	eventErrors *metric.Gauge
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		callTime:    m.NewLatency("ContractInterface.Call.ProcessingTime", 5*time.Minute),
		callsSent:   m.NewGauge("ContractInterface.Call.Sent"),
		callsFailed: m.NewGauge("ContractInterface.Call.Failed"),
		lastTxHash:  m.NewText("ContractInterface.Call.LastTransaction"),
		eventRate:   m.NewRate("ContractInterface.Events.Rate"),
		eventErrors: m.NewGauge("ContractInterface.Events.Errors"),
	}
}

// ContractInterface binds one deployed contract to a connection and, optionally, to an account.
type ContractInterface struct {
	govnr.TreeSupervisor

	connection     adapter.EthereumConnection
	address        common.Address
	abi            abi.ABI
	methods        map[string]abi.Method
	signer         wallet.Signer
	variant        Variant
	staticGasLimit uint64

	notifications *events.Bus
	logger        log.Logger
	metrics       *metrics
}

func New(opts Options) (*ContractInterface, error) {
	if opts.Connection == nil {
		return nil, errors.New("a connection is required")
	}

	if opts.Logger == nil {
		return nil, errors.New("a logger is required")
	}

	parsedAbi, err := abi.JSON(strings.NewReader(opts.ABI))
	if err != nil {
		return nil, err
	}

	signer := opts.Signer
	if signer == nil && opts.Mnemonic != "" {
		account, err := wallet.NewAccountFromMnemonic(opts.Mnemonic, opts.DerivationPath)
		if err != nil {
			return nil, err
		}
		signer = account
	}

	if opts.Variant == MnemonicRequired {
		if signer == nil {
			return nil, ErrMnemonicRequired
		}

		if opts.StaticGasLimit == 0 {
			return nil, errors.New("a static gas limit is required when gas is not estimated")
		}
	}

	registry := opts.Metrics
	if registry == nil {
		registry = metric.NewRegistry()
	}

	logger := opts.Logger.WithTags(LogTag, logfields.ContractAddress(opts.Address))
	if signer != nil {
		logger = logger.WithTags(logfields.Sender(signer.Address()))
	}

	c := &ContractInterface{
		connection:     opts.Connection,
		address:        opts.Address,
		abi:            parsedAbi,
		methods:        buildMethodTable(parsedAbi),
		signer:         signer,
		variant:        opts.Variant,
		staticGasLimit: opts.StaticGasLimit,
		notifications:  events.NewBus(),
		logger:         logger,
		metrics:        newMetrics(registry),
	}

	logger.Info("contract interface created", log.String("variant", opts.Variant.String()), log.Int("methods", len(c.methods)), log.Int("events", len(parsedAbi.Events)))

	return c, nil
}

// NewFromConfig validates cfg and builds the interface it describes on top of connection.
func NewFromConfig(cfg config.ContractInterfaceConfig, connection adapter.EthereumConnection, logger log.Logger, registry metric.Factory) (*ContractInterface, error) {
	if err := config.NewValidator(logger).ValidateContractInterfaceConfig(cfg); err != nil {
		return nil, err
	}

	variant := MnemonicOptional
	if cfg.MnemonicRequired() {
		variant = MnemonicRequired
	}

	return New(Options{
		Connection:     connection,
		Mnemonic:       cfg.Mnemonic(),
		DerivationPath: cfg.DerivationPath(),
		Address:        common.HexToAddress(cfg.ContractAddress()),
		ABI:            cfg.ContractAbi(),
		Variant:        variant,
		StaticGasLimit: cfg.StaticGasLimit(),
		Logger:         logger,
		Metrics:        registry,
	})
}

func (c *ContractInterface) Address() common.Address {
	return c.address
}

// Account returns the address calls are sent from and false when no account is set.
func (c *ContractInterface) Account() (common.Address, bool) {
	if c.signer == nil {
		return common.Address{}, false
	}
	return c.signer.Address(), true
}

func (c *ContractInterface) ABI() abi.ABI {
	return c.abi
}
