// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package e2e

import (
	"context"
	"github.com/orbs-network/ethereum-contract-interface/config"
	"github.com/orbs-network/ethereum-contract-interface/instrumentation/metric"
	"github.com/orbs-network/ethereum-contract-interface/services/contract"
	"github.com/orbs-network/ethereum-contract-interface/services/contract/adapter"
	"github.com/orbs-network/ethereum-contract-interface/test/contracts"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
	"os"
)

// dotenv files are looked up relative to the package and to the repository root
var envFiles = []string{".env", "../../.env"}

type harness struct {
	govnr.TreeSupervisor
	connection *adapter.EthereumRpcConnection
	contract   *contract.ContractInterface
	logger     log.Logger
}

func newLogger() log.Logger {
	console := log.NewFormattingOutput(os.Stdout, log.NewHumanReadableFormatter())
	return log.GetLogger().WithTags(
		log.String("_test", "e2e"),
		log.String("_branch", os.Getenv("GIT_BRANCH")),
		log.String("_commit", os.Getenv("GIT_COMMIT"))).
		WithOutput(console)
}

// liveConfig returns nil when no provider is configured
func liveConfig() (config.ContractInterfaceConfig, error) {
	cfg, err := config.GetConfigFromEnvironment(envFiles...)
	if err != nil {
		return nil, err
	}

	if cfg.EthereumEndpoint() == "" {
		return nil, nil
	}

	if cfg.ContractAbi() == "" {
		withAbi := config.ForContract(cfg.EthereumEndpoint(), cfg.ContractAddress(), contracts.BridgeTokenAbi, cfg.Mnemonic())
		withAbi.SetString(config.DERIVATION_PATH, cfg.DerivationPath())
		return withAbi, nil
	}

	return cfg, nil
}

func newLiveHarness(ctx context.Context, cfg config.ContractInterfaceConfig) (*harness, error) {
	logger := newLogger()
	registry := metric.NewRegistry()

	connection := adapter.NewEthereumRpcConnection(cfg, logger)
	if err := connection.Dial(ctx); err != nil {
		return nil, err
	}

	ci, err := contract.NewFromConfig(cfg, connection, logger, registry)
	if err != nil {
		connection.Close()
		return nil, err
	}

	h := &harness{
		connection: connection,
		contract:   ci,
		logger:     logger,
	}
	h.Supervise(ci)
	h.Supervise(registry.ReportEvery(ctx, cfg.MetricsReportInterval(), logger))

	return h, nil
}

func (h *harness) close(ctx context.Context) {
	h.WaitUntilShutdown(ctx)
	h.connection.Close()
}
