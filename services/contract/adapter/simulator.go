// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package adapter

import (
	"context"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/ethereum/go-ethereum/params"
	"github.com/orbs-network/scribe/log"
	"math/big"
	"strings"
	"sync"
)

var simulatorFunding = new(big.Int).Mul(big.NewInt(1000), big.NewInt(params.Ether))

// EthereumSimulator is an in-process chain. Blocks are only produced on Commit.
type EthereumSimulator struct {
	connectorCommon

	auth    *bind.TransactOpts
	backend *simulated.Backend
	mu      sync.Mutex
}

// NewEthereumSimulatorConnection funds a fresh deployer account plus every address in funded.
func NewEthereumSimulatorConnection(logger log.Logger, funded ...common.Address) (*EthereumSimulator, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, err
	}
	deployer := crypto.PubkeyToAddress(key.PublicKey)

	alloc := types.GenesisAlloc{
		deployer: {Balance: simulatorFunding},
	}
	for _, address := range funded {
		alloc[address] = types.Account{Balance: simulatorFunding}
	}

	e := &EthereumSimulator{
		backend: simulated.NewBackend(alloc),
	}
	e.logger = logger.WithTags(log.String("adapter", "ethereum-sim"))

	client := e.backend.Client()
	e.getClient = func() (EthereumConnection, error) {
		return client, nil
	}

	chainId, err := client.ChainID(context.Background())
	if err != nil {
		e.backend.Close()
		return nil, err
	}

	e.auth, err = bind.NewKeyedTransactorWithChainID(key, chainId)
	if err != nil {
		e.backend.Close()
		return nil, err
	}

	return e, nil
}

func (es *EthereumSimulator) GetAuth() *bind.TransactOpts {
	// this is used for test code, not protecting this
	return es.auth
}

func (es *EthereumSimulator) Commit() {
	es.mu.Lock()
	defer es.mu.Unlock()
	es.backend.Commit()
}

func (es *EthereumSimulator) Close() {
	es.backend.Close()
}

// DeployEthereumContract is a helper for integration tests, not used in production code
func (es *EthereumSimulator) DeployEthereumContract(abiJson string, bytecode string, params ...interface{}) (common.Address, error) {
	parsedAbi, err := abi.JSON(strings.NewReader(abiJson))
	if err != nil {
		return common.Address{}, err
	}

	address, _, _, err := bind.DeployContract(es.auth, parsedAbi, common.FromHex(bytecode), es.backend.Client(), params...)
	if err != nil {
		return common.Address{}, err
	}

	es.Commit()
	es.logger.Info("deployed contract on simulator", log.String("address", address.Hex()))
	return address, nil
}
