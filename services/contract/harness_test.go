package contract

import (
	"context"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/orbs-network/ethereum-contract-interface/instrumentation/metric"
	"github.com/orbs-network/ethereum-contract-interface/test/contracts"
	"github.com/orbs-network/go-mock"
	"github.com/orbs-network/scribe/log"
	"github.com/stretchr/testify/require"
	"math/big"
	"sync"
	"testing"
)

const (
	testMnemonic   = "test test test test test test test test test test test junk"
	testAccount    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	testPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testContract   = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	testChainId    = 1337
)

type connectionMock struct {
	mock.Mock

	mu    sync.Mutex
	sinks []chan<- types.Log
}

func (m *connectionMock) ChainID(ctx context.Context) (*big.Int, error) {
	ret := m.Called(ctx)
	if out := ret.Get(0); out != nil {
		return out.(*big.Int), ret.Error(1)
	} else {
		return nil, ret.Error(1)
	}
}

func (m *connectionMock) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	ret := m.Called(ctx, account)
	return ret.Get(0).(uint64), ret.Error(1)
}

func (m *connectionMock) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	ret := m.Called(ctx)
	if out := ret.Get(0); out != nil {
		return out.(*big.Int), ret.Error(1)
	} else {
		return nil, ret.Error(1)
	}
}

func (m *connectionMock) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	ret := m.Called(ctx, msg)
	return ret.Get(0).(uint64), ret.Error(1)
}

func (m *connectionMock) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	ret := m.Called(ctx, tx)
	return ret.Error(0)
}

func (m *connectionMock) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	ret := m.Called(ctx, txHash)
	if out := ret.Get(0); out != nil {
		return out.(*types.Receipt), ret.Error(1)
	} else {
		return nil, ret.Error(1)
	}
}

func (m *connectionMock) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	ret := m.Called(ctx, account, blockNumber)
	if out := ret.Get(0); out != nil {
		return out.([]byte), ret.Error(1)
	} else {
		return nil, ret.Error(1)
	}
}

func (m *connectionMock) FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	ret := m.Called(ctx, query)
	if out := ret.Get(0); out != nil {
		return out.([]types.Log), ret.Error(1)
	} else {
		return nil, ret.Error(1)
	}
}

func (m *connectionMock) SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	ret := m.Called(ctx, query, ch)
	if out := ret.Get(0); out != nil {
		m.mu.Lock()
		m.sinks = append(m.sinks, ch)
		m.mu.Unlock()
		return out.(ethereum.Subscription), ret.Error(1)
	} else {
		return nil, ret.Error(1)
	}
}

// emit pushes l to the most recent subscription
func (m *connectionMock) emit(l types.Log) {
	m.mu.Lock()
	sink := m.sinks[len(m.sinks)-1]
	m.mu.Unlock()
	sink <- l
}

func (m *connectionMock) subscribed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sinks) > 0
}

type fakeSubscription struct {
	errors       chan error
	once         sync.Once
	unsubscribed chan struct{}
}

func newFakeSubscription() *fakeSubscription {
	return &fakeSubscription{
		errors:       make(chan error, 1),
		unsubscribed: make(chan struct{}),
	}
}

func (s *fakeSubscription) Unsubscribe() {
	s.once.Do(func() {
		close(s.unsubscribed)
	})
}

func (s *fakeSubscription) Err() <-chan error {
	return s.errors
}

func (s *fakeSubscription) fail(err error) {
	s.errors <- err
}

type harness struct {
	connection *connectionMock
	registry   metric.Registry
	logger     log.Logger
}

func newHarness(t *testing.T, allowedErrors ...string) *harness {
	output := log.NewTestOutput(t, log.NewHumanReadableFormatter())
	for _, pattern := range allowedErrors {
		output.AllowErrorsMatching(pattern)
	}

	return &harness{
		connection: &connectionMock{},
		registry:   metric.NewRegistry(),
		logger:     log.GetLogger().WithOutput(output),
	}
}

func (h *harness) options(abiJson string) Options {
	return Options{
		Connection: h.connection,
		Mnemonic:   testMnemonic,
		Address:    common.HexToAddress(testContract),
		ABI:        abiJson,
		Logger:     h.logger,
		Metrics:    h.registry,
	}
}

func (h *harness) newBridge(t *testing.T) *ContractInterface {
	c, err := New(h.options(contracts.BridgeTokenAbi))
	require.NoError(t, err)
	return c
}

func (h *harness) verify(t *testing.T) {
	ok, err := h.connection.Verify()
	require.True(t, ok, "connection mock expectations not met: %v", err)
}
