package test

import (
	"context"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/orbs-network/ethereum-contract-interface/services/contract"
	"github.com/orbs-network/scribe/log"
	"github.com/stretchr/testify/require"
	"math/big"
	"testing"
	"time"
)

const eventTimeout = 10 * time.Second

func withHarness(t *testing.T, f func(ctx context.Context, h *harness)) {
	h, err := newEmitEventHarness(log.DefaultTestingLogger(t))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer func() {
		cancel()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		h.shutdown(shutdownCtx)
	}()

	f(ctx, h)
}

func collectNotifications(h *harness, event string) chan contract.EventNotification {
	notifications := make(chan contract.EventNotification, 10)
	h.contract.On(event, func(n contract.EventNotification) {
		notifications <- n
	})
	return notifications
}

func nextNotification(t *testing.T, notifications chan contract.EventNotification) contract.EventNotification {
	select {
	case n := <-notifications:
		return n
	case <-time.After(eventTimeout):
		t.Fatal("timed out waiting for a contract event")
		return contract.EventNotification{}
	}
}

func TestCall_MinesTransactionOnSimulator(t *testing.T) {
	withHarness(t, func(ctx context.Context, h *harness) {
		receipt, err := h.transferOut(ctx, 1, common.HexToAddress(TestAccount), orbsAddress(0xab), 42)
		require.NoError(t, err)

		require.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)
		require.Len(t, receipt.Logs, 2, "TransferredOut and AnotherEvent")
		require.Equal(t, h.contract.Address(), receipt.Logs[0].Address)
	})
}

func TestSubscribeToEvent_ReceivesDecodedEventFromSimulator(t *testing.T) {
	withHarness(t, func(ctx context.Context, h *harness) {
		notifications := collectNotifications(h, "TransferredOut")
		var handled []*contract.EventData
		handler := func(err error, data *contract.EventData) {
			handled = append(handled, data)
		}

		// replaying from genesis covers a block mined before the live subscription is up
		options := contract.FilterOptions{FromBlock: bigInt(0)}
		require.NoError(t, h.contract.SubscribeToEvent(ctx, "TransferredOut", handler, options))

		receipt, err := h.transferOut(ctx, 7, common.HexToAddress(TestAccount), orbsAddress(0xab), 42)
		require.NoError(t, err)

		n := nextNotification(t, notifications)
		require.NoError(t, n.Err)
		require.Len(t, handled, 1, "handler runs before listeners")
		require.Same(t, handled[0], n.Data)

		values := n.Data.ReturnValues
		require.EqualValues(t, 7, values["tuid"].(*big.Int).Int64())
		require.Equal(t, common.HexToAddress(TestAccount), values["ethAddress"])
		require.Equal(t, orbsAddress(0xab), values["orbsAddress"])
		require.EqualValues(t, 42, values["value"].(*big.Int).Int64())

		require.Equal(t, "TransferredOut", n.Data.Event)
		require.Equal(t, h.contract.ABI().Events["TransferredOut"].ID, n.Data.Signature)
		require.Equal(t, receipt.TxHash, n.Data.TransactionHash)
		require.Equal(t, receipt.BlockNumber.Uint64(), n.Data.BlockNumber)
	})
}

func TestSubscribeToEvent_FiltersOnIndexedArgumentOnSimulator(t *testing.T) {
	withHarness(t, func(ctx context.Context, h *harness) {
		notifications := collectNotifications(h, "TransferredOut")
		options := contract.FilterOptions{
			FromBlock: bigInt(0),
			Filter:    map[string][]interface{}{"tuid": {bigInt(2)}},
		}
		require.NoError(t, h.contract.SubscribeToEvent(ctx, "TransferredOut", nil, options))

		_, err := h.transferOut(ctx, 1, common.HexToAddress(TestAccount), orbsAddress(0x01), 10)
		require.NoError(t, err)
		_, err = h.transferOut(ctx, 2, common.HexToAddress(TestAccount), orbsAddress(0x02), 20)
		require.NoError(t, err)

		n := nextNotification(t, notifications)
		require.NoError(t, n.Err)
		require.EqualValues(t, 2, n.Data.ReturnValues["tuid"].(*big.Int).Int64())
	})
}

func TestSubscribeToEvent_ReplaysPastEventsFromBlock(t *testing.T) {
	withHarness(t, func(ctx context.Context, h *harness) {
		past, err := h.transferOut(ctx, 3, common.HexToAddress(TestAccount), orbsAddress(0x03), 30)
		require.NoError(t, err)

		notifications := collectNotifications(h, "AnotherEvent")
		options := contract.FilterOptions{FromBlock: past.BlockNumber}
		require.NoError(t, h.contract.SubscribeToEvent(ctx, "AnotherEvent", nil, options))

		n := nextNotification(t, notifications)
		require.NoError(t, n.Err)
		require.Equal(t, "bar", n.Data.ReturnValues["foo"])
		require.Equal(t, past.TxHash, n.Data.TransactionHash)

		_, err = h.transferOut(ctx, 4, common.HexToAddress(TestAccount), orbsAddress(0x04), 40)
		require.NoError(t, err)

		n = nextNotification(t, notifications)
		require.NoError(t, n.Err)
		require.NotEqual(t, past.TxHash, n.Data.TransactionHash)
	})
}
