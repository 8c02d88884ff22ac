// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package contract

import (
	"context"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/orbs-network/ethereum-contract-interface/events"
	"github.com/orbs-network/ethereum-contract-interface/instrumentation/logfields"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
	"math/big"
)

const subscriptionBufferSize = 128

// SubscribeToEvent opens a log subscription for eventName and returns without waiting for it.
// Every log, and every subscription error, reaches handler exactly once and is then published
// to listeners registered with On. Delivery stops when ctx is cancelled or the subscription fails.
func (c *ContractInterface) SubscribeToEvent(ctx context.Context, eventName string, handler EventHandler, options FilterOptions) error {
	event, found := c.abi.Events[eventName]
	if !found {
		return &EventNotFoundError{Event: eventName}
	}

	query, err := c.filterQuery(event, options)
	if err != nil {
		return err
	}

	logger := c.logger.WithTags(logfields.Event(eventName))
	subCtx, cancel := context.WithCancel(ctx)

	p := &eventPump{
		contract:  c,
		ctx:       subCtx,
		cancel:    cancel,
		name:      eventName,
		event:     event,
		query:     query,
		fromBlock: options.FromBlock,
		handler:   handler,
		logger:    logger,
		logs:      make(chan types.Log, subscriptionBufferSize),
	}

	logger.Info("subscribing to contract event")
	c.Supervise(govnr.Forever(subCtx, "contract event subscription "+eventName, logfields.GovnrErrorer(logger), p.run))

	return nil
}

// On registers listener for notifications published under event. Listeners run in registration order.
func (c *ContractInterface) On(event string, listener func(notification EventNotification)) events.Handle {
	return c.notifications.Subscribe(event, func(payload interface{}) {
		if notification, ok := payload.(EventNotification); ok {
			listener(notification)
		}
	})
}

func (c *ContractInterface) Off(handle events.Handle) bool {
	return c.notifications.Unsubscribe(handle)
}

func (c *ContractInterface) Notifications() *events.Bus {
	return c.notifications
}

type logPosition struct {
	block uint64
	index uint
}

// removed logs always pass so listeners learn about reorgs of replayed logs
func (p logPosition) covers(l types.Log) bool {
	if l.Removed {
		return false
	}
	return l.BlockNumber < p.block || (l.BlockNumber == p.block && l.Index <= p.index)
}

type eventPump struct {
	contract *ContractInterface
	ctx      context.Context
	cancel   context.CancelFunc

	name      string
	event     abi.Event
	query     ethereum.FilterQuery
	fromBlock *big.Int
	handler   EventHandler
	logger    log.Logger

	logs           chan types.Log
	sub            ethereum.Subscription
	lastHistorical *logPosition
}

// run may be restarted after a panic in a handler, so setup happens only once
func (p *eventPump) run() {
	if p.sub == nil && !p.subscribe() {
		return
	}

	for {
		select {
		case <-p.ctx.Done():
			p.sub.Unsubscribe()
			p.logger.Info("contract event subscription stopped")
			return
		case err := <-p.sub.Err():
			if err != nil {
				p.deliver(err, nil)
			}
			p.cancel()
			return
		case l := <-p.logs:
			p.deliverLog(l)
		}
	}
}

func (p *eventPump) subscribe() bool {
	sub, err := p.contract.connection.SubscribeFilterLogs(p.ctx, p.query, p.logs)
	if err != nil {
		p.deliver(err, nil)
		p.cancel()
		return false
	}
	p.sub = sub

	if p.fromBlock != nil {
		p.replayHistory()
	}

	return true
}

// live logs already replayed from history are skipped by position
func (p *eventPump) replayHistory() {
	query := p.query
	query.FromBlock = p.fromBlock

	history, err := p.contract.connection.FilterLogs(p.ctx, query)
	if err != nil {
		p.deliver(err, nil)
		return
	}

	p.logger.Info("replaying past contract events", log.Int("count", len(history)), log.Uint64("from-block", p.fromBlock.Uint64()))
	for _, l := range history {
		p.deliverLog(l)
		p.lastHistorical = &logPosition{block: l.BlockNumber, index: l.Index}
	}
}

func (p *eventPump) deliverLog(l types.Log) {
	if p.lastHistorical != nil && p.lastHistorical.covers(l) {
		return
	}

	data, err := decodeLog(p.name, p.event, l)
	if err != nil {
		p.deliver(err, nil)
		return
	}

	p.deliver(nil, data)
}

func (p *eventPump) deliver(err error, data *EventData) {
	if err != nil {
		p.contract.metrics.eventErrors.Inc()
		p.logger.Error("contract event subscription error", log.Error(err))
	} else {
		p.contract.metrics.eventRate.Measure(1)
		p.logger.Info("contract event received", logfields.BlockNumber(data.BlockNumber), logfields.Transaction(data.TransactionHash))
	}

	if p.handler != nil {
		p.handler(err, data)
	}

	p.contract.notifications.Publish(p.name, EventNotification{Err: err, Data: data})
}
