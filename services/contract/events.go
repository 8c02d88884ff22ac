// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package contract

import (
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"math/big"
	"strconv"
)

type RawLog struct {
	Data   []byte
	Topics []common.Hash
}

// EventData is a decoded contract log. ReturnValues holds every event argument twice,
// under its name and under its position. Indexed arguments of dynamic types hold the topic hash.
type EventData struct {
	ReturnValues     map[string]interface{}
	Raw              RawLog
	Event            string
	Signature        common.Hash
	LogIndex         uint
	TransactionIndex uint
	TransactionHash  common.Hash
	BlockHash        common.Hash
	BlockNumber      uint64
	Address          common.Address
	Removed          bool
}

// EventNotification is what gets published on the notification bus for every delivery.
type EventNotification struct {
	Err  error
	Data *EventData
}

type EventHandler func(err error, data *EventData)

type FilterOptions struct {
	// FromBlock replays matching logs from this block before live ones; nil means live logs only
	FromBlock *big.Int

	// Filter maps indexed argument names to the values accepted for them
	Filter map[string][]interface{}

	// Topics, when set, replaces the topics derived from the event and Filter
	Topics [][]common.Hash
}

func (c *ContractInterface) filterQuery(event abi.Event, options FilterOptions) (ethereum.FilterQuery, error) {
	query := ethereum.FilterQuery{
		Addresses: []common.Address{c.address},
	}

	if len(options.Topics) > 0 {
		query.Topics = options.Topics
		return query, nil
	}

	indexed := make(map[string]bool)
	var indexedValues [][]interface{}
	for _, input := range event.Inputs {
		if input.Indexed {
			indexed[input.Name] = true
			indexedValues = append(indexedValues, options.Filter[input.Name])
		}
	}

	for name := range options.Filter {
		if !indexed[name] {
			return query, errors.Errorf("cannot filter event '%s' on '%s', it is not an indexed argument", event.Name, name)
		}
	}

	topics, err := abi.MakeTopics(indexedValues...)
	if err != nil {
		return query, err
	}

	// anonymous events do not carry their ID as the first topic
	if event.Anonymous {
		query.Topics = topics
	} else {
		query.Topics = append([][]common.Hash{{event.ID}}, topics...)
	}

	return query, nil
}

func decodeLog(eventName string, event abi.Event, l types.Log) (*EventData, error) {
	values := make(map[string]interface{})

	if err := event.Inputs.UnpackIntoMap(values, l.Data); err != nil {
		return nil, errors.Wrapf(err, "failed unpacking data of event '%s'", eventName)
	}

	var indexed abi.Arguments
	for _, input := range event.Inputs {
		if input.Indexed {
			indexed = append(indexed, input)
		}
	}

	topics := l.Topics
	if !event.Anonymous {
		if len(topics) == 0 {
			return nil, errors.Errorf("log of event '%s' carries no topics", eventName)
		}
		if topics[0] != event.ID {
			return nil, errors.Errorf("log with signature %s is not an '%s' event", topics[0].Hex(), eventName)
		}
		topics = topics[1:]
	}

	if err := abi.ParseTopicsIntoMap(values, indexed, topics); err != nil {
		return nil, errors.Wrapf(err, "failed parsing topics of event '%s'", eventName)
	}

	for i, input := range event.Inputs {
		values[strconv.Itoa(i)] = values[input.Name]
	}

	data := &EventData{
		ReturnValues: values,
		Raw: RawLog{
			Data:   l.Data,
			Topics: l.Topics,
		},
		Event:            eventName,
		LogIndex:         l.Index,
		TransactionIndex: l.TxIndex,
		TransactionHash:  l.TxHash,
		BlockHash:        l.BlockHash,
		BlockNumber:      l.BlockNumber,
		Address:          l.Address,
		Removed:          l.Removed,
	}

	if !event.Anonymous {
		data.Signature = l.Topics[0]
	}

	return data, nil
}
