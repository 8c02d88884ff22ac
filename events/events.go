// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

// Package events is a small in-process publish/subscribe bus keyed by topic name.
package events

import (
	"sync"
)

type Handler func(payload interface{})

// Handle identifies a single registration; the zero Handle is never issued.
type Handle struct {
	topic string
	id    uint64
}

func (h Handle) Topic() string {
	return h.topic
}

func (h Handle) IsZero() bool {
	return h.id == 0
}

type subscriber struct {
	id      uint64
	handler Handler
}

type Bus struct {
	mu struct {
		sync.RWMutex
		nextId uint64
		topics map[string][]*subscriber
	}
}

func NewBus() *Bus {
	b := &Bus{}
	b.mu.topics = make(map[string][]*subscriber)
	return b
}

func (b *Bus) Subscribe(topic string, handler Handler) Handle {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.mu.nextId++
	s := &subscriber{id: b.mu.nextId, handler: handler}
	b.mu.topics[topic] = append(b.mu.topics[topic], s)

	return Handle{topic: topic, id: s.id}
}

// Unsubscribe returns false if the handle was already removed or never issued by this bus.
func (b *Bus) Unsubscribe(h Handle) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	subscribers := b.mu.topics[h.topic]
	for i, s := range subscribers {
		if s.id == h.id {
			remaining := make([]*subscriber, 0, len(subscribers)-1)
			remaining = append(remaining, subscribers[:i]...)
			remaining = append(remaining, subscribers[i+1:]...)
			if len(remaining) == 0 {
				delete(b.mu.topics, h.topic)
			} else {
				b.mu.topics[h.topic] = remaining
			}
			return true
		}
	}

	return false
}

// Publish calls every handler of the topic synchronously, in registration order.
// Handlers may subscribe or unsubscribe while being called; changes apply to the next Publish.
func (b *Bus) Publish(topic string, payload interface{}) {
	b.mu.RLock()
	subscribers := b.mu.topics[topic]
	b.mu.RUnlock()

	for _, s := range subscribers {
		s.handler(payload)
	}
}

func (b *Bus) SubscriberCount(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.mu.topics[topic])
}

func (b *Bus) Topics() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var topics []string
	for topic := range b.mu.topics {
		topics = append(topics, topic)
	}
	return topics
}
