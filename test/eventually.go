// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"github.com/orbs-network/go-mock"
	"time"
)

const DefaultEventuallyTimeout = 2 * time.Second
const pollInterval = 5 * time.Millisecond

// Eventually polls f until it holds or DefaultEventuallyTimeout passes.
func Eventually(f func() bool) bool {
	return EventuallyWithin(DefaultEventuallyTimeout, f)
}

func EventuallyWithin(timeout time.Duration, f func() bool) bool {
	deadline := time.Now().Add(timeout)
	for {
		if f() {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(pollInterval)
	}
}

// Consistently checks that f keeps holding for the whole duration.
func Consistently(duration time.Duration, f func() bool) bool {
	deadline := time.Now().Add(duration)
	for time.Now().Before(deadline) {
		if !f() {
			return false
		}
		time.Sleep(pollInterval)
	}
	return true
}

// EventuallyVerify waits for every mock to meet its expectations and returns the last verification error otherwise.
func EventuallyVerify(mocks ...mock.HasVerify) error {
	var lastErr error
	ok := Eventually(func() bool {
		for _, m := range mocks {
			if verified, err := m.Verify(); !verified {
				lastErr = err
				return false
			}
		}
		return true
	})

	if ok {
		return nil
	}
	return lastErr
}
