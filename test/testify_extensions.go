// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/big"
)

// decoded contract values carry *big.Int, which cmp cannot look into on its own
var bigIntComparer = cmp.Comparer(func(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
})

func AssertCmpEqual(t assert.TestingT, expected interface{}, actual interface{}, msgAndArgs ...interface{}) bool {
	if diff := cmp.Diff(expected, actual, bigIntComparer); diff != "" {
		return assert.Fail(t, "Not equal (-expected +actual):\n"+diff, msgAndArgs...)
	}
	return true
}

func RequireCmpEqual(t require.TestingT, expected interface{}, actual interface{}, msgAndArgs ...interface{}) {
	if !AssertCmpEqual(t, expected, actual, msgAndArgs...) {
		require.FailNow(t, "structures differ", msgAndArgs...)
	}
}
