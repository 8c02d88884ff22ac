// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package contract

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"sort"
)

// overloaded methods are keyed the way go-ethereum names them: mint, mint0, mint1...
func buildMethodTable(parsedAbi abi.ABI) map[string]abi.Method {
	methods := make(map[string]abi.Method, len(parsedAbi.Methods))
	for name, method := range parsedAbi.Methods {
		methods[name] = method
	}
	return methods
}

func (c *ContractInterface) Methods() []string {
	names := make([]string, 0, len(c.methods))
	for name := range c.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EncodeCall returns the call data (selector followed by the packed arguments) for methodName.
func (c *ContractInterface) EncodeCall(methodName string, args ...interface{}) ([]byte, error) {
	method, found := c.methods[methodName]
	if !found {
		return nil, &MethodNotFoundError{Method: methodName}
	}

	packed, err := method.Inputs.Pack(args...)
	if err != nil {
		return nil, err
	}

	return append(append([]byte{}, method.ID...), packed...), nil
}
