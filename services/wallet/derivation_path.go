// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package wallet

import (
	"fmt"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/pkg/errors"
	"strconv"
	"strings"
)

const (
	bip44Purpose     = 44
	EthereumCoinType = 60
)

// DefaultDerivationPath is the first external account, the same one browser wallets derive from a mnemonic.
const DefaultDerivationPath = "m/44'/60'/0'/0/0"

type pathComponent struct {
	index    uint32
	hardened bool
}

type DerivationPath struct {
	components []pathComponent
}

func ParseDerivationPath(path string) (*DerivationPath, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, errors.New("empty derivation path")
	}

	parts := strings.Split(trimmed, "/")
	if parts[0] == "m" || parts[0] == "M" {
		parts = parts[1:]
	}
	if len(parts) == 0 {
		return nil, errors.Errorf("derivation path %s has no components", path)
	}

	dp := &DerivationPath{}
	for i, part := range parts {
		c, err := parsePathComponent(part)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid component %d of derivation path %s", i, path)
		}
		dp.components = append(dp.components, c)
	}

	return dp, nil
}

func MustParseDerivationPath(path string) *DerivationPath {
	dp, err := ParseDerivationPath(path)
	if err != nil {
		panic(err)
	}
	return dp
}

func parsePathComponent(part string) (pathComponent, error) {
	hardened := strings.HasSuffix(part, "'") || strings.HasSuffix(part, "h") || strings.HasSuffix(part, "H")
	if hardened {
		part = part[:len(part)-1]
	}

	value, err := strconv.ParseUint(part, 10, 32)
	if err != nil {
		return pathComponent{}, errors.Errorf("%q is not a number", part)
	}
	if uint32(value) >= hdkeychain.HardenedKeyStart {
		return pathComponent{}, errors.Errorf("index %d out of range", value)
	}

	return pathComponent{index: uint32(value), hardened: hardened}, nil
}

// Indices returns the child numbers with the hardened offset applied, ready for hdkeychain.
func (dp *DerivationPath) Indices() []uint32 {
	indices := make([]uint32, len(dp.components))
	for i, c := range dp.components {
		if c.hardened {
			indices[i] = c.index + hdkeychain.HardenedKeyStart
		} else {
			indices[i] = c.index
		}
	}
	return indices
}

func (dp *DerivationPath) IsEthereumBip44() bool {
	return len(dp.components) == 5 &&
		dp.components[0] == pathComponent{index: bip44Purpose, hardened: true} &&
		dp.components[1] == pathComponent{index: EthereumCoinType, hardened: true}
}

func (dp *DerivationPath) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, c := range dp.components {
		b.WriteString(fmt.Sprintf("/%d", c.index))
		if c.hardened {
			b.WriteString("'")
		}
	}
	return b.String()
}
