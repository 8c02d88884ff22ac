// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package wallet

import (
	"crypto/ecdsa"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
	"strings"
)

func normalizeMnemonic(mnemonic string) string {
	return strings.Join(strings.Fields(mnemonic), " ")
}

func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(normalizeMnemonic(mnemonic))
}

// SeedFromMnemonic fails on a bad word or checksum rather than hashing garbage into a seed.
func SeedFromMnemonic(mnemonic string, passphrase string) ([]byte, error) {
	return bip39.NewSeedWithErrorChecking(normalizeMnemonic(mnemonic), passphrase)
}

func derivePrivateKey(seed []byte, path *DerivationPath) (*ecdsa.PrivateKey, error) {
	// the network params only select extended key version bytes, which never leave this function
	key, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, err
	}

	for _, index := range path.Indices() {
		key, err = key.Derive(index)
		if err != nil {
			return nil, errors.Wrapf(err, "failed deriving %s", path)
		}
	}

	privateKey, err := key.ECPrivKey()
	if err != nil {
		return nil, err
	}

	return privateKey.ToECDSA(), nil
}
