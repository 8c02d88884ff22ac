// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package wallet

import (
	"context"
	"crypto/ecdsa"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"math/big"
	"strings"
)

// SignedTransaction is what a Signer hands back; an empty Raw means there is nothing to broadcast.
type SignedTransaction struct {
	Raw  []byte
	Hash common.Hash
}

func (s *SignedTransaction) IsEmpty() bool {
	return s == nil || len(s.Raw) == 0
}

// Transaction decodes the raw payload back into the transaction that goes on the wire.
func (s *SignedTransaction) Transaction() (*types.Transaction, error) {
	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(s.Raw); err != nil {
		return nil, err
	}
	return tx, nil
}

// Signer signs on behalf of one address. Implementations may hold the key locally or call out to a custodian.
type Signer interface {
	Address() common.Address
	SignTransaction(ctx context.Context, tx *types.Transaction, chainId *big.Int) (*SignedTransaction, error)
}

type Account struct {
	address common.Address
	key     *ecdsa.PrivateKey
}

func NewAccountFromMnemonic(mnemonic string, derivationPath string) (*Account, error) {
	if derivationPath == "" {
		derivationPath = DefaultDerivationPath
	}

	path, err := ParseDerivationPath(derivationPath)
	if err != nil {
		return nil, err
	}

	seed, err := SeedFromMnemonic(mnemonic, "")
	if err != nil {
		return nil, err
	}

	key, err := derivePrivateKey(seed, path)
	if err != nil {
		return nil, err
	}

	return newAccount(key), nil
}

func NewAccountFromHexKey(hexKey string) (*Account, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid private key")
	}

	return newAccount(key), nil
}

func newAccount(key *ecdsa.PrivateKey) *Account {
	return &Account{
		address: crypto.PubkeyToAddress(key.PublicKey),
		key:     key,
	}
}

func (a *Account) Address() common.Address {
	return a.address
}

func (a *Account) SignTransaction(ctx context.Context, tx *types.Transaction, chainId *big.Int) (*SignedTransaction, error) {
	if chainId == nil {
		return nil, errors.New("chain id is required for signing")
	}

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainId), a.key)
	if err != nil {
		return nil, err
	}

	raw, err := signed.MarshalBinary()
	if err != nil {
		return nil, err
	}

	return &SignedTransaction{Raw: raw, Hash: signed.Hash()}, nil
}

// String never includes key material.
func (a *Account) String() string {
	return a.address.Hex()
}
