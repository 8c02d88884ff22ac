package wallet

import (
	"context"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
	"math/big"
	"testing"
)

const (
	testMnemonic        = "test test test test test test test test test test test junk"
	firstTestAddress    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	secondTestAddress   = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	firstTestPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
)

func TestNewAccountFromMnemonic_DerivesDefaultPath(t *testing.T) {
	account, err := NewAccountFromMnemonic(testMnemonic, "")
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress(firstTestAddress), account.Address())
}

func TestNewAccountFromMnemonic_DerivesGivenPath(t *testing.T) {
	account, err := NewAccountFromMnemonic(testMnemonic, "m/44'/60'/0'/0/1")
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress(secondTestAddress), account.Address())
}

func TestNewAccountFromMnemonic_ToleratesExtraWhitespace(t *testing.T) {
	account, err := NewAccountFromMnemonic("  test test test test test test\ttest test test test test   junk ", "")
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress(firstTestAddress), account.Address())
}

func TestNewAccountFromMnemonic_RejectsInvalidMnemonic(t *testing.T) {
	_, err := NewAccountFromMnemonic("test test test test test test test test test test test notaword", "")
	require.Error(t, err)

	_, err = NewAccountFromMnemonic("", "")
	require.Error(t, err)
}

func TestNewAccountFromMnemonic_RejectsInvalidPath(t *testing.T) {
	_, err := NewAccountFromMnemonic(testMnemonic, "m/44'/sixty'/0'/0/0")
	require.Error(t, err)
}

func TestNewAccountFromHexKey_MatchesMnemonicDerivation(t *testing.T) {
	fromKey, err := NewAccountFromHexKey(firstTestPrivateKey)
	require.NoError(t, err)

	fromMnemonic, err := NewAccountFromMnemonic(testMnemonic, DefaultDerivationPath)
	require.NoError(t, err)

	require.Equal(t, fromMnemonic.Address(), fromKey.Address())
}

func TestNewAccountFromHexKey_RejectsGarbage(t *testing.T) {
	_, err := NewAccountFromHexKey("0xnothex")
	require.Error(t, err)
}

func TestAccount_SignTransactionRecoversToAccountAddress(t *testing.T) {
	account, err := NewAccountFromHexKey(firstTestPrivateKey)
	require.NoError(t, err)

	to := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	chainId := big.NewInt(1337)
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    3,
		GasPrice: big.NewInt(1000000000),
		Gas:      50000,
		To:       &to,
		Value:    big.NewInt(0),
		Data:     []byte{0xde, 0xad, 0xbe, 0xef},
	})

	signed, err := account.SignTransaction(context.Background(), tx, chainId)
	require.NoError(t, err)
	require.False(t, signed.IsEmpty())

	decoded, err := signed.Transaction()
	require.NoError(t, err)
	require.Equal(t, signed.Hash, decoded.Hash())
	require.Equal(t, tx.Data(), decoded.Data())
	require.EqualValues(t, 0, decoded.Value().Int64())

	sender, err := types.Sender(types.LatestSignerForChainID(chainId), decoded)
	require.NoError(t, err)
	require.Equal(t, account.Address(), sender)
}

func TestAccount_SignTransactionRequiresChainId(t *testing.T) {
	account, err := NewAccountFromHexKey(firstTestPrivateKey)
	require.NoError(t, err)

	_, err = account.SignTransaction(context.Background(), types.NewTx(&types.LegacyTx{}), nil)
	require.Error(t, err)
}

func TestAccount_StringDoesNotLeakKey(t *testing.T) {
	account, err := NewAccountFromHexKey(firstTestPrivateKey)
	require.NoError(t, err)

	require.Equal(t, account.Address().Hex(), account.String())
	require.NotContains(t, account.String(), firstTestPrivateKey[2:])
}

func TestSignedTransaction_EmptyWhenNoRawPayload(t *testing.T) {
	var missing *SignedTransaction
	require.True(t, missing.IsEmpty())
	require.True(t, (&SignedTransaction{}).IsEmpty())
	require.False(t, (&SignedTransaction{Raw: []byte{1}}).IsEmpty())
}
