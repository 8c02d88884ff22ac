package contract

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/orbs-network/ethereum-contract-interface/config"
	"github.com/orbs-network/ethereum-contract-interface/test/contracts"
	"github.com/stretchr/testify/require"
	"math/big"
	"testing"
)

func TestNew_DerivesAccountFromMnemonic(t *testing.T) {
	h := newHarness(t)
	c := h.newBridge(t)

	account, hasAccount := c.Account()
	require.True(t, hasAccount)
	require.Equal(t, common.HexToAddress(testAccount), account)
	require.Equal(t, common.HexToAddress(testContract), c.Address())
}

func TestNew_HonorsDerivationPath(t *testing.T) {
	h := newHarness(t)
	opts := h.options(contracts.BridgeTokenAbi)
	opts.DerivationPath = "m/44'/60'/0'/0/1"

	c, err := New(opts)
	require.NoError(t, err)

	account, _ := c.Account()
	require.Equal(t, common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"), account)
}

func TestNew_WithoutMnemonicIsAllowedByDefault(t *testing.T) {
	h := newHarness(t)
	opts := h.options(contracts.BridgeTokenAbi)
	opts.Mnemonic = ""

	c, err := New(opts)
	require.NoError(t, err)

	_, hasAccount := c.Account()
	require.False(t, hasAccount)
}

func TestNew_MnemonicRequiredVariantFailsWithoutMnemonic(t *testing.T) {
	h := newHarness(t)
	opts := h.options(contracts.BridgeTokenAbi)
	opts.Mnemonic = ""
	opts.Variant = MnemonicRequired
	opts.StaticGasLimit = 100000

	_, err := New(opts)
	require.Equal(t, ErrMnemonicRequired, err)
}

func TestNew_MnemonicRequiredVariantNeedsStaticGasLimit(t *testing.T) {
	h := newHarness(t)
	opts := h.options(contracts.BridgeTokenAbi)
	opts.Variant = MnemonicRequired

	_, err := New(opts)
	require.Error(t, err)
}

func TestNew_RejectsInvalidMnemonic(t *testing.T) {
	h := newHarness(t)
	opts := h.options(contracts.BridgeTokenAbi)
	opts.Mnemonic = "not a valid mnemonic at all"

	_, err := New(opts)
	require.Error(t, err)
}

func TestNew_RejectsInvalidAbi(t *testing.T) {
	h := newHarness(t)

	_, err := New(h.options(`{"this is": "not an abi"}`))
	require.Error(t, err)
}

func TestNew_RequiresConnectionAndLogger(t *testing.T) {
	h := newHarness(t)

	noConnection := h.options(contracts.BridgeTokenAbi)
	noConnection.Connection = nil
	_, err := New(noConnection)
	require.Error(t, err)

	noLogger := h.options(contracts.BridgeTokenAbi)
	noLogger.Logger = nil
	_, err = New(noLogger)
	require.Error(t, err)
}

func TestNew_MethodTableCoversOverloads(t *testing.T) {
	h := newHarness(t)
	c := h.newBridge(t)

	require.ElementsMatch(t, []string{"mint", "mint0", "name", "updateTokenName"}, c.Methods())
}

func TestEncodeCall_IsDeterministicAndPrefixedWithSelector(t *testing.T) {
	h := newHarness(t)
	c := h.newBridge(t)

	first, err := c.EncodeCall("updateTokenName", "REDCOIN", "Coin By Redouane S.")
	require.NoError(t, err)
	second, err := c.EncodeCall("updateTokenName", "REDCOIN", "Coin By Redouane S.")
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, crypto.Keccak256([]byte("updateTokenName(string,string)"))[:4], first[:4])
}

func TestEncodeCall_SelectsOverloadByName(t *testing.T) {
	h := newHarness(t)
	c := h.newBridge(t)

	single, err := c.EncodeCall("mint", big.NewInt(5))
	require.NoError(t, err)
	require.Equal(t, crypto.Keccak256([]byte("mint(uint256)"))[:4], single[:4])

	recipient := common.HexToAddress(testAccount)
	pair, err := c.EncodeCall("mint0", recipient, big.NewInt(5))
	require.NoError(t, err)
	require.Equal(t, crypto.Keccak256([]byte("mint(address,uint256)"))[:4], pair[:4])
}

func TestEncodeCall_RejectsBadArguments(t *testing.T) {
	h := newHarness(t)
	c := h.newBridge(t)

	_, err := c.EncodeCall("updateTokenName", "only one")
	require.Error(t, err)

	_, err = c.EncodeCall("mint", "not a number")
	require.Error(t, err)

	_, err = c.EncodeCall("transfer")
	require.IsType(t, &MethodNotFoundError{}, err)
}

func TestNewFromConfig(t *testing.T) {
	h := newHarness(t)

	cfg := config.ForTests(testContract, contracts.BridgeTokenAbi)
	cfg.SetString(config.ETHEREUM_ENDPOINT, "ws://localhost:8546")
	cfg.SetString(config.MNEMONIC, testMnemonic)
	cfg.SetBool(config.MNEMONIC_REQUIRED, true)

	c, err := NewFromConfig(cfg, h.connection, h.logger, h.registry)
	require.NoError(t, err)

	account, _ := c.Account()
	require.Equal(t, common.HexToAddress(testAccount), account)
	require.Equal(t, MnemonicRequired, c.variant)
	require.EqualValues(t, config.DefaultStaticGasLimit, c.staticGasLimit)
}

func TestNewFromConfig_RejectsInvalidConfig(t *testing.T) {
	h := newHarness(t, "must be configured")

	cfg := config.ForTests(testContract, contracts.BridgeTokenAbi)

	_, err := NewFromConfig(cfg, h.connection, h.logger, h.registry)
	require.Error(t, err, "endpoint is missing")
}
