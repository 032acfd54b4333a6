package networks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/addrcard/chains"
)

func fixtureRegistry() *Registry {
	return NewRegistry(
		Network{
			Name:               "Ethereum Mainnet",
			AlternativeNames:   []string{"mainnet"},
			ChainID:            "eip155:1",
			NativeTokenSymbol:  "ETH",
			NativeTokenDecimal: 18,
			ExplorerURLs:       []string{"https://etherscan.io"},
			EVM:                true,
		},
		Network{
			Name:               "Solana",
			ChainID:            "solana:5eykt4UsFv8P8NJdTREpY1vzqKqZKvdp",
			NativeTokenSymbol:  "SOL",
			NativeTokenDecimal: 9,
			ExplorerURLs:       []string{"https://solscan.io"},
		},
		Network{
			Name:    "Localnet",
			ChainID: "eip155:31337",
		},
	)
}

func TestRegistryByChainID(t *testing.T) {
	r := fixtureRegistry()

	net, found := r.ByChainID("eip155:1")
	require.True(t, found)
	assert.Equal(t, "Ethereum Mainnet", net.Name)

	// Non-EVM records resolve by direct key lookup, no hex conversion involved.
	net, found = r.ByChainID("solana:5eykt4UsFv8P8NJdTREpY1vzqKqZKvdp")
	require.True(t, found)
	assert.Equal(t, "SOL", net.NativeTokenSymbol)

	_, found = r.ByChainID("eip155:999")
	assert.False(t, found)
}

func TestRegistryUnknownNeverResolves(t *testing.T) {
	r := fixtureRegistry()
	net, found := r.ByChainID(chains.Unknown)
	assert.Nil(t, net)
	assert.False(t, found)
}

func TestRegistryByName(t *testing.T) {
	r := fixtureRegistry()

	net, err := r.ByName("mainnet")
	require.NoError(t, err)
	assert.Equal(t, chains.ChainID("eip155:1"), net.ChainID)

	_, err = r.ByName("does-not-exist")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetworkNotFound)
}

func TestRegistryDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewRegistry(
			Network{Name: "a", ChainID: "eip155:1"},
			Network{Name: "a", ChainID: "eip155:2"},
		)
	})
	assert.Panics(t, func() {
		NewRegistry(
			Network{Name: "a", ChainID: "eip155:1"},
			Network{Name: "b", ChainID: "eip155:1"},
		)
	})
}

func TestRegistryAddReportsDuplicates(t *testing.T) {
	r := fixtureRegistry()
	err := r.Add(Network{Name: "Ethereum Mainnet", ChainID: "eip155:5"})
	require.Error(t, err)

	err = r.Add(Network{Name: "Goerli", ChainID: "eip155:5"})
	require.NoError(t, err)
	net, found := r.ByChainID("eip155:5")
	require.True(t, found)
	assert.Equal(t, "Goerli", net.Name)
}

func TestRegistrySuggest(t *testing.T) {
	r := fixtureRegistry()
	got := r.Suggest("mainet", 3)
	require.NotEmpty(t, got)
	assert.Contains(t, got, "mainnet")
}

func TestBuiltinTableIsWellFormed(t *testing.T) {
	// NewRegistry panics on duplicates; building it validates the table.
	r := NewRegistry(Builtin()...)
	for _, net := range r.All() {
		canonical, err := chains.Normalize(string(net.ChainID))
		require.NoError(t, err, "network %s", net.Name)
		assert.Equal(t, net.ChainID, canonical, "network %s", net.Name)
		assert.Equal(t, net.EVM, net.ChainID.Namespace() == chains.EVMNamespace, "network %s", net.Name)
	}
}

func TestNewNetworkFromJSON(t *testing.T) {
	net, err := NewNetworkFromJSON([]byte(`{
		"name": "hoodi",
		"chain_id": "eip155:560048",
		"native_token_symbol": "ETH",
		"native_token_decimal": 18,
		"explorer_urls": ["https://hoodi.etherscan.io"],
		"evm": true
	}`))
	require.NoError(t, err)
	assert.Equal(t, chains.ChainID("eip155:560048"), net.ChainID)

	// Legacy hex ids are rejected in stored definitions.
	_, err = NewNetworkFromJSON([]byte(`{"name": "bad", "chain_id": "0x1"}`))
	require.Error(t, err)

	_, err = NewNetworkFromJSON([]byte(`{"chain_id": "eip155:1"}`))
	require.Error(t, err, "missing name must be rejected")
}
