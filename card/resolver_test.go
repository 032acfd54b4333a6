package card

import (
	"strings"
	"testing"

	"github.com/tranvictor/addrcard/accounts"
	"github.com/tranvictor/addrcard/chains"
	"github.com/tranvictor/addrcard/networks"
)

const testAddr = "0x9642b23Ed1E01Df1092B92641051881a322F5D4E"

func fixtureRegistry() *networks.Registry {
	return networks.NewRegistry(
		networks.Network{
			Name:              "Ethereum Mainnet",
			ChainID:           "eip155:1",
			NativeTokenSymbol: "ETH",
			ExplorerURLs:      []string{"https://etherscan.io"},
			LogoURL:           "https://example.org/eth.png",
			EVM:               true,
		},
		networks.Network{
			Name:              "Solana",
			ChainID:           "solana:5eykt4UsFv8P8NJdTREpY1vzqKqZKvdp",
			NativeTokenSymbol: "SOL",
			ExplorerURLs:      []string{"https://solscan.io"},
		},
		networks.Network{
			Name:    "Devnet",
			ChainID: "eip155:31337",
		},
	)
}

func TestResolveLegacyHexChainID(t *testing.T) {
	r := NewResolver(fixtureRegistry())
	c := r.Resolve(testAddr, "0x1", nil)

	if c.NetworkName != "Ethereum Mainnet" {
		t.Fatalf("network name = %q", c.NetworkName)
	}
	if c.NativeToken != "ETH" {
		t.Fatalf("native token = %q", c.NativeToken)
	}
	if c.NetworkLogo != "https://example.org/eth.png" {
		t.Fatalf("network logo = %q", c.NetworkLogo)
	}
	if c.ExplorerLink.Label != "View address on Etherscan" {
		t.Fatalf("explorer label = %q", c.ExplorerLink.Label)
	}
	if c.ExplorerLink.URL != "https://etherscan.io/address/"+testAddr {
		t.Fatalf("explorer url = %q", c.ExplorerLink.URL)
	}
	if c.Segments.Prefix+c.Segments.Middle+c.Segments.Suffix != testAddr {
		t.Fatalf("segments don't reassemble the address: %+v", c.Segments)
	}
	if c.QR == "" {
		t.Fatalf("expected qr art to be generated")
	}
}

func TestResolveCanonicalNonEVMChainID(t *testing.T) {
	r := NewResolver(fixtureRegistry())
	solAddr := "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	c := r.Resolve(solAddr, "solana:5eykt4UsFv8P8NJdTREpY1vzqKqZKvdp", nil)

	if c.NetworkName != "Solana" {
		t.Fatalf("network name = %q", c.NetworkName)
	}
	if c.ExplorerLink.Label != "View address on Solscan" {
		t.Fatalf("explorer label = %q", c.ExplorerLink.Label)
	}
}

func TestResolveUnresolvableDegrades(t *testing.T) {
	r := NewResolver(fixtureRegistry())

	var diagnostics []string
	r.Debug = func(format string, args ...interface{}) {
		diagnostics = append(diagnostics, format)
	}

	c := r.Resolve(testAddr, "garbage", nil)
	if c.NetworkName != "Unknown Network" {
		t.Fatalf("network name = %q", c.NetworkName)
	}
	if c.ExplorerLink.Label != "View on Explorer" {
		t.Fatalf("explorer label = %q", c.ExplorerLink.Label)
	}
	if c.ExplorerLink.URL != "" {
		t.Fatalf("explorer url should be disabled, got %q", c.ExplorerLink.URL)
	}
	if len(diagnostics) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d", len(diagnostics))
	}
}

func TestResolveRegisteredChainWithoutExplorer(t *testing.T) {
	r := NewResolver(fixtureRegistry())
	c := r.Resolve(testAddr, "eip155:31337", nil)

	if c.NetworkName != "Devnet" {
		t.Fatalf("network name = %q", c.NetworkName)
	}
	if c.ExplorerLink.Label != "View on Explorer" || c.ExplorerLink.URL != "" {
		t.Fatalf("explorer link = %+v, want disabled generic", c.ExplorerLink)
	}
}

func TestResolveAccountScopeFallback(t *testing.T) {
	r := NewResolver(fixtureRegistry())
	acc := &accounts.AccDesc{
		Address: testAddr,
		Desc:    "cold storage",
		Scopes:  []chains.ChainID{"eip155:999", "eip155:1"},
	}

	c := r.Resolve(testAddr, "not-a-chain-id", acc)
	if c.AccountName != "cold storage" {
		t.Fatalf("account name = %q", c.AccountName)
	}
	// The first scope is not registered; resolution falls through to the
	// first one that is.
	if c.NetworkName != "Ethereum Mainnet" {
		t.Fatalf("network name = %q", c.NetworkName)
	}
}

func TestResolveBothHintPathsAgree(t *testing.T) {
	r := NewResolver(fixtureRegistry())
	acc := &accounts.AccDesc{
		Address: testAddr,
		Desc:    "cold storage",
		Scopes:  []chains.ChainID{"eip155:1"},
	}

	viaChainID := r.Resolve(testAddr, "0x1", nil)
	viaScope := r.Resolve(testAddr, "", acc)

	if viaChainID.NetworkName != viaScope.NetworkName {
		t.Fatalf("hint paths disagree: %q vs %q", viaChainID.NetworkName, viaScope.NetworkName)
	}
	if viaChainID.ExplorerLink != viaScope.ExplorerLink {
		t.Fatalf("hint paths disagree on explorer link: %+v vs %+v",
			viaChainID.ExplorerLink, viaScope.ExplorerLink)
	}
}

func TestResolveChainIDWinsOverScopes(t *testing.T) {
	r := NewResolver(fixtureRegistry())
	acc := &accounts.AccDesc{
		Address: testAddr,
		Scopes:  []chains.ChainID{"solana:5eykt4UsFv8P8NJdTREpY1vzqKqZKvdp"},
	}

	c := r.Resolve(testAddr, "0x1", acc)
	if c.NetworkName != "Ethereum Mainnet" {
		t.Fatalf("chain id hint must win, got %q", c.NetworkName)
	}
}

func TestResolveTracksViewEvent(t *testing.T) {
	r := NewResolver(fixtureRegistry())
	var events []string
	r.Track = func(event string, props map[string]string) {
		events = append(events, event+":"+props["network"])
	}

	r.Resolve(testAddr, "0x1", nil)
	if len(events) != 1 || !strings.HasPrefix(events[0], "address_card_viewed:") {
		t.Fatalf("events = %v", events)
	}
}
