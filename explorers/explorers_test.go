package explorers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/addrcard/networks"
)

const testAddr = "0x9642b23Ed1E01Df1092B92641051881a322F5D4E"

func netWithExplorer(url string) *networks.Network {
	return &networks.Network{
		Name:         "test",
		ChainID:      "eip155:1",
		ExplorerURLs: []string{url},
	}
}

func TestTargetDisabledWithoutExplorer(t *testing.T) {
	for _, net := range []*networks.Network{
		nil,
		{Name: "bare", ChainID: "eip155:31337"},
	} {
		link := Target(net, testAddr)
		assert.Equal(t, "View on Explorer", link.Label)
		assert.Empty(t, link.URL)
	}
}

func TestTargetBrandedLabels(t *testing.T) {
	tests := []struct {
		base  string
		label string
	}{
		{"https://etherscan.io", "View address on Etherscan"},
		{"https://optimistic.etherscan.io", "View address on Etherscan"},
		{"https://polygonscan.com", "View address on Polygonscan"},
		{"https://arbiscan.io", "View address on Arbiscan"},
		{"https://solscan.io", "View address on Solscan"},
		{"https://bscscan.com", "View address on BSCScan"},
		{"https://basescan.org", "View address on Basescan"},
		{"https://snowtrace.io", "View address on Snowtrace"},
		{"https://ftmscan.com", "View address on FTMScan"},
		{"https://scrollscan.com", "View address on Scrollscan"},
		{"https://lineascan.build", "View address on Lineascan"},
	}
	for _, tc := range tests {
		link := Target(netWithExplorer(tc.base), testAddr)
		assert.Equal(t, tc.label, link.Label, "base %s", tc.base)
		assert.Equal(t, tc.base+"/address/"+testAddr, link.URL, "base %s", tc.base)
	}
}

func TestTargetEveryBrandIsReachable(t *testing.T) {
	// Each entry in the table must produce its own label when it is the
	// one that matches. Build a synthetic host per brand so earlier
	// entries cannot shadow later ones.
	for _, b := range Brands {
		link := Target(netWithExplorer(fmt.Sprintf("https://%s.example", b.Substr)), testAddr)
		assert.Equal(t, "View address on "+b.Label, link.Label, "brand %s", b.Label)
	}
}

func TestTargetUnbrandedHostKeepsURL(t *testing.T) {
	link := Target(netWithExplorer("https://explorer.example.org"), testAddr)
	assert.Equal(t, "View on Explorer", link.Label)
	assert.Equal(t, "https://explorer.example.org/address/"+testAddr, link.URL)
}

func TestTargetStripsOneTrailingSlash(t *testing.T) {
	link := Target(netWithExplorer("https://etherscan.io/"), testAddr)
	assert.Equal(t, "https://etherscan.io/address/"+testAddr, link.URL)

	// Only a single slash is stripped; any further ones are the config
	// author's problem and pass through verbatim.
	link = Target(netWithExplorer("https://etherscan.io//"), testAddr)
	assert.Equal(t, "https://etherscan.io//address/"+testAddr, link.URL)
}

func TestTargetUsesFirstExplorerURL(t *testing.T) {
	net := &networks.Network{
		Name:         "multi",
		ChainID:      "eip155:1",
		ExplorerURLs: []string{"https://etherscan.io", "https://blockscout.com/eth/mainnet"},
	}
	link := Target(net, testAddr)
	require.Equal(t, "https://etherscan.io/address/"+testAddr, link.URL)
	assert.Equal(t, "View address on Etherscan", link.Label)
}

func TestBrandSubstringsAreDisjointEnough(t *testing.T) {
	// First match wins, so no entry may be a substring of an earlier
	// entry's substring (the earlier one would shadow it forever).
	for i, outer := range Brands {
		for _, inner := range Brands[i+1:] {
			assert.False(t, strings.Contains(inner.Substr, outer.Substr),
				"brand %q is shadowed by earlier brand %q", inner.Label, outer.Label)
		}
	}
}
