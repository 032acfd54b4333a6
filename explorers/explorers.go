// Package explorers derives the "view on explorer" action for an address:
// the deep link into a block explorer and the label to put on the button.
package explorers

import (
	"fmt"
	"strings"

	"github.com/tranvictor/addrcard/l10n"
	"github.com/tranvictor/addrcard/networks"
)

// Brand pairs a host substring with the display name of a known block
// explorer. The table is ordered and matching stops at the first hit, so
// supporting a new explorer is a data change only.
type Brand struct {
	Substr string
	Label  string
}

var Brands = []Brand{
	{"etherscan", "Etherscan"},
	{"polygonscan", "Polygonscan"},
	{"arbiscan", "Arbiscan"},
	{"solscan", "Solscan"},
	{"bscscan", "BSCScan"},
	{"basescan", "Basescan"},
	{"snowtrace", "Snowtrace"},
	{"ftmscan", "FTMScan"},
	{"scrollscan", "Scrollscan"},
	{"lineascan", "Lineascan"},
}

// Link is the explorer action derived for one address on one network.
// An empty URL means there is nothing to open; the view must disable the
// action instead of failing.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url,omitempty"`
}

// Target builds the explorer deep link for address on net. A nil network or
// a network without explorer URLs yields the generic label and no URL. The
// first explorer URL wins; a single trailing slash is stripped and
// "/address/{address}" is appended verbatim -- addresses are URL-safe as
// given, no further encoding is applied.
func Target(net *networks.Network, address string) Link {
	if net == nil || len(net.ExplorerURLs) == 0 {
		return Link{Label: l10n.Sprintf(l10n.KeyExplorerGeneric)}
	}
	base := strings.TrimSuffix(net.ExplorerURLs[0], "/")
	url := fmt.Sprintf("%s/address/%s", base, address)
	for _, b := range Brands {
		if strings.Contains(base, b.Substr) {
			return Link{
				Label: l10n.Sprintf(l10n.KeyExplorerBranded, b.Label),
				URL:   url,
			}
		}
	}
	// An unrecognized host still gets a working link, just the generic label.
	return Link{Label: l10n.Sprintf(l10n.KeyExplorerGeneric), URL: url}
}
