// Package networks holds the network metadata registry: display name, native
// token, explorer endpoints and EVM-compatibility for every chain addrcard
// knows about. The registry is plain data handed to consumers explicitly --
// there is no package-global current network. Production code builds one with
// DefaultRegistry; tests build one from fixtures with NewRegistry.
package networks

import (
	"encoding/json"
	"fmt"

	"github.com/tranvictor/addrcard/chains"
)

// Network describes one blockchain network. Values are read-only once loaded;
// nothing in addrcard mutates a record after registration.
type Network struct {
	Name               string         `json:"name"`
	AlternativeNames   []string       `json:"alternative_names"`
	ChainID            chains.ChainID `json:"chain_id"`
	NativeTokenSymbol  string         `json:"native_token_symbol"`
	NativeTokenDecimal int64          `json:"native_token_decimal"`
	ExplorerURLs       []string       `json:"explorer_urls"`
	LogoURL            string         `json:"logo_url,omitempty"`
	EVM                bool           `json:"evm"`
}

// NewNetworkFromJSON parses and validates a custom network definition.
// The chain id must already be canonical; legacy hex ids in config files are
// rejected rather than silently converted so that stored definitions stay in
// one format.
func NewNetworkFromJSON(content []byte) (Network, error) {
	var net Network
	if err := json.Unmarshal(content, &net); err != nil {
		return Network{}, fmt.Errorf("failed to unmarshal network config: %w", err)
	}
	if net.Name == "" {
		return Network{}, fmt.Errorf("network config is missing a name")
	}
	canonical, err := chains.Normalize(string(net.ChainID))
	if err != nil {
		return Network{}, fmt.Errorf("network config %q: %w", net.Name, err)
	}
	if canonical != net.ChainID {
		return Network{}, fmt.Errorf(
			"network config %q: chain id must be canonical (got %q, canonical is %q)",
			net.Name, net.ChainID, canonical,
		)
	}
	return net, nil
}

// MarshalJSON is the storage counterpart of NewNetworkFromJSON.
func (n Network) MarshalJSON() ([]byte, error) {
	type alias Network
	return json.MarshalIndent(alias(n), "", "  ")
}
