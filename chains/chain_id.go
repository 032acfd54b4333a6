// Package chains defines the canonical chain identifier used everywhere else
// in addrcard and the normalization from the two textual encodings wallets
// hand us: the namespace-qualified canonical form ("eip155:1",
// "solana:5eykt4UsFv8P8NJdTREpY1vzqKqZKvdp") and the legacy EVM hex form
// ("0x1"). Every registry lookup is keyed by the canonical form; normalization
// happens exactly once, at the boundary.
package chains

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ChainID is a canonical, namespace-qualified chain identifier following the
// CAIP-2 convention: "namespace:reference".
type ChainID string

// Unknown is the sentinel returned by Normalize for identifiers it cannot
// interpret. Lookups against Unknown always miss, so callers degrade to
// placeholder display values instead of failing the render.
const Unknown ChainID = ""

// EVMNamespace is the CAIP-2 namespace for EVM chains.
const EVMNamespace = "eip155"

var (
	canonicalPattern = regexp.MustCompile(`^[a-z0-9]{3,8}:[-_a-zA-Z0-9]{1,32}$`)
	legacyHexPattern = regexp.MustCompile(`^0x[0-9a-fA-F]+$`)
)

// Normalize maps a raw chain identifier in either supported encoding to its
// canonical form. Canonical identifiers pass through unchanged. Legacy hex
// identifiers are converted to the eip155 namespace, so "0x1" becomes
// "eip155:1". Anything else yields Unknown together with a diagnostic error;
// callers are expected to log the error and keep rendering with placeholders,
// never to abort.
func Normalize(raw string) (ChainID, error) {
	if canonicalPattern.MatchString(raw) {
		return ChainID(raw), nil
	}
	if legacyHexPattern.MatchString(raw) {
		id, err := strconv.ParseUint(raw[2:], 16, 64)
		if err != nil {
			return Unknown, fmt.Errorf("chain id %q is not a valid hex chain id: %w", raw, err)
		}
		return NewEVMChainID(id), nil
	}
	return Unknown, fmt.Errorf(
		"chain id %q matches neither the canonical namespace:reference form nor the legacy 0x hex form",
		raw,
	)
}

// NewEVMChainID returns the canonical identifier for the EVM chain with the
// given numeric chain id.
func NewEVMChainID(id uint64) ChainID {
	return ChainID(fmt.Sprintf("%s:%d", EVMNamespace, id))
}

// Known reports whether c carries a usable identifier.
func (c ChainID) Known() bool {
	return c != Unknown
}

// Namespace returns the part before the colon, or "" for Unknown.
func (c ChainID) Namespace() string {
	ns, _, _ := strings.Cut(string(c), ":")
	return ns
}

// Reference returns the part after the colon, or "" for Unknown.
func (c ChainID) Reference() string {
	_, ref, _ := strings.Cut(string(c), ":")
	return ref
}

// EVMChainID recovers the numeric chain id from an eip155 identifier. The
// second return is false for non-EVM namespaces and for Unknown.
func (c ChainID) EVMChainID() (uint64, bool) {
	if c.Namespace() != EVMNamespace {
		return 0, false
	}
	id, err := strconv.ParseUint(c.Reference(), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (c ChainID) String() string {
	return string(c)
}
