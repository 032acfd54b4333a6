// Package card is addrcard's core: it turns an address, a chain identifier
// in either supported encoding, and an optional address book entry into the
// full set of values the receive-address card displays. All failure modes
// degrade to placeholders; nothing in this package errors out of a render.
package card

import (
	"github.com/tranvictor/addrcard/accounts"
	"github.com/tranvictor/addrcard/chains"
	"github.com/tranvictor/addrcard/explorers"
	"github.com/tranvictor/addrcard/l10n"
	"github.com/tranvictor/addrcard/networks"
	"github.com/tranvictor/addrcard/qr"
)

// Card holds every value the view renders. The view never recomputes any of
// them; it only lays them out.
type Card struct {
	Address      string         `json:"address"`
	AccountName  string         `json:"account_name,omitempty"`
	NetworkName  string         `json:"network_name"`
	NetworkLogo  string         `json:"network_logo,omitempty"`
	NativeToken  string         `json:"native_token,omitempty"`
	Segments     Segments       `json:"segments"`
	ExplorerLink explorers.Link `json:"explorer"`
	QR           string         `json:"-"`
}

// Resolver derives cards against an injected network registry. The registry
// is a required dependency -- there is deliberately no package-global one to
// fall back to, so tests run against fixtures and library consumers control
// exactly which networks exist.
//
// Debug receives diagnostics (currently only unrecognized chain identifier
// shapes); Track receives view events. Both may be nil.
type Resolver struct {
	Registry *networks.Registry
	Debug    func(format string, args ...interface{})
	Track    func(event string, props map[string]string)
}

func NewResolver(reg *networks.Registry) *Resolver {
	return &Resolver{Registry: reg}
}

func (r *Resolver) debugf(format string, args ...interface{}) {
	if r.Debug != nil {
		r.Debug(format, args...)
	}
}

func (r *Resolver) track(event string, props map[string]string) {
	if r.Track != nil {
		r.Track(event, props)
	}
}

// resolveNetwork is the single source of truth for both resolution hints.
// The canonical chain id wins when it resolves; otherwise the account's
// scopes are tried in order. Keeping both paths in one function guarantees
// they cannot disagree for an address whose account scope names the same
// network as the chain id.
func (r *Resolver) resolveNetwork(id chains.ChainID, acc *accounts.AccDesc) *networks.Network {
	if net, found := r.Registry.ByChainID(id); found {
		return net
	}
	if acc != nil {
		for _, scope := range acc.Scopes {
			if net, found := r.Registry.ByChainID(scope); found {
				return net
			}
		}
	}
	return nil
}

// Resolve computes the card for address on the network identified by
// rawChainID (either encoding), with acc as an optional hint for the display
// name and for scope-based network resolution. It never fails: malformed
// chain ids, missing networks and missing explorer URLs each collapse to
// their placeholder ("Unknown Network", the generic explorer label, a
// disabled link).
func (r *Resolver) Resolve(address, rawChainID string, acc *accounts.AccDesc) Card {
	id, err := chains.Normalize(rawChainID)
	if err != nil {
		r.debugf("unrecognized chain id: %s", err)
	}
	net := r.resolveNetwork(id, acc)

	c := Card{
		Address:     address,
		NetworkName: l10n.Sprintf(l10n.KeyUnknownNetwork),
		Segments:    Segment(address),
	}
	if acc != nil {
		c.AccountName = acc.Desc
	}
	if net != nil {
		c.NetworkName = net.Name
		c.NetworkLogo = net.LogoURL
		c.NativeToken = net.NativeTokenSymbol
	}
	c.ExplorerLink = explorers.Target(net, address)

	if art, err := qr.Terminal(address); err == nil {
		c.QR = art
	} else {
		r.debugf("qr generation failed: %s", err)
	}

	r.track("address_card_viewed", map[string]string{
		"network": c.NetworkName,
		"chain":   id.String(),
	})
	return c
}
