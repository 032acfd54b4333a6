package networks

import (
	"fmt"
	"sort"

	"github.com/sahilm/fuzzy"

	"github.com/tranvictor/addrcard/chains"
)

var ErrNetworkNotFound = fmt.Errorf("network not found")

// Registry indexes networks by canonical chain id and by name (including
// alternative names). It is built once and read on every render; lookups
// have no side effects.
type Registry struct {
	byID    map[chains.ChainID]*Network
	byName  map[string]*Network
	ordered []*Network
}

// NewRegistry builds a registry from the given records. Duplicate names or
// chain ids among them are programmer errors and panic, mirroring how the
// built-in table is validated at startup.
func NewRegistry(nets ...Network) *Registry {
	r := &Registry{
		byID:   map[chains.ChainID]*Network{},
		byName: map[string]*Network{},
	}
	for _, n := range nets {
		if err := r.register(n); err != nil {
			panic(err)
		}
	}
	return r
}

func (r *Registry) register(n Network) error {
	if _, found := r.byName[n.Name]; found {
		return fmt.Errorf("network with name or alternative name of '%s' already exists", n.Name)
	}
	if _, found := r.byID[n.ChainID]; found {
		return fmt.Errorf("network with chain id '%s' already exists", n.ChainID)
	}
	stored := n
	r.byName[n.Name] = &stored
	r.byID[n.ChainID] = &stored
	for _, an := range n.AlternativeNames {
		if _, found := r.byName[an]; found {
			return fmt.Errorf("network with name or alternative name of '%s' already exists", an)
		}
		r.byName[an] = &stored
	}
	r.ordered = append(r.ordered, &stored)
	return nil
}

// Add registers a network at runtime (e.g. a user-provided custom network).
// Unlike NewRegistry it reports duplicates as errors instead of panicking.
func (r *Registry) Add(n Network) error {
	return r.register(n)
}

// ByChainID looks a network up by its canonical chain id. Unknown never
// resolves, so callers holding a failed normalization degrade to placeholder
// display values.
func (r *Registry) ByChainID(id chains.ChainID) (*Network, bool) {
	if !id.Known() {
		return nil, false
	}
	net, found := r.byID[id]
	return net, found
}

// ByName looks a network up by name or alternative name.
func (r *Registry) ByName(name string) (*Network, error) {
	net, found := r.byName[name]
	if !found {
		return nil, fmt.Errorf("network name '%s': %w", name, ErrNetworkNotFound)
	}
	return net, nil
}

// All returns every registered network in registration order.
func (r *Registry) All() []*Network {
	return r.ordered
}

// Names returns every name and alternative name, sorted, for CLI help and
// completion.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Suggest fuzzy-matches query against the known network names and returns up
// to max candidates, best first. Used to build "did you mean" hints when a
// --network value does not resolve.
func (r *Registry) Suggest(query string, max int) []string {
	matches := fuzzy.Find(query, r.Names())
	var out []string
	for _, m := range matches {
		if len(out) >= max {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
