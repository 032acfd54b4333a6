package networks

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
)

func customNetworksDir() (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get current user: %w", err)
	}
	return filepath.Join(usr.HomeDir, ".addrcard", "networks"), nil
}

// DefaultRegistry builds the registry the CLI uses: the built-in table plus
// any custom networks stored under ~/.addrcard/networks/. Failures loading
// custom definitions are reported as warnings and skipped; the built-in set
// always survives.
func DefaultRegistry() *Registry {
	r := NewRegistry(Builtin()...)

	custom, err := loadCustomNetworks()
	if err != nil {
		fmt.Printf("WARNING: Failed to load custom networks: %s. Ignore and continue with built-in networks.\n", err)
		return r
	}
	for _, n := range custom {
		if err := r.Add(n); err != nil {
			fmt.Printf("WARNING: Skipping custom network %q: %s\n", n.Name, err)
		}
	}
	return r
}

func loadCustomNetworks() ([]Network, error) {
	dir, err := customNetworksDir()
	if err != nil {
		return nil, err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob json files in %s: %w", dir, err)
	}

	var nets []Network
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", file, err)
		}
		net, err := NewNetworkFromJSON(content)
		if err != nil {
			fmt.Printf("failed to parse network from file %s: %s. Ignore and continue with other custom networks.\n", file, err)
			continue
		}
		nets = append(nets, net)
	}
	return nets, nil
}

// StoreCustomNetwork persists a custom network definition under
// ~/.addrcard/networks/ so DefaultRegistry picks it up on the next run.
func StoreCustomNetwork(n Network) error {
	dir, err := customNetworksDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	content, err := n.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal network: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s.json", n.Name))
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write the new network to file: %w", err)
	}
	return nil
}
