// Package accounts is the local address book: human names and chain scopes
// for addresses the user cares about, stored as one JSON file per address
// under ~/.addrcard/accounts/.
package accounts

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/tranvictor/addrcard/chains"
)

// AccDesc describes one address book entry. Scopes lists the canonical chain
// ids the account is known to operate on, most relevant first; the card
// resolver uses the first scope that resolves in the registry when no usable
// chain id was passed in.
type AccDesc struct {
	Address string           `json:"address"`
	Desc    string           `json:"desc"`
	Scopes  []chains.ChainID `json:"scopes"`
}

func getHomeDir() string {
	usr, err := user.Current()
	if err != nil {
		log.Fatal(err)
	}
	return usr.HomeDir
}

func accountsDir() string {
	return filepath.Join(getHomeDir(), ".addrcard", "accounts")
}

// NormalizeAddress brings an address into storage form. EVM hex addresses are
// rewritten to their EIP-55 checksum casing; everything else is stored as
// given.
func NormalizeAddress(address string) string {
	if ethcommon.IsHexAddress(address) {
		return ethcommon.HexToAddress(address).Hex()
	}
	return address
}

// GuessScopes infers a default scope list from the address shape alone:
// EVM hex addresses default to Ethereum mainnet, base58 strings that decode
// to a 32-byte key default to Solana. The guess is only a convenience for
// `account add`; users override it with explicit --scope flags.
func GuessScopes(address string) []chains.ChainID {
	if ethcommon.IsHexAddress(address) {
		return []chains.ChainID{chains.NewEVMChainID(1)}
	}
	if raw := base58.Decode(address); len(raw) == 32 {
		return []chains.ChainID{"solana:5eykt4UsFv8P8NJdTREpY1vzqKqZKvdp"}
	}
	return nil
}

func recordPath(address string) string {
	return filepath.Join(accountsDir(), fmt.Sprintf("%s.json", NormalizeAddress(address)))
}

// StoreAccountRecord persists acc, overwriting any existing record for the
// same address.
func StoreAccountRecord(acc AccDesc) error {
	acc.Address = NormalizeAddress(acc.Address)
	if err := os.MkdirAll(accountsDir(), 0755); err != nil {
		return fmt.Errorf("failed to create account dir: %w", err)
	}
	content, err := json.MarshalIndent(acc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal account record: %w", err)
	}
	return os.WriteFile(recordPath(acc.Address), content, 0644)
}

// GetAccount loads the record stored for address.
func GetAccount(address string) (AccDesc, error) {
	content, err := os.ReadFile(recordPath(address))
	if err != nil {
		return AccDesc{}, fmt.Errorf("no account record for %s: %w", address, err)
	}
	var acc AccDesc
	if err := json.Unmarshal(content, &acc); err != nil {
		return AccDesc{}, fmt.Errorf("account record for %s is corrupted: %w", address, err)
	}
	return acc, nil
}

// GetAccounts returns every stored record. Unreadable files are skipped with
// a warning so one bad record never hides the rest of the book.
func GetAccounts() []AccDesc {
	files, err := filepath.Glob(filepath.Join(accountsDir(), "*.json"))
	if err != nil {
		return nil
	}
	var accs []AccDesc
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			fmt.Printf("WARNING: couldn't read account record %s: %s\n", file, err)
			continue
		}
		var acc AccDesc
		if err := json.Unmarshal(content, &acc); err != nil {
			fmt.Printf("WARNING: couldn't parse account record %s: %s\n", file, err)
			continue
		}
		accs = append(accs, acc)
	}
	return accs
}

// DeleteAccount removes the record stored for address.
func DeleteAccount(address string) error {
	if err := os.Remove(recordPath(address)); err != nil {
		return fmt.Errorf("failed to remove account record: %w", err)
	}
	return nil
}

// Match fuzzy-searches the address book by name or address and returns the
// matching records, best first.
func Match(query string) []AccDesc {
	return matchIn(NewFuzzySource(), query)
}

func matchIn(source FuzzySource, query string) []AccDesc {
	query = strings.ReplaceAll(query, " ", "_")
	matches := fuzzySearch(query, source)
	result := make([]AccDesc, 0, len(matches))
	for _, idx := range matches {
		result = append(result, source[idx])
	}
	return result
}
