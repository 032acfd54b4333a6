package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/tranvictor/addrcard/accounts"
	"github.com/tranvictor/addrcard/card"
	"github.com/tranvictor/addrcard/chains"
	"github.com/tranvictor/addrcard/config"
	"github.com/tranvictor/addrcard/l10n"
	"github.com/tranvictor/addrcard/networks"
	"github.com/tranvictor/addrcard/qr"
	"github.com/tranvictor/addrcard/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <address or account name>",
	Short: "Render the receive-address card for an address or a named account",
	Long: `Render the receive-address card: network name, scannable QR code, the
address in truncated and full form, and a block explorer link.

The argument is either a raw address or a (fuzzy) account name from your
address book. When several book entries match, you pick one interactively.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		u := ui.NewTerminalUI()
		reg := networks.DefaultRegistry()

		query := strings.Join(args, " ")
		address, acc := resolveAccountQuery(u, query)
		if address == "" {
			u.Error("no address book entry matches %q", query)
			os.Exit(1)
		}

		resolver := card.NewResolver(reg)
		resolver.Debug = u.Warn

		c := resolver.Resolve(address, chainIDArg(u, reg), acc)

		if config.JSONOutput {
			content, err := json.MarshalIndent(c, "", "  ")
			if err != nil {
				u.Error("couldn't marshal card: %s", err)
				os.Exit(1)
			}
			fmt.Println(string(content))
		} else {
			fmt.Println(card.Render(c))
		}

		if config.CopyAddress {
			if err := clipboard.WriteAll(address); err != nil {
				u.Warn("couldn't copy to clipboard: %s", err)
			} else {
				u.Success("%s", l10n.Sprintf(l10n.KeyAddressCopied))
			}
		}

		if config.OpenExplorer {
			if c.ExplorerLink.URL == "" {
				u.Warn("no explorer known for this network, nothing to open")
			} else if err := browser.OpenURL(c.ExplorerLink.URL); err != nil {
				u.Warn("couldn't open %s: %s", c.ExplorerLink.URL, err)
			}
		}

		if config.PNGFile != "" {
			png, err := qr.PNG(address, 256)
			if err != nil {
				u.Error("couldn't render qr png: %s", err)
				os.Exit(1)
			}
			if err := os.WriteFile(config.PNGFile, png, 0644); err != nil {
				u.Error("couldn't write %s: %s", config.PNGFile, err)
				os.Exit(1)
			}
			u.Success("wrote qr code to %s", config.PNGFile)
		}
	},
}

// resolveAccountQuery turns the positional argument into an address plus an
// optional address book record. Raw addresses are used as given (with a book
// lookup for the display name); anything else is fuzzy-matched against the
// book, with an interactive pick when several entries match.
func resolveAccountQuery(u ui.UI, query string) (string, *accounts.AccDesc) {
	if looksLikeAddress(query) {
		address := accounts.NormalizeAddress(query)
		if acc, err := accounts.GetAccount(address); err == nil {
			return address, &acc
		}
		return address, nil
	}

	matches := accounts.Match(query)
	switch len(matches) {
	case 0:
		return "", nil
	case 1:
		u.Interpret(fmt.Sprintf("%s (%s)", matches[0].Address, matches[0].Desc))
		return matches[0].Address, &matches[0]
	default:
		options := make([]string, len(matches))
		for i, m := range matches {
			options[i] = fmt.Sprintf("%s (%s)", m.Address, m.Desc)
		}
		idx := u.Choose("Which account did you mean?", options)
		return matches[idx].Address, &matches[idx]
	}
}

// looksLikeAddress is a shape check only; addresses are never validated
// beyond this, malformed ones just render degenerate cards.
func looksLikeAddress(s string) bool {
	if ethcommon.IsHexAddress(s) {
		return true
	}
	// base58-ish, long enough to not be a sensible account name
	return len(s) >= 32 && accounts.GuessScopes(s) != nil
}

// chainIDArg maps the --network flag to a raw chain identifier for the
// resolver: registry names map to their canonical id, anything else passes
// through for normalization (so "0x89" and "eip155:137" work directly).
// Unresolvable names produce a "did you mean" hint and still pass through,
// degrading to an unknown-network card instead of aborting.
func chainIDArg(u ui.UI, reg *networks.Registry) string {
	name := strings.TrimSpace(config.Network)
	if net, err := reg.ByName(name); err == nil {
		return string(net.ChainID)
	}
	if _, err := chains.Normalize(name); err != nil {
		if suggestions := reg.Suggest(name, 3); len(suggestions) > 0 {
			u.Warn("unknown network %q, did you mean: %s?", name, strings.Join(suggestions, ", "))
		}
	}
	return name
}

func init() {
	showCmd.Flags().BoolVar(&config.JSONOutput, "json", false, "print the card data as JSON instead of rendering it")
	showCmd.Flags().BoolVarP(&config.CopyAddress, "copy", "c", false, "copy the address to the clipboard")
	showCmd.Flags().BoolVarP(&config.OpenExplorer, "open", "o", false, "open the address on the block explorer")
	showCmd.Flags().StringVar(&config.PNGFile, "png", "", "also write the qr code as a png to this path")
	rootCmd.AddCommand(showCmd)
}
