package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/addrcard/accounts"
	"github.com/tranvictor/addrcard/chains"
	"github.com/tranvictor/addrcard/config"
	"github.com/tranvictor/addrcard/networks"
	"github.com/tranvictor/addrcard/ui"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage the local address book",
	Long:  ``,
}

var accountAddCmd = &cobra.Command{
	Use:   "add <address>",
	Short: "Add or update an address book entry",
	Long: `Add an address to the local book. EVM addresses are stored in checksum
casing. Scopes default to a guess from the address shape (hex → Ethereum
mainnet, base58 pubkey → Solana) and can be overridden with repeated
--scope flags taking canonical or hex chain ids.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		u := ui.NewTerminalUI()
		address := accounts.NormalizeAddress(args[0])

		scopes := []chains.ChainID{}
		for _, raw := range config.AccountScope {
			id, err := chains.Normalize(raw)
			if err != nil {
				u.Error("invalid --scope value: %s", err)
				os.Exit(1)
			}
			scopes = append(scopes, id)
		}
		if len(scopes) == 0 {
			scopes = accounts.GuessScopes(address)
		}

		if existing, err := accounts.GetAccount(address); err == nil {
			u.Info("An entry for %s already exists: %q", address, existing.Desc)
			if !u.Confirm("Overwrite it?", false) {
				return
			}
		}

		acc := accounts.AccDesc{
			Address: address,
			Desc:    config.AccountName,
			Scopes:  scopes,
		}
		if err := accounts.StoreAccountRecord(acc); err != nil {
			u.Error("couldn't store account record: %s", err)
			os.Exit(1)
		}
		u.Success("Stored %s (%s)", address, acc.Desc)
	},
}

var accountListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all address book entries",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		u := ui.NewTerminalUI()
		accs := accounts.GetAccounts()
		if len(accs) == 0 {
			u.Info("The address book is empty. Add entries with `addrcard account add`.")
			return
		}
		reg := networks.DefaultRegistry()
		rows := make([][]string, 0, len(accs))
		for _, acc := range accs {
			scopes := make([]string, len(acc.Scopes))
			for i, s := range acc.Scopes {
				// scopes without a registered network render as a warning
				severity := ui.SeveritySuccess
				if _, found := reg.ByChainID(s); !found {
					severity = ui.SeverityWarn
				}
				scopes[i] = u.Style(ui.StyledText{Text: string(s), Severity: severity})
			}
			rows = append(rows, []string{acc.Address, acc.Desc, strings.Join(scopes, ", ")})
		}
		u.Table([]string{"Address", "Name", "Scopes"}, rows)
	},
}

var accountRmCmd = &cobra.Command{
	Use:   "rm <address>",
	Short: "Remove an address book entry",
	Long:  ``,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		u := ui.NewTerminalUI()
		address := accounts.NormalizeAddress(args[0])
		if err := accounts.DeleteAccount(address); err != nil {
			u.Error("%s", err)
			os.Exit(1)
		}
		u.Success("Removed %s", address)
	},
}

func init() {
	accountAddCmd.Flags().StringVarP(&config.AccountName, "name", "n", "", "human name for the address")
	accountAddCmd.Flags().StringArrayVar(&config.AccountScope, "scope", nil, "chain id the account operates on, repeatable")
	accountCmd.AddCommand(accountAddCmd)
	accountCmd.AddCommand(accountListCmd)
	accountCmd.AddCommand(accountRmCmd)
	rootCmd.AddCommand(accountCmd)
}
