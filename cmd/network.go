package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/addrcard/config"
	"github.com/tranvictor/addrcard/networks"
	"github.com/tranvictor/addrcard/ui"
)

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Inspect and extend the supported networks",
	Long:  ``,
}

var listNetworkCmd = &cobra.Command{
	Use:   "list",
	Short: "List all supported networks",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		u := ui.NewTerminalUI()
		reg := networks.DefaultRegistry()
		rows := [][]string{}
		for _, net := range reg.All() {
			explorer := ""
			if len(net.ExplorerURLs) > 0 {
				explorer = net.ExplorerURLs[0]
			}
			rows = append(rows, []string{
				net.Name,
				string(net.ChainID),
				net.NativeTokenSymbol,
				explorer,
			})
		}
		u.Table([]string{"Name", "Chain ID", "Token", "Explorer"}, rows)
	},
}

var addNetworkCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new network to the supported networks list locally",
	Long: `--config takes a network config json filepath OR a json string. The json
should be in the following format:
	{
		"name": "hoodi",
		"alternative_names": ["ethereum-hoodi"],
		"chain_id": "eip155:560048",
		"native_token_symbol": "ETH",
		"native_token_decimal": 18,
		"explorer_urls": ["https://hoodi.etherscan.io"],
		"evm": true
	}
The chain id must be canonical; legacy hex ids are rejected in stored
definitions.`,
	Run: func(cmd *cobra.Command, args []string) {
		u := ui.NewTerminalUI()

		configStr, err := cmd.Flags().GetString("config")
		if err != nil {
			u.Error("Error: %s", err)
			return
		}

		var newNetwork networks.Network
		configStr = strings.TrimSpace(configStr)
		switch {
		case strings.HasPrefix(configStr, "{") && strings.HasSuffix(configStr, "}"):
			newNetwork, err = networks.NewNetworkFromJSON([]byte(configStr))
			if err != nil {
				u.Error("The provided json is not valid: %s", err)
				return
			}
		case configStr != "":
			// in this case, config is supposed to be a path to a json file
			jsonFile, err := os.Open(configStr)
			if err != nil {
				u.Error("Couldn't open the provided json file: %s", err)
				return
			}
			defer jsonFile.Close()

			jsonBytes, err := io.ReadAll(jsonFile)
			if err != nil {
				u.Error("Couldn't read the provided json file: %s", err)
				return
			}
			newNetwork, err = networks.NewNetworkFromJSON(jsonBytes)
			if err != nil {
				u.Error("The provided json is not valid: %s", err)
				return
			}
		default:
			u.Error("--config is required: pass a json string or a json filepath")
			return
		}

		reg := networks.DefaultRegistry()
		if err := reg.Add(newNetwork); err != nil && !config.NetworkForce {
			u.Error("%s. Use --force to store it anyway.", err)
			return
		}

		if err := networks.StoreCustomNetwork(newNetwork); err != nil {
			u.Error("Couldn't store the new network: %s", err)
			return
		}
		u.Success("Stored network %q", newNetwork.Name)
		explorer := ""
		if len(newNetwork.ExplorerURLs) > 0 {
			explorer = newNetwork.ExplorerURLs[0]
		}
		u.Indent().KeyValue([][2]string{
			{"Chain ID", string(newNetwork.ChainID)},
			{"Token", newNetwork.NativeTokenSymbol},
			{"Explorer", explorer},
		})
	},
}

func init() {
	addNetworkCmd.Flags().String("config", "", "network config as a json string or a json filepath")
	addNetworkCmd.Flags().BoolVar(&config.NetworkForce, "force", false, "overwrite an existing network with the same name")
	networkCmd.AddCommand(listNetworkCmd)
	networkCmd.AddCommand(addNetworkCmd)
	rootCmd.AddCommand(networkCmd)
}
