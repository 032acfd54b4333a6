// Copyright © 2018 Victor Tran
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tranvictor/addrcard/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "addrcard",
	Short: "Show a wallet account's receive address as a scannable card",
	Long: `Addrcard renders a crypto account's receive address as a scannable QR card
in your terminal, together with the network it lives on and a link to the
right block explorer.

It keeps a local address book so you can name your addresses once and look
them up by name later:

	addrcard account add 0x9642b23Ed1E01Df1092B92641051881a322F5D4E --name "cold storage"
	addrcard show "cold storage" --network polygon

The --network flag accepts a network name ("mainnet", "polygon", "solana"),
a canonical chain id ("eip155:137") or a legacy hex chain id ("0x89").
Networks addrcard doesn't know about yet can be added locally:

	addrcard network add --config my_network.json

Custom networks and account records live under ~/.addrcard/.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().StringVarP(&config.Network, "network", "k", "mainnet",
		"network to show the address on: a name from `addrcard network list`, a canonical chain id like \"eip155:1\" or a hex chain id like \"0x1\"")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
