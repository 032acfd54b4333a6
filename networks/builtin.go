package networks

// Insert more records here to support more chains out of the box.
var builtin = []Network{
	{
		Name:               "mainnet",
		AlternativeNames:   []string{"ethereum", "eth"},
		ChainID:            "eip155:1",
		NativeTokenSymbol:  "ETH",
		NativeTokenDecimal: 18,
		ExplorerURLs:       []string{"https://etherscan.io"},
		EVM:                true,
	},
	{
		Name:               "bsc",
		AlternativeNames:   []string{"binance-smart-chain"},
		ChainID:            "eip155:56",
		NativeTokenSymbol:  "BNB",
		NativeTokenDecimal: 18,
		ExplorerURLs:       []string{"https://bscscan.com"},
		EVM:                true,
	},
	{
		Name:               "polygon",
		AlternativeNames:   []string{"matic"},
		ChainID:            "eip155:137",
		NativeTokenSymbol:  "POL",
		NativeTokenDecimal: 18,
		ExplorerURLs:       []string{"https://polygonscan.com"},
		EVM:                true,
	},
	{
		Name:               "arbitrum",
		AlternativeNames:   []string{"arbitrum-one"},
		ChainID:            "eip155:42161",
		NativeTokenSymbol:  "ETH",
		NativeTokenDecimal: 18,
		ExplorerURLs:       []string{"https://arbiscan.io"},
		EVM:                true,
	},
	{
		Name:               "optimism",
		AlternativeNames:   []string{"op-mainnet"},
		ChainID:            "eip155:10",
		NativeTokenSymbol:  "ETH",
		NativeTokenDecimal: 18,
		ExplorerURLs:       []string{"https://optimistic.etherscan.io"},
		EVM:                true,
	},
	{
		Name:               "base",
		ChainID:            "eip155:8453",
		NativeTokenSymbol:  "ETH",
		NativeTokenDecimal: 18,
		ExplorerURLs:       []string{"https://basescan.org"},
		EVM:                true,
	},
	{
		Name:               "avalanche",
		AlternativeNames:   []string{"avax", "avalanche-c"},
		ChainID:            "eip155:43114",
		NativeTokenSymbol:  "AVAX",
		NativeTokenDecimal: 18,
		ExplorerURLs:       []string{"https://snowtrace.io"},
		EVM:                true,
	},
	{
		Name:               "fantom",
		ChainID:            "eip155:250",
		NativeTokenSymbol:  "FTM",
		NativeTokenDecimal: 18,
		ExplorerURLs:       []string{"https://ftmscan.com"},
		EVM:                true,
	},
	{
		Name:               "scroll",
		ChainID:            "eip155:534352",
		NativeTokenSymbol:  "ETH",
		NativeTokenDecimal: 18,
		ExplorerURLs:       []string{"https://scrollscan.com"},
		EVM:                true,
	},
	{
		Name:               "linea",
		ChainID:            "eip155:59144",
		NativeTokenSymbol:  "ETH",
		NativeTokenDecimal: 18,
		ExplorerURLs:       []string{"https://lineascan.build"},
		EVM:                true,
	},
	{
		Name:               "solana",
		AlternativeNames:   []string{"sol"},
		ChainID:            "solana:5eykt4UsFv8P8NJdTREpY1vzqKqZKvdp",
		NativeTokenSymbol:  "SOL",
		NativeTokenDecimal: 9,
		ExplorerURLs:       []string{"https://solscan.io"},
		EVM:                false,
	},
}

// Builtin returns a copy of the built-in network table.
func Builtin() []Network {
	out := make([]Network, len(builtin))
	copy(out, builtin)
	return out
}
