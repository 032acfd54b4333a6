package config

// Network is the --network flag value: a network name from the registry or a
// chain identifier in either textual encoding.
var Network string

var (
	JSONOutput   bool
	CopyAddress  bool
	OpenExplorer bool
	PNGFile      string
	AccountName  string
	AccountScope []string
	NetworkForce bool
)
