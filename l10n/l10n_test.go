package l10n

import (
	"testing"
)

func TestCatalogResolvesAllKeys(t *testing.T) {
	tests := []struct {
		key  string
		args []interface{}
		want string
	}{
		{KeyExplorerGeneric, nil, "View on Explorer"},
		{KeyExplorerBranded, []interface{}{"Etherscan"}, "View address on Etherscan"},
		{KeyUnknownNetwork, nil, "Unknown Network"},
		{KeyAddressCopied, nil, "Address copied to clipboard"},
		{KeyScanToReceive, nil, "Scan to receive"},
	}
	for _, tc := range tests {
		if got := Sprintf(tc.key, tc.args...); got != tc.want {
			t.Fatalf("Sprintf(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}
}
