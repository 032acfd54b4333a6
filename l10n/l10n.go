// Package l10n resolves message keys to display strings. Every user-facing
// string the card renders goes through here so that translated catalogs can
// be added without touching the rendering code.
package l10n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys known to the built-in catalog.
const (
	KeyExplorerGeneric = "explorer.view_generic"
	KeyExplorerBranded = "explorer.view_branded"
	KeyUnknownNetwork  = "network.unknown"
	KeyAddressCopied   = "address.copied"
	KeyScanToReceive   = "card.scan_hint"
)

func init() {
	for _, m := range []struct{ key, text string }{
		{KeyExplorerGeneric, "View on Explorer"},
		{KeyExplorerBranded, "View address on %s"},
		{KeyUnknownNetwork, "Unknown Network"},
		{KeyAddressCopied, "Address copied to clipboard"},
		{KeyScanToReceive, "Scan to receive"},
	} {
		if err := message.SetString(language.English, m.key, m.text); err != nil {
			panic(err)
		}
	}
}

var printer = message.NewPrinter(language.English)

// SetLanguage switches the active catalog language. Keys missing from the
// selected language fall back to the key itself, which keeps rendering alive
// even with an incomplete catalog.
func SetLanguage(tag language.Tag) {
	printer = message.NewPrinter(tag)
}

// Sprintf resolves key in the active catalog, applying positional args.
func Sprintf(key message.Reference, args ...interface{}) string {
	return printer.Sprintf(key, args...)
}
