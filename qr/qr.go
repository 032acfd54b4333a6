// Package qr wraps the third-party QR encoder behind the two shapes addrcard
// needs: terminal block art for the card and PNG bytes for file export.
package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Terminal encodes payload as a scannable half-height block-art string
// suitable for printing inside the terminal card.
func Terminal(payload string) (string, error) {
	q, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to encode %q as a qr code: %w", payload, err)
	}
	return q.ToSmallString(false), nil
}

// PNG encodes payload as a size x size pixel PNG.
func PNG(payload string, size int) ([]byte, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %q as a qr png: %w", payload, err)
	}
	return png, nil
}
