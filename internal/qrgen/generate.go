// Package qrgen renders Wi-Fi payloads into scannable QR symbols. Symbol
// version and module layout are the renderer's concern; callers only pick
// the output size.
package qrgen

import (
	"fmt"

	qr "github.com/skip2/go-qrcode"

	"wificode/internal/wifi"
)

const DefaultSize = 256

// PNG renders an arbitrary payload string as a PNG-encoded QR symbol with
// medium error correction.
func PNG(payload string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}

	data, err := qr.Encode(payload, qr.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("qrgen: failed to render payload: %w", err)
	}
	return data, nil
}

// WifiPNG encodes credentials into the wire grammar and renders the result.
func WifiPNG(ssid, password, security string, size int) ([]byte, error) {
	if ssid == "" {
		return nil, fmt.Errorf("qrgen: ssid must not be empty")
	}
	return PNG(wifi.Encode(ssid, password, security), size)
}
