// Package wifi implements the "WIFI:" QR payload grammar: a tolerant parser
// for decoded symbol text and the inverse encoder used for QR generation.
package wifi

// Canonical security tokens. Parse canonicalizes WPA2/WPA3 to SecurityWPA;
// any unrecognized token passes through verbatim.
const (
	SecurityWPA  = "WPA"
	SecurityWEP  = "WEP"
	SecurityNone = "nopass"
)

// Credential is the structured result of parsing a Wi-Fi payload.
// SSID is never empty on a successfully parsed credential; Password is empty
// for open networks.
type Credential struct {
	SSID     string
	Password string
	Security string
}
