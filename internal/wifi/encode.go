package wifi

import (
	"fmt"
	"strings"
)

// Encode builds a Wi-Fi QR payload string for an external QR renderer.
// An empty or nopass security emits the open-network form with no password
// field at all, regardless of the password argument. Values substitute
// verbatim; the wire format defines no escaping for ';' or ':'.
func Encode(ssid, password, security string) string {
	if security == "" || strings.EqualFold(security, SecurityNone) {
		return fmt.Sprintf("WIFI:T:nopass;S:%s;;", ssid)
	}
	return fmt.Sprintf("WIFI:T:%s;S:%s;P:%s;;", security, ssid, password)
}
