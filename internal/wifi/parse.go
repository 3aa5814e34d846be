package wifi

import (
	"regexp"
	"strings"
)

var (
	// schemePattern locates the payload scheme without case-folding the
	// whole string, which would shift byte offsets on multibyte input.
	schemePattern = regexp.MustCompile(`(?i)WIFI:`)

	// Safety net for maximally terse open-network payloads that omit the
	// password field and slip past the general field scan.
	nopassPattern = regexp.MustCompile(`(?i)WIFI:T:nopass;S:([^;]*);`)
)

// Parse checks text against the Wi-Fi QR grammar and extracts a credential.
// ok is false when the text is not a Wi-Fi payload; arbitrary QR content is
// an expected negative, never an error.
//
// Fields are scanned independently so payloads may order T/S/P freely. A
// field value runs to the next unescaped ';'; backslash escapes are kept
// verbatim because the wire format defines no escaping of its own. The H:
// hidden-network flag is recognized and ignored.
func Parse(text string) (Credential, bool) {
	trimmed := strings.TrimSpace(text)

	loc := schemePattern.FindStringIndex(trimmed)
	if loc == nil {
		return Credential{}, false
	}
	body := trimmed[loc[1]:]

	ssid, hasSSID := scanField(body, "S:")
	security, hasSecurity := scanField(body, "T:")

	if hasSSID && hasSecurity && ssid != "" {
		password, _ := scanField(body, "P:")
		return normalize(ssid, password, security), true
	}

	if m := nopassPattern.FindStringSubmatch(trimmed); m != nil && m[1] != "" {
		return Credential{SSID: m[1], Security: SecurityNone}, true
	}

	return Credential{}, false
}

// scanField finds the first occurrence of a field marker at a field boundary
// (the start of the body or right after a ';') and returns its value, so a
// marker-looking substring inside another field's value never matches. End of
// input is tolerated as a terminator so payloads trimmed to a single trailing
// semicolon still parse.
func scanField(body, marker string) (string, bool) {
	idx := -1
	for from := 0; from < len(body); {
		at := strings.Index(body[from:], marker)
		if at < 0 {
			break
		}
		at += from
		if at == 0 || body[at-1] == ';' {
			idx = at
			break
		}
		from = at + 1
	}
	if idx < 0 {
		return "", false
	}
	rest := body[idx+len(marker):]

	var value strings.Builder
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if c == '\\' && i+1 < len(rest) {
			value.WriteByte(c)
			i++
			value.WriteByte(rest[i])
			continue
		}
		if c == ';' {
			break
		}
		value.WriteByte(c)
	}
	return value.String(), true
}

func normalize(ssid, password, security string) Credential {
	switch strings.ToUpper(security) {
	case "WPA2", "WPA3":
		security = SecurityWPA
	case "NOPASS":
		// Open network: whatever the payload carried in P: is meaningless.
		password = ""
	}
	return Credential{SSID: ssid, Password: password, Security: security}
}
