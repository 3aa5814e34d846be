// Package decode runs the barcode decoder cascade: an ordered list of
// backends tried against each preprocessing variant until a candidate string
// parses as a Wi-Fi payload.
package decode

import (
	"wificode/internal/preprocess"
)

// Backend is one barcode-symbol decoder. Decode returns every candidate
// string it located in the variant, in its own confidence order. A nil slice
// and an error are both treated as "no result" for that variant; most calls
// are expected to find nothing.
type Backend interface {
	Name() string
	Decode(v *preprocess.Variant) ([]string, error)
}

// VariantSource yields preprocessing variants in trial order. Sources are
// lazy: a variant is only computed when Next is called.
type VariantSource interface {
	Next() (*preprocess.Variant, bool)
}

// DefaultBackends returns the production backend list in priority order:
// the zxing port first (most tolerant of noise and rotation), the OpenCV
// detector second, and the legacy tuotoo decoder last (most permissive about
// malformed symbol structure, kept as a last resort).
func DefaultBackends() []Backend {
	return []Backend{
		NewZXingBackend(),
		NewOpenCVBackend(),
		NewTuotooBackend(),
	}
}
