package decode

import (
	"wificode/internal/logger"
	"wificode/internal/preprocess"
	"wificode/internal/wifi"
)

// Match is a successful cascade outcome: the parsed credential plus the
// backend and variant that produced it, for diagnostics.
type Match struct {
	Credential wifi.Credential
	Backend    string
	Variant    string
	Raw        string
}

// Cascade tries every backend against every variant and stops at the first
// candidate string that parses. Backends and variant order are explicit
// construction parameters so tests can substitute both.
type Cascade struct {
	backends []Backend
	log      logger.Logger
}

func New(backends []Backend, log logger.Logger) *Cascade {
	if log == nil {
		log = logger.NewNop()
	}
	return &Cascade{backends: backends, log: log}
}

// Run walks variants in source order and, within each variant, backends in
// priority order. Each candidate string is checked with accept; the first
// accepted candidate terminates the whole cascade, so later backends and
// later variants are never evaluated. A false return means no Wi-Fi payload
// was found, which is a normal outcome, not a failure.
func (c *Cascade) Run(variants VariantSource, accept func(string) (wifi.Credential, bool)) (Match, bool) {
	for {
		variant, ok := variants.Next()
		if !ok {
			return Match{}, false
		}

		for _, backend := range c.backends {
			for _, candidate := range c.tryDecode(backend, variant) {
				credential, ok := accept(candidate)
				if !ok {
					c.log.Debug("Cascade", "candidate text is not a wifi payload", map[string]interface{}{
						"backend": backend.Name(),
						"variant": variant.Label(),
					})
					continue
				}

				c.log.Info("Cascade", "wifi payload decoded", map[string]interface{}{
					"backend": backend.Name(),
					"variant": variant.Label(),
				})
				return Match{
					Credential: credential,
					Backend:    backend.Name(),
					Variant:    variant.Label(),
					Raw:        candidate,
				}, true
			}
		}
	}
}

// tryDecode isolates one (backend, variant) attempt. Decoder errors and
// panics both collapse to "no result": a backend fault must never abort the
// cascade.
func (c *Cascade) tryDecode(backend Backend, variant *preprocess.Variant) (candidates []string) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Warning("Cascade", "backend panicked", map[string]interface{}{
				"backend": backend.Name(),
				"variant": variant.Label(),
				"panic":   r,
			})
			candidates = nil
		}
	}()

	candidates, err := backend.Decode(variant)
	if err != nil {
		c.log.Debug("Cascade", "backend found no symbol", map[string]interface{}{
			"backend": backend.Name(),
			"variant": variant.Label(),
			"reason":  err.Error(),
		})
		return nil
	}
	return candidates
}
