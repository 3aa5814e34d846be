// Package pipeline wires preprocessing, the decoder cascade, and the payload
// parser into the two scan entry points: a single-shot scan of a static
// image and a per-frame scan for live capture.
package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gocv.io/x/gocv"

	"wificode/internal/decode"
	"wificode/internal/logger"
	"wificode/internal/preprocess"
	"wificode/internal/wifi"
)

// Result is a successful scan: the credential plus the diagnostics trail of
// which backend and variant recovered it.
type Result struct {
	Credential wifi.Credential
	Backend    string
	Variant    string
	Raw        string
	ScanID     string
	Elapsed    time.Duration
}

// Scanner is the stateless orchestrator. Every scan is an independent
// single-shot cascade run; nothing is shared between invocations.
type Scanner struct {
	cascade *decode.Cascade
	opts    preprocess.Options
	log     logger.Logger
}

// New builds a scanner from an explicit backend list and preprocessing
// options. Tests substitute stub backends here.
func New(backends []decode.Backend, opts preprocess.Options, log logger.Logger) *Scanner {
	if log == nil {
		log = logger.NewNop()
	}
	return &Scanner{
		cascade: decode.New(backends, log),
		opts:    opts,
		log:     log,
	}
}

// Default builds a scanner with the production backends and default
// preprocessing parameters.
func Default(log logger.Logger) *Scanner {
	return New(decode.DefaultBackends(), preprocess.DefaultOptions(), log)
}

// ScanMat runs one full decode attempt over a loaded image. The bool result
// distinguishes "no Wi-Fi credential in this image" (a normal outcome) from
// a found credential; only input faults return an error.
func (s *Scanner) ScanMat(src gocv.Mat) (Result, bool, error) {
	scanID := uuid.NewString()
	start := time.Now()

	seq, err := preprocess.NewSequence(src, s.opts)
	if err != nil {
		return Result{}, false, fmt.Errorf("pipeline: %w", err)
	}
	defer seq.Close()

	s.log.Debug("Scanner", "scan started", map[string]interface{}{
		"scan_id":  scanID,
		"width":    src.Cols(),
		"height":   src.Rows(),
		"channels": src.Channels(),
		"variants": seq.Len(),
	})

	match, found := s.cascade.Run(seq, wifi.Parse)
	elapsed := time.Since(start)

	if !found {
		s.log.Debug("Scanner", "no wifi credential found", map[string]interface{}{
			"scan_id":    scanID,
			"elapsed_ms": elapsed.Milliseconds(),
		})
		return Result{}, false, nil
	}

	s.log.Info("Scanner", "credential recovered", map[string]interface{}{
		"scan_id":    scanID,
		"ssid":       match.Credential.SSID,
		"security":   match.Credential.Security,
		"backend":    match.Backend,
		"variant":    match.Variant,
		"elapsed_ms": elapsed.Milliseconds(),
	})

	return Result{
		Credential: match.Credential,
		Backend:    match.Backend,
		Variant:    match.Variant,
		Raw:        match.Raw,
		ScanID:     scanID,
		Elapsed:    elapsed,
	}, true, nil
}

// ScanFrame is the live-capture entry point, invoked once per captured
// frame by an external loop. Each call is an independent single-shot run;
// suppressing repeat notifications for identical consecutive results is the
// caller's concern.
func (s *Scanner) ScanFrame(frame gocv.Mat) (Result, bool, error) {
	return s.ScanMat(frame)
}
