package decode

import (
	"bytes"
	"fmt"

	tuotoo "github.com/tuotoo/qrcode"

	"wificode/internal/opencv/convert"
	"wificode/internal/preprocess"
)

// TuotooBackend is the legacy decoder. It reads an encoded PNG stream and is
// more permissive about malformed symbol structure than the other backends,
// so it runs last.
type TuotooBackend struct{}

func NewTuotooBackend() *TuotooBackend { return &TuotooBackend{} }

func (b *TuotooBackend) Name() string { return "tuotoo" }

func (b *TuotooBackend) Decode(v *preprocess.Variant) ([]string, error) {
	png, err := convert.MatToPNG(v.Mat)
	if err != nil {
		return nil, fmt.Errorf("tuotoo: %w", err)
	}

	matrix, err := tuotoo.Decode(bytes.NewReader(png))
	if err != nil {
		return nil, err
	}
	if matrix == nil || matrix.Content == "" {
		return nil, nil
	}
	return []string{matrix.Content}, nil
}
