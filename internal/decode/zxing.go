package decode

import (
	"fmt"

	"github.com/makiuchi-d/gozxing"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"

	"wificode/internal/opencv/convert"
	"wificode/internal/preprocess"
)

// ZXingBackend decodes with the gozxing QR reader. TryHarder is enabled so
// rotated and noisy symbols are still located; this backend leads the
// cascade because of that tolerance.
type ZXingBackend struct {
	hints map[gozxing.DecodeHintType]interface{}
}

func NewZXingBackend() *ZXingBackend {
	return &ZXingBackend{
		hints: map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER: true,
		},
	}
}

func (b *ZXingBackend) Name() string { return "zxing" }

func (b *ZXingBackend) Decode(v *preprocess.Variant) ([]string, error) {
	img, err := convert.MatToImage(v.Mat)
	if err != nil {
		return nil, fmt.Errorf("zxing: %w", err)
	}

	bitmap, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("zxing: failed to build bitmap: %w", err)
	}

	result, err := zxqrcode.NewQRCodeReader().Decode(bitmap, b.hints)
	if err != nil {
		// NotFoundException and friends: the expected no-symbol case.
		return nil, err
	}

	text := result.GetText()
	if text == "" {
		return nil, nil
	}
	return []string{text}, nil
}
