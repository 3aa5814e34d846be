package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"gocv.io/x/gocv"
)

// ErrUndecodableImage marks an input fault: the supplied bytes are not an
// image at all. This is always surfaced as an error, never folded into the
// "no credential found" outcome.
var ErrUndecodableImage = errors.New("pipeline: data is not a decodable image")

// LoadBytes decodes encoded image bytes (PNG, JPEG, BMP, GIF) into a BGR
// Mat for scanning. The stdlib decode runs first as a format cross-check so
// a corrupt file fails with a useful reason before OpenCV sees it.
//
// The caller owns the returned Mat and must Close it.
func LoadBytes(data []byte) (gocv.Mat, error) {
	if len(data) == 0 {
		return gocv.NewMat(), fmt.Errorf("%w: empty input", ErrUndecodableImage)
	}

	if _, _, err := image.Decode(bytes.NewReader(data)); err != nil {
		return gocv.NewMat(), fmt.Errorf("%w: %v", ErrUndecodableImage, err)
	}

	mat, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("%w: %v", ErrUndecodableImage, err)
	}
	if mat.Empty() {
		mat.Close()
		return gocv.NewMat(), fmt.Errorf("%w: decoded to empty Mat", ErrUndecodableImage)
	}

	return mat, nil
}
