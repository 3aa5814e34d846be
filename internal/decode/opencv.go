package decode

import (
	"gocv.io/x/gocv"

	"wificode/internal/preprocess"
)

// OpenCVBackend wraps the cv::QRCodeDetector detect-and-decode path. The
// detector is constructed per call; it carries no reusable state worth
// keeping across attempts.
type OpenCVBackend struct{}

func NewOpenCVBackend() *OpenCVBackend { return &OpenCVBackend{} }

func (b *OpenCVBackend) Name() string { return "opencv" }

func (b *OpenCVBackend) Decode(v *preprocess.Variant) ([]string, error) {
	detector := gocv.NewQRCodeDetector()
	defer detector.Close()

	points := gocv.NewMat()
	defer points.Close()
	straight := gocv.NewMat()
	defer straight.Close()

	text := detector.DetectAndDecode(v.Mat, &points, &straight)
	if text == "" {
		return nil, nil
	}
	return []string{text}, nil
}
