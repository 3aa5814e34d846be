package preprocess

import (
	"image"

	"gocv.io/x/gocv"
)

func grayscale(src gocv.Mat) gocv.Mat {
	dst := gocv.NewMat()
	code := gocv.ColorBGRToGray
	if src.Channels() == 4 {
		code = gocv.ColorBGRAToGray
	}
	gocv.CvtColor(src, &dst, code)
	return dst
}

func smooth(gray gocv.Mat, kernel int) gocv.Mat {
	dst := gocv.NewMat()
	gocv.GaussianBlur(gray, &dst, image.Pt(kernel, kernel), 0, 0, gocv.BorderDefault)
	return dst
}

// otsuThreshold binarizes a grayscale Mat with the threshold picked from its
// histogram.
func otsuThreshold(gray gocv.Mat) gocv.Mat {
	dst := gocv.NewMat()
	gocv.Threshold(gray, &dst, 0, 255, gocv.ThresholdBinary|gocv.ThresholdOtsu)
	return dst
}

// closeGaps bridges broken symbol edges in a binary Mat with a
// dilate-then-erode pass over a square structuring element.
func closeGaps(binary gocv.Mat, kernel int) gocv.Mat {
	element := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(kernel, kernel))
	defer element.Close()

	dst := gocv.NewMat()
	gocv.MorphologyEx(binary, &dst, gocv.MorphClose, element)
	return dst
}

// rescale resizes by a uniform factor, area-averaging on the way down.
func rescale(src gocv.Mat, factor float64) gocv.Mat {
	interp := gocv.InterpolationLinear
	if factor < 1.0 {
		interp = gocv.InterpolationArea
	}

	dst := gocv.NewMat()
	gocv.Resize(src, &dst, image.Point{}, factor, factor, interp)
	return dst
}
