// Package convert bridges gocv Mats and Go-native image types for decoder
// backends that cannot consume OpenCV buffers directly.
package convert

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// Validate rejects Mats that cannot be handed to a transform or decoder.
func Validate(mat gocv.Mat) error {
	if mat.Empty() {
		return fmt.Errorf("Mat is empty")
	}

	rows := mat.Rows()
	cols := mat.Cols()
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("Mat has invalid dimensions: %dx%d", cols, rows)
	}

	switch mat.Channels() {
	case 1, 3, 4:
		return nil
	default:
		return fmt.Errorf("unsupported number of channels: %d", mat.Channels())
	}
}

// MatToImage converts a validated Mat to a Go image. Single-channel Mats
// become *image.Gray, BGR/BGRA Mats become *image.RGBA.
func MatToImage(mat gocv.Mat) (image.Image, error) {
	if err := Validate(mat); err != nil {
		return nil, err
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert Mat to image: %w", err)
	}
	return img, nil
}

// MatToPNG encodes a validated Mat as PNG bytes, for decoder backends that
// read encoded image streams.
func MatToPNG(mat gocv.Mat) ([]byte, error) {
	if err := Validate(mat); err != nil {
		return nil, err
	}

	buf, err := gocv.IMEncode(gocv.PNGFileExt, mat)
	if err != nil {
		return nil, fmt.Errorf("failed to encode Mat as PNG: %w", err)
	}
	defer buf.Close()

	data := make([]byte, buf.Len())
	copy(data, buf.GetBytes())
	return data, nil
}
