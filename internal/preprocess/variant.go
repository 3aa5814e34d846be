// Package preprocess derives the ordered sequence of image variants a decode
// attempt walks through. Variants are computed lazily: a variant only exists
// once every cheaper variant before it has been tried and failed.
package preprocess

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Kind tags a variant with the transform that produced it. The tag is used
// for diagnostics only; decoding never branches on it.
type Kind string

const (
	KindIdentity    Kind = "identity"
	KindGrayscale   Kind = "grayscale"
	KindBlurred     Kind = "blurred"
	KindThresholded Kind = "thresholded"
	KindClosed      Kind = "closed"
	KindRescaled    Kind = "rescaled"
)

// Variant is one derived image. The Mat is owned by the Sequence that
// produced it and stays valid until the Sequence is closed.
type Variant struct {
	Kind  Kind
	Scale float64 // set for rescaled variants only
	Mat   gocv.Mat
}

// Label renders the variant for log output, e.g. "rescaled_0.5".
func (v *Variant) Label() string {
	if v.Kind == KindRescaled {
		return fmt.Sprintf("%s_%g", v.Kind, v.Scale)
	}
	return string(v.Kind)
}
