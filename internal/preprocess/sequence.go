package preprocess

import (
	"errors"

	"gocv.io/x/gocv"
)

// ErrEmptyImage is returned when the source Mat has no pixel data. The
// sequence then yields nothing and the decode attempt fails fast.
var ErrEmptyImage = errors.New("preprocess: source image is empty")

// Options control the transform parameters. Zero values fall back to the
// defaults the cascade was tuned with.
type Options struct {
	GaussianKernel int
	MorphKernel    int
	Scales         []float64
}

func DefaultOptions() Options {
	return Options{
		GaussianKernel: 5,
		MorphKernel:    3,
		Scales:         []float64{0.5, 1.5, 2.0},
	}
}

// Sequence walks the fixed variant order for one source image:
// identity, grayscale (when the source carries color), blur, Otsu threshold,
// morphological close, then rescaled copies of the original. Each variant is
// computed on first demand; the grayscale and thresholded intermediates are
// cached because later variants derive from them.
//
// The Sequence owns every Mat it derives. The source Mat stays with the
// caller and is never mutated or closed here.
type Sequence struct {
	src   gocv.Mat
	opts  Options
	steps []func() *Variant
	pos   int

	derived []gocv.Mat

	gray      gocv.Mat
	hasGray   bool
	thresh    gocv.Mat
	hasThresh bool
}

func NewSequence(src gocv.Mat, opts Options) (*Sequence, error) {
	if src.Empty() || src.Rows() <= 0 || src.Cols() <= 0 {
		return nil, ErrEmptyImage
	}

	defaults := DefaultOptions()
	if opts.GaussianKernel <= 0 {
		opts.GaussianKernel = defaults.GaussianKernel
	}
	if opts.MorphKernel <= 0 {
		opts.MorphKernel = defaults.MorphKernel
	}
	if len(opts.Scales) == 0 {
		opts.Scales = defaults.Scales
	}

	s := &Sequence{src: src, opts: opts}

	s.steps = append(s.steps, s.identityStep)
	if src.Channels() > 1 {
		s.steps = append(s.steps, s.grayscaleStep)
	}
	s.steps = append(s.steps, s.blurStep, s.thresholdStep, s.closeStep)
	for _, factor := range opts.Scales {
		factor := factor
		s.steps = append(s.steps, func() *Variant { return s.rescaleStep(factor) })
	}

	return s, nil
}

// Next computes and returns the next variant in the fixed order. It returns
// false once the sequence is exhausted or closed.
func (s *Sequence) Next() (*Variant, bool) {
	if s.pos >= len(s.steps) {
		return nil, false
	}
	step := s.steps[s.pos]
	s.pos++
	return step(), true
}

// Len reports how many variants the sequence will produce in total.
func (s *Sequence) Len() int {
	return len(s.steps)
}

// Close releases every derived Mat. Variants handed out by Next must not be
// used afterwards. The source Mat is left untouched.
func (s *Sequence) Close() {
	for i := range s.derived {
		s.derived[i].Close()
	}
	s.derived = nil
	s.hasGray = false
	s.hasThresh = false
	s.pos = len(s.steps)
}

func (s *Sequence) track(m gocv.Mat) {
	s.derived = append(s.derived, m)
}

func (s *Sequence) grayMat() gocv.Mat {
	if !s.hasGray {
		if s.src.Channels() == 1 {
			s.gray = s.src
		} else {
			s.gray = grayscale(s.src)
			s.track(s.gray)
		}
		s.hasGray = true
	}
	return s.gray
}

func (s *Sequence) threshMat() gocv.Mat {
	if !s.hasThresh {
		s.thresh = otsuThreshold(s.grayMat())
		s.track(s.thresh)
		s.hasThresh = true
	}
	return s.thresh
}

func (s *Sequence) identityStep() *Variant {
	return &Variant{Kind: KindIdentity, Mat: s.src}
}

func (s *Sequence) grayscaleStep() *Variant {
	return &Variant{Kind: KindGrayscale, Mat: s.grayMat()}
}

func (s *Sequence) blurStep() *Variant {
	blurred := smooth(s.grayMat(), s.opts.GaussianKernel)
	s.track(blurred)
	return &Variant{Kind: KindBlurred, Mat: blurred}
}

func (s *Sequence) thresholdStep() *Variant {
	return &Variant{Kind: KindThresholded, Mat: s.threshMat()}
}

func (s *Sequence) closeStep() *Variant {
	closed := closeGaps(s.threshMat(), s.opts.MorphKernel)
	s.track(closed)
	return &Variant{Kind: KindClosed, Mat: closed}
}

func (s *Sequence) rescaleStep(factor float64) *Variant {
	resized := rescale(s.src, factor)
	s.track(resized)
	return &Variant{Kind: KindRescaled, Scale: factor, Mat: resized}
}
