package preprocess

import (
	"errors"
	"testing"

	"gocv.io/x/gocv"
)

// checkerboard builds a bimodal test image so the Otsu threshold has two
// clear classes to separate.
func checkerboard(t *testing.T, size, block int, channels int) gocv.Mat {
	t.Helper()

	matType := gocv.MatTypeCV8UC1
	if channels == 3 {
		matType = gocv.MatTypeCV8UC3
	}
	mat := gocv.NewMatWithSize(size, size, matType)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			value := uint8(40)
			if (x/block+y/block)%2 == 0 {
				value = 215
			}
			if channels == 1 {
				mat.SetUCharAt(y, x, value)
			} else {
				for c := 0; c < 3; c++ {
					mat.SetUCharAt3(y, x, c, value)
				}
			}
		}
	}
	return mat
}

func collect(t *testing.T, seq *Sequence) []*Variant {
	t.Helper()
	var variants []*Variant
	for {
		v, ok := seq.Next()
		if !ok {
			break
		}
		variants = append(variants, v)
	}
	return variants
}

func TestSequenceOrderColorSource(t *testing.T) {
	src := checkerboard(t, 64, 8, 3)
	defer src.Close()

	seq, err := NewSequence(src, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer seq.Close()

	variants := collect(t, seq)

	wantLabels := []string{
		"identity", "grayscale", "blurred", "thresholded", "closed",
		"rescaled_0.5", "rescaled_1.5", "rescaled_2",
	}
	if len(variants) != len(wantLabels) {
		t.Fatalf("variant count=%d, want=%d", len(variants), len(wantLabels))
	}
	for i, v := range variants {
		if v.Label() != wantLabels[i] {
			t.Errorf("variant[%d]=%q, want=%q", i, v.Label(), wantLabels[i])
		}
	}

	// The identity and rescaled variants keep the source channel count; the
	// derived chain is single-channel.
	if variants[0].Mat.Channels() != 3 {
		t.Errorf("identity channels=%d, want=3", variants[0].Mat.Channels())
	}
	for _, i := range []int{1, 2, 3, 4} {
		if variants[i].Mat.Channels() != 1 {
			t.Errorf("%s channels=%d, want=1", variants[i].Label(), variants[i].Mat.Channels())
		}
	}

	wantSizes := map[string]int{"rescaled_0.5": 32, "rescaled_1.5": 96, "rescaled_2": 128}
	for _, v := range variants[5:] {
		if v.Mat.Rows() != wantSizes[v.Label()] || v.Mat.Cols() != wantSizes[v.Label()] {
			t.Errorf("%s size=%dx%d, want=%d", v.Label(), v.Mat.Cols(), v.Mat.Rows(), wantSizes[v.Label()])
		}
		if v.Mat.Channels() != 3 {
			t.Errorf("%s channels=%d, want=3", v.Label(), v.Mat.Channels())
		}
	}
}

func TestSequenceThresholdIsBinary(t *testing.T) {
	src := checkerboard(t, 64, 8, 3)
	defer src.Close()

	seq, err := NewSequence(src, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer seq.Close()

	var thresholded *Variant
	for {
		v, ok := seq.Next()
		if !ok {
			break
		}
		if v.Kind == KindThresholded {
			thresholded = v
			break
		}
	}
	if thresholded == nil {
		t.Fatal("thresholded variant not produced")
	}

	// Dark block maps to 0, light block to 255.
	if got := thresholded.Mat.GetUCharAt(4, 4); got != 255 {
		t.Errorf("light block threshold=%d, want=255", got)
	}
	if got := thresholded.Mat.GetUCharAt(4, 12); got != 0 {
		t.Errorf("dark block threshold=%d, want=0", got)
	}
}

func TestSequenceGrayscaleSourceSkipsConversion(t *testing.T) {
	src := checkerboard(t, 64, 8, 1)
	defer src.Close()

	seq, err := NewSequence(src, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer seq.Close()

	variants := collect(t, seq)
	if len(variants) != 7 {
		t.Fatalf("variant count=%d, want=7", len(variants))
	}
	for _, v := range variants {
		if v.Kind == KindGrayscale {
			t.Errorf("grayscale variant emitted for single-channel source")
		}
	}
}

func TestSequenceEmptySource(t *testing.T) {
	empty := gocv.NewMat()
	defer empty.Close()

	if _, err := NewSequence(empty, DefaultOptions()); !errors.Is(err, ErrEmptyImage) {
		t.Fatalf("err=%v, want=ErrEmptyImage", err)
	}
}

func TestSequenceCloseLeavesSourceUsable(t *testing.T) {
	src := checkerboard(t, 64, 8, 3)
	defer src.Close()

	seq, err := NewSequence(src, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Consume a few variants, then close mid-sequence.
	for i := 0; i < 3; i++ {
		if _, ok := seq.Next(); !ok {
			t.Fatalf("sequence exhausted early at %d", i)
		}
	}
	seq.Close()

	if _, ok := seq.Next(); ok {
		t.Error("Next returned a variant after Close")
	}
	if src.Empty() || src.Rows() != 64 {
		t.Errorf("source Mat damaged by Close: empty=%v rows=%d", src.Empty(), src.Rows())
	}
}
