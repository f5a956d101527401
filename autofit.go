package gocert

import "golang.org/x/image/font"

// FontSizeStep is the amount the autofit search shrinks the font by per try.
const FontSizeStep = 2

// FitState is the outcome of an autofit search.
type FitState int

const (
	// FitSearching is the state while sizes are still being tried.
	FitSearching FitState = iota
	// FitFitted means a size within the bounds fit the target region.
	FitFitted
	// FitExhausted means no size fit and the minimum size was used anyway.
	FitExhausted
)

func (s FitState) String() string {
	switch s {
	case FitSearching:
		return "searching"
	case FitFitted:
		return "fitted"
	case FitExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Fit is the chosen layout of an autofit field.
type Fit struct {
	State  FitState
	Layout Layout
}

// FaceSource provides faces of one font at arbitrary pixel sizes.
type FaceSource func(size int) font.Face

// FitBlock searches from spec.MaxFontSize down to spec.MinFontSize in
// FontSizeStep decrements for the first size whose wrapped block fits in
// the spec's band. If none fits, text is laid out at MinFontSize and the
// overflow is accepted.
func FitBlock(src FaceSource, text string, spec BlockField, sp Spacing) Fit {
	return search(spec.MaxFontSize, spec.MinFontSize, func(size int) (Layout, bool) {
		l := LayoutBlock(src(size), size, text, spec.MaxWidth, sp)
		return l, l.Height <= spec.Band()
	})
}

// FitOneLine is FitBlock for single-line fields: the line fits when its
// width does not exceed spec.MaxWidth.
func FitOneLine(src FaceSource, text string, spec OneLineField) Fit {
	return search(spec.MaxFontSize, spec.MinFontSize, func(size int) (Layout, bool) {
		l := LayoutLine(src(size), size, text)
		return l, l.MaxWidth() <= spec.MaxWidth
	})
}

func search(maxSize, minSize int, try func(size int) (Layout, bool)) Fit {
	fit := Fit{State: FitSearching}
	for size := maxSize; size >= minSize; size -= FontSizeStep {
		l, ok := try(size)
		if ok {
			fit.State = FitFitted
			fit.Layout = l
			return fit
		}
	}
	l, _ := try(minSize)
	fit.State = FitExhausted
	fit.Layout = l
	return fit
}
