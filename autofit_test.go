package gocert

import (
	"strings"
	"testing"
)

func TestFitBlock_ShortTextFitsAtMax(t *testing.T) {
	src := fallbackSource(t)
	spec := BlockField{YStart: 860, YEnd: 1225, MaxWidth: 2200, MaxFontSize: 120, MinFontSize: 40, Align: AlignCenter}

	fit := FitBlock(src, "Промышленная безопасность", spec, DefaultSpacing)
	if fit.State != FitFitted {
		t.Fatalf("state = %v, want fitted", fit.State)
	}
	if fit.Layout.Size != spec.MaxFontSize {
		t.Errorf("size = %d, want %d", fit.Layout.Size, spec.MaxFontSize)
	}
	if fit.Layout.Height > spec.Band() {
		t.Errorf("height %d overflows band %d", fit.Layout.Height, spec.Band())
	}
}

func TestFitBlock_ShrinksToLargestFittingSize(t *testing.T) {
	src := fallbackSource(t)
	spec := BlockField{YStart: 0, YEnd: 100, MaxWidth: 400, MaxFontSize: 60, MinFontSize: 8, Align: AlignLeft}
	text := strings.Repeat("семинар по охране труда ", 10)

	fit := FitBlock(src, text, spec, DefaultSpacing)
	if fit.State != FitFitted {
		t.Fatalf("state = %v, want fitted", fit.State)
	}
	size := fit.Layout.Size
	if size >= spec.MaxFontSize || size < spec.MinFontSize {
		t.Fatalf("size %d outside (%d, %d]", size, spec.MinFontSize, spec.MaxFontSize)
	}
	if (spec.MaxFontSize-size)%FontSizeStep != 0 {
		t.Errorf("size %d is not on the search grid", size)
	}
	if fit.Layout.Height > spec.Band() {
		t.Errorf("height %d overflows band %d", fit.Layout.Height, spec.Band())
	}
	larger := size + FontSizeStep
	if l := LayoutBlock(src(larger), larger, text, spec.MaxWidth, DefaultSpacing); l.Height <= spec.Band() {
		t.Errorf("size %d also fits (height %d), search should have stopped there", larger, l.Height)
	}
}

func TestFitBlock_ExhaustedUsesMinimum(t *testing.T) {
	src := fallbackSource(t)
	// 25 is not reachable from 60 in steps of 2, the minimum is still used.
	spec := BlockField{YStart: 1330, YEnd: 1400, MaxWidth: 600, MaxFontSize: 60, MinFontSize: 25, Align: AlignLeft}
	text := strings.Repeat("Очень длинная программа семинара. ", 60)

	fit := FitBlock(src, text, spec, DefaultSpacing)
	if fit.State != FitExhausted {
		t.Fatalf("state = %v, want exhausted", fit.State)
	}
	if fit.Layout.Size != spec.MinFontSize {
		t.Errorf("size = %d, want min %d", fit.Layout.Size, spec.MinFontSize)
	}
	if fit.Layout.Height <= spec.Band() {
		t.Errorf("expected overflow, height %d band %d", fit.Layout.Height, spec.Band())
	}
	if len(fit.Layout.Lines()) == 0 {
		t.Error("exhausted layout has no lines")
	}
}

func TestFitBlock_EmptyText(t *testing.T) {
	spec := BlockField{YStart: 0, YEnd: 10, MaxWidth: 100, MaxFontSize: 50, MinFontSize: 10}
	fit := FitBlock(fallbackSource(t), "\n\n", spec, DefaultSpacing)
	if fit.State != FitFitted || fit.Layout.Height != 0 || fit.Layout.Size != 50 {
		t.Errorf("unexpected fit %+v", fit)
	}
}

func TestFitOneLine(t *testing.T) {
	src := fallbackSource(t)
	name := "Иванов Иван Иванович"

	tests := []struct {
		name      string
		spec      OneLineField
		wantState FitState
		wantSize  int
	}{
		{"wide region", OneLineField{YCenter: 595, MaxWidth: 2200, MaxFontSize: 110, MinFontSize: 60}, FitFitted, 110},
		{"narrow region", OneLineField{YCenter: 595, MaxWidth: 20, MaxFontSize: 110, MinFontSize: 60}, FitExhausted, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fit := FitOneLine(src, name, tt.spec)
			if fit.State != tt.wantState {
				t.Errorf("state = %v, want %v", fit.State, tt.wantState)
			}
			if fit.Layout.Size != tt.wantSize {
				t.Errorf("size = %d, want %d", fit.Layout.Size, tt.wantSize)
			}
			if n := len(fit.Layout.Lines()); n != 1 {
				t.Errorf("one-line field produced %d lines", n)
			}
		})
	}
}

func TestFitOneLine_Shrinks(t *testing.T) {
	src := fallbackSource(t)
	name := "Константинопольский Константин Константинович"
	atMax := Measure(src(110), name).Width
	spec := OneLineField{YCenter: 600, MaxWidth: atMax * 3 / 4, MaxFontSize: 110, MinFontSize: 20}

	fit := FitOneLine(src, name, spec)
	if fit.State != FitFitted {
		t.Fatalf("state = %v, want fitted", fit.State)
	}
	if fit.Layout.Size >= 110 {
		t.Errorf("size %d did not shrink", fit.Layout.Size)
	}
	if w := fit.Layout.MaxWidth(); w > spec.MaxWidth {
		t.Errorf("width %d exceeds %d", w, spec.MaxWidth)
	}
}

func TestFitState_String(t *testing.T) {
	for s, want := range map[FitState]string{FitSearching: "searching", FitFitted: "fitted", FitExhausted: "exhausted", FitState(9): "unknown"} {
		if got := s.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", s, got, want)
		}
	}
}
