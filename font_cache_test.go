package gocert

import (
	"testing"
	"testing/fstest"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

func TestFontCache_Fallback(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	fc := NewFontCache(fstest.MapFS{}, zap.New(core))

	f := fc.Font("times")
	if f != fallbackFont() {
		t.Fatal("missing font did not resolve to the built-in fallback")
	}
	// The fallback is cached; the warning is logged once.
	if fc.Font("times") != f {
		t.Error("fallback not cached")
	}
	if n := logs.FilterMessage("font unavailable, using built-in fallback").Len(); n != 1 {
		t.Errorf("expected 1 warning, got %d", n)
	}
}

func TestFontCache_LoadsFromAssets(t *testing.T) {
	fsys := fstest.MapFS{
		"fonts/Roboto.ttf":  {Data: gomono.TTF},
		"fonts/broken.ttf":  {Data: []byte("not a font")},
		"fonts/Roboto2.txt": {Data: goregular.TTF},
	}
	fc := NewFontCache(fsys, nil)

	roboto := fc.Font("Roboto")
	if roboto == nil || roboto == fallbackFont() {
		t.Fatal("expected Roboto to load from the asset tree")
	}
	if fc.Font("broken") != fallbackFont() {
		t.Error("unparseable font should fall back")
	}
	if fc.Font("Roboto2") != fallbackFont() {
		t.Error("only .ttf files are looked up")
	}
}

func TestFontCache_LoadFontData(t *testing.T) {
	fc := NewFontCache(nil, nil)
	if err := fc.LoadFontData("mono", []byte("garbage")); err == nil {
		t.Error("expected error for invalid font data")
	}
	if err := fc.LoadFontData("mono", gomono.TTF); err != nil {
		t.Fatalf("LoadFontData: %v", err)
	}
	if fc.Font("mono") == fallbackFont() {
		t.Error("registered font not returned")
	}
}

func TestFontPath(t *testing.T) {
	for in, want := range map[FontRef]string{
		"times":           "fonts/times.ttf",
		"Montserrat-Bold": "fonts/Montserrat-Bold.ttf",
		"Roboto.TTF":      "fonts/Roboto.TTF",
	} {
		if got := fontPath(in); got != want {
			t.Errorf("fontPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFaceSet(t *testing.T) {
	faces := newFaceSet(NewFontCache(nil, nil))
	a := faces.Face("times", 40)
	if faces.Face("times", 40) != a {
		t.Error("face not reused within a render")
	}
	if faces.Face("times", 42) == a {
		t.Error("different sizes share a face")
	}
	if m := a.Metrics(); m.Height.Ceil() < 40 {
		t.Errorf("40px face has line height %d", m.Height.Ceil())
	}
	faces.Close()
	if len(faces.faces) != 0 {
		t.Errorf("%d faces left after Close", len(faces.faces))
	}
}
