package gocert

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

func TestLoadTemplate_TransparentPixelsBecomeWhite(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	assets := Assets{FS: fstest.MapFS{"templates/half.png": {Data: buf.Bytes()}}}
	img, err := assets.LoadTemplate("half")
	if err != nil {
		t.Fatalf("LoadTemplate: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("opaque pixel %v", got)
	}
	if got := img.RGBAAt(3, 1); got != ColorWhite.RGBA() {
		t.Errorf("transparent pixel %v, want white", got)
	}
}

func TestTemplatePath(t *testing.T) {
	for in, want := range map[string]string{
		"template_cse_clean": "templates/template_cse_clean.png",
		"scan.jpg":           "templates/scan.jpg",
	} {
		if got := templatePath(in); got != want {
			t.Errorf("templatePath(%q) = %q, want %q", in, got, want)
		}
	}
}
