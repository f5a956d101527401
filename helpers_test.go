package gocert

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"sync"
	"testing"
	"testing/fstest"

	"golang.org/x/image/font"
)

// A4 at 300 dpi, the size of the production templates.
const (
	templateW = 2480
	templateH = 3508
)

var (
	templateOnce sync.Once
	cleanPNG     []byte
	stampPNG     []byte
)

// stampRect is where the synthetic stamped template carries its overlay.
var stampRect = image.Rect(0, 0, 60, 60)

func encodeTemplate(overlay bool) []byte {
	img := image.NewRGBA(image.Rect(0, 0, templateW, templateH))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	if overlay {
		draw.Draw(img, stampRect, image.NewUniform(color.RGBA{R: 200, A: 255}), image.Point{}, draw.Src)
	}
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func templatePNGs() (clean, stamp []byte) {
	templateOnce.Do(func() {
		cleanPNG = encodeTemplate(false)
		stampPNG = encodeTemplate(true)
	})
	return cleanPNG, stampPNG
}

// testAssets returns an asset tree holding the templates of the given
// profiles. Fonts are absent, so every font resolves to the fallback.
func testAssets(t *testing.T, profiles ...StyleProfile) Assets {
	t.Helper()
	clean, stamp := templatePNGs()
	fsys := fstest.MapFS{}
	for _, p := range profiles {
		fsys[templatePath(p.CleanTemplate)] = &fstest.MapFile{Data: clean}
		fsys[templatePath(p.StampedTemplate)] = &fstest.MapFile{Data: stamp}
	}
	return Assets{FS: fsys}
}

// fallbackSource returns faces of the built-in font.
func fallbackSource(t *testing.T) FaceSource {
	t.Helper()
	faces := newFaceSet(NewFontCache(nil, nil))
	t.Cleanup(faces.Close)
	return func(size int) font.Face { return faces.Face("missing", size) }
}

func isWhite(c color.RGBA) bool {
	return c.R == 0xFF && c.G == 0xFF && c.B == 0xFF
}

// countInk counts non-white pixels of img inside r.
func countInk(img *image.RGBA, r image.Rectangle) int {
	n := 0
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if !isWhite(img.RGBAAt(x, y)) {
				n++
			}
		}
	}
	return n
}
