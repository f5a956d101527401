package gocert

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"strings"
	"time"
	"unicode"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
)

// Artifact is one named output buffer.
type Artifact struct {
	Name        string
	ContentType string
	Data        []byte
}

// Artifacts holds the three outputs of one certificate. Generate returns
// either all three or none.
type Artifacts struct {
	Print   Artifact
	Web     Artifact
	Preview Artifact
}

// All returns the artifacts in print, web, preview order.
func (a *Artifacts) All() []Artifact {
	return []Artifact{a.Print, a.Web, a.Preview}
}

// artifactNames derives the three file names from the display number and a
// fresh token shared by all three.
func artifactNames(number string) (printName, webName, previewName string) {
	base := safeFileName(number)
	if base == "" {
		base = "certificate"
	}
	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("print_%s_%s.pdf", base, token),
		fmt.Sprintf("web_%s_%s.pdf", base, token),
		fmt.Sprintf("preview_%s_%s.jpg", base, token)
}

// safeFileName keeps letters, digits, '-', '_' and '.'; anything else
// becomes '_'.
func safeFileName(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, strings.TrimSpace(s))
}

// encodePDF wraps img in a single-page PDF whose page size equals the
// image at dpi. The raster is embedded as a JPEG at the given quality.
func encodePDF(img image.Image, dpi float64, quality int, created time.Time, title string) ([]byte, error) {
	var raster bytes.Buffer
	if err := jpeg.Encode(&raster, img, &jpeg.Options{Quality: clampQuality(quality, 95)}); err != nil {
		return nil, fmt.Errorf("encode page raster: %w", err)
	}

	b := img.Bounds()
	w := float64(b.Dx()) * 72 / dpi
	h := float64(b.Dy()) * 72 / dpi

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(true)
	pdf.SetProducer("GoCert "+Version, true)
	if title != "" {
		pdf.SetTitle(title, true)
	}
	if !created.IsZero() {
		pdf.SetCreationDate(created)
		pdf.SetModificationDate(created)
	}
	pdf.SetCatalogSort(true)
	pdf.AddPage()

	opts := fpdf.ImageOptions{ImageType: "JPG"}
	pdf.RegisterImageOptionsReader("page", opts, &raster)
	pdf.ImageOptions("page", 0, 0, w, h, false, opts, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return out.Bytes(), nil
}

// encodePreview scales img to width pixels, keeping the aspect ratio, and
// encodes it as JPEG.
func encodePreview(img image.Image, width, quality int) ([]byte, error) {
	scaled := scaleToWidth(img, width)
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: clampQuality(quality, 85)}); err != nil {
		return nil, fmt.Errorf("encode preview: %w", err)
	}
	return buf.Bytes(), nil
}

// scaleToWidth resizes src to the given width with Catmull-Rom resampling.
// The height is truncated from the scaled aspect ratio.
func scaleToWidth(src image.Image, width int) image.Image {
	b := src.Bounds()
	if width <= 0 || b.Dx() == 0 || b.Dy() == 0 {
		return src
	}
	height := int(float64(b.Dy()) * (float64(width) / float64(b.Dx())))
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

func clampQuality(q, def int) int {
	if q <= 0 || q > 100 {
		return def
	}
	return q
}
