package gocert

import (
	"image"

	"go.uber.org/zap"
	"golang.org/x/image/font"
)

// renderer paints the fields of one certificate onto one canvas.
type renderer struct {
	img     *image.RGBA
	faces   *faceSet
	profile StyleProfile
	spacing Spacing
	logger  *zap.Logger
}

// renderFields paints every non-empty field in paint order.
func (r *renderer) renderFields(texts map[Field]string) {
	for _, f := range Fields {
		text := texts[f]
		if text == "" {
			continue
		}
		r.renderField(f, text)
	}
}

func (r *renderer) renderField(f Field, text string) {
	ref := r.profile.Font(f)
	src := func(size int) font.Face { return r.faces.Face(ref, size) }
	c := image.NewUniform(r.profile.Color(f).RGBA())

	switch spec := r.profile.Spec(f).(type) {
	case SimpleField:
		r.drawSimple(text, src(spec.FontSize), c, spec)
	case OneLineField:
		fit := FitOneLine(src, text, spec)
		r.logFit(f, fit)
		r.drawOneLine(fit.Layout, src(fit.Layout.Size), c, spec)
	case BlockField:
		fit := FitBlock(src, text, spec, r.spacing)
		r.logFit(f, fit)
		r.drawBlock(fit.Layout, src(fit.Layout.Size), c, spec)
	}
}

func (r *renderer) logFit(f Field, fit Fit) {
	r.logger.Debug("autofit",
		zap.Stringer("field", f),
		zap.Stringer("state", fit.State),
		zap.Int("size", fit.Layout.Size),
		zap.Int("height", fit.Layout.Height),
		zap.Int("lines", len(fit.Layout.Lines())))
}

// drawSimple draws text unwrapped with the top of the ascent at (X, Y).
func (r *renderer) drawSimple(text string, face font.Face, src image.Image, spec SimpleField) {
	d := &font.Drawer{
		Dst:  r.img,
		Src:  src,
		Face: face,
		Dot:  dotForAscent(face, spec.X, spec.Y),
	}
	d.DrawString(text)
}

// drawOneLine centers the single line's ink box on the canvas width and on
// spec.YCenter.
func (r *renderer) drawOneLine(l Layout, face font.Face, src image.Image, spec OneLineField) {
	lines := l.Lines()
	if len(lines) == 0 {
		return
	}
	line := lines[0]
	x := (r.img.Bounds().Dx() - line.Width) / 2
	y := spec.YCenter - line.Height/2
	r.drawInk(line, face, src, x, y)
}

// drawBlock stacks the wrapped lines inside the band according to
// spec.Align.
func (r *renderer) drawBlock(l Layout, face font.Face, src image.Image, spec BlockField) {
	imgW := r.img.Bounds().Dx()

	top := spec.YStart
	if spec.Align == AlignCenter {
		top += (spec.Band() - l.Height) / 2
	}
	left := (imgW - l.MaxWidth()) / 2

	y := top
	for i, p := range l.Paragraphs {
		if i > 0 {
			y += r.spacing.Paragraph
		}
		for _, line := range p {
			x := left
			if spec.Align == AlignCenter {
				x = (imgW - line.Width) / 2
			}
			r.drawInk(line, face, src, x, y)
			y += line.Height + r.spacing.Line
		}
	}
}

func (r *renderer) drawInk(line Line, face font.Face, src image.Image, x, y int) {
	d := &font.Drawer{
		Dst:  r.img,
		Src:  src,
		Face: face,
		Dot:  dotForInk(line.TextMetrics, x, y),
	}
	d.DrawString(line.Text)
}
