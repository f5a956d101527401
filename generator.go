// Package gocert renders seminar attendance certificates.
//
// A certificate's fields are painted onto an organization's background
// template with exact glyph metrics. Variable-length fields shrink their
// font until the text fits its region. Every certificate yields a print PDF
// from the clean template, a web PDF from the stamped template and a JPEG
// preview of the stamped page.
//
// See the Version variable for the current library version.
package gocert

import (
	"context"
	"image"
	"time"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/sync/errgroup"
)

// Options configures certificate generation.
type Options struct {
	// DPI is the resolution the templates are drawn at; it sets the PDF page
	// size. Default: 300.
	DPI float64
	// PDFImageQuality is the JPEG quality of the page raster inside the PDFs.
	// Default: 95.
	PDFImageQuality int
	// PreviewWidth is the preview image width in pixels. Default: 1000.
	PreviewWidth int
	// PreviewQuality is the preview JPEG quality (1-100). Default: 85.
	PreviewQuality int
	// Spacing is the line and paragraph spacing of block fields. It is used
	// as given, so zero means no gap; negative values are treated as zero.
	// DefaultOptions sets DefaultSpacing.
	Spacing Spacing
	// NumberPrefixes are stripped from the display number before painting.
	NumberPrefixes []string
	// CreationDate is stamped into the PDFs. Zero means the time of output.
	CreationDate time.Time
	// Logger receives render diagnostics. Nil means no logging.
	Logger *zap.Logger
}

// DefaultOptions returns default generation options.
func DefaultOptions() *Options {
	return &Options{
		DPI:             300,
		PDFImageQuality: 95,
		PreviewWidth:    1000,
		PreviewQuality:  85,
		Spacing:         DefaultSpacing,
		NumberPrefixes:  DefaultNumberPrefixes,
	}
}

// Generator renders certificates. It is safe for concurrent use: renders
// share only the read-only assets and the parsed font cache.
type Generator struct {
	assets Assets
	fonts  *FontCache
	opts   Options
	logger *zap.Logger
}

// NewGenerator creates a Generator over assets. A nil opts uses
// DefaultOptions; zero-valued fields fall back to their defaults.
func NewGenerator(assets Assets, opts *Options) *Generator {
	o := *DefaultOptions()
	if opts != nil {
		o = *opts
		def := DefaultOptions()
		if o.DPI <= 0 {
			o.DPI = def.DPI
		}
		if o.PDFImageQuality <= 0 {
			o.PDFImageQuality = def.PDFImageQuality
		}
		if o.PreviewWidth <= 0 {
			o.PreviewWidth = def.PreviewWidth
		}
		if o.PreviewQuality <= 0 {
			o.PreviewQuality = def.PreviewQuality
		}
		o.Spacing.Line = max(o.Spacing.Line, 0)
		o.Spacing.Paragraph = max(o.Spacing.Paragraph, 0)
		if o.NumberPrefixes == nil {
			o.NumberPrefixes = def.NumberPrefixes
		}
	}
	logger := o.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := ValidateProfiles(); err != nil {
		logger.Error("invalid style profiles", zap.Error(err))
	}
	return &Generator{
		assets: assets,
		fonts:  NewFontCache(assets.FS, logger),
		opts:   o,
		logger: logger,
	}
}

// Fonts returns the generator's font cache, e.g. to register fonts from
// memory with LoadFontData.
func (g *Generator) Fonts() *FontCache {
	return g.fonts
}

// Generate renders req onto both templates of its organization and encodes
// the three artifacts. On any failure it returns a nil *Artifacts and an
// error wrapping ErrMissingAsset, ErrTemplateDecode, ErrEncode or ErrRender.
func (g *Generator) Generate(req CertificateRequest) (arts *Artifacts, err error) {
	profile := Resolve(req.Organization)
	log := g.logger.With(
		zap.String("number", req.Number),
		zap.Stringer("organization", profile.Organization))

	defer func() {
		if v := recover(); v != nil {
			arts, err = nil, recoveredErr(v)
		}
		if err != nil {
			log.Error("certificate render failed", zap.Error(err))
		}
	}()

	if _, known := ParseOrganization(req.Organization); !known {
		log.Warn("unknown organization, using default profile",
			zap.String("requested", req.Organization))
	}

	clean, err := g.RenderPass(req, profile, profile.CleanTemplate)
	if err != nil {
		return nil, err
	}
	stamped, err := g.RenderPass(req, profile, profile.StampedTemplate)
	if err != nil {
		return nil, err
	}

	number := StripNumberPrefix(req.Number, g.opts.NumberPrefixes)
	printName, webName, previewName := artifactNames(number)

	printPDF, err := encodePDF(clean, g.opts.DPI, g.opts.PDFImageQuality, g.opts.CreationDate, req.FullName)
	if err != nil {
		return nil, renderErr(ErrEncode, printName, err)
	}
	webPDF, err := encodePDF(stamped, g.opts.DPI, g.opts.PDFImageQuality, g.opts.CreationDate, req.FullName)
	if err != nil {
		return nil, renderErr(ErrEncode, webName, err)
	}
	preview, err := encodePreview(stamped, g.opts.PreviewWidth, g.opts.PreviewQuality)
	if err != nil {
		return nil, renderErr(ErrEncode, previewName, err)
	}

	log.Info("certificate rendered", zap.String("print", printName))
	return &Artifacts{
		Print:   Artifact{Name: printName, ContentType: "application/pdf", Data: printPDF},
		Web:     Artifact{Name: webName, ContentType: "application/pdf", Data: webPDF},
		Preview: Artifact{Name: previewName, ContentType: "image/jpeg", Data: preview},
	}, nil
}

// RenderPass paints req onto the named template and returns the canvas.
func (g *Generator) RenderPass(req CertificateRequest, profile StyleProfile, template string) (*image.RGBA, error) {
	img, err := g.assets.LoadTemplate(template)
	if err != nil {
		return nil, err
	}
	faces := newFaceSet(g.fonts)
	defer faces.Close()

	r := &renderer{
		img:     img,
		faces:   faces,
		profile: profile,
		spacing: g.opts.Spacing,
		logger:  g.logger,
	}
	r.renderFields(req.fieldTexts(g.opts.NumberPrefixes))
	return img, nil
}

// FieldPlan is the layout decision for one field, without painting.
type FieldPlan struct {
	Field Field
	Text  string
	Spec  FieldSpec
	Fit   Fit
}

// Plan computes the autofit decision of every non-empty field of req.
// Simple fields are reported as fitted at their fixed size.
func (g *Generator) Plan(req CertificateRequest) []FieldPlan {
	profile := Resolve(req.Organization)
	faces := newFaceSet(g.fonts)
	defer faces.Close()

	var plans []FieldPlan
	texts := req.fieldTexts(g.opts.NumberPrefixes)
	for _, f := range Fields {
		text := texts[f]
		if text == "" {
			continue
		}
		ref := profile.Font(f)
		src := func(size int) font.Face { return faces.Face(ref, size) }

		plan := FieldPlan{Field: f, Text: text, Spec: profile.Spec(f)}
		switch spec := plan.Spec.(type) {
		case SimpleField:
			plan.Fit = Fit{State: FitFitted, Layout: LayoutLine(src(spec.FontSize), spec.FontSize, text)}
		case OneLineField:
			plan.Fit = FitOneLine(src, text, spec)
		case BlockField:
			plan.Fit = FitBlock(src, text, spec, g.opts.Spacing)
		}
		plans = append(plans, plan)
	}
	return plans
}

// BatchResult is the outcome of one certificate in a batch.
type BatchResult struct {
	Request   CertificateRequest
	Artifacts *Artifacts
	Err       error
}

// GenerateBatch renders reqs with up to workers concurrent renders.
// Results are in request order. A failed certificate does not stop the
// others; cancelling ctx stops scheduling and marks unstarted requests with
// the context error.
func (g *Generator) GenerateBatch(ctx context.Context, reqs []CertificateRequest, workers int) []BatchResult {
	if workers <= 0 {
		workers = 1
	}
	results := make([]BatchResult, len(reqs))
	for i := range reqs {
		results[i].Request = reqs[i]
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range reqs {
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Artifacts, results[i].Err = g.Generate(reqs[i])
			return nil
		})
	}
	_ = eg.Wait()
	return results
}
