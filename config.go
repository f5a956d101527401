package gocert

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config is the file configuration of the command-line tools.
type Config struct {
	AssetsDir string `yaml:"assets_dir"`
	OutputDir string `yaml:"output_dir"`
	Workers   int    `yaml:"workers"`
	LogLevel  string `yaml:"log_level"`

	// Fonts maps font names to font files outside the asset tree. They take
	// precedence over fonts/<name>.ttf.
	Fonts map[string]string `yaml:"fonts"`

	Render RenderConfig `yaml:"render"`
}

// RenderConfig mirrors Options for YAML.
type RenderConfig struct {
	DPI              float64  `yaml:"dpi"`
	PDFImageQuality  int      `yaml:"pdf_image_quality"`
	PreviewWidth     int      `yaml:"preview_width"`
	PreviewQuality   int      `yaml:"preview_quality"`
	LineSpacing      int      `yaml:"line_spacing"`
	ParagraphSpacing int      `yaml:"paragraph_spacing"`
	NumberPrefixes   []string `yaml:"number_prefixes"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	o := DefaultOptions()
	return &Config{
		AssetsDir: "assets",
		OutputDir: "out",
		Workers:   4,
		LogLevel:  "info",
		Render: RenderConfig{
			DPI:              o.DPI,
			PDFImageQuality:  o.PDFImageQuality,
			PreviewWidth:     o.PreviewWidth,
			PreviewQuality:   o.PreviewQuality,
			LineSpacing:      o.Spacing.Line,
			ParagraphSpacing: o.Spacing.Paragraph,
			NumberPrefixes:   o.NumberPrefixes,
		},
	}
}

// LoadConfig reads configuration from path on top of DefaultConfig.
// A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return cfg, nil
}

// Options converts the render section to generation options.
func (c *Config) Options(logger *zap.Logger) *Options {
	return &Options{
		DPI:             c.Render.DPI,
		PDFImageQuality: c.Render.PDFImageQuality,
		PreviewWidth:    c.Render.PreviewWidth,
		PreviewQuality:  c.Render.PreviewQuality,
		Spacing:         Spacing{Line: c.Render.LineSpacing, Paragraph: c.Render.ParagraphSpacing},
		NumberPrefixes:  c.Render.NumberPrefixes,
		Logger:          logger,
	}
}

// NewGenerator builds a Generator over the configured asset tree and
// registers the font files listed under fonts.
func (c *Config) NewGenerator(logger *zap.Logger) (*Generator, error) {
	gen := NewGenerator(NewAssets(c.AssetsDir), c.Options(logger))
	for name, path := range c.Fonts {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font %q: %w", name, err)
		}
		if err := gen.Fonts().LoadFontData(FontRef(name), data); err != nil {
			return nil, err
		}
	}
	return gen, nil
}

// NewLogger builds a production zap logger at the configured level.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zc.Build()
}

// requestFile is the YAML layout of a batch of certificates.
type requestFile struct {
	Certificates []CertificateRequest `yaml:"certificates"`
}

// LoadRequests reads the certificate requests listed in a YAML file.
func LoadRequests(path string) ([]CertificateRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read requests: %w", err)
	}
	return ParseRequests(data)
}

// ParseRequests decodes a YAML batch of certificate requests.
func ParseRequests(data []byte) ([]CertificateRequest, error) {
	var rf requestFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse requests: %w", err)
	}
	for i, r := range rf.Certificates {
		if r.DateStart.IsZero() {
			return nil, fmt.Errorf("certificate %d: date_start is required", i+1)
		}
		if r.DateEnd != nil && r.DateEnd.Before(r.DateStart) {
			return nil, fmt.Errorf("certificate %d: date_end %s is before date_start %s",
				i+1, r.DateEnd.Format(time.DateOnly), r.DateStart.Format(time.DateOnly))
		}
	}
	return rf.Certificates, nil
}
