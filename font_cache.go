package gocert

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// maxFontFileSize limits the size of individual font files loaded into memory.
const maxFontFileSize = 20 << 20 // 20 MB

// FontCache loads fonts from the asset tree and caches the parsed result.
// Parsed fonts are shared by all renders; faces are not, see faceSet.
// A font that cannot be loaded is replaced by the built-in Go Regular font.
type FontCache struct {
	mu     sync.RWMutex
	fsys   fs.FS
	fonts  map[FontRef]*opentype.Font
	logger *zap.Logger
}

// NewFontCache creates a FontCache reading fonts/<name>.ttf from fsys.
// fsys may be nil, in which case every font resolves to the fallback.
func NewFontCache(fsys fs.FS, logger *zap.Logger) *FontCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FontCache{
		fsys:   fsys,
		fonts:  make(map[FontRef]*opentype.Font),
		logger: logger,
	}
}

// Font returns the parsed font for ref, loading it on first use.
func (fc *FontCache) Font(ref FontRef) *opentype.Font {
	fc.mu.RLock()
	f, ok := fc.fonts[ref]
	fc.mu.RUnlock()
	if ok {
		return f
	}

	f, err := fc.load(ref)
	if err != nil {
		fc.logger.Warn("font unavailable, using built-in fallback",
			zap.String("font", string(ref)), zap.Error(err))
		f = fallbackFont()
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()
	if cached, ok := fc.fonts[ref]; ok {
		return cached
	}
	fc.fonts[ref] = f
	return f
}

// LoadFontData registers a TrueType/OpenType font from raw bytes under ref,
// replacing whatever was cached before.
func (fc *FontCache) LoadFontData(ref FontRef, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %q: %w", ref, err)
	}
	fc.mu.Lock()
	fc.fonts[ref] = f
	fc.mu.Unlock()
	return nil
}

func (fc *FontCache) load(ref FontRef) (*opentype.Font, error) {
	if fc.fsys == nil {
		return nil, fmt.Errorf("no asset filesystem")
	}
	p := fontPath(ref)
	info, err := fs.Stat(fc.fsys, p)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxFontFileSize {
		return nil, fmt.Errorf("font file too large: %d bytes (max %d)", info.Size(), maxFontFileSize)
	}
	data, err := fs.ReadFile(fc.fsys, p)
	if err != nil {
		return nil, err
	}
	return opentype.Parse(data)
}

func fontPath(ref FontRef) string {
	name := string(ref)
	if !strings.HasSuffix(strings.ToLower(name), ".ttf") {
		name += ".ttf"
	}
	return path.Join("fonts", name)
}

var (
	goRegularOnce sync.Once
	goRegular     *opentype.Font
)

// fallbackFont returns the embedded Go Regular font.
func fallbackFont() *opentype.Font {
	goRegularOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			panic(err) // embedded font
		}
		goRegular = f
	})
	return goRegular
}

type faceKey struct {
	ref  FontRef
	size int
}

// faceSet creates and owns the font faces of a single render. opentype
// faces keep internal scratch buffers, so they are never shared between
// renders. Close releases every face handed out.
type faceSet struct {
	cache *FontCache
	faces map[faceKey]font.Face
}

func newFaceSet(cache *FontCache) *faceSet {
	return &faceSet{cache: cache, faces: make(map[faceKey]font.Face)}
}

// Face returns a face of ref at size pixels.
func (s *faceSet) Face(ref FontRef, size int) font.Face {
	key := faceKey{ref: ref, size: size}
	if face, ok := s.faces[key]; ok {
		return face
	}

	face, err := opentype.NewFace(s.cache.Font(ref), &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		s.cache.logger.Warn("cannot create font face, using basic font",
			zap.String("font", string(ref)), zap.Int("size", size), zap.Error(err))
		face = basicfont.Face7x13
	}
	s.faces[key] = face
	return face
}

// Close releases all faces.
func (s *faceSet) Close() {
	for k, face := range s.faces {
		face.Close()
		delete(s.faces, k)
	}
}
