package gocert

import (
	"errors"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path"
)

// Assets is the read-only asset tree: templates/<name>.png and
// fonts/<name>.ttf. It is safe for concurrent use.
type Assets struct {
	FS fs.FS
}

// NewAssets returns the asset tree rooted at dir.
func NewAssets(dir string) Assets {
	return Assets{FS: os.DirFS(dir)}
}

func templatePath(name string) string {
	if path.Ext(name) == "" {
		name += ".png"
	}
	return path.Join("templates", name)
}

// LoadTemplate decodes the named template into a fresh RGBA canvas owned by
// the caller. The file handle is closed before returning on every path.
func (a Assets) LoadTemplate(name string) (*image.RGBA, error) {
	if a.FS == nil {
		return nil, renderErr(ErrMissingAsset, name, errors.New("no asset filesystem"))
	}
	p := templatePath(name)
	f, err := a.FS.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, renderErr(ErrMissingAsset, p, nil)
		}
		return nil, renderErr(ErrMissingAsset, p, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, renderErr(ErrTemplateDecode, p, err)
	}

	b := src.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(ColorWhite.RGBA()), image.Point{}, draw.Src)
	draw.Draw(canvas, canvas.Bounds(), src, b.Min, draw.Over)
	return canvas, nil
}
