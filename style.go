package gocert

import (
	"image/color"
	"strings"
)

// Color is an opaque RGB color stored as a 6-character uppercase hex string.
type Color struct {
	RGB string
}

// Predefined colors.
var (
	ColorBlack = Color{RGB: "000000"}
	ColorWhite = Color{RGB: "FFFFFF"}
)

// NewColor creates a Color from an RGB hex string such as "B40000".
// A leading "#" is stripped. Invalid input yields black.
func NewColor(rgb string) Color {
	rgb = strings.ToUpper(strings.TrimPrefix(rgb, "#"))
	if !isValidRGB(rgb) {
		return ColorBlack
	}
	return Color{RGB: rgb}
}

func isValidRGB(s string) bool {
	if len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if hexVal(s[i]) < 0 {
			return false
		}
	}
	return true
}

// RGBA converts the color for use as an image source.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: parseHexByte(c.RGB, 0),
		G: parseHexByte(c.RGB, 2),
		B: parseHexByte(c.RGB, 4),
		A: 0xFF,
	}
}

// parseHexByte parses two hex characters at offset into a uint8.
// Returns 0 on any error (out of range, invalid chars).
func parseHexByte(s string, offset int) uint8 {
	if offset+2 > len(s) {
		return 0
	}
	h := hexVal(s[offset])
	l := hexVal(s[offset+1])
	if h < 0 || l < 0 {
		return 0
	}
	return uint8(h<<4 | l)
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return -1
	}
}

// FontRef names a font file under fonts/ in the asset tree, without the .ttf extension.
type FontRef string

// Alignment controls how the lines of a block field are placed.
type Alignment int

const (
	// AlignCenter centers every line and the block as a whole inside its band.
	AlignCenter Alignment = iota
	// AlignLeft pins the block to the top of its band; all lines share the
	// left edge of the horizontally centered widest line.
	AlignLeft
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignLeft:
		return "left"
	default:
		return "unknown"
	}
}

// FieldSpec describes where and how one certificate field is painted.
// It is implemented by SimpleField, OneLineField and BlockField only.
type FieldSpec interface {
	fieldSpec()
}

// SimpleField paints a single line at a fixed position with a fixed size.
type SimpleField struct {
	X, Y     int
	FontSize int
}

// OneLineField paints a single line centered on the template width and on
// YCenter, shrinking the font until the line is no wider than MaxWidth.
type OneLineField struct {
	YCenter     int
	MaxWidth    int
	MaxFontSize int
	MinFontSize int
}

// BlockField paints wrapped, possibly multi-paragraph text into the band
// [YStart, YEnd], shrinking the font until the block height fits.
type BlockField struct {
	YStart      int
	YEnd        int
	MaxWidth    int
	MaxFontSize int
	MinFontSize int
	Align       Alignment
}

func (SimpleField) fieldSpec() {}
func (OneLineField) fieldSpec() {}
func (BlockField) fieldSpec() {}

// Band returns the height available to the block.
func (b BlockField) Band() int {
	return b.YEnd - b.YStart
}

// Field identifies a renderable certificate field.
type Field int

const (
	FieldName Field = iota
	FieldTitle
	FieldProgram
	FieldNumber
	FieldDate
)

// Fields lists every field in paint order.
var Fields = []Field{FieldName, FieldTitle, FieldProgram, FieldNumber, FieldDate}

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldTitle:
		return "title"
	case FieldProgram:
		return "program"
	case FieldNumber:
		return "number"
	case FieldDate:
		return "date"
	default:
		return "unknown"
	}
}

// StyleProfile is the complete layout configuration of one organization's
// template family.
type StyleProfile struct {
	Organization    Organization
	CleanTemplate   string
	StampedTemplate string

	TitleColor Color
	TextColor  Color

	MainFont      FontRef
	TitleFont     FontRef
	SecondaryFont FontRef

	Name    FieldSpec
	Title   FieldSpec
	Program FieldSpec
	Number  FieldSpec
	Date    FieldSpec
}

// Spec returns the FieldSpec configured for f.
func (p StyleProfile) Spec(f Field) FieldSpec {
	switch f {
	case FieldName:
		return p.Name
	case FieldTitle:
		return p.Title
	case FieldProgram:
		return p.Program
	case FieldNumber:
		return p.Number
	case FieldDate:
		return p.Date
	}
	return nil
}

// Font returns the font bound to f. The name uses the main font, the title
// the title font and everything else the secondary font.
func (p StyleProfile) Font(f Field) FontRef {
	switch f {
	case FieldName:
		return p.MainFont
	case FieldTitle:
		return p.TitleFont
	default:
		return p.SecondaryFont
	}
}

// Color returns the color bound to f.
func (p StyleProfile) Color(f Field) Color {
	if f == FieldTitle {
		return p.TitleColor
	}
	return p.TextColor
}
