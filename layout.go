package gocert

import (
	"strings"

	"golang.org/x/image/font"
)

// Spacing holds the vertical gaps used when stacking wrapped lines.
type Spacing struct {
	// Line is the gap between consecutive lines, in pixels.
	Line int
	// Paragraph is the extra gap added between paragraphs, on top of Line.
	Paragraph int
}

// DefaultSpacing is the spacing the reference templates were designed with.
var DefaultSpacing = Spacing{Line: 13, Paragraph: 13}

// Line is one wrapped line together with its measured ink box.
type Line struct {
	Text string
	TextMetrics
}

// Layout is the result of laying out one field at one font size.
type Layout struct {
	// Size is the font size in pixels the lines were measured with.
	Size int
	// Paragraphs holds the wrapped lines of each non-empty paragraph.
	Paragraphs [][]Line
	// Height is the total block height including spacing.
	Height int
}

// Lines returns all lines in paint order.
func (l Layout) Lines() []Line {
	var out []Line
	for _, p := range l.Paragraphs {
		out = append(out, p...)
	}
	return out
}

// MaxWidth returns the width of the widest line.
func (l Layout) MaxWidth() int {
	w := 0
	for _, p := range l.Paragraphs {
		for _, line := range p {
			if line.Width > w {
				w = line.Width
			}
		}
	}
	return w
}

// normalizeBreaks converts CRLF and lone CR line endings to LF.
func normalizeBreaks(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// SplitParagraphs splits text on explicit line breaks. Paragraphs holding
// only whitespace are skipped.
func SplitParagraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(normalizeBreaks(text), "\n") {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// WrapToWidth greedily wraps text into lines no wider than maxWidth. Each
// paragraph is wrapped independently. Words are appended to the current
// line while the measured line stays within maxWidth; a word that is wider
// than maxWidth on its own still gets a line of its own.
func WrapToWidth(face font.Face, text string, maxWidth int) [][]Line {
	var out [][]Line
	for _, p := range SplitParagraphs(text) {
		out = append(out, wrapParagraph(face, p, maxWidth))
	}
	return out
}

func wrapParagraph(face font.Face, paragraph string, maxWidth int) []Line {
	var lines []Line
	var current []string
	var currentMetrics TextMetrics

	for _, word := range strings.Fields(paragraph) {
		candidate := strings.Join(append(current, word), " ")
		m := Measure(face, candidate)
		if m.Width <= maxWidth {
			current = append(current, word)
			currentMetrics = m
			continue
		}
		if len(current) > 0 {
			lines = append(lines, Line{Text: strings.Join(current, " "), TextMetrics: currentMetrics})
			current = []string{word}
			currentMetrics = Measure(face, word)
			continue
		}
		lines = append(lines, Line{Text: word, TextMetrics: m})
	}
	if len(current) > 0 {
		lines = append(lines, Line{Text: strings.Join(current, " "), TextMetrics: currentMetrics})
	}
	return lines
}

// BlockHeight returns the stacked height of paragraphs: every line's ink
// height plus sp.Line between lines, plus sp.Paragraph between paragraphs.
func BlockHeight(paragraphs [][]Line, sp Spacing) int {
	h := 0
	n := 0
	for i, p := range paragraphs {
		if i > 0 && len(p) > 0 && n > 0 {
			h += sp.Paragraph
		}
		for _, line := range p {
			h += line.Height + sp.Line
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return h - sp.Line
}

// LayoutBlock wraps text at maxWidth with face and measures the block.
func LayoutBlock(face font.Face, size int, text string, maxWidth int, sp Spacing) Layout {
	paragraphs := WrapToWidth(face, text, maxWidth)
	return Layout{
		Size:       size,
		Paragraphs: paragraphs,
		Height:     BlockHeight(paragraphs, sp),
	}
}

// LayoutLine lays text out as a single unwrapped line. Line breaks and
// whitespace runs collapse to single spaces.
func LayoutLine(face font.Face, size int, text string) Layout {
	joined := strings.Join(strings.Fields(text), " ")
	if joined == "" {
		return Layout{Size: size}
	}
	line := Line{Text: joined, TextMetrics: Measure(face, joined)}
	return Layout{
		Size:       size,
		Paragraphs: [][]Line{{line}},
		Height:     line.Height,
	}
}
