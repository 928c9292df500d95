package imageload

import (
	"bytes"
	"image"
	"image/color"
	"strings"

	// Decoders for the formats image.Decode should recognise.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/persona/internal/ui/theme"
)

// Glyphs shown in place of an image.
const (
	GlyphLoading = "▨"
	GlyphFailure = "⊗"
	GlyphCorrupt = "⊘"
)

// View renders a load state. A successful body is decoded at most once per
// View; decode failures only affect what is drawn, never the State.
type View struct {
	decoded   bool
	img       image.Image
	decodeErr error
}

// Render draws s into a width x height cell area.
func (v *View) Render(s State, width, height int) string {
	switch s.Status {
	case StatusLoading:
		return renderGlyph(GlyphLoading, "loading image", theme.TextDim, width, height)
	case StatusFailure:
		return renderGlyph(GlyphFailure, "image unavailable", theme.Error, width, height)
	}

	if !v.decoded {
		v.img, v.decodeErr = Decode(s.Data)
		v.decoded = true
	}
	if v.decodeErr != nil {
		return renderGlyph(GlyphCorrupt, "image data unreadable", theme.Accent, width, height)
	}
	return Thumbnail(v.img, width, height)
}

// Decode decodes image bytes in any registered format.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// Thumbnail draws img with half-block characters, two pixel rows per cell,
// sampled nearest-neighbour to width x height cells.
func Thumbnail(img image.Image, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	b := img.Bounds()
	if b.Empty() {
		return ""
	}

	rows := height * 2
	lines := make([]string, 0, height)
	for cy := 0; cy < height; cy++ {
		var line strings.Builder
		for cx := 0; cx < width; cx++ {
			x := b.Min.X + cx*b.Dx()/width
			top := img.At(x, b.Min.Y+(cy*2)*b.Dy()/rows)
			bottom := img.At(x, b.Min.Y+(cy*2+1)*b.Dy()/rows)
			line.WriteString(lipgloss.NewStyle().
				Foreground(top).
				Background(bottom).
				Render("▀"))
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

func renderGlyph(glyph, caption string, fg color.Color, width, height int) string {
	content := lipgloss.NewStyle().Foreground(fg).Bold(true).Render(glyph) + "\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(caption)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(lipgloss.Place(max(width-2, 0), max(height-2, 0), lipgloss.Center, lipgloss.Center, content))
}
