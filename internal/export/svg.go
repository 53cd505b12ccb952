package export

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/san-kum/lorenz/internal/engine"
)

// SVG is an engine.Surface that records a frame as vector shapes.
type SVG struct {
	Width, Height int
	Background    color.RGBA
	pen           color.RGBA
	body          strings.Builder
	shapes        int
}

var _ engine.Surface = (*SVG)(nil)

func NewSVG(width, height int) *SVG {
	return &SVG{Width: width, Height: height, Background: engine.Black, pen: engine.White}
}

func (s *SVG) SetDrawColor(c color.RGBA) { s.pen = c }

func (s *SVG) DrawPoint(x, y int) {
	fmt.Fprintf(&s.body, `<rect x="%d" y="%d" width="1" height="1" fill="%s"/>`+"\n", x, y, hex(s.pen))
	s.shapes++
}

func (s *SVG) DrawLine(x1, y1, x2, y2 int) {
	fmt.Fprintf(&s.body, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s"/>`+"\n", x1, y1, x2, y2, hex(s.pen))
	s.shapes++
}

// Shapes is the number of points and lines recorded.
func (s *SVG) Shapes() int { return s.shapes }

// WriteTo writes the complete SVG document.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.Width, s.Height, s.Width, s.Height, hex(s.Background))
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>\n")
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
