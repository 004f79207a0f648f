package colorspec

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Parse converts a color spec into an opaque color.
// Accepted forms are SVG/CSS color names ("red", "DarkOrange") and hex
// triplets ("#f00", "#FF0000").
func Parse(spec string) (color.Color, error) {
	s := strings.TrimSpace(spec)
	if s == "" {
		return nil, fmt.Errorf("empty color")
	}

	if strings.HasPrefix(s, "#") {
		if len(s) != 4 && len(s) != 7 {
			return nil, fmt.Errorf("unknown color %q", spec)
		}
		c, err := colorful.Hex(strings.ToLower(s))
		if err != nil {
			return nil, fmt.Errorf("unknown color %q", spec)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	}

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("unknown color %q", spec)
}

// Valid reports whether spec can be parsed
func Valid(spec string) bool {
	_, err := Parse(spec)
	return err == nil
}
