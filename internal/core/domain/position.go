package domain

import "strings"

// Margin is the distance in pixels kept from each relevant image edge
const Margin = 10

// Position names where the watermark is anchored on the image
type Position string

const (
	PositionLeftTop     Position = "left_top"
	PositionRightTop    Position = "right_top"
	PositionLeftBottom  Position = "left_bottom"
	PositionRightBottom Position = "right_bottom"
	PositionCenter      Position = "center"
)

// DefaultPosition is the position suggested to the user when none is entered
const DefaultPosition = PositionRightBottom

// Positions lists the named positions in display order
var Positions = []Position{
	PositionLeftTop,
	PositionRightTop,
	PositionLeftBottom,
	PositionRightBottom,
	PositionCenter,
}

// ParsePosition normalizes user input. Unknown names are kept as-is and
// place the text like left_top.
func ParsePosition(s string) Position {
	return Position(strings.TrimSpace(s))
}

// IsNamed reports whether p is one of the named positions
func (p Position) IsNamed() bool {
	_, ok := placementRules[p]
	return ok
}

func (p Position) String() string {
	return string(p)
}

// Size is a width/height pair in pixels
type Size struct {
	Width  int
	Height int
}

// Placement is the top-left coordinate of the text box on the image
type Placement struct {
	X int
	Y int
}

type placementRule func(img, text Size) Placement

// Coordinates may go negative when the text is larger than the image.
var placementRules = map[Position]placementRule{
	PositionLeftTop: func(img, text Size) Placement {
		return Placement{X: Margin, Y: Margin}
	},
	PositionRightTop: func(img, text Size) Placement {
		return Placement{X: img.Width - text.Width - Margin, Y: Margin}
	},
	PositionLeftBottom: func(img, text Size) Placement {
		return Placement{X: Margin, Y: img.Height - text.Height - Margin}
	},
	PositionRightBottom: func(img, text Size) Placement {
		return Placement{X: img.Width - text.Width - Margin, Y: img.Height - text.Height - Margin}
	},
	PositionCenter: func(img, text Size) Placement {
		return Placement{X: floorHalf(img.Width - text.Width), Y: floorHalf(img.Height - text.Height)}
	},
}

// Place computes where a text box of the given size goes on an image
func Place(p Position, img, text Size) Placement {
	rule, ok := placementRules[p]
	if !ok {
		rule = placementRules[PositionLeftTop]
	}
	return rule(img, text)
}

// floorHalf divides by two rounding toward negative infinity
func floorHalf(n int) int {
	if n < 0 {
		return -((-n + 1) / 2)
	}
	return n / 2
}
