package strokedtext

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw submission time.
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorRed         = Color{1, 0, 0, 1}
	ColorTransparent = Color{}
)

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: clampByte(c.R * c.A),
		G: clampByte(c.G * c.A),
		B: clampByte(c.B * c.A),
		A: clampByte(c.A),
	}
}

func clampByte(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Vec2 is a 2D vector used for sizes and anchor fractions.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a local translation. Z only orders drawing: lower Z draws first.
type Vec3 struct {
	X, Y, Z float64
}

// NodeID identifies a node in a host store. Zero is never a valid ID.
type NodeID uint64

// Anchor selects which point of a text block sits on the node origin.
// The zero value is AnchorCenter.
type Anchor uint8

const (
	AnchorCenter       Anchor = iota // middle of the block
	AnchorTopLeft                    // top-left corner
	AnchorTopCenter                  // middle of the top edge
	AnchorTopRight                   // top-right corner
	AnchorCenterLeft                 // middle of the left edge
	AnchorCenterRight                // middle of the right edge
	AnchorBottomLeft                 // bottom-left corner
	AnchorBottomCenter               // middle of the bottom edge
	AnchorBottomRight                // bottom-right corner
)

// Fraction returns the anchor point as a fraction of the block size, with the
// origin at the top-left and Y increasing downward.
func (a Anchor) Fraction() Vec2 {
	switch a {
	case AnchorTopLeft:
		return Vec2{0, 0}
	case AnchorTopCenter:
		return Vec2{0.5, 0}
	case AnchorTopRight:
		return Vec2{1, 0}
	case AnchorCenterLeft:
		return Vec2{0, 0.5}
	case AnchorCenterRight:
		return Vec2{1, 0.5}
	case AnchorBottomLeft:
		return Vec2{0, 1}
	case AnchorBottomCenter:
		return Vec2{0.5, 1}
	case AnchorBottomRight:
		return Vec2{1, 1}
	default:
		return Vec2{0.5, 0.5}
	}
}

// TextAlign controls horizontal alignment of lines within a text block.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // align lines to the left edge (default)
	TextAlignCenter                  // center lines horizontally
	TextAlignRight                   // align lines to the right edge
)

// LineBreak controls where lines wrap when a wrap width is set.
type LineBreak uint8

const (
	LineBreakWordBoundary LineBreak = iota // wrap at Unicode line-break opportunities (default)
	LineBreakAnyCharacter                  // wrap between any two grapheme clusters
	LineBreakNoWrap                        // only break on explicit newlines
)

// NodeType distinguishes the role of a Node in the scene.
type NodeType uint8

const (
	NodeTypeContainer   NodeType = iota // group node with no visual output
	NodeTypeStrokedText                 // carries a StrokedText declaration
	NodeTypeText                        // renders one TextChild
)

// Visibility mirrors the host's visibility field on a bundle.
type Visibility uint8

const (
	VisibilityInherited Visibility = iota // visible when the parent is (default)
	VisibilityHidden                      // never drawn, nor are its children
	VisibilityVisible                     // explicitly visible
)
