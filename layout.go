package strokedtext

import (
	"strings"

	"github.com/rivo/uniseg"
)

// textLine is one laid-out line of a text child.
type textLine struct {
	content string
	width   float64
	x       float64 // alignment offset within the block
}

// textLayout is the cached line layout of a text child.
type textLayout struct {
	lines      []textLine
	width      float64 // block width used for alignment and anchoring
	height     float64
	lineHeight float64
}

// layoutText breaks tc.Content into lines using font f. Explicit newlines
// always break. When tc.WrapWidth > 0, lines also wrap according to
// tc.LineBreak.
func layoutText(tc *TextChild, f *Font) textLayout {
	size := tc.Style.Size
	lo := textLayout{lineHeight: f.LineHeight(size)}

	measure := func(s string) float64 { return f.Advance(s, size) }
	wrap := tc.WrapWidth > 0 && tc.LineBreak != LineBreakNoWrap

	for _, para := range strings.Split(tc.Content, "\n") {
		if !wrap {
			lo.lines = append(lo.lines, textLine{content: para, width: measure(para)})
			continue
		}
		var segs []string
		if tc.LineBreak == LineBreakAnyCharacter {
			segs = graphemeSegments(para)
		} else {
			segs = lineSegments(para)
		}
		lo.lines = appendWrapped(lo.lines, segs, tc.WrapWidth, measure)
	}

	var maxW float64
	for _, l := range lo.lines {
		if l.width > maxW {
			maxW = l.width
		}
	}
	lo.width = maxW
	if wrap {
		lo.width = tc.WrapWidth
	}
	lo.height = float64(len(lo.lines)) * lo.lineHeight

	for i := range lo.lines {
		l := &lo.lines[i]
		switch tc.Align {
		case TextAlignLeft:
			// No offset needed for left alignment.
		case TextAlignCenter:
			l.x = (lo.width - l.width) / 2
		case TextAlignRight:
			l.x = lo.width - l.width
		}
	}
	return lo
}

// anchorOffset returns the translation that places the block's anchor point
// on the node origin.
func (lo *textLayout) anchorOffset(a Anchor) (float64, float64) {
	frac := a.Fraction()
	return -frac.X * lo.width, -frac.Y * lo.height
}

// appendWrapped packs segments greedily into lines no wider than width.
// A segment wider than width on its own still gets a line.
func appendWrapped(lines []textLine, segs []string, width float64, measure func(string) float64) []textLine {
	var cur strings.Builder
	flush := func() {
		s := strings.TrimRight(cur.String(), " \t")
		lines = append(lines, textLine{content: s, width: measure(s)})
		cur.Reset()
	}
	for _, seg := range segs {
		candidate := strings.TrimRight(cur.String()+seg, " \t")
		if cur.Len() > 0 && measure(candidate) > width {
			flush()
		}
		cur.WriteString(seg)
	}
	flush()
	return lines
}

// lineSegments splits s at Unicode (UAX #14) line-break opportunities.
func lineSegments(s string) []string {
	var segs []string
	state := -1
	for len(s) > 0 {
		var seg string
		seg, s, _, state = uniseg.FirstLineSegmentInString(s, state)
		segs = append(segs, seg)
	}
	return segs
}

// graphemeSegments splits s into user-perceived characters.
func graphemeSegments(s string) []string {
	var segs []string
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		segs = append(segs, cluster)
	}
	return segs
}
