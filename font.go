package strokedtext

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// FontHandle names a font in a FontRegistry, typically by asset path.
// The empty handle selects the registry's default font.
type FontHandle string

// Font wraps an Ebitengine text/v2 face source and caches one face per size.
type Font struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// LoadFont parses TrueType or OpenType data.
func LoadFont(data []byte) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("strokedtext: failed to parse font data: %w", err)
	}
	return &Font{source: source, faces: make(map[float64]*text.GoTextFace)}, nil
}

// Face returns the face for the given pixel size.
func (f *Font) Face(size float64) *text.GoTextFace {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source, Size: size}
	f.faces[size] = face
	return face
}

// LineHeight returns the vertical distance between baselines at size.
func (f *Font) LineHeight(size float64) float64 {
	m := f.Face(size).Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// Advance returns the horizontal advance of s on a single line at size.
func (f *Font) Advance(s string, size float64) float64 {
	return text.Advance(s, f.Face(size))
}

// MeasureString returns the width and height of s at size, honouring newlines.
func (f *Font) MeasureString(s string, size float64) (width, height float64) {
	return text.Measure(s, f.Face(size), f.LineHeight(size))
}

// bundledDefault is the Go Regular font, parsed on first use.
var bundledDefault *Font

func defaultFont() *Font {
	if bundledDefault == nil {
		f, err := LoadFont(goregular.TTF)
		if err != nil {
			panic("strokedtext: bundled default font: " + err.Error())
		}
		bundledDefault = f
	}
	return bundledDefault
}

// FontRegistry resolves font handles. Unknown handles fall back to the
// default font so text always renders.
type FontRegistry struct {
	fonts    map[FontHandle]*Font
	fallback *Font
	warned   map[FontHandle]bool
	// gen increases on every registration so cached layouts can be
	// invalidated when a handle starts resolving to a different font.
	gen uint64
}

// NewFontRegistry creates an empty registry whose default is Go Regular.
func NewFontRegistry() *FontRegistry {
	return &FontRegistry{
		fonts:  make(map[FontHandle]*Font),
		warned: make(map[FontHandle]bool),
	}
}

// Register associates h with f. Registering the empty handle replaces the
// default font.
func (r *FontRegistry) Register(h FontHandle, f *Font) {
	r.gen++
	if h == "" {
		r.fallback = f
		return
	}
	r.fonts[h] = f
	delete(r.warned, h)
}

// LoadTTF parses data and registers it under h.
func (r *FontRegistry) LoadTTF(h FontHandle, data []byte) error {
	f, err := LoadFont(data)
	if err != nil {
		return fmt.Errorf("strokedtext: load font %q: %w", h, err)
	}
	r.Register(h, f)
	return nil
}

// Has reports whether h resolves to a registered font.
func (r *FontRegistry) Has(h FontHandle) bool {
	_, ok := r.fonts[h]
	return ok
}

// Default returns the font used for the empty handle and for fallbacks.
func (r *FontRegistry) Default() *Font {
	if r.fallback == nil {
		r.fallback = defaultFont()
	}
	return r.fallback
}

// Resolve returns the font for h, or the default font when h is empty or
// not registered. A missing handle is logged once until it is registered.
func (r *FontRegistry) Resolve(h FontHandle) *Font {
	if h == "" {
		return r.Default()
	}
	if f, ok := r.fonts[h]; ok {
		return f
	}
	if !r.warned[h] {
		r.warned[h] = true
		Logger().Warn("strokedtext: font not loaded, using default", "font", string(h))
	}
	return r.Default()
}
