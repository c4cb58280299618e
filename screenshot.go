package strokedtext

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultScreenshotDir = "screenshots"

// Screenshot queues a capture of the next drawn frame. The PNG is written to
// ScreenshotDir as <timestamp>_<label>.png once Draw finishes.
func (s *Scene) Screenshot(label string) {
	s.shots = append(s.shots, label)
}

// flushScreenshots writes one PNG per queued label. Called at the end of Draw.
func (s *Scene) flushScreenshots(screen *ebiten.Image) {
	if len(s.shots) == 0 {
		return
	}
	defer func() { s.shots = s.shots[:0] }()

	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		Logger().Error("strokedtext: screenshot dir", "dir", s.ScreenshotDir, "err", err)
		return
	}

	img := unpremultiply(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range s.shots {
		path := filepath.Join(s.ScreenshotDir, stamp+"_"+sanitizeLabel(label)+".png")
		if err := writePNG(path, img); err != nil {
			Logger().Error("strokedtext: screenshot", "label", label, "err", err)
			continue
		}
		Logger().Debug("strokedtext: screenshot written", "path", path)
	}
}

// unpremultiply reads screen into a straight-alpha image.
func unpremultiply(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)
	for i := 0; i < len(img.Pix); i += 4 {
		a := int(img.Pix[i+3])
		if a == 0 || a == 255 {
			continue
		}
		for j := 0; j < 3; j++ {
			img.Pix[i+j] = uint8(min(int(img.Pix[i+j])*255/a, 255))
		}
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("strokedtext: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("strokedtext: encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps [A-Za-z0-9.-] and replaces everything else with '_'.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
