package strokedtext

import (
	"image"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"outline", "outline"},
		{"width-2", "width-2"},
		{"frame.01", "frame.01"},
		{"red stroke", "red_stroke"},
		{"a/b", "a_b"},
		{"héllo", "h_llo"},
		{"", "unlabeled"},
		{"  ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueue(t *testing.T) {
	s := NewScene()
	if s.ScreenshotDir != defaultScreenshotDir {
		t.Errorf("ScreenshotDir = %q, want %q", s.ScreenshotDir, defaultScreenshotDir)
	}
	s.Screenshot("a")
	s.Screenshot("b")
	if len(s.shots) != 2 || s.shots[0] != "a" || s.shots[1] != "b" {
		t.Errorf("queue = %v, want [a b]", s.shots)
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := writePNG(path, image.NewNRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("PNG file is empty")
	}
}
