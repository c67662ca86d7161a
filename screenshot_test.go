package starburst

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"after-click", "after-click"},
		{"v1.2", "v1.2"},
		{"a b/c", "a_b_c"},
		{" padded ", "padded"},
		{"../escape", ".._escape"},
		{"ünï", "_n_"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		128, 64, 0, 128, // half alpha
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)
	want := []byte{
		255, 127, 0, 128,
		10, 20, 30, 255,
		0, 0, 0, 0,
	}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Errorf("Pix[%d] = %d, want %d", i, img.Pix[i], want[i])
		}
	}
}

func TestUnpremultiply_Clamps(t *testing.T) {
	img := unpremultiply([]byte{200, 0, 0, 100}, 1, 1)
	if img.Pix[0] != 255 {
		t.Errorf("R = %d, want 255", img.Pix[0])
	}
}

func TestWritePNG(t *testing.T) {
	img := unpremultiply([]byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 255, 255,
	}, 2, 2)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := writePNG(path, img); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := decoded.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("bounds = %v", b)
	}
	r, g, _, _ := decoded.At(0, 0).RGBA()
	if r>>8 != 255 || g != 0 {
		t.Errorf("pixel (0,0) = %v", decoded.At(0, 0))
	}
}

func TestWritePNG_BadPath(t *testing.T) {
	img := unpremultiply(nil, 1, 1)
	if err := writePNG(filepath.Join(t.TempDir(), "missing", "out.png"), img); err == nil {
		t.Error("expected error for a missing directory")
	}
}

func TestScreenshotQueue(t *testing.T) {
	s := NewSky(NewRect(Vec2{}, 100, 100))
	s.Screenshot("first")
	s.Screenshot("second")
	got := s.PendingScreenshots()
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("queue = %v", got)
	}
}
