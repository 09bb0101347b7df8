package background

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/shapematch/internal/core"
	"github.com/vovakirdan/shapematch/internal/shapes"
)

func writePNG(t *testing.T, path string, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 30, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 30; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bg.jpg")

	_, err := Load(path, 900, 600)
	var rErr *ResourceLoadError
	if !errors.As(err, &rErr) {
		t.Fatalf("Load() error = %v, expected *ResourceLoadError", err)
	}
	if rErr.Path != path {
		t.Errorf("Path = %q, expected %q", rErr.Path, path)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("ResourceLoadError should unwrap to fs.ErrNotExist")
	}
}

func TestLoadUndecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bg.jpg")
	if err := os.WriteFile(path, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path, 900, 600)
	var rErr *ResourceLoadError
	if !errors.As(err, &rErr) {
		t.Fatalf("Load() error = %v, expected *ResourceLoadError", err)
	}
}

func TestLoadOrSolidFallback(t *testing.T) {
	bg, err := LoadOrSolid(filepath.Join(t.TempDir(), "missing.png"), 900, 600)
	if err == nil {
		t.Error("LoadOrSolid should report the load failure")
	}
	if bg == nil || !bg.IsSolid() {
		t.Error("LoadOrSolid should fall back to a solid canvas")
	}

	bg, err = LoadOrSolid("", 900, 600)
	if err != nil || !bg.IsSolid() {
		t.Errorf("empty path should give a solid canvas without error, got %v", err)
	}
}

func TestLoadAndRenderShading(t *testing.T) {
	path := filepath.Join(t.TempDir(), "white.png")
	writePNG(t, path, color.White)

	bg, err := Load(path, 900, 600)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if bg.IsSolid() {
		t.Fatal("loaded background should not be solid")
	}

	screen := core.NewScreen(18, 12)
	bg.Render(shapes.NewCanvas(screen, 900, 600))

	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.Get(x, y) != '▓' {
				t.Fatalf("white image should shade as '▓', got %q at (%d, %d)", screen.Get(x, y), x, y)
			}
		}
	}
}

func TestRenderDarkAndSolid(t *testing.T) {
	dark := image.NewRGBA(image.Rect(0, 0, 4, 4)) // all black
	screen := core.NewScreen(10, 10)
	FromImage(dark, 100, 100).Render(shapes.NewCanvas(screen, 100, 100))
	if screen.Get(5, 5) != ' ' {
		t.Errorf("black image should leave cells blank, got %q", screen.Get(5, 5))
	}

	Solid().Render(shapes.NewCanvas(screen, 100, 100))
	var nilBG *Background
	nilBG.Render(shapes.NewCanvas(screen, 100, 100)) // must not panic
}
