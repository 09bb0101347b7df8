// Package background loads the canvas backdrop image and shades it onto
// the terminal as block characters.
package background

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/lucasb-eyer/go-colorful"
	_ "golang.org/x/image/bmp"  // BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/vovakirdan/shapematch/internal/core"
	"github.com/vovakirdan/shapematch/internal/shapes"
)

// ResourceLoadError reports a background image that could not be read or decoded.
type ResourceLoadError struct {
	Path string
	Err  error
}

func (e *ResourceLoadError) Error() string {
	return fmt.Sprintf("background: cannot load %s: %v", e.Path, e.Err)
}

func (e *ResourceLoadError) Unwrap() error {
	return e.Err
}

// Shade ramp from dark to light.
var ramp = []rune{' ', '░', '▒', '▓'}

// Background is the canvas backdrop. The zero value is a solid canvas.
type Background struct {
	img image.Image // Scaled to canvas size; nil for solid
}

// Solid returns a background with no image.
func Solid() *Background {
	return &Background{}
}

// Load reads the image at path and scales it to canvasW×canvasH.
// Failures are returned as *ResourceLoadError.
func Load(path string, canvasW, canvasH int) (*Background, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ResourceLoadError{Path: path, Err: err}
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, &ResourceLoadError{Path: path, Err: err}
	}

	return FromImage(src, canvasW, canvasH), nil
}

// LoadOrSolid loads path, falling back to a solid canvas. An empty path
// yields a solid canvas and no error. The error, if any, is returned
// alongside the fallback so the caller can report it.
func LoadOrSolid(path string, canvasW, canvasH int) (*Background, error) {
	if path == "" {
		return Solid(), nil
	}
	bg, err := Load(path, canvasW, canvasH)
	if err != nil {
		return Solid(), err
	}
	return bg, nil
}

// FromImage scales src to the canvas size.
func FromImage(src image.Image, canvasW, canvasH int) *Background {
	if canvasW <= 0 || canvasH <= 0 {
		return Solid()
	}
	dst := image.NewRGBA(image.Rect(0, 0, canvasW, canvasH))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return &Background{img: dst}
}

// IsSolid reports whether the background has no image.
func (b *Background) IsSolid() bool {
	return b == nil || b.img == nil
}

// Render shades every cell of the canvas by the lightness of the image
// pixel under the cell center.
func (b *Background) Render(c *shapes.Canvas) {
	if b.IsSolid() {
		return
	}
	view := c.Viewport()
	screen := c.Screen()
	for row := 0; row < view.Rows; row++ {
		for col := 0; col < view.Cols; col++ {
			p := view.ToCanvas(col, row)
			r := b.shade(p)
			if r != ' ' {
				screen.Set(col, row, r, core.ColorGray)
			}
		}
	}
}

// shade maps the pixel at p to a ramp rune.
func (b *Background) shade(p core.Point) rune {
	cc, ok := colorful.MakeColor(b.img.At(p.X, p.Y))
	if !ok {
		return ' '
	}
	l, _, _ := cc.Lab()
	i := int(l * float64(len(ramp)))
	return ramp[core.Clamp(i, 0, len(ramp)-1)]
}
