//go:build !tinygo

package hal

import (
	"image/color"
	"sync"

	"tinygo.org/x/drivers"

	"github.com/ardnew/alarmclock/internal/mathx"
)

// Framebuffer is an in-memory RGB565 display with a simulated backlight.
// It is drawn by the main loop and read by the window's draw callback, so
// all access is locked.
type Framebuffer struct {
	mu       sync.Mutex
	width    int
	height   int
	buf      []uint16
	level    float64
	presents uint64
}

// NewFramebuffer returns a black framebuffer with the backlight at full.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		buf:    make([]uint16, width*height),
		level:  1,
	}
}

func (f *Framebuffer) Size() (x, y int16) { return int16(f.width), int16(f.height) }

func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.set(int(x), int(y), rgb565(c.R, c.G, c.B))
}

func (f *Framebuffer) set(x, y int, p uint16) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.buf[y*f.width+x] = p
}

// Display marks the frame as presented.
func (f *Framebuffer) Display() error {
	f.mu.Lock()
	f.presents++
	f.mu.Unlock()
	return nil
}

func (f *Framebuffer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := rgb565(c.R, c.G, c.B)
	for row := int(y); row < int(y)+int(height); row++ {
		for col := int(x); col < int(x)+int(width); col++ {
			f.set(col, row, p)
		}
	}
	return nil
}

func (f *Framebuffer) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

// DrawRGBBitmap8 copies a w*h block of big-endian RGB565 pixels.
func (f *Framebuffer) DrawRGBBitmap8(x, y int16, data []uint8, w, h int16) error {
	if len(data) < int(w)*int(h)*2 {
		return ErrShortBitmap
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	i := 0
	for row := 0; row < int(h); row++ {
		for col := 0; col < int(w); col++ {
			f.set(int(x)+col, int(y)+row, uint16(data[i])<<8|uint16(data[i+1]))
			i += 2
		}
	}
	return nil
}

// SetBrightness implements Backlight.
func (f *Framebuffer) SetBrightness(level float64) {
	f.mu.Lock()
	f.level = mathx.Clamp(level, 0, 1)
	f.mu.Unlock()
}

// Brightness returns the current backlight level.
func (f *Framebuffer) Brightness() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.level
}

// Presents returns how many frames have been presented.
func (f *Framebuffer) Presents() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presents
}

// At returns the stored colour of one pixel.
func (f *Framebuffer) At(x, y int) color.RGBA {
	f.mu.Lock()
	defer f.mu.Unlock()
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return color.RGBA{}
	}
	r, g, b := rgb888From565(f.buf[y*f.width+x])
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// SnapshotRGBA writes the frame into dst as RGBA scaled by the backlight.
// dst must hold width*height*4 bytes.
func (f *Framebuffer) SnapshotRGBA(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	scale := uint32(f.level * 255)
	for i, p := range f.buf {
		j := i * 4
		if j+3 >= len(dst) {
			return
		}
		r, g, b := rgb888From565(p)
		dst[j+0] = uint8(uint32(r) * scale / 255)
		dst[j+1] = uint8(uint32(g) * scale / 255)
		dst[j+2] = uint8(uint32(b) * scale / 255)
		dst[j+3] = 0xFF
	}
}
