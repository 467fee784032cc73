package display

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"

	"golang.org/x/image/bmp"
)

// bitmap is a decoded image held as big-endian RGB565, the layout the panel
// driver accepts in one transfer.
type bitmap struct {
	w, h int16
	data []uint8
}

func readBitmap(fsys fs.FS, name string) (*bitmap, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return newBitmap(img)
}

func newBitmap(img image.Image) (*bitmap, error) {
	b := img.Bounds()
	if b.Dx() > 0x7FFF || b.Dy() > 0x7FFF {
		return nil, fmt.Errorf("bitmap too large: %dx%d", b.Dx(), b.Dy())
	}
	bm := &bitmap{
		w:    int16(b.Dx()),
		h:    int16(b.Dy()),
		data: make([]uint8, 0, b.Dx()*b.Dy()*2),
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			p := rgb565(c.R, c.G, c.B)
			bm.data = append(bm.data, uint8(p>>8), uint8(p))
		}
	}
	return bm, nil
}

// at returns the pixel at (x, y) relative to the bitmap origin.
func (bm *bitmap) at(x, y int16) color.RGBA {
	if x < 0 || x >= bm.w || y < 0 || y >= bm.h {
		return color.RGBA{}
	}
	i := (int(y)*int(bm.w) + int(x)) * 2
	p := uint16(bm.data[i])<<8 | uint16(bm.data[i+1])
	r, g, b := uint8(p>>11)&0x1F, uint8(p>>5)&0x3F, uint8(p)&0x1F
	return color.RGBA{R: r<<3 | r>>2, G: g<<2 | g>>4, B: b<<3 | b>>2, A: 0xFF}
}

func rgb565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}
