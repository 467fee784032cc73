//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"image/color"
	"testing"
)

func TestFramebufferDrawing(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	if w, h := fb.Size(); w != 4 || h != 3 {
		t.Fatalf("Size = %d,%d", w, h)
	}

	red := color.RGBA{R: 0xFF, A: 0xFF}
	fb.SetPixel(1, 1, red)
	fb.SetPixel(9, 9, red) // ignored
	if got := fb.At(1, 1); got != red {
		t.Fatalf("At(1,1) = %#v", got)
	}

	// one big-endian RGB565 pure blue pixel at (3,2)
	if err := fb.DrawRGBBitmap8(3, 2, []uint8{0x00, 0x1F}, 1, 1); err != nil {
		t.Fatalf("DrawRGBBitmap8: %v", err)
	}
	if got := fb.At(3, 2); got != (color.RGBA{B: 0xFF, A: 0xFF}) {
		t.Fatalf("At(3,2) = %#v", got)
	}
	if err := fb.DrawRGBBitmap8(0, 0, []uint8{0x00}, 1, 1); !errors.Is(err, ErrShortBitmap) {
		t.Fatalf("short bitmap: err = %v", err)
	}

	_ = fb.Display()
	_ = fb.Display()
	if fb.Presents() != 2 {
		t.Fatalf("Presents = %d", fb.Presents())
	}
}

func TestFramebufferBacklightScalesSnapshot(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	fb.SetPixel(0, 0, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})

	px := make([]byte, 4)
	fb.SnapshotRGBA(px)
	if px[0] != 0xFF {
		t.Fatalf("full brightness red = %#x", px[0])
	}

	fb.SetBrightness(0.01)
	fb.SnapshotRGBA(px)
	if px[0] != 2 {
		t.Fatalf("dimmed red = %d", px[0])
	}

	fb.SetBrightness(4)
	if fb.Brightness() != 1 {
		t.Fatalf("brightness not clamped: %v", fb.Brightness())
	}
}

func TestSimLightStepClamps(t *testing.T) {
	l := NewSimLight(100)
	if got := l.Step(-SimLightStep); got != 0 {
		t.Fatalf("Step down = %d", got)
	}
	l = NewSimLight(SimLightMax + 5)
	if got := l.Read(); got != SimLightMax {
		t.Fatalf("Read = %d", got)
	}
}

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	n := 0
	err := RunHeadless(context.Background(), func(context.Context) error {
		n++
		return nil
	}, HeadlessConfig{Hz: 1000, Ticks: 3})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if n != 3 {
		t.Fatalf("steps = %d, want 3", n)
	}
}
