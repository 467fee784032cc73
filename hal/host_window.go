//go:build !tinygo && cgo

package hal

import (
	"context"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunWindow opens a desktop window that shows the framebuffer, turns mouse
// presses into touches and the Up/Down arrow keys into light level changes.
// step is called once per frame. It blocks until the window closes.
func RunWindow(ctx context.Context, h *Host, step func(context.Context) error) error {
	g := &hostGame{ctx: ctx, h: h, step: step}
	ebiten.SetWindowTitle("alarmclock")
	ebiten.SetWindowSize(h.fb.width*2, h.fb.height*2)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	ctx   context.Context
	h     *Host
	step  func(context.Context) error
	pix   []byte
	fbImg *ebiten.Image
}

func (g *hostGame) Update() error {
	if err := g.ctx.Err(); err != nil {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	g.h.touch.set(TouchPoint{X: int16(x), Y: int16(y)},
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		v := g.h.light.Step(SimLightStep)
		g.h.logger.WriteLineString("info: light " + strconv.Itoa(v))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		v := g.h.light.Step(-SimLightStep)
		g.h.logger.WriteLineString("info: light " + strconv.Itoa(v))
	}

	if g.step != nil {
		if err := g.step(g.ctx); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil {
		g.pix = make([]byte, fb.width*fb.height*4)
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}
	fb.SnapshotRGBA(g.pix)
	g.fbImg.WritePixels(g.pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
