// Package display owns the clock face: a background bitmap, the weather icon
// slot, three text regions and the backlight level.
package display

import (
	"image/color"
	"io/fs"
	"strings"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"

	"github.com/ardnew/alarmclock/errcode"
	"github.com/ardnew/alarmclock/hal"
	"github.com/ardnew/alarmclock/internal/mathx"
)

// Region identifies one of the text areas on the clock face.
type Region uint8

// Constants defining each text Region.
const (
	RegionTime Region = iota
	RegionAlarm
	RegionTemperature
	regionCount
)

func (r Region) String() string {
	switch r {
	case RegionTime:
		return "time"
	case RegionAlarm:
		return "alarm"
	case RegionTemperature:
		return "temperature"
	}
	return "unknown"
}

// TextStyle places a text region. X is the left edge of the region and Y is
// the text baseline. Width is the region width in digits; text is
// right-aligned within it.
type TextStyle struct {
	X, Y  int16
	Width int
	Color color.RGBA
	Font  tinyfont.Fonter
}

// Layout positions everything drawn by a Presenter.
type Layout struct {
	Time        TextStyle
	Alarm       TextStyle
	Temperature TextStyle

	IconX, IconY int16
}

// DefaultLayout returns the 320x240 landscape face.
func DefaultLayout() Layout {
	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	red := color.RGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}
	return Layout{
		Time:        TextStyle{X: 88, Y: 160, Width: 5, Color: white, Font: &freesans.Bold24pt7b},
		Alarm:       TextStyle{X: 210, Y: 40, Width: 5, Color: red, Font: &freesans.Bold12pt7b},
		Temperature: TextStyle{X: 150, Y: 60, Width: 6, Color: white, Font: &freesans.Regular9pt7b},
		IconX:       88,
		IconY:       20,
	}
}

func (l *Layout) style(r Region) *TextStyle {
	switch r {
	case RegionTime:
		return &l.Time
	case RegionAlarm:
		return &l.Alarm
	case RegionTemperature:
		return &l.Temperature
	}
	return nil
}

// Presenter draws the clock face. Every setter compares against the current
// value and redraws only on a change.
type Presenter struct {
	disp      hal.Display
	backlight hal.Backlight
	assets    fs.FS
	layout    Layout

	text       [regionCount]string
	background string
	icon       string
	level      float64
	leveled    bool

	cache  map[string]*bitmap
	frames int
}

// New returns a Presenter drawing onto disp. Bitmaps are read from assets.
func New(disp hal.Display, backlight hal.Backlight, assets fs.FS, layout Layout) *Presenter {
	return &Presenter{
		disp:      disp,
		backlight: backlight,
		assets:    assets,
		layout:    layout,
		cache:     map[string]*bitmap{},
	}
}

// SetText replaces the text of region r.
func (p *Presenter) SetText(r Region, s string) {
	if r >= regionCount || p.text[r] == s {
		return
	}
	p.text[r] = s
	p.Draw()
}

// Text returns the current text of region r.
func (p *Presenter) Text(r Region) string {
	if r >= regionCount {
		return ""
	}
	return p.text[r]
}

// SetBackground selects the background bitmap by file name. If it cannot be
// loaded the face is drawn on black and the error is returned.
func (p *Presenter) SetBackground(name string) error {
	if p.background == name {
		return nil
	}
	p.background = name
	_, err := p.load(name)
	p.Draw()
	return err
}

// Background returns the selected background file name.
func (p *Presenter) Background() string { return p.background }

// SetIcon shows the named bitmap in the icon slot. An empty name clears the
// slot. If the bitmap cannot be loaded the slot is cleared and the error is
// returned.
func (p *Presenter) SetIcon(name string) error {
	if p.icon == name {
		return nil
	}
	var err error
	if name != "" {
		if _, err = p.load(name); err != nil {
			name = ""
		}
	}
	if p.icon != name {
		p.icon = name
		p.Draw()
	}
	return err
}

// Icon returns the file name shown in the icon slot, or "" if it is empty.
func (p *Presenter) Icon() string { return p.icon }

// SetBacklight sets the backlight level, clamped to [0, 1].
func (p *Presenter) SetBacklight(level float64) {
	level = mathx.Clamp(level, 0, 1)
	if p.leveled && p.level == level {
		return
	}
	p.level, p.leveled = level, true
	p.backlight.SetBrightness(level)
}

// Backlight returns the last level set.
func (p *Presenter) Backlight() float64 { return p.level }

// Frames returns how many times the face has been redrawn.
func (p *Presenter) Frames() int { return p.frames }

// Draw redraws the entire face and presents it.
func (p *Presenter) Draw() {
	// no damage tracking: background, icon, then text, every time
	width, height := p.disp.Size()

	if bg, err := p.load(p.background); err == nil {
		p.blit(0, 0, bg)
	} else {
		p.fillRect(0, 0, width, height, color.RGBA{A: 0xFF})
	}

	if p.icon != "" {
		if icon, err := p.load(p.icon); err == nil {
			p.blit(p.layout.IconX, p.layout.IconY, icon)
		}
	}

	for r := Region(0); r < regionCount; r++ {
		if s := p.text[r]; s != "" {
			p.writeText(p.layout.style(r), s)
		}
	}

	p.disp.Display()
	p.frames++
}

func (p *Presenter) writeText(st *TextStyle, s string) {
	if st == nil || st.Font == nil {
		return
	}
	_, full := tinyfont.LineWidth(st.Font, strings.Repeat("0", st.Width))
	_, used := tinyfont.LineWidth(st.Font, s)
	x := st.X
	if used < full {
		x += int16(full - used)
	}
	tinyfont.WriteLine(p.disp, st.Font, x, st.Y, s, st.Color)
}

func (p *Presenter) load(name string) (*bitmap, error) {
	const op = "display load"
	if name == "" {
		return nil, errcode.New(errcode.Format, op, "no bitmap selected")
	}
	if bm, ok := p.cache[name]; ok {
		return bm, nil
	}
	if p.assets == nil {
		return nil, errcode.New(errcode.Format, op, name+": no assets")
	}
	bm, err := readBitmap(p.assets, name)
	if err != nil {
		return nil, errcode.Wrap(errcode.Format, op, err)
	}
	p.cache[name] = bm
	return bm, nil
}

func (p *Presenter) blit(x, y int16, bm *bitmap) {
	if d, ok := p.disp.(hal.BitmapDrawer); ok {
		if err := d.DrawRGBBitmap8(x, y, bm.data, bm.w, bm.h); err == nil {
			return
		}
	}
	ok, cx, cy, cw, ch := p.clipRect(x, y, bm.w, bm.h)
	if !ok {
		return
	}
	for row := cy; row < cy+ch; row++ {
		for col := cx; col < cx+cw; col++ {
			p.disp.SetPixel(col, row, bm.at(col-x, row-y))
		}
	}
}

func (p *Presenter) clipRect(x, y, w, h int16) (bool, int16, int16, int16, int16) {
	// normalize width/height to be positive
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	// ensure origin is within bounds
	sx, sy := p.disp.Size()
	if x < 0 {
		x, w = 0, w+x
	} else if x >= sx {
		return false, 0, 0, 0, 0
	}
	if y < 0 {
		y, h = 0, h+y
	} else if y >= sy {
		return false, 0, 0, 0, 0
	}
	if w <= 0 || h <= 0 {
		return false, 0, 0, 0, 0
	}
	// ensure rect bounds is within screen bounds
	if x+w > sx {
		w = sx - x
	}
	if y+h > sy {
		h = sy - y
	}
	return true, x, y, w, h
}

type filler interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

func (p *Presenter) fillRect(x, y, w, h int16, c color.RGBA) {
	var ok bool
	if ok, x, y, w, h = p.clipRect(x, y, w, h); ok {
		if f, ok := p.disp.(filler); ok && f.FillRectangle(x, y, w, h, c) == nil {
			return
		}
		for row := y; row < y+h; row++ {
			for col := x; col < x+w; col++ {
				p.disp.SetPixel(col, row, c)
			}
		}
	}
}
