//go:build tinygo && pyportal

package hal

import (
	"io/fs"
	"machine"

	"tinygo.org/x/drivers/ili9341"
)

// Pins not named by the board package.
const (
	lightSensorPin   = machine.PA07 // LIGHT
	speakerEnablePin = machine.PA27 // SPEAKER_ENABLE
)

type pyPortal struct {
	logger    *printLogger
	display   *ili9341.Device
	backlight *pwmBacklight
	touch     *resistiveTouch
	light     *adcLight
	audio     *dacAudio
}

// New returns the PyPortal HAL implementation. Sound assets are read from
// assets.
func New(assets fs.FS) HAL {
	display := ili9341.NewParallel(
		machine.LCD_DATA0,
		machine.TFT_WR,
		machine.TFT_DC,
		machine.TFT_CS,
		machine.TFT_RESET,
		machine.TFT_RD,
	)
	display.Configure(ili9341.Config{})
	display.SetRotation(ili9341.Rotation270)

	machine.InitADC()

	logger := &printLogger{}
	return &pyPortal{
		logger:    logger,
		display:   display,
		backlight: newPWMBacklight(machine.TFT_BACKLIGHT),
		touch:     newResistiveTouch(DefaultCalibration),
		light:     newADCLight(lightSensorPin),
		audio:     newDACAudio(assets, speakerEnablePin, logger),
	}
}

func (h *pyPortal) Logger() Logger       { return h.logger }
func (h *pyPortal) Display() Display     { return h.display }
func (h *pyPortal) Backlight() Backlight { return h.backlight }
func (h *pyPortal) Touch() TouchSource   { return h.touch }
func (h *pyPortal) Light() LightSensor   { return h.light }
func (h *pyPortal) Audio() AudioPlayer   { return h.audio }

type printLogger struct{}

func (printLogger) WriteLineString(s string) { println(s) }

type adcLight struct {
	adc machine.ADC
}

func newADCLight(pin machine.Pin) *adcLight {
	adc := machine.ADC{Pin: pin}
	adc.Configure(machine.ADCConfig{})
	return &adcLight{adc: adc}
}

func (l *adcLight) Read() int { return int(l.adc.Get()) }

// pwmBacklight dims the panel with TCC0. If the pin has no channel on that
// timer, the backlight falls back to on/off.
type pwmBacklight struct {
	pin machine.Pin
	ch  uint8
	top uint32
	pwm bool
}

func newPWMBacklight(pin machine.Pin) *pwmBacklight {
	b := &pwmBacklight{pin: pin}
	if err := machine.TCC0.Configure(machine.PWMConfig{Period: 1e9 / 1000}); err == nil {
		if ch, err := machine.TCC0.Channel(pin); err == nil {
			b.ch, b.top, b.pwm = ch, machine.TCC0.Top(), true
		}
	}
	if !b.pwm {
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	}
	b.SetBrightness(1)
	return b
}

func (b *pwmBacklight) SetBrightness(level float64) {
	if !b.pwm {
		b.pin.Set(level > 0)
		return
	}
	machine.TCC0.Set(b.ch, uint32(level*float64(b.top)))
}
