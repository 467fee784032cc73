//go:build tinygo && pyportal

package hal

import (
	"machine"

	"tinygo.org/x/drivers/touch/resistive"
)

type resistiveTouch struct {
	dev *resistive.FourWire
	cal Calibration
}

func newResistiveTouch(cal Calibration) *resistiveTouch {
	dev := new(resistive.FourWire)
	dev.Configure(&resistive.FourWireConfig{
		YP: machine.TOUCH_YD,
		YM: machine.TOUCH_YU,
		XP: machine.TOUCH_XR,
		XM: machine.TOUCH_XL,
	})
	return &resistiveTouch{dev: dev, cal: cal}
}

func (t *resistiveTouch) Poll() (TouchPoint, bool) {
	p := t.dev.ReadTouchPoint()
	return t.cal.Apply(p.X, p.Y, p.Z)
}
