// Package weather fetches the current conditions and puts the icon and
// temperature on the display.
package weather

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/ardnew/alarmclock/errcode"
	"github.com/ardnew/alarmclock/model"
)

// AbsoluteZero is 0 °C in Kelvin.
const AbsoluteZero = 273.15

// Report is the part of a response the clock displays.
type Report struct {
	Icon   string  // OpenWeatherMap icon id, e.g. "04n"
	Kelvin float64 // temperature
}

// Parse decodes a current-weather response. The first weather entry must
// carry an icon and main.temp must be present; anything else is a format
// error.
func Parse(body []byte) (Report, error) {
	const op = "weather parse"

	var response struct {
		Weather []struct {
			Icon string `json:"icon"`
		} `json:"weather"`
		Main struct {
			Temp *float64 `json:"temp"`
		} `json:"main"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return Report{}, errcode.Wrap(errcode.Format, op, err)
	}
	if len(response.Weather) == 0 || response.Weather[0].Icon == "" {
		return Report{}, errcode.New(errcode.Format, op, "missing weather[0].icon")
	}
	if response.Main.Temp == nil {
		return Report{}, errcode.New(errcode.Format, op, "missing main.temp")
	}
	return Report{Icon: response.Weather[0].Icon, Kelvin: *response.Main.Temp}, nil
}

// Convert returns kelvin in the given units, unrounded.
func Convert(kelvin float64, units model.Units) float64 {
	c := kelvin - AbsoluteZero
	if units == model.Fahrenheit {
		return c*9/5 + 32
	}
	return c
}

// FormatTemperature rounds kelvin in units to the nearest degree and appends
// the unit letter, e.g. "27 C".
func FormatTemperature(kelvin float64, units model.Units) string {
	return fmt.Sprintf("%d %s", int(math.Round(Convert(kelvin, units))), units.Suffix())
}

// IconFile returns the bitmap name for an icon id.
func IconFile(icon string) string { return "icons/" + icon + ".bmp" }
