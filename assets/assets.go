// Package assets embeds the bitmaps and sounds the clock draws and plays.
//
// Backgrounds and the alarm sound sit at the root; weather icons are under
// icons/ and named by their OpenWeatherMap icon id.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed main_background_day.bmp main_background_night.bmp computer-alert20.wav icons/*.bmp
var files embed.FS

// FS is the read-only asset tree.
var FS fs.FS = files

// Icons lists every OpenWeatherMap icon id with a bitmap under icons/.
var Icons = []string{
	"01d", "01n", "02d", "02n", "03d", "03n", "04d", "04n", "09d", "09n",
	"10d", "10n", "11d", "11n", "13d", "13n", "50d", "50n",
}
