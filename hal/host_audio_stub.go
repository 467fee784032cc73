//go:build !tinygo && !cgo

package hal

import "io/fs"

// hostAudio only logs when no audio backend is available.
type hostAudio struct {
	logger Logger
}

func newHostAudio(_ fs.FS, logger Logger) AudioPlayer { return hostAudio{logger: logger} }

func (a hostAudio) Play(name string) {
	a.logger.WriteLineString("info: audio: play " + name)
}
