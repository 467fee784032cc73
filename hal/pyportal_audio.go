//go:build tinygo && pyportal

package hal

import (
	"io/fs"
	"machine"
	"time"
)

// dacAudio plays WAV assets on the speaker DAC from its own goroutine so Play
// returns immediately. A Play while a sound is running is dropped.
type dacAudio struct {
	assets fs.FS
	enable machine.Pin
	logger Logger
	busy   chan struct{}
	cache  map[string]pcm
}

func newDACAudio(assets fs.FS, enable machine.Pin, logger Logger) *dacAudio {
	enable.Configure(machine.PinConfig{Mode: machine.PinOutput})
	enable.Low()
	machine.DAC0.Configure(machine.DACConfig{})
	return &dacAudio{
		assets: assets,
		enable: enable,
		logger: logger,
		busy:   make(chan struct{}, 1),
		cache:  map[string]pcm{},
	}
}

func (a *dacAudio) Play(name string) {
	snd, ok := a.cache[name]
	if !ok {
		data, err := fs.ReadFile(a.assets, name)
		if err != nil {
			a.logger.WriteLineString("error: audio: " + name + ": " + err.Error())
			return
		}
		if snd, err = parseWAV(data); err != nil {
			a.logger.WriteLineString("error: audio: " + name + ": " + err.Error())
			return
		}
		a.cache[name] = snd
	}
	select {
	case a.busy <- struct{}{}:
	default:
		return // still playing
	}
	go a.play(snd)
}

func (a *dacAudio) play(snd pcm) {
	defer func() { <-a.busy }()
	a.enable.High()
	period := time.Second / time.Duration(snd.sampleRate)
	for i, n := 0, snd.len(); i < n; i++ {
		machine.DAC0.Set(snd.sample(i))
		time.Sleep(period)
	}
	machine.DAC0.Set(0x8000)
	a.enable.Low()
}
