//go:build !tinygo && cgo

package hal

import (
	"bytes"
	"io/fs"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const hostSampleRate = 44100

// hostAudio plays WAV assets through Ebiten's audio package. Decoded players
// are kept per asset and rewound on each Play.
type hostAudio struct {
	mu      sync.Mutex
	assets  fs.FS
	logger  Logger
	ctx     *audio.Context
	players map[string]*audio.Player
}

func newHostAudio(assets fs.FS, logger Logger) AudioPlayer {
	return &hostAudio{
		assets:  assets,
		logger:  logger,
		players: map[string]*audio.Player{},
	}
}

func (a *hostAudio) Play(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, err := a.player(name)
	if err != nil {
		a.logger.WriteLineString("error: audio: " + name + ": " + err.Error())
		return
	}
	if err := p.Rewind(); err != nil {
		a.logger.WriteLineString("error: audio: " + name + ": " + err.Error())
		return
	}
	p.Play()
}

func (a *hostAudio) player(name string) (*audio.Player, error) {
	if p, ok := a.players[name]; ok {
		return p, nil
	}
	if a.assets == nil {
		return nil, ErrNotImplemented
	}
	data, err := fs.ReadFile(a.assets, name)
	if err != nil {
		return nil, err
	}
	if a.ctx == nil {
		a.ctx = audio.NewContext(hostSampleRate)
	}
	s, err := wav.DecodeWithSampleRate(hostSampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	p, err := a.ctx.NewPlayer(s)
	if err != nil {
		return nil, err
	}
	a.players[name] = p
	return p, nil
}
