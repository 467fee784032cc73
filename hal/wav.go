package hal

import (
	"encoding/binary"
	"errors"
)

var (
	ErrWAVHeader = errors.New("wav: malformed header")
	ErrWAVFormat = errors.New("wav: only 8- or 16-bit mono PCM is supported")
)

// pcm is the playable part of a WAV file.
type pcm struct {
	sampleRate uint32
	bits       uint16
	data       []byte
}

// parseWAV walks the RIFF chunks of a PCM WAV file.
func parseWAV(b []byte) (pcm, error) {
	if len(b) < 12 || string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" {
		return pcm{}, ErrWAVHeader
	}
	var (
		out      pcm
		haveFmt  bool
		haveData bool
		channels uint16
		audioFmt uint16
	)
	for off := 12; off+8 <= len(b); {
		id := string(b[off : off+4])
		size := int(binary.LittleEndian.Uint32(b[off+4 : off+8]))
		body := off + 8
		if size < 0 || body+size > len(b) {
			return pcm{}, ErrWAVHeader
		}
		switch id {
		case "fmt ":
			if size < 16 {
				return pcm{}, ErrWAVHeader
			}
			audioFmt = binary.LittleEndian.Uint16(b[body:])
			channels = binary.LittleEndian.Uint16(b[body+2:])
			out.sampleRate = binary.LittleEndian.Uint32(b[body+4:])
			out.bits = binary.LittleEndian.Uint16(b[body+14:])
			haveFmt = true
		case "data":
			out.data = b[body : body+size]
			haveData = true
		}
		off = body + size + size&1 // chunks are word aligned
	}
	if !haveFmt || !haveData {
		return pcm{}, ErrWAVHeader
	}
	if audioFmt != 1 || channels != 1 || (out.bits != 8 && out.bits != 16) || out.sampleRate == 0 {
		return pcm{}, ErrWAVFormat
	}
	return out, nil
}

// sample returns sample i as an unsigned 16-bit DAC value.
func (p pcm) sample(i int) uint16 {
	if p.bits == 8 {
		return uint16(p.data[i]) << 8
	}
	s := int16(binary.LittleEndian.Uint16(p.data[2*i:]))
	return uint16(int32(s) + 32768)
}

// len returns the number of samples.
func (p pcm) len() int {
	return len(p.data) / int(p.bits/8)
}
