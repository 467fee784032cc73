package assets

import (
	"io/fs"
	"testing"

	"golang.org/x/image/bmp"
)

func decodeConfig(t *testing.T, name string) (w, h int) {
	t.Helper()
	f, err := FS.Open(name)
	if err != nil {
		t.Fatalf("open %s: %v", name, err)
	}
	defer f.Close()
	cfg, err := bmp.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode %s: %v", name, err)
	}
	return cfg.Width, cfg.Height
}

func TestBackgroundsFillScreen(t *testing.T) {
	for _, name := range []string{"main_background_day.bmp", "main_background_night.bmp"} {
		if w, h := decodeConfig(t, name); w != 320 || h != 240 {
			t.Fatalf("%s is %dx%d", name, w, h)
		}
	}
}

func TestEveryIconDecodes(t *testing.T) {
	for _, id := range Icons {
		name := "icons/" + id + ".bmp"
		f, err := FS.Open(name)
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		img, err := bmp.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		if b := img.Bounds(); b.Dx() != 50 || b.Dy() != 50 {
			t.Fatalf("%s is %v", name, b)
		}
	}
	matches, err := fs.Glob(FS, "icons/*.bmp")
	if err != nil || len(matches) != len(Icons) {
		t.Fatalf("icons/*.bmp = %d files, %v", len(matches), err)
	}
}

func TestAlarmSound(t *testing.T) {
	data, err := fs.ReadFile(FS, "computer-alert20.wav")
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 44 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Fatalf("not a RIFF/WAVE file: % x", data[:12])
	}
}
