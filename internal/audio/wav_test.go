package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

func TestWriteWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "celebration.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	sr := beep.SampleRate(8000)
	if err := WriteWAV(f, sr, 0.8); err != nil {
		t.Fatalf("WriteWAV() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer in.Close()

	stream, format, err := wav.Decode(in)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	defer stream.Close()

	if format.SampleRate != sr {
		t.Errorf("sample rate = %d, want %d", format.SampleRate, sr)
	}
	if format.NumChannels != 2 {
		t.Errorf("channels = %d, want 2", format.NumChannels)
	}
	if want := sr.N(CelebrationDuration()); stream.Len() != want {
		t.Errorf("samples = %d, want %d", stream.Len(), want)
	}
}
