package audio

import (
	"fmt"
	"io"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// WriteWAV encodes the celebration as 16-bit stereo WAV.
func WriteWAV(w io.WriteSeeker, sr beep.SampleRate, gain float64) error {
	format := beep.Format{
		SampleRate:  sr,
		NumChannels: 2,
		Precision:   2,
	}
	if err := wav.Encode(w, NewCelebration(sr, gain), format); err != nil {
		return fmt.Errorf("audio: encode wav: %w", err)
	}
	return nil
}
