package audio

import (
	"os"
	"testing"
)

// unsetenv clears key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadConfigDefaults(t *testing.T) {
	unsetenv(t, "TAPCOUNT_AUDIO_ENABLED")
	unsetenv(t, "TAPCOUNT_MASTER_VOLUME")
	unsetenv(t, "TAPCOUNT_SAMPLE_RATE")

	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if got != DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want %+v", got, DefaultConfig())
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("TAPCOUNT_AUDIO_ENABLED", "false")
	t.Setenv("TAPCOUNT_MASTER_VOLUME", "35")
	t.Setenv("TAPCOUNT_SAMPLE_RATE", "22050")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Enabled {
		t.Error("Enabled should be false")
	}
	if cfg.MasterVolume != 35 {
		t.Errorf("MasterVolume = %d, want 35", cfg.MasterVolume)
	}
	if cfg.SampleRate != 22050 {
		t.Errorf("SampleRate = %d, want 22050", cfg.SampleRate)
	}
}

func TestLoadConfigClamps(t *testing.T) {
	tests := []struct {
		name       string
		volume     string
		rate       string
		wantVolume int
		wantRate   int
	}{
		{"volume above range", "150", "44100", 100, 44100},
		{"volume below range", "-20", "44100", 0, 44100},
		{"zero sample rate", "80", "0", 80, 44100},
		{"negative sample rate", "80", "-8000", 80, 44100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TAPCOUNT_MASTER_VOLUME", tt.volume)
			t.Setenv("TAPCOUNT_SAMPLE_RATE", tt.rate)

			cfg, err := LoadConfig()
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if cfg.MasterVolume != tt.wantVolume {
				t.Errorf("MasterVolume = %d, want %d", cfg.MasterVolume, tt.wantVolume)
			}
			if cfg.SampleRate != tt.wantRate {
				t.Errorf("SampleRate = %d, want %d", cfg.SampleRate, tt.wantRate)
			}
		})
	}
}

func TestLoadConfigInvalidReportsError(t *testing.T) {
	t.Setenv("TAPCOUNT_MASTER_VOLUME", "loud")

	got, err := LoadConfig()
	if err == nil {
		t.Fatal("LoadConfig() should report the malformed variable")
	}
	if got != DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want defaults alongside the error", got)
	}
}

func TestGain(t *testing.T) {
	tests := []struct {
		volume int
		want   float64
	}{
		{0, 0},
		{50, 0.5},
		{100, 1},
	}
	for _, tt := range tests {
		if got := (Config{MasterVolume: tt.volume}).Gain(); got != tt.want {
			t.Errorf("Gain(%d) = %v, want %v", tt.volume, got, tt.want)
		}
	}
}
