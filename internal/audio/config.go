package audio

import "github.com/gopxl/beep"

// DefaultSampleRate is used when the configuration leaves it unset.
const DefaultSampleRate = 48000

// Config controls sound output.
type Config struct {
	Enabled    bool
	Volume     float64 // Master volume in [0, 1]
	SampleRate int
}

// DefaultConfig returns audio disabled at a moderate volume.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		Volume:     0.6,
		SampleRate: DefaultSampleRate,
	}
}

// Rate returns the sample rate as a beep.SampleRate.
func (c Config) Rate() beep.SampleRate {
	if c.SampleRate <= 0 {
		return beep.SampleRate(DefaultSampleRate)
	}
	return beep.SampleRate(c.SampleRate)
}
