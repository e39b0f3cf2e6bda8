package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// synth streams samples of a function of time. A zero length streams forever.
type synth struct {
	rate   beep.SampleRate
	pos    int
	length int
	fn     func(t float64) float64
}

func newSynth(rate beep.SampleRate, d time.Duration, fn func(t float64) float64) *synth {
	length := 0
	if d > 0 {
		length = rate.N(d)
	}
	return &synth{rate: rate, length: length, fn: fn}
}

func (s *synth) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.length > 0 && s.pos >= s.length {
			return i, i > 0
		}
		v := s.fn(float64(s.pos) / float64(s.rate))
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *synth) Err() error {
	return nil
}

// laserSound is a short falling square-ish sweep.
func laserSound(rate beep.SampleRate) beep.Streamer {
	const dur = 0.12
	return newSynth(rate, 120*time.Millisecond, func(t float64) float64 {
		freq := 1200 - 900*(t/dur)
		env := 1 - t/dur
		phase := math.Sin(2 * math.Pi * freq * t)
		return 0.5 * env * math.Copysign(math.Min(math.Abs(phase)*3, 1), phase)
	})
}

// explosionSound is decaying noise over a low rumble.
func explosionSound(rate beep.SampleRate) beep.Streamer {
	seed := uint32(0x2545F491)
	return newSynth(rate, 350*time.Millisecond, func(t float64) float64 {
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		noise := float64(seed)/float64(math.MaxUint32)*2 - 1
		env := math.Exp(-t * 9)
		rumble := 0.3 * math.Sin(2*math.Pi*70*t)
		return env * (0.6*noise + rumble)
	})
}

// marchNotes is the four-step descending bass of the formation march.
var marchNotes = []float64{98.0, 87.3, 77.8, 73.4}

// musicLoop streams the march forever: one short note per beat.
func musicLoop(rate beep.SampleRate) beep.Streamer {
	const (
		beat = 0.5
		note = 0.14
	)
	return newSynth(rate, 0, func(t float64) float64 {
		step := int(t/beat) % len(marchNotes)
		local := math.Mod(t, beat)
		if local > note {
			return 0
		}
		env := 1 - local/note
		return 0.7 * env * math.Sin(2*math.Pi*marchNotes[step]*local)
	})
}
