package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Engine is a Sink backed by the system speaker.
// Until Init succeeds every call only updates bookkeeping.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volumes     map[SoundID]float64
	loops       map[SoundID]*loopVoice
	initialized bool
}

type loopVoice struct {
	ctrl   *beep.Ctrl
	volume *effects.Volume
}

// NewEngine creates an engine with every sound at full volume.
func NewEngine() *Engine {
	return &Engine{
		mixer:   &beep.Mixer{},
		volumes: make(map[SoundID]float64),
		loops:   make(map[SoundID]*loopVoice),
	}
}

// Init opens the speaker and starts the mixer.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Close silences everything and releases the speaker.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	e.loops = make(map[SoundID]*loopVoice)
	e.initialized = false
}

// Volume returns the configured level of a sound.
func (e *Engine) Volume(id SoundID) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.volume(id)
}

func (e *Engine) volume(id SoundID) float64 {
	if v, ok := e.volumes[id]; ok {
		return v
	}
	return 1
}

// Play mixes in a one-shot instance of the sound.
func (e *Engine) Play(id SoundID) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	s := voice(id)
	if s == nil {
		return
	}

	speaker.Lock()
	e.mixer.Add(withVolume(s, e.volume(id)))
	speaker.Unlock()
}

// SetVolume sets the level in [0, 1] for future plays and a running loop.
func (e *Engine) SetVolume(id SoundID, level float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	level = math.Max(0, math.Min(1, level))
	e.volumes[id] = level

	if lv, ok := e.loops[id]; ok {
		speaker.Lock()
		setLevel(lv.volume, level)
		speaker.Unlock()
	}
}

// Loop starts the sound repeating until Stop. A running loop is left alone.
func (e *Engine) Loop(id SoundID) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	if _, ok := e.loops[id]; ok {
		return
	}

	var s beep.Streamer
	switch id {
	case SoundMusic:
		s = musicLoop(sampleRate)
	default:
		return
	}

	vol := withVolume(s, e.volume(id))
	lv := &loopVoice{ctrl: &beep.Ctrl{Streamer: vol}, volume: vol}
	e.loops[id] = lv

	speaker.Lock()
	e.mixer.Add(lv.ctrl)
	speaker.Unlock()
}

// Stop halts a looping sound.
func (e *Engine) Stop(id SoundID) {
	e.mu.Lock()
	defer e.mu.Unlock()

	lv, ok := e.loops[id]
	if !ok {
		return
	}
	delete(e.loops, id)

	speaker.Lock()
	lv.ctrl.Paused = true
	lv.ctrl.Streamer = nil
	speaker.Unlock()
}

// voice builds a fresh one-shot streamer for a sound.
func voice(id SoundID) beep.Streamer {
	switch id {
	case SoundPlayerShot, SoundEnemyShot:
		return laserSound(sampleRate)
	case SoundExplosion:
		return explosionSound(sampleRate)
	default:
		return nil
	}
}

// withVolume wraps s with a linear level mapped onto beep's log scale.
func withVolume(s beep.Streamer, level float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setLevel(v, level)
	return v
}

func setLevel(v *effects.Volume, level float64) {
	if level <= 0 {
		v.Silent = true
		v.Volume = 0
		return
	}
	v.Silent = false
	v.Volume = math.Log2(level)
}
