package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Cue identifies a short sound played on a world event
type Cue uint8

const (
	CueContact Cue = iota
	CueCheckpoint
	CueRestore
	CuePortal
)

func (c Cue) String() string {
	switch c {
	case CueContact:
		return "contact"
	case CueCheckpoint:
		return "checkpoint"
	case CueRestore:
		return "restore"
	case CuePortal:
		return "portal"
	default:
		return "unknown"
	}
}

// tone is one shaped oscillator segment of a cue
type tone struct {
	freq     float64
	duration time.Duration
	wave     Wave
}

const (
	toneAttack  = 5 * time.Millisecond
	toneRelease = 20 * time.Millisecond
)

var cueTones = map[Cue][]tone{
	CueContact: {
		{freq: 220, duration: 40 * time.Millisecond, wave: Square},
	},
	CueCheckpoint: {
		{freq: 660, duration: 60 * time.Millisecond, wave: Sine},
		{freq: 880, duration: 90 * time.Millisecond, wave: Sine},
	},
	CueRestore: {
		{freq: 880, duration: 60 * time.Millisecond, wave: Sine},
		{freq: 440, duration: 90 * time.Millisecond, wave: Sine},
	},
	CuePortal: {
		{freq: 110, duration: 200 * time.Millisecond, wave: Saw},
		{freq: 0, duration: 80 * time.Millisecond, wave: Noise},
	},
}

// CuePlayer plays event cues through the system speaker
// Without an audio device it stays silent; Play is always safe to call
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	gain        float64
	initialized bool
	log         zerolog.Logger
}

// NewCuePlayer creates a player with linear gain in [0, 1]; call Initialize to open the device
func NewCuePlayer(gain float64, log zerolog.Logger) *CuePlayer {
	return &CuePlayer{
		mixer: &beep.Mixer{},
		gain:  gain,
		log:   log,
	}
}

// Initialize opens the speaker
// On failure the player stays silent and the error is returned for logging
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return eris.Wrap(err, "speaker init")
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether cues reach a device
func (p *CuePlayer) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Cleanup drops all queued cues
func (p *CuePlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Play queues a cue, no-op when the device is not initialized
func (p *CuePlayer) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := newCueStreamer(c, p.gain)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.log.Trace().Stringer("cue", c).Msg("cue played")
}

// newCueStreamer builds the finite streamer for a cue, nil for unknown cues
func newCueStreamer(c Cue, gain float64) beep.Streamer {
	tones, ok := cueTones[c]
	if !ok {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		osc := Tone(t.wave, t.freq, t.duration, sampleRate)
		parts = append(parts, Shape(osc, t.duration, toneAttack, toneRelease, sampleRate))
	}
	return newGain(beep.Seq(parts...), gain)
}
