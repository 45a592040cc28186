package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Engine plays synthesized sound effects through the system speaker.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewEngine creates an engine. Call Initialize before playing anything.
func NewEngine() *Engine {
	return &Engine{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the audio device. Returns an error when no device is
// available; callers are expected to fall back to NopPlayer in that case.
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Cleanup silences the engine. The speaker itself stays open since beep
// does not support re-initialization within a process.
func (e *Engine) Cleanup() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	e.mixer.Clear()
	e.initialized = false
}

// Play queues an effect for immediate playback.
func (e *Engine) Play(fx Effect) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	var s beep.Streamer
	switch fx {
	case EffectFire:
		s = beep.Take(sampleRate.N(time.Millisecond*120), NewPewGenerator(sampleRate))
	case EffectImpact:
		s = beep.Take(sampleRate.N(time.Millisecond*200), NewBlastGenerator(sampleRate))
	default:
		return
	}

	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
}

// PewGenerator generates a short descending laser chirp.
type PewGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewPewGenerator creates a laser-fire sound generator.
func NewPewGenerator(sr beep.SampleRate) *PewGenerator {
	return &PewGenerator{sr: sr}
}

func (g *PewGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Frequency drops from 1200Hz to 300Hz over the chirp
		freq := 1200 - 7500*t
		if freq < 300 {
			freq = 300
		}

		envelope := math.Exp(-t * 25)
		sample := 0.25 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *PewGenerator) Err() error {
	return nil
}

// BlastGenerator generates a noisy explosion burst.
type BlastGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewBlastGenerator creates an impact sound generator.
func NewBlastGenerator(sr beep.SampleRate) *BlastGenerator {
	return &BlastGenerator{
		sr:   sr,
		seed: time.Now().UnixNano(),
	}
}

func (g *BlastGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 12)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		// Low rumble under the noise
		rumble := 0.35 * math.Sin(2*math.Pi*70*t)

		sample := envelope * (0.3*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlastGenerator) Err() error {
	return nil
}
