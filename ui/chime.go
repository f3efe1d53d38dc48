package ui

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"glyph-snake/game/manager"
)

const sampleRate = beep.SampleRate(44100)

// tone is a sine wave with a linear fade-out over its last quarter
type tone struct {
	freq     float64
	phase    float64
	samples  int
	position int
}

func newTone(freq float64, duration time.Duration) *tone {
	return &tone{freq: freq, samples: sampleRate.N(duration)}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	fade := t.samples / 4
	for i := range samples {
		if t.position >= t.samples {
			return i, i > 0
		}
		val := math.Sin(2 * math.Pi * t.phase)
		if left := t.samples - t.position; fade > 0 && left < fade {
			val *= float64(left) / float64(fade)
		}
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(sampleRate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Chime plays a short tone whenever food is eaten
type Chime struct {
	freq     float64
	duration time.Duration
	volume   float64
}

// NewChime opens the speaker. The caller owns Close.
func NewChime(freq float64, duration time.Duration) (*Chime, error) {
	if freq <= 0 || duration <= 0 {
		return nil, fmt.Errorf("chime needs a positive frequency and duration, got %v Hz for %v", freq, duration)
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}
	return &Chime{freq: freq, duration: duration, volume: 0.5}, nil
}

// Consumed implements manager.EventSink
func (c *Chime) Consumed(manager.ConsumeEvent) {
	c.Play()
}

// Streamer returns a fresh copy of the chime sound
func (c *Chime) Streamer() beep.Streamer {
	return &effects.Volume{
		Streamer: newTone(c.freq, c.duration),
		Base:     2,
		Volume:   math.Log2(c.volume),
	}
}

// Play queues the chime on the speaker without blocking
func (c *Chime) Play() {
	speaker.Play(c.Streamer())
}

// Close stops playback and releases the audio device
func (c *Chime) Close() {
	speaker.Clear()
	speaker.Close()
}
