package main

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// alarm plays the red alert klaxon. A failed speaker init leaves it silent.
type alarm struct {
	mu      sync.Mutex
	enabled bool
}

func newAlarm(enabled bool) *alarm {
	a := &alarm{}
	if !enabled {
		return a
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return a
	}
	a.enabled = true
	return a
}

// RedAlert sounds two falling tones.
func (a *alarm) RedAlert() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.enabled {
		return
	}
	speaker.Play(beep.Seq(
		beep.Take(sampleRate.N(180*time.Millisecond), tone(880)),
		beep.Take(sampleRate.N(60*time.Millisecond), silence()),
		beep.Take(sampleRate.N(240*time.Millisecond), tone(660)),
	))
}

func (a *alarm) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.enabled {
		speaker.Close()
		a.enabled = false
	}
}

// tone is a quiet square-ish sine at freq hertz.
func tone(freq float64) beep.Streamer {
	var phase float64
	step := freq / float64(sampleRate)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := 0.2 * math.Tanh(3*math.Sin(2*math.Pi*phase))
			samples[i][0], samples[i][1] = v, v
			phase += step
			if phase >= 1 {
				phase--
			}
		}
		return len(samples), true
	})
}

func silence() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{}
		}
		return len(samples), true
	})
}
