package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Blip timing
const (
	blipDuration = 60 * time.Millisecond
	blipAttack   = 4 * time.Millisecond
	blipRelease  = 45 * time.Millisecond
)

// sine is a fixed-length sine oscillator
type sine struct {
	freq     float64
	phase    float64
	position int
	length   int
	rate     beep.SampleRate
}

// newSine creates an oscillator that ends after d
func newSine(freq float64, d time.Duration, rate beep.SampleRate) *sine {
	return &sine{freq: freq, length: rate.N(d), rate: rate}
}

func (o *sine) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}
		v := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sine) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, total, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(total),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		gain := 1.0
		if e.attack > 0 && e.position < e.attack {
			gain = float64(e.position) / float64(e.attack)
		}
		if start := e.total - e.release; e.release > 0 && e.position >= start {
			gain = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales linear volume onto the log2 scale of effects.Volume
// Zero or negative volume is silent
func withVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// bounceBlip is a short two-partial ping at freq
func bounceBlip(rate beep.SampleRate, freq, vol float64) beep.Streamer {
	fund := newEnvelope(newSine(freq, blipDuration, rate), blipDuration, blipAttack, blipRelease, rate)
	over := newEnvelope(newSine(freq*2, blipDuration, rate), blipDuration, blipAttack, blipRelease/2, rate)
	mixed := beep.Mix(withVolume(fund, 0.7), withVolume(over, 0.3))
	return withVolume(beep.Take(rate.N(blipDuration), mixed), vol)
}

// Sound returns the streamer for a sound type, nil for unknown types
func Sound(t SoundType, rate beep.SampleRate, vol float64) beep.Streamer {
	switch t {
	case SoundBounce:
		return bounceBlip(rate, bounceFreq, vol)
	case SoundBounceAlt:
		return bounceBlip(rate, bounceFreq*1.5, vol)
	default:
		return nil
	}
}
