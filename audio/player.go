// Package audio plays short synthesized cues for arena events
package audio

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
	bounceFreq = 880.0
)

// SoundType identifies a cue
type SoundType int

const (
	SoundBounce SoundType = iota
	SoundBounceAlt
)

func (s SoundType) String() string {
	switch s {
	case SoundBounce:
		return "bounce"
	case SoundBounceAlt:
		return "bounce_alt"
	default:
		return "unknown"
	}
}

var ErrNoAudioBackend = errors.New("no audio backend")

// Player consumes cues
type Player interface {
	Play(SoundType)
	Close()
}

// SpeakerPlayer mixes cues into the system speaker
type SpeakerPlayer struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	closed bool
}

// NewSpeakerPlayer initializes the speaker with a 100ms buffer
func NewSpeakerPlayer(volume float64) (*SpeakerPlayer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoAudioBackend, err)
	}
	p := &SpeakerPlayer{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
	speaker.Play(p.mixer)
	log.Printf("audio: speaker initialized at %d Hz", sampleRate)
	return p, nil
}

// Play queues a cue; unknown cues and a closed player are ignored
func (p *SpeakerPlayer) Play(t SoundType) {
	s := Sound(t, sampleRate, p.volume)
	if s == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences the mixer
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}

// NopPlayer discards cues
type NopPlayer struct{}

func (NopPlayer) Play(SoundType) {}
func (NopPlayer) Close()         {}

// Open returns a speaker player, or NopPlayer when disabled or unavailable
func Open(enabled bool, volume float64) Player {
	if !enabled {
		return NopPlayer{}
	}
	p, err := NewSpeakerPlayer(volume)
	if err != nil {
		log.Printf("audio: %v, continuing muted", err)
		return NopPlayer{}
	}
	return p
}
