package media

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// Sink is the audio output an element streams into.
type Sink interface {
	// Init opens the output at rate. Calls after the first are no-ops.
	Init(rate beep.SampleRate) error
	// SampleRate is the rate the output was opened with, 0 before Init.
	SampleRate() beep.SampleRate
	Play(s beep.Streamer)
	Clear()
	// Lock and Unlock guard streamers that are being pulled by the output.
	Lock()
	Unlock()
}

type speakerSink struct {
	mu          sync.Mutex
	initialized bool
	rate        beep.SampleRate
}

var defaultSpeaker = &speakerSink{}

// Speaker returns the process-wide beep speaker as a Sink.
func Speaker() Sink { return defaultSpeaker }

func (s *speakerSink) Init(rate beep.SampleRate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return err
	}
	s.rate = rate
	s.initialized = true
	return nil
}

func (s *speakerSink) SampleRate() beep.SampleRate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rate
}

func (s *speakerSink) Play(st beep.Streamer) { speaker.Play(st) }

func (s *speakerSink) Clear() { speaker.Clear() }

func (s *speakerSink) Lock() { speaker.Lock() }

func (s *speakerSink) Unlock() { speaker.Unlock() }
