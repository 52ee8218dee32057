package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/juggler/sim"
)

// SpeakerOutput plays cues through beep's speaker, synthesizing each one on
// demand. It is for hosts that do not run an ebiten game loop.
type SpeakerOutput struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	initialized bool
	failed      bool
}

func NewSpeakerOutput(sampleRate int, volume float64) *SpeakerOutput {
	if sampleRate <= 0 {
		sampleRate = defaultSampleRate
	}
	return &SpeakerOutput{rate: beep.SampleRate(sampleRate), volume: volume}
}

func (o *SpeakerOutput) Activate() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.initialized || o.failed {
		return
	}
	if err := speaker.Init(o.rate, o.rate.N(100*time.Millisecond)); err != nil {
		log.Printf("audio: speaker unavailable: %v", err)
		o.failed = true
		return
	}
	o.initialized = true
}

func (o *SpeakerOutput) Play(kind sim.EventKind) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.initialized {
		return
	}
	if s, ok := CueStream(kind, o.rate, o.volume); ok {
		speaker.Play(s)
	}
}

// Close releases the speaker.
func (o *SpeakerOutput) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.initialized {
		return
	}
	speaker.Close()
	o.initialized = false
}
