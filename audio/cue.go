package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/milk9111/juggler/sim"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveTriangle
	WaveSaw
)

func (w Wave) sample(phase float64) float64 {
	switch w {
	case WaveTriangle:
		return 4*math.Abs(phase-0.5) - 1
	case WaveSaw:
		return 2*phase - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Ramp is the interpolation curve of an Envelope.
type Ramp int

const (
	RampLinear Ramp = iota
	RampExponential
)

// Envelope moves a value from From to To over Over and then holds To.
type Envelope struct {
	From float64
	To   float64
	Over time.Duration
	Ramp Ramp
}

func (e Envelope) At(t time.Duration) float64 {
	if e.Over <= 0 || t >= e.Over {
		return e.To
	}
	if t <= 0 {
		return e.From
	}
	p := float64(t) / float64(e.Over)
	if e.Ramp == RampExponential && e.From > 0 && e.To > 0 {
		return e.From * math.Pow(e.To/e.From, p)
	}
	return e.From + (e.To-e.From)*p
}

// Cue is a short synthesized sound: one oscillator with a frequency sweep
// and a gain envelope.
type Cue struct {
	Wave   Wave
	Freq   Envelope
	Gain   Envelope
	Length time.Duration
}

// Cues maps the notifications that make a sound to their cue.
var Cues = map[sim.EventKind]Cue{
	sim.EventKick: {
		Wave:   WaveSine,
		Freq:   Envelope{From: 80, To: 30, Over: 100 * time.Millisecond, Ramp: RampExponential},
		Gain:   Envelope{From: 0.8, To: 0.01, Over: 150 * time.Millisecond, Ramp: RampExponential},
		Length: 150 * time.Millisecond,
	},
	sim.EventWall: {
		Wave:   WaveTriangle,
		Freq:   Envelope{From: 60, To: 30, Over: 50 * time.Millisecond, Ramp: RampExponential},
		Gain:   Envelope{From: 0.4, To: 0.01, Over: 50 * time.Millisecond, Ramp: RampExponential},
		Length: 50 * time.Millisecond,
	},
	sim.EventLose: {
		Wave:   WaveSaw,
		Freq:   Envelope{From: 80, To: 40, Over: 600 * time.Millisecond, Ramp: RampLinear},
		Gain:   Envelope{From: 0.4, To: 0.01, Over: 600 * time.Millisecond, Ramp: RampLinear},
		Length: 600 * time.Millisecond,
	},
}

// voice renders a Cue sample by sample.
type voice struct {
	cue   Cue
	rate  beep.SampleRate
	pos   int
	total int
	phase float64
}

// NewVoice creates a streamer that plays c once.
func NewVoice(c Cue, rate beep.SampleRate) beep.Streamer {
	return &voice{cue: c, rate: rate, total: rate.N(c.Length)}
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if v.pos >= v.total {
			return i, i > 0
		}

		t := v.rate.D(v.pos)
		val := v.cue.Wave.sample(v.phase) * v.cue.Gain.At(t)
		samples[i][0] = val
		samples[i][1] = val

		v.phase += v.cue.Freq.At(t) / float64(v.rate)
		v.phase -= math.Floor(v.phase)
		v.pos++
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

// math.Log2(0) is -Inf, so zero volume is handled as silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CueStream returns a playable streamer for kind at the given master volume.
func CueStream(kind sim.EventKind, rate beep.SampleRate, vol float64) (beep.Streamer, bool) {
	c, ok := Cues[kind]
	if !ok {
		return nil, false
	}
	return newVolume(NewVoice(c, rate), vol), true
}

// RenderPCM drains s into signed 16-bit little-endian stereo PCM.
func RenderPCM(s beep.Streamer) []byte {
	buf := make([][2]float64, 512)
	var out []byte
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for c := 0; c < 2; c++ {
				v := math.Max(-1, math.Min(1, buf[i][c]))
				x := int16(v * math.MaxInt16)
				out = append(out, byte(x), byte(x>>8))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}
