package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/juggler/sim"
)

const defaultSampleRate = 44100

// EbitenOutput plays pre-rendered cues through ebiten's audio context. The
// context is only created on Activate; if that fails every Play is a no-op.
type EbitenOutput struct {
	sampleRate int
	volume     float64
	pcm        map[sim.EventKind][]byte

	once    sync.Once
	mu      sync.Mutex
	ctx     *audio.Context
	players map[sim.EventKind]*audio.Player
}

func NewEbitenOutput(sampleRate int, volume float64) *EbitenOutput {
	if sampleRate <= 0 {
		sampleRate = defaultSampleRate
	}
	o := &EbitenOutput{
		sampleRate: sampleRate,
		volume:     volume,
		pcm:        make(map[sim.EventKind][]byte, len(Cues)),
		players:    make(map[sim.EventKind]*audio.Player, len(Cues)),
	}
	rate := beep.SampleRate(sampleRate)
	for kind, c := range Cues {
		o.pcm[kind] = RenderPCM(NewVoice(c, rate))
	}
	return o
}

func (o *EbitenOutput) Activate() {
	o.once.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("audio: unavailable: %v", r)
			}
		}()

		ctx := audio.CurrentContext()
		if ctx == nil {
			ctx = audio.NewContext(o.sampleRate)
		}

		o.mu.Lock()
		o.ctx = ctx
		o.mu.Unlock()
	})
}

func (o *EbitenOutput) Play(kind sim.EventKind) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.ctx == nil {
		return
	}

	player := o.players[kind]
	if player == nil {
		data, ok := o.pcm[kind]
		if !ok {
			return
		}
		player = o.ctx.NewPlayerFromBytes(data)
		o.players[kind] = player
	}

	player.SetVolume(o.volume)
	player.Rewind()
	player.Play()
}
