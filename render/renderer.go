package render

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/juggler/sim"
	"github.com/milk9111/juggler/skins"
	"golang.org/x/image/font/gofont/goregular"
)

const crowdDots = 300

// Renderer draws world snapshots. It never mutates simulation state.
type Renderer struct {
	skins *skins.Library
	font  *text.GoTextFaceSource

	mu   sync.Mutex
	skin string

	crowd     []cp.Vector
	crowdW    float64
	crowdH    float64
	crowdRand *rand.Rand
}

func New(lib *skins.Library, skin string) (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("render: load font: %w", err)
	}
	return &Renderer{
		skins:     lib,
		font:      src,
		skin:      skin,
		crowdRand: rand.New(rand.NewPCG(1, 2)),
	}, nil
}

// SetSkin selects the ball skin by name.
func (r *Renderer) SetSkin(name string) {
	r.mu.Lock()
	r.skin = name
	r.mu.Unlock()
}

func (r *Renderer) Skin() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.skin
}

// Face returns a font face of the given size from the HUD font.
func (r *Renderer) Face(size float64) text.Face {
	return &text.GoTextFace{Source: r.font, Size: size}
}

// Draw renders one frame of s onto screen, which must be the size of the
// snapshot's layout.
func (r *Renderer) Draw(screen *ebiten.Image, s sim.Snapshot) {
	l := s.Layout
	r.drawBackground(screen, l)
	r.drawPitch(screen, l)

	if s.State == sim.StateStart {
		r.drawPlayer(screen, s)
		r.drawHUD(screen, s)
		return
	}

	r.drawPlayer(screen, s)
	r.drawBall(screen, s)
	r.drawIndicator(screen, s)
	drawShockwaves(screen, s.Shockwaves)
	drawParticles(screen, s.Particles)
	r.drawHUD(screen, s)
}
