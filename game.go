package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/juggler/audio"
	"github.com/milk9111/juggler/config"
	"github.com/milk9111/juggler/input"
	"github.com/milk9111/juggler/render"
	"github.com/milk9111/juggler/sim"
	"github.com/milk9111/juggler/sim/system"
	"github.com/milk9111/juggler/skins"
	"github.com/milk9111/juggler/store"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

type Game struct {
	cfg    config.Config
	frames int

	driver   *sim.Driver
	source   *input.EbitenSource
	inputs   *input.Normalizer
	sound    *audio.Player
	skins    *skins.Library
	renderer *render.Renderer
	menu     *Menu
	watcher  *config.Watcher
	settings config.Settings

	// playfield size as last reported by LayoutF
	width   float64
	height  float64
	started bool
}

func NewGame(cfg config.Config) (*Game, error) {
	records := store.Open(cfg.DataDir, sim.LeaderboardSize)

	settings, err := config.LoadSettings(cfg.SettingsPath(), config.SettingsFrom(cfg))
	if err != nil {
		log.Printf("game: %v", err)
	}

	skinDir := filepath.Join(cfg.DataDir, "skins")
	lib := skins.NewLibrary(skinDir)
	renderer, err := render.New(lib, settings.BallSkin)
	if err != nil {
		return nil, err
	}

	sound := audio.NewPlayer(audio.NewEbitenOutput(0, 1), settings.SoundEnabled)

	state := system.NewGameStateSystem()
	state.Debug = cfg.Debug

	world := sim.NewWorld(float64(cfg.Width), float64(cfg.Height), sim.WithStore(records))
	driver := sim.NewDriver(world, sim.NewScheduler(system.Pipeline(state)...), sound)

	g := &Game{
		cfg:      cfg,
		driver:   driver,
		source:   input.NewEbitenSource(),
		sound:    sound,
		skins:    lib,
		renderer: renderer,
		settings: settings,
		width:    float64(cfg.Width),
		height:   float64(cfg.Height),
	}
	g.inputs = input.NewNormalizer(g.bounds, sound)
	g.menu = NewMenu(g)
	g.watcher = newSettingsWatcher(cfg.DataDir, skinDir)
	return g, nil
}

func newSettingsWatcher(dirs ...string) *config.Watcher {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Printf("game: settings reload disabled: %v", err)
			return nil
		}
	}
	w, err := config.NewWatcher([]string{".yaml", ".yml", ".tengo"}, dirs...)
	if err != nil {
		log.Printf("game: settings reload disabled: %v", err)
		return nil
	}
	return w
}

// bounds is the playfield rectangle in screen coordinates. The screen is
// the playfield, so the origin is always zero.
func (g *Game) bounds() input.Rect {
	return input.Rect{W: g.width, H: g.height}
}

func (g *Game) Close() {
	g.driver.Stop()
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close watcher: %v", err)
		}
	}
}

// RequestReset starts or restarts a session on the next tick.
func (g *Game) RequestReset() {
	g.sound.Activate()
	g.driver.Do(func(w *sim.World) {
		w.RequestReset()
	})
}

// Settings returns the current user settings.
func (g *Game) Settings() config.Settings {
	return g.settings
}

// UpdateSettings applies s and saves it.
func (g *Game) UpdateSettings(s config.Settings) {
	g.applySettings(s)
	if err := config.SaveSettings(g.cfg.SettingsPath(), g.settings); err != nil {
		log.Printf("game: %v", err)
	}
}

func (g *Game) applySettings(s config.Settings) {
	if !skins.Known(s.BallSkin) {
		s.BallSkin = skins.Default
	}
	g.settings = s
	g.sound.SetEnabled(s.SoundEnabled)
	g.renderer.SetSkin(s.BallSkin)
	g.menu.Refresh()
}

func (g *Game) reloadChanged() {
	if g.watcher == nil {
		return
	}
	for _, path := range g.watcher.Drain() {
		if filepath.Ext(path) == ".tengo" {
			g.skins.Invalidate(path)
			continue
		}
		if filepath.Clean(path) != filepath.Clean(g.cfg.SettingsPath()) {
			continue
		}
		s, err := config.LoadSettings(path, g.settings)
		if err != nil {
			log.Printf("game: reload settings: %v", err)
			continue
		}
		g.applySettings(s)
	}
}

func (g *Game) Update() error {
	g.frames++
	if !g.started {
		return nil
	}

	g.reloadChanged()

	for _, ev := range g.source.Poll() {
		g.driver.Do(func(w *sim.World) {
			g.inputs.Apply(w, ev)
		})
	}

	snap := g.driver.Snapshot()
	if snap.State != sim.StatePlaying && !g.menu.OverlayOpen() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.RequestReset()
		}
	}
	g.menu.Update(snap)

	g.driver.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.driver.Snapshot()
	g.renderer.Draw(screen, snap)
	g.menu.Draw(screen)

	if g.cfg.Debug {
		g.drawDebug(screen, snap)
	}
}

var debugFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

func (g *Game) drawDebug(screen *ebiten.Image, snap sim.Snapshot) {
	msg := fmt.Sprintf("FPS: %.1f  tick: %d  state: %s\nball: (%.0f, %.0f) v=(%.1f, %.1f)",
		ebiten.ActualFPS(), snap.Tick, snap.State, snap.Ball.Pos.X, snap.Ball.Pos.Y, snap.Ball.Vel.X, snap.Ball.Vel.Y)
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(4, 4)
	op.LineSpacing = 14
	op.ColorScale.ScaleWithColor(colornames.Yellow)
	ebtext.Draw(screen, msg, debugFace, op)
}

// LayoutF makes the screen the size of the window. The simulation starts
// on the first layout with a usable size.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if outsideWidth < 1 || outsideHeight < 1 {
		return max(outsideWidth, 1), max(outsideHeight, 1)
	}

	if outsideWidth != g.width || outsideHeight != g.height || !g.started {
		g.width, g.height = outsideWidth, outsideHeight
		g.driver.Do(func(w *sim.World) {
			w.Resize(outsideWidth, outsideHeight)
		})
	}
	if !g.started {
		g.driver.Start()
		g.started = true
	}
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
