package main

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/juggler/audio"
	"github.com/milk9111/juggler/config"
	"github.com/milk9111/juggler/input"
	"github.com/milk9111/juggler/sim"
	"github.com/milk9111/juggler/sim/system"
	"github.com/milk9111/juggler/skins"
	"github.com/milk9111/juggler/store"
)

// Each terminal cell stands for a block of playfield pixels.
const (
	cellWidth  = 8
	cellHeight = 16

	tickInterval  = time.Second / 60
	frameInterval = time.Second / 30
)

type app struct {
	cfg      config.Config
	screen   tcell.Screen
	driver   *sim.Driver
	inputs   *input.Normalizer
	sound    *audio.Player
	speaker  *audio.SpeakerOutput
	skin     *skins.Skin
	settings config.Settings

	cols int
	rows int
}

func main() {
	cfg, err := config.Load("termjuggle", os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	// The screen owns the terminal, so logs go to a file or nowhere.
	if cfg.Debug {
		if f, err := openLog(cfg.DataDir); err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	} else {
		log.SetOutput(io.Discard)
	}

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	a := newApp(cfg, screen)
	a.run()
}

func openLog(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "termjuggle.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

func newApp(cfg config.Config, screen tcell.Screen) *app {
	settings, err := config.LoadSettings(cfg.SettingsPath(), config.SettingsFrom(cfg))
	if err != nil {
		log.Printf("termjuggle: %v", err)
	}

	speaker := audio.NewSpeakerOutput(0, 1)
	sound := audio.NewPlayer(speaker, settings.SoundEnabled)

	state := system.NewGameStateSystem()
	state.Debug = cfg.Debug

	cols, rows := screen.Size()
	world := sim.NewWorld(float64(cols*cellWidth), float64(rows*cellHeight),
		sim.WithStore(store.Open(cfg.DataDir, sim.LeaderboardSize)))

	a := &app{
		cfg:      cfg,
		screen:   screen,
		driver:   sim.NewDriver(world, sim.NewScheduler(system.Pipeline(state)...), sound),
		sound:    sound,
		speaker:  speaker,
		skin:     skins.NewLibrary(filepath.Join(cfg.DataDir, "skins")).Get(settings.BallSkin),
		settings: settings,
		cols:     cols,
		rows:     rows,
	}
	a.inputs = input.NewNormalizer(a.bounds, sound)
	return a
}

// bounds is the playfield in pixel coordinates. The terminal is the whole
// playfield, so the origin is zero.
func (a *app) bounds() input.Rect {
	return input.Rect{W: float64(a.cols * cellWidth), H: float64(a.rows * cellHeight)}
}

func (a *app) run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.driver.Start()
	defer a.speaker.Close()
	defer a.driver.Stop()

	go func() {
		if err := a.driver.Run(ctx, tickInterval); err != nil && ctx.Err() == nil {
			log.Printf("termjuggle: %v", err)
		}
	}()
	go a.drawLoop(ctx)

	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		if !a.handle(ev) {
			return
		}
	}
}

// handle processes one terminal event and reports whether to keep going.
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		cols, rows := a.screen.Size()
		a.driver.Do(func(w *sim.World) {
			a.cols, a.rows = cols, rows
			w.Resize(float64(cols*cellWidth), float64(rows*cellHeight))
		})
	case *tcell.EventMouse:
		x, y := ev.Position()
		p := input.Point{X: float64(x*cellWidth + cellWidth/2), Y: float64(y*cellHeight + cellHeight/2)}
		a.driver.Do(func(w *sim.World) {
			a.inputs.Apply(w, input.Event{Kind: input.KindMouse, Points: []input.Point{p}})
		})
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			a.requestReset()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				a.requestReset()
			case 's':
				a.toggleSound()
			}
		}
	}
	return true
}

func (a *app) requestReset() {
	a.sound.Activate()
	a.driver.Do(func(w *sim.World) {
		w.RequestReset()
	})
}

func (a *app) toggleSound() {
	a.sound.Activate()
	a.settings.SoundEnabled = !a.settings.SoundEnabled
	a.sound.SetEnabled(a.settings.SoundEnabled)
	if err := config.SaveSettings(a.cfg.SettingsPath(), a.settings); err != nil {
		log.Printf("termjuggle: %v", err)
	}
}

func (a *app) drawLoop(ctx context.Context) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			draw(a.screen, a.driver.Snapshot(), a.skin, a.sound.Enabled())
		}
	}
}
