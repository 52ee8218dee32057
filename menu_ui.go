package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"
	"sync"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/juggler/sim"
	"github.com/milk9111/juggler/skins"
	"golang.design/x/clipboard"
)

const (
	menuWidth  = 300
	menuHeight = 360
)

type overlay int

const (
	overlayNone overlay = iota
	overlaySettings
	overlayLeaderboard
)

var (
	textWhite = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	textGold  = color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	textMuted = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x99}
)

// Menu holds the start, game-over, settings and leaderboard panels. Only
// one is shown at a time; none while playing.
type Menu struct {
	g  *Game
	ui *ebitenui.UI

	root    *widget.Container
	shown   *widget.Container
	overlay overlay

	start       *widget.Container
	gameOver    *widget.Container
	settings    *widget.Container
	leaderboard *widget.Container

	finalScore *widget.Text
	finalBest  *widget.Text
	copyBtn    *widget.Button
	soundBtn   *widget.Button
	skinBtns   map[string]*widget.Button
	board      *widget.Container

	face      ebtext.Face
	titleFace ebtext.Face
	btnImg    *widget.ButtonImage
	btnText   *widget.ButtonTextColor

	snap sim.Snapshot
}

func NewMenu(g *Game) *Menu {
	m := &Menu{
		g:         g,
		face:      g.renderer.Face(20),
		titleFace: g.renderer.Face(44),
		skinBtns:  make(map[string]*widget.Button, len(skins.Names)),
	}

	idle := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})
	pressed := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff})
	m.btnImg = &widget.ButtonImage{Idle: idle, Pressed: pressed}
	m.btnText = &widget.ButtonTextColor{Idle: textWhite}

	m.start = m.buildStart()
	m.gameOver = m.buildGameOver()
	m.settings = m.buildSettings()
	m.leaderboard = m.buildLeaderboard()

	m.root = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	m.ui = &ebitenui.UI{Container: m.root}
	m.Refresh()
	return m
}

func (m *Menu) panel(children ...widget.PreferredSizeLocateableWidget) *widget.Container {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 200})
	p := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(menuWidth, menuHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	for _, c := range children {
		p.AddChild(c)
	}
	return p
}

func (m *Menu) text(label string, face *ebtext.Face, clr color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, face, clr),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

func (m *Menu) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(m.btnImg),
		widget.ButtonOpts.Text(label, &m.face, m.btnText),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter, Stretch: true})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (m *Menu) buildStart() *widget.Container {
	return m.panel(
		m.text("PRO JUGGLER", &m.titleFace, textWhite),
		m.text("Keep the ball in the air", &m.face, textMuted),
		m.button("Play", m.g.RequestReset),
		m.button("Settings", func() { m.open(overlaySettings) }),
		m.button("Leaderboard", func() { m.open(overlayLeaderboard) }),
	)
}

func (m *Menu) buildGameOver() *widget.Container {
	m.finalScore = m.text("Score: 0", &m.face, textWhite)
	m.finalBest = m.text("Best: 0", &m.face, textGold)
	m.copyBtn = m.button("Copy Score", m.copyScore)
	return m.panel(
		m.text("GAME OVER", &m.titleFace, textWhite),
		m.finalScore,
		m.finalBest,
		m.button("Play Again", m.g.RequestReset),
		m.copyBtn,
		m.button("Settings", func() { m.open(overlaySettings) }),
		m.button("Leaderboard", func() { m.open(overlayLeaderboard) }),
	)
}

func (m *Menu) buildSettings() *widget.Container {
	m.soundBtn = m.button("Sound: On", func() {
		s := m.g.Settings()
		s.SoundEnabled = !s.SoundEnabled
		m.g.UpdateSettings(s)
	})

	children := []widget.PreferredSizeLocateableWidget{
		m.text("SETTINGS", &m.titleFace, textWhite),
		m.soundBtn,
		m.text("Ball skin", &m.face, textMuted),
	}
	for _, name := range skins.Names {
		btn := m.button(skinLabel(name), func() {
			s := m.g.Settings()
			s.BallSkin = name
			m.g.UpdateSettings(s)
		})
		m.skinBtns[name] = btn
		children = append(children, btn)
	}
	children = append(children, m.button("Close", func() { m.open(overlayNone) }))
	return m.panel(children...)
}

func (m *Menu) buildLeaderboard() *widget.Container {
	m.board = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	return m.panel(
		m.text("LEADERBOARD", &m.titleFace, textWhite),
		m.board,
		m.button("Close", func() { m.open(overlayNone) }),
	)
}

func (m *Menu) open(o overlay) {
	m.overlay = o
	if o == overlayLeaderboard {
		m.fillBoard(m.snap.Leaderboard)
	}
}

// OverlayOpen reports whether settings or the leaderboard are showing.
func (m *Menu) OverlayOpen() bool {
	return m.overlay != overlayNone
}

func (m *Menu) fillBoard(board []int) {
	m.board.RemoveChildren()
	if len(board) == 0 {
		m.board.AddChild(m.text("No scores yet", &m.face, textMuted))
		return
	}
	for i, score := range board {
		label := fmt.Sprintf("#%d", i+1)
		clr := color.Color(textWhite)
		if i == 0 {
			label = "Best"
			clr = textGold
		}
		m.board.AddChild(m.text(fmt.Sprintf("%-6s %6d", label, score), &m.face, clr))
	}
}

// Refresh updates labels that depend on the user settings.
func (m *Menu) Refresh() {
	s := m.g.Settings()
	if s.SoundEnabled {
		m.soundBtn.Text().Label = "Sound: On"
	} else {
		m.soundBtn.Text().Label = "Sound: Off"
	}
	for name, btn := range m.skinBtns {
		label := skinLabel(name)
		if name == s.BallSkin {
			label = "> " + label + " <"
		}
		btn.Text().Label = label
	}
}

func skinLabel(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

var clipboardInit = sync.OnceValue(clipboard.Init)

func (m *Menu) copyScore() {
	if err := clipboardInit(); err != nil {
		log.Printf("menu: clipboard unavailable: %v", err)
		m.copyBtn.Text().Label = "Copy unavailable"
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(fmt.Sprintf("I juggled %d kicks in Pro Juggler!", m.snap.Score)))
	m.copyBtn.Text().Label = "Copied!"
}

func (m *Menu) panelFor(state sim.GameState) *widget.Container {
	switch m.overlay {
	case overlaySettings:
		return m.settings
	case overlayLeaderboard:
		return m.leaderboard
	}
	switch state {
	case sim.StateStart:
		return m.start
	case sim.StateGameOver:
		return m.gameOver
	default:
		return nil
	}
}

// Update swaps in the panel for the current state and runs the UI.
func (m *Menu) Update(snap sim.Snapshot) {
	if snap.State == sim.StatePlaying {
		m.overlay = overlayNone
	}
	if m.snap.State != sim.StateGameOver && snap.State == sim.StateGameOver {
		m.copyBtn.Text().Label = "Copy Score"
	}
	m.snap = snap

	m.finalScore.Label = fmt.Sprintf("Score: %d", snap.Score)
	m.finalBest.Label = fmt.Sprintf("Best: %d", snap.HighScore)

	if next := m.panelFor(snap.State); next != m.shown {
		m.root.RemoveChildren()
		if next != nil {
			m.root.AddChild(next)
		}
		m.shown = next
	}
	m.ui.Update()
}

func (m *Menu) Draw(screen *ebiten.Image) {
	if m.shown == nil {
		return
	}
	m.ui.Draw(screen)
}
