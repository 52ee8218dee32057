package input

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenSource polls ebiten's cursor and touch state once per update and
// reports what changed as raw events.
type EbitenSource struct {
	touchIDs   []ebiten.TouchID
	hadTouches bool

	primed  bool
	cursorX int
	cursorY int
}

func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

// Poll returns the events since the previous call. A touch event is reported
// every frame while fingers are down and once more when the last one lifts.
// The mouse is reported when it moves or is clicked.
func (s *EbitenSource) Poll() []Event {
	var events []Event

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	slices.Sort(s.touchIDs)
	if len(s.touchIDs) > 0 || s.hadTouches {
		points := make([]Point, 0, len(s.touchIDs))
		for _, id := range s.touchIDs {
			x, y := ebiten.TouchPosition(id)
			points = append(points, Point{X: float64(x), Y: float64(y)})
		}
		events = append(events, Event{Kind: KindTouch, Points: points})
	}
	s.hadTouches = len(s.touchIDs) > 0

	x, y := ebiten.CursorPosition()
	moved := s.primed && (x != s.cursorX || y != s.cursorY)
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.primed = true
	s.cursorX, s.cursorY = x, y
	if moved || clicked {
		events = append(events, Event{Kind: KindMouse, Points: []Point{{X: float64(x), Y: float64(y)}}})
	}

	return events
}
