package sim

// System advances one concern of the world by a tick.
type System interface {
	Update(w *World)
}

// Gated is implemented by systems that only run in some game states. The
// state is checked right before each system runs, so a transition made by an
// earlier system in the same tick is respected.
type Gated interface {
	ActiveIn(state GameState) bool
}

// Scheduler runs systems in registration order.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World) {
	if s == nil || w == nil {
		return
	}
	for _, system := range s.systems {
		if gated, ok := system.(Gated); ok && !gated.ActiveIn(w.State) {
			continue
		}
		system.Update(w)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
