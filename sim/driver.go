package sim

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrNotRunning = errors.New("sim: driver not running")

// Listener receives the notifications produced by a tick. It is called with
// the driver lock held and must not call back into the Driver.
type Listener interface {
	Notify(evt Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(evt Event)

func (f ListenerFunc) Notify(evt Event) {
	f(evt)
}

// Driver owns a World and advances it one tick at a time. Every access to the
// world (ticks, input, resize, reads) is serialized through one lock, so a
// host may call it from several goroutines.
type Driver struct {
	mu        sync.Mutex
	world     *World
	scheduler *Scheduler
	listeners []Listener
	running   bool
	stopCh    chan struct{}
}

func NewDriver(w *World, scheduler *Scheduler, listeners ...Listener) *Driver {
	return &Driver{
		world:     w,
		scheduler: scheduler,
		listeners: append([]Listener(nil), listeners...),
	}
}

// Start enables ticking. Starting a running driver is a no-op.
func (d *Driver) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return
	}
	d.running = true
	d.stopCh = make(chan struct{})
}

// Stop disables ticking. Once it returns no tick is in progress and none will
// run until Start is called again. Stop is idempotent.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.running {
		return
	}
	d.running = false
	close(d.stopCh)
}

func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}

// Tick runs one simulation step if the driver is running and reports whether
// it did.
func (d *Driver) Tick() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.running || d.world == nil {
		return false
	}

	w := d.world
	w.Tick++
	w.floorCrossed = false
	d.scheduler.Update(w)

	for _, evt := range w.events.Drain() {
		for _, l := range d.listeners {
			l.Notify(evt)
		}
	}
	return true
}

// Run ticks at the given interval until ctx is done or the driver is
// stopped. It is meant for hosts without their own frame callback.
func (d *Driver) Run(ctx context.Context, interval time.Duration) error {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return ErrNotRunning
	}
	stop := d.stopCh
	d.mu.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stop:
			return nil
		case <-ticker.C:
			d.Tick()
		}
	}
}

// Do runs fn with exclusive access to the world, between ticks.
func (d *Driver) Do(fn func(w *World)) {
	if fn == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.world == nil {
		return
	}
	fn(d.world)
}

// Snapshot returns a copy of the world for presentation.
func (d *Driver) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.world == nil {
		return Snapshot{}
	}
	return d.world.Snapshot()
}
