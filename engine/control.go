package engine

import "sync"

// State is one node of the engine's Idle -> Running <-> Paused -> Stopped
// state machine.
type State int

const (
	Idle State = iota
	Running
	Paused
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case Stopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Control is the external handle for pausing, resuming, and stopping a
// running engine. The driver checks it between pipeline steps; the current
// step is always allowed to complete before a pause or stop takes effect.
type Control struct {
	mu       sync.Mutex
	cond     *sync.Cond
	state    State
	stopOnce bool
}

func newControl() *Control {
	c := &Control{state: Idle}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// State returns the current state.
func (c *Control) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Pause requests the driver suspend after completing its current step.
// A no-op if the engine isn't Running.
func (c *Control) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Running {
		c.state = Paused
	}
}

// Resume wakes a paused driver. A no-op if the engine isn't Paused.
func (c *Control) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Paused {
		c.state = Running
		c.cond.Broadcast()
	}
}

// Stop requests the driver halt after completing its current step. Once
// Stopped, the engine cannot be resumed; a new run must be started.
func (c *Control) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Stopped
	c.cond.Broadcast()
}

func (c *Control) toRunning() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Idle {
		c.state = Running
	}
}

// waitIfPaused blocks the driver goroutine while paused, returning once the
// state is Running or Stopped again. Runs between pipeline steps only.
func (c *Control) waitIfPaused() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.state == Paused {
		c.cond.Wait()
	}
}

func (c *Control) isStopped() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == Stopped
}
