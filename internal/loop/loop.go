// Package loop drives the simulation one frame at a time: sample input once,
// update with a clamped delta time, then draw.
package loop

import (
	"time"

	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// DefaultMaxDt caps a single step so stalls do not teleport obstacles.
const DefaultMaxDt = 0.05

// Clock turns frame timestamps into clamped delta times.
type Clock struct {
	MaxDt float64 // Seconds

	last    time.Time
	started bool
}

// NewClock creates a clock that never reports more than maxDt seconds.
// A non-positive maxDt falls back to DefaultMaxDt.
func NewClock(maxDt float64) *Clock {
	if maxDt <= 0 {
		maxDt = DefaultMaxDt
	}
	return &Clock{MaxDt: maxDt}
}

// Tick returns the seconds elapsed since the previous Tick, clamped to
// [0, MaxDt]. The first call after construction or Reset returns 0.
func (c *Clock) Tick(ts time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = ts
		return 0
	}

	dt := ts.Sub(c.last).Seconds()
	c.last = ts
	if dt < 0 {
		return 0
	}
	if dt > c.MaxDt {
		return c.MaxDt
	}
	return dt
}

// Reset forgets the previous timestamp.
func (c *Clock) Reset() {
	c.started = false
	c.last = time.Time{}
}

// Simulation is what the driver steps every frame.
type Simulation interface {
	Update(dt float64, in core.Intent)
	Draw()
}

// Driver runs one update followed by one draw per frame.
type Driver struct {
	Clock *Clock
	Input core.InputSource
	Sim   Simulation

	frames uint64
}

// NewDriver wires a driver. A nil input source means no input.
func NewDriver(maxDt float64, in core.InputSource, sim Simulation) *Driver {
	if in == nil {
		in = core.StaticInput{}
	}
	return &Driver{
		Clock: NewClock(maxDt),
		Input: in,
		Sim:   sim,
	}
}

// Frame advances the simulation to ts and returns the dt it used.
func (d *Driver) Frame(ts time.Time) float64 {
	dt := d.Clock.Tick(ts)
	intent := d.Input.Intent()
	d.Sim.Update(dt, intent)
	d.Sim.Draw()
	d.frames++
	return dt
}

// Frames returns how many frames have run.
func (d *Driver) Frames() uint64 {
	return d.frames
}

// Reset restarts timing so the next frame has dt 0.
func (d *Driver) Reset() {
	d.Clock.Reset()
}
