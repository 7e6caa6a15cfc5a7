package rain

import (
	"math"
	"time"

	"cube-rain/internal/scene"
	"cube-rain/internal/tween"

	"github.com/tanema/gween/ease"
)

// State is where a cube is in its drop cycle.
type State int

const (
	StateIdle State = iota
	StateFalling
	StateResting
)

func (s State) String() string {
	switch s {
	case StateFalling:
		return "falling"
	case StateResting:
		return "resting"
	default:
		return "idle"
	}
}

// RestDelay is how long a landed cube waits before falling again.
const RestDelay = 1000 * time.Millisecond

type cube struct {
	state    State
	duration time.Duration
	drops    int
}

// Driver runs the fall/rest cycle of every cube it is handed. Cycles never end.
type Driver struct {
	sched *tween.Scheduler
	rng   Random
	cubes map[*scene.LineSegments]*cube
}

func NewDriver(sched *tween.Scheduler, rng Random) *Driver {
	return &Driver{
		sched: sched,
		rng:   rng,
		cubes: make(map[*scene.LineSegments]*cube),
	}
}

// StartDrop places o above a random grid cell and begins its fall.
func (d *Driver) StartDrop(o *scene.LineSegments) {
	c, ok := d.cubes[o]
	if !ok {
		c = &cube{}
		d.cubes[o] = c
	}

	o.Position[0] = d.snap()
	o.Position[1] = DropHeight
	o.Position[2] = d.snap()
	o.UpdateMatrix()

	sec := 3*d.rng.Float64() + 3
	c.duration = time.Duration(sec * float64(time.Second))
	c.state = StateFalling
	c.drops++

	d.sched.To(&o.Position[1], RestHeight, c.duration, ease.OutBounce, func() {
		d.endDrop(o)
	})
}

func (d *Driver) endDrop(o *scene.LineSegments) {
	d.cubes[o].state = StateResting
	d.sched.After(RestDelay, func() {
		d.StartDrop(o)
	})
}

// snap picks a coordinate in the spread square centred on a grid cell.
// Halves round toward +Inf so -0.5 cells land on 0, not -1.
func (d *Driver) snap() float32 {
	u := d.rng.Float64()
	return float32(Step*math.Floor(Spread*(u-0.5)/Step+0.5) + Step/2)
}

// State returns the cube's cycle state; unknown cubes are idle.
func (d *Driver) State(o *scene.LineSegments) State {
	if c, ok := d.cubes[o]; ok {
		return c.state
	}
	return StateIdle
}

// FallDuration returns the duration chosen for the cube's latest fall.
func (d *Driver) FallDuration(o *scene.LineSegments) time.Duration {
	if c, ok := d.cubes[o]; ok {
		return c.duration
	}
	return 0
}

// Drops returns how many falls the cube has started.
func (d *Driver) Drops(o *scene.LineSegments) int {
	if c, ok := d.cubes[o]; ok {
		return c.drops
	}
	return 0
}
