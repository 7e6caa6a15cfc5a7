package rain

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"cube-rain/internal/scene"
	"cube-rain/internal/tween"
)

type constRandom float64

func (c constRandom) Float64() float64 { return float64(c) }

func TestStartDropWithHalfRandom(t *testing.T) {
	sched := tween.NewScheduler()
	d := NewDriver(sched, constRandom(0.5))
	o := scene.NewOutline(nil, nil, nil)

	d.StartDrop(o)

	if o.Position[0] != Step/2 || o.Position[2] != Step/2 {
		t.Fatalf("x,z: got %v,%v, want %v,%v", o.Position[0], o.Position[2], Step/2, Step/2)
	}
	if o.Position[1] != DropHeight {
		t.Fatalf("y: got %v, want %v", o.Position[1], DropHeight)
	}
	if got := d.FallDuration(o); got != 4500*time.Millisecond {
		t.Fatalf("duration: got %v, want 4.5s", got)
	}
	if got := d.State(o); got != StateFalling {
		t.Fatalf("state: got %v, want falling", got)
	}
	if got := o.Matrix.Col(3).Vec3(); got != o.Position {
		t.Fatalf("matrix not refreshed on start: got %v", got)
	}
}

func TestDropRestCycle(t *testing.T) {
	sched := tween.NewScheduler()
	d := NewDriver(sched, constRandom(0.5))
	o := scene.NewOutline(nil, nil, nil)
	d.StartDrop(o)

	sched.Advance(4500 * time.Millisecond)
	if o.Position[1] != RestHeight {
		t.Fatalf("landed y: got %v, want exactly %v", o.Position[1], RestHeight)
	}
	if d.State(o) != StateResting {
		t.Fatalf("state after landing: got %v, want resting", d.State(o))
	}

	sched.Advance(999 * time.Millisecond)
	if o.Position[1] != RestHeight || d.State(o) != StateResting {
		t.Fatalf("cube left rest before the delay: y=%v state=%v", o.Position[1], d.State(o))
	}

	sched.Advance(time.Millisecond)
	if o.Position[1] != DropHeight {
		t.Fatalf("new fall y: got %v, want %v", o.Position[1], DropHeight)
	}
	if d.State(o) != StateFalling || d.Drops(o) != 2 {
		t.Fatalf("second fall: state=%v drops=%d", d.State(o), d.Drops(o))
	}
}

func TestGridSnapAndRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	d := NewDriver(tween.NewScheduler(), rng)
	o := scene.NewOutline(nil, nil, nil)
	for i := 0; i < 5000; i++ {
		d.StartDrop(o)
		for _, v := range []float32{o.Position[0], o.Position[2]} {
			if math.Mod(float64(v)-Step/2, Step) != 0 {
				t.Fatalf("coordinate %v is not centred on a grid cell", v)
			}
			if math.Abs(float64(v)-Step/2) > Spread/2 {
				t.Fatalf("coordinate %v outside spread", v)
			}
		}
		if dur := d.FallDuration(o); dur < 3*time.Second || dur >= 6*time.Second {
			t.Fatalf("duration %v outside [3s,6s)", dur)
		}
	}
}

func TestSnapEdgesOfRandomRange(t *testing.T) {
	d := NewDriver(tween.NewScheduler(), constRandom(0))
	if got := d.snap(); got != -Spread/2+Step/2 {
		t.Errorf("u=0: got %v, want %v", got, -Spread/2+Step/2)
	}
	d.rng = constRandom(0.4999)
	if got := d.snap(); got != Step/2 {
		t.Errorf("u just below 0.5: got %v, want %v", got, Step/2)
	}
}

func TestBuildPoolSharesInstances(t *testing.T) {
	sc := scene.New()
	sched := tween.NewScheduler()
	d := NewDriver(sched, rand.New(rand.NewPCG(7, 7)))
	p := BuildPool(sc, PoolSize, d)

	if len(p.Outlines) != PoolSize {
		t.Fatalf("pool: got %d outlines, want %d", len(p.Outlines), PoolSize)
	}
	if len(sc.Children) != PoolSize {
		t.Fatalf("scene: got %d children, want %d", len(sc.Children), PoolSize)
	}
	for i, o := range p.Outlines {
		if o.Source.Geometry != p.Geometry || o.Source.Material != p.Material {
			t.Fatalf("outline %d does not share the cube geometry/material", i)
		}
		if o.Geometry != p.Edges || o.Material != p.LineMaterial {
			t.Fatalf("outline %d does not share the edge geometry/material", i)
		}
		if d.State(o) != StateFalling {
			t.Fatalf("outline %d not falling after generation", i)
		}
	}
	if sched.Active() != PoolSize {
		t.Fatalf("tweens: got %d, want %d", sched.Active(), PoolSize)
	}
}

func TestHeightsStayInRange(t *testing.T) {
	sc := scene.New()
	sched := tween.NewScheduler()
	d := NewDriver(sched, rand.New(rand.NewPCG(3, 4)))
	p := BuildPool(sc, PoolSize, d)

	for frame := 0; frame < 1200; frame++ {
		sched.Advance(16 * time.Millisecond)
		for _, o := range p.Outlines {
			// float32 easing may land a hair past either end mid-flight
			if y := o.Position[1]; y < RestHeight-0.01 || y > DropHeight+0.01 {
				t.Fatalf("frame %d: y=%v outside [%v,%v]", frame, y, RestHeight, DropHeight)
			}
		}
	}
}

func TestBuildGround(t *testing.T) {
	sc := scene.New()
	g := BuildGround(sc)
	if len(sc.Children) != 1 || sc.Children[0] != g {
		t.Fatalf("ground not added exactly once")
	}
}
