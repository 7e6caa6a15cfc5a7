// Package rain builds the falling-cube pool and drives each cube's drop cycle.
package rain

import "cube-rain/internal/scene"

const (
	// Step is the cube edge length and the grid cell size.
	Step = 100
	// PoolSize is the fixed number of cubes; the pool never grows or shrinks.
	PoolSize = 700

	// Spread is the side of the square the cubes land in.
	Spread = 6000
	// DropHeight is where every fall starts.
	DropHeight = 5000
	// RestHeight is the y of a landed cube's centre.
	RestHeight = Step/2 + 10

	// GridSize is the floor's half extent.
	GridSize = 10000

	CubeColor    scene.Color = 0xFF0000
	OutlineColor scene.Color = 0xFF0000
	GridColor    scene.Color = 0x444444
)

// Random supplies uniform values in [0,1). *math/rand/v2.Rand satisfies it.
type Random interface {
	Float64() float64
}
