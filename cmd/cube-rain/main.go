// cube-rain - stereoscopic cube rain
// Seven hundred wireframe cubes drop onto a grid and bounce to rest, drawn
// side by side for a phone VR viewer.
//
// Controls:
//
//	Mouse drag  - Look around (until an orientation feed connects)
//	Click       - Fullscreen (once an orientation feed is driving the camera)
//	F           - Fullscreen
//	V           - Toggle overlay (FPS, control mode, frame timings)
//	Esc         - Quit
package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"cube-rain/internal/config"

	"github.com/spf13/cobra"
)

func init() {
	runtime.LockOSThread()
}

type options struct {
	fps             int
	mono            bool
	eyeSep          float32
	focus           float32
	overlay         bool
	orbitDamping    bool
	rotateSpeed     float32
	width           int
	height          int
	orientationAddr string
	seed            uint64
}

func main() {
	var opts options

	cmd := &cobra.Command{
		Use:   "cube-rain",
		Short: "Stereoscopic cube rain for phone VR viewers",
		Long: `cube-rain - stereoscopic cube rain

Wireframe cubes fall from the sky and bounce onto a grid, rendered side by side
for a head-mounted phone viewer.

Drag to look around. Start with --orientation-addr and open the printed URL on a
phone to drive the camera from its gyroscope; after that, click to go fullscreen.

Keys:
  F    Fullscreen
  V    Toggle overlay
  Esc  Quit`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.apply()
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVar(&opts.fps, "fps", 0, "FPS limit (0 = vsync)")
	cmd.Flags().BoolVar(&opts.mono, "mono", false, "Render a single viewport instead of two eyes")
	cmd.Flags().Float32Var(&opts.eyeSep, "eye-sep", config.GetEyeSeparation(), "Eye separation in world units")
	cmd.Flags().Float32Var(&opts.focus, "focus", config.GetStereoFocus(), "Stereo focal distance")
	cmd.Flags().BoolVar(&opts.overlay, "overlay", false, "Show the overlay at startup")
	cmd.Flags().BoolVar(&opts.orbitDamping, "orbit-damping", false, "Let orbit drags coast to a stop")
	cmd.Flags().Float32Var(&opts.rotateSpeed, "rotate-speed", config.GetOrbitRotateSpeed(), "Orbit rotate speed")
	cmd.Flags().IntVar(&opts.width, "width", 900, "Window width")
	cmd.Flags().IntVar(&opts.height, "height", 600, "Window height")
	cmd.Flags().StringVar(&opts.orientationAddr, "orientation-addr", "", "Serve the orientation feed on this address, e.g. :8080")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Random seed for drop positions (0 = time based)")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "cube-rain:", err)
		os.Exit(1)
	}
}

func (o options) apply() {
	config.SetFPSLimit(o.fps)
	config.SetStereo(!o.mono)
	config.SetEyeSeparation(o.eyeSep)
	config.SetStereoFocus(o.focus)
	config.SetShowOverlay(o.overlay)
	config.SetOrbitDamping(o.orbitDamping)
	config.SetOrbitRotateSpeed(o.rotateSpeed)
}

// random returns the drop position source; a zero seed picks one from the clock.
func (o options) random() *rand.Rand {
	if o.seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(o.seed, o.seed))
}
