package config

import "sync"

// RenderSettings holds render and input configuration
type RenderSettings struct {
	mu sync.RWMutex

	fpsLimit      int // 0 = paced by vsync
	stereo        bool
	eyeSeparation float32
	stereoFocus   float32
	showOverlay   bool

	orbitDamping     bool
	orbitRotateSpeed float32
}

var globalRenderSettings = &RenderSettings{
	fpsLimit:         0,
	stereo:           true,
	eyeSeparation:    3.0,
	stereoFocus:      15.0,
	showOverlay:      false,
	orbitDamping:     false,
	orbitRotateSpeed: 1.0,
}

// GetFPSLimit returns the frame cap; 0 means the swap chain paces frames
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalRenderSettings.fpsLimit = limit
}

// GetStereo reports whether side-by-side rendering is enabled
func GetStereo() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.stereo
}

// SetStereo enables or disables side-by-side rendering
func SetStereo(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.stereo = enabled
}

// GetEyeSeparation returns the distance between the two eye cameras in world units
func GetEyeSeparation() float32 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.eyeSeparation
}

// SetEyeSeparation sets the eye camera distance in world units
func SetEyeSeparation(sep float32) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if sep < 0 {
		sep = 0
	}

	globalRenderSettings.eyeSeparation = sep
}

// GetStereoFocus returns the zero-parallax distance for the eye frusta
func GetStereoFocus() float32 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.stereoFocus
}

// SetStereoFocus sets the zero-parallax distance
func SetStereoFocus(focus float32) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Focus at or behind the eye collapses the frustum
	if focus < 0.1 {
		focus = 0.1
	}

	globalRenderSettings.stereoFocus = focus
}

// GetShowOverlay returns whether the overlay is drawn
func GetShowOverlay() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.showOverlay
}

// SetShowOverlay sets overlay visibility
func SetShowOverlay(show bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.showOverlay = show
}

// ToggleOverlay flips overlay visibility and returns the new state
func ToggleOverlay() bool {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.showOverlay = !globalRenderSettings.showOverlay
	return globalRenderSettings.showOverlay
}

// GetOrbitDamping reports whether orbit rotation keeps decaying momentum after a drag
func GetOrbitDamping() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.orbitDamping
}

// SetOrbitDamping enables or disables orbit momentum
func SetOrbitDamping(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.orbitDamping = enabled
}

// GetOrbitRotateSpeed returns the drag-to-rotation multiplier
func GetOrbitRotateSpeed() float32 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.orbitRotateSpeed
}

// SetOrbitRotateSpeed sets the drag-to-rotation multiplier
func SetOrbitRotateSpeed(speed float32) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if speed < 0.05 {
		speed = 0.05
	}
	if speed > 10 {
		speed = 10
	}

	globalRenderSettings.orbitRotateSpeed = speed
}
