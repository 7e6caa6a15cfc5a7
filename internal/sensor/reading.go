// Package sensor carries device-orientation readings from a phone to the render loop.
package sensor

import "math"

// Reading mirrors a browser deviceorientation event. Angles are degrees; a nil
// angle means the device reported null.
type Reading struct {
	Alpha *float64 `json:"alpha"`
	Beta  *float64 `json:"beta"`
	Gamma *float64 `json:"gamma"`
	// ScreenOrientation is the screen rotation angle (0, 90, -90, 180).
	ScreenOrientation float64 `json:"orientation"`
}

// NewReading builds a reading with every angle present.
func NewReading(alpha, beta, gamma, screen float64) Reading {
	return Reading{Alpha: &alpha, Beta: &beta, Gamma: &gamma, ScreenOrientation: screen}
}

// HasAlpha reports whether the primary angle is usable: present, non-zero and not NaN.
// Desktop browsers fire the event with a null alpha.
func (r Reading) HasAlpha() bool {
	return r.Alpha != nil && *r.Alpha != 0 && !math.IsNaN(*r.Alpha)
}

// Angles returns alpha, beta and gamma with missing values as 0.
func (r Reading) Angles() (alpha, beta, gamma float64) {
	return deref(r.Alpha), deref(r.Beta), deref(r.Gamma)
}

func deref(v *float64) float64 {
	if v == nil || math.IsNaN(*v) {
		return 0
	}
	return *v
}
