package config

import "testing"

func TestFPSLimitClamped(t *testing.T) {
	defer SetFPSLimit(GetFPSLimit())

	SetFPSLimit(-5)
	if got := GetFPSLimit(); got != 0 {
		t.Fatalf("negative limit: got %d, want 0", got)
	}
	SetFPSLimit(5000)
	if got := GetFPSLimit(); got != 1000 {
		t.Fatalf("huge limit: got %d, want 1000", got)
	}
}

func TestToggleOverlay(t *testing.T) {
	defer SetShowOverlay(GetShowOverlay())

	SetShowOverlay(false)
	if !ToggleOverlay() {
		t.Fatalf("toggle from hidden should show overlay")
	}
	if ToggleOverlay() {
		t.Fatalf("second toggle should hide overlay")
	}
}

func TestStereoFocusClamped(t *testing.T) {
	defer SetStereoFocus(GetStereoFocus())

	SetStereoFocus(0)
	if got := GetStereoFocus(); got != 0.1 {
		t.Errorf("focus: got %v, want 0.1", got)
	}
}
