package main

import (
	"testing"

	"cube-rain/internal/config"
)

func TestApplyWritesConfig(t *testing.T) {
	defer config.SetStereo(config.GetStereo())
	defer config.SetFPSLimit(config.GetFPSLimit())
	defer config.SetEyeSeparation(config.GetEyeSeparation())

	options{fps: 30, mono: true, eyeSep: 6, focus: 20, rotateSpeed: 1}.apply()

	if config.GetStereo() {
		t.Fatalf("--mono should disable stereo")
	}
	if got := config.GetFPSLimit(); got != 30 {
		t.Fatalf("fps limit: got %d, want 30", got)
	}
	if got := config.GetEyeSeparation(); got != 6 {
		t.Fatalf("eye separation: got %v, want 6", got)
	}
}

func TestSeededRandomIsRepeatable(t *testing.T) {
	if (options{}).random() != nil {
		t.Fatalf("zero seed should leave the source to the app")
	}
	a, b := options{seed: 7}.random(), options{seed: 7}.random()
	for i := 0; i < 5; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("same seed produced different sequences")
		}
	}
}
