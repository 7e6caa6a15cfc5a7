package profiling

import (
	"strings"
	"testing"
	"time"
)

func record(name string, d time.Duration) {
	mu.Lock()
	frameTotals[name] += d
	mu.Unlock()
}

func TestSumWithPrefix(t *testing.T) {
	ResetFrame()
	record("rain.Advance", 2*time.Millisecond)
	record("rain.Refresh", 3*time.Millisecond)
	record("stereo.Render", 7*time.Millisecond)

	if got := SumWithPrefix("rain."); got != 5*time.Millisecond {
		t.Fatalf("rain bucket: got %v, want 5ms", got)
	}
	ResetFrame()
	if got := SumWithPrefix(""); got != 0 {
		t.Fatalf("after reset: got %v, want 0", got)
	}
}

func TestTopNOrdering(t *testing.T) {
	ResetFrame()
	record("a.Small", 1500*time.Microsecond)
	record("b.Big", 4*time.Millisecond)
	record("c.Mid", 2*time.Millisecond)

	got := TopN(2)
	want := "b.Big:4ms, c.Mid:2ms"
	if got != want {
		t.Fatalf("TopN(2): got %q, want %q", got, want)
	}
	if !strings.Contains(TopN(10), "a.Small:1.5ms") {
		t.Errorf("TopN(10) should include fractional bucket, got %q", TopN(10))
	}
}

func TestTrackRecords(t *testing.T) {
	ResetFrame()
	stop := Track("clock.Sleep")
	time.Sleep(time.Millisecond)
	stop()
	if SumWithPrefix("clock.") <= 0 {
		t.Fatalf("Track did not record a duration")
	}
}
