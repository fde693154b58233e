package ordercode

import (
	"regexp"
	"testing"
	"time"
)

func TestNextFormat(t *testing.T) {
	g, err := NewGenerator()
	if err != nil {
		t.Fatalf("new generator failed: %v", err)
	}
	g.now = func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }

	pattern := regexp.MustCompile(`^SMA-20260901-[A-Z0-9]{4}$`)
	code := g.Next()
	if !pattern.MatchString(code) {
		t.Errorf("code %q does not match expected format", code)
	}
}

func TestNextSuffixVaries(t *testing.T) {
	g, err := NewGenerator()
	if err != nil {
		t.Fatalf("new generator failed: %v", err)
	}

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[g.Next()] = true
	}
	// 36^4 suffixes; 50 draws colliding down to a single value would mean
	// the generator is broken.
	if len(seen) < 2 {
		t.Errorf("generator produced %d distinct codes out of 50", len(seen))
	}
}
