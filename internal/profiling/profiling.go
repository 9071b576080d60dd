// Package profiling is a lightweight CPU tracker for per-render timing.
package profiling

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Tracker accumulates named durations between calls to Reset.
// It is owned by the render thread and is not safe for concurrent use.
type Tracker struct {
	totals map[string]time.Duration
	now    func() time.Time
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{
		totals: make(map[string]time.Duration),
		now:    time.Now,
	}
}

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer tracker.Track("subsystem.Operation")()
func (t *Tracker) Track(name string) func() {
	start := t.now()
	return func() {
		t.totals[name] += t.now().Sub(start)
	}
}

// Reset clears all totals. Call at the start of each render.
func (t *Tracker) Reset() {
	for k := range t.totals {
		delete(t.totals, k)
	}
}

// Get returns the accumulated duration for name
func (t *Tracker) Get(name string) time.Duration {
	return t.totals[name]
}

// TopN formats the n largest totals, longest first.
// Example: "renderer.Render:4.2ms, *meshes.Meshes:2.1ms"
func (t *Tracker) TopN(n int) string {
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(t.totals))
	for k, v := range t.totals {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, list[i].name+":"+formatMs(list[i].dur))
	}
	return strings.Join(parts, ", ")
}

// NameOf returns a tracking name for a value based on its type
func NameOf(v any) string {
	return fmt.Sprintf("%T", v)
}

// keep one decimal; drop ".0" for whole milliseconds
func formatMs(d time.Duration) string {
	tenths := d.Microseconds() / 100
	if tenths%10 == 0 {
		return fmt.Sprintf("%dms", tenths/10)
	}
	return fmt.Sprintf("%d.%dms", tenths/10, tenths%10)
}
