package kitelog

import (
	"bytes"
	"fmt"
	"text/tabwriter"
	"time"
)

type duration struct {
	name     string
	duration time.Duration
}

// Durations tracks the time spent in named phases
type Durations []duration

// Record records a duration
func (t *Durations) Record(name string, d time.Duration) {
	*t = append(*t, duration{name, d})
}

// Time runs f and records how long it took
func (t *Durations) Time(name string, f func()) {
	start := time.Now()
	f()
	t.Record(name, time.Since(start))
}

// Total returns the sum of the recorded durations
func (t Durations) Total() time.Duration {
	var total time.Duration
	for _, entry := range t {
		total += entry.duration
	}
	return total
}

// Flush writes the recorded durations as an aligned table to i and
// resets the tracker
func (t *Durations) Flush(i Interface) {
	var b bytes.Buffer
	tw := tabwriter.NewWriter(&b, 4, 4, 0, ' ', 0)
	for _, entry := range *t {
		fmt.Fprintf(tw, "   %s\t%s\n", entry.name, entry.duration)
	}
	tw.Flush()

	i.Println(b.String())
	*t = nil
}

// WithDurations returns a derived Logger with a new Durations tracker
func (l *Logger) WithDurations() *Logger {
	out := *l
	out.Durations = nil
	return &out
}
