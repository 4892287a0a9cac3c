package status

import (
	"encoding/json"
	"math/rand"
	"sort"
	"sync"
	"time"
)

const sampleSize = 1024

// samplePercentiles are the percentiles reported by Values
var samplePercentiles = []float64{0.25, 0.5, 0.75, 0.95, 0.99}

// sample keeps a uniform random sample of at most sampleSize recorded
// values (reservoir sampling). Only a fraction rate of the calls to record
// is considered.
type sample struct {
	m      sync.Mutex
	rate   float64
	seen   int64
	values []int64
	rand   *rand.Rand
}

func (s *sample) init() {
	s.rate = 1
	s.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
}

// SetSampleRate sets the fraction of recorded values kept, between 0 and 1
func (s *sample) SetSampleRate(rate float64) {
	s.m.Lock()
	defer s.m.Unlock()
	s.rate = rate
}

func (s *sample) record(v int64) {
	s.m.Lock()
	defer s.m.Unlock()
	if s.rate < 1 && s.rand.Float64() >= s.rate {
		return
	}
	s.seen++
	if len(s.values) < sampleSize {
		s.values = append(s.values, v)
		return
	}
	if i := s.rand.Int63n(s.seen); i < sampleSize {
		s.values[i] = v
	}
}

// Values returns the sampled values at samplePercentiles, or zeros if
// nothing was recorded.
func (s *sample) Values() []int64 {
	s.m.Lock()
	sorted := append([]int64(nil), s.values...)
	s.m.Unlock()

	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	ret := make([]int64, len(samplePercentiles))
	if len(sorted) == 0 {
		return ret
	}
	for i, p := range samplePercentiles {
		idx := int(float64(len(sorted)) * p)
		if idx >= len(sorted) {
			idx = len(sorted) - 1
		}
		ret[i] = sorted[idx]
	}
	return ret
}

// Count returns the number of values recorded
func (s *sample) Count() int64 {
	s.m.Lock()
	defer s.m.Unlock()
	return s.seen
}

// MarshalJSON reports the count and percentile values
func (s *sample) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Count       int64
		Percentiles []float64
		Values      []int64
	}{s.Count(), samplePercentiles, s.Values()})
}

// SampleDuration samples durations, reported in nanoseconds
type SampleDuration struct {
	sample
}

func newSampleDuration() *SampleDuration {
	d := &SampleDuration{}
	d.init()
	return d
}

// Record records a duration
func (d *SampleDuration) Record(dur time.Duration) {
	d.record(int64(dur))
}

// DeferRecord records the time elapsed since start, e.g
//   defer d.DeferRecord(time.Now())
func (d *SampleDuration) DeferRecord(start time.Time) {
	d.Record(time.Since(start))
}

// SampleBytes samples sizes in bytes
type SampleBytes struct {
	sample
}

func newSampleBytes() *SampleBytes {
	b := &SampleBytes{}
	b.init()
	return b
}

// Record records a size
func (b *SampleBytes) Record(n int64) {
	b.record(n)
}
