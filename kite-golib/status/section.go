package status

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"sync"
)

// Section represents a grouping of Counters, Ratios, Breakdowns and samples.
type Section struct {
	Name string

	Counters   map[string]*Counter
	Ratios     map[string]*Ratio
	Breakdowns map[string]*Breakdown

	SampleDurations map[string]*SampleDuration
	SampleBytes     map[string]*SampleBytes

	m sync.Mutex
}

// NewSection builds a new Section with the provided name, or returns the
// existing one.
func NewSection(name string) *Section {
	s.m.Lock()
	defer s.m.Unlock()

	section, exists := s.Sections[name]
	if !exists {
		section = newEmptySection(name)
		s.Sections[name] = section
	}
	return section
}

func newEmptySection(name string) *Section {
	return &Section{
		Name: name,

		Counters:   make(map[string]*Counter),
		Ratios:     make(map[string]*Ratio),
		Breakdowns: make(map[string]*Breakdown),

		SampleDurations: make(map[string]*SampleDuration),
		SampleBytes:     make(map[string]*SampleBytes),
	}
}

// MarshalJSON is implemented to avoid concurrent map access. It holds the section lock,
// and avoids recursive calls into MarshalJSON.
func (s *Section) MarshalJSON() ([]byte, error) {
	s.m.Lock()
	defer s.m.Unlock()

	// to avoid recursive call into MarshalJSON (and the subsequent deadlock),
	// create a temporary type to mask the MarshalJSON method
	type tmp Section
	return json.Marshal((*tmp)(s))
}

// Counter creates a new counter with the provided name.
func (s *Section) Counter(name string) *Counter {
	s.m.Lock()
	defer s.m.Unlock()

	counter, exists := s.Counters[name]
	if !exists {
		counter = &Counter{}
		s.Counters[name] = counter
	}
	return counter
}

// Ratio creates a new ratio with the provided name.
func (s *Section) Ratio(name string) *Ratio {
	s.m.Lock()
	defer s.m.Unlock()

	ratio, exists := s.Ratios[name]
	if !exists {
		ratio = &Ratio{}
		s.Ratios[name] = ratio
	}
	return ratio
}

// Breakdown creates a new breakdown with the provided name.
func (s *Section) Breakdown(name string) *Breakdown {
	s.m.Lock()
	defer s.m.Unlock()

	breakdown, exists := s.Breakdowns[name]
	if !exists {
		breakdown = &Breakdown{}
		s.Breakdowns[name] = breakdown
	}
	return breakdown
}

// SampleDuration creates a new duration sampler with the provided name.
func (s *Section) SampleDuration(name string) *SampleDuration {
	s.m.Lock()
	defer s.m.Unlock()

	sample, exists := s.SampleDurations[name]
	if !exists {
		sample = newSampleDuration()
		s.SampleDurations[name] = sample
	}
	return sample
}

// SampleByte creates a new size sampler with the provided name.
func (s *Section) SampleByte(name string) *SampleBytes {
	s.m.Lock()
	defer s.m.Unlock()

	sample, exists := s.SampleBytes[name]
	if !exists {
		sample = newSampleBytes()
		s.SampleBytes[name] = sample
	}
	return sample
}

// writeText writes one line per metric, sorted by name
func (s *Section) writeText(w io.Writer) {
	s.m.Lock()
	defer s.m.Unlock()

	for _, name := range sortedKeys(s.Counters) {
		fmt.Fprintf(w, "  %s: %d\n", name, s.Counters[name].GetValue())
	}
	for _, name := range sortedKeys(s.Ratios) {
		r := s.Ratios[name]
		fmt.Fprintf(w, "  %s: %.1f%% (%d/%d)\n", name, r.Value(), r.Numerator, r.Denominator)
	}
	for _, name := range sortedKeys(s.Breakdowns) {
		fmt.Fprintf(w, "  %s:\n", name)
		values := s.Breakdowns[name].Value()
		for _, category := range sortedKeys(values) {
			fmt.Fprintf(w, "    %s: %.1f%%\n", category, values[category])
		}
	}
	for _, name := range sortedKeys(s.SampleDurations) {
		fmt.Fprintf(w, "  %s: %s\n", name, formatPercentiles(s.SampleDurations[name].Values(), humanizeDuration))
	}
	for _, name := range sortedKeys(s.SampleBytes) {
		fmt.Fprintf(w, "  %s: %s\n", name, formatPercentiles(s.SampleBytes[name].Values(), humanizeSize))
	}
}

func formatPercentiles(values []int64, format func(int64) string) string {
	var out string
	for i, p := range samplePercentiles {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("p%d=%s", int(p*100), format(values[i]))
	}
	return out
}

func sortedKeys(m interface{}) []string {
	var keys []string
	switch m := m.(type) {
	case map[string]*Counter:
		for k := range m {
			keys = append(keys, k)
		}
	case map[string]*Ratio:
		for k := range m {
			keys = append(keys, k)
		}
	case map[string]*Breakdown:
		for k := range m {
			keys = append(keys, k)
		}
	case map[string]*SampleDuration:
		for k := range m {
			keys = append(keys, k)
		}
	case map[string]*SampleBytes:
		for k := range m {
			keys = append(keys, k)
		}
	case map[string]float64:
		for k := range m {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
