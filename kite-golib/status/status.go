package status

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	humanize "github.com/dustin/go-humanize"
)

var s = newEmptyStatus()

// Status is the root level object containing all sections.
type Status struct {
	m        sync.Mutex
	Sections map[string]*Section
}

func newEmptyStatus() *Status {
	return &Status{
		Sections: make(map[string]*Section),
	}
}

// Get returns the *Status object
func Get() *Status {
	return s
}

// MarshalJSON allows for go-routine safe access to Sections.
func (s *Status) MarshalJSON() ([]byte, error) {
	s.m.Lock()
	defer s.m.Unlock()

	// to avoid recursive call into MarshalJSON (and the subsequent deadlock),
	// create a temporary type to mask the MarshalJSON method
	type tmp Status
	return json.Marshal((*tmp)(s))
}

// sections returns the sections sorted by name
func (s *Status) sections() []*Section {
	s.m.Lock()
	defer s.m.Unlock()

	var sections []*Section
	for _, section := range s.Sections {
		sections = append(sections, section)
	}
	sort.Slice(sections, func(i, j int) bool {
		return sections[i].Name < sections[j].Name
	})
	return sections
}

// WriteText writes a human readable summary of every section to w
func (s *Status) WriteText(w io.Writer) error {
	var b strings.Builder
	for _, section := range s.sections() {
		fmt.Fprintf(&b, "%s\n", section.Name)
		section.writeText(&b)
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// HandleJSON serves the status of the process as JSON
func HandleJSON(w http.ResponseWriter, r *http.Request) {
	type statusResponse struct {
		Status *Status `json:"status"`
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(&statusResponse{Status: s})
}

// HandleText serves the status of the process as plain text
func HandleText(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	s.WriteText(w)
}

func humanizeDuration(ns int64) string {
	return time.Duration(ns).String()
}

func humanizeSize(n int64) string {
	if n < 0 {
		return "-" + humanize.Bytes(uint64(-n))
	}
	return humanize.Bytes(uint64(n))
}
