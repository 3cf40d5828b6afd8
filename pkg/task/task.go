package task

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ID string

// NewID returns a fresh opaque identifier
func NewID() ID {
	return ID(uuid.NewString())
}

type Record struct {
	ID      ID
	Title   string
	Hours   string
	Minutes string
}

// Draft is a record that has not been given an ID yet
type Draft struct {
	Title   string
	Hours   string
	Minutes string
}

// Patch holds the fields to replace on update, nil fields are left untouched
type Patch struct {
	Title   *string
	Hours   *string
	Minutes *string
}

func (p Patch) apply(r Record) Record {
	if p.Title != nil {
		r.Title = strings.TrimSpace(*p.Title)
	}
	if p.Hours != nil {
		r.Hours = *p.Hours
	}
	if p.Minutes != nil {
		r.Minutes = *p.Minutes
	}
	return r
}

// DefaultSeed is the set of records a new list starts with
func DefaultSeed() []Record {
	return []Record{
		{ID: "1", Title: "SYSTEM_BOOT"},
		{ID: "2", Title: "CORE_SYNC"},
	}
}

// Duration converts the hours and minutes fields into a duration.
// Blank fields count as zero, anything that isn't a number yields false.
func (r Record) Duration() (time.Duration, bool) {
	h, ok := parseAmount(r.Hours)
	if !ok {
		return 0, false
	}
	m, ok := parseAmount(r.Minutes)
	if !ok {
		return 0, false
	}
	ns := h*float64(time.Hour) + m*float64(time.Minute)
	// too large to be held by a time.Duration
	if math.Abs(ns) >= math.MaxInt64 {
		return 0, false
	}
	return time.Duration(ns).Round(time.Second), true
}

func parseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Total sums the durations of all records that have one. The sum saturates
// instead of wrapping around.
func Total(records []Record) time.Duration {
	var total time.Duration
	for _, r := range records {
		if d, ok := r.Duration(); ok {
			total = add(total, d)
		}
	}
	return total
}

func add(a, b time.Duration) time.Duration {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return math.MaxInt64
	case b < 0 && a < math.MinInt64-b:
		return math.MinInt64
	}
	return a + b
}
