package task

import (
	"math"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestNewID(t *testing.T) {
	is := is.New(t)
	seen := map[ID]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		is.True(id != "")
		is.True(!seen[id])
		seen[id] = true
	}
}

func TestRecord_Duration(t *testing.T) {
	cases := []struct {
		name    string
		hours   string
		minutes string
		want    time.Duration
		ok      bool
	}{
		{"blank", "", "", 0, true},
		{"hours only", "2", "", 2 * time.Hour, true},
		{"minutes only", "", " 45 ", 45 * time.Minute, true},
		{"both", "1", "30", 90 * time.Minute, true},
		{"fractional", "0.5", "", 30 * time.Minute, true},
		{"overflowing minutes", "", "90", 90 * time.Minute, true},
		{"text", "soon", "", 0, false},
		{"not a number", "", "NaN", 0, false},
		{"too many hours", "1e10", "", 0, false},
		{"too many minutes", "", "-1e12", 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			is := is.New(t)
			d, ok := Record{Hours: c.hours, Minutes: c.minutes}.Duration()
			is.Equal(ok, c.ok)
			is.Equal(d, c.want)
		})
	}
}

func TestTotal(t *testing.T) {
	is := is.New(t)
	records := []Record{
		{Hours: "1"},
		{Minutes: "20"},
		{Hours: "many"},
	}
	is.Equal(Total(records), 80*time.Minute)
	is.Equal(Total(nil), time.Duration(0))

	t.Run("saturates", func(t *testing.T) {
		is := is.New(t)
		huge := []Record{{Hours: "2000000"}, {Hours: "2000000"}, {Hours: "2000000"}}
		is.Equal(Total(huge), time.Duration(math.MaxInt64))
		huge = []Record{{Hours: "-2000000"}, {Hours: "-2000000"}, {Hours: "-2000000"}}
		is.Equal(Total(huge), time.Duration(math.MinInt64))
	})
}
