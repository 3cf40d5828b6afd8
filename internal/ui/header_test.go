package ui

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestHeader_Set(t *testing.T) {
	is := is.New(t)
	h := NewHeader("CHRONO WEAPONS", []string{"LIST", "NEW", "EDIT"})
	h.Set(2)
	is.Equal(h.Value(), 2)
	h.Set(10)
	is.Equal(h.Value(), 2)
	h.Set(-1)
	is.Equal(h.Value(), 0)
}

func TestHeader_View(t *testing.T) {
	is := is.New(t)
	h := NewHeader("CHRONO WEAPONS", []string{"LIST", "DRAG"})
	h.Info = "2 entries"
	h.Width = 80
	v := h.View()
	for _, s := range []string{"CHRONO WEAPONS", "LIST", "DRAG", "2 entries"} {
		is.True(strings.Contains(v, s))
	}
	is.True(strings.HasSuffix(v, "\n"))

	// narrower than its content
	h.Width = 5
	is.True(strings.Contains(h.View(), "2 entries"))
}
