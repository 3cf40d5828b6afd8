package drag

import (
	"testing"

	"github.com/matryer/is"
	"github.com/td0m/chrono/pkg/task"
)

func records() []task.Record {
	return []task.Record{
		{ID: "1", Title: "A"},
		{ID: "2", Title: "B"},
		{ID: "3", Title: "C"},
	}
}

func order(rs []task.Record) []task.ID {
	out := make([]task.ID, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}

func TestGesture_Drop(t *testing.T) {
	t.Run("yields the pair", func(t *testing.T) {
		is := is.New(t)
		var g Gesture
		g.Start("1")
		g.Over("2")
		g.Over("3")
		source, target, ok := g.Drop()
		is.True(ok)
		is.Equal(source, task.ID("1"))
		is.Equal(target, task.ID("3"))
		is.True(!g.Active())
	})

	t.Run("without a target", func(t *testing.T) {
		is := is.New(t)
		var g Gesture
		g.Start("1")
		g.Over("2")
		g.Over("")
		_, _, ok := g.Drop()
		is.True(!ok)
	})

	t.Run("onto itself", func(t *testing.T) {
		is := is.New(t)
		var g Gesture
		g.Start("1")
		g.Over("1")
		_, _, ok := g.Drop()
		is.True(!ok)
	})

	t.Run("when idle", func(t *testing.T) {
		is := is.New(t)
		var g Gesture
		g.Over("2")
		is.Equal(g.Target(), task.ID(""))
		_, _, ok := g.Drop()
		is.True(!ok)
	})
}

func TestGesture_Cancel(t *testing.T) {
	is := is.New(t)
	s, err := task.NewStore(records())
	is.NoErr(err)

	var g Gesture
	g.Start("1")
	g.Over("3")
	g.Cancel()
	is.True(!g.Active())
	moved, err := g.Apply(s)
	is.NoErr(err)
	is.True(!moved)
	is.Equal(order(s.Records()), []task.ID{"1", "2", "3"})
}

func TestGesture_Preview(t *testing.T) {
	is := is.New(t)
	s, err := task.NewStore(records())
	is.NoErr(err)

	var g Gesture
	is.Equal(order(g.Preview(s.Records())), []task.ID{"1", "2", "3"})

	g.Start("3")
	is.Equal(g.Source(), task.ID("3"))
	is.Equal(order(g.Preview(s.Records())), []task.ID{"1", "2", "3"})
	g.Over("1")
	is.Equal(order(g.Preview(s.Records())), []task.ID{"3", "1", "2"})
	// previewing never touches the store
	is.Equal(order(s.Records()), []task.ID{"1", "2", "3"})
}

func TestGesture_Apply(t *testing.T) {
	is := is.New(t)
	s, err := task.NewStore(records())
	is.NoErr(err)

	calls := 0
	s.Subscribe(func(task.Change) { calls++ })

	var g Gesture
	g.Start("1")
	g.Over("2")
	g.Over("3")
	is.Equal(calls, 0)
	moved, err := g.Apply(s)
	is.NoErr(err)
	is.True(moved)
	is.Equal(calls, 1)
	is.Equal(order(s.Records()), []task.ID{"2", "3", "1"})

	// the target disappeared before the drop
	g.Start("2")
	g.Over("3")
	is.NoErr(s.Remove("3"))
	moved, err = g.Apply(s)
	is.Equal(err, task.ErrTargetNotFound)
	is.True(!moved)
	is.Equal(order(s.Records()), []task.ID{"2", "1"})
}
