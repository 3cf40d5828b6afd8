// Package drag turns drag gestures into reorder requests.
//
// A gesture starts on a source task, hovers over targets and ends with either
// a drop or a cancel. Nothing is applied while the gesture is running: Preview
// shows how the list would look, and Drop hands back the pair to reorder.
package drag

import "github.com/td0m/chrono/pkg/task"

type Gesture struct {
	active bool
	source task.ID
	target task.ID
}

// Start picks up the task with the given ID, replacing any running gesture
func (g *Gesture) Start(source task.ID) {
	g.active = source != ""
	g.source = source
	g.target = ""
}

// Over sets the task currently under the pointer. An empty ID means the
// pointer is not over any task.
func (g *Gesture) Over(target task.ID) {
	if !g.active {
		return
	}
	g.target = target
}

// Cancel ends the gesture without producing a move
func (g *Gesture) Cancel() {
	*g = Gesture{}
}

// Drop ends the gesture. ok is false when there is nothing to move, in which
// case the caller must leave the list alone.
func (g *Gesture) Drop() (source, target task.ID, ok bool) {
	source, target = g.source, g.target
	ok = g.active && target != "" && target != source
	g.Cancel()
	return source, target, ok
}

func (g Gesture) Active() bool {
	return g.active
}

func (g Gesture) Source() task.ID {
	return g.source
}

func (g Gesture) Target() task.ID {
	return g.target
}

// Preview returns the order the records would have if the gesture was
// dropped now
func (g Gesture) Preview(records []task.Record) []task.Record {
	if !g.active {
		return task.Move(records, "", "")
	}
	return task.Move(records, g.source, g.target)
}

// Apply drops the gesture onto a store. It returns true when the store was
// reordered, and the store's error when it declined the move.
func (g *Gesture) Apply(s task.StoreManager) (bool, error) {
	source, target, ok := g.Drop()
	if !ok {
		return false, nil
	}
	if err := s.Reorder(source, target); err != nil {
		return false, err
	}
	return true, nil
}
