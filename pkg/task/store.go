package task

import (
	"errors"
	"strings"
)

type StoreManager interface {
	Append(Draft) (Record, error)
	Remove(ID) error
	Update(ID, Patch) (Record, error)
	Reorder(source, target ID) error

	Records() []Record
	Get(ID) (Record, bool)
	Index(ID) int
	Len() int

	Subscribe(Listener) func()
}

var _ StoreManager = &Store{}

var (
	ErrIDAlreadyExists = errors.New("task with the given ID already exists")
	ErrInvalidSeed     = errors.New("seed record needs an ID and a title")
	ErrEmptyTitle      = errors.New("title is empty")
	ErrNotFound        = errors.New("not found")
	ErrTargetNotFound  = errors.New("target not found")
	ErrSameID          = errors.New("source and target are the same task")
)

type Op int

const (
	OpAppend Op = iota
	OpRemove
	OpUpdate
	OpReorder
)

func (o Op) String() string {
	switch o {
	case OpAppend:
		return "append"
	case OpRemove:
		return "remove"
	case OpUpdate:
		return "update"
	case OpReorder:
		return "reorder"
	}
	return "unknown"
}

// Change describes a mutation that was applied to the store.
// Records is a copy of the sequence after the mutation.
type Change struct {
	Op      Op
	ID      ID
	Records []Record
}

type Listener func(Change)

// Store keeps an ordered list of tasks. Positions are never stored, they are
// looked up from the sequence on every call.
//
// A Store is not safe for concurrent use, every call is expected to come from
// the same event loop.
type Store struct {
	records   []Record
	listeners map[int]Listener
	nextSub   int

	newID func() ID
}

// NewStore creates a store holding a copy of seed
func NewStore(seed []Record) (*Store, error) {
	if err := Check(seed); err != nil {
		return nil, err
	}
	records := make([]Record, len(seed))
	copy(records, seed)
	return &Store{
		records:   records,
		listeners: map[int]Listener{},
		newID:     NewID,
	}, nil
}

// Check validates a sequence of records: every record needs an ID and a
// title, and IDs may only appear once
func Check(records []Record) error {
	seen := make(map[ID]struct{}, len(records))
	for _, r := range records {
		if r.ID == "" || strings.TrimSpace(r.Title) == "" {
			return ErrInvalidSeed
		}
		if _, found := seen[r.ID]; found {
			return ErrIDAlreadyExists
		}
		seen[r.ID] = struct{}{}
	}
	return nil
}

// Append adds a new task to the end of the list
func (s *Store) Append(d Draft) (Record, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return Record{}, ErrEmptyTitle
	}
	id := s.newID()
	for id == "" || s.Index(id) >= 0 {
		id = s.newID()
	}
	r := Record{
		ID:      id,
		Title:   title,
		Hours:   d.Hours,
		Minutes: d.Minutes,
	}
	s.records = append(s.records, r)
	s.notify(OpAppend, id)
	return r, nil
}

func (s *Store) Remove(id ID) error {
	i := s.Index(id)
	if i < 0 {
		return ErrNotFound
	}
	records := make([]Record, 0, len(s.records)-1)
	records = append(records, s.records[:i]...)
	s.records = append(records, s.records[i+1:]...)
	s.notify(OpRemove, id)
	return nil
}

// Update replaces the fields set in the patch, the task keeps its ID and position
func (s *Store) Update(id ID, p Patch) (Record, error) {
	i := s.Index(id)
	if i < 0 {
		return Record{}, ErrNotFound
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return Record{}, ErrEmptyTitle
	}
	r := p.apply(s.records[i])
	s.records[i] = r
	s.notify(OpUpdate, id)
	return r, nil
}

// Reorder moves source into the position currently held by target
func (s *Store) Reorder(source, target ID) error {
	from := s.Index(source)
	if from < 0 {
		return ErrNotFound
	}
	to := s.Index(target)
	if to < 0 {
		return ErrTargetNotFound
	}
	if from == to {
		return ErrSameID
	}
	s.records = moveIndex(s.records, from, to)
	s.notify(OpReorder, source)
	return nil
}

// Records returns a copy of the current sequence
func (s *Store) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) Get(id ID) (Record, bool) {
	i := s.Index(id)
	if i < 0 {
		return Record{}, false
	}
	return s.records[i], true
}

// Index returns the position of a task or -1 if it isn't in the list
func (s *Store) Index(id ID) int {
	for i, r := range s.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) Len() int {
	return len(s.records)
}

// Subscribe registers a listener that is called after every applied
// mutation. The returned function removes it again.
func (s *Store) Subscribe(l Listener) func() {
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = l
	return func() {
		delete(s.listeners, id)
	}
}

func (s *Store) notify(op Op, id ID) {
	if len(s.listeners) == 0 {
		return
	}
	// listeners run in subscription order, and only those registered before
	// the mutation hear about it
	listeners := make([]Listener, 0, len(s.listeners))
	for i := 0; i < s.nextSub; i++ {
		if l, ok := s.listeners[i]; ok {
			listeners = append(listeners, l)
		}
	}
	records := s.Records()
	for _, l := range listeners {
		c := Change{Op: op, ID: id, Records: make([]Record, len(records))}
		copy(c.Records, records)
		l(c)
	}
}
