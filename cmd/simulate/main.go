package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/td0m/chrono/pkg/task"
)

var (
	ops     = flag.Int("ops", 100000, "Number of operations to run")
	records = flag.Int("records", 100, "Number of records to start with")
	seed    = flag.Int64("seed", 1, "Random seed")
	show    = flag.Int("show", 10, "Number of entries of the final list to print")
)

func main() {
	flag.Parse()
	check(run(os.Stdout, *ops, *records, *seed, *show))
}

func check(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var errLength = errors.New("length does not match created minus deleted")

type stats struct {
	applied  map[task.Op]int
	declined map[task.Op]int
}

// run drives a store with a random stream of operations, some of them
// invalid, and checks the store invariants after every step
func run(w io.Writer, total, initial int, randSeed int64, show int) error {
	r := rand.New(rand.NewSource(randSeed))
	start := make([]task.Record, initial)
	for i := range start {
		start[i] = task.Record{ID: task.ID(strconv.Itoa(i + 1)), Title: randomString(r, 8)}
	}
	s, err := task.NewStore(start)
	if err != nil {
		return err
	}

	st := stats{applied: map[task.Op]int{}, declined: map[task.Op]int{}}
	s.Subscribe(func(c task.Change) { st.applied[c.Op]++ })

	created, deleted := initial, 0
	var stepErr error
	elapsed := measureTime(func() {
		for i := 0; i < total; i++ {
			op, err := step(r, s)
			if err != nil {
				st.declined[op]++
			} else {
				switch op {
				case task.OpAppend:
					created++
				case task.OpRemove:
					deleted++
				}
			}
			if err := task.Check(s.Records()); err != nil {
				stepErr = fmt.Errorf("step %d (%s): %w", i, op, err)
				return
			}
			if s.Len() != created-deleted {
				stepErr = fmt.Errorf("step %d (%s): %w", i, op, errLength)
				return
			}
		}
	})
	if stepErr != nil {
		return stepErr
	}

	fmt.Fprintf(w, "Operations: %d in %dms\n", total, elapsed.Milliseconds())
	for _, op := range []task.Op{task.OpAppend, task.OpRemove, task.OpUpdate, task.OpReorder} {
		fmt.Fprintf(w, "  %-8s applied %7d  declined %7d\n", op, st.applied[op], st.declined[op])
	}
	fmt.Fprintf(w, "Final length: %d (created %d, deleted %d)\n", s.Len(), created, deleted)
	final := s.Records()
	if len(final) > show {
		final = final[:show]
	}
	return task.Dump(w, final)
}

// step runs one random operation. Roughly one in ten targets an ID that does
// not exist or uses an empty title.
func step(r *rand.Rand, s *task.Store) (task.Op, error) {
	op := task.Op(r.Intn(4))
	invalid := r.Intn(10) == 0
	switch op {
	case task.OpAppend:
		title := randomString(r, 8)
		if invalid {
			title = "   "
		}
		_, err := s.Append(task.Draft{Title: title, Minutes: strconv.Itoa(r.Intn(60))})
		return op, err
	case task.OpRemove:
		return op, s.Remove(pick(r, s, invalid))
	case task.OpUpdate:
		hours := strconv.Itoa(r.Intn(8))
		_, err := s.Update(pick(r, s, invalid), task.Patch{Hours: &hours})
		return op, err
	default:
		return op, s.Reorder(pick(r, s, invalid), pick(r, s, invalid))
	}
}

func pick(r *rand.Rand, s *task.Store, invalid bool) task.ID {
	if invalid || s.Len() == 0 {
		return "missing"
	}
	return s.Records()[r.Intn(s.Len())].ID
}

func measureTime(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ_"

func randomString(r *rand.Rand, l int) string {
	b := make([]byte, l)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}
