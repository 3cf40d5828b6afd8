package task

import (
	"fmt"
	"io"
)

// Dump writes a numbered plain-text listing of records, one per line
func Dump(w io.Writer, records []Record) error {
	for i, r := range records {
		estimate := "-"
		if d, ok := r.Duration(); ok && d > 0 {
			estimate = d.String()
		}
		if _, err := fmt.Fprintf(w, "%02d %-24s %8s  %s\n", i+1, r.Title, estimate, r.ID); err != nil {
			return err
		}
	}
	return nil
}
