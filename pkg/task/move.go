package task

// Move returns a copy of records with source moved into the position held by
// target. Everything between the two positions shifts by one slot. When either
// ID is missing or both are the same, the copy is returned unchanged.
func Move(records []Record, source, target ID) []Record {
	from, to := -1, -1
	for i, r := range records {
		if r.ID == source {
			from = i
		}
		if r.ID == target {
			to = i
		}
	}
	if from < 0 || to < 0 || from == to {
		out := make([]Record, len(records))
		copy(out, records)
		return out
	}
	return moveIndex(records, from, to)
}

// moveIndex never modifies a; it always returns a fresh slice
func moveIndex(a []Record, from, to int) []Record {
	out := make([]Record, 0, len(a))
	moved := a[from]
	for i, r := range a {
		if i == from {
			continue
		}
		if i == to && to < from {
			out = append(out, moved)
		}
		out = append(out, r)
		if i == to && to > from {
			out = append(out, moved)
		}
	}
	return out
}
