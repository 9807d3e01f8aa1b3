package tab

import (
	"bytes"
	"fmt"
)

// Join computes the inner equi-join of two tables that are *already* sorted
// ascending on their respective 1-based key columns; it never re-sorts. Two
// cursors walk the tables in lockstep, on a key match the maximal run of
// that key is located on both sides and the full cross product of the runs
// is emitted, left run major. Every output record is laid out as
//
//	key, left fields minus the left key column, right fields minus the
//	right key column
//
// in the original field order. Later pipeline stages re-key on a fixed
// column position of this output, so the layout is part of the contract.
//
// Cost per distinct key is the product of the two run lengths. Join keys in
// this domain have small duplicate groups, so this is a scaling risk rather
// than a practical problem; a pathological input with one giant key group
// degrades to a nested loop join.
func Join(left *Table, leftCol int, right *Table, rightCol int) (*Table, error) {
	cfg := left.cfg
	out := NewTable(cfg)

	i, j := 0, 0
	for i < left.Len() && j < right.Len() {
		lkey := left.records[i].Key(leftCol)
		rkey := right.records[j].Key(rightCol)

		cmp := bytes.Compare(lkey, rkey)
		switch {
		case cmp < 0:
			i++
		case cmp > 0:
			j++
		default:
			li := runEnd(left, i, leftCol)
			rj := runEnd(right, j, rightCol)
			for a := i; a < li; a++ {
				for b := j; b < rj; b++ {
					line := spliceLine(
						lkey,
						left.records[a], leftCol,
						right.records[b], rightCol,
						cfg.Delim,
					)
					if err := out.append(newRecord(line, &cfg)); err != nil {
						return nil, fmt.Errorf("join: %w", err)
					}
				}
			}
			i = li
			j = rj
		}
	}
	return out, nil
}

// runEnd finds the end (exclusive) of the maximal run of records starting
// at *start* whose key equals the key at *start*.
func runEnd(t *Table, start int, col int) int {
	key := t.records[start].Key(col)
	end := start + 1
	for end < t.Len() && bytes.Equal(t.records[end].Key(col), key) {
		end++
	}
	return end
}

// spliceLine builds the joined line, a buffer owned by the new record.
func spliceLine(
	key []byte,
	l *Record, leftCol int,
	r *Record, rightCol int,
	delim byte,
) []byte {
	buf := make([]byte, 0, len(key)+len(l.line)+len(r.line)+2)
	buf = append(buf, key...)
	for idx, f := range l.fields {
		if idx+1 == leftCol {
			continue
		}
		buf = append(buf, delim)
		buf = append(buf, f...)
	}
	for idx, f := range r.fields {
		if idx+1 == rightCol {
			continue
		}
		buf = append(buf, delim)
		buf = append(buf, f...)
	}
	return buf
}
