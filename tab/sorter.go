package tab

import (
	"bytes"
	"sort"
)

// SortByColumn reorders the table in place into non-decreasing byte-wise
// order of the 1-based key column. Records too short for the column sort
// as the empty string, so they bubble to the front. Not stable: the order
// among equal keys is unspecified, the joiner only needs the runs.
//
// The key column is bound per invocation. The same table can be re-sorted
// on a different column later, which the pipeline actually does.
func SortByColumn(t *Table, col int) {
	recs := t.records
	sort.Slice(recs, func(i, j int) bool {
		return bytes.Compare(recs[i].Key(col), recs[j].Key(col)) < 0
	})
}
