package tab

import (
	"bufio"
	"io"
)

// Write serializes the table, one record per line, fields rejoined with the
// configured delimiter in the table's current order. No re-sort, no header,
// no quoting.
func Write(t *Table, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, r := range t.records {
		for idx, f := range r.fields {
			if idx > 0 {
				if err := bw.WriteByte(t.cfg.Delim); err != nil {
					return err
				}
			}
			if _, err := bw.Write(f); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
