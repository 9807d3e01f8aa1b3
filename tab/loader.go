package tab

import (
	"bytes"
	"fmt"
)

// Load reads the whole file at *path* into a fresh table. Lines are split
// on '\n', an optional trailing '\r' is stripped, a last line without a
// newline still counts and completely empty lines are skipped. Each record
// gets its own copy of its line, so the table outlives the file mapping.
func Load(path string, cfg Config) (*Table, error) {
	reg, err := openRegion(path)
	if err != nil {
		return nil, fmt.Errorf("load(%s): %s", path, err)
	}
	defer reg.close()

	out := NewTable(cfg)
	data := reg.bytes()
	for len(data) > 0 {
		ln := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			ln = data[:i]
			data = data[i+1:]
		} else {
			data = nil
		}
		if n := len(ln); n > 0 && ln[n-1] == '\r' {
			ln = ln[:n-1]
		}
		if len(ln) == 0 {
			continue
		}
		buf := make([]byte, len(ln))
		copy(buf, ln)
		if err := out.append(newRecord(buf, &cfg)); err != nil {
			return nil, fmt.Errorf("load(%s): %w", path, err)
		}
	}
	return out, nil
}
