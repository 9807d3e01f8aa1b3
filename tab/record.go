package tab

import (
	"bytes"
)

const (
	defDelim      = ','
	defMaxFields  = 8
	defMaxRecords = 16000000
)

// Engine configuration. Used to customize parsing and capacity behavior
type Config struct {
	Delim      byte // field delimiter, single byte
	MaxFields  int  // field cap per record, surplus columns are dropped
	MaxRecords int  // table capacity ceiling, overflow is fatal
}

func DefaultConfig() Config {
	return Config{
		Delim:      defDelim,
		MaxFields:  defMaxFields,
		MaxRecords: defMaxRecords,
	}
}

// A single parsed line. The record owns *line*, already stripped of its
// trailing CR/LF, and *fields* are sub-slices of that buffer, ie they stay
// valid exactly as long as the record itself. Records are never mutated
// once built, sorting moves whole records around.
type Record struct {
	line   []byte
	fields [][]byte
}

// newRecord takes ownership of *line* and splits it on the delimiter,
// stopping at the field cap. The caller must not touch *line* afterwards.
func newRecord(line []byte, cfg *Config) *Record {
	r := &Record{
		line:   line,
		fields: make([][]byte, 0, cfg.MaxFields),
	}
	rest := line
	for len(r.fields) < cfg.MaxFields {
		i := bytes.IndexByte(rest, cfg.Delim)
		if i < 0 {
			r.fields = append(r.fields, rest)
			break
		}
		r.fields = append(r.fields, rest[:i])
		rest = rest[i+1:]
	}
	return r
}

func (self *Record) NumFields() int { return len(self.fields) }

// Field returns the 0-based field, or nil when out of range.
func (self *Record) Field(i int) []byte {
	if i < 0 || i >= len(self.fields) {
		return nil
	}
	return self.fields[i]
}

// Key returns the 1-based key column used for sorting/joining. A column the
// record does not have compares as the empty string.
func (self *Record) Key(col int) []byte {
	if col < 1 || col > len(self.fields) {
		return nil
	}
	return self.fields[col-1]
}
