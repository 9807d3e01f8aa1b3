package tab

import (
	"errors"
)

// ErrTooManyRecords is the capacity ceiling diagnostic. The ceiling is a
// hard bound, hitting it never triggers a resize.
var ErrTooManyRecords = errors.New("too many records, table capacity exceeded")

// An ordered, appendable sequence of records. Exactly one pipeline stage
// owns a table at any point in time, there is no sharing and hence no
// locking anywhere in the engine.
type Table struct {
	records []*Record
	cfg     Config
}

func NewTable(cfg Config) *Table {
	return &Table{cfg: cfg}
}

func (self *Table) Len() int { return len(self.records) }

// Record returns the i-th record, 0-based.
func (self *Table) Record(i int) *Record { return self.records[i] }

func (self *Table) append(r *Record) error {
	if len(self.records) >= self.cfg.MaxRecords {
		return ErrTooManyRecords
	}
	self.records = append(self.records, r)
	return nil
}

// Release drops every record of the table. The orchestrator calls it the
// moment a table has been consumed by the next stage; field slices of a
// released table must not be read anymore.
func (self *Table) Release() {
	self.records = nil
}
