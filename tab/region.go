package tab

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// An immutable byte view over a whole input file. Mapping is preferred so
// loading stays zero-copy until the per-record line copy, but some
// filesystems refuse PROT_READ maps, in which case we silently fall back
// to reading the file into memory. Either way the view dies on close and
// no record may alias it afterwards.
type region struct {
	data   []byte
	mapped bool
}

func openRegion(path string) (*region, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := st.Size()
	if size == 0 {
		return &region{}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		buf, rerr := io.ReadAll(f)
		if rerr != nil {
			return nil, rerr
		}
		return &region{data: buf}, nil
	}
	return &region{data: data, mapped: true}, nil
}

func (self *region) bytes() []byte { return self.data }

func (self *region) close() error {
	data := self.data
	self.data = nil
	if self.mapped {
		self.mapped = false
		return unix.Munmap(data)
	}
	return nil
}
