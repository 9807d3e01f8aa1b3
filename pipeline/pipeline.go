package pipeline

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/dianpeng/tabjoin/tab"
)

// The second join re-keys on this column of the first join's output. The
// position is fixed by the shape of file1/file2, it is a property of the
// input schema and must stay a literal, not something derived from data.
const rejoinColumn = 4

// Run executes the fixed four-way join plan over the given input paths and
// writes the final table to *out*:
//
//	A   = Join(Sort(Load(f1), 1), Sort(Load(f2), 1), 1, 1)
//	B   = Join(A, Sort(Load(f3), 1), 1, 1)
//	B'  = Sort(B, 4)
//	Out = Join(B', Sort(Load(f4), 1), 4, 1)
//
// Every input and intermediate table is released the moment the next join
// has consumed it, so peak memory is roughly two tables plus the output.
// A nil *rep* disables stage accounting.
func Run(paths [4]string, cfg tab.Config, out io.Writer, rep *Report) error {
	f1, err := loadSorted(paths[0], 1, cfg, rep)
	if err != nil {
		return err
	}
	f2, err := loadSorted(paths[1], 1, cfg, rep)
	if err != nil {
		return err
	}

	start := time.Now()
	a, err := tab.Join(f1, 1, f2, 1)
	if err != nil {
		return fmt.Errorf("stage(join-1): %w", err)
	}
	f1.Release()
	f2.Release()
	rep.track("join-1", a.Len(), start)

	f3, err := loadSorted(paths[2], 1, cfg, rep)
	if err != nil {
		return err
	}

	start = time.Now()
	b, err := tab.Join(a, 1, f3, 1)
	if err != nil {
		return fmt.Errorf("stage(join-2): %w", err)
	}
	a.Release()
	f3.Release()
	rep.track("join-2", b.Len(), start)

	start = time.Now()
	tab.SortByColumn(b, rejoinColumn)
	rep.track("re-sort", b.Len(), start)

	f4, err := loadSorted(paths[3], 1, cfg, rep)
	if err != nil {
		return err
	}

	start = time.Now()
	final, err := tab.Join(b, rejoinColumn, f4, 1)
	if err != nil {
		return fmt.Errorf("stage(join-3): %w", err)
	}
	b.Release()
	f4.Release()
	rep.track("join-3", final.Len(), start)

	start = time.Now()
	if err := tab.Write(final, out); err != nil {
		return fmt.Errorf("stage(write): %s", err)
	}
	n := final.Len()
	final.Release()
	rep.track("write", n, start)
	return nil
}

func loadSorted(path string, col int, cfg tab.Config, rep *Report) (*tab.Table, error) {
	start := time.Now()
	t, err := tab.Load(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("stage(load): %w", err)
	}
	tab.SortByColumn(t, col)
	rep.track(fmt.Sprintf("load+sort(%s)", filepath.Base(path)), t.Len(), start)
	return t, nil
}
