package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

type stageStat struct {
	name    string
	records int
	elapsed time.Duration
}

// Report accumulates per stage wall time and record counts. Purely a human
// facing diagnostic, it never influences the plan.
type Report struct {
	stages []stageStat
}

func NewReport() *Report {
	return &Report{}
}

// track is nil-safe so Run can call it unconditionally.
func (self *Report) track(name string, records int, start time.Time) {
	if self == nil {
		return
	}
	self.stages = append(self.stages, stageStat{
		name:    name,
		records: records,
		elapsed: time.Since(start),
	})
}

func (self *Report) Print(w io.Writer) {
	if self == nil {
		return
	}
	stage := color.New(color.FgCyan).SprintfFunc()
	dur := color.New(color.FgYellow).SprintFunc()

	total := time.Duration(0)
	for _, s := range self.stages {
		fmt.Fprintf(
			w,
			"%s %10d records %s\n",
			stage("%-24s", s.name),
			s.records,
			dur(s.elapsed.Round(time.Microsecond)),
		)
		total += s.elapsed
	}
	fmt.Fprintf(w, "%s %s\n", stage("%-24s", "total"), dur(total.Round(time.Microsecond)))
}
