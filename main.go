package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dianpeng/tabjoin/pipeline"
	"github.com/dianpeng/tabjoin/tab"
)

var fOutput = flag.String(
	"output",
	"",
	"specify path to save output file, default write to STDOUT",
)

var fDelim = flag.String(
	"delim",
	",",
	"field delimiter, must be a single byte",
)

var fStats = flag.Bool(
	"stats",
	false,
	"print per stage statistics to STDERR",
)

func oops(stage string, err error) {
	fmt.Fprintf(os.Stderr, "ERROR [%s]]] %s\n", stage, err)
	os.Exit(-1)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] file1 file2 file3 file4\n", os.Args[0])
	flag.PrintDefaults()
	os.Exit(-1)
}

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) != 4 {
		usage()
	}
	if len(*fDelim) != 1 {
		oops("flags", fmt.Errorf("delimiter must be a single byte, got %q", *fDelim))
	}

	cfg := tab.DefaultConfig()
	cfg.Delim = (*fDelim)[0]

	out := os.Stdout
	if *fOutput != "" {
		f, err := os.Create(*fOutput)
		if err != nil {
			oops("save", err)
		}
		out = f
	}

	var rep *pipeline.Report
	if *fStats {
		rep = pipeline.NewReport()
	}

	if err := pipeline.Run(
		[4]string{args[0], args[1], args[2], args[3]},
		cfg,
		out,
		rep,
	); err != nil {
		oops("pipeline", err)
	}

	if out != os.Stdout {
		if err := out.Close(); err != nil {
			oops("save", err)
		}
	}
	if *fStats {
		rep.Print(os.Stderr)
	}
	os.Exit(0)
}
