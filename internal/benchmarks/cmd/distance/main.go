// distance prints the simple edit distance between two sequences as computed by one of the
// benchmarked libraries.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"golang.org/x/tools/txtar"
	"znkr.io/algebra/internal/benchmarks"
)

type config struct {
	lib   string
	x, y  string
	txtar string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.lib, "lib", "algebra", "library to use for computing the distance")
	flag.StringVar(&cfg.txtar, "txtar", "", "use testdata txtar file instead of two sequences")
	flag.Parse()

	if cfg.txtar != "" {
		if flag.CommandLine.NArg() != 0 {
			fmt.Fprintf(os.Stderr, "error: usage: distance -txtar <file>\n")
			os.Exit(1)
		}
	} else {
		if flag.CommandLine.NArg() != 2 {
			fmt.Fprintf(os.Stderr, "error: usage: distance <x> <y>\n")
			os.Exit(1)
		}
		cfg.x = flag.CommandLine.Arg(0)
		cfg.y = flag.CommandLine.Arg(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	var lib *benchmarks.Impl
	for _, l := range benchmarks.Impls {
		if l.Name == cfg.lib {
			lib = &l
		}
	}
	if lib == nil {
		return fmt.Errorf("lib not found %q", cfg.lib)
	}

	x, y := cfg.x, cfg.y
	if cfg.txtar != "" {
		ar, err := txtar.ParseFile(cfg.txtar)
		if err != nil {
			return err
		}
		for _, f := range ar.Files {
			switch f.Name {
			case "x":
				x = string(bytes.TrimSpace(f.Data))
			case "y":
				y = string(bytes.TrimSpace(f.Data))
			}
		}
	}

	fmt.Println(lib.Distance(x, y))
	return nil
}
