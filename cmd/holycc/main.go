// Command holycc lexes and parses one or more HolyC source files.
//
// It performs no semantic analysis and generates no code: its job ends at a
// parsed syntax tree, which it can dump in textual form with -o/--output.
// Multiple input files are processed concurrently, one goroutine per file,
// since lexing and parsing one file never depends on another.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	holyc "go.holyc.dev/pkg"
)

func main() {
	var (
		output string
		help   bool
	)
	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)
	flag.StringVar(&output, "o", "", "write a textual AST dump to this path instead of stdout")
	flag.StringVar(&output, "output", "", "write a textual AST dump to this path instead of stdout")
	flag.BoolVar(&help, "h", false, "show usage")
	flag.BoolVar(&help, "help", false, "show usage")
	flag.Usage = usage
	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	if help {
		usage()
		return
	}

	files := flag.Args()
	if len(files) == 0 {
		usage()
		os.Exit(1)
	}

	for _, f := range files {
		if !strings.EqualFold(filepath.Ext(f), ".hc") {
			fmt.Fprintf(os.Stderr, "holycc: %s: not a .hc file\n", f)
			os.Exit(1)
		}
	}

	dumps, err := compileAll(files)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	out := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	for i, d := range dumps {
		if len(files) > 1 {
			fmt.Fprintf(out, "==> %s <==\n", files[i])
		}
		fmt.Fprint(out, d)
	}
}

// compileAll lexes and parses every file concurrently and returns each
// file's AST dump in input order. If any file fails, the first error is
// returned and no dumps are; a zero errgroup.Group cancels nothing, so the
// other files still run to completion.
func compileAll(files []string) ([]string, error) {
	dumps := make([]string, len(files))

	var g errgroup.Group
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			dump, err := compileOne(f)
			if err != nil {
				return err
			}
			dumps[i] = dump
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dumps, nil
}

func compileOne(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	sink := holyc.NewColorSink(os.Stderr)

	toks, err := holyc.Lex(src, path, sink)
	if err != nil {
		return "", err
	}

	root, err := holyc.Parse(toks, path)
	defer holyc.Destroy(root)
	if err != nil {
		return "", err
	}

	return holyc.Dump(root), nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: holycc [-o output] file.hc [file.hc ...]")
	flag.PrintDefaults()
}
