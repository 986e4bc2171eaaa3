// Command holycdump is an interactive REPL that lexes and parses whatever
// HolyC snippet is typed at its prompt and prints the resulting token
// stream and AST. It evaluates nothing: this is a front-end debugging tool,
// not an interpreter.
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	holyc "go.holyc.dev/pkg"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const (
	banner = "holycdump"
	line   = "----------------------------------------"
	prompt = "holyc> "
)

func main() {
	printBanner()

	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		src, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(rl.Stdout(), "bye")
			return
		}

		src = strings.TrimSpace(src)
		if src == "" {
			continue
		}
		if src == ".exit" {
			fmt.Fprintln(rl.Stdout(), "bye")
			return
		}
		rl.SaveHistory(src)

		dumpOne(rl.Stdout(), src)
	}
}

func printBanner() {
	blueColor.Println(line)
	greenColor.Println(banner)
	blueColor.Println(line)
	cyanColor.Println("Type a HolyC snippet and press enter.")
	cyanColor.Println("Type '.exit' to quit.")
	blueColor.Println(line)
}

// dumpOne lexes and parses a single snippet and prints its tokens and AST.
// Both the lexer and parser diagnostics are caught here and printed in red;
// unlike a batch compile, the REPL keeps going after an error.
func dumpOne(w io.Writer, src string) {
	sink := holyc.NewColorSink(w)

	toks, err := holyc.Lex([]byte(src), "<repl>", sink)
	if err != nil {
		redColor.Fprintln(w, err)
		return
	}

	yellowColor.Fprintln(w, "tokens:")
	for _, tok := range toks {
		fmt.Fprintf(w, "  %s\n", tok)
	}

	root, err := holyc.Parse(toks, "<repl>")
	defer holyc.Destroy(root)
	if err != nil {
		redColor.Fprintln(w, err)
		return
	}

	yellowColor.Fprintln(w, "ast:")
	fmt.Fprint(w, holyc.Dump(root))
}
