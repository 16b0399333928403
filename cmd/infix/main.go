// Command infix evaluates arithmetic expressions. Expressions are taken
// from the command line, or read line by line from standard input with an
// interactive prompt when stdin is a terminal.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/evermoor/infix"
)

func main() {
	log.SetFlags(0)
	var (
		verb    string
		prec    int
		lenient bool
	)
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.IntVar(&prec, "p", 0, "evaluate at the given precision in bits instead of float64")
	flag.BoolVar(&lenient, "lenient", false, "tolerate malformed expressions instead of rejecting them")
	flag.Parse()
	if prec < 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}
	var opts []infix.Option
	if lenient {
		opts = append(opts, infix.Lenient())
	}
	verb += "\n"

	eval := func(src string) {
		if prec > 0 {
			r, err := infix.EvaluateBig(src, uint(prec), opts...)
			if err != nil {
				fmt.Println(err)
				return
			}
			fmt.Printf(verb, r)
			return
		}
		r, err := infix.Evaluate(src, opts...)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf(verb, r)
	}

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			eval(arg)
		}
		return
	}

	prompt := isatty.IsTerminal(os.Stdin.Fd())
	scanner := bufio.NewScanner(os.Stdin)
	for {
		if prompt {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		eval(line)
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}
