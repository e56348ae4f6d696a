package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
)

func (r *runner) prompt() error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "advent> ",
		HistoryFile: filepath.Join(os.TempDir(), "aoc2017_history"),
	})
	if err != nil {
		return err
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		r.eval(line, l.Stdout(), l.Stderr())
	}
}

// eval runs one prompt line of the form "solution [args...]".
func (r *runner) eval(line string, stdout, stderr io.Writer) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	if fields[0] == "help" {
		fmt.Fprintln(stdout, strings.Join(solutionNames(), " "))
		return
	}
	out, err := r.run(fields[0], fields[1:])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return
	}
	fmt.Fprintln(stdout, out)
}
