package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/felixge/fgprof"
)

var (
	verbose     = flag.Bool("v", false, "log each step of the computation")
	configFile  = flag.String("config", "", "INI config `file` (default $HOME/.config/aoc2017.ini)")
	fgprofFile  = flag.String("fgprof", "", "write a wall-clock pprof profile to `file`")
	interactive = flag.Bool("i", false, "read solutions to run from an interactive prompt")
)

func main() {
	log.SetFlags(0)
	flag.Usage = func() { printUsage(os.Stderr) }
	flag.Parse()
	if flag.NArg() < 1 && !*interactive {
		flag.Usage()
		os.Exit(1)
	}
	if err := advent(); err != nil {
		log.Fatal(err)
	}
}

func advent() error {
	conf, err := loadConfig(*configFile)
	if err != nil {
		return err
	}
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	r := &runner{
		conf:    conf,
		verbose: *verbose,
		dir:     wd,
	}

	if *fgprofFile != "" {
		f, err := os.Create(*fgprofFile)
		if err != nil {
			return err
		}
		defer f.Close()
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer func() {
			if err := stop(); err != nil {
				log.Printf("error writing profile: %s", err)
			}
		}()
	}

	if *interactive {
		return r.prompt()
	}
	r.stdin = os.Stdin
	out, err := r.run(flag.Arg(0), flag.Args()[1:])
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "usage: %s [flags] [solution] [args...]\n", os.Args[0])
	fmt.Fprintln(w, "where solution is one of:")
	for _, name := range solutionNames() {
		fmt.Fprintln(w, name)
	}
	fmt.Fprintln(w, "and the flags are:")
	flag.CommandLine.SetOutput(w)
	flag.PrintDefaults()
}

// A solution computes an answer from the puzzle input.
type solution struct {
	day int
	fn  func(r *runner, input string) (string, error)
}

var solutions = make(map[string]solution)

func register(name string, fn func(*runner, string) (string, error)) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	day, _ := splitName(name)
	solutions[name] = solution{day: day, fn: fn}
}

func solutionNames() []string {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	return names
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

// splitName splits a solution name such as "3b" into its day and part.
func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(fmt.Sprintf("solution name %q does not start with a day number", name))
	}
	return n, name[i:]
}
