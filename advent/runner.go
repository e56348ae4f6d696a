package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vaughan0/go-ini"
)

// A runner holds what solutions share: configuration, verbosity, and the
// places puzzle input may come from.
type runner struct {
	conf    ini.File
	verbose bool
	dir     string    // searched for N.input files
	stdin   io.Reader // nil if input may not be read from stdin
}

func (r *runner) run(name string, args []string) (string, error) {
	sol, ok := solutions[name]
	if !ok {
		return "", fmt.Errorf("unknown solution %q", name)
	}
	input, err := r.input(sol.day, args)
	if err != nil {
		return "", err
	}
	return sol.fn(r, input)
}

// input finds the puzzle input for a day. In order, it tries the
// command-line args, the config file, an N.input file, and stdin.
func (r *runner) input(day int, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if s, ok := r.conf.Get(fmt.Sprintf("day%d", day), "input"); ok {
		return s, nil
	}
	name := filepath.Join(r.dir, fmt.Sprintf("%d.input", day))
	b, err := os.ReadFile(name)
	if err == nil {
		return string(b), nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}
	if r.stdin == nil {
		return "", fmt.Errorf("no input given for day %d", day)
	}
	b, err = io.ReadAll(r.stdin)
	if err != nil {
		return "", fmt.Errorf("error reading input from stdin: %s", err)
	}
	return string(b), nil
}

func (r *runner) confInt(section, key string, def int64) (int64, error) {
	s, ok := r.conf.Get(section, key)
	if !ok {
		return def, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad config value for [%s] %s: %s", section, key, err)
	}
	return n, nil
}

// loadConfig reads the INI file at path. If path is empty, the default
// location is used and a missing file there is not an error.
func loadConfig(path string) (ini.File, error) {
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return make(ini.File), nil
		}
		path = filepath.Join(home, ".config", "aoc2017.ini")
	}
	conf, err := ini.LoadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return make(ini.File), nil
		}
		return nil, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	return conf, nil
}
