package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/cespare/aoc2017/spiral"
	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
)

func init() {
	register("3a", day3a)
	register("3b", day3b)
}

func day3a(r *runner, input string) (string, error) {
	k, err := parseInt(input)
	if err != nil {
		return "", err
	}
	d, err := spiral.Distance(k)
	if err != nil {
		return "", err
	}
	if r.verbose {
		log.Printf("square %s is %s steps from the port", humanize.Comma(k), humanize.Comma(d))
	}
	return strconv.FormatInt(d, 10), nil
}

func day3b(r *runner, input string) (string, error) {
	t, err := parseInt(input)
	if err != nil {
		return "", err
	}
	maxSteps, err := r.confInt("spiral", "max-steps", spiral.DefaultMaxSteps)
	if err != nil {
		return "", err
	}
	var trace func(spiral.Cell)
	if r.verbose {
		trace = func(c spiral.Cell) { pretty.Logf("%# v", c) }
	}
	c, err := spiral.FirstAbove(t, maxSteps, trace)
	if err != nil {
		return "", err
	}
	if r.verbose {
		log.Printf("first value above %s is at %s, step %s", humanize.Comma(t), c.Pos, humanize.Comma(c.Step))
	}
	return strconv.FormatInt(c.Val, 10), nil
}

func parseInt(input string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad puzzle input %q: %s", input, err)
	}
	return n, nil
}
