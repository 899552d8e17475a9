// Command bfsparallel-solve reads a Sokoban puzzle instance from
// standard input and runs the multithreaded disk-swapping breadth-first
// search engine (engine/bfsparallel).
//
// Usage: bfsparallel-solve T [m [a b]]
//
//	T  thread count (required)
//	m  visited-bitmap block-size exponent, 0 for a single block (default 16)
//	a  out-buffer megabyte budget (default 1)
//	b  in-buffer megabyte budget (default 1)
//
// matching "Parallel engine: positional args T [m [a b]]".
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli"

	"github.com/solverlab/puzzlesolve/engine/bfsparallel"
	"github.com/solverlab/puzzlesolve/internal/fail"
	"github.com/solverlab/puzzlesolve/sokoban"
)

// VERSION is injected by buildflags.
var VERSION = "SELFBUILD"

func main() {
	app := cli.NewApp()
	app.Name = "bfsparallel-solve"
	app.Usage = "exhaustive multithreaded disk-swapping BFS over a Sokoban instance read from stdin"
	app.Version = VERSION
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fail.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if c.NArg() < 1 {
		return fail.Wrap(fmt.Errorf("usage: bfsparallel-solve T [m [a b]]"), "bfsparallel-solve: missing thread count")
	}

	threads, err := strconv.Atoi(c.Args().Get(0))
	if err != nil || threads < 1 {
		return fail.Wrap(fmt.Errorf("invalid value %q", c.Args().Get(0)), "bfsparallel-solve: T must be a positive integer")
	}

	blockBits := uint(16)
	if c.NArg() > 1 {
		m, err := strconv.Atoi(c.Args().Get(1))
		if err != nil || m < 0 {
			return fail.Wrap(fmt.Errorf("invalid value %q", c.Args().Get(1)), "bfsparallel-solve: m must be a non-negative integer")
		}
		blockBits = uint(m)
	}

	outMB, inMB := 1, 1
	if c.NArg() > 3 {
		a, errA := strconv.Atoi(c.Args().Get(2))
		b, errB := strconv.Atoi(c.Args().Get(3))
		if errA != nil || errB != nil || a < 1 || b < 1 {
			return fail.Wrap(fmt.Errorf("invalid values %q %q", c.Args().Get(2), c.Args().Get(3)), "bfsparallel-solve: a and b must be positive integers")
		}
		outMB, inMB = a, b
	}

	inst, start, err := sokoban.Load(os.Stdin)
	if err != nil {
		return fail.Wrap(err, "bfsparallel-solve: load puzzle instance")
	}
	d := sokoban.NewDomain(inst, start, threads)

	res, err := bfsparallel.Solve(d, threads,
		bfsparallel.WithBlockBits(blockBits),
		bfsparallel.WithBufferBytes(outMB<<20, inMB<<20),
	)
	if err != nil {
		return fail.Wrap(err, "bfsparallel-solve: search")
	}
	defer res.Close()

	if !res.Solved() {
		fmt.Println("no solution")

		return nil
	}

	path, err := res.Path()
	if err != nil {
		return fail.Wrap(err, "bfsparallel-solve: reconstruct solution")
	}

	for i, state := range path {
		d.Decode(0, state)
		fmt.Printf("step %d:\n%s\n", i, d.Print(0))
	}

	return nil
}
