// Command bfsdisk-solve reads a Sokoban puzzle instance from standard
// input and runs the disk-swapping breadth-first search engine
// (engine/bfsdisk) to exhaustion or until a winning state is found.
//
// Usage: bfsdisk-solve [out-buffer-mb]
//
// The one optional positional argument sets the out-buffer megabyte
// budget; the in-buffer is given the same size. It defaults to 1MB.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli"

	"github.com/solverlab/puzzlesolve/engine/bfsdisk"
	"github.com/solverlab/puzzlesolve/internal/fail"
	"github.com/solverlab/puzzlesolve/sokoban"
)

// VERSION is injected by buildflags, mirroring the xtaci/kcptun CLI
// convention of a package-level VERSION var.
var VERSION = "SELFBUILD"

func main() {
	app := cli.NewApp()
	app.Name = "bfsdisk-solve"
	app.Usage = "exhaustive disk-swapping BFS over a Sokoban instance read from stdin"
	app.Version = VERSION
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fail.Fatal(err)
	}
}

func run(c *cli.Context) error {
	outBufMB := 1
	if c.NArg() > 0 {
		n, err := strconv.Atoi(c.Args().Get(0))
		if err != nil || n < 1 {
			return fail.Wrap(fmt.Errorf("invalid value %q", c.Args().Get(0)), "bfsdisk-solve: out-buffer-mb must be a positive integer")
		}
		outBufMB = n
	}

	inst, start, err := sokoban.Load(os.Stdin)
	if err != nil {
		return fail.Wrap(err, "bfsdisk-solve: load puzzle instance")
	}
	d := sokoban.NewDomain(inst, start, 1)

	res, err := bfsdisk.Solve(d, bfsdisk.WithBufferBytes(outBufMB<<20, outBufMB<<20))
	if err != nil {
		return fail.Wrap(err, "bfsdisk-solve: search")
	}
	defer res.Close()

	if !res.Solved() {
		fmt.Println("no solution")

		return nil
	}

	path, err := res.Path()
	if err != nil {
		return fail.Wrap(err, "bfsdisk-solve: reconstruct solution")
	}

	printSolution(d, path)

	return nil
}

func printSolution(d *sokoban.Domain, path [][]byte) {
	for i, state := range path {
		d.Decode(0, state)
		fmt.Printf("step %d:\n%s\n", i, d.Print(0))
	}
}
