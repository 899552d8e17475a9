package npuzzle

import (
	"iter"
	"slices"

	"github.com/solverlab/puzzlesolve/codec"
)

// Domain adapts an Instance and a set of per-worker Configs to the
// domain.Domain interface.
type Domain struct {
	inst    *Instance
	workers []*Config
}

// NewDomain builds a Domain with numWorkers independent copies of start.
func NewDomain(inst *Instance, start *Config, numWorkers int) *Domain {
	workers := make([]*Config, numWorkers)
	for i := range workers {
		workers[i] = &Config{inst: inst, tiles: append([]int(nil), start.tiles...)}
	}

	return &Domain{inst: inst, workers: workers}
}

func (d *Domain) StateSize() int             { return d.inst.StateSize() }
func (d *Domain) DomainSize() codec.State    { return d.inst.DomainSize() }
func (d *Domain) Encode(worker int) []byte   { return Encode(d.workers[worker]) }
func (d *Domain) Decode(worker int, b []byte) { Decode(d.workers[worker], b) }
func (d *Domain) Won(worker int) bool        { return d.workers[worker].Won() }
func (d *Domain) Print(worker int) string    { return d.workers[worker].Print() }

func (d *Domain) Neighbors(worker int) iter.Seq[[]byte] {
	return slices.Values(neighbors(d.workers[worker]))
}
