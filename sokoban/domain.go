package sokoban

import (
	"iter"
	"slices"

	"github.com/solverlab/puzzlesolve/codec"
)

// Domain adapts an Instance and a set of per-worker Configs to the
// domain.Domain interface consumed by the search engines.
type Domain struct {
	inst    *Instance
	workers []*Config
}

// NewDomain builds a Domain with numWorkers independent copies of
// start, one per worker id. Engines that only ever use worker id 0
// (BFS-mem, BFS-DDD, BFS-disk) should pass numWorkers=1; the parallel
// engine passes its thread count.
func NewDomain(inst *Instance, start *Config, numWorkers int) *Domain {
	workers := make([]*Config, numWorkers)
	for i := range workers {
		workers[i] = start.Clone()
	}

	return &Domain{inst: inst, workers: workers}
}

// StateSize implements domain.Domain.
func (d *Domain) StateSize() int { return d.inst.StateSize() }

// DomainSize implements domain.Domain.
func (d *Domain) DomainSize() codec.State { return d.inst.DomainSize() }

// Encode implements domain.Domain.
func (d *Domain) Encode(worker int) []byte {
	return encodeConfig(d.workers[worker])
}

// Decode implements domain.Domain.
func (d *Domain) Decode(worker int, b []byte) {
	decodeConfig(d.workers[worker], b)
}

// Neighbors implements domain.Domain.
func (d *Domain) Neighbors(worker int) iter.Seq[[]byte] {
	return slices.Values(generateNeighbors(d.workers[worker]))
}

// Won implements domain.Domain.
func (d *Domain) Won(worker int) bool {
	return d.workers[worker].Won()
}

// Print implements domain.Domain.
func (d *Domain) Print(worker int) string {
	return d.workers[worker].Print()
}
