// Package pipeline implements the 5-stage in-order MIPS pipeline: Fetch,
// Decode, Execute, Memory, Write-Back. A single Op record moves by pointer
// through four named slots (decode-input, execute-input, memory-input,
// write-back-input); a stage owns the Op exclusively while it sits in that
// stage's slot, and may emit it downstream only when the next slot is
// empty.
//
// Each tick runs the stages in reverse pipeline order - write-back,
// memory, execute, decode, fetch - so every stage observes its downstream
// slot already drained this cycle, matching the reference controller's
// hazard-free same-cycle forwarding.
package pipeline

import (
	"fmt"
	"io"

	"github.com/Eltaras202/mipspipe-sim/emu"
	"github.com/Eltaras202/mipspipe-sim/insts"
	"github.com/Eltaras202/mipspipe-sim/timing/cache"
	"github.com/Eltaras202/mipspipe-sim/timing/latency"
)

// Pipeline is the cycle-accurate 5-stage MIPS pipeline model.
type Pipeline struct {
	decodeOp  *Op
	executeOp *Op
	memOp     *Op
	wbOp      *Op

	PC uint32

	regs    *emu.RegFile
	decoder *insts.Decoder

	icache *cache.Cache
	dcache *cache.Cache

	latency *latency.Config

	icacheStall     int
	dcacheStall     int
	multiplierStall int

	branchRecover bool
	branchDest    uint32
	branchFlush   int

	halted bool

	stat Stats

	traceOut io.Writer
}

// Option configures a Pipeline at construction time.
type Option func(*Pipeline)

// WithTrace directs diagnostic output to w: one line per branch recovery,
// and one line when fetch halts on a misaligned PC.
func WithTrace(w io.Writer) Option {
	return func(p *Pipeline) { p.traceOut = w }
}

// NewPipeline builds a Pipeline around a register file, instruction and
// data caches, and the multiplier/divider stall durations.
func NewPipeline(regs *emu.RegFile, icache, dcache *cache.Cache, lat *latency.Config, opts ...Option) *Pipeline {
	p := &Pipeline{
		regs:    regs,
		decoder: insts.NewDecoder(),
		icache:  icache,
		dcache:  dcache,
		latency: lat,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Stats accumulates pipeline-level counters across the run.
// Stats counts only what the pipeline itself tracks; icache/dcache hit and
// miss counts live on the caches themselves (cache.Cache.Stats), which the
// surrounding Core exposes alongside this.
type Stats struct {
	Cycles              uint64
	InstructionsFetched uint64
	InstructionsRetired uint64
	StallCycles         uint64
	BranchesSquashed    uint64
}

// Stats returns a snapshot of the accumulated pipeline statistics.
func (p *Pipeline) Stats() Stats { return p.stat }

// Halted reports whether the pipeline has stopped: a SYSCALL with $v0==10
// has reached write-back, or fetch found a misaligned PC.
func (p *Pipeline) Halted() bool { return p.halted }

// ICache returns the instruction cache, for statistics reporting.
func (p *Pipeline) ICache() *cache.Cache { return p.icache }

// DCache returns the data cache, for statistics reporting.
func (p *Pipeline) DCache() *cache.Cache { return p.dcache }

// Regs returns the architectural register file, for inspection or tracing.
func (p *Pipeline) Regs() *emu.RegFile { return p.regs }

// recover schedules a branch-triggered pipeline flush. A recovery already
// scheduled this tick dominates: the first branch to resolve wins, matching
// the reference controller's "first pending recovery" semantics.
func (p *Pipeline) recover(flush int, dest uint32) {
	if p.branchRecover {
		return
	}
	p.branchRecover = true
	p.branchFlush = flush
	p.branchDest = dest
}

func (p *Pipeline) trace(format string, args ...any) {
	if p.traceOut == nil {
		return
	}
	fmt.Fprintf(p.traceOut, format+"\n", args...)
}

// Tick advances the pipeline by exactly one cycle, reproducing the
// reference controller's exact sequencing: a stall counter above 1 just
// decrements and returns; a stall counter at exactly 1 lets the affected
// stages run once more (to drain what they were working on) before
// clearing; branch recovery is processed only once both stall counters
// have settled at zero for this cycle.
func (p *Pipeline) Tick() {
	if p.halted {
		return
	}
	p.stat.Cycles++

	if p.icacheStall > 1 {
		p.icacheStall--
		p.stat.StallCycles++
		return
	}
	if p.dcacheStall > 1 {
		p.dcacheStall--
		p.stat.StallCycles++
		return
	}

	switch {
	case p.icacheStall == 0 && p.dcacheStall == 0:
		p.stageWriteback()
		p.stageMemory()
		p.stageExecute()
		p.stageDecode()
		p.stageFetch()

	case p.dcacheStall == 1:
		p.stageMemory()
		p.stageExecute()
		p.stageDecode()
		p.stageFetch()
		p.dcacheStall = 0

	case p.icacheStall == 1:
		p.stageFetch()
		p.icacheStall = 0
	}

	if p.icacheStall > 0 || p.dcacheStall > 0 {
		p.stat.StallCycles++
		return
	}

	if p.branchRecover {
		p.trace("branch recovery: dest=%#08x flush=%d", p.branchDest, p.branchFlush)

		p.PC = p.branchDest

		if p.branchFlush >= 2 {
			p.decodeOp = nil
		}
		if p.branchFlush >= 3 {
			p.executeOp = nil
		}
		if p.branchFlush >= 4 {
			p.memOp = nil
		}
		if p.branchFlush >= 5 {
			p.wbOp = nil
		}

		p.branchRecover = false
		p.branchDest = 0
		p.branchFlush = 0

		p.stat.BranchesSquashed++
	}
}

// Run ticks the pipeline until it halts.
func (p *Pipeline) Run() {
	for !p.halted {
		p.Tick()
	}
}

// RunCycles ticks the pipeline up to n times, stopping early if it halts.
// It reports whether the pipeline is still running afterward.
func (p *Pipeline) RunCycles(n int) bool {
	for i := 0; i < n && !p.halted; i++ {
		p.Tick()
	}
	return !p.halted
}
