// Package core wraps the pipeline and its two caches into the top-level
// simulator unit: construction, running, and a cache_print_stats-style
// human-readable report.
package core

import (
	"fmt"
	"strings"

	"github.com/Eltaras202/mipspipe-sim/emu"
	"github.com/Eltaras202/mipspipe-sim/timing/cache"
	"github.com/Eltaras202/mipspipe-sim/timing/latency"
	"github.com/Eltaras202/mipspipe-sim/timing/pipeline"
)

// InitialPC is the reference simulator's fixed entry point.
const InitialPC = 0x00400000

// Core is the complete simulator: a 5-stage pipeline plus its instruction
// and data caches, sharing one flat backing memory.
type Core struct {
	Pipeline *pipeline.Pipeline

	regs   *emu.RegFile
	memory *emu.Memory
	icache *cache.Cache
	dcache *cache.Cache
}

// NewCore builds a Core: it wires a fresh RegFile and Memory, creates the
// icache/dcache from cfg, sets PC to InitialPC, and constructs the
// pipeline around all of it.
func NewCore(cfg *latency.Config, opts ...pipeline.Option) *Core {
	regs := &emu.RegFile{PC: InitialPC}
	memory := emu.NewMemory()
	backing := cache.NewMemoryBacking(memory)

	icache := cache.New(cfg.ICache, backing)
	dcache := cache.New(cfg.DCache, backing)

	c := &Core{
		regs:     regs,
		memory:   memory,
		icache:   icache,
		dcache:   dcache,
		Pipeline: pipeline.NewPipeline(regs, icache, dcache, cfg, opts...),
	}
	c.Pipeline.PC = InitialPC
	return c
}

// Memory returns the flat backing memory, for a loader to populate before
// the run starts.
func (c *Core) Memory() *emu.Memory { return c.memory }

// Regs returns the architectural register file.
func (c *Core) Regs() *emu.RegFile { return c.regs }

// Run ticks the pipeline until it halts.
func (c *Core) Run() { c.Pipeline.Run() }

// Tick advances the simulator by one cycle.
func (c *Core) Tick() { c.Pipeline.Tick() }

// Halted reports whether the simulator has halted.
func (c *Core) Halted() bool { return c.Pipeline.Halted() }

// Report renders a cache_print_stats-style human-readable summary of the
// pipeline counters and both caches' hit/miss/writeback statistics.
func (c *Core) Report() string {
	var b strings.Builder

	stat := c.Pipeline.Stats()
	fmt.Fprintf(&b, "Simulation Statistics:\n")
	fmt.Fprintf(&b, "  Cycles: %d\n", stat.Cycles)
	fmt.Fprintf(&b, "  Instructions Fetched: %d\n", stat.InstructionsFetched)
	fmt.Fprintf(&b, "  Instructions Retired: %d\n", stat.InstructionsRetired)
	fmt.Fprintf(&b, "  Stall Cycles: %d\n", stat.StallCycles)
	fmt.Fprintf(&b, "  Branches Squashed: %d\n", stat.BranchesSquashed)
	if stat.InstructionsRetired > 0 {
		fmt.Fprintf(&b, "  CPI: %.2f\n", float64(stat.Cycles)/float64(stat.InstructionsRetired))
	}
	b.WriteString("\n")

	reportCache(&b, "Instruction Cache", c.icache.Stats())
	reportCache(&b, "Data Cache", c.dcache.Stats())

	return b.String()
}

func reportCache(b *strings.Builder, name string, s cache.Statistics) {
	fmt.Fprintf(b, "%s Statistics:\n", name)
	fmt.Fprintf(b, "  Accesses: %d\n", s.Accesses)
	fmt.Fprintf(b, "  Hits: %d\n", s.Hits)
	fmt.Fprintf(b, "  Misses: %d\n", s.Misses)
	fmt.Fprintf(b, "  Writebacks: %d\n", s.Writebacks)
	if s.Accesses > 0 {
		fmt.Fprintf(b, "  Hit Rate: %.2f%%\n", s.HitRate()*100)
		fmt.Fprintf(b, "  Miss Rate: %.2f%%\n", s.MissRate()*100)
	}
	b.WriteString("\n")
}
