package pipeline

// stageFetch is the Fetch stage: pull one instruction word out of the
// instruction cache at PC and hand it to decode. A cache miss sets
// icacheStall and leaves PC and the decode-input slot untouched so the
// same fetch is retried once the stall clears.
func (p *Pipeline) stageFetch() {
	if p.decodeOp != nil {
		return
	}

	if p.PC&0x3 != 0 {
		p.trace("fetch: unaligned PC %#08x, halting", p.PC)
		p.halted = true
		return
	}

	hit, word := p.icache.Access(p.PC, false, 0)
	if !hit {
		p.icacheStall = p.icache.Config().MissPenalty
		return
	}

	op := newOp(p.PC, word)
	p.decodeOp = op
	p.PC += 4
	p.stat.InstructionsFetched++
}
