package emu

// SyscallExitCode is the value of $v0 (R2) that requests a halt. Per the
// reference convention, executing a SYSCALL with $v0==10 retires normally
// but signals the pipeline controller to stop dispatching further
// instructions; no other syscall numbers are recognized.
const SyscallExitCode = 10

// SyscallResult reports the outcome of a SYSCALL instruction reaching
// write-back.
type SyscallResult struct {
	// Halt is true if this syscall requests a simulator stop ($v0==10).
	Halt bool
}

// HandleSyscall inspects the $v0 (register 2) value captured at the time the
// SYSCALL instruction was issued and reports whether it requests a halt.
// Any value other than 10 is a no-op in this MIPS subset: it is not an error
// and execution continues.
func HandleSyscall(v0 uint32) SyscallResult {
	return SyscallResult{Halt: v0 == SyscallExitCode}
}
