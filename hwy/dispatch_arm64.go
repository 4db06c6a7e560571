//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// ARM64 (AArch64) always has NEON (ASIMD) available; it's part of the
	// ARMv8-A base architecture. SVE widths vary per implementation and are
	// not modelled, so NEON's 128-bit register is used.
	if cpu.ARM64.HasASIMD {
		setLevel(DispatchNEON, Width128)
		return
	}
	setLevel(DispatchScalar, Width128)
}
