//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures model a 128-bit register in scalar mode.
	// HWY_WIDTH can still force a wider register for testing.
	setLevel(DispatchScalar, Width128)
}
