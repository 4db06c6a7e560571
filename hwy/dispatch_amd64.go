// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	setLevel(detectX86())
}

// detectX86 picks the widest register the CPU supports. The sorting
// kernels need compare, min/max, blend and compress, which AVX-512F
// provides natively; AVX2 and SSE2 emulate compress with lookup tables.
func detectX86() (DispatchLevel, int) {
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512VL:
		return DispatchAVX512, Width512
	case cpu.X86.HasAVX2:
		return DispatchAVX2, Width256
	case cpu.X86.HasSSE2:
		return DispatchSSE2, Width128
	default:
		return DispatchScalar, Width128
	}
}
