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


package sort

// Defaults for the hybrid driver.
const (
	// defaultSortLimitRegs: ranges shorter than this many registers are
	// finished by the block sort instead of being partitioned further.
	defaultSortLimitRegs = MaxBlocks

	// defaultParallelGrain: ranges shorter than this many elements are never
	// handed to another worker.
	defaultParallelGrain = 8192

	// sortedCheckGrain: below this length IsSortedParallel checks on the
	// calling goroutine only.
	sortedCheckGrain = 1 << 16

	// unset marks an integer option that was not given.
	unset = -1
)
