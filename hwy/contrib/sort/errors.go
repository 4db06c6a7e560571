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

import "errors"

// ErrInvalidSize is returned when a slice length does not fit the chosen
// algorithm: more than MaxBlocks registers for the block sort, or a length
// that is not a power of two for BitonicSort. The returned errors wrap it
// with the offending length; test with errors.Is.
var ErrInvalidSize = errors.New("sort: invalid size")
