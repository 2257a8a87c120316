// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package query

import "math"

// NoLimit requests every remaining result.
const NoLimit = math.MaxInt

// Paginate returns items[offset:offset+limit] with clamped bounds. A negative
// offset is treated as zero and a negative limit yields no results; neither
// is an error. The returned slice shares its backing array with items.
func Paginate[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || offset >= len(items) {
		return items[:0:0]
	}
	end := len(items)
	if remaining := len(items) - offset; limit < remaining {
		end = offset + limit
	}
	return items[offset:end]
}
