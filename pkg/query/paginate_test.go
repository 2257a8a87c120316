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

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{0, 1, 2, 3, 4}

	tests := []struct {
		name   string
		limit  int
		offset int
		want   []int
	}{
		{"first page", 2, 0, []int{0, 1}},
		{"middle page", 2, 2, []int{2, 3}},
		{"last partial page", 2, 4, []int{4}},
		{"offset at end", 2, 5, []int{}},
		{"offset past end", 2, 50, []int{}},
		{"negative offset is zero", 2, -3, []int{0, 1}},
		{"negative limit is empty", -1, 0, []int{}},
		{"zero limit is empty", 0, 0, []int{}},
		{"no limit", NoLimit, 1, []int{1, 2, 3, 4}},
		{"no limit with max offset", NoLimit, math.MaxInt, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paginate(items, tt.limit, tt.offset))
		})
	}
}

func TestPaginate_Nil(t *testing.T) {
	assert.Empty(t, Paginate[string](nil, 10, 0))
}
