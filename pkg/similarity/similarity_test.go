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

package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilar(t *testing.T) {
	tests := []struct {
		name   string
		a, b   string
		assert func(t *testing.T, score float64)
	}{
		{"identical", "Margarita", "Margarita", func(t *testing.T, s float64) { assert.Equal(t, 1.0, s) }},
		{"identical ignoring case", "MOJITO", "mojito", func(t *testing.T, s float64) { assert.Equal(t, 1.0, s) }},
		{"both empty", "", "", func(t *testing.T, s float64) { assert.Equal(t, 1.0, s) }},
		{"one empty", "Mojito", "", func(t *testing.T, s float64) { assert.Equal(t, 0.0, s) }},
		{"no common characters", "abc", "xyz", func(t *testing.T, s float64) { assert.Equal(t, 0.0, s) }},
		{"one letter typo", "Margarita", "Margerita", func(t *testing.T, s float64) { assert.Greater(t, s, 0.9) }},
		{"unrelated drinks", "Martini", "Negroni", func(t *testing.T, s float64) { assert.Less(t, s, 0.9) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Similar(tt.a, tt.b)
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 1.0)
			tt.assert(t, s)
		})
	}
}

func TestSimilar_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"Margarita", "Margerita"},
		{"Moscow Mule", "Mosco Mule"},
		{"Daiquiri", "Daquiri"},
	}
	for _, p := range pairs {
		assert.InDelta(t, Similar(p[0], p[1]), Similar(p[1], p[0]), 1e-9, "%v", p)
	}
}

func TestIsFuzzyMatch(t *testing.T) {
	tests := []struct {
		candidate string
		term      string
		want      bool
	}{
		{"Mojito", "mo", true},
		{"Moscow Mule", "MULE", true},
		{"Margarita", "Margerita", true},
		{"Mojito", "Mojitos", true},
		{"Daiquiri", "Daquiri", false},
		{"Martini", "Negroni", false},
		{"Martini", "xyz", false},
		{"Mojito", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.candidate+"/"+tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFuzzyMatch(tt.candidate, tt.term))
		})
	}
}

func TestIsFuzzyMatch_SubstringAlwaysAccepted(t *testing.T) {
	strict := NewMatcher(WithThreshold(1))
	// "fashion" scores well below 1 against "Old Fashioned" but is a substring
	assert.Less(t, strict.Similar("Old Fashioned", "fashion"), 1.0)
	assert.True(t, strict.IsFuzzyMatch("Old Fashioned", "fashion"))
	assert.True(t, strict.IsFuzzyMatch("Old Fashioned", "FASHION"))
}

func TestWithThreshold(t *testing.T) {
	assert.Equal(t, DefaultThreshold, NewMatcher().Threshold())
	assert.Equal(t, 0.8, NewMatcher(WithThreshold(0.8)).Threshold())
	assert.Equal(t, 1.0, NewMatcher(WithThreshold(2)).Threshold())
	assert.Equal(t, 0.0, NewMatcher(WithThreshold(-1)).Threshold())

	loose := NewMatcher(WithThreshold(0.5))
	assert.True(t, loose.IsFuzzyMatch("Martini", "Mortimer"))
}
