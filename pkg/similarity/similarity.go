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

// Package similarity decides whether a drink name is a fuzzy match for a
// search term.
//
// A candidate matches when it contains the term (ignoring case) or when the
// Jaro-Winkler similarity of the two case-folded strings is strictly above
// the threshold, 0.9 by default. The Winkler prefix bonus uses the
// conventional scale of 0.1 over at most four leading characters and only
// applies once the plain Jaro score reaches 0.7.
package similarity

import (
	"github.com/mchmarny/barcart/pkg/normalize"
	"github.com/xrash/smetrics"
)

const (
	// DefaultThreshold is the similarity a candidate must exceed to match.
	DefaultThreshold = 0.9

	boostThreshold = 0.7
	prefixSize     = 4
)

// Option is a functional option for configuring a Matcher.
type Option func(*Matcher)

// WithThreshold sets the similarity score a candidate must exceed.
// Values outside [0, 1] are clamped.
func WithThreshold(threshold float64) Option {
	return func(m *Matcher) {
		m.threshold = min(max(threshold, 0), 1)
	}
}

// Matcher scores and matches strings. It is read-only after construction
// and safe for concurrent use.
type Matcher struct {
	threshold float64
}

// NewMatcher returns a Matcher with the given options applied.
func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Threshold returns the configured threshold.
func (m *Matcher) Threshold() float64 { return m.threshold }

// Similar returns the Jaro-Winkler similarity of a and b in [0, 1],
// ignoring case. Equal strings score 1 and strings without a common
// character score 0.
func (m *Matcher) Similar(a, b string) float64 {
	fa, fb := normalize.Fold(a), normalize.Fold(b)
	if fa == fb {
		return 1
	}
	return smetrics.JaroWinkler(fa, fb, boostThreshold, prefixSize)
}

// IsFuzzyMatch reports whether candidate contains term ignoring case, or
// is more similar to it than the threshold.
func (m *Matcher) IsFuzzyMatch(candidate, term string) bool {
	if normalize.Contains(candidate, term) {
		return true
	}
	return m.Similar(candidate, term) > m.threshold
}

var defaultMatcher = NewMatcher()

// Similar scores a and b with the default Matcher.
func Similar(a, b string) float64 { return defaultMatcher.Similar(a, b) }

// IsFuzzyMatch matches with the default Matcher.
func IsFuzzyMatch(candidate, term string) bool { return defaultMatcher.IsFuzzyMatch(candidate, term) }
