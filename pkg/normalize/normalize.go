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

// Package normalize folds catalog names to a single case so every
// name comparison in barcart agrees on what "case-insensitive" means.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns the Unicode case-folded form of s.
// A fresh Caser is used per call; Casers are not safe for concurrent use.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Equal reports whether a and b are equal after case folding.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}

// Contains reports whether sub is a substring of s after case folding.
// The empty string is contained in every string.
func Contains(s, sub string) bool {
	return strings.Contains(Fold(s), Fold(sub))
}
