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
	"math/rand/v2"

	"github.com/mchmarny/barcart/pkg/catalog"
	cnserrors "github.com/mchmarny/barcart/pkg/errors"
)

// ErrEmptyCollection is returned when a random pick is requested from an
// empty catalog.
var ErrEmptyCollection = cnserrors.New(cnserrors.ErrCodeEmptyCollection, "catalog has no drinks to choose from")

// RandomSource returns a value in [0, n). Implementations must be safe for
// concurrent use.
type RandomSource interface {
	IntN(n int) int
}

// defaultRandom draws from the math/rand/v2 global generator.
type defaultRandom struct{}

func (defaultRandom) IntN(n int) int { return rand.IntN(n) }

func pick(r RandomSource, drinks []*catalog.Drink) (*catalog.Drink, error) {
	if len(drinks) == 0 {
		return nil, ErrEmptyCollection
	}
	i := r.IntN(len(drinks))
	if i < 0 || i >= len(drinks) {
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeInternal, "random source out of range",
			map[string]any{"index": i, "size": len(drinks)})
	}
	return drinks[i], nil
}
