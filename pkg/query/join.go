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
	"github.com/mchmarny/barcart/pkg/catalog"
	"github.com/mchmarny/barcart/pkg/normalize"
)

// ResolveIngredients returns the ingredients referenced by drink, in
// ingredient collection order rather than the drink's reference order.
// References with no matching ingredient are ignored.
func (e *Engine) ResolveIngredients(drink *catalog.Drink) []*catalog.Ingredient {
	out := make([]*catalog.Ingredient, 0)
	if drink == nil || len(drink.Ingredients) == 0 {
		return out
	}

	refs := make(map[string]struct{}, len(drink.Ingredients))
	for _, r := range drink.Ingredients {
		refs[normalize.Fold(r.Name)] = struct{}{}
	}

	for _, ing := range e.store.Ingredients() {
		if _, ok := refs[normalize.Fold(ing.Name)]; ok {
			out = append(out, ing)
		}
	}
	return out
}
