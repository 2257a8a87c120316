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
	"strconv"
	"strings"

	"github.com/mchmarny/barcart/pkg/catalog"
	"k8s.io/utils/ptr"
)

// DrinkView is a drink with its referenced ingredients resolved.
type DrinkView struct {
	catalog.Drink     `yaml:",inline"`
	IngredientDetails []*catalog.Ingredient `json:"ingredientDetails" yaml:"ingredientDetails"`
}

// IngredientView is an ingredient with derived fields.
type IngredientView struct {
	catalog.Ingredient `yaml:",inline"`
	// IDPlusOne is the numeric id plus one; nil when the id is not an integer.
	IDPlusOne *int `json:"idPlusOne,omitempty" yaml:"idPlusOne,omitempty"`
}

// DrinkViews is a list of drink views that renders as a table.
type DrinkViews []DrinkView

// IngredientViews is a list of ingredient views that renders as a table.
type IngredientViews []IngredientView

// DrinkView resolves drink into a view. A nil drink yields nil.
func (e *Engine) DrinkView(d *catalog.Drink) *DrinkView {
	if d == nil {
		return nil
	}
	return &DrinkView{
		Drink:             *d,
		IngredientDetails: e.ResolveIngredients(d),
	}
}

// DrinkViews resolves every drink in drinks.
func (e *Engine) DrinkViews(drinks []*catalog.Drink) DrinkViews {
	out := make(DrinkViews, 0, len(drinks))
	for _, d := range drinks {
		if v := e.DrinkView(d); v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// NewIngredientView wraps ing with derived fields. A nil ingredient yields nil.
func NewIngredientView(ing *catalog.Ingredient) *IngredientView {
	if ing == nil {
		return nil
	}
	return &IngredientView{
		Ingredient: *ing,
		IDPlusOne:  IDPlusOne(ing.ID),
	}
}

// NewIngredientViews wraps every ingredient in ings.
func NewIngredientViews(ings []*catalog.Ingredient) IngredientViews {
	out := make(IngredientViews, 0, len(ings))
	for _, ing := range ings {
		if v := NewIngredientView(ing); v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// IDPlusOne interprets id as a base-10 integer and returns it plus one.
// Non-numeric ids and ids at the top of the int range yield nil.
func IDPlusOne(id string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil || n == math.MaxInt {
		return nil
	}
	return ptr.To(n + 1)
}

// Columns implements serializer.Tabular.
func (v DrinkViews) Columns() []string {
	return []string{"ID", "NAME", "CATEGORY", "GLASS", "ALCOHOLIC", "INGREDIENTS"}
}

// Rows implements serializer.Tabular.
func (v DrinkViews) Rows() [][]string {
	rows := make([][]string, 0, len(v))
	for _, d := range v {
		rows = append(rows, []string{
			d.ID,
			d.Name,
			d.Category,
			d.Glass,
			strconv.FormatBool(d.Alcoholic),
			strings.Join(d.IngredientNames(), ", "),
		})
	}
	return rows
}

// Columns implements serializer.Tabular.
func (v IngredientViews) Columns() []string {
	return []string{"ID", "NAME", "TYPE", "ALCOHOLIC", "ABV"}
}

// Rows implements serializer.Tabular.
func (v IngredientViews) Rows() [][]string {
	rows := make([][]string, 0, len(v))
	for _, i := range v {
		rows = append(rows, []string{
			i.ID,
			i.Name,
			i.Type,
			strconv.FormatBool(i.Alcoholic),
			i.ABV,
		})
	}
	return rows
}
