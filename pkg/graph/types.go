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

package graph

import (
	"math"

	"github.com/graph-gophers/graphql-go"
	"github.com/mchmarny/barcart/pkg/catalog"
	"github.com/mchmarny/barcart/pkg/query"
	"k8s.io/utils/ptr"
)

const (
	alcoholicLabel    = "Alcoholic"
	nonAlcoholicLabel = "Non alcoholic"
)

type ingredientResolver struct {
	i *catalog.Ingredient
}

func newIngredientResolver(i *catalog.Ingredient) *ingredientResolver {
	if i == nil {
		return nil
	}
	return &ingredientResolver{i: i}
}

func (r *ingredientResolver) ID() graphql.ID       { return graphql.ID(r.i.ID) }
func (r *ingredientResolver) Name() string         { return r.i.Name }
func (r *ingredientResolver) Description() *string { return optional(r.i.Description) }
func (r *ingredientResolver) Type() *string        { return optional(r.i.Type) }
func (r *ingredientResolver) Alcoholic() bool      { return r.i.Alcoholic }
func (r *ingredientResolver) Abv() *string         { return optional(r.i.ABV) }

// IDPlusOne is null when the id is not an integer or the result does not
// fit a GraphQL Int.
func (r *ingredientResolver) IDPlusOne() *int32 {
	n := query.IDPlusOne(r.i.ID)
	if n == nil || *n > math.MaxInt32 || *n < math.MinInt32 {
		return nil
	}
	return ptr.To(int32(*n))
}

type refResolver struct {
	ref catalog.IngredientRef
}

func (r *refResolver) Name() string     { return r.ref.Name }
func (r *refResolver) Measure() *string { return optional(r.ref.Measure) }

type drinkResolver struct {
	d      *catalog.Drink
	engine *query.Engine
}

func (r *drinkResolver) ID() graphql.ID            { return graphql.ID(r.d.ID) }
func (r *drinkResolver) Name() string              { return r.d.Name }
func (r *drinkResolver) AlternateName() *string    { return optional(r.d.AlternateName) }
func (r *drinkResolver) Tags() *string             { return optional(r.d.Tags) }
func (r *drinkResolver) Video() *string            { return optional(r.d.Video) }
func (r *drinkResolver) Category() *string         { return optional(r.d.Category) }
func (r *drinkResolver) Iba() *string              { return optional(r.d.IBA) }
func (r *drinkResolver) Alcoholic() bool           { return r.d.Alcoholic }
func (r *drinkResolver) Glass() *string            { return optional(r.d.Glass) }
func (r *drinkResolver) Instructions() *string     { return optional(r.d.Instructions) }
func (r *drinkResolver) Thumbnail() *string        { return optional(r.d.Thumbnail) }
func (r *drinkResolver) IngredientNames() []string { return r.d.IngredientNames() }
func (r *drinkResolver) Measures() []string        { return r.d.Measures() }

func (r *drinkResolver) Recipe() []*refResolver {
	out := make([]*refResolver, len(r.d.Ingredients))
	for i, ref := range r.d.Ingredients {
		out[i] = &refResolver{ref: ref}
	}
	return out
}

// Ingredients resolves the join against the ingredient catalog.
func (r *drinkResolver) Ingredients() []*ingredientResolver {
	list := r.engine.ResolveIngredients(r.d)
	out := make([]*ingredientResolver, len(list))
	for i, ing := range list {
		out[i] = newIngredientResolver(ing)
	}
	return out
}

// Deprecated field names kept for older clients.

func (r *drinkResolver) StrDrinkAlternate() *string { return r.AlternateName() }
func (r *drinkResolver) StrTags() *string           { return r.Tags() }
func (r *drinkResolver) StrVideo() *string          { return r.Video() }
func (r *drinkResolver) StrCategory() *string       { return r.Category() }
func (r *drinkResolver) StrIBA() *string            { return r.Iba() }
func (r *drinkResolver) StrGlass() *string          { return r.Glass() }
func (r *drinkResolver) StrDrinkThumb() *string     { return r.Thumbnail() }

func (r *drinkResolver) StrAlcoholic() *string {
	if r.d.Alcoholic {
		return ptr.To(alcoholicLabel)
	}
	return ptr.To(nonAlcoholicLabel)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return ptr.To(s)
}
