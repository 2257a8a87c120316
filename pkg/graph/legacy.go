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
	"github.com/mchmarny/barcart/pkg/query"
)

type legacyIDArgs struct {
	ID *string
}

type legacyIngredientArgs struct {
	IngredientName *string
}

type legacyIngredientsArgs struct {
	IngredientNames *[]string
}

// Ingredients resolves the deprecated ingredients field.
func (r *Resolver) Ingredients() []*ingredientResolver {
	return r.AllIngredients()
}

// Ingredient resolves the deprecated ingredient field. A missing id
// resolves to null.
func (r *Resolver) Ingredient(args legacyIDArgs) *ingredientResolver {
	if args.ID == nil {
		return nil
	}
	return newIngredientResolver(r.engine.IngredientByID(*args.ID))
}

// Drinks resolves the deprecated drinks field.
func (r *Resolver) Drinks() []*drinkResolver {
	return r.AllDrinks()
}

// FindDrinkByID resolves the deprecated findDrinkByID field.
func (r *Resolver) FindDrinkByID(args legacyIDArgs) *drinkResolver {
	if args.ID == nil {
		return nil
	}
	return r.drink(r.engine.DrinkByID(*args.ID))
}

// FindDrinksWithIngredient resolves the deprecated findDrinksWithIngredient field.
func (r *Resolver) FindDrinksWithIngredient(args legacyIngredientArgs) []*drinkResolver {
	if args.IngredientName == nil {
		return []*drinkResolver{}
	}
	return r.drinks(r.engine.DrinksWithIngredient(*args.IngredientName))
}

// FindDrinksWithIngredients resolves the deprecated findDrinksWithIngredients
// field. Results are not paginated.
func (r *Resolver) FindDrinksWithIngredients(args legacyIngredientsArgs) []*drinkResolver {
	var names []string
	if args.IngredientNames != nil {
		names = *args.IngredientNames
	}
	return r.drinks(r.engine.DrinksWithIngredients(names, query.NoLimit, 0))
}
