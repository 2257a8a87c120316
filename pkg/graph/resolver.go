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
	"github.com/graph-gophers/graphql-go"
	"github.com/mchmarny/barcart/pkg/catalog"
	"github.com/mchmarny/barcart/pkg/defaults"
	cnserrors "github.com/mchmarny/barcart/pkg/errors"
	"github.com/mchmarny/barcart/pkg/query"
)

// Resolver is the root query resolver.
type Resolver struct {
	engine *query.Engine
}

// NewResolver returns a root resolver backed by engine.
func NewResolver(engine *query.Engine) *Resolver {
	return &Resolver{engine: engine}
}

type idArgs struct {
	ID graphql.ID
}

type nameArgs struct {
	Name string
}

type termArgs struct {
	Term string
}

type namesPageArgs struct {
	Names  []string
	Limit  *int32
	Offset *int32
}

type termPageArgs struct {
	Term   string
	Limit  *int32
	Offset *int32
}

// AllIngredients resolves allIngredients.
func (r *Resolver) AllIngredients() []*ingredientResolver {
	return r.ingredients(r.engine.AllIngredients())
}

// AllDrinks resolves allDrinks.
func (r *Resolver) AllDrinks() []*drinkResolver {
	return r.drinks(r.engine.AllDrinks())
}

// IngredientByID resolves ingredientById.
func (r *Resolver) IngredientByID(args idArgs) *ingredientResolver {
	return newIngredientResolver(r.engine.IngredientByID(string(args.ID)))
}

// DrinkByID resolves drinkById.
func (r *Resolver) DrinkByID(args idArgs) *drinkResolver {
	return r.drink(r.engine.DrinkByID(string(args.ID)))
}

// IngredientByName resolves ingredientByName.
func (r *Resolver) IngredientByName(args nameArgs) *ingredientResolver {
	return newIngredientResolver(r.engine.IngredientByName(args.Name))
}

// DrinkByName resolves drinkByName.
func (r *Resolver) DrinkByName(args nameArgs) *drinkResolver {
	return r.drink(r.engine.DrinkByName(args.Name))
}

// DrinksWithIngredient resolves drinksWithIngredient.
func (r *Resolver) DrinksWithIngredient(args nameArgs) []*drinkResolver {
	return r.drinks(r.engine.DrinksWithIngredient(args.Name))
}

// DrinksWithIngredients resolves drinksWithIngredients.
func (r *Resolver) DrinksWithIngredients(args namesPageArgs) []*drinkResolver {
	limit, offset := page(args.Limit, args.Offset)
	return r.drinks(r.engine.DrinksWithIngredients(args.Names, limit, offset))
}

// SearchDrinksByName resolves searchDrinksByName.
func (r *Resolver) SearchDrinksByName(args termArgs) []*drinkResolver {
	return r.drinks(r.engine.SearchDrinksByName(args.Term))
}

// FuzzySearchDrinksByName resolves fuzzySearchDrinksByName.
func (r *Resolver) FuzzySearchDrinksByName(args termPageArgs) []*drinkResolver {
	limit, offset := page(args.Limit, args.Offset)
	return r.drinks(r.engine.FuzzySearchDrinksByName(args.Term, limit, offset))
}

// RandomDrink resolves randomDrink. An empty catalog is reported as a
// GraphQL error.
func (r *Resolver) RandomDrink() (*drinkResolver, error) {
	d, err := r.engine.RandomDrink()
	if err != nil {
		return nil, resolverError{err: err}
	}
	return r.drink(d), nil
}

// PopularDrinks resolves popularDrinks.
func (r *Resolver) PopularDrinks() []*drinkResolver {
	return r.drinks(r.engine.Popular())
}

func (r *Resolver) drink(d *catalog.Drink) *drinkResolver {
	if d == nil {
		return nil
	}
	return &drinkResolver{d: d, engine: r.engine}
}

func (r *Resolver) drinks(list []*catalog.Drink) []*drinkResolver {
	out := make([]*drinkResolver, 0, len(list))
	for _, d := range list {
		if d != nil {
			out = append(out, r.drink(d))
		}
	}
	return out
}

func (r *Resolver) ingredients(list []*catalog.Ingredient) []*ingredientResolver {
	out := make([]*ingredientResolver, 0, len(list))
	for _, ing := range list {
		if ing != nil {
			out = append(out, newIngredientResolver(ing))
		}
	}
	return out
}

// page applies the default limit and offset to omitted or null arguments.
func page(limit, offset *int32) (int, int) {
	l, o := defaults.PageLimit, defaults.PageOffset
	if limit != nil {
		l = int(*limit)
	}
	if offset != nil {
		o = int(*offset)
	}
	return l, o
}

// resolverError exposes the structured error code under extensions.code.
type resolverError struct {
	err error
}

func (e resolverError) Error() string { return e.err.Error() }

func (e resolverError) Unwrap() error { return e.err }

func (e resolverError) Extensions() map[string]any {
	return map[string]any{"code": string(cnserrors.CodeOf(e.err))}
}
