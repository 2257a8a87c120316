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

package catalog

import (
	"log/slog"
	"slices"
)

// Store holds both catalog collections. It is built in one step from fully
// populated inputs and never changes afterwards, so it is safe to share
// across goroutines without locking.
type Store struct {
	ingredients *Index[*Ingredient]
	drinks      *Index[*Drink]
	popular     []string
}

// NewStore builds a store from loaded records. Nil entries are dropped.
// Duplicate ids and names are kept in the collections; lookups resolve to
// the first occurrence and each later occurrence is logged at warn.
func NewStore(ingredients []*Ingredient, drinks []*Drink, popular []string) *Store {
	ingredients = slices.DeleteFunc(slices.Clone(ingredients), func(i *Ingredient) bool { return i == nil })
	drinks = slices.DeleteFunc(slices.Clone(drinks), func(d *Drink) bool { return d == nil })

	ingIx, ingDups := NewIndex(ingredients)
	drinkIx, drinkDups := NewIndex(drinks)
	warnDuplicates("ingredients", ingDups)
	warnDuplicates("drinks", drinkDups)

	return &Store{
		ingredients: ingIx,
		drinks:      drinkIx,
		popular:     slices.Clone(popular),
	}
}

func warnDuplicates(collection string, dups []Duplicate) {
	for _, d := range dups {
		slog.Warn("duplicate catalog key, first occurrence wins",
			"collection", collection,
			"field", d.Field,
			"value", d.Value,
			"position", d.Position)
	}
}

// Ingredients returns a copy of the ingredient collection in load order.
func (s *Store) Ingredients() []*Ingredient { return s.ingredients.Items() }

// Drinks returns a copy of the drink collection in load order.
func (s *Store) Drinks() []*Drink { return s.drinks.Items() }

// Popular returns the curated popular drink names shipped with the catalog.
func (s *Store) Popular() []string { return slices.Clone(s.popular) }

// IngredientByID returns the first ingredient with the given id, or nil.
func (s *Store) IngredientByID(id string) *Ingredient { return s.ingredients.ByID(id) }

// IngredientByName returns the first ingredient with the given name ignoring case, or nil.
func (s *Store) IngredientByName(name string) *Ingredient { return s.ingredients.ByName(name) }

// DrinkByID returns the first drink with the given id, or nil.
func (s *Store) DrinkByID(id string) *Drink { return s.drinks.ByID(id) }

// DrinkByName returns the first drink with the given name ignoring case, or nil.
func (s *Store) DrinkByName(name string) *Drink { return s.drinks.ByName(name) }
