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
	"log/slog"
	"time"

	"github.com/mchmarny/barcart/pkg/catalog"
	"github.com/mchmarny/barcart/pkg/normalize"
	"github.com/mchmarny/barcart/pkg/similarity"
)

// Engine answers read-only queries over an immutable catalog store.
// All methods are safe for concurrent use.
type Engine struct {
	store   *catalog.Store
	names   []string
	popular []*catalog.Drink
	random  RandomSource
	matcher *similarity.Matcher
}

// Option is a functional option for configuring Engine instances.
type Option func(*Engine)

// WithPopular sets the curated popular drink names used when a filter or
// fuzzy search is given no criteria. Defaults to the store's popular list.
func WithPopular(names []string) Option {
	return func(e *Engine) {
		e.names = names
	}
}

// WithRandomSource sets the source used by RandomDrink.
func WithRandomSource(r RandomSource) Option {
	return func(e *Engine) {
		if r != nil {
			e.random = r
		}
	}
}

// WithMatcher sets the similarity matcher used by fuzzy search.
func WithMatcher(m *similarity.Matcher) Option {
	return func(e *Engine) {
		if m != nil {
			e.matcher = m
		}
	}
}

// New creates an Engine over store. The curated popular list is resolved
// once here, so the store must be fully loaded.
func New(store *catalog.Store, opts ...Option) *Engine {
	if store == nil {
		store = catalog.NewStore(nil, nil, nil)
	}
	e := &Engine{
		store:   store,
		names:   store.Popular(),
		random:  defaultRandom{},
		matcher: similarity.NewMatcher(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.popular = resolvePopular(store, e.names)

	slog.Debug("query engine initialized",
		"drinks", len(store.Drinks()),
		"ingredients", len(store.Ingredients()),
		"popular", len(e.popular),
		"threshold", e.matcher.Threshold())

	return e
}

// resolvePopular maps names to drinks in list order, skipping unknown names
// and drinks already listed.
func resolvePopular(store *catalog.Store, names []string) []*catalog.Drink {
	out := make([]*catalog.Drink, 0, len(names))
	seen := make(map[*catalog.Drink]bool, len(names))
	for _, n := range names {
		d := store.DrinkByName(n)
		if d == nil {
			slog.Debug("popular drink not in catalog", "name", n)
			continue
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}

// Store returns the underlying catalog store.
func (e *Engine) Store() *catalog.Store { return e.store }

// AllIngredients returns every ingredient in store order.
func (e *Engine) AllIngredients() []*catalog.Ingredient {
	defer observe(opAllIngredients, time.Now(), len(e.store.Ingredients()))
	return e.store.Ingredients()
}

// AllDrinks returns every drink in store order.
func (e *Engine) AllDrinks() []*catalog.Drink {
	defer observe(opAllDrinks, time.Now(), len(e.store.Drinks()))
	return e.store.Drinks()
}

// IngredientByID returns the ingredient with the exact id, or nil.
func (e *Engine) IngredientByID(id string) *catalog.Ingredient {
	start := time.Now()
	ing := e.store.IngredientByID(id)
	observe(opIngredientByID, start, found(ing != nil))
	return ing
}

// DrinkByID returns the drink with the exact id, or nil.
func (e *Engine) DrinkByID(id string) *catalog.Drink {
	start := time.Now()
	d := e.store.DrinkByID(id)
	observe(opDrinkByID, start, found(d != nil))
	return d
}

// IngredientByName returns the ingredient whose name matches ignoring case, or nil.
func (e *Engine) IngredientByName(name string) *catalog.Ingredient {
	start := time.Now()
	ing := e.store.IngredientByName(name)
	observe(opIngredientByName, start, found(ing != nil))
	return ing
}

// DrinkByName returns the drink whose name matches ignoring case, or nil.
func (e *Engine) DrinkByName(name string) *catalog.Drink {
	start := time.Now()
	d := e.store.DrinkByName(name)
	observe(opDrinkByName, start, found(d != nil))
	return d
}

// DrinksWithIngredient returns drinks listing name among their ingredients,
// ignoring case, in store order.
func (e *Engine) DrinksWithIngredient(name string) []*catalog.Drink {
	start := time.Now()
	out := filterDrinks(e.store.Drinks(), func(d *catalog.Drink) bool {
		return catalog.ContainsNameCI(d.IngredientNames(), name)
	})
	observe(opDrinksWithIngredient, start, len(out))
	return out
}

// DrinksWithIngredients returns the page of drinks that list every one of
// names. With no names it returns the curated popular list and ignores
// limit and offset.
func (e *Engine) DrinksWithIngredients(names []string, limit, offset int) []*catalog.Drink {
	start := time.Now()
	if len(names) == 0 {
		popularFallbacks.WithLabelValues(opDrinksWithIngredients).Inc()
		out := e.Popular()
		observe(opDrinksWithIngredients, start, len(out))
		return out
	}

	matches := filterDrinks(e.store.Drinks(), func(d *catalog.Drink) bool {
		refs := d.IngredientNames()
		for _, n := range names {
			if !catalog.ContainsNameCI(refs, n) {
				return false
			}
		}
		return true
	})
	out := Paginate(matches, limit, offset)
	observe(opDrinksWithIngredients, start, len(out))
	return out
}

// SearchDrinksByName returns drinks whose name contains term ignoring case.
// An empty term matches every drink.
func (e *Engine) SearchDrinksByName(term string) []*catalog.Drink {
	start := time.Now()
	out := filterDrinks(e.store.Drinks(), func(d *catalog.Drink) bool {
		return normalize.Contains(d.Name, term)
	})
	observe(opSearchDrinksByName, start, len(out))
	return out
}

// FuzzySearchDrinksByName returns the page of drinks whose name contains term
// or is similar enough to it. An empty term returns the curated popular list
// and ignores limit and offset.
func (e *Engine) FuzzySearchDrinksByName(term string, limit, offset int) []*catalog.Drink {
	start := time.Now()
	if term == "" {
		popularFallbacks.WithLabelValues(opFuzzySearchDrinksByName).Inc()
		out := e.Popular()
		observe(opFuzzySearchDrinksByName, start, len(out))
		return out
	}

	matches := filterDrinks(e.store.Drinks(), func(d *catalog.Drink) bool {
		return e.matcher.IsFuzzyMatch(d.Name, term)
	})
	out := Paginate(matches, limit, offset)
	observe(opFuzzySearchDrinksByName, start, len(out))
	return out
}

// RandomDrink returns a uniformly chosen drink. It fails with an
// EMPTY_COLLECTION error when the catalog holds no drinks.
func (e *Engine) RandomDrink() (*catalog.Drink, error) {
	start := time.Now()
	d, err := pick(e.random, e.store.Drinks())
	observe(opRandomDrink, start, found(d != nil))
	return d, err
}

// Popular returns the resolved curated popular list.
func (e *Engine) Popular() []*catalog.Drink {
	out := make([]*catalog.Drink, len(e.popular))
	copy(out, e.popular)
	return out
}

func filterDrinks(drinks []*catalog.Drink, keep func(*catalog.Drink) bool) []*catalog.Drink {
	out := make([]*catalog.Drink, 0)
	for _, d := range drinks {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

func found(ok bool) int {
	if ok {
		return 1
	}
	return 0
}
