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

// Package query implements the catalog query engine and its REST handler.
//
// An Engine is built once from a fully loaded catalog.Store and answers
// lookups, ingredient filters, name search, fuzzy search, and random picks.
// It never mutates the store and holds no locks; every method is safe for
// concurrent use.
//
// # Matching
//
// Names and ingredient references compare case-insensitively. Ids compare
// exactly. Fuzzy search accepts a drink when its name contains the term or
// scores above the similarity threshold (Jaro-Winkler, 0.9 by default).
//
// # Pagination
//
// Paged operations return items[offset:offset+limit] with clamped bounds.
// Pass NoLimit for every remaining result.
//
// # Curated Popular List
//
// DrinksWithIngredients with no names and FuzzySearchDrinksByName with an
// empty term return the curated popular list and ignore pagination. The list
// defaults to the catalog's popular file and can be replaced with WithPopular.
//
// # Usage
//
//	store, err := catalog.Default(ctx)
//	if err != nil {
//	    return err
//	}
//	engine := query.New(store)
//	drinks := engine.FuzzySearchDrinksByName("margerita", 10, 0)
//
// # REST
//
// NewHandler(engine).Routes() exposes the engine under /v1 for
// server.WithHandler. Lookups that find nothing respond 404; a random pick
// from an empty catalog responds 404 with code EMPTY_COLLECTION.
package query
