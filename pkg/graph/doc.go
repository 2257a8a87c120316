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

// Package graph serves the catalog query engine as a GraphQL API.
//
// The schema is embedded from schema.graphql and resolved with
// github.com/graph-gophers/graphql-go. Every query field maps to one engine
// operation; Drink.ingredients is resolved through the engine's ingredient
// join. Older field names (ingredients, drinks, findDrinkByID, strGlass, ...)
// remain available and are marked deprecated.
//
// Lookups that find nothing resolve to null. A random pick from an empty
// catalog is reported in errors[] with extensions.code EMPTY_COLLECTION.
//
//	curl -s localhost:8080/graphql \
//	    -d '{"query":"{ fuzzySearchDrinksByName(term: \"margerita\") { name ingredients { name } } }"}'
package graph
