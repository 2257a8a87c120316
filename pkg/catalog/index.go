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
	"slices"

	"github.com/mchmarny/barcart/pkg/normalize"
)

// Record is implemented by catalog entries that can be looked up by id and name.
type Record interface {
	comparable
	RecordID() string
	RecordName() string
}

// FindByID returns the first record whose id equals id exactly, or the zero
// value (nil for pointer records) when none does. Ids are case-sensitive.
func FindByID[T Record](items []T, id string) T {
	var zero T
	for _, it := range items {
		if it != zero && it.RecordID() == id {
			return it
		}
	}
	return zero
}

// FindByName returns the first record whose name matches name ignoring case,
// or the zero value when none does.
func FindByName[T Record](items []T, name string) T {
	var zero T
	folded := normalize.Fold(name)
	for _, it := range items {
		if it != zero && normalize.Fold(it.RecordName()) == folded {
			return it
		}
	}
	return zero
}

// ContainsNameCI reports whether names holds name ignoring case.
func ContainsNameCI(names []string, name string) bool {
	folded := normalize.Fold(name)
	for _, n := range names {
		if normalize.Fold(n) == folded {
			return true
		}
	}
	return false
}

// Index answers id and name lookups over an immutable collection in constant
// time with the same first-match-wins result as FindByID and FindByName.
type Index[T Record] struct {
	items  []T
	byID   map[string]T
	byName map[string]T
}

// Duplicate describes a record whose id or name was already taken by an
// earlier record in the same collection.
type Duplicate struct {
	Field    string
	Value    string
	Position int
}

// NewIndex builds an index over items. Later records sharing an id or a
// case-folded name with an earlier one are reported as duplicates and are
// unreachable through the index.
func NewIndex[T Record](items []T) (*Index[T], []Duplicate) {
	ix := &Index[T]{
		items:  items,
		byID:   make(map[string]T, len(items)),
		byName: make(map[string]T, len(items)),
	}

	var dups []Duplicate
	for pos, it := range items {
		id := it.RecordID()
		if _, ok := ix.byID[id]; ok {
			dups = append(dups, Duplicate{Field: "id", Value: id, Position: pos})
		} else {
			ix.byID[id] = it
		}

		name := normalize.Fold(it.RecordName())
		if _, ok := ix.byName[name]; ok {
			dups = append(dups, Duplicate{Field: "name", Value: it.RecordName(), Position: pos})
		} else {
			ix.byName[name] = it
		}
	}
	return ix, dups
}

// Items returns a copy of the indexed collection in load order.
func (ix *Index[T]) Items() []T { return slices.Clone(ix.items) }

// ByID returns the record with the given id or the zero value.
func (ix *Index[T]) ByID(id string) T { return ix.byID[id] }

// ByName returns the record with the given name, ignoring case, or the zero value.
func (ix *Index[T]) ByName(name string) T { return ix.byName[normalize.Fold(name)] }
