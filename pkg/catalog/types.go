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

// Ingredient is a single entry in the ingredient catalog.
// Name is the join key drinks reference it by.
type Ingredient struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Alcoholic   bool   `json:"alcoholic" yaml:"alcoholic"`
	ABV         string `json:"abv,omitempty" yaml:"abv,omitempty"`
}

// RecordID returns the ingredient id.
func (i *Ingredient) RecordID() string { return i.ID }

// RecordName returns the ingredient name.
func (i *Ingredient) RecordName() string { return i.Name }

// IngredientRef pairs an ingredient name with the measure a drink uses.
type IngredientRef struct {
	Name    string `json:"name" yaml:"name"`
	Measure string `json:"measure,omitempty" yaml:"measure,omitempty"`
}

// Drink is a single entry in the drink catalog.
type Drink struct {
	ID            string          `json:"id" yaml:"id"`
	Name          string          `json:"name" yaml:"name"`
	AlternateName string          `json:"alternateName,omitempty" yaml:"alternateName,omitempty"`
	Tags          string          `json:"tags,omitempty" yaml:"tags,omitempty"`
	Video         string          `json:"video,omitempty" yaml:"video,omitempty"`
	Category      string          `json:"category,omitempty" yaml:"category,omitempty"`
	IBA           string          `json:"iba,omitempty" yaml:"iba,omitempty"`
	Alcoholic     bool            `json:"alcoholic" yaml:"alcoholic"`
	Glass         string          `json:"glass,omitempty" yaml:"glass,omitempty"`
	Instructions  string          `json:"instructions,omitempty" yaml:"instructions,omitempty"`
	Thumbnail     string          `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Ingredients   []IngredientRef `json:"ingredients" yaml:"ingredients"`
}

// RecordID returns the drink id.
func (d *Drink) RecordID() string { return d.ID }

// RecordName returns the drink name.
func (d *Drink) RecordName() string { return d.Name }

// IngredientNames returns the referenced ingredient names in recipe order.
func (d *Drink) IngredientNames() []string {
	names := make([]string, len(d.Ingredients))
	for i, ref := range d.Ingredients {
		names[i] = ref.Name
	}
	return names
}

// Measures returns the measures in recipe order, aligned with IngredientNames.
func (d *Drink) Measures() []string {
	measures := make([]string, len(d.Ingredients))
	for i, ref := range d.Ingredients {
		measures[i] = ref.Measure
	}
	return measures
}

// IngredientsFile is the document shape of the ingredients data file.
type IngredientsFile struct {
	Ingredients []*Ingredient `json:"ingredients" yaml:"ingredients"`
}

// DrinksFile is the document shape of the drinks data file.
type DrinksFile struct {
	Drinks []*Drink `json:"drinks" yaml:"drinks"`
}

// PopularFile is the document shape of the curated popular list.
type PopularFile struct {
	Popular []string `json:"popular" yaml:"popular"`
}
