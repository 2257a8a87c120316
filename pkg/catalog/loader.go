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
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mchmarny/barcart/pkg/defaults"
	cnserrors "github.com/mchmarny/barcart/pkg/errors"
	"github.com/mchmarny/barcart/pkg/serializer"
)

// Base names of the catalog data files. Each may be stored as .yaml, .yml or .json.
const (
	IngredientsFileBase = "ingredients"
	DrinksFileBase      = "drinks"
	PopularFileBase     = "popular"
)

var (
	defaultStoreOnce sync.Once
	defaultStore     *Store
	defaultStoreErr  error
)

// Default returns the embedded catalog, loading it on first use.
func Default(ctx context.Context) (*Store, error) {
	defaultStoreOnce.Do(func() {
		defaultStore, defaultStoreErr = Load(ctx, NewEmbeddedDataProvider(dataFS, "data"))
	})
	return defaultStore, defaultStoreErr
}

// LoadFrom loads the catalog from source, which may be empty (embedded
// catalog), a local directory, or an http(s) base URL.
func LoadFrom(ctx context.Context, source string) (*Store, error) {
	if strings.TrimSpace(source) == "" {
		return Default(ctx)
	}
	provider, err := NewDataProvider(source)
	if err != nil {
		catalogLoadErrors.Inc()
		return nil, err
	}
	return Load(ctx, provider)
}

// Load reads and validates both collections and the optional curated
// popular list from provider and builds a Store from them.
func Load(ctx context.Context, provider DataProvider) (*Store, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, defaults.CatalogLoadTimeout)
	defer cancel()

	store, err := load(ctx, provider)
	if err != nil {
		catalogLoadErrors.Inc()
		return nil, err
	}

	catalogLoadDuration.Observe(time.Since(start).Seconds())
	catalogRecords.WithLabelValues("ingredients").Set(float64(len(store.Ingredients())))
	catalogRecords.WithLabelValues("drinks").Set(float64(len(store.Drinks())))
	catalogRecords.WithLabelValues("popular").Set(float64(len(store.popular)))

	slog.Info("catalog loaded",
		"source", provider.Source(),
		"ingredients", len(store.Ingredients()),
		"drinks", len(store.Drinks()),
		"popular", len(store.popular),
		"duration", time.Since(start))

	return store, nil
}

func load(ctx context.Context, provider DataProvider) (*Store, error) {
	var ingredients IngredientsFile
	if err := readDataFile(ctx, provider, IngredientsFileBase, &ingredients); err != nil {
		return nil, err
	}

	var drinks DrinksFile
	if err := readDataFile(ctx, provider, DrinksFileBase, &drinks); err != nil {
		return nil, err
	}

	var popular PopularFile
	if err := readDataFile(ctx, provider, PopularFileBase, &popular); err != nil {
		if !cnserrors.HasCode(err, cnserrors.ErrCodeNotFound) {
			return nil, err
		}
		slog.Info("no curated popular list in catalog", "source", provider.Source())
	}

	if err := Validate(ingredients.Ingredients, drinks.Drinks); err != nil {
		return nil, err
	}

	return NewStore(ingredients.Ingredients, drinks.Drinks, popular.Popular), nil
}

// readDataFile resolves base against the known extensions and decodes the
// first file found into v. An empty file decodes to an empty document.
func readDataFile(ctx context.Context, provider DataProvider, base string, v any) error {
	tried := make([]string, 0, len(dataExtensions))
	for _, ext := range dataExtensions {
		if err := ctx.Err(); err != nil {
			return cnserrors.Wrap(cnserrors.ErrCodeTimeout, "catalog load canceled", err)
		}

		name := base + ext
		tried = append(tried, name)

		data, err := provider.ReadFile(ctx, name)
		if err != nil {
			if cnserrors.HasCode(err, cnserrors.ErrCodeNotFound) {
				continue
			}
			return err
		}

		r, err := serializer.NewReader(serializer.FormatFromPath(name), bytes.NewReader(data))
		if err != nil {
			return cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to create reader", err)
		}
		if err := r.Deserialize(v); err != nil && !errors.Is(err, io.EOF) {
			return cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest,
				fmt.Sprintf("failed to parse %s", name), err,
				map[string]any{"file": name, "source": provider.Source()})
		}

		slog.Debug("decoded data file", "file", name, "source", provider.Source())
		return nil
	}

	return cnserrors.NewWithContext(cnserrors.ErrCodeNotFound,
		fmt.Sprintf("%s data file not found", base),
		map[string]any{"tried": tried, "source": provider.Source()})
}

// Validate checks that every record carries an id and a name and that every
// ingredient reference names an ingredient. Duplicates are not errors.
func Validate(ingredients []*Ingredient, drinks []*Drink) error {
	for i, ing := range ingredients {
		if ing == nil {
			return invalidRecord(IngredientsFileBase, i, "record")
		}
		if strings.TrimSpace(ing.ID) == "" {
			return invalidRecord(IngredientsFileBase, i, "id")
		}
		if strings.TrimSpace(ing.Name) == "" {
			return invalidRecord(IngredientsFileBase, i, "name")
		}
	}

	for i, d := range drinks {
		if d == nil {
			return invalidRecord(DrinksFileBase, i, "record")
		}
		if strings.TrimSpace(d.ID) == "" {
			return invalidRecord(DrinksFileBase, i, "id")
		}
		if strings.TrimSpace(d.Name) == "" {
			return invalidRecord(DrinksFileBase, i, "name")
		}
		for j, ref := range d.Ingredients {
			if strings.TrimSpace(ref.Name) == "" {
				return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
					"ingredient reference without a name",
					map[string]any{"drink": d.ID, "position": j})
			}
		}
	}
	return nil
}

func invalidRecord(collection string, pos int, field string) error {
	return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
		fmt.Sprintf("%s record missing %s", collection, field),
		map[string]any{"collection": collection, "position": pos, "field": field})
}
