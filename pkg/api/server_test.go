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

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/mchmarny/barcart/pkg/catalog"
	cnserrors "github.com/mchmarny/barcart/pkg/errors"
	"github.com/mchmarny/barcart/pkg/query"
	"github.com/mchmarny/barcart/pkg/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Serve blocks until shutdown, so these tests exercise the pieces it wires
// together: catalog loading, engine construction, and route registration.

func TestConstants(t *testing.T) {
	assert.Equal(t, "barcartd", name)
	assert.Equal(t, "dev", versionDefault)
	assert.Equal(t, "BARCART_DATA_DIR", EnvVarDataDir)
}

func TestNewEngine_Embedded(t *testing.T) {
	e, err := NewEngine(context.Background(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, e.AllDrinks())
	assert.NotEmpty(t, e.AllIngredients())
	assert.NotEmpty(t, e.Popular())
}

func TestNewEngine_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ingredients.yaml"), []byte(`
ingredients:
  - id: "1"
    name: Gin
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "drinks.yaml"), []byte(`
drinks:
  - id: "100"
    name: Gin Neat
    ingredients:
      - name: gin
`), 0o600))

	e, err := NewEngine(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, e.AllDrinks(), 1)
	assert.Empty(t, e.Popular())
	assert.Equal(t, "Gin", e.ResolveIngredients(e.AllDrinks()[0])[0].Name)
}

func TestNewEngine_MissingDirectory(t *testing.T) {
	_, err := NewEngine(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Equal(t, cnserrors.ErrCodeNotFound, cnserrors.CodeOf(err))
}

func TestRoutes(t *testing.T) {
	e, err := NewEngine(context.Background(), "")
	require.NoError(t, err)

	routes := Routes(e)
	for _, p := range []string{
		"/v1/ingredients", "/v1/drinks", "/v1/drinks/search", "/v1/drinks/fuzzy",
		"/v1/drinks/filter", "/v1/drinks/random", "/v1/drinks/popular", "/graphql",
	} {
		assert.Contains(t, routes, p)
	}
}

func TestServedRoutes(t *testing.T) {
	e, err := NewEngine(context.Background(), "")
	require.NoError(t, err)

	h := server.New(server.WithName(name), server.WithHandler(Routes(e))).Handler()

	tests := []struct {
		method string
		target string
		body   string
		status int
	}{
		{http.MethodGet, "/v1/drinks?name=margarita", "", http.StatusOK},
		{http.MethodGet, "/v1/drinks/fuzzy?q=margerita", "", http.StatusOK},
		{http.MethodGet, "/v1/drinks?id=nonexistent", "", http.StatusNotFound},
		{http.MethodDelete, "/v1/drinks", "", http.StatusMethodNotAllowed},
		{http.MethodPost, "/graphql", `{"query":"{ drinkById(id: \"11007\") { name } }"}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, bytes.NewBufferString(tt.body)))
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			assert.NotEmpty(t, w.Header().Get("X-Request-Id"), "middleware applied")
		})
	}
}

func TestServedRoutes_Concurrent(t *testing.T) {
	e, err := NewEngine(context.Background(), "")
	require.NoError(t, err)

	cfg := server.NewConfig()
	cfg.RateLimit = 10000
	cfg.RateLimitBurst = 10000
	h := server.New(server.WithConfig(cfg), server.WithHandler(Routes(e))).Handler()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/drinks/filter?ingredient=Lime+juice", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}()
	}
	wg.Wait()
}

func TestCatalogCheck(t *testing.T) {
	e, err := NewEngine(context.Background(), "")
	require.NoError(t, err)

	detail, err := CatalogCheck(e)(context.Background())
	require.NoError(t, err)
	assert.Contains(t, detail, "drinks")

	_, err = CatalogCheck(query.New(catalog.NewStore(nil, nil, nil)))(context.Background())
	require.Error(t, err)
	assert.True(t, cnserrors.HasCode(err, cnserrors.ErrCodeEmptyCollection))
}
