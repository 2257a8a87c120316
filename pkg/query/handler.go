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
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/mchmarny/barcart/pkg/defaults"
	cnserrors "github.com/mchmarny/barcart/pkg/errors"
	"github.com/mchmarny/barcart/pkg/serializer"
	"github.com/mchmarny/barcart/pkg/server"
)

var (
	// catalogCacheTTL can be overridden for testing
	catalogCacheTTL = defaults.CatalogCacheTTL
)

// Handler exposes the engine over REST.
type Handler struct {
	engine *Engine
}

// NewHandler returns a REST handler backed by engine.
func NewHandler(engine *Engine) *Handler {
	return &Handler{engine: engine}
}

// Routes returns the REST routes keyed by path, for server.WithHandler.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/ingredients":    h.HandleIngredients,
		"/v1/drinks":         h.HandleDrinks,
		"/v1/drinks/search":  h.HandleSearch,
		"/v1/drinks/fuzzy":   h.HandleFuzzySearch,
		"/v1/drinks/filter":  h.HandleFilter,
		"/v1/drinks/random":  h.HandleRandom,
		"/v1/drinks/popular": h.HandlePopular,
	}
}

// HandleIngredients serves GET /v1/ingredients with optional id or name.
func (h *Handler) HandleIngredients(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.QueryHandlerTimeout)
	defer cancel()

	if !server.AllowMethods(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()
	switch {
	case q.Has("id"):
		id := q.Get("id")
		ing := h.engine.IngredientByID(id)
		if ing == nil {
			writeNotFound(w, r, "Ingredient not found", "id", id)
			return
		}
		h.respond(ctx, w, r, NewIngredientView(ing))
	case q.Has("name"):
		name := q.Get("name")
		ing := h.engine.IngredientByName(name)
		if ing == nil {
			writeNotFound(w, r, "Ingredient not found", "name", name)
			return
		}
		h.respond(ctx, w, r, NewIngredientView(ing))
	default:
		h.respond(ctx, w, r, NewIngredientViews(h.engine.AllIngredients()))
	}
}

// HandleDrinks serves GET /v1/drinks with optional id, name, or ingredient.
func (h *Handler) HandleDrinks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.QueryHandlerTimeout)
	defer cancel()

	if !server.AllowMethods(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()
	switch {
	case q.Has("id"):
		id := q.Get("id")
		d := h.engine.DrinkByID(id)
		if d == nil {
			writeNotFound(w, r, "Drink not found", "id", id)
			return
		}
		h.respond(ctx, w, r, h.engine.DrinkView(d))
	case q.Has("name"):
		name := q.Get("name")
		d := h.engine.DrinkByName(name)
		if d == nil {
			writeNotFound(w, r, "Drink not found", "name", name)
			return
		}
		h.respond(ctx, w, r, h.engine.DrinkView(d))
	case q.Has("ingredient"):
		h.respond(ctx, w, r, h.engine.DrinkViews(h.engine.DrinksWithIngredient(q.Get("ingredient"))))
	default:
		h.respond(ctx, w, r, h.engine.DrinkViews(h.engine.AllDrinks()))
	}
}

// HandleSearch serves GET /v1/drinks/search?q=term.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.QueryHandlerTimeout)
	defer cancel()

	if !server.AllowMethods(w, r, http.MethodGet) {
		return
	}

	term := r.URL.Query().Get("q")
	h.respond(ctx, w, r, h.engine.DrinkViews(h.engine.SearchDrinksByName(term)))
}

// HandleFuzzySearch serves GET /v1/drinks/fuzzy?q=term&limit=&offset=.
func (h *Handler) HandleFuzzySearch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.QueryHandlerTimeout)
	defer cancel()

	if !server.AllowMethods(w, r, http.MethodGet) {
		return
	}

	limit, offset, err := ParsePage(r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid pagination", nil)
		return
	}

	term := r.URL.Query().Get("q")
	slog.Debug("fuzzy search", "term", term, "limit", limit, "offset", offset)

	h.respond(ctx, w, r, h.engine.DrinkViews(h.engine.FuzzySearchDrinksByName(term, limit, offset)))
}

// HandleFilter serves GET /v1/drinks/filter?ingredient=a&ingredient=b&limit=&offset=.
// Comma-separated values are split into separate names.
func (h *Handler) HandleFilter(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.QueryHandlerTimeout)
	defer cancel()

	if !server.AllowMethods(w, r, http.MethodGet) {
		return
	}

	limit, offset, err := ParsePage(r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid pagination", nil)
		return
	}

	names := SplitNames(r.URL.Query()["ingredient"])
	h.respond(ctx, w, r, h.engine.DrinkViews(h.engine.DrinksWithIngredients(names, limit, offset)))
}

// HandleRandom serves GET /v1/drinks/random. Responses are never cached.
func (h *Handler) HandleRandom(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.QueryHandlerTimeout)
	defer cancel()

	if !server.AllowMethods(w, r, http.MethodGet) {
		return
	}

	d, err := h.engine.RandomDrink()
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to pick a drink", nil)
		return
	}
	if ctx.Err() != nil {
		writeCanceled(w, r, ctx.Err())
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	serializer.RespondJSON(w, http.StatusOK, h.engine.DrinkView(d))
}

// HandlePopular serves GET /v1/drinks/popular.
func (h *Handler) HandlePopular(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.QueryHandlerTimeout)
	defer cancel()

	if !server.AllowMethods(w, r, http.MethodGet) {
		return
	}

	h.respond(ctx, w, r, h.engine.DrinkViews(h.engine.Popular()))
}

// respond writes data with catalog caching headers unless the request was
// canceled or timed out while the query ran.
func (h *Handler) respond(ctx context.Context, w http.ResponseWriter, r *http.Request, data any) {
	if err := ctx.Err(); err != nil {
		writeCanceled(w, r, err)
		return
	}
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(catalogCacheTTL.Seconds())))
	serializer.RespondJSON(w, http.StatusOK, data)
}

func writeNotFound(w http.ResponseWriter, r *http.Request, msg, key, value string) {
	server.WriteError(w, r, http.StatusNotFound, cnserrors.ErrCodeNotFound, msg, false,
		map[string]any{key: value})
}

func writeCanceled(w http.ResponseWriter, r *http.Request, err error) {
	server.WriteErrorFromErr(w, r,
		cnserrors.Wrap(cnserrors.ErrCodeTimeout, "request canceled before response", err),
		"Request canceled", nil)
}

// ParsePage reads limit and offset query parameters, applying
// defaults.PageLimit and defaults.PageOffset when absent. Values must be
// integers; negative values are accepted and clamped by the engine.
func ParsePage(r *http.Request) (limit, offset int, err error) {
	q := r.URL.Query()
	limit, err = intParam(q.Get("limit"), "limit", defaults.PageLimit)
	if err != nil {
		return 0, 0, err
	}
	offset, err = intParam(q.Get("offset"), "offset", defaults.PageOffset)
	if err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}

func intParam(raw, name string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("%s must be an integer", name), err,
			map[string]any{name: raw})
	}
	return v, nil
}

// SplitNames flattens repeated and comma-separated values, trimming
// whitespace and dropping empty entries.
func SplitNames(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
