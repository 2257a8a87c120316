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
	"context"
	_ "embed"
	"net/http"

	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/mchmarny/barcart/pkg/defaults"
	"github.com/mchmarny/barcart/pkg/query"
	"github.com/mchmarny/barcart/pkg/server"
)

// Path is the route the GraphQL endpoint is served on.
const Path = "/graphql"

//go:embed schema.graphql
var schemaSDL string

// Schema returns the GraphQL schema definition.
func Schema() string { return schemaSDL }

// NewSchema parses the schema against a resolver backed by engine. Options
// are applied after the defaults. It panics if the schema and resolver
// disagree.
func NewSchema(engine *query.Engine, opts ...graphql.SchemaOpt) *graphql.Schema {
	all := append([]graphql.SchemaOpt{graphql.MaxDepth(defaults.GraphQLMaxDepth)}, opts...)
	return graphql.MustParseSchema(schemaSDL, NewResolver(engine), all...)
}

// Handler serves GraphQL queries over HTTP POST.
type Handler struct {
	relay *relay.Handler
}

// NewHandler returns a GraphQL HTTP handler backed by engine.
func NewHandler(engine *query.Engine) *Handler {
	return &Handler{relay: &relay.Handler{Schema: NewSchema(engine)}}
}

// Routes returns the GraphQL route for server.WithHandler.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		Path: h.ServeHTTP,
	}
}

// ServeHTTP handles POST /graphql with a JSON body of query, operationName,
// and variables. The body size and request duration are bounded.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.GraphQLHandlerTimeout)
	defer cancel()

	if !server.AllowMethods(w, r, http.MethodPost) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, defaults.GraphQLMaxBodyBytes)
	w.Header().Set("Cache-Control", "no-store")

	h.relay.ServeHTTP(w, r.WithContext(ctx))
}
