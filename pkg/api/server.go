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
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/mchmarny/barcart/pkg/catalog"
	cnserrors "github.com/mchmarny/barcart/pkg/errors"
	"github.com/mchmarny/barcart/pkg/graph"
	"github.com/mchmarny/barcart/pkg/logging"
	"github.com/mchmarny/barcart/pkg/query"
	"github.com/mchmarny/barcart/pkg/server"
)

const (
	name           = "barcartd"
	versionDefault = "dev"

	// EnvVarDataDir points the daemon at an external catalog directory or
	// http(s) base URL instead of the embedded catalog.
	EnvVarDataDir = "BARCART_DATA_DIR"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/mchmarny/barcart/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// The catalog source is read from BARCART_DATA_DIR.
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version)
	return ServeContext(context.Background(), os.Getenv(EnvVarDataDir))
}

// ServeContext loads the catalog from source, registers REST and GraphQL
// routes, and serves until ctx is canceled or the process is signaled.
// Options are applied before the barcart name, version, and routes.
// An empty source selects the embedded catalog.
func ServeContext(ctx context.Context, source string, opts ...server.Option) error {
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	engine, err := NewEngine(ctx, source)
	if err != nil {
		slog.Error("failed to load catalog", "source", source, "error", err)
		return err
	}

	// caller options go first so a replacement config keeps the routes
	all := append(append([]server.Option{}, opts...),
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(Routes(engine)),
		server.WithReadinessCheck("catalog", CatalogCheck(engine)),
	)

	if err := server.Run(ctx, all...); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// NewEngine loads the catalog from source and builds a query engine over it.
func NewEngine(ctx context.Context, source string) (*query.Engine, error) {
	store, err := catalog.LoadFrom(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return query.New(store), nil
}

// CatalogCheck reports the loaded collection sizes on /ready. A catalog
// without drinks cannot answer random or popular queries and is not ready.
func CatalogCheck(engine *query.Engine) server.ReadinessCheck {
	return func(context.Context) (string, error) {
		drinks, ingredients := len(engine.AllDrinks()), len(engine.AllIngredients())
		if drinks == 0 {
			return "", cnserrors.New(cnserrors.ErrCodeEmptyCollection, "catalog holds no drinks")
		}
		return fmt.Sprintf("%d drinks, %d ingredients", drinks, ingredients), nil
	}
}

// Routes returns every application route served by the daemon.
func Routes(engine *query.Engine) map[string]http.HandlerFunc {
	routes := query.NewHandler(engine).Routes()
	for path, h := range graph.NewHandler(engine).Routes() {
		routes[path] = h
	}
	return routes
}
