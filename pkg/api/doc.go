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

// Package api wires the barcart daemon together.
//
// This package acts as a thin wrapper around the reusable pkg/server package.
// It loads the catalog, builds the query engine, and registers the REST and
// GraphQL routes; pkg/server owns middleware, probes, metrics, and shutdown.
//
// # Usage
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET  /v1/ingredients[?id=|?name=]
//   - GET  /v1/drinks[?id=|?name=|?ingredient=]
//   - GET  /v1/drinks/search?q=
//   - GET  /v1/drinks/fuzzy?q=&limit=&offset=
//   - GET  /v1/drinks/filter?ingredient=&limit=&offset=
//   - GET  /v1/drinks/random
//   - GET  /v1/drinks/popular
//   - POST /graphql
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check, including the loaded catalog sizes
//   - GET /metrics - Prometheus metrics
//
// # Configuration
//
//   - BARCART_DATA_DIR: external catalog directory or http(s) base URL
//     (default: embedded catalog)
//   - PORT: HTTP server port (default: 8080)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown window (default: 30)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/mchmarny/barcart/pkg/api.version=1.0.0'"
package api
