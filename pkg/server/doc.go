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

// Package server provides the HTTP runtime shared by barcart services.
//
// A Server owns routing, middleware, probes, and lifecycle. Domain packages
// contribute handlers keyed by route pattern; the server wraps each of them
// with the same middleware chain:
//
//   - Prometheus RED metrics labeled by route pattern
//   - API version negotiation via the Accept header
//     (application/vnd.barcart.v1+json)
//   - Request ID propagation (X-Request-Id, UUID)
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Debug request logging
//
// # Usage
//
//	err := server.Run(ctx,
//	    server.WithName("barcartd"),
//	    server.WithVersion(version),
//	    server.WithHandler(routes),
//	)
//
// # System Endpoints
//
//	GET /         service name, version, readiness and registered routes
//	GET /health   liveness probe
//	GET /ready    readiness probe, 503 until the listener is bound and
//	              every WithReadinessCheck passes
//	GET /metrics  Prometheus metrics
//
// # Errors
//
// Handlers report failures with WriteError or WriteErrorFromErr. Structured
// errors from pkg/errors are mapped to HTTP status via HTTPStatusFromCode;
// every error body is an ErrorResponse carrying the request ID.
//
// # Configuration
//
// PORT overrides the listen port (default 8080) and SHUTDOWN_TIMEOUT_SECONDS
// the graceful shutdown window (default 30s).
package server
