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

package defaults

import "time"

// Catalog load timeouts.
const (
	// CatalogLoadTimeout bounds reading and parsing the catalog data files at startup.
	CatalogLoadTimeout = 15 * time.Second
)

// Handler timeouts for HTTP request processing.
const (
	// QueryHandlerTimeout is the timeout for REST catalog queries.
	QueryHandlerTimeout = 10 * time.Second

	// GraphQLHandlerTimeout is the timeout for a GraphQL request.
	// Longer than QueryHandlerTimeout since one document may select many fields.
	GraphQLHandlerTimeout = 20 * time.Second

	// CatalogCacheTTL is the cache duration advertised on catalog responses.
	// The catalog is immutable for the process lifetime.
	CatalogCacheTTL = 10 * time.Minute
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// HTTP client timeouts for fetching a remote catalog.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second
)

// Pagination defaults for paged catalog queries.
const (
	// PageLimit is the page size used when a caller does not supply one.
	PageLimit = 10

	// PageOffset is the offset used when a caller does not supply one.
	PageOffset = 0
)

// GraphQL limits.
const (
	// GraphQLMaxDepth caps selection nesting (drink -> ingredients is depth 2).
	GraphQLMaxDepth = 8

	// GraphQLMaxBodyBytes caps the size of a GraphQL request body.
	GraphQLMaxBodyBytes = 1 << 20
)
