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

package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	cnserrors "github.com/mchmarny/barcart/pkg/errors"
)

func newTestServer(limit rate.Limit, burst int) *Server {
	cfg := NewConfig()
	cfg.RateLimit = limit
	cfg.RateLimitBurst = burst
	return &Server{
		config:      cfg,
		rateLimiter: rate.NewLimiter(limit, burst),
	}
}

// captureLogs routes the default logger into a buffer at debug level for the
// duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestRequestIDMiddleware(t *testing.T) {
	provided := uuid.New().String()

	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{"generated when absent", "", false},
		{"kept when valid", provided, true},
		{"replaced when invalid", "margarita-42", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(100, 200)

			var got string
			h := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
				got = RequestIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/drinks?id=11007", nil)
			if tt.header != "" {
				req.Header.Set("X-Request-Id", tt.header)
			}
			rec := httptest.NewRecorder()
			h(rec, req)

			_, err := uuid.Parse(got)
			require.NoError(t, err)
			assert.Equal(t, got, rec.Header().Get("X-Request-Id"))
			if tt.keep {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}

func TestVersionMiddleware(t *testing.T) {
	tests := []struct {
		accept string
		want   string
	}{
		{"", "v1"},
		{"application/vnd.barcart.v1+json", "v1"},
		{"application/vnd.barcart.v9+json", DefaultAPIVersion},
		{"application/json", DefaultAPIVersion},
	}

	for _, tt := range tests {
		t.Run(tt.accept, func(t *testing.T) {
			s := newTestServer(100, 200)

			var got string
			h := s.versionMiddleware(func(w http.ResponseWriter, r *http.Request) {
				got = APIVersionFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/drinks/popular", nil)
			req.Header.Set("Accept", tt.accept)
			rec := httptest.NewRecorder()
			h(rec, req)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, rec.Header().Get("X-API-Version"))
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("allows within budget", func(t *testing.T) {
		s := newTestServer(100, 200)
		called := false
		h := s.rateLimitMiddleware(func(w http.ResponseWriter, r *http.Request) {
			called = true
			w.WriteHeader(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/v1/drinks/fuzzy?q=margerita", nil))

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "100", rec.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))
	})

	t.Run("rejects with structured error", func(t *testing.T) {
		s := newTestServer(0, 0)
		before := testutil.ToFloat64(rateLimitRejects)
		h := s.rateLimitMiddleware(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler must not run when rate limited")
		})

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/v1/drinks/random", nil))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "1", rec.Header().Get("Retry-After"))
		resp := decodeError(t, rec)
		assert.Equal(t, string(cnserrors.ErrCodeRateLimitExceeded), resp.Code)
		assert.True(t, resp.Retryable)
		assert.Contains(t, resp.Details, "burst")
		assert.Equal(t, before+1, testutil.ToFloat64(rateLimitRejects))
	})
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	logs := captureLogs(t)
	s := newTestServer(100, 200)
	before := testutil.ToFloat64(panicRecoveries)

	h := s.requestIDMiddleware(s.panicRecoveryMiddleware(func(w http.ResponseWriter, r *http.Request) {
		panic("nil drink view")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h(rec, httptest.NewRequest(http.MethodGet, "/v1/drinks?name=mojito", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, string(cnserrors.ErrCodeInternal), resp.Code)
	assert.Equal(t, rec.Header().Get("X-Request-Id"), resp.RequestID)
	assert.Equal(t, before+1, testutil.ToFloat64(panicRecoveries))
	assert.Contains(t, logs.String(), "nil drink view")
}

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		target string
		status int
		query  string
	}{
		{"filter", "/v1/drinks/filter?ingredient=gin&ingredient=vermouth&limit=2", http.StatusOK, "ingredient=gin&ingredient=vermouth&limit=2"},
		{"lookup miss", "/v1/drinks?id=nonexistent", http.StatusNotFound, "id=nonexistent"},
		{"bad page", "/v1/drinks/fuzzy?q=mo&limit=ten", http.StatusBadRequest, "q=mo&limit=ten"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)
			s := newTestServer(100, 200)

			h := s.requestIDMiddleware(s.loggingMiddleware(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			rec := httptest.NewRecorder()
			h(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))
			require.Equal(t, tt.status, rec.Code)

			dec := json.NewDecoder(logs)
			var started, completed map[string]any
			require.NoError(t, dec.Decode(&started))
			require.NoError(t, dec.Decode(&completed))

			assert.Equal(t, "request started", started["msg"])
			assert.Equal(t, tt.query, started["query"])
			assert.Equal(t, rec.Header().Get("X-Request-Id"), started["requestID"])
			assert.Equal(t, "request completed", completed["msg"])
			assert.EqualValues(t, tt.status, completed["status"])
		})
	}
}

func TestMetricsMiddleware_LabelsByRoutePattern(t *testing.T) {
	s := New(WithHandler(map[string]http.HandlerFunc{
		"/v1/ingredients/": func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) },
	}))
	h := s.Handler()

	pattern := httpRequestsTotal.WithLabelValues(http.MethodGet, "/v1/ingredients/", "204")
	before := testutil.ToFloat64(pattern)

	for _, id := range []string{"1", "2", "vodka"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/ingredients/"+id, nil))
	}

	assert.Equal(t, before+3, testutil.ToFloat64(pattern))
	assert.Zero(t, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/v1/ingredients/vodka", "204")),
		"raw paths must not become labels")
}

func TestRouteLabel(t *testing.T) {
	routed := httptest.NewRequest(http.MethodGet, "/v1/drinks/11007", nil)
	routed.Pattern = "/v1/drinks/"
	assert.Equal(t, "/v1/drinks/", routeLabel(routed))

	bare := httptest.NewRequest(http.MethodGet, "/v1/drinks/popular", nil)
	assert.Equal(t, "/v1/drinks/popular", routeLabel(bare))
}

func TestMiddlewareChain(t *testing.T) {
	s := newTestServer(100, 200)

	var requestID, version string
	h := s.withMiddleware(func(w http.ResponseWriter, r *http.Request) {
		requestID = RequestIDFromContext(r.Context())
		version = APIVersionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/v1/drinks/search?q=mo", nil))

	assert.NotEmpty(t, requestID)
	assert.Equal(t, DefaultAPIVersion, version)
	for _, header := range []string{"X-Request-Id", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "X-API-Version"} {
		assert.NotEmpty(t, rec.Header().Get(header), header)
	}
}
