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
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/mchmarny/barcart/pkg/serializer"
)

const (
	statusHealthy  = "healthy"
	statusReady    = "ready"
	statusNotReady = "not_ready"
	statusOK       = "ok"

	readinessCheckTimeout = 2 * time.Second
)

// ReadinessCheck reports whether a dependency the server fronts can answer
// requests. The returned detail is echoed in the /ready response.
type ReadinessCheck func(ctx context.Context) (detail string, err error)

// CheckResult is the outcome of one named readiness check.
type CheckResult struct {
	Status string `json:"status" yaml:"status"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// HealthResponse is the body of /health and /ready.
type HealthResponse struct {
	Status    string                 `json:"status" yaml:"status"`
	Name      string                 `json:"name,omitempty" yaml:"name,omitempty"`
	Version   string                 `json:"version,omitempty" yaml:"version,omitempty"`
	Uptime    string                 `json:"uptime,omitempty" yaml:"uptime,omitempty"`
	Timestamp time.Time              `json:"timestamp" yaml:"timestamp"`
	Reason    string                 `json:"reason,omitempty" yaml:"reason,omitempty"`
	Checks    map[string]CheckResult `json:"checks,omitempty" yaml:"checks,omitempty"`
}

// WithReadinessCheck registers a named check consulted by /ready once the
// listener is bound. Registering a name twice replaces the earlier check.
func WithReadinessCheck(name string, check ReadinessCheck) Option {
	return func(s *Server) {
		if check == nil {
			return
		}
		if s.checks == nil {
			s.checks = make(map[string]ReadinessCheck)
		}
		s.checks[name] = check
	}
}

func (s *Server) newHealthResponse(status string) HealthResponse {
	return HealthResponse{
		Status:    status,
		Name:      s.config.Name,
		Version:   s.config.Version,
		Uptime:    time.Since(s.started).Round(time.Second).String(),
		Timestamp: time.Now().UTC(),
	}
}

// handleHealth handles GET /health. It reports liveness only.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !AllowMethods(w, r, http.MethodGet) {
		return
	}
	serializer.RespondJSON(w, http.StatusOK, s.newHealthResponse(statusHealthy))
}

// handleReady handles GET /ready. The server is ready once the listener is
// bound and every registered check passes.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !AllowMethods(w, r, http.MethodGet) {
		return
	}

	if !s.isReady() {
		resp := s.newHealthResponse(statusNotReady)
		resp.Reason = "listener is not accepting connections"
		serializer.RespondJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), readinessCheckTimeout)
	defer cancel()

	checks, failed := s.runChecks(ctx)
	if len(failed) > 0 {
		resp := s.newHealthResponse(statusNotReady)
		resp.Reason = "failing checks: " + strings.Join(failed, ", ")
		resp.Checks = checks
		serializer.RespondJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	resp := s.newHealthResponse(statusReady)
	resp.Checks = checks
	serializer.RespondJSON(w, http.StatusOK, resp)
}

// runChecks runs every registered check and returns the results and the
// sorted names of the checks that failed.
func (s *Server) runChecks(ctx context.Context) (map[string]CheckResult, []string) {
	if len(s.checks) == 0 {
		return nil, nil
	}

	results := make(map[string]CheckResult, len(s.checks))
	var failed []string
	for name, check := range s.checks {
		detail, err := check(ctx)
		if err != nil {
			results[name] = CheckResult{Status: statusNotReady, Detail: err.Error()}
			failed = append(failed, name)
			continue
		}
		results[name] = CheckResult{Status: statusOK, Detail: detail}
	}
	sort.Strings(failed)
	return results, failed
}
