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

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		{"CatalogLoadTimeout", CatalogLoadTimeout, 5 * time.Second, 60 * time.Second},

		{"QueryHandlerTimeout", QueryHandlerTimeout, 1 * time.Second, 30 * time.Second},
		{"GraphQLHandlerTimeout", GraphQLHandlerTimeout, 5 * time.Second, 60 * time.Second},
		{"CatalogCacheTTL", CatalogCacheTTL, 1 * time.Minute, 1 * time.Hour},

		{"ServerReadTimeout", ServerReadTimeout, 5 * time.Second, 30 * time.Second},
		{"ServerWriteTimeout", ServerWriteTimeout, 15 * time.Second, 60 * time.Second},
		{"ServerIdleTimeout", ServerIdleTimeout, 30 * time.Second, 300 * time.Second},
		{"ServerShutdownTimeout", ServerShutdownTimeout, 10 * time.Second, 60 * time.Second},

		{"HTTPClientTimeout", HTTPClientTimeout, 10 * time.Second, 120 * time.Second},
		{"HTTPConnectTimeout", HTTPConnectTimeout, 1 * time.Second, 30 * time.Second},
		{"HTTPResponseHeaderTimeout", HTTPResponseHeaderTimeout, 1 * time.Second, 60 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestHandlerTimeoutsFitInsideWriteTimeout(t *testing.T) {
	// handlers must finish before the server cuts the connection
	if QueryHandlerTimeout >= ServerWriteTimeout {
		t.Errorf("QueryHandlerTimeout (%v) should be less than ServerWriteTimeout (%v)",
			QueryHandlerTimeout, ServerWriteTimeout)
	}
	if GraphQLHandlerTimeout >= ServerWriteTimeout {
		t.Errorf("GraphQLHandlerTimeout (%v) should be less than ServerWriteTimeout (%v)",
			GraphQLHandlerTimeout, ServerWriteTimeout)
	}
}

func TestHTTPClientTimeoutRelationships(t *testing.T) {
	if HTTPConnectTimeout >= HTTPClientTimeout {
		t.Errorf("HTTPConnectTimeout (%v) should be less than HTTPClientTimeout (%v)",
			HTTPConnectTimeout, HTTPClientTimeout)
	}
	if HTTPClientTimeout > CatalogLoadTimeout*4 {
		t.Errorf("HTTPClientTimeout (%v) is out of proportion to CatalogLoadTimeout (%v)",
			HTTPClientTimeout, CatalogLoadTimeout)
	}
}

func TestServerTimeoutRelationships(t *testing.T) {
	if ServerReadTimeout > ServerWriteTimeout {
		t.Errorf("ServerReadTimeout (%v) should not exceed ServerWriteTimeout (%v)",
			ServerReadTimeout, ServerWriteTimeout)
	}
	if ServerReadHeaderTimeout > ServerReadTimeout {
		t.Errorf("ServerReadHeaderTimeout (%v) should not exceed ServerReadTimeout (%v)",
			ServerReadHeaderTimeout, ServerReadTimeout)
	}
}

func TestPaginationDefaults(t *testing.T) {
	if PageLimit <= 0 {
		t.Errorf("PageLimit (%d) must be positive", PageLimit)
	}
	if PageOffset != 0 {
		t.Errorf("PageOffset (%d) should start at the first record", PageOffset)
	}
}
