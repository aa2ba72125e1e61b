// Copyright © 2025 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
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

package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kaleido-io/ledger-gateway/pkg/gwconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCorsTestServer(t *testing.T, conf *gwconf.CORSConfig) *httptest.Server {
	hf := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("CalledServer", "true")
	})
	s := httptest.NewServer(WrapCorsIfEnabled(context.Background(), hf, conf))
	t.Cleanup(s.Close)
	return s
}

func TestCorsWrapperDisabled(t *testing.T) {
	s := newCorsTestServer(t, &gwconf.CORSConfig{})

	req, err := http.NewRequest(http.MethodOptions, s.URL, nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://some.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "true", res.Header.Get("CalledServer"))
}

func TestCorsWrapperEnabledHostOk(t *testing.T) {
	s := newCorsTestServer(t, &gwconf.CORSConfig{
		Enabled:        true,
		Debug:          true,
		AllowedOrigins: []string{"https://some.example"},
	})

	req, err := http.NewRequest(http.MethodGet, s.URL, nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://some.example")
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "true", res.Header.Get("CalledServer"))
	assert.Equal(t, "https://some.example", res.Header.Get("Access-Control-Allow-Origin"))
}

func TestCorsWrapperEnabledHostFail(t *testing.T) {
	s := newCorsTestServer(t, &gwconf.CORSConfig{
		Enabled:        true,
		AllowedOrigins: []string{"https://some.example"},
	})

	req, err := http.NewRequest(http.MethodGet, s.URL, nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://another.example")
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	// The server still gets called, but the browser does not get the header to trust it
	assert.Equal(t, "true", res.Header.Get("CalledServer"))
	assert.Empty(t, res.Header.Get("Access-Control-Allow-Origin"))
}
