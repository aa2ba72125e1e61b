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

package identity

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"net/http/httptest"
	"testing"

	"github.com/kaleido-io/ledger-gateway/internal/confutil"
	"github.com/kaleido-io/ledger-gateway/pkg/gwconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResolverUnknownType(t *testing.T) {
	_, err := NewResolver(context.Background(), &gwconf.IdentityConfig{Type: confutil.P("oauth")})
	assert.Regexp(t, "LG010400.*oauth", err)
}

func TestHeaderResolverDefaults(t *testing.T) {
	r, err := NewResolver(context.Background(), &gwconf.IdentityConfig{})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/things", nil)
	req.Header.Set("X-Enrollment-ID", "alice")
	id, err := r.GetCallerID(req)
	require.NoError(t, err)
	assert.Equal(t, "alice", id)

	_, err = r.GetCallerID(httptest.NewRequest("GET", "/things", nil))
	assert.Regexp(t, "LG010401.*X-Enrollment-ID", err)
}

func TestHeaderResolverCustomHeaderAndFallback(t *testing.T) {
	r, err := NewResolver(context.Background(), &gwconf.IdentityConfig{
		Type:            confutil.P("header"),
		Header:          confutil.P("X-User"),
		DefaultIdentity: "admin",
	})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/things", nil)
	req.Header.Set("X-User", "bob")
	id, err := r.GetCallerID(req)
	require.NoError(t, err)
	assert.Equal(t, "bob", id)

	id, err = r.GetCallerID(httptest.NewRequest("GET", "/things", nil))
	require.NoError(t, err)
	assert.Equal(t, "admin", id)
}

func TestCertificateResolver(t *testing.T) {
	r, err := NewResolver(context.Background(), &gwconf.IdentityConfig{Type: confutil.P("certificate")})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/things", nil)
	_, err = r.GetCallerID(req)
	assert.Regexp(t, "LG010406", err)

	req.TLS = &tls.ConnectionState{VerifiedChains: [][]*x509.Certificate{{
		{Subject: pkix.Name{}},
	}}}
	_, err = r.GetCallerID(req)
	assert.Regexp(t, "LG010407", err)

	req.TLS = &tls.ConnectionState{VerifiedChains: [][]*x509.Certificate{{
		{Subject: pkix.Name{CommonName: "user1@org1"}},
	}}}
	id, err := r.GetCallerID(req)
	require.NoError(t, err)
	assert.Equal(t, "user1@org1", id)
}
