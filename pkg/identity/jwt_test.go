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
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kaleido-io/ledger-gateway/internal/confutil"
	"github.com/kaleido-io/ledger-gateway/pkg/gwconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func newTestJWTResolver(t *testing.T, conf gwconf.JWTIdentityConfig) Resolver {
	r, err := NewResolver(context.Background(), &gwconf.IdentityConfig{
		Type: confutil.P("jwt"),
		JWT:  conf,
	})
	require.NoError(t, err)
	return r
}

func signToken(t *testing.T, method jwt.SigningMethod, secret string, claims jwt.MapClaims) string {
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestJWTResolverConfigErrors(t *testing.T) {
	_, err := NewResolver(context.Background(), &gwconf.IdentityConfig{Type: confutil.P("jwt")})
	assert.Regexp(t, "LG010405", err)

	_, err = NewResolver(context.Background(), &gwconf.IdentityConfig{
		Type: confutil.P("jwt"),
		JWT:  gwconf.JWTIdentityConfig{Secret: testSecret, Methods: []string{"RS256"}},
	})
	assert.Regexp(t, "LG010408.*RS256", err)
}

func TestJWTResolverOK(t *testing.T) {
	r := newTestJWTResolver(t, gwconf.JWTIdentityConfig{Secret: testSecret})

	req := httptest.NewRequest("GET", "/things", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Hour).Unix(),
	}))
	id, err := r.GetCallerID(req)
	require.NoError(t, err)
	assert.Equal(t, "alice", id)
}

func TestJWTResolverCustomClaimIssuerAudience(t *testing.T) {
	r := newTestJWTResolver(t, gwconf.JWTIdentityConfig{
		Secret:   testSecret,
		Claim:    confutil.P("enrollmentId"),
		Issuer:   "https://idp.example.com",
		Audience: "ledger-gateway",
	})

	req := httptest.NewRequest("GET", "/things", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS512, testSecret, jwt.MapClaims{
		"enrollmentId": "user1",
		"iss":          "https://idp.example.com",
		"aud":          "ledger-gateway",
	}))
	id, err := r.GetCallerID(req)
	require.NoError(t, err)
	assert.Equal(t, "user1", id)

	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS512, testSecret, jwt.MapClaims{
		"enrollmentId": "user1",
		"iss":          "https://other.example.com",
		"aud":          "ledger-gateway",
	}))
	_, err = r.GetCallerID(req)
	assert.Regexp(t, "LG010403", err)
}

func TestJWTResolverBearerMissing(t *testing.T) {
	r := newTestJWTResolver(t, gwconf.JWTIdentityConfig{Secret: testSecret})

	req := httptest.NewRequest("GET", "/things", nil)
	_, err := r.GetCallerID(req)
	assert.Regexp(t, "LG010402", err)

	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	_, err = r.GetCallerID(req)
	assert.Regexp(t, "LG010402", err)
}

func TestJWTResolverBadSignature(t *testing.T) {
	r := newTestJWTResolver(t, gwconf.JWTIdentityConfig{Secret: testSecret})

	req := httptest.NewRequest("GET", "/things", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, "wrong-secret", jwt.MapClaims{"sub": "alice"}))
	_, err := r.GetCallerID(req)
	assert.Regexp(t, "LG010403", err)
}

func TestJWTResolverExpired(t *testing.T) {
	r := newTestJWTResolver(t, gwconf.JWTIdentityConfig{Secret: testSecret})

	req := httptest.NewRequest("GET", "/things", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}))
	_, err := r.GetCallerID(req)
	assert.Regexp(t, "LG010403", err)
}

func TestJWTResolverMethodNotAllowed(t *testing.T) {
	r := newTestJWTResolver(t, gwconf.JWTIdentityConfig{Secret: testSecret, Methods: []string{"HS512"}})

	req := httptest.NewRequest("GET", "/things", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"sub": "alice"}))
	_, err := r.GetCallerID(req)
	assert.Regexp(t, "LG010403", err)
}

func TestJWTResolverClaimMissing(t *testing.T) {
	r := newTestJWTResolver(t, gwconf.JWTIdentityConfig{Secret: testSecret})

	req := httptest.NewRequest("GET", "/things", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"name": "alice"}))
	_, err := r.GetCallerID(req)
	assert.Regexp(t, "LG010404.*sub", err)
}

func TestJWTResolverNumericClaim(t *testing.T) {
	r := newTestJWTResolver(t, gwconf.JWTIdentityConfig{Secret: testSecret, Claim: confutil.P("employeeNumber")})

	req := httptest.NewRequest("GET", "/things", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{
		"sub":            "alice",
		"employeeNumber": 12345678,
		"exp":            time.Now().Add(time.Hour).Unix(),
	}))
	id, err := r.GetCallerID(req)
	require.NoError(t, err)
	assert.Equal(t, "12345678", id)
}
