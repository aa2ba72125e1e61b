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
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/ledger-gateway/internal/confutil"
	"github.com/kaleido-io/ledger-gateway/internal/msgs"
	"github.com/kaleido-io/ledger-gateway/pkg/gwconf"
)

type jwtResolver struct {
	secret []byte
	claim  string
	parser *jwt.Parser
}

func newJWTResolver(ctx context.Context, conf *gwconf.JWTIdentityConfig) (*jwtResolver, error) {
	if conf.Secret == "" {
		return nil, i18n.NewError(ctx, msgs.MsgIdentityJWTSecretMissing)
	}
	methods := confutil.StringSlice(conf.Methods, gwconf.IdentityDefaults.JWT.Methods)
	for _, m := range methods {
		if _, ok := jwt.GetSigningMethod(m).(*jwt.SigningMethodHMAC); !ok {
			return nil, i18n.NewError(ctx, msgs.MsgIdentityJWTInvalidMethods, m)
		}
	}
	// numeric claims keep their literal form, rather than passing through float64
	opts := []jwt.ParserOption{jwt.WithValidMethods(methods), jwt.WithJSONNumber()}
	if conf.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(conf.Issuer))
	}
	if conf.Audience != "" {
		opts = append(opts, jwt.WithAudience(conf.Audience))
	}
	return &jwtResolver{
		secret: []byte(conf.Secret),
		claim:  confutil.StringNotEmpty(conf.Claim, *gwconf.IdentityDefaults.JWT.Claim),
		parser: jwt.NewParser(opts...),
	}, nil
}

func (jr *jwtResolver) GetCallerID(req *http.Request) (string, error) {
	ctx := req.Context()
	authHeader := req.Header.Get("Authorization")
	tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || tokenString == "" {
		return "", i18n.NewError(ctx, msgs.MsgIdentityBearerMissing)
	}

	claims := jwt.MapClaims{}
	_, err := jr.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return jr.secret, nil
	})
	if err != nil {
		return "", i18n.NewError(ctx, msgs.MsgIdentityTokenInvalid, err)
	}

	v, ok := claims[jr.claim]
	if !ok || v == nil {
		return "", i18n.NewError(ctx, msgs.MsgIdentityClaimMissing, jr.claim)
	}
	id := fmt.Sprintf("%v", v)
	if id == "" {
		return "", i18n.NewError(ctx, msgs.MsgIdentityClaimMissing, jr.claim)
	}
	return id, nil
}
