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
	"net/http"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/ledger-gateway/internal/confutil"
	"github.com/kaleido-io/ledger-gateway/internal/msgs"
	"github.com/kaleido-io/ledger-gateway/pkg/gwconf"
)

// Resolver determines the ledger identity that a request is submitted on behalf of
type Resolver interface {
	GetCallerID(req *http.Request) (string, error)
}

func NewResolver(ctx context.Context, conf *gwconf.IdentityConfig) (Resolver, error) {
	resolverType := confutil.StringNotEmpty(conf.Type, *gwconf.IdentityDefaults.Type)
	switch gwconf.IdentityType(resolverType) {
	case gwconf.IdentityTypeHeader:
		return &headerResolver{
			header:          confutil.StringNotEmpty(conf.Header, *gwconf.IdentityDefaults.Header),
			defaultIdentity: conf.DefaultIdentity,
		}, nil
	case gwconf.IdentityTypeJWT:
		return newJWTResolver(ctx, &conf.JWT)
	case gwconf.IdentityTypeCertificate:
		return &certificateResolver{}, nil
	default:
		return nil, i18n.NewError(ctx, msgs.MsgIdentityUnknownType, resolverType)
	}
}

type headerResolver struct {
	header          string
	defaultIdentity string
}

func (hr *headerResolver) GetCallerID(req *http.Request) (string, error) {
	if id := req.Header.Get(hr.header); id != "" {
		return id, nil
	}
	if hr.defaultIdentity != "" {
		return hr.defaultIdentity, nil
	}
	return "", i18n.NewError(req.Context(), msgs.MsgIdentityHeaderMissing, hr.header)
}

type certificateResolver struct{}

func (cr *certificateResolver) GetCallerID(req *http.Request) (string, error) {
	if req.TLS == nil || len(req.TLS.VerifiedChains) == 0 || len(req.TLS.VerifiedChains[0]) == 0 {
		return "", i18n.NewError(req.Context(), msgs.MsgIdentityNoClientCert)
	}
	cn := req.TLS.VerifiedChains[0][0].Subject.CommonName
	if cn == "" {
		return "", i18n.NewError(req.Context(), msgs.MsgIdentityCertNoCommonName)
	}
	return cn, nil
}
