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

package gwconf

import "github.com/kaleido-io/ledger-gateway/internal/confutil"

type LedgerType string

const (
	LedgerTypeREST    LedgerType = "rest"
	LedgerTypeJSONRPC LedgerType = "jsonrpc"
)

type LedgerConfig struct {
	Type         *string          `json:"type"`
	Channel      string           `json:"channel"`
	Chaincode    string           `json:"chaincode"`
	HTTP         HTTPClientConfig `json:"http"`
	QueryMethod  *string          `json:"queryMethod"`
	InvokeMethod *string          `json:"invokeMethod"`
}

var LedgerDefaults = &LedgerConfig{
	Type:         confutil.P(string(LedgerTypeREST)),
	QueryMethod:  confutil.P("ledger_query"),
	InvokeMethod: confutil.P("ledger_invoke"),
}

type IdentityType string

const (
	IdentityTypeHeader      IdentityType = "header"
	IdentityTypeJWT         IdentityType = "jwt"
	IdentityTypeCertificate IdentityType = "certificate"
)

type IdentityConfig struct {
	Type            *string           `json:"type"`
	Header          *string           `json:"header"`
	DefaultIdentity string            `json:"defaultIdentity"`
	JWT             JWTIdentityConfig `json:"jwt"`
}

type JWTIdentityConfig struct {
	Secret   string   `json:"secret"`
	Issuer   string   `json:"issuer"`
	Audience string   `json:"audience"`
	Claim    *string  `json:"claim"`
	Methods  []string `json:"methods"`
}

var IdentityDefaults = &IdentityConfig{
	Type:   confutil.P(string(IdentityTypeHeader)),
	Header: confutil.P("X-Enrollment-ID"),
	JWT: JWTIdentityConfig{
		Claim:   confutil.P("sub"),
		Methods: []string{"HS256", "HS384", "HS512"},
	},
}
