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

package rpcclient

import (
	"context"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/ledger-gateway/internal/confutil"
	"github.com/kaleido-io/ledger-gateway/internal/msgs"
	"github.com/kaleido-io/ledger-gateway/internal/tlsconf"
	"github.com/kaleido-io/ledger-gateway/pkg/gwconf"
)

// ParseHTTPConfig builds a resty client for a ledger endpoint. Used directly by the REST
// connector, and wrapped in a JSON/RPC backend by NewHTTPClient.
func ParseHTTPConfig(ctx context.Context, config *gwconf.HTTPClientConfig) (*resty.Client, error) {
	u, err := url.Parse(config.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, i18n.WrapError(ctx, err, msgs.MsgLedgerInvalidHTTPURL, config.URL)
	}
	if u.Scheme == "https" {
		config.TLS.Enabled = true
	}
	tlsConfig, err := tlsconf.BuildTLSConfig(ctx, &config.TLS, tlsconf.ClientType)
	if err != nil {
		return nil, err
	}
	restyConf := ffresty.Config{
		URL: u.String(),
		HTTPConfig: ffresty.HTTPConfig{
			HTTPHeaders:           config.HTTPHeaders,
			AuthUsername:          config.Auth.Username,
			AuthPassword:          config.Auth.Password,
			TLSClientConfig:       tlsConfig,
			HTTPRequestTimeout:    fftypes.FFDuration(confutil.DurationMin(config.RequestTimeout, 0, *gwconf.DefaultHTTPConfig.RequestTimeout)),
			HTTPConnectionTimeout: fftypes.FFDuration(confutil.DurationMin(config.ConnectionTimeout, 0, *gwconf.DefaultHTTPConfig.ConnectionTimeout)),
		},
	}
	return ffresty.NewWithConfig(ctx, restyConf), nil
}
