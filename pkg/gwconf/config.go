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

type GatewayConfig struct {
	Log      LogConfig           `json:"log"`
	API      HTTPServerConfig    `json:"api"`
	Metrics  MetricsServerConfig `json:"metrics"`
	Ledger   LedgerConfig        `json:"ledger"`
	Identity IdentityConfig      `json:"identity"`
}

const DefaultAPIPort = 3000

var APIDefaults = &HTTPServerConfig{
	Port: confutil.P(DefaultAPIPort),
}
