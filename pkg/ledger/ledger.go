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

package ledger

import (
	"context"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/ledger-gateway/internal/confutil"
	"github.com/kaleido-io/ledger-gateway/internal/msgs"
	"github.com/kaleido-io/ledger-gateway/pkg/gwconf"
)

type Mode string

const (
	ModeQuery  Mode = "query"
	ModeInvoke Mode = "invoke"
)

// Client submits named chaincode operations on behalf of a caller identity.
// Results are opaque JSON, and are nil when the ledger returned nothing.
type Client interface {
	Query(ctx context.Context, operation string, args []string, callerID string) (*fftypes.JSONAny, error)
	Invoke(ctx context.Context, operation string, args []string, callerID string) (*fftypes.JSONAny, error)
}

// target is the channel/chaincode pair every call is addressed to
type target struct {
	channel   string
	chaincode string
}

func NewClient(ctx context.Context, conf *gwconf.LedgerConfig) (Client, error) {
	if conf.Chaincode == "" {
		return nil, i18n.NewError(ctx, msgs.MsgLedgerChaincodeMissing)
	}
	t := target{channel: conf.Channel, chaincode: conf.Chaincode}
	ledgerType := confutil.StringNotEmpty(conf.Type, *gwconf.LedgerDefaults.Type)
	switch gwconf.LedgerType(ledgerType) {
	case gwconf.LedgerTypeREST:
		return newRESTClient(ctx, t, &conf.HTTP)
	case gwconf.LedgerTypeJSONRPC:
		return newJSONRPCClient(ctx, t, conf)
	default:
		return nil, i18n.NewError(ctx, msgs.MsgLedgerUnknownType, ledgerType)
	}
}
