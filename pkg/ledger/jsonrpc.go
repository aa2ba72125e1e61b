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
	"github.com/kaleido-io/ledger-gateway/internal/rpcclient"
	"github.com/kaleido-io/ledger-gateway/pkg/gwconf"
)

type rpcCallParams struct {
	Signer    string   `json:"signer"`
	Channel   string   `json:"channel,omitempty"`
	Chaincode string   `json:"chaincode"`
	Func      string   `json:"func"`
	Args      []string `json:"args"`
}

type jsonrpcClient struct {
	target
	rpc          rpcclient.Client
	queryMethod  string
	invokeMethod string
}

func newJSONRPCClient(ctx context.Context, t target, conf *gwconf.LedgerConfig) (*jsonrpcClient, error) {
	rpc, err := rpcclient.NewHTTPClient(ctx, &conf.HTTP)
	if err != nil {
		return nil, err
	}
	return &jsonrpcClient{
		target:       t,
		rpc:          rpc,
		queryMethod:  confutil.StringNotEmpty(conf.QueryMethod, *gwconf.LedgerDefaults.QueryMethod),
		invokeMethod: confutil.StringNotEmpty(conf.InvokeMethod, *gwconf.LedgerDefaults.InvokeMethod),
	}, nil
}

func (jc *jsonrpcClient) Query(ctx context.Context, operation string, args []string, callerID string) (*fftypes.JSONAny, error) {
	return jc.call(ctx, ModeQuery, jc.queryMethod, operation, args, callerID)
}

func (jc *jsonrpcClient) Invoke(ctx context.Context, operation string, args []string, callerID string) (*fftypes.JSONAny, error) {
	return jc.call(ctx, ModeInvoke, jc.invokeMethod, operation, args, callerID)
}

func (jc *jsonrpcClient) call(ctx context.Context, mode Mode, method, operation string, args []string, callerID string) (*fftypes.JSONAny, error) {
	if args == nil {
		args = []string{}
	}
	var result *fftypes.JSONAny
	rpcErr := jc.rpc.CallRPC(ctx, &result, method, &rpcCallParams{
		Signer:    callerID,
		Channel:   jc.channel,
		Chaincode: jc.chaincode,
		Func:      operation,
		Args:      args,
	})
	if rpcErr != nil {
		return nil, i18n.NewError(ctx, msgs.MsgLedgerRPCError, mode, operation, rpcErr.Error())
	}
	return result, nil
}
