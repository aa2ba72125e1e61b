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

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/ledger-gateway/internal/log"
	"github.com/kaleido-io/ledger-gateway/internal/msgs"
	"github.com/kaleido-io/ledger-gateway/internal/rpcclient"
	"github.com/kaleido-io/ledger-gateway/pkg/gwconf"
)

type restRequestHeaders struct {
	ID        string `json:"id"`
	Signer    string `json:"signer"`
	Channel   string `json:"channel,omitempty"`
	Chaincode string `json:"chaincode"`
}

type restRequest struct {
	Headers restRequestHeaders `json:"headers"`
	Func    string             `json:"func"`
	Args    []string           `json:"args"`
}

type restResponse struct {
	Result *fftypes.JSONAny `json:"result,omitempty"`
}

type restError struct {
	Error string `json:"error"`
}

// restClient talks to a Fabric REST connector (fabconnect) that exposes synchronous
// query and transaction endpoints
type restClient struct {
	target
	client *resty.Client
}

func newRESTClient(ctx context.Context, t target, conf *gwconf.HTTPClientConfig) (*restClient, error) {
	client, err := rpcclient.ParseHTTPConfig(ctx, conf)
	if err != nil {
		return nil, err
	}
	return &restClient{target: t, client: client}, nil
}

func (rc *restClient) Query(ctx context.Context, operation string, args []string, callerID string) (*fftypes.JSONAny, error) {
	return rc.call(ctx, ModeQuery, "/query", operation, args, callerID)
}

func (rc *restClient) Invoke(ctx context.Context, operation string, args []string, callerID string) (*fftypes.JSONAny, error) {
	return rc.call(ctx, ModeInvoke, "/transactions", operation, args, callerID)
}

func (rc *restClient) call(ctx context.Context, mode Mode, path, operation string, args []string, callerID string) (*fftypes.JSONAny, error) {
	if args == nil {
		args = []string{}
	}
	reqBody := &restRequest{
		Headers: restRequestHeaders{
			ID:        uuid.NewString(),
			Signer:    callerID,
			Channel:   rc.channel,
			Chaincode: rc.chaincode,
		},
		Func: operation,
		Args: args,
	}
	log.L(ctx).Debugf("ledger %s %s id=%s", mode, operation, reqBody.Headers.ID)

	var resBody restResponse
	var errBody restError
	req := rc.client.R().
		SetContext(ctx).
		SetBody(reqBody).
		SetResult(&resBody).
		SetError(&errBody)
	if mode == ModeInvoke {
		req = req.SetQueryParam("fly-sync", "true")
	}
	res, err := req.Post(path)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgLedgerRequestFailed, mode, operation)
	}
	if res.IsError() {
		errMsg := errBody.Error
		if errMsg == "" {
			errMsg = res.String()
		}
		return nil, i18n.NewError(ctx, msgs.MsgLedgerErrorStatus, mode, operation, res.StatusCode(), errMsg)
	}
	return resBody.Result, nil
}
