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

	"github.com/go-resty/resty/v2"
	"github.com/hyperledger/firefly-signer/pkg/rpcbackend"
	"github.com/kaleido-io/ledger-gateway/pkg/gwconf"
)

type RPCError = rpcbackend.RPCError

type ErrorRPC interface {
	error
	RPCError() *RPCError
}

type Client interface {
	CallRPC(ctx context.Context, result interface{}, method string, params ...interface{}) ErrorRPC
}

// Thin wrapper over the firefly-signer backend, whose *RPCError does not implement error
// (its Error() function returns an error rather than a string).
func NewHTTPClient(ctx context.Context, conf *gwconf.HTTPClientConfig) (Client, error) {
	rc, err := ParseHTTPConfig(ctx, conf)
	if err != nil {
		return nil, err
	}
	return WrapRestyClient(rc), nil
}

func WrapRestyClient(rc *resty.Client) Client {
	return &httpWrap{c: rpcbackend.NewRPCClient(rc)}
}

type httpWrap struct {
	c rpcbackend.Backend
}

type errWrap struct {
	e *RPCError
}

func (w *errWrap) Error() string {
	return w.e.Error().Error()
}

func (w *errWrap) RPCError() *RPCError {
	return w.e
}

func (w *httpWrap) CallRPC(ctx context.Context, result interface{}, method string, params ...interface{}) ErrorRPC {
	if rpcErr := w.c.CallRPC(ctx, result, method, params...); rpcErr != nil {
		return &errWrap{rpcErr}
	}
	return nil
}
