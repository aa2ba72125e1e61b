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

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/ledger-gateway/internal/msgs"
)

const nullJSON = "null"

// requestBody is the JSON body of a request, kept as compact text so that fields can be
// forwarded to the ledger without re-ordering them.
// Lookups never fail: absent fields read as the empty string (scalars) or "null" (serialized).
type requestBody struct {
	compact string
	fields  map[string]*fftypes.JSONAny
}

func parseRequestBody(ctx context.Context, req *http.Request) (*requestBody, error) {
	var raw []byte
	if req.Body != nil {
		var err error
		if raw, err = io.ReadAll(req.Body); err != nil {
			return nil, i18n.WrapError(ctx, err, msgs.MsgGatewayBodyReadFailed)
		}
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		raw = []byte("{}")
	}

	buff := new(bytes.Buffer)
	if err := json.Compact(buff, raw); err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgGatewayBodyParseFailed)
	}
	b := &requestBody{compact: buff.String()}
	// Arrays and scalars are legal bodies, they just have no fields
	if buff.Bytes()[0] == '{' {
		if err := json.Unmarshal(buff.Bytes(), &b.fields); err != nil {
			return nil, i18n.WrapError(ctx, err, msgs.MsgGatewayBodyParseFailed)
		}
	}
	return b, nil
}

// full is the whole body as JSON text
func (b *requestBody) full() string {
	return b.compact
}

// scalar returns a string field as-is, or the JSON text of any other present value
func (b *requestBody) scalar(name string) string {
	v := b.fields[name]
	if v.IsNil() {
		return ""
	}
	var s string
	if err := json.Unmarshal(v.Bytes(), &s); err == nil {
		return s
	}
	return v.String()
}

// serialized returns the JSON text of a field
func (b *requestBody) serialized(name string) string {
	v := b.fields[name]
	if v.IsNil() {
		return nullJSON
	}
	return v.String()
}
