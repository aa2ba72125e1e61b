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
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/kaleido-io/ledger-gateway/internal/log"
	"github.com/kaleido-io/ledger-gateway/internal/metrics"
	"github.com/kaleido-io/ledger-gateway/internal/router"
	"github.com/kaleido-io/ledger-gateway/pkg/identity"
	"github.com/kaleido-io/ledger-gateway/pkg/ledger"
)

// Gateway maps each HTTP route onto exactly one ledger query or invoke, submitted as the
// resolved caller identity. It holds no state between requests.
type Gateway struct {
	ledger   ledger.Client
	identity identity.Resolver
	metrics  metrics.GatewayMetrics
}

func NewGateway(ledgerClient ledger.Client, resolver identity.Resolver, gwMetrics metrics.GatewayMetrics) *Gateway {
	return &Gateway{
		ledger:   ledgerClient,
		identity: resolver,
		metrics:  gwMetrics,
	}
}

func (g *Gateway) Register(r router.Router) {
	for _, rt := range routes {
		r.HandleFunc(rt.path, g.handler(rt), rt.method)
	}
}

func (g *Gateway) handler(rt *route) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		ctx := log.WithLogField(req.Context(), "op", rt.operation)
		req = req.WithContext(ctx)

		result, err := g.execute(ctx, rt, req)
		if err != nil {
			log.L(ctx).Errorf("%s %s failed: %s", req.Method, req.URL.Path, err)
			res.WriteHeader(http.StatusInternalServerError)
			return
		}
		rt.respond(ctx, res, rt.operation, result, g.metrics)
	}
}

func (g *Gateway) execute(ctx context.Context, rt *route, req *http.Request) (*fftypes.JSONAny, error) {
	callerID, err := g.identity.GetCallerID(req)
	if err != nil {
		return nil, err
	}

	rr := &routeRequest{req: req, callerID: callerID}
	if rt.hasBody {
		if rr.body, err = parseRequestBody(ctx, req); err != nil {
			return nil, err
		}
	}
	args := rt.build(rr).Args()

	log.L(ctx).Infof("Ledger %s %s as '%s' (%d args)", rt.mode, rt.operation, callerID, len(args))
	if log.IsDebugEnabled() {
		log.L(ctx).Debugf("Ledger %s %s args: %q", rt.mode, rt.operation, args)
	}

	start := time.Now()
	var result *fftypes.JSONAny
	switch rt.mode {
	case ledger.ModeQuery:
		result, err = g.ledger.Query(ctx, rt.operation, args, callerID)
	default:
		result, err = g.ledger.Invoke(ctx, rt.operation, args, callerID)
	}
	g.metrics.ObserveLedgerCall(rt.operation, string(rt.mode), err == nil, time.Since(start))
	return result, err
}

type responder func(ctx context.Context, res http.ResponseWriter, operation string, result *fftypes.JSONAny, gwMetrics metrics.GatewayMetrics)

// Query results are passed through untouched, with nothing on the ledger returned as an empty list
// emptyQueryResult covers a missing result, JSON null and the JSON empty string
func emptyQueryResult(result *fftypes.JSONAny) bool {
	return result.IsNil() || strings.TrimSpace(result.String()) == `""`
}

func respondQueryResult(ctx context.Context, res http.ResponseWriter, operation string, result *fftypes.JSONAny, gwMetrics metrics.GatewayMetrics) {
	if emptyQueryResult(result) {
		writeJSON(ctx, res, []byte("[]"))
		return
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(result.Bytes(), &entries); err == nil {
		log.L(ctx).Infof("Retrieved %d entries from the ledger", len(entries))
		gwMetrics.ObserveResultCount(operation, len(entries))
	}
	writeJSON(ctx, res, result.Bytes())
}

func respondAccepted(_ context.Context, res http.ResponseWriter, _ string, _ *fftypes.JSONAny, _ metrics.GatewayMetrics) {
	res.WriteHeader(http.StatusOK)
}

// Fixed acknowledgement body returned by the brokerage request route, whatever the ledger returns
var brokerageAcceptedPayload = []byte(`{"anObject":{"item1":"item1val","item2":"item2val"},"anArray":["item1","item2"],"another":"item"}`)

func respondBrokerageAccepted(ctx context.Context, res http.ResponseWriter, _ string, _ *fftypes.JSONAny, _ metrics.GatewayMetrics) {
	writeJSON(ctx, res, brokerageAcceptedPayload)
}

func respondLedgerResult(ctx context.Context, res http.ResponseWriter, _ string, result *fftypes.JSONAny, _ metrics.GatewayMetrics) {
	if result.IsNil() {
		writeJSON(ctx, res, []byte(nullJSON))
		return
	}
	writeJSON(ctx, res, result.Bytes())
}

func writeJSON(ctx context.Context, res http.ResponseWriter, body []byte) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(http.StatusOK)
	if _, err := res.Write(body); err != nil {
		log.L(ctx).Warnf("Failed to write response: %s", err)
	}
}
