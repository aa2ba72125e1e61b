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
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kaleido-io/ledger-gateway/pkg/ledger"
)

type routeRequest struct {
	req      *http.Request
	callerID string
	body     *requestBody
}

func (rr *routeRequest) pathParam(name string) string {
	return mux.Vars(rr.req)[name]
}

func (rr *routeRequest) queryParam(name string) string {
	return rr.req.URL.Query().Get(name)
}

type route struct {
	method    string
	path      string
	operation string
	mode      ledger.Mode
	// hasBody routes parse the request body as JSON before building the call
	hasBody bool
	build   func(rr *routeRequest) ledgerCall
	respond responder
}

var routes = []*route{
	{
		method: http.MethodGet, path: "/things",
		operation: "get_all_things", mode: ledger.ModeQuery,
		build: func(rr *routeRequest) ledgerCall {
			return &callerScopedCall{CallerID: rr.callerID}
		},
		respond: respondQueryResult,
	},
	{
		method: http.MethodGet, path: "/things/{thingId}",
		operation: "get_thing", mode: ledger.ModeQuery,
		build: func(rr *routeRequest) ledgerCall {
			return &getThingCall{ThingID: rr.pathParam("thingId")}
		},
		respond: respondQueryResult,
	},
	{
		method: http.MethodPost, path: "/things",
		operation: "add_thing", mode: ledger.ModeInvoke, hasBody: true,
		build: func(rr *routeRequest) ledgerCall {
			return &addThingCall{
				ThingID: rr.body.scalar("thingId"),
				Thing:   rr.body.serialized("thing"),
			}
		},
		respond: respondAccepted,
	},
	{
		method: http.MethodPost, path: "/resources",
		operation: "add_resource", mode: ledger.ModeInvoke, hasBody: true,
		build: func(rr *routeRequest) ledgerCall {
			return &addResourceCall{
				Owner: rr.body.scalar("owner"),
				Hash:  rr.body.scalar("hash"),
				Path:  rr.body.scalar("path"),
			}
		},
		respond: respondAccepted,
	},
	{
		method: http.MethodGet, path: "/resources",
		operation: "get_resource", mode: ledger.ModeQuery,
		build: func(rr *routeRequest) ledgerCall {
			return &getResourceCall{
				Owner: rr.queryParam("owner"),
				Hash:  rr.queryParam("hash"),
			}
		},
		respond: respondQueryResult,
	},
	{
		method: http.MethodGet, path: "/brokerage-requests",
		operation: "get_all_brokerage_requests", mode: ledger.ModeQuery,
		build: func(rr *routeRequest) ledgerCall {
			return &callerScopedCall{CallerID: rr.callerID}
		},
		respond: respondQueryResult,
	},
	{
		method: http.MethodGet, path: "/brokerage-requests/{requestId}",
		operation: "get_brokerage_request", mode: ledger.ModeQuery,
		build: func(rr *routeRequest) ledgerCall {
			return &getBrokerageRequestCall{RequestID: rr.pathParam("requestId")}
		},
		respond: respondQueryResult,
	},
	{
		method: http.MethodPost, path: "/brokerage-requests",
		operation: "create_brokerageRequest", mode: ledger.ModeInvoke, hasBody: true,
		build: func(rr *routeRequest) ledgerCall {
			return &createBrokerageRequestCall{Request: rr.body.full()}
		},
		respond: respondBrokerageAccepted,
	},
	{
		method: http.MethodPost, path: "/meetings",
		operation: "update_brokerage_application", mode: ledger.ModeInvoke, hasBody: true,
		build: func(rr *routeRequest) ledgerCall {
			return &updateBrokerageApplicationCall{
				UpdateType: applicationUpdateMeeting,
				Data:       rr.body.scalar("meeting"),
				RequestID:  rr.body.scalar("requestId"),
			}
		},
		respond: respondLedgerResult,
	},
	{
		method: http.MethodPost, path: "/videos",
		operation: "update_brokerage_application", mode: ledger.ModeInvoke, hasBody: true,
		build: func(rr *routeRequest) ledgerCall {
			return &updateBrokerageApplicationCall{
				UpdateType: applicationUpdateVideo,
				Data:       rr.body.serialized("video"),
				RequestID:  rr.body.scalar("requestId"),
			}
		},
		respond: respondLedgerResult,
	},
	{
		method: http.MethodPost, path: "/users",
		operation: "create_user", mode: ledger.ModeInvoke, hasBody: true,
		build: func(rr *routeRequest) ledgerCall {
			return &createUserCall{RequestID: rr.body.serialized("requestId")}
		},
		respond: respondLedgerResult,
	},
	{
		method: http.MethodPut, path: "/users",
		operation: "update_user", mode: ledger.ModeInvoke, hasBody: true,
		build: func(rr *routeRequest) ledgerCall {
			return &updateUserCall{User: rr.body.full()}
		},
		respond: respondLedgerResult,
	},
	{
		// validation is performed by the chaincode as part of update_user
		method: http.MethodPost, path: "/users/validate",
		operation: "update_user", mode: ledger.ModeInvoke, hasBody: true,
		build: func(rr *routeRequest) ledgerCall {
			return &updateUserCall{User: rr.body.full()}
		},
		respond: respondLedgerResult,
	},
	{
		// get_user is submitted as a transaction, so the lookup is recorded on the ledger
		method: http.MethodPost, path: "/users/query",
		operation: "get_user", mode: ledger.ModeInvoke, hasBody: true,
		build: func(rr *routeRequest) ledgerCall {
			return &getUserCall{
				Status:    rr.body.scalar("status"),
				RequestID: rr.body.scalar("requestId"),
			}
		},
		respond: respondLedgerResult,
	},
}
