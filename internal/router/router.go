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

package router

import (
	"context"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kaleido-io/ledger-gateway/internal/httpserver"
	"github.com/kaleido-io/ledger-gateway/pkg/gwconf"
)

type Router interface {
	http.Handler
	Start() error
	Stop()
	Addr() net.Addr

	HandleFunc(path string, f func(http.ResponseWriter, *http.Request), methods ...string)
}

// NewRouter builds a gorilla/mux router served by its own HTTP server
func NewRouter(ctx context.Context, description string, conf *gwconf.HTTPServerConfig) (_ Router, err error) {
	r := newMuxRouter(ctx)
	r.server, err = httpserver.NewServer(ctx, description, conf, r.router)
	return r, err
}

// NewHandlerOnly builds a router that is not bound to a server, for embedding in another
// server (or a test server)
func NewHandlerOnly(ctx context.Context) Router {
	return newMuxRouter(ctx)
}

func newMuxRouter(ctx context.Context) *router {
	return &router{
		ctx:    ctx,
		router: mux.NewRouter(),
	}
}

var _ Router = &router{}

type router struct {
	ctx    context.Context
	router *mux.Router
	server httpserver.Server
}

func (r *router) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(res, req)
}

func (r *router) HandleFunc(path string, f func(http.ResponseWriter, *http.Request), methods ...string) {
	route := r.router.HandleFunc(path, f)
	if len(methods) > 0 {
		route.Methods(methods...)
	}
}

func (r *router) Addr() (a net.Addr) {
	if r.server != nil {
		a = r.server.Addr()
	}
	return a
}

func (r *router) Start() (err error) {
	if r.server != nil {
		return r.server.Start()
	}
	return nil
}

func (r *router) Stop() {
	if r.server != nil {
		r.server.Stop()
	}
}
