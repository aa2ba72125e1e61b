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

package metricsserver

import (
	"context"
	"net"

	"github.com/kaleido-io/ledger-gateway/internal/confutil"
	"github.com/kaleido-io/ledger-gateway/internal/router"
	"github.com/kaleido-io/ledger-gateway/pkg/gwconf"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsServer interface {
	Start() error
	Stop()
	Addr() net.Addr
}

func NewMetricsServer(ctx context.Context, registry *prometheus.Registry, conf *gwconf.MetricsServerConfig) (_ *metricsServer, err error) {
	s := &metricsServer{
		bgCtx: ctx,
	}

	if confutil.Bool(conf.Enabled, *gwconf.MetricsServerDefaults.Enabled) {
		r, err := router.NewRouter(s.bgCtx, "Metrics (HTTP)", &conf.HTTPServerConfig)
		if err != nil {
			return s, err
		}

		r.HandleFunc("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}).ServeHTTP)
		s.httpServer = r
	}
	return s, err
}

var _ MetricsServer = &metricsServer{}

type metricsServer struct {
	bgCtx      context.Context
	httpServer router.Router
}

func (s *metricsServer) Start() (err error) {
	if s.httpServer != nil {
		err = s.httpServer.Start()
	}
	return err
}

// Addr is nil when the metrics server is disabled
func (s *metricsServer) Addr() (a net.Addr) {
	if s.httpServer != nil {
		a = s.httpServer.Addr()
	}
	return a
}

func (s *metricsServer) Stop() {
	if s.httpServer != nil {
		s.httpServer.Stop()
	}
}
