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

package bootstrap

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"

	"github.com/kaleido-io/ledger-gateway/internal/confutil"
	"github.com/kaleido-io/ledger-gateway/internal/gateway"
	"github.com/kaleido-io/ledger-gateway/internal/log"
	"github.com/kaleido-io/ledger-gateway/internal/metrics"
	"github.com/kaleido-io/ledger-gateway/internal/metricsserver"
	"github.com/kaleido-io/ledger-gateway/internal/router"
	"github.com/kaleido-io/ledger-gateway/pkg/gwconf"
	"github.com/kaleido-io/ledger-gateway/pkg/identity"
	"github.com/kaleido-io/ledger-gateway/pkg/ledger"
	"github.com/prometheus/client_golang/prometheus"
)

var ledgerClientFactory = ledger.NewClient

type instance struct {
	configFile string

	ctx       context.Context
	cancelCtx context.CancelFunc
	signals   chan os.Signal
	stopped   atomic.Bool
	started   chan struct{}
	done      chan struct{}

	apiServer     router.Router
	metricsServer metricsserver.MetricsServer
}

type RC int

const (
	RC_OK   RC = 0
	RC_FAIL RC = 1
)

func newInstance(configFile string) *instance {
	i := &instance{
		configFile: configFile,
		signals:    make(chan os.Signal, 1),
		started:    make(chan struct{}),
		done:       make(chan struct{}),
	}
	i.ctx, i.cancelCtx = context.WithCancel(log.WithLogField(context.Background(), "pid", strconv.Itoa(os.Getpid())))
	return i
}

func (i *instance) signalHandler() {
	signal.Notify(i.signals, os.Interrupt, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer signal.Stop(i.signals)
	select {
	case sig := <-i.signals:
		log.L(i.ctx).Infof("Stopping due to signal %s", sig)
		i.stop()
	case <-i.ctx.Done():
	}
}

func (i *instance) run() RC {
	defer func() {
		i.cancelCtx()
		close(i.done)
		running.Store(nil)
	}()
	go i.signalHandler()

	conf, err := loadConfig(i.ctx, i.configFile)
	if err != nil {
		log.L(i.ctx).Error(err.Error())
		return RC_FAIL
	}
	log.InitConfig(&conf.Log)

	defer i.stopServers()
	if err := i.start(conf); err != nil {
		log.L(i.ctx).Error(err.Error())
		return RC_FAIL
	}
	close(i.started)
	log.L(i.ctx).Infof("Ledger gateway started")

	// We're started... we just wait for the request to stop
	<-i.ctx.Done()

	return RC_OK
}

func (i *instance) start(conf *gwconf.GatewayConfig) (err error) {
	ledgerClient, err := ledgerClientFactory(i.ctx, &conf.Ledger)
	if err != nil {
		return err
	}
	resolver, err := identity.NewResolver(i.ctx, &conf.Identity)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	gw := gateway.NewGateway(ledgerClient, resolver, metrics.InitMetrics(i.ctx, registry))

	if conf.API.Port == nil {
		conf.API.Port = confutil.P(*gwconf.APIDefaults.Port)
	}
	if i.apiServer, err = router.NewRouter(i.ctx, "API (HTTP)", &conf.API); err != nil {
		return err
	}
	gw.Register(i.apiServer)

	if i.metricsServer, err = metricsserver.NewMetricsServer(i.ctx, registry, &conf.Metrics); err != nil {
		return err
	}

	if err = i.metricsServer.Start(); err != nil {
		return err
	}
	return i.apiServer.Start()
}

func (i *instance) stopServers() {
	if i.apiServer != nil {
		i.apiServer.Stop()
	}
	if i.metricsServer != nil {
		i.metricsServer.Stop()
	}
}

func (i *instance) stop() {
	if i.stopped.CompareAndSwap(false, true) {
		i.cancelCtx()
		<-i.done
	}
}
