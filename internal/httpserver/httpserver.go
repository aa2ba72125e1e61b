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

package httpserver

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/ledger-gateway/internal/confutil"
	"github.com/kaleido-io/ledger-gateway/internal/log"
	"github.com/kaleido-io/ledger-gateway/internal/msgs"
	"github.com/kaleido-io/ledger-gateway/internal/tlsconf"
	"github.com/kaleido-io/ledger-gateway/pkg/gwconf"
)

type Server interface {
	Start() error
	Stop()
	Addr() net.Addr
}

var _ Server = &server{}

type server struct {
	ctx             context.Context
	cancelCtx       func()
	description     string
	listener        net.Listener
	srv             *http.Server
	serveDone       chan error
	shutdownTimeout time.Duration
	running         bool
}

// NewServer binds the listener immediately, so Addr() is valid (including for port 0) before Start()
func NewServer(ctx context.Context, description string, conf *gwconf.HTTPServerConfig, handler http.Handler) (Server, error) {
	if conf.Port == nil {
		return nil, i18n.NewError(ctx, msgs.MsgHTTPServerMissingPort, description)
	}

	tlsConfig, err := tlsconf.BuildTLSConfig(ctx, &conf.TLS, tlsconf.ServerType)
	if err != nil {
		return nil, err
	}

	listenAddr := fmt.Sprintf("%s:%d", confutil.StringNotEmpty(conf.Address, *gwconf.HTTPDefaults.Address), *conf.Port)
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgHTTPServerStartFailed, listenAddr)
	}
	if tlsConfig != nil {
		listener = tls.NewListener(listener, tlsConfig)
	}
	log.L(ctx).Infof("%s server listening on %s (tls=%t)", description, listener.Addr(), tlsConfig != nil)

	timeouts := &requestTimeouts{
		def: confutil.DurationMin(conf.DefaultRequestTimeout, 1*time.Second, *gwconf.HTTPDefaults.DefaultRequestTimeout),
		max: confutil.DurationMin(conf.MaxRequestTimeout, 1*time.Second, *gwconf.HTTPDefaults.MaxRequestTimeout),
	}
	// socket timeouts must outlast the longest request a caller can ask for
	ioTimeout := timeouts.max + 1*time.Second
	readTimeout := confutil.DurationMin(conf.ReadTimeout, ioTimeout, "0")
	writeTimeout := confutil.DurationMin(conf.WriteTimeout, ioTimeout, "0")

	s := &server{
		description:     description,
		listener:        listener,
		serveDone:       make(chan error),
		shutdownTimeout: confutil.DurationMin(conf.ShutdownTimeout, 0, *gwconf.HTTPDefaults.ShutdownTimeout),
	}
	s.ctx, s.cancelCtx = context.WithCancel(ctx)
	s.srv = &http.Server{
		Handler:           WrapCorsIfEnabled(ctx, accessLog(description, timeouts, handler), &conf.CORS),
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readTimeout,
		WriteTimeout:      writeTimeout,
		TLSConfig:         tlsConfig,
		ConnContext: func(connCtx context.Context, c net.Conn) context.Context {
			connCtx = log.WithLogField(log.WithLogger(connCtx, log.L(ctx)), "conn", shortID())
			log.L(connCtx).Debugf("%s connection from %s", description, c.RemoteAddr())
			return connCtx
		},
	}
	return s, nil
}

func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[0:12]
}

// requestTimeouts bounds every request. Callers can choose their own timeout, up to max, with a
// Request-Timeout header given in seconds or as a duration string.
type requestTimeouts struct {
	def time.Duration
	max time.Duration
}

func (rt *requestTimeouts) forRequest(req *http.Request) time.Duration {
	h := req.Header.Get("Request-Timeout")
	if h == "" {
		return rt.def
	}
	var d time.Duration
	secs, err := strconv.ParseInt(h, 10, 32)
	if err == nil {
		d = time.Duration(secs) * time.Second
	} else if d, err = time.ParseDuration(h); err != nil {
		log.L(req.Context()).Warnf("Ignoring invalid Request-Timeout header '%s': %s", h, err)
		return rt.def
	}
	if d > rt.max {
		return rt.max
	}
	return d
}

// responseRecorder remembers what was sent, for the access log
type responseRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (rr *responseRecorder) WriteHeader(status int) {
	rr.status = status
	rr.ResponseWriter.WriteHeader(status)
}

func (rr *responseRecorder) Write(data []byte) (int, error) {
	n, err := rr.ResponseWriter.Write(data)
	rr.bytes += n
	return n, err
}

func accessLog(description string, timeouts *requestTimeouts, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ctx, cancel := context.WithTimeout(req.Context(), timeouts.forRequest(req))
		defer cancel()
		ctx = log.WithLogField(ctx, "req", shortID())
		req = req.WithContext(ctx)

		log.L(ctx).Debugf("--> %s %s (%s)", req.Method, req.URL.Path, description)
		rr := &responseRecorder{ResponseWriter: res, status: http.StatusOK}
		handler.ServeHTTP(rr, req)
		log.L(ctx).Debugf("<-- %s %s [%d] %db (%.2fms)", req.Method, req.URL.Path, rr.status, rr.bytes,
			float64(time.Since(start))/float64(time.Millisecond))
	})
}

func (s *server) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *server) Start() error {
	s.running = true
	go func() {
		s.serveDone <- s.srv.Serve(s.listener)
	}()
	return nil
}

// Stop waits up to the shutdown timeout for in-flight requests, then closes any that remain
func (s *server) Stop() {
	if !s.running {
		_ = s.listener.Close()
		return
	}
	log.L(s.ctx).Infof("%s server shutting down", s.description)
	graceful := make(chan struct{})
	go func() {
		defer close(graceful)
		_ = s.srv.Shutdown(s.ctx)
	}()
	select {
	case <-graceful:
	case <-time.After(s.shutdownTimeout):
		log.L(s.ctx).Warnf("%s server closing in-flight requests after %s", s.description, s.shutdownTimeout)
		_ = s.srv.Close()
	}
	s.cancelCtx()
	err := <-s.serveDone
	log.L(s.ctx).Infof("%s server stopped (%v)", s.description, err)
	s.running = false
}
