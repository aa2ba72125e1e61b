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

package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var METRICS_SUBSYSTEM = "ledger_gateway"

type GatewayMetrics interface {
	// ObserveLedgerCall records the outcome and latency of a single query/invoke
	ObserveLedgerCall(operation, mode string, success bool, duration time.Duration)
	ObserveResultCount(operation string, count int)
}

type gatewayMetrics struct {
	ledgerCalls   *prometheus.CounterVec
	ledgerLatency *prometheus.HistogramVec
	resultCount   *prometheus.HistogramVec
}

func InitMetrics(ctx context.Context, registry *prometheus.Registry) GatewayMetrics {
	m := &gatewayMetrics{}

	m.ledgerCalls = prometheus.NewCounterVec(prometheus.CounterOpts{Name: "ledger_calls_total",
		Help: "Ledger queries and invokes by outcome", Subsystem: METRICS_SUBSYSTEM}, []string{"operation", "mode", "outcome"})
	m.ledgerLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{Name: "ledger_call_seconds",
		Help: "Latency of ledger queries and invokes", Subsystem: METRICS_SUBSYSTEM}, []string{"operation", "mode"})
	m.resultCount = prometheus.NewHistogramVec(prometheus.HistogramOpts{Name: "query_result_count",
		Help: "Number of entries in collection results returned by ledger queries", Subsystem: METRICS_SUBSYSTEM,
		Buckets: []float64{0, 1, 10, 100, 1000, 10000}}, []string{"operation"})

	registry.MustRegister(m.ledgerCalls, m.ledgerLatency, m.resultCount)
	return m
}

func (m *gatewayMetrics) ObserveLedgerCall(operation, mode string, success bool, duration time.Duration) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.ledgerCalls.With(prometheus.Labels{"operation": operation, "mode": mode, "outcome": outcome}).Inc()
	m.ledgerLatency.With(prometheus.Labels{"operation": operation, "mode": mode}).Observe(duration.Seconds())
}

func (m *gatewayMetrics) ObserveResultCount(operation string, count int) {
	m.resultCount.With(prometheus.Labels{"operation": operation}).Observe(float64(count))
}
