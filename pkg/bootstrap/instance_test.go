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
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/kaleido-io/ledger-gateway/mocks/ledgermocks"
	"github.com/kaleido-io/ledger-gateway/pkg/gwconf"
	"github.com/kaleido-io/ledger-gateway/pkg/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, content string) string {
	configFile := path.Join(t.TempDir(), "ledgergw.yaml")
	err := os.WriteFile(configFile, []byte(content), 0664)
	require.NoError(t, err)
	return configFile
}

const testConfig = `
log:
  level: debug
api:
  address: 127.0.0.1
  port: 0
metrics:
  enabled: true
  address: 127.0.0.1
  port: 0
ledger:
  type: rest
  channel: default-channel
  chaincode: asset_transfer
  http:
    url: http://localhost:5102
identity:
  type: header
  defaultIdentity: admin
`

func setupMockLedger(t *testing.T) (*ledgermocks.Client, func()) {
	origFactory := ledgerClientFactory
	mockLedger := ledgermocks.NewClient(t)
	ledgerClientFactory = func(ctx context.Context, conf *gwconf.LedgerConfig) (ledger.Client, error) {
		assert.Equal(t, "asset_transfer", conf.Chaincode)
		assert.Equal(t, "http://localhost:5102", conf.HTTP.URL)
		return mockLedger, nil
	}
	return mockLedger, func() {
		ledgerClientFactory = origFactory
	}
}

func waitStarted(t *testing.T) *instance {
	var inst *instance
	require.Eventually(t, func() bool {
		p := running.Load()
		if p == nil {
			return false
		}
		inst = *p
		return true
	}, 5*time.Second, 10*time.Millisecond)
	<-inst.started
	return inst
}

func TestEntrypointServesAPIAndMetrics(t *testing.T) {
	mockLedger, done := setupMockLedger(t)
	defer done()
	mockLedger.On("Query", mock.Anything, "get_all_things", []string{"admin"}, "admin").
		Return(fftypes.JSONAnyPtr(`[{"thingId":"T1"}]`), nil)

	configFile := writeTestConfig(t, testConfig)
	completed := make(chan RC)
	go func() {
		completed <- Run(configFile)
	}()
	inst := waitStarted(t)

	// Double start should panic
	assert.Panics(t, func() {
		Run(configFile)
	})

	res, err := http.Get(fmt.Sprintf("http://%s/things", inst.apiServer.Addr()))
	require.NoError(t, err)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `[{"thingId":"T1"}]`, string(body))

	res, err = http.Get(fmt.Sprintf("http://%s/metrics", inst.metricsServer.Addr()))
	require.NoError(t, err)
	body, err = io.ReadAll(res.Body)
	require.NoError(t, err)
	res.Body.Close()
	assert.Contains(t, string(body), `ledger_gateway_ledger_calls_total{mode="query",operation="get_all_things",outcome="success"} 1`)

	Stop()
	assert.Equal(t, RC_OK, <-completed)
}

func TestSignalHandlerStop(t *testing.T) {
	_, done := setupMockLedger(t)
	defer done()

	configFile := writeTestConfig(t, testConfig)
	completed := make(chan RC)
	go func() {
		completed <- Run(configFile)
	}()
	inst := waitStarted(t)

	inst.signals <- syscall.SIGQUIT
	assert.Equal(t, RC_OK, <-completed)
}

func TestEndToEndRESTLedger(t *testing.T) {
	ledgerServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transactions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":{"status":"UPDATED"}}`))
	}))
	defer ledgerServer.Close()

	configFile := writeTestConfig(t, fmt.Sprintf(`{
		"api": {"port": 0},
		"ledger": {"chaincode": "asset_transfer", "http": {"url": %q}}
	}`, ledgerServer.URL))
	completed := make(chan RC)
	go func() {
		completed <- Run(configFile)
	}()
	inst := waitStarted(t)

	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("http://%s/meetings", inst.apiServer.Addr()),
		strings.NewReader(`{"meeting":"M1","requestId":"R1"}`))
	require.NoError(t, err)
	req.Header.Set("X-Enrollment-ID", "alice")
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"status":"UPDATED"}`, string(body))

	Stop()
	assert.Equal(t, RC_OK, <-completed)
}

func TestBadConfigFile(t *testing.T) {
	rc := Run(path.Join(t.TempDir(), "wrong.yaml"))
	assert.Equal(t, RC_FAIL, rc)
}

func TestLedgerConfigFail(t *testing.T) {
	configFile := writeTestConfig(t, `{"api": {"port": 0}, "ledger": {"http": {"url": "http://localhost:5102"}}}`)
	rc := Run(configFile)
	assert.Equal(t, RC_FAIL, rc)
}

func TestIdentityConfigFail(t *testing.T) {
	_, done := setupMockLedger(t)
	defer done()

	configFile := writeTestConfig(t, `{
		"ledger": {"chaincode": "asset_transfer", "http": {"url": "http://localhost:5102"}},
		"identity": {"type": "wrong"}
	}`)
	rc := Run(configFile)
	assert.Equal(t, RC_FAIL, rc)
}

func TestAPIServerConfigFail(t *testing.T) {
	_, done := setupMockLedger(t)
	defer done()

	configFile := writeTestConfig(t, `{
		"api": {"port": 0, "tls": {"enabled": true, "caFile": "!!!missing"}},
		"ledger": {"chaincode": "asset_transfer", "http": {"url": "http://localhost:5102"}}
	}`)
	rc := Run(configFile)
	assert.Equal(t, RC_FAIL, rc)
}

func TestMetricsServerConfigFail(t *testing.T) {
	_, done := setupMockLedger(t)
	defer done()

	configFile := writeTestConfig(t, `{
		"api": {"port": 0},
		"metrics": {"enabled": true},
		"ledger": {"chaincode": "asset_transfer", "http": {"url": "http://localhost:5102"}}
	}`)
	rc := Run(configFile)
	assert.Equal(t, RC_FAIL, rc)
}

func TestStopNotRunning(t *testing.T) {
	Stop()
}
