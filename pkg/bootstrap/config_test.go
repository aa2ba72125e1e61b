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
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigFileFlagWins(t *testing.T) {
	t.Setenv("LEDGERGW_CONFIG_FILE", "/from/env.yaml")
	f, err := ResolveConfigFile(context.Background(), "/from/flag.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/from/flag.yaml", f)
}

func TestResolveConfigFileFromEnv(t *testing.T) {
	t.Setenv("LEDGERGW_CONFIG_FILE", "/from/env.yaml")
	f, err := ResolveConfigFile(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "/from/env.yaml", f)
}

func TestResolveConfigFileNotSet(t *testing.T) {
	t.Setenv("LEDGERGW_CONFIG_FILE", "")
	_, err := ResolveConfigFile(context.Background(), "")
	assert.Regexp(t, "LG010004", err)
}

func TestReadAndParseYAMLFileErrors(t *testing.T) {
	ctx := context.Background()
	var conf map[string]interface{}

	err := ReadAndParseYAMLFile(ctx, path.Join(t.TempDir(), "missing.yaml"), &conf)
	assert.Regexp(t, "LG010000", err)

	err = ReadAndParseYAMLFile(ctx, t.TempDir(), &conf)
	assert.Regexp(t, "LG010001", err)

	badFile := path.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(badFile, []byte("{ not: [valid"), 0664))
	err = ReadAndParseYAMLFile(ctx, badFile, &conf)
	assert.Regexp(t, "LG010002", err)
}

func TestLoadConfigLogLevelOverride(t *testing.T) {
	configFile := writeTestConfig(t, testConfig)

	conf, err := loadConfig(context.Background(), configFile)
	require.NoError(t, err)
	assert.Equal(t, "debug", *conf.Log.Level)
	assert.Equal(t, "asset_transfer", conf.Ledger.Chaincode)
	assert.Equal(t, "admin", conf.Identity.DefaultIdentity)
	assert.True(t, *conf.Metrics.Enabled)
	assert.Equal(t, 0, *conf.Metrics.Port)

	t.Setenv("LEDGERGW_LOG_LEVEL", "trace")
	conf, err = loadConfig(context.Background(), configFile)
	require.NoError(t, err)
	assert.Equal(t, "trace", *conf.Log.Level)
}
