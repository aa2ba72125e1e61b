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

	"github.com/caarlos0/env/v11"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/ledger-gateway/internal/log"
	"github.com/kaleido-io/ledger-gateway/internal/msgs"
	"github.com/kaleido-io/ledger-gateway/pkg/gwconf"
	"sigs.k8s.io/yaml"
)

// EnvConfig is the subset of configuration that can be supplied through the environment
type EnvConfig struct {
	ConfigFile string `env:"LEDGERGW_CONFIG_FILE"`
	LogLevel   string `env:"LEDGERGW_LOG_LEVEL"`
}

func ParseEnv(ctx context.Context) (*EnvConfig, error) {
	var ec EnvConfig
	if err := env.Parse(&ec); err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgConfigEnvParseError, err)
	}
	return &ec, nil
}

// ResolveConfigFile prefers an explicit path, then LEDGERGW_CONFIG_FILE
func ResolveConfigFile(ctx context.Context, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	ec, err := ParseEnv(ctx)
	if err != nil {
		return "", err
	}
	if ec.ConfigFile == "" {
		return "", i18n.NewError(ctx, msgs.MsgConfigFileNotSet)
	}
	return ec.ConfigFile, nil
}

func ReadAndParseYAMLFile(ctx context.Context, filePath string, config interface{}) error {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return i18n.NewError(ctx, msgs.MsgConfigFileMissing, filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return i18n.NewError(ctx, msgs.MsgConfigFileReadError, filePath, err.Error())
	}

	if err = yaml.Unmarshal(data, config); err != nil {
		return i18n.NewError(ctx, msgs.MsgConfigFileParseError, err.Error())
	}
	return nil
}

// loadConfig reads the config file, then applies environment overrides
func loadConfig(ctx context.Context, filePath string) (*gwconf.GatewayConfig, error) {
	var conf gwconf.GatewayConfig
	if err := ReadAndParseYAMLFile(ctx, filePath, &conf); err != nil {
		return nil, err
	}
	ec, err := ParseEnv(ctx)
	if err != nil {
		return nil, err
	}
	if ec.LogLevel != "" {
		log.L(ctx).Debugf("Log level overridden from environment: %s", ec.LogLevel)
		conf.Log.Level = &ec.LogLevel
	}
	return &conf, nil
}
