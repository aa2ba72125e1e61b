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

package gwconf

import "github.com/kaleido-io/ledger-gateway/internal/confutil"

type HTTPServerConfig struct {
	TLS                   TLSConfig  `json:"tls"`
	CORS                  CORSConfig `json:"cors"`
	Address               *string    `json:"address"`
	Port                  *int       `json:"port"`
	DefaultRequestTimeout *string    `json:"defaultRequestTimeout"`
	MaxRequestTimeout     *string    `json:"maxRequestTimeout"`
	ReadTimeout           *string    `json:"readTimeout"`
	WriteTimeout          *string    `json:"writeTimeout"`
	ShutdownTimeout       *string    `json:"shutdownTimeout"`
}

var HTTPDefaults = &HTTPServerConfig{
	Address:               confutil.P("127.0.0.1"),
	DefaultRequestTimeout: confutil.P("2m"),
	MaxRequestTimeout:     confutil.P("10m"),
	ShutdownTimeout:       confutil.P("10s"),
}

type CORSConfig struct {
	Enabled          bool     `json:"enabled"`
	Debug            bool     `json:"debug"`
	AllowCredentials *bool    `json:"allowCredentials"`
	AllowedHeaders   []string `json:"allowedHeaders"`
	AllowedMethods   []string `json:"allowedMethods"`
	AllowedOrigins   []string `json:"allowedOrigins"`
	MaxAge           *string  `json:"maxAge"`
}

type MetricsServerConfig struct {
	Enabled *bool `json:"enabled"`
	HTTPServerConfig
}

var MetricsServerDefaults = &MetricsServerConfig{
	Enabled: confutil.P(false),
}

type HTTPBasicAuthConfig struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type HTTPClientConfig struct {
	URL               string                 `json:"url"`
	HTTPHeaders       map[string]interface{} `json:"httpHeaders"`
	Auth              HTTPBasicAuthConfig    `json:"auth"`
	TLS               TLSConfig              `json:"tls"`
	RequestTimeout    *string                `json:"requestTimeout,omitempty"`
	ConnectionTimeout *string                `json:"connectionTimeout,omitempty"`
}

var DefaultHTTPConfig = &HTTPClientConfig{
	ConnectionTimeout: confutil.P("30s"),
	RequestTimeout:    confutil.P("30s"),
}

type TLSConfig struct {
	Enabled                bool   `json:"enabled"`
	ClientAuth             bool   `json:"clientAuth,omitempty"`
	CAFile                 string `json:"caFile,omitempty"`
	CA                     string `json:"ca,omitempty"`
	CertFile               string `json:"certFile,omitempty"`
	Cert                   string `json:"cert,omitempty"`
	KeyFile                string `json:"keyFile,omitempty"`
	Key                    string `json:"key,omitempty"`
	InsecureSkipHostVerify bool   `json:"insecureSkipHostVerify"`
}
