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

package tlsconf

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"os"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/ledger-gateway/internal/log"
	"github.com/kaleido-io/ledger-gateway/internal/msgs"
	"github.com/kaleido-io/ledger-gateway/pkg/gwconf"
)

type TLSType string

const (
	ServerType TLSType = "server"
	ClientType TLSType = "client"
)

func BuildTLSConfig(ctx context.Context, config *gwconf.TLSConfig, tlsType TLSType) (*tls.Config, error) {
	if !config.Enabled {
		return nil, nil
	}

	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
		VerifyPeerCertificate: func(_ [][]byte, verifiedChains [][]*x509.Certificate) error {
			if len(verifiedChains) > 0 && len(verifiedChains[0]) > 0 {
				cert := verifiedChains[0][0]
				log.L(ctx).Debugf("Peer certificate provided Subject=%s Issuer=%s Expiry=%s", cert.Subject, cert.Issuer, cert.NotAfter)
			} else {
				log.L(ctx).Debugf("Peer certificate unverified")
			}
			return nil
		},
	}

	var err error
	var rootCAs *x509.CertPool
	switch {
	case config.CAFile != "":
		rootCAs = x509.NewCertPool()
		var caBytes []byte
		caBytes, err = os.ReadFile(config.CAFile)
		if err == nil && !rootCAs.AppendCertsFromPEM(caBytes) {
			err = i18n.NewError(ctx, msgs.MsgTLSInvalidCAFile)
		}
	case config.CA != "":
		rootCAs = x509.NewCertPool()
		if !rootCAs.AppendCertsFromPEM([]byte(config.CA)) {
			err = i18n.NewError(ctx, msgs.MsgTLSInvalidCAFile)
		}
	default:
		rootCAs, err = x509.SystemCertPool()
	}
	if err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgTLSConfigFailed)
	}
	tlsConfig.RootCAs = rootCAs

	var cert *tls.Certificate
	if config.CertFile != "" && config.KeyFile != "" {
		kp, err := tls.LoadX509KeyPair(config.CertFile, config.KeyFile)
		if err != nil {
			return nil, i18n.WrapError(ctx, err, msgs.MsgTLSInvalidKeyPairFiles)
		}
		cert = &kp
	} else if config.Cert != "" && config.Key != "" {
		kp, err := tls.X509KeyPair([]byte(config.Cert), []byte(config.Key))
		if err != nil {
			return nil, i18n.WrapError(ctx, err, msgs.MsgTLSInvalidKeyPairFiles)
		}
		cert = &kp
	}
	if cert != nil {
		tlsConfig.GetClientCertificate = func(*tls.CertificateRequestInfo) (*tls.Certificate, error) {
			return cert, nil
		}
		tlsConfig.GetCertificate = func(*tls.ClientHelloInfo) (*tls.Certificate, error) {
			return cert, nil
		}
	}

	if tlsType == ServerType {
		tlsConfig.ClientAuth = tls.NoClientCert
		if config.ClientAuth {
			// the certificate identity resolver relies on this chain being verified
			tlsConfig.ClientAuth = tls.RequireAndVerifyClientCert
			tlsConfig.ClientCAs = rootCAs
		}
	}

	tlsConfig.InsecureSkipVerify = config.InsecureSkipHostVerify

	return tlsConfig, nil
}
