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

package msgs

import (
	"fmt"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

const ledgerGatewayPrefix = "LG01"

var registered = false
var ffe = func(key, translation string, statusHint ...int) i18n.ErrorMessageKey {
	if !registered {
		i18n.RegisterPrefix(ledgerGatewayPrefix, "Ledger Gateway")
		registered = true
	}
	if !strings.HasPrefix(key, ledgerGatewayPrefix) {
		panic(fmt.Errorf("must have prefix '%s': %s", ledgerGatewayPrefix, key))
	}
	return i18n.FFE(language.AmericanEnglish, key, translation, statusHint...)
}

var (
	// Config LG0100XX
	MsgConfigFileMissing    = ffe("LG010000", "Configuration file not found at %s")
	MsgConfigFileReadError  = ffe("LG010001", "Failed to read configuration file %s: %s")
	MsgConfigFileParseError = ffe("LG010002", "Failed to parse configuration file: %s")
	MsgConfigEnvParseError  = ffe("LG010003", "Failed to parse environment configuration: %s")
	MsgConfigFileNotSet     = ffe("LG010004", "No configuration file specified. Use --config or LEDGERGW_CONFIG_FILE")

	// HTTP server LG0101XX
	MsgHTTPServerMissingPort = ffe("LG010100", "HTTP server port must be specified for '%s'")
	MsgHTTPServerStartFailed = ffe("LG010101", "Failed to start server on '%s'")

	// TLS LG0102XX
	MsgTLSConfigFailed        = ffe("LG010200", "Failed to initialize TLS configuration")
	MsgTLSInvalidCAFile       = ffe("LG010201", "Invalid CA certificates file")
	MsgTLSInvalidKeyPairFiles = ffe("LG010202", "Invalid certificate and key pair files")

	// Ledger connectors LG0103XX
	MsgLedgerInvalidHTTPURL   = ffe("LG010300", "Invalid HTTP URL for ledger connection: '%s'")
	MsgLedgerUnknownType      = ffe("LG010301", "Unknown ledger connector type '%s'")
	MsgLedgerChaincodeMissing = ffe("LG010302", "Ledger chaincode must be configured")
	MsgLedgerRequestFailed    = ffe("LG010303", "Ledger %s of '%s' failed")
	MsgLedgerErrorStatus      = ffe("LG010304", "Ledger %s of '%s' returned status %d: %s")
	MsgLedgerRPCError         = ffe("LG010305", "Ledger %s of '%s' failed: %s")

	// Identity resolvers LG0104XX
	MsgIdentityUnknownType       = ffe("LG010400", "Unknown identity resolver type '%s'")
	MsgIdentityHeaderMissing     = ffe("LG010401", "No caller identity supplied in header '%s'")
	MsgIdentityBearerMissing     = ffe("LG010402", "Authorization bearer token missing")
	MsgIdentityTokenInvalid      = ffe("LG010403", "Authorization token invalid: %s")
	MsgIdentityClaimMissing      = ffe("LG010404", "Claim '%s' missing from authorization token")
	MsgIdentityJWTSecretMissing  = ffe("LG010405", "JWT identity resolver requires a signing secret")
	MsgIdentityNoClientCert      = ffe("LG010406", "No verified client certificate presented")
	MsgIdentityCertNoCommonName  = ffe("LG010407", "Client certificate subject has no common name")
	MsgIdentityJWTInvalidMethods = ffe("LG010408", "JWT identity resolver only supports HMAC signing methods: %s")

	// Gateway LG0105XX
	MsgGatewayBodyReadFailed  = ffe("LG010500", "Failed to read request body")
	MsgGatewayBodyParseFailed = ffe("LG010501", "Request body is not valid JSON")
)
