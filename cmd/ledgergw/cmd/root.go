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

package cmd

import (
	"context"
	"os"

	"github.com/kaleido-io/ledger-gateway/internal/log"
	"github.com/kaleido-io/ledger-gateway/pkg/bootstrap"
	"github.com/spf13/cobra"
)

var configFile string

// run is swapped in tests
var run = bootstrap.Run

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ledgergw",
		Short:         "HTTP gateway to a permissioned ledger",
		Long:          "Serves a REST API in which each route submits one chaincode query or transaction on behalf of the calling identity",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			f, err := bootstrap.ResolveConfigFile(ctx, configFile)
			if err != nil {
				return err
			}
			if rc := run(f); rc != bootstrap.RC_OK {
				return errExit(rc)
			}
			return nil
		},
	}
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file (default from LEDGERGW_CONFIG_FILE)")
	return rootCmd
}

type errExit bootstrap.RC

func (e errExit) Error() string {
	return "ledger gateway exited with failure"
}

func Execute() int {
	return execute(os.Args[1:])
}

func execute(args []string) int {
	ctx := context.Background()
	rootCmd := newRootCommand()
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.L(ctx).Error(err.Error())
		if rc, ok := err.(errExit); ok {
			return int(rc)
		}
		return int(bootstrap.RC_FAIL)
	}
	return int(bootstrap.RC_OK)
}
