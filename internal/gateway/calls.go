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

package gateway

// Each ledger operation has a typed argument struct. Args() fixes the positional order
// the chaincode expects, so the order lives in exactly one place per operation.

type ledgerCall interface {
	Args() []string
}

// callerScopedCall is any operation whose only argument is the caller's own identity
type callerScopedCall struct {
	CallerID string
}

func (c *callerScopedCall) Args() []string {
	return []string{c.CallerID}
}

type getThingCall struct {
	ThingID string
}

func (c *getThingCall) Args() []string {
	return []string{c.ThingID}
}

type addThingCall struct {
	ThingID string
	Thing   string // JSON text
}

func (c *addThingCall) Args() []string {
	return []string{c.ThingID, c.Thing}
}

type addResourceCall struct {
	Owner string
	Hash  string
	Path  string
}

func (c *addResourceCall) Args() []string {
	return []string{c.Owner, c.Hash, c.Path}
}

type getResourceCall struct {
	Owner string
	Hash  string
}

func (c *getResourceCall) Args() []string {
	return []string{c.Owner, c.Hash}
}

type createBrokerageRequestCall struct {
	Request string // JSON text of the whole request body
}

func (c *createBrokerageRequestCall) Args() []string {
	return []string{c.Request}
}

type getBrokerageRequestCall struct {
	RequestID string
}

func (c *getBrokerageRequestCall) Args() []string {
	return []string{c.RequestID}
}

type applicationUpdateType string

const (
	applicationUpdateMeeting applicationUpdateType = "MEETING"
	applicationUpdateVideo   applicationUpdateType = "VIDEO"
)

type updateBrokerageApplicationCall struct {
	UpdateType applicationUpdateType
	Data       string
	RequestID  string
}

func (c *updateBrokerageApplicationCall) Args() []string {
	return []string{string(c.UpdateType), c.Data, c.RequestID}
}

type createUserCall struct {
	RequestID string // JSON text
}

func (c *createUserCall) Args() []string {
	return []string{c.RequestID}
}

type updateUserCall struct {
	User string // JSON text of the whole request body
}

func (c *updateUserCall) Args() []string {
	return []string{c.User}
}

const userLookupByStatus = "STATUS"

type getUserCall struct {
	Status    string
	RequestID string
}

func (c *getUserCall) Args() []string {
	return []string{userLookupByStatus, c.Status, c.RequestID}
}
