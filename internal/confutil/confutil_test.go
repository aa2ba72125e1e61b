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

package confutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIntMin(t *testing.T) {
	assert.Equal(t, 10, IntMin(nil, 1, 10))
	assert.Equal(t, 1, IntMin(P(0), 1, 10))
	assert.Equal(t, 5, IntMin(P(5), 1, 10))
}

func TestBool(t *testing.T) {
	assert.True(t, Bool(nil, true))
	assert.False(t, Bool(P(false), true))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "def", StringNotEmpty(nil, "def"))
	assert.Equal(t, "def", StringNotEmpty(P(""), "def"))
	assert.Equal(t, "val", StringNotEmpty(P("val"), "def"))
	assert.Equal(t, []string{"a"}, StringSlice(nil, []string{"a"}))
	assert.Equal(t, []string{}, StringSlice([]string{}, []string{"a"}))
}

func TestDuration(t *testing.T) {
	assert.Equal(t, 10*time.Second, DurationMin(nil, 0, "10s"))
	assert.Equal(t, 10*time.Second, DurationMin(P("bad"), 0, "10s"))
	assert.Equal(t, 1*time.Second, DurationMin(P("1ms"), 1*time.Second, "10s"))
	assert.Equal(t, 5*time.Minute, DurationMin(P("5m"), 1*time.Second, "10s"))
	assert.Equal(t, int64(2), DurationSeconds(P("1500ms"), 0, "0"))
}

func TestByteSize(t *testing.T) {
	assert.Equal(t, int64(1024), ByteSize(nil, 0, "1Kb"))
	assert.Equal(t, int64(1024), ByteSize(P("bad"), 0, "1Kb"))
	assert.Equal(t, int64(100), ByteSize(P("10"), 100, "1Kb"))
	assert.Equal(t, int64(2*1024*1024), ByteSize(P("2MB"), 0, "1Kb"))
}
