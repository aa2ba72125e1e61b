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
	"math"
	"time"

	"github.com/docker/go-units"
)

// Simple helpers for resolving optional config values against their defaults.
// Most packages depend on this package, including the "log" package - so we can't use the logging framework.

func IntMin(iVal *int, min int, def int) int {
	if iVal == nil {
		return def
	} else if *iVal < min {
		return min
	}
	return *iVal
}

func Bool(bVal *bool, def bool) bool {
	if bVal == nil {
		return def
	}
	return *bVal
}

func StringNotEmpty(sVal *string, def string) string {
	if sVal == nil || *sVal == "" {
		return def
	}
	return *sVal
}

func StringSlice(sVal []string, def []string) []string {
	if sVal == nil {
		return def
	}
	return sVal
}

func DurationMin(sVal *string, min time.Duration, def string) time.Duration {
	var dVal *time.Duration
	if sVal != nil {
		d, err := time.ParseDuration(*sVal)
		if err == nil {
			dVal = &d
		}
	}
	if dVal == nil {
		defDuration, _ := time.ParseDuration(def)
		dVal = &defDuration
	} else if *dVal < min {
		return min
	}
	return *dVal
}

func DurationSeconds(sVal *string, min time.Duration, def string) int64 {
	d := DurationMin(sVal, min, def)
	return (int64)(math.Ceil(d.Seconds()))
}

func ByteSize(sVal *string, min int64, def string) int64 {
	var iVal *int64
	if sVal != nil {
		i, err := units.RAMInBytes(*sVal)
		if err == nil {
			iVal = &i
		}
	}
	if iVal == nil {
		i, _ := units.RAMInBytes(def)
		iVal = &i
	} else if *iVal < min {
		return min
	}
	return *iVal
}

func P[T any](v T) *T {
	return &v
}
