// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package analyzer

import (
	"fillmore-labs.com/optfmt/internal/config"
)

// runOptions represent the configuration of an optfmt analyzer instance.
type runOptions struct {
	// checks represents the checks to be enabled.
	checks config.BitMask[config.Check]

	// behavior holds behavioral options.
	behavior config.BitMask[config.Behavior]
}

// defaultRunOptions initializes and returns a new runOptions instance with default values.
// The print-call check is opt-in; everything else is on.
func defaultRunOptions() *runOptions {
	return &runOptions{
		checks: config.NewBitMask(
			config.ManualMapCheck,
			config.NewlineCheck,
			config.EmptyStringCheck,
			config.LiteralCheck,
			config.DebugCheck,
		),
		behavior: config.NewBitMask[config.Behavior](),
	}
}
