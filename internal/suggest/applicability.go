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

package suggest

// Applicability rates how safely a suggested rewrite can be applied.
// Values are ordered from weakest to strongest; a fix assembled from
// several sub-decisions is only as strong as its weakest contribution.
type Applicability uint8

//go:generate go tool stringer -type Applicability -linecomment
const (
	// Unspecified marks a suggestion with unknown confidence.
	Unspecified Applicability = iota // non

	// HasPlaceholders marks a suggestion containing placeholder text a
	// human must complete.
	HasPlaceholders // plh

	// MaybeIncorrect marks a suggestion that applies cleanly but may
	// change behavior in edge cases.
	MaybeIncorrect // chk

	// MachineApplicable marks a suggestion that is safe to apply
	// automatically.
	MachineApplicable // fix
)

// Min returns the weaker of two applicability ratings.
func (a Applicability) Min(b Applicability) Applicability {
	if b < a {
		return b
	}

	return a
}
