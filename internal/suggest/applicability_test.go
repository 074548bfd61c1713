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

package suggest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "fillmore-labs.com/optfmt/internal/suggest"
)

func TestApplicabilityMin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, HasPlaceholders, MachineApplicable.Min(HasPlaceholders))
	assert.Equal(t, HasPlaceholders, HasPlaceholders.Min(MachineApplicable))
	assert.Equal(t, Unspecified, MaybeIncorrect.Min(Unspecified))
	assert.Equal(t, MachineApplicable, MachineApplicable.Min(MachineApplicable))
}

func TestApplicabilityString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		app  Applicability
		want string
	}{
		{app: Unspecified, want: "non"},
		{app: HasPlaceholders, want: "plh"},
		{app: MaybeIncorrect, want: "chk"},
		{app: MachineApplicable, want: "fix"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.app.String())
	}
}
