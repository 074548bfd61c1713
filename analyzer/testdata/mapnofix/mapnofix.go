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

// Package mapnofix collects shapes the manual-map check must stay
// silent on.
package mapnofix

import "test/option"

// Identity mapping is a plain copy, not a map.
func identity(o option.Option[int]) option.Option[int] {
	if v, ok := o.Get(); ok {
		return option.Of(v)
	}

	return option.Empty[int]()
}

// The comma-ok boolean has no closure equivalent.
func usesOk(o option.Option[int]) option.Option[bool] {
	if v, ok := o.Get(); ok {
		return option.Of(v > 0 && ok)
	}

	return option.Empty[bool]()
}

// The payload takes the scrutinee's address; relocation would
// interleave the write with the combinator's read.
func conflict(o option.Option[int]) option.Option[int] {
	if v, ok := o.Get(); ok {
		return option.Of(reset(&o, v))
	}

	return option.Empty[int]()
}

func reset(o *option.Option[int], v int) int {
	*o = option.Empty[int]()

	return v
}

// Extra statements in the present arm.
func sideEffect(o option.Option[int]) option.Option[int] {
	if v, ok := o.Get(); ok {
		v *= 2

		return option.Of(v)
	}

	return option.Empty[int]()
}

// The absent arm produces a present value.
func wrongAbsent(o option.Option[int]) option.Option[int] {
	if v, ok := o.Get(); ok {
		return option.Of(v + 1)
	}

	return option.Of(0)
}

// Arms assign different variables.
func twoTargets(o option.Option[int]) (option.Option[int], option.Option[int]) {
	var a, b option.Option[int]
	if v, ok := o.Get(); ok {
		a = option.Of(v + 1)
	} else {
		b = option.Empty[int]()
	}

	return a, b
}

// A discarded comma-ok boolean is not the destructuring pattern.
func blankOk(o option.Option[int]) option.Option[int] {
	if v, _ := o.Get(); v > 0 {
		return option.Of(v + 1)
	}

	return option.Empty[int]()
}
