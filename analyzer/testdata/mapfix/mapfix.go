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

package mapfix

import (
	"strconv"

	"test/option"
)

type user struct {
	name string
}

// Assignment form with both arms assigning the same variable.
func incr(o option.Option[int]) option.Option[int] {
	var r option.Option[int]
	if v, ok := o.Get(); ok { // want "use Map"
		r = option.Of(v + 1)
	} else {
		r = option.Empty[int]()
	}

	return r
}

// Return form with an else arm.
func double(o option.Option[int]) option.Option[int] {
	if v, ok := o.Get(); ok { // want "use Map"
		return option.Of(v * 2)
	} else {
		return option.Empty[int]()
	}
}

// Return form with a sibling return instead of an else arm.
func name(o option.Option[user]) option.Option[string] {
	if u, ok := o.Get(); ok { // want "use Map"
		return option.Of(u.name)
	}

	return option.Empty[string]()
}

// Negated condition swaps the arms.
func swap(o option.Option[int]) option.Option[int] {
	if v, ok := o.Get(); !ok { // want "use Map"
		return option.Empty[int]()
	} else {
		return option.Of(v - 1)
	}
}

// A single application of a plain function is passed point-free.
func str(o option.Option[int]) option.Option[string] {
	if v, ok := o.Get(); ok { // want "use Map"
		return option.Of(toString(v))
	}

	return option.Empty[string]()
}

func toString(v int) string { return strconv.Itoa(v) }

// Wildcard binding maps to a blank closure parameter.
func unit(o option.Option[int]) option.Option[string] {
	if _, ok := o.Get(); ok { // want "use Map"
		return option.Of("set")
	}

	return option.Empty[string]()
}

// Pointer scrutinees gain a deref adapter.
func deref(p *option.Option[int]) option.Option[int] {
	if v, ok := p.Get(); ok { // want "use Map"
		return option.Of(v + 1)
	}

	return option.Empty[int]()
}
