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

// Package option is a minimal optional type for analyzer tests.
package option

// Option holds a value of type T or nothing.
type Option[T any] struct {
	value T
	ok    bool
}

// Of returns an Option holding value.
func Of[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// Empty returns an Option holding nothing.
func Empty[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Map applies fn to the held value, if any.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.ok {
		return Option[U]{}
	}

	return Option[U]{value: fn(o.value), ok: true}
}
