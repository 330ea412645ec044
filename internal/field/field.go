// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package field provides the prime-field abstraction the R1CS builder is
// written against (§4.1, §6 of the circuit specification): zero, one,
// addition, multiplication and additive inverse, plus the one-way adapter
// from signed integer coefficients to field elements.
package field

import "fmt"

// Element is a prime-field element usable as a witness or coefficient value
// inside the circuit builder. The generic, self-referential shape mirrors
// how the corpus keeps its constraint code field-agnostic rather than
// hard-wiring a single curve's element type throughout.
type Element[F any] interface {
	fmt.Stringer
	// Add returns x+y.
	Add(y F) F
	// Sub returns x-y.
	Sub(y F) F
	// Mul returns x*y.
	Mul(y F) F
	// Neg returns -x.
	Neg() F
	// IsZero reports whether x is the additive identity.
	IsZero() bool
	// SetUint64 sets x to v and returns it.
	SetUint64(v uint64) F
}

// Zero constructs the additive identity of F.
func Zero[F Element[F]]() F {
	var e F
	return e
}

// One constructs the multiplicative identity of F.
func One[F Element[F]]() F {
	var e F
	return e.SetUint64(1)
}

// FromInt64 implements the field adapter of §4.1: a signed 64-bit
// coefficient maps to a field element by embedding its absolute value and,
// for negative coefficients, negating the result. This only fails to embed
// faithfully when the field's characteristic is smaller than |c|, which the
// 253-bit field used throughout this module excludes for every coefficient
// the circuit recipe produces.
func FromInt64[F Element[F]](c int64) F {
	var e F
	if c >= 0 {
		return e.SetUint64(uint64(c))
	}

	return e.SetUint64(uint64(-c)).Neg()
}
