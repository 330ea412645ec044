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

// Package bls12377 is the concrete 253-bit prime field backend used by the
// circuit (§4.1, §6): the scalar field of the BLS12-377 curve, as supplied
// by gnark-crypto.
package bls12377

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Element wraps fr.Element to conform to field.Element[Element]. The zero
// value is the field's additive identity, so it is always safe to use
// without explicit construction.
type Element struct {
	fr.Element
}

// Add returns x+y.
func (x Element) Add(y Element) Element {
	var z Element
	z.Element.Add(&x.Element, &y.Element)

	return z
}

// Sub returns x-y.
func (x Element) Sub(y Element) Element {
	var z Element
	z.Element.Sub(&x.Element, &y.Element)

	return z
}

// Mul returns x*y.
func (x Element) Mul(y Element) Element {
	var z Element
	z.Element.Mul(&x.Element, &y.Element)

	return z
}

// Neg returns -x.
func (x Element) Neg() Element {
	var z Element
	z.Element.Neg(&x.Element)

	return z
}

// IsZero reports whether x is the additive identity.
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// SetUint64 sets x to v and returns it.
func (x Element) SetUint64(v uint64) Element {
	x.Element.SetUint64(v)
	return x
}

// String returns the decimal representation of x.
func (x Element) String() string {
	return x.Element.String()
}
