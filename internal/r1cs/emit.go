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
package r1cs

import "github.com/leopardracer/jolt/internal/field"

// FieldTriple is one sparse (row, column, coefficient) contribution with
// its coefficient mapped into the field (§4.5).
type FieldTriple[F field.Element[F]] struct {
	Row   uint
	Index uint
	Value F
}

// Matrices is A, B and C fully mapped into the field, ready to hand to a
// prover (§4.5).
type Matrices[F field.Element[F]] struct {
	A, B, C []FieldTriple[F]
}

// Emit converts a Result's int64-coefficient triples into field elements,
// preserving each triple's original order within its matrix (§4.5,
// §8 "matrix emission is order-preserving").
func Emit[F field.Element[F]](res Result[F]) Matrices[F] {
	return Matrices[F]{
		A: convertTriples[F](res.A),
		B: convertTriples[F](res.B),
		C: convertTriples[F](res.C),
	}
}

func convertTriples[F field.Element[F]](ts []Triple) []FieldTriple[F] {
	out := make([]FieldTriple[F], len(ts))

	for i, t := range ts {
		out[i] = FieldTriple[F]{
			Row:   t.Row,
			Index: t.Index,
			Value: field.FromInt64[F](t.Value),
		}
	}

	return out
}
