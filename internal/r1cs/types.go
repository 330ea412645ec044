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

// Package r1cs builds the Rank-1 Constraint System for one VM execution
// step (§1-§4). It is organised, leaf first, as: the witness layout
// (layout.go), the sparse-triple data model (this file), the constraint
// builder with its primitive library (builder.go), the fixed circuit
// recipe (circuit.go) and field emission (emit.go).
package r1cs

// Coeff pairs a wire index with a small signed integer coefficient. The
// coefficient is kept in native int64 form until Emit maps it into the
// field (§3, §9 "Representation of constraints").
type Coeff struct {
	Index uint
	Value int64
}

// LC is an ordered linear combination of coefficients. Its value under a
// witness z is the sum of Value*z[Index], computed in the field (§3).
// Duplicate indices are not canonicalised; the sum is taken as written.
type LC []Coeff

// one is the LC representing the constant wire's value, 1.
func one() LC { return LC{{Index: 0, Value: 1}} }

// wire is a single-term LC referencing one wire with coefficient 1. Used
// throughout the circuit recipe to turn a bare index into an LC argument.
func wire(i uint) LC { return LC{{Index: i, Value: 1}} }

// scaled is a single-term LC referencing one wire with an arbitrary
// coefficient.
func scaled(i uint, c int64) LC { return LC{{Index: i, Value: c}} }

// constant is a single-term LC referencing the constant wire with an
// arbitrary coefficient, i.e. the literal value c.
func constant(c int64) LC { return LC{{Index: 0, Value: c}} }

// sub returns a-b as an LC (append-and-negate; §4.3 "Ownership").
func sub(a, b LC) LC {
	out := make(LC, 0, len(a)+len(b))
	out = append(out, a...)

	for _, t := range b {
		out = append(out, Coeff{Index: t.Index, Value: -t.Value})
	}

	return out
}

// plus returns a+b as an LC.
func plus(a, b LC) LC {
	out := make(LC, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)

	return out
}

// Triple is one sparse (row, column, coefficient) contribution to one of
// A, B or C (§3).
type Triple struct {
	Row   uint
	Index uint
	Value int64
}

// Endian selects the bit/place order used by the combine family of
// primitives (§4.3).
type Endian int

const (
	// BigEndian places the most significant chunk at the lowest index.
	BigEndian Endian = iota
	// LittleEndian places the least significant chunk at the lowest index.
	LittleEndian
)

// combineLC builds the LC ∑ 2^(L*p) * z[start+k], for k in 0..N, with p
// determined by endian (§4.3 "combine").
func combineLC(start, l, n uint, endian Endian) LC {
	lc := make(LC, n)

	for k := uint(0); k < n; k++ {
		var place uint
		if endian == BigEndian {
			place = n - 1 - k
		} else {
			place = k
		}

		lc[k] = Coeff{Index: start + k, Value: int64(1) << (l * place)}
	}

	return lc
}
