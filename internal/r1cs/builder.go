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

// Builder is an append-only accumulator of sparse triples for A, B and C
// (§3, §4.3). A single builder is built by one caller on one thread (§5);
// it is consumed exactly once by the circuit recipe and then by Emit.
//
// When z is non-nil the builder doubles as a witness extender: every
// primitive that determines a new wire value evaluates its input LCs under
// z and writes the result back before appending rows (§4.3 "Witness-value
// policy"), so a single traversal both defines the circuit and completes
// the witness.
type Builder[F field.Element[F]] struct {
	A, B, C        []Triple
	NumConstraints uint
	NumVariables   uint
	NumAux         uint
	Z              []F
}

// newBuilder constructs a builder over the fixed input region. When z is
// non-nil it must already hold exactly totalInputWidth() elements.
func newBuilder[F field.Element[F]](z []F) *Builder[F] {
	return &Builder[F]{
		NumVariables: totalInputWidth(),
		Z:            z,
	}
}

// hasWitness reports whether this builder is extending a concrete witness.
func (b *Builder[F]) hasWitness() bool {
	return b.Z != nil
}

// assignAux allocates a new aux wire, extending z with a placeholder zero
// when a witness is present, and returns its index (§4.3, §9 "Aux wire
// allocation").
func (b *Builder[F]) assignAux() uint {
	idx := b.NumVariables

	if b.hasWitness() {
		var zero F
		b.Z = append(b.Z, zero)
	}

	b.NumAux++
	b.NumVariables++

	return idx
}

// evalLC computes the value of lc under the current witness.
func (b *Builder[F]) evalLC(lc LC) F {
	var sum F

	for _, c := range lc {
		term := field.FromInt64[F](c.Value).Mul(b.Z[c.Index])
		sum = sum.Add(term)
	}

	return sum
}

// newConstraint appends one row (a)*(b)=(c) to A, B and C respectively,
// preserving the order coefficients were given in within the row (§4.5).
func (b *Builder[F]) newConstraint(a, bb, c LC) {
	row := b.NumConstraints

	for _, t := range a {
		b.A = append(b.A, Triple{Row: row, Index: t.Index, Value: t.Value})
	}

	for _, t := range bb {
		b.B = append(b.B, Triple{Row: row, Index: t.Index, Value: t.Value})
	}

	for _, t := range c {
		b.C = append(b.C, Triple{Row: row, Index: t.Index, Value: t.Value})
	}

	b.NumConstraints++
}

// ConstrABC asserts a·b = c (§4.3 constr_abc). No aux wire is introduced.
func (b *Builder[F]) ConstrABC(a, bb, c LC) {
	b.newConstraint(a, bb, c)
}

// EqSimple asserts z[i] = z[j] (§4.3 eq_simple).
func (b *Builder[F]) EqSimple(i, j uint) {
	b.newConstraint(wire(i), one(), wire(j))
}

// Eq asserts value(lc) = z[j]. When assign is true and a witness is
// present, z[j] is set to value(lc) before the row is appended (§4.3 eq).
func (b *Builder[F]) Eq(lc LC, j uint, assign bool) {
	if assign && b.hasWitness() {
		b.Z[j] = b.evalLC(lc)
	}

	b.newConstraint(lc, one(), wire(j))
}

// Combine asserts ∑ 2^(L*p) * z[start+k] = z[j] for an existing wire j,
// without allocating an aux wire (§4.3 combine).
func (b *Builder[F]) Combine(start, l, n, j uint, endian Endian) {
	b.newConstraint(combineLC(start, l, n, endian), one(), wire(j))
}

// combineAux is the shared implementation of CombineBE/CombineLE: it
// allocates the result wire, assigns its value when a witness is present,
// and appends the determining row.
func (b *Builder[F]) combineAux(start, l, n uint, endian Endian) uint {
	j := b.assignAux()
	lc := combineLC(start, l, n, endian)

	if b.hasWitness() {
		b.Z[j] = b.evalLC(lc)
	}

	b.newConstraint(lc, one(), wire(j))

	return j
}

// CombineBE allocates an aux wire holding the big-endian combination of N
// L-bit wires starting at start, and returns its index (§4.3 combine_be).
func (b *Builder[F]) CombineBE(start, l, n uint) uint {
	return b.combineAux(start, l, n, BigEndian)
}

// CombineLE allocates an aux wire holding the little-endian combination of
// N L-bit wires starting at start, and returns its index (§4.3 combine_le).
func (b *Builder[F]) CombineLE(start, l, n uint) uint {
	return b.combineAux(start, l, n, LittleEndian)
}

// Multiply allocates an aux wire w, asserts x·y = w and returns w's index
// (§4.3 multiply).
func (b *Builder[F]) Multiply(x, y LC) uint {
	w := b.assignAux()

	if b.hasWitness() {
		b.Z[w] = b.evalLC(x).Mul(b.evalLC(y))
	}

	b.newConstraint(x, y, wire(w))

	return w
}

// IfElse allocates an aux wire w, asserts choice·(y−x) = w−x (so choice=0
// selects x and choice=1 selects y) and returns w's index (§4.3 if_else).
// choice is not required to be boolean: w is always x + choice·(y−x), the
// same affine identity the row enforces, so a non-boolean choice (as arises
// from multiplying two flag wires together) is carried through rather than
// forced into a strict selection.
func (b *Builder[F]) IfElse(choice, x, y LC) uint {
	w := b.assignAux()

	yMinusX := sub(y, x)
	wMinusX := sub(wire(w), x)

	if b.hasWitness() {
		b.Z[w] = b.evalLC(x).Add(b.evalLC(choice).Mul(b.evalLC(yMinusX)))
	}

	b.newConstraint(choice, yMinusX, wMinusX)

	return w
}

// IfElseSimple is the single-index convenience form of IfElse (§4.3
// if_else_simple).
func (b *Builder[F]) IfElseSimple(choice, x, y uint) uint {
	return b.IfElse(wire(choice), wire(x), wire(y))
}

// ConstrProdZero allocates an aux wire w, asserts x·y = w and w·z = 0
// (§4.3 constr_prod_0). This enforces that z vanishes whenever x·y does
// not: it is used to gate a constraint on two independent conditions both
// being non-zero.
func (b *Builder[F]) ConstrProdZero(x, y, z LC) {
	w := b.assignAux()

	if b.hasWitness() {
		b.Z[w] = b.evalLC(x).Mul(b.evalLC(y))
	}

	b.newConstraint(x, y, wire(w))
	b.newConstraint(wire(w), z, LC{})
}
