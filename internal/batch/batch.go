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

// Package batch concatenates several independently built per-step R1CS
// instances into one, renumbering rows and columns so each step occupies
// its own disjoint block. This is the design note in spec §9 ("a batch
// prover can build steps in parallel and concatenate matrices with
// row-offset renumbering") made concrete: steps share no wires, so
// concatenation is block-diagonal rather than requiring any cross-step
// constraints.
package batch

import (
	"github.com/leopardracer/jolt/internal/field"
	"github.com/leopardracer/jolt/internal/r1cs"
)

// Instance is the result of concatenating one or more per-step
// r1cs.Result values: the union of their constraints and variables, each
// step's rows and columns shifted by the running totals of the steps
// before it.
type Instance[F field.Element[F]] struct {
	A, B, C        []r1cs.Triple
	NumConstraints uint
	NumVariables   uint
	StepOffsets    []StepOffset
	Z              []F
}

// StepOffset records where one step's rows and columns begin in the
// concatenated instance, so a caller can translate a failing row back to
// the step that produced it.
type StepOffset struct {
	RowStart uint
	ColStart uint
	NumRows  uint
	NumCols  uint
}

// Concat renumbers and concatenates steps in order. Every step must have
// been built with the same builder (same field, same schema); Concat does
// not itself validate that, since r1cs.Result carries no field-identity
// tag to check against.
//
// If every input step carries a witness (non-nil Z), the returned
// Instance's Z is their concatenation too; if any step is matrix-only, the
// returned Z is nil.
func Concat[F field.Element[F]](steps []r1cs.Result[F]) Instance[F] {
	var out Instance[F]

	withWitness := len(steps) > 0

	for _, s := range steps {
		if s.Z == nil {
			withWitness = false
		}
	}

	for _, s := range steps {
		rowOffset := out.NumConstraints
		colOffset := out.NumVariables

		out.A = append(out.A, shiftTriples(s.A, rowOffset, colOffset)...)
		out.B = append(out.B, shiftTriples(s.B, rowOffset, colOffset)...)
		out.C = append(out.C, shiftTriples(s.C, rowOffset, colOffset)...)

		out.StepOffsets = append(out.StepOffsets, StepOffset{
			RowStart: rowOffset,
			ColStart: colOffset,
			NumRows:  s.NumConstraints,
			NumCols:  s.NumVariables,
		})

		out.NumConstraints += s.NumConstraints
		out.NumVariables += s.NumVariables

		if withWitness {
			out.Z = append(out.Z, s.Z...)
		}
	}

	return out
}

func shiftTriples(ts []r1cs.Triple, rowOffset, colOffset uint) []r1cs.Triple {
	out := make([]r1cs.Triple, len(ts))

	for i, t := range ts {
		out[i] = r1cs.Triple{
			Row:   t.Row + rowOffset,
			Index: t.Index + colOffset,
			Value: t.Value,
		}
	}

	return out
}
