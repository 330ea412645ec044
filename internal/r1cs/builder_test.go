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

import (
	"testing"

	"github.com/leopardracer/jolt/internal/field/bls12377"
	"github.com/leopardracer/jolt/pkg/util/assert"
)

type elt = bls12377.Element

func e(v int64) elt {
	if v < 0 {
		return elt{}.SetUint64(uint64(-v)).Neg()
	}

	return elt{}.SetUint64(uint64(v))
}

func TestAssignAuxGrowsZWithWitness(t *testing.T) {
	b := newBuilder[elt](make([]elt, totalInputWidth()))

	base := b.NumVariables
	idx := b.assignAux()

	assert.Equal(t, base, idx)
	assert.Equal(t, base+1, b.NumVariables)
	assert.Equal(t, uint(len(b.Z)), b.NumVariables)
	assert.True(t, b.Z[idx].IsZero())
}

func TestAssignAuxWithoutWitnessLeavesZNil(t *testing.T) {
	b := newBuilder[elt](nil)

	b.assignAux()

	assert.True(t, b.Z == nil)
}

func TestMultiplyComputesProductUnderWitness(t *testing.T) {
	z := make([]elt, totalInputWidth())
	z[0] = e(1)
	z[1] = e(6)
	z[2] = e(7)

	b := newBuilder[elt](z)
	w := b.Multiply(wire(1), wire(2))

	assert.Equal(t, e(42).String(), b.Z[w].String())
	assert.Equal(t, uint(1), b.NumConstraints)
}

func TestIfElseSelectsXWhenChoiceIsZero(t *testing.T) {
	z := make([]elt, totalInputWidth())
	z[0] = e(1)
	z[1] = e(0)
	z[2] = e(11)
	z[3] = e(22)

	b := newBuilder[elt](z)
	w := b.IfElse(wire(1), wire(2), wire(3))

	assert.Equal(t, e(11).String(), b.Z[w].String())
}

func TestIfElseSelectsYWhenChoiceIsOne(t *testing.T) {
	z := make([]elt, totalInputWidth())
	z[0] = e(1)
	z[1] = e(1)
	z[2] = e(11)
	z[3] = e(22)

	b := newBuilder[elt](z)
	w := b.IfElse(wire(1), wire(2), wire(3))

	assert.Equal(t, e(22).String(), b.Z[w].String())
}

func TestCombineLEBuildsLittleEndianValue(t *testing.T) {
	z := make([]elt, totalInputWidth())
	z[0] = e(1)
	z[1] = e(0x02) // least significant byte
	z[2] = e(0x01) // most significant byte

	b := newBuilder[elt](z)
	w := b.CombineLE(1, 8, 2)

	assert.Equal(t, e(0x0102).String(), b.Z[w].String())
}

func TestCombineBEBuildsBigEndianValue(t *testing.T) {
	z := make([]elt, totalInputWidth())
	z[0] = e(1)
	z[1] = e(0x01) // most significant byte
	z[2] = e(0x02) // least significant byte

	b := newBuilder[elt](z)
	w := b.CombineBE(1, 8, 2)

	assert.Equal(t, e(0x0102).String(), b.Z[w].String())
}

func TestEqAssignsThenConstrains(t *testing.T) {
	z := make([]elt, totalInputWidth())
	z[0] = e(1)
	z[1] = e(9)

	b := newBuilder[elt](z)
	b.Eq(plus(wire(1), constant(1)), 2, true)

	assert.Equal(t, e(10).String(), b.Z[2].String())
	assert.Equal(t, uint(1), b.NumConstraints)
}

func TestConstrProdZeroAppendsTwoRows(t *testing.T) {
	b := newBuilder[elt](nil)

	constraintsBefore, auxBefore := b.NumConstraints, b.NumAux
	b.ConstrProdZero(wire(1), wire(2), wire(3))

	assert.Equal(t, constraintsBefore+2, b.NumConstraints)
	assert.Equal(t, auxBefore+1, b.NumAux)
}

func TestNewConstraintPreservesCoefficientOrder(t *testing.T) {
	b := newBuilder[elt](nil)

	b.ConstrABC(LC{{Index: 5, Value: 3}, {Index: 1, Value: -2}}, one(), wire(9))

	assert.Equal(t, 2, len(b.A))
	assert.Equal(t, uint(5), b.A[0].Index)
	assert.Equal(t, int64(3), b.A[0].Value)
	assert.Equal(t, uint(1), b.A[1].Index)
	assert.Equal(t, int64(-2), b.A[1].Value)
}
