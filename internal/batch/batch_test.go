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
package batch

import (
	"testing"

	"github.com/leopardracer/jolt/internal/field/bls12377"
	"github.com/leopardracer/jolt/internal/r1cs"
	"github.com/leopardracer/jolt/pkg/util/assert"
)

func TestConcatTwoMatrixOnlyStepsSumsCounts(t *testing.T) {
	step1, ok1 := r1cs.Build[bls12377.Element](nil)
	step2, ok2 := r1cs.Build[bls12377.Element](nil)
	assert.True(t, ok1)
	assert.True(t, ok2)

	inst := Concat([]r1cs.Result[bls12377.Element]{step1, step2})

	assert.Equal(t, step1.NumConstraints+step2.NumConstraints, inst.NumConstraints)
	assert.Equal(t, step1.NumVariables+step2.NumVariables, inst.NumVariables)
	assert.Equal(t, len(step1.A)+len(step2.A), len(inst.A))
	assert.True(t, inst.Z == nil)
}

func TestConcatShiftsSecondStepsIndices(t *testing.T) {
	step1, ok1 := r1cs.Build[bls12377.Element](nil)
	step2, ok2 := r1cs.Build[bls12377.Element](nil)
	assert.True(t, ok1)
	assert.True(t, ok2)

	inst := Concat([]r1cs.Result[bls12377.Element]{step1, step2})

	assert.Equal(t, 2, len(inst.StepOffsets))
	assert.Equal(t, uint(0), inst.StepOffsets[0].RowStart)
	assert.Equal(t, step1.NumConstraints, inst.StepOffsets[1].RowStart)
	assert.Equal(t, step1.NumVariables, inst.StepOffsets[1].ColStart)

	firstRowOfSecondStep := inst.A[len(step1.A)]
	assert.Equal(t, step1.NumConstraints+step2.A[0].Row, firstRowOfSecondStep.Row)
	assert.Equal(t, step1.NumVariables+step2.A[0].Index, firstRowOfSecondStep.Index)
}

func TestConcatPreservesWitnessWhenAllStepsHaveOne(t *testing.T) {
	w := make([]bls12377.Element, r1cs.ExternalWitnessLen())

	step1, ok1 := r1cs.Build[bls12377.Element](w)
	step2, ok2 := r1cs.Build[bls12377.Element](w)
	assert.True(t, ok1)
	assert.True(t, ok2)

	inst := Concat([]r1cs.Result[bls12377.Element]{step1, step2})

	assert.Equal(t, len(step1.Z)+len(step2.Z), len(inst.Z))
}
