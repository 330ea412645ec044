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

// Package trace turns a raw, flat slice of field elements produced by a VM
// execution trace into the external witness the r1cs builder expects,
// validating its length up front instead of letting a mis-sized slice fail
// deep inside constraint construction.
package trace

import (
	"fmt"

	"github.com/leopardracer/jolt/internal/field"
	"github.com/leopardracer/jolt/internal/r1cs"
	"github.com/sirupsen/logrus"
)

// Step is one VM execution step's raw trace values, named the same way the
// builder's input schema names them. A tracer emits one Step per executed
// instruction.
type Step[F field.Element[F]] struct {
	InputStepNum F
	InputPC      F

	ProgA F

	Opcode        F
	RS1           F
	RS2           F
	RD            F
	ImmediateRaw  F
	OpFlagsPacked F

	MemRegARW     [7]F
	MemRegVReads  [7]F
	MemRegVWrites [7]F

	ChunksX     [4]F
	ChunksY     [4]F
	ChunksQuery [4]F

	LookupOutput F

	OpFlags [17]F
}

// Flatten lays a Step out in the builder's external-witness order: every
// input-schema wire except CONSTANT and output_state (§6).
func (s Step[F]) Flatten() []F {
	out := make([]F, 0, r1cs.ExternalWitnessLen())

	out = append(out, s.InputStepNum, s.InputPC, s.ProgA)
	out = append(out, s.Opcode, s.RS1, s.RS2, s.RD, s.ImmediateRaw, s.OpFlagsPacked)
	out = append(out, s.MemRegARW[:]...)
	out = append(out, s.MemRegVReads[:]...)
	out = append(out, s.MemRegVWrites[:]...)
	out = append(out, s.ChunksX[:]...)
	out = append(out, s.ChunksY[:]...)
	out = append(out, s.ChunksQuery[:]...)
	out = append(out, s.LookupOutput)
	out = append(out, s.OpFlags[:]...)

	return out
}

var log = logrus.WithField("component", "trace")

// Load validates a flat slice of trace values against the builder's
// expected external-witness length and returns it unchanged, ready to pass
// to r1cs.Build. It exists so a malformed trace is rejected at the load
// boundary with a descriptive error rather than surfacing as an opaque
// r1cs.Build failure (§7).
func Load[F field.Element[F]](raw []F) ([]F, error) {
	want := r1cs.ExternalWitnessLen()

	if uint(len(raw)) != want {
		log.WithFields(logrus.Fields{
			"want": want,
			"got":  len(raw),
		}).Debug("rejecting malformed trace step")

		return nil, fmt.Errorf("trace: expected %d witness values, got %d", want, len(raw))
	}

	return raw, nil
}
