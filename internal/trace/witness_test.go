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
package trace

import (
	"testing"

	"github.com/leopardracer/jolt/internal/field/bls12377"
	"github.com/leopardracer/jolt/internal/r1cs"
	"github.com/leopardracer/jolt/pkg/util/assert"
)

func TestStepFlattenProducesExternalWitnessLength(t *testing.T) {
	var s Step[bls12377.Element]

	assert.Equal(t, r1cs.ExternalWitnessLen(), uint(len(s.Flatten())))
}

func TestLoadAcceptsCorrectLength(t *testing.T) {
	var s Step[bls12377.Element]

	loaded, err := Load(s.Flatten())

	assert.True(t, err == nil)
	assert.Equal(t, int(r1cs.ExternalWitnessLen()), len(loaded))
}

func TestLoadRejectsWrongLength(t *testing.T) {
	_, err := Load(make([]bls12377.Element, 3))

	assert.True(t, err != nil)
}
