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
package bls12377

import (
	"testing"

	"github.com/leopardracer/jolt/internal/field"
	"github.com/leopardracer/jolt/pkg/util/assert"
)

func init() {
	// make sure the interface is adhered to.
	_ = field.Element[Element](Element{})
}

func TestZeroIsAdditiveIdentity(t *testing.T) {
	var x Element
	x = x.SetUint64(42)

	assert.True(t, x.Add(Element{}).String() == x.String())
	assert.True(t, Element{}.IsZero())
	assert.False(t, x.IsZero())
}

func TestAddSubRoundTrip(t *testing.T) {
	a := Element{}.SetUint64(17)
	b := Element{}.SetUint64(5)

	sum := a.Add(b)
	back := sum.Sub(b)

	assert.Equal(t, a.String(), back.String())
}

func TestNegIsAdditiveInverse(t *testing.T) {
	a := Element{}.SetUint64(123)
	n := a.Neg()

	assert.True(t, a.Add(n).IsZero())
}

func TestFromInt64NegationRoundTrips(t *testing.T) {
	for _, c := range []int64{0, 1, -1, 4096, -4096, 1 << 32, -(1 << 32)} {
		pos := field.FromInt64[Element](c)
		neg := field.FromInt64[Element](-c)

		assert.True(t, pos.Add(neg).IsZero(), "field(%d) + field(%d) != 0", c, -c)
	}
}

func TestMulByOneIsIdentity(t *testing.T) {
	a := Element{}.SetUint64(999)
	one := field.One[Element]()

	assert.Equal(t, a.String(), a.Mul(one).String())
}
