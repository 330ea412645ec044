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

// group names one contiguous named range of the witness vector z (§3,
// "Input schema"). The table is a fixed compile-time constant per the
// Non-goals of §1: word width, opcode set and chunk counts are not
// runtime-configurable.
type group struct {
	name  string
	width uint
}

// schema is the fixed, ordered layout of the input region of z. Replacing
// this table with a generated enum of offsets is explicitly permitted by
// §9 ("Named indices"); a plain table is kept here because the recipe only
// ever needs offset lookups by name, never reflection over the schema.
var schema = []group{
	{"CONSTANT", 1},
	{"output_state", 2},
	{"input_state", 2},
	{"prog_a_rw", 1},
	{"prog_v_rw", 6},
	{"memreg_a_rw", 7},
	{"memreg_v_reads", 7},
	{"memreg_v_writes", 7},
	{"chunks_x", 4},
	{"chunks_y", 4},
	{"chunks_query", 4},
	{"lookup_output", 1},
	{"op_flags", 17},
}

// baseIndex implements §4.2: it returns the index of the offset-th wire in
// the named group, or false if the name is unknown or the offset is out of
// range for that group.
func baseIndex(name string, offset uint) (uint, bool) {
	var total uint

	for _, g := range schema {
		if g.name == name {
			if offset >= g.width {
				return 0, false
			}

			return total + offset, true
		}

		total += g.width
	}

	return 0, false
}

// totalInputWidth implements §4.2: the sum of every group's width, i.e. K.
func totalInputWidth() uint {
	var total uint
	for _, g := range schema {
		total += g.width
	}

	return total
}

// Compile-time parameters from §6. These are documented, not
// runtime-configurable: changing any of them changes the shape of the
// circuit recipe in circuit.go.
const (
	// WordWidth is the bit width of a VM word (W).
	WordWidth = 32
	// ChunkCount is the number of operand chunks (C).
	ChunkCount = 4
	// ChunkWidth is the bit width of one operand chunk (W/C).
	ChunkWidth = WordWidth / ChunkCount
	// QueryChunkWidth is the bit width of one lookup-query chunk (LOG_M).
	QueryChunkWidth = 16
	// FlagCount is the number of op-flag bits (N_FLAGS).
	FlagCount = 17
	// MemOpsPerStep is the width of the memreg_* groups (MOPS).
	MemOpsPerStep = 7
	// RAMStartAddress is the base address of VM RAM.
	RAMStartAddress = 0x80000000
	// MemoryAddressOffset biases memreg_a_rw byte addresses (§6).
	MemoryAddressOffset = 0x80000000 - 0x20
	// twoPow32 is 2^32, the two's-complement bias used for sign extension
	// (§4.4 step 6, §9).
	twoPow32 = int64(1) << 32
)

// op-flag bit offsets within the op_flags group, in the order the original
// VM decoder packs them (§4.4 step 1).
const (
	flagPCOperand          = 0
	flagRS2Operand         = 1
	flagIsLoad             = 2
	flagIsStore            = 3
	flagIsJump             = 4
	flagIsBranch           = 5
	flagUpdateRDWithLookup = 6
	flagIsAdd              = 7
	flagIsSub              = 8
	flagIsMul              = 9
	flagIsAdvice           = 10
	flagIsAssertFalse      = 11
	flagIsAssertTrue       = 12
	flagSignImmediate      = 13
	flagIsConcat           = 14
	flagIsLuiAuipc         = 15
	flagIsShift            = 16
)

// prog_v_rw field offsets (§3).
const (
	fieldOpcode        = 0
	fieldRS1           = 1
	fieldRS2           = 2
	fieldRD            = 3
	fieldImmediateRaw  = 4
	fieldOpFlagsPacked = 5
)

// output_state / input_state field offsets (§3).
const (
	stateStepNum = 0
	statePC      = 1
)
