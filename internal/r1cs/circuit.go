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

// Result is the sparse representation of one step's constraint system,
// together with the completed witness when one was supplied to Build
// (§3, §4.5).
type Result[F field.Element[F]] struct {
	A, B, C        []Triple
	NumConstraints uint
	NumVariables   uint
	NumAux         uint
	Z              []F
}

// ExternalWitnessLen is the number of values a caller must supply to Build:
// every input wire except CONSTANT and output_state, which the recipe
// computes itself (§6).
func ExternalWitnessLen() uint {
	return totalInputWidth() - 3
}

// resolver accumulates baseIndex lookups and remembers the first failure,
// mirroring the original recipe's GET_INDEX(...)? idiom in a language
// without a try operator (§7 "schema mismatch").
type resolver struct {
	ok bool
}

func (r *resolver) idx(name string, offset uint) uint {
	i, found := baseIndex(name, offset)
	if !found {
		r.ok = false
	}

	return i
}

// Build runs the fixed circuit recipe for one VM execution step (§4.4).
//
// When witness is non-nil it must hold exactly ExternalWitnessLen() values,
// laid out as the input schema with CONSTANT and output_state removed; the
// returned Result's Z is the completed K-plus-aux witness. When witness is
// nil, Build produces matrices only. Build reports false if a non-nil
// witness has a length other than ExternalWitnessLen(), or if the fixed
// schema table cannot satisfy a lookup the recipe depends on (which can
// only happen if the compile-time schema itself is inconsistent).
func Build[F field.Element[F]](witness []F) (Result[F], bool) {
	var z []F

	if witness != nil {
		if uint(len(witness)) != ExternalWitnessLen() {
			return Result[F]{}, false
		}

		z = make([]F, totalInputWidth())
		z[0] = field.One[F]()

		for i, v := range witness {
			z[3+uint(i)] = v
		}
	}

	b := newBuilder[F](z)
	r := &resolver{ok: true}

	// --- resolve every fixed-region index the recipe touches up front ---
	outStepNum, outPC := r.idx("output_state", stateStepNum), r.idx("output_state", statePC)
	inStepNum, inPC := r.idx("input_state", stateStepNum), r.idx("input_state", statePC)
	rs1 := r.idx("prog_v_rw", fieldRS1)
	rs2 := r.idx("prog_v_rw", fieldRS2)
	rd := r.idx("prog_v_rw", fieldRD)
	immediateRaw := r.idx("prog_v_rw", fieldImmediateRaw)
	opFlagsPacked := r.idx("prog_v_rw", fieldOpFlagsPacked)

	memA0 := r.idx("memreg_a_rw", 0)
	memVReadsBase := r.idx("memreg_v_reads", 0)
	memVWritesBase := r.idx("memreg_v_writes", 0)

	chunksXBase := r.idx("chunks_x", 0)
	chunksYBase := r.idx("chunks_y", 0)
	chunksQueryBase := r.idx("chunks_query", 0)
	lookupOutput := r.idx("lookup_output", 0)
	flagsBase := r.idx("op_flags", 0)

	if !r.ok {
		return Result[F]{}, false
	}

	// 1. Flag packing: the 17 individual op_flags wires must recombine,
	// big-endian, into the packed field carried alongside the decoded
	// instruction.
	b.Combine(flagsBase, 1, FlagCount, opFlagsPacked, BigEndian)

	// 2. Immediate shaping: LUI/AUIPC immediates are pre-shifted by one
	// page (12 bits) relative to the raw decoded immediate.
	immediate := b.IfElse(wire(flagsBase+flagIsLuiAuipc), wire(immediateRaw), scaled(immediateRaw, 1<<12))

	// rs1_val / rs2_val alias the first two memory-register read slots,
	// which the trace producer populates with the register file's values
	// for this step (§3 "memreg_*").
	rs1Val := memVReadsBase + 0
	rs2Val := memVReadsBase + 1

	// 3. Register-index consistency: the addressed register slots must
	// equal the decoded rs1/rs2/rd fields. Register reads are idempotent:
	// whatever value a register holds on entry, reading it must reproduce
	// the same value on the write side too. (prog_a_rw is deliberately left
	// untied to input_state.PC: the source recipe leaves that relation
	// unenforced pending a padding-row fix, see DESIGN.md.)
	b.EqSimple(memA0+0, rs1)
	b.EqSimple(memA0+1, rs2)
	b.EqSimple(memA0+2, rd)
	b.EqSimple(memVReadsBase+0, memVWritesBase+0)
	b.EqSimple(memVReadsBase+1, memVWritesBase+1)

	// 4. Operand selection. x defaults to the program counter and becomes
	// rs1_val when the instruction consumes a register operand there; _y
	// defaults to the immediate and becomes rs2_val similarly; the final y
	// then chooses between that ALU input and the lookup table's output
	// depending on whether the instruction is an "advice" instruction that
	// supplies y directly from the trace.
	x := b.IfElse(wire(flagsBase+flagPCOperand), wire(inPC), wire(rs1Val))
	yPrime := b.IfElse(wire(flagsBase+flagRS2Operand), wire(immediate), wire(rs2Val))
	y := b.IfElse(wire(flagsBase+flagIsAdvice), wire(yPrime), wire(lookupOutput))

	// 6. Sign-extend the immediate: when the sign flag is set, use the raw
	// immediate directly; otherwise bias it down by 2^32 to recover the
	// negative two's-complement value.
	immediateSigned := b.IfElse(wire(flagsBase+flagSignImmediate), sub(wire(immediate), constant(twoPow32)), wire(immediate))

	// 7. Address check: for loads and stores the addressed byte must equal
	// rs1_val + immediate_signed, rebased from the VM's RAM window into
	// the flat memreg_a_rw addressing space.
	addrDiff := sub(plus(wire(rs1Val), wire(immediateSigned)), plus(wire(memA0+3), constant(MemoryAddressOffset)))
	b.ConstrABC(plus(wire(flagsBase+flagIsLoad), wire(flagsBase+flagIsStore)), addrDiff, LC{})

	// 8. Byte-address contiguity: each remaining memreg_a_rw slot used for
	// a multi-byte access is either exactly base+i, or zero for an access
	// narrower than the full slot width. Expressed as a product-equals-zero
	// so either disjunct can hold.
	for i := uint(1); i < MemOpsPerStep-3; i++ {
		slotDiff := sub(sub(wire(memA0+3+i), wire(memA0+3)), constant(int64(i)))
		b.ConstrABC(slotDiff, wire(memA0+3+i), LC{})
	}

	// 9. Load write-through: a load must copy every addressed byte's read
	// value straight into the corresponding write slot unchanged.
	for i := uint(0); i < MemOpsPerStep-3; i++ {
		b.ConstrABC(wire(flagsBase+flagIsLoad), sub(wire(memVWritesBase+3+i), wire(memVReadsBase+3+i)), LC{})
	}

	// 10. Store value check: a store must write rs2_val's bytes (recombined
	// little-endian from the byte-addressed write slots) back out to
	// rs2_val itself.
	loadOrStoreValue := b.CombineLE(memVWritesBase+4, 8, 3)
	b.ConstrABC(wire(flagsBase+flagIsStore), sub(wire(loadOrStoreValue), wire(rs2Val)), LC{})

	// 11. Lookup query semantics: combined_z_chunks recombines chunks_query
	// big-endian, 16 bits per chunk. Arithmetic instructions assert that
	// this recombination equals the expected operation on x and y directly,
	// independent of whatever value the lookup table itself returned.
	combinedZChunks := b.CombineBE(chunksQueryBase, QueryChunkWidth, ChunkCount)

	b.ConstrABC(wire(flagsBase+flagIsAdd), sub(wire(combinedZChunks), plus(wire(x), wire(y))), LC{})
	b.ConstrABC(wire(flagsBase+flagIsSub), sub(plus(sub(wire(combinedZChunks), wire(x)), wire(y)), constant(twoPow32)), LC{})

	mulX := b.Multiply(wire(flagsBase+flagIsMul), wire(x))
	mulXY := b.Multiply(wire(mulX), wire(y))
	b.ConstrABC(wire(flagsBase+flagIsMul), sub(wire(combinedZChunks), wire(mulXY)), LC{})

	// 12. Concat query, chunk level: is_concat instructions instead assert
	// that chunks_x and chunks_y big-endian reconstruct x and y, and that
	// each query chunk packs one x-chunk in its high bits and one y-chunk
	// (or, for a shift, the single chunk holding the shift amount) in its
	// low bits.
	b.ConstrABC(wire(flagsBase+flagIsConcat), sub(combineLC(chunksXBase, ChunkWidth, ChunkCount, BigEndian), wire(x)), LC{})
	b.ConstrABC(wire(flagsBase+flagIsConcat), sub(combineLC(chunksYBase, ChunkWidth, ChunkCount, BigEndian), wire(y)), LC{})

	for k := uint(0); k < ChunkCount; k++ {
		chunkYUsed := b.IfElse(wire(flagsBase+flagIsShift), wire(chunksYBase+k), wire(chunksYBase+ChunkCount-1))
		packed := plus(wire(chunkYUsed), scaled(chunksXBase+k, int64(1)<<ChunkWidth))
		b.ConstrABC(wire(flagsBase+flagIsConcat), sub(wire(chunksQueryBase+k), packed), LC{})
	}

	// 13. Assertion instructions. The polarity here is the source recipe's:
	// is_assert_false demands lookup_output = 1, is_assert_true demands
	// lookup_output = 0. Kept as written rather than "corrected" against the
	// flag names; see DESIGN.md.
	b.ConstrABC(wire(flagsBase+flagIsAssertFalse), sub(one(), wire(lookupOutput)), LC{})
	b.ConstrABC(wire(flagsBase+flagIsAssertTrue), wire(lookupOutput), LC{})

	// 14. Destination write-back. A load's rd value must equal the value it
	// just loaded. rd's write slot otherwise takes the lookup output when
	// the instruction is flagged to write its lookup result back, and takes
	// PC+4 (the link address) when the instruction is a jump. The latter two
	// paths use constr_prod_0, gated on both the instruction flag and the
	// register index, so they stay vacuous when rd is the zero register.
	b.ConstrABC(wire(flagsBase+flagIsLoad), sub(wire(memVWritesBase+2), wire(loadOrStoreValue)), LC{})
	b.ConstrProdZero(wire(flagsBase+flagUpdateRDWithLookup), wire(rd), sub(wire(memVWritesBase+2), wire(lookupOutput)))
	b.ConstrProdZero(wire(flagsBase+flagIsJump), wire(rd), sub(wire(memVWritesBase+2), plus(wire(inPC), constant(4))))

	// 15. Step counter: each step increments the trace's step number by
	// exactly one.
	b.Eq(plus(wire(inStepNum), constant(1)), outStepNum, true)

	// 16. Next-program-counter selection. Jumps move to the lookup output
	// (the computed jump target); taken branches (branch flag and a
	// non-zero lookup output together) move to PC+immediate_signed;
	// everything else falls through to PC+4. This reproduces the source
	// recipe's literal wiring: see DESIGN.md for the seed-scenario
	// disagreement this produces and why the literal wiring was kept.
	isBranchTimesLookupOutput := b.Multiply(wire(flagsBase+flagIsBranch), wire(lookupOutput))
	nextPCJ := b.IfElse(wire(flagsBase+flagIsJump), plus(wire(inPC), constant(4)), wire(lookupOutput))
	nextPCJB := b.IfElse(wire(isBranchTimesLookupOutput), wire(nextPCJ), plus(wire(inPC), wire(immediateSigned)))
	b.Eq(wire(nextPCJB), outPC, true)

	if !r.ok {
		return Result[F]{}, false
	}

	return Result[F]{
		A:              b.A,
		B:              b.B,
		C:              b.C,
		NumConstraints: b.NumConstraints,
		NumVariables:   b.NumVariables,
		NumAux:         b.NumAux,
		Z:              b.Z,
	}, true
}
