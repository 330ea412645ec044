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
package cmd

import (
	"fmt"
	"os"

	"github.com/leopardracer/jolt/internal/field"
	"github.com/leopardracer/jolt/internal/field/bls12377"
	"github.com/leopardracer/jolt/internal/r1cs"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [flags] witness.json",
	Short: "Check that (A*z) o (B*z) = C*z holds for a completed witness.",
	Long: `Build the circuit against the given witness and evaluate every row of
(A*z) o (B*z) = C*z, reporting the first row at which it fails. Exits zero
when every row holds.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		requireBLS12377(GetString(cmd, "field"))

		witness, err := readWitnessFile(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		res, ok := r1cs.Build[bls12377.Element](witness)
		if !ok {
			fmt.Println("failed to build circuit: inconsistent input schema")
			os.Exit(1)
		}

		row, failed := firstFailingRow(res)
		if failed {
			fmt.Printf("constraint violated at row %d\n", row)
			os.Exit(1)
		}

		fmt.Printf("all %d constraints satisfied\n", res.NumConstraints)
	},
}

// firstFailingRow evaluates every row of (A*z) o (B*z) = C*z against res.Z
// and returns the first row index where the equality fails to hold, and
// whether any such row exists.
func firstFailingRow[F field.Element[F]](res r1cs.Result[F]) (uint, bool) {
	if res.NumConstraints == 0 {
		return 0, false
	}

	aVals := rowSums(res.A, res.Z, res.NumConstraints)
	bVals := rowSums(res.B, res.Z, res.NumConstraints)
	cVals := rowSums(res.C, res.Z, res.NumConstraints)

	for row := uint(0); row < res.NumConstraints; row++ {
		lhs := aVals[row].Mul(bVals[row])
		if !lhs.Sub(cVals[row]).IsZero() {
			return row, true
		}
	}

	return 0, false
}

// rowSums evaluates value(row) = sum of Value*z[Index] for every triple in
// the given matrix, one sum per row.
func rowSums[F field.Element[F]](triples []r1cs.Triple, z []F, numRows uint) []F {
	sums := make([]F, numRows)

	for _, t := range triples {
		sums[t.Row] = sums[t.Row].Add(field.FromInt64[F](t.Value).Mul(z[t.Index]))
	}

	return sums
}
