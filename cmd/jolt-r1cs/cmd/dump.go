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

var dumpCmd = &cobra.Command{
	Use:   "dump [flags] [witness.json]",
	Short: "Print the A/B/C triples (and witness, if given) in a stable text form.",
	Run: func(cmd *cobra.Command, args []string) {
		requireBLS12377(GetString(cmd, "field"))

		var witness []bls12377.Element

		if len(args) > 0 {
			w, err := readWitnessFile(args[0])
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}

			witness = w
		}

		res, ok := r1cs.Build[bls12377.Element](witness)
		if !ok {
			fmt.Println("failed to build circuit: inconsistent input schema")
			os.Exit(1)
		}

		matrices := r1cs.Emit[bls12377.Element](res)

		dumpMatrix("A", matrices.A)
		dumpMatrix("B", matrices.B)
		dumpMatrix("C", matrices.C)

		if res.Z != nil {
			for i, v := range res.Z {
				fmt.Printf("z[%d] = %s\n", i, v.String())
			}
		}
	},
}

func dumpMatrix[F field.Element[F]](name string, rows []r1cs.FieldTriple[F]) {
	for _, t := range rows {
		fmt.Printf("%s[%d][%d] = %s\n", name, t.Row, t.Index, t.Value.String())
	}
}
