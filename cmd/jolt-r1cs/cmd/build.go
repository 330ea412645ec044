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

	"github.com/leopardracer/jolt/internal/field/bls12377"
	"github.com/leopardracer/jolt/internal/r1cs"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] [witness.json]",
	Short: "Build the R1CS for one VM step, optionally completing a witness.",
	Long: `Build the fixed R1CS matrices for one VM execution step. If a witness.json
file is given it must contain a JSON array of decimal-string field elements,
one per external input wire; the length of the completed witness (including
every aux wire the recipe allocates) is reported alongside the matrix sizes.`,
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

		log.WithField("externalWitnessLen", r1cs.ExternalWitnessLen()).Debug("building circuit")

		res, ok := r1cs.Build[bls12377.Element](witness)
		if !ok {
			fmt.Println("failed to build circuit: inconsistent input schema")
			os.Exit(1)
		}

		fmt.Printf("constraints: %d\n", res.NumConstraints)
		fmt.Printf("variables:   %d (%d aux)\n", res.NumVariables, res.NumAux)
		fmt.Printf("A: %d, B: %d, C: %d nonzero entries\n", len(res.A), len(res.B), len(res.C))

		if res.Z != nil {
			fmt.Printf("witness length: %d\n", len(res.Z))
		}
	},
}
