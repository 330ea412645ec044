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
	"encoding/json"
	"fmt"
	"os"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/leopardracer/jolt/internal/field/bls12377"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected bool flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// requireBLS12377 exits the process unless the requested field is the one
// backend this build supports (§6: the field is a compile-time parameter).
func requireBLS12377(name string) {
	if name != "BLS12_377" {
		fmt.Printf("unsupported field \"%s\": this build only supports BLS12_377\n", name)
		os.Exit(3)
	}
}

// readWitnessFile parses a JSON array of decimal-string field elements from
// path into a witness slice.
func readWitnessFile(path string) ([]bls12377.Element, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading witness file: %w", err)
	}

	var decimals []string
	if err := json.Unmarshal(raw, &decimals); err != nil {
		return nil, fmt.Errorf("parsing witness file: %w", err)
	}

	out := make([]bls12377.Element, len(decimals))

	for i, d := range decimals {
		var e fr.Element
		if _, err := e.SetString(d); err != nil {
			return nil, fmt.Errorf("witness element %d: %w", i, err)
		}

		out[i] = bls12377.Element{Element: e}
	}

	return out, nil
}
