// SPDX-License-Identifier: MIT

// Command quantops inspects and converts serialised quantum operators.
//
// Usage:
//
//	quantops parse fermion c0c1a2
//	quantops convert --from json --to yaml operator.json
//	quantops coo --qubits 2 hamiltonian.json
//	quantops jw < fermion_operator.json
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
