// SPDX-License-Identifier: MIT

// Package quantops is a symbolic algebra of quantum operators: spins,
// bosons, fermions and mixtures of them, closed and open (Lindblad) systems.
//
// What is in the box?
//
//	calc/          real and complex scalars that may be symbolic expressions
//	core/          the insertion-ordered term map, options, codec and version stamps
//	spins/         Pauli, decoherence and σ± products, operators, Hamiltonians, noise
//	bosons/        normal-ordered boson ladder products and their containers
//	fermions/      anticommuting ladder products with reordering signs
//	mixed/         products over several spin, boson and fermion subsystems
//	matrix/        sparse COO operators and Liouville superoperators of spin systems
//	jordanwigner/  exact maps between qubit and fermion operators
//	cmd/quantops   command line front end for the JSON and YAML documents
//
// Every container maps canonical product keys to scalar values, validates
// capacity on insert and drops terms that become zero. Hamiltonian
// containers store one member of every conjugate pair and stand for the
// hermitian sum.
//
// Quick start:
//
//	p, _ := spins.ParsePauliProduct("0X1Z")
//	op := spins.NewPauliOperator(spins.WithNumberSpins(2))
//	_ = op.AddTerm(p, calc.NewComplex(0.5, 0))
//	coo, _ := op.SparseMatrixCOO(2)
//
// All packages are pure Go; serialisation uses encoding/json or
// gopkg.in/yaml.v3, and logging is opt-in through go.uber.org/zap.
package quantops
