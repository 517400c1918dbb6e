// SPDX-License-Identifier: MIT

// Package mixed implements operators on composite systems made of spin,
// bosonic and fermionic subsystems.
//
// A MixedProduct holds one operand per subsystem and prints as
// "S{pauli}:...B{boson}:...F{fermion}:...":
//
//	p, _ := mixed.ParseMixedProduct("S0X1Z:Bc0a1:Fc0:")
//
// Every map declares a core.Subsystems layout: the subsystem counts every key
// must match, plus an optional capacity per subsystem.
//
//	layout := core.UnboundedSubsystems(1, 1, 1)
//	op := mixed.NewMixedOperator(layout)
//
// Products on different subsystem counts fail with *core.SubsystemError.
package mixed
