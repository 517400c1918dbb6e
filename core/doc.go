// SPDX-License-Identifier: MIT

// Package core provides the generic operator map and the shared plumbing of
// every system package (spins, bosons, fermions, mixed).
//
// An operator is a sparse linear combination
//
//	O = Σ_k c_k · P_k
//
// of canonical products P_k with scalar coefficients c_k. Map stores the
// (P_k, c_k) pairs in insertion order, keyed by the canonical string of P_k,
// and implements the algebra every specialization shares:
//
//   - Get / Set / AddTerm / Remove (zero coefficients are never stored)
//   - Truncate(threshold): drop small numeric terms, keep symbolic ones
//   - Conjugate: rebuild under the product's hermitian conjugation
//   - Add / Sub / Neg / Scale: termwise arithmetic
//   - EmptyClone / Clone / Rekey / Partition
//
// Shape (declared capacity) is configured with functional options
// (WithCapacity); specializations validate keys against it before mutating.
//
// Serialisation:
//
//	Every record carries a serialisation_meta stamp {type_name, min_version,
//	version}. Codec checks this stamp against an explicit library version
//	before decoding the payload (CheckCanBeDeserialised), in JSON or YAML.
//
// Errors are package-level sentinels (errors.go) matched with errors.Is;
// MinimumIndexError, SubsystemError and VersionError carry structured detail.
package core
