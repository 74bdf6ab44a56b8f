// Package perm generates the index tables that route samples through the
// stages of a transform: the compound (Ruritanian input, CRT output) map for
// lengths n*m, split-radix reverse tables for power-of-two lengths, the
// dual-interleave parity table, and the cycle index used for in-place
// permutation.
//
// Every generator fills caller-provided slices and is deterministic: equal
// arguments always produce identical tables.
package perm
