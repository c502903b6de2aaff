// Package wire owns the vCard text codec primitives.
//
// Ownership boundary:
// - line unfolding/folding at the octet budget
// - content-line tokenizing and serialization
// - escape/unescape and structured value splitting
// - block assembly between BEGIN/END markers
// - legacy quoted-printable decoding
//
// Read-side anomalies are collected as Warnings on the result and never
// returned as errors. The codec holds no state across calls.
package wire
