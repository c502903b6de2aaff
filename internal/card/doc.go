// Package card owns the record layer above the wire codec.
//
// Ownership boundary:
// - Card container with ordered properties and lookups
// - typed value accessors built on the codec primitives
// - write-side validation (strict by contract, unlike the tolerant reader)
// - full record encoding
package card
