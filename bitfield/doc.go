// Package bitfield provides low-level helpers to read and write
// bit-packed fields within a 32-bit word.
//
// The helpers are very low level, and encode no frame semantics. It
// is the caller's responsibility to pass shifts and widths that match
// the field layout being decoded. Explicit shift/mask arithmetic is
// used instead of language-level bit-field layout so that the decoded
// positions are the same on every platform and compiler.
package bitfield
