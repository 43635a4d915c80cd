// Package wib2 decodes raw WIB v2 frames, as used in ProtoDUNE-SP-II.
//
// A frame is a fixed-size sequence of 32-bit little-endian words: a
// four-word header, 112 words holding 256 ADC values packed at 14
// bits each, and a two-word trailer. [Frame] overlays a caller-owned
// buffer and exposes the header and trailer bit-fields and the packed
// ADC values through typed accessors, without copying the buffer.
//
// The canonical definition of the WIB format is given in EDMS
// document 2088713: https://edms.cern.ch/document/2088713/4
//
// The package performs no I/O and does not verify the trailer CRC;
// framing, transport, and integrity checking belong to the readout
// layers that produce and consume frame buffers. Reading a shared
// frame from multiple goroutines is safe. Writes must be serialized
// by the caller.
package wib2
