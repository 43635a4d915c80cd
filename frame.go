package wib2

import (
	"encoding/binary"
	"fmt"

	"github.com/protodune/wib2/bitfield"
)

// The frame format is defined in terms of 32-bit little-endian words.
const (
	// WordBytes is the size of one frame word.
	WordBytes = 4

	// HeaderWords, ADCWords, and TrailerWords are the sizes of the
	// three frame regions, laid out contiguously in that order.
	HeaderWords  = 4
	ADCWords     = 112
	TrailerWords = 2

	// FrameWords and FrameBytes are the fixed total frame size.
	FrameWords = HeaderWords + ADCWords + TrailerWords
	FrameBytes = FrameWords * WordBytes

	// SampleBits is the packed width of one ADC value.
	SampleBits = 14

	// SamplesPerFrame is the number of ADC values packed into the
	// sample region, SamplesPerFEMB from each of the two FEMBs.
	SamplesPerFrame = 256
	SamplesPerFEMB  = 128
	FEMBsPerFrame   = 2

	// UChannels, VChannels, and XChannels are the per-FEMB sample
	// counts of the three channel types, in packing order.
	UChannels = 40
	VChannels = 40
	XChannels = 48
)

// Word indices of the header and trailer fields.
const (
	wordFlags         = 0
	wordWIBCode2      = 1
	wordTimestampLow  = 2
	wordTimestampHigh = 3
	wordTrailer0      = HeaderWords + ADCWords
	wordTrailer1      = wordTrailer0 + 1
)

// A Frame is a view over one raw WIB frame in a caller-owned buffer.
//
// A Frame never copies the buffer it is given: accessors decode
// fields straight out of it, and setters write straight back into
// it. Producers building a frame from scratch can pass
// make([]byte, FrameBytes) to [New].
type Frame struct {
	buf []byte
}

// New returns a Frame overlaying buf, which must be exactly
// FrameBytes long.
func New(buf []byte) (*Frame, error) {
	if len(buf) != FrameBytes {
		return nil, fmt.Errorf("frame buffer is %d bytes, want %d", len(buf), FrameBytes)
	}
	return &Frame{buf}, nil
}

// Bytes returns the frame's underlying buffer. The buffer is shared
// with the Frame, not copied.
func (f *Frame) Bytes() []byte { return f.buf }

func (f *Frame) word(i int) uint32 {
	return binary.LittleEndian.Uint32(f.buf[i*WordBytes:])
}

func (f *Frame) setWord(i int, w uint32) {
	binary.LittleEndian.PutUint32(f.buf[i*WordBytes:], w)
}

// setField replaces the width-bit field at shift within word i.
// Bits of v beyond width are discarded, so out-of-width writes
// truncate rather than spill into neighboring fields.
func (f *Frame) setField(i int, shift, width uint, v uint32) {
	f.setWord(i, bitfield.Set(f.word(i), shift, width, v))
}

// Crate returns the crate number of the readout link.
func (f *Frame) Crate() uint8 {
	return uint8(bitfield.Get(f.word(wordFlags), 0, 8))
}

// SetCrate sets the crate number.
func (f *Frame) SetCrate(v uint8) {
	f.setField(wordFlags, 0, 8, uint32(v))
}

// FrameVersion returns the 4-bit frame format version.
func (f *Frame) FrameVersion() uint8 {
	return uint8(bitfield.Get(f.word(wordFlags), 8, 4))
}

// SetFrameVersion sets the frame format version, truncated to 4 bits.
func (f *Frame) SetFrameVersion(v uint8) {
	f.setField(wordFlags, 8, 4, uint32(v))
}

// Slot returns the 3-bit slot number.
func (f *Frame) Slot() uint8 {
	return uint8(bitfield.Get(f.word(wordFlags), 12, 3))
}

// SetSlot sets the slot number, truncated to 3 bits.
func (f *Frame) SetSlot(v uint8) {
	f.setField(wordFlags, 12, 3, uint32(v))
}

// Fiber returns the 1-bit fiber number.
func (f *Frame) Fiber() uint8 {
	return uint8(bitfield.Get(f.word(wordFlags), 15, 1))
}

// SetFiber sets the fiber number, truncated to 1 bit.
func (f *Frame) SetFiber(v uint8) {
	f.setField(wordFlags, 15, 1, uint32(v))
}

// FEMBValid returns the 2-bit FEMB-valid flag pair, one bit per FEMB.
func (f *Frame) FEMBValid() uint8 {
	return uint8(bitfield.Get(f.word(wordFlags), 16, 2))
}

// SetFEMBValid sets the FEMB-valid flags, truncated to 2 bits.
func (f *Frame) SetFEMBValid(v uint8) {
	f.setField(wordFlags, 16, 2, uint32(v))
}

// WIBCode1 returns the 14-bit WIB status code in the first header
// word.
func (f *Frame) WIBCode1() uint16 {
	return uint16(bitfield.Get(f.word(wordFlags), 18, 14))
}

// SetWIBCode1 sets the first WIB status code, truncated to 14 bits.
func (f *Frame) SetWIBCode1(v uint16) {
	f.setField(wordFlags, 18, 14, uint32(v))
}

// WIBCode2 returns the 32-bit WIB status code in the second header
// word.
func (f *Frame) WIBCode2() uint32 {
	return f.word(wordWIBCode2)
}

// SetWIBCode2 sets the second WIB status code.
func (f *Frame) SetWIBCode2(v uint32) {
	f.setWord(wordWIBCode2, v)
}

// TimestampLow returns the low 32 bits of the frame timestamp.
func (f *Frame) TimestampLow() uint32 {
	return f.word(wordTimestampLow)
}

// SetTimestampLow sets the low 32 bits of the frame timestamp.
func (f *Frame) SetTimestampLow(v uint32) {
	f.setWord(wordTimestampLow, v)
}

// TimestampHigh returns the high 32 bits of the frame timestamp.
func (f *Frame) TimestampHigh() uint32 {
	return f.word(wordTimestampHigh)
}

// SetTimestampHigh sets the high 32 bits of the frame timestamp.
func (f *Frame) SetTimestampHigh(v uint32) {
	f.setWord(wordTimestampHigh, v)
}

// Timestamp returns the 64-bit timestamp of the frame, assembled
// from the two timestamp header words.
func (f *Frame) Timestamp() uint64 {
	return uint64(f.TimestampLow()) | uint64(f.TimestampHigh())<<32
}

// SetTimestamp sets the frame timestamp, splitting ts across the two
// timestamp header words.
func (f *Frame) SetTimestamp(ts uint64) {
	f.SetTimestampLow(uint32(ts))
	f.SetTimestampHigh(uint32(ts >> 32))
}

// CRC20 returns the 20-bit trailer CRC. The package does not verify
// it.
func (f *Frame) CRC20() uint32 {
	return bitfield.Get(f.word(wordTrailer0), 0, 20)
}

// SetCRC20 sets the trailer CRC, truncated to 20 bits.
func (f *Frame) SetCRC20(v uint32) {
	f.setField(wordTrailer0, 0, 20, v)
}

// FlexWord12 returns the 12-bit flexible trailer field.
func (f *Frame) FlexWord12() uint16 {
	return uint16(bitfield.Get(f.word(wordTrailer0), 20, 12))
}

// SetFlexWord12 sets the 12-bit flexible trailer field, truncated to
// 12 bits.
func (f *Frame) SetFlexWord12(v uint16) {
	f.setField(wordTrailer0, 20, 12, uint32(v))
}

// EOF returns the 8-bit end-of-frame marker.
func (f *Frame) EOF() uint8 {
	return uint8(bitfield.Get(f.word(wordTrailer1), 0, 8))
}

// SetEOF sets the end-of-frame marker.
func (f *Frame) SetEOF(v uint8) {
	f.setField(wordTrailer1, 0, 8, uint32(v))
}

// FlexWord24 returns the 24-bit flexible trailer field.
func (f *Frame) FlexWord24() uint32 {
	return bitfield.Get(f.word(wordTrailer1), 8, 24)
}

// SetFlexWord24 sets the 24-bit flexible trailer field, truncated to
// 24 bits.
func (f *Frame) SetFlexWord24(v uint32) {
	f.setField(wordTrailer1, 8, 24, v)
}
