package bitfield

// Mask returns a mask with the width low bits set. Widths of 32 or
// more return an all-ones mask.
func Mask(width uint) uint32 {
	if width >= 32 {
		return ^uint32(0)
	}
	return 1<<width - 1
}

// Get extracts the width-bit field stored at bit position shift in w.
func Get(w uint32, shift, width uint) uint32 {
	return (w >> shift) & Mask(width)
}

// Set returns w with the width-bit field at bit position shift
// replaced by v. Bits of v beyond width are discarded, so the
// replacement never disturbs neighboring fields.
func Set(w uint32, shift, width uint, v uint32) uint32 {
	m := Mask(width)
	return w&^(m<<shift) | (v&m)<<shift
}
