package wib2

const (
	wordBits   = 8 * WordBytes
	sampleMask = 1<<SampleBits - 1
)

// Sample returns the ith ADC value in the frame.
//
// The ADC values are 14 bits long, packed contiguously across the
// frame's 112 sample words. The order is:
//
//   - 40 values from FEMB0 U channels
//   - 40 values from FEMB0 V channels
//   - 48 values from FEMB0 X channels (collection)
//   - 40 values from FEMB1 U channels
//   - 40 values from FEMB1 V channels
//   - 48 values from FEMB1 X channels (collection)
//
// Sample returns a [RangeError] if i is outside [0, 255].
func (f *Frame) Sample(i int) (uint16, error) {
	if i < 0 || i >= SamplesPerFrame {
		return 0, rangeErr("sample", i, SamplesPerFrame-1)
	}
	return f.sample(i), nil
}

// sample decodes the ith ADC value. i must be in [0, 255], which
// also keeps both touched words inside the sample region: the last
// sample ends at bit 14*255+13 = 3583, the final bit of word 111.
func (f *Frame) sample(i int) uint16 {
	word := HeaderWords + SampleBits*i/wordBits
	shift := uint(SampleBits * i % wordBits)
	adc := f.word(word) >> shift
	// If the word holds fewer than 14 bits of this sample, the rest
	// sit at the bottom of the next word.
	if wordBits-shift < SampleBits {
		adc |= f.word(word+1) << (wordBits - shift)
	}
	return uint16(adc & sampleMask)
}

// SetSample sets the ith ADC value in the frame, truncating v to 14
// bits. It is the inverse of [Frame.Sample] and shares its index
// contract: a [RangeError] is returned if i is outside [0, 255].
func (f *Frame) SetSample(i int, v uint16) error {
	if i < 0 || i >= SamplesPerFrame {
		return rangeErr("sample", i, SamplesPerFrame-1)
	}
	f.setSample(i, v)
	return nil
}

func (f *Frame) setSample(i int, v uint16) {
	word := HeaderWords + SampleBits*i/wordBits
	shift := uint(SampleBits * i % wordBits)
	first := wordBits - shift
	if first > SampleBits {
		first = SampleBits
	}
	f.setField(word, shift, first, uint32(v))
	if first < SampleBits {
		f.setField(word+1, 0, SampleBits-first, uint32(v)>>first)
	}
}

// U returns the ith U-channel ADC value of the given FEMB. femb must
// be in [0, 1] and i in [0, 39].
func (f *Frame) U(femb, i int) (uint16, error) {
	if err := checkChannel("U", femb, i, UChannels); err != nil {
		return 0, err
	}
	return f.sample(SamplesPerFEMB*femb + i), nil
}

// V returns the ith V-channel ADC value of the given FEMB. femb must
// be in [0, 1] and i in [0, 39].
func (f *Frame) V(femb, i int) (uint16, error) {
	if err := checkChannel("V", femb, i, VChannels); err != nil {
		return 0, err
	}
	return f.sample(SamplesPerFEMB*femb + UChannels + i), nil
}

// X returns the ith X-channel (ie, collection) ADC value of the
// given FEMB. femb must be in [0, 1] and i in [0, 47].
func (f *Frame) X(femb, i int) (uint16, error) {
	if err := checkChannel("X", femb, i, XChannels); err != nil {
		return 0, err
	}
	return f.sample(SamplesPerFEMB*femb + UChannels + VChannels + i), nil
}

// SetU sets the ith U-channel ADC value of the given FEMB,
// truncating v to 14 bits.
func (f *Frame) SetU(femb, i int, v uint16) error {
	if err := checkChannel("U", femb, i, UChannels); err != nil {
		return err
	}
	f.setSample(SamplesPerFEMB*femb+i, v)
	return nil
}

// SetV sets the ith V-channel ADC value of the given FEMB,
// truncating v to 14 bits.
func (f *Frame) SetV(femb, i int, v uint16) error {
	if err := checkChannel("V", femb, i, VChannels); err != nil {
		return err
	}
	f.setSample(SamplesPerFEMB*femb+UChannels+i, v)
	return nil
}

// SetX sets the ith X-channel ADC value of the given FEMB,
// truncating v to 14 bits.
func (f *Frame) SetX(femb, i int, v uint16) error {
	if err := checkChannel("X", femb, i, XChannels); err != nil {
		return err
	}
	f.setSample(SamplesPerFEMB*femb+UChannels+VChannels+i, v)
	return nil
}

func checkChannel(typ string, femb, i, channels int) error {
	if femb < 0 || femb >= FEMBsPerFrame {
		return rangeErr("FEMB", femb, FEMBsPerFrame-1)
	}
	if i < 0 || i >= channels {
		return rangeErr(typ+" channel", i, channels-1)
	}
	return nil
}

// Samples returns all 256 decoded ADC values in packing order.
func (f *Frame) Samples() []uint16 {
	out := make([]uint16, SamplesPerFrame)
	for i := range out {
		out[i] = f.sample(i)
	}
	return out
}

// SamplesU returns the 40 decoded U-channel ADC values of the given
// FEMB.
func (f *Frame) SamplesU(femb int) ([]uint16, error) {
	return f.channelGroup(femb, 0, UChannels)
}

// SamplesV returns the 40 decoded V-channel ADC values of the given
// FEMB.
func (f *Frame) SamplesV(femb int) ([]uint16, error) {
	return f.channelGroup(femb, UChannels, VChannels)
}

// SamplesX returns the 48 decoded X-channel ADC values of the given
// FEMB.
func (f *Frame) SamplesX(femb int) ([]uint16, error) {
	return f.channelGroup(femb, UChannels+VChannels, XChannels)
}

func (f *Frame) channelGroup(femb, offset, channels int) ([]uint16, error) {
	if femb < 0 || femb >= FEMBsPerFrame {
		return nil, rangeErr("FEMB", femb, FEMBsPerFrame-1)
	}
	out := make([]uint16, channels)
	for i := range out {
		out[i] = f.sample(SamplesPerFEMB*femb + offset + i)
	}
	return out, nil
}
