package format

// Descriptor describes the fixed framing of a PCM stream: sample rate in Hz,
// channel count, and bits per sample. It is a plain value type; construct one
// with New and copy it freely.
type Descriptor struct {
	sampleRate int
	channels   int
	bitDepth   int
}

// New returns a Descriptor with the given fields stored as-is.
// No validation is performed; zero values are legal, and rejecting nonsense
// rates or depths is the caller's responsibility.
func New(sampleRate, channels, bitDepth int) Descriptor {
	return Descriptor{
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
	}
}

// SampleRate returns the sample rate in Hz.
func (d Descriptor) SampleRate() int {
	return d.sampleRate
}

// Channels returns the channel count.
func (d Descriptor) Channels() int {
	return d.channels
}

// BitDepth returns the bits per sample.
func (d Descriptor) BitDepth() int {
	return d.bitDepth
}

// BytesPerSample returns the smallest whole-byte container for one sample,
// (bitDepth+7)/8. Depths that are not byte multiples round up: 20-bit audio
// packed in 24 reports 3.
func (d Descriptor) BytesPerSample() int {
	return (d.bitDepth + 7) / 8
}

// BytesPerFrame returns the byte size of one frame, i.e. one sample from
// every channel at the same time index.
func (d Descriptor) BytesPerFrame() int {
	return d.BytesPerSample() * d.channels
}

// Equal reports whether both descriptors carry identical fields.
func (d Descriptor) Equal(other Descriptor) bool {
	return d == other
}
