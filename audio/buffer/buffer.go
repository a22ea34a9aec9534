package buffer

import "unsafe"

// Alignment is the byte boundary every channel's first sample sits on,
// wide enough for AVX2-sized vector loads.
const Alignment = 32

// Buffer owns planar multichannel sample storage: NumChannels independent
// channels of Len samples each, zero-filled at construction, each starting on
// an Alignment-byte boundary.
//
// A Buffer is always either fully allocated or in the canonical empty state
// (zero channels and zero length); a partially allocated buffer is never
// observable. Ownership is exclusive: hand the storage to another handle with
// Move, sever it with Release, and do not copy handles around otherwise.
type Buffer struct {
	channels [][]float64
	samples  int
}

// New returns a zero-filled Buffer of the given shape. If either dimension
// is zero or negative, the empty buffer is returned and nothing is
// allocated; that is the intended degenerate path, not an error.
func New(channels, samples int) *Buffer {
	if channels <= 0 || samples <= 0 {
		return &Buffer{}
	}

	b := &Buffer{
		channels: make([][]float64, channels),
		samples:  samples,
	}
	for ch := range b.channels {
		b.channels[ch] = alignedSlice(samples)
	}

	return b
}

// alignedSlice returns a zeroed slice of length n whose first element sits on
// an Alignment-byte boundary. Go already aligns float64 arrays to 8 bytes, so
// at most Alignment/8-1 leading elements of the raw allocation are skipped.
func alignedSlice(n int) []float64 {
	const stride = Alignment / 8

	raw := make([]float64, n+stride-1)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	off := 0
	if rem := addr % Alignment; rem != 0 {
		off = int((Alignment - rem) / 8)
	}

	return raw[off : off+n : off+n]
}

// NumChannels returns the channel count, 0 for the empty buffer.
func (b *Buffer) NumChannels() int {
	return len(b.channels)
}

// Len returns the number of samples per channel, 0 for the empty buffer.
func (b *Buffer) Len() int {
	return b.samples
}

// IsEmpty reports whether the buffer is in the canonical empty state.
func (b *Buffer) IsEmpty() bool {
	return len(b.channels) == 0 || b.samples == 0
}

// Channel returns channel ch's storage without copying; mutations through the
// slice are visible in the buffer. An out-of-range ch panics. The returned
// slice is the unchecked hot-path surface: index it directly inside
// time-critical loops.
func (b *Buffer) Channel(ch int) []float64 {
	return b.channels[ch]
}

// At returns sample i of channel ch. Out-of-range indices panic.
func (b *Buffer) At(ch, i int) float64 {
	return b.channels[ch][i]
}

// Set stores v at sample i of channel ch. Out-of-range indices panic.
func (b *Buffer) Set(ch, i int, v float64) {
	b.channels[ch][i] = v
}

// CopyFrom copies the overlapping region from src: min of both channel
// counts times min of both lengths. Samples outside the overlap keep their
// current values. A nil or empty src, or an empty receiver, is a no-op.
func (b *Buffer) CopyFrom(src *Buffer) {
	if b.IsEmpty() || src == nil || src.IsEmpty() {
		return
	}

	nch := min(len(b.channels), len(src.channels))
	ns := min(b.samples, src.samples)
	for ch := 0; ch < nch; ch++ {
		copy(b.channels[ch][:ns], src.channels[ch][:ns])
	}
}

// Move transfers ownership of the storage to a fresh handle and resets the
// receiver to the empty state. No samples are copied and nothing is
// allocated; views taken from the receiver remain valid but now alias the
// returned handle's storage.
func (b *Buffer) Move() *Buffer {
	moved := &Buffer{channels: b.channels, samples: b.samples}
	b.channels = nil
	b.samples = 0

	return moved
}

// Release severs all channel storage and resets the buffer to the empty
// state. The collector reclaims the memory once no view aliases it; Release
// exists so pools and long-lived owners can drop storage deterministically.
func (b *Buffer) Release() {
	b.channels = nil
	b.samples = 0
}

// Zero rewrites every sample in every channel to 0.
func (b *Buffer) Zero() {
	for _, ch := range b.channels {
		for i := range ch {
			ch[i] = 0
		}
	}
}
