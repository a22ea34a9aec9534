package goaudio

import (
	gaudio "github.com/go-audio/audio"

	"github.com/GhostWire-Audio/ghostwire-core/audio/buffer"
	"github.com/GhostWire-Audio/ghostwire-core/audio/core"
	"github.com/GhostWire-Audio/ghostwire-core/audio/format"
)

// go-audio assumes 16-bit sources when a buffer does not say otherwise.
const defaultBitDepth = 16

// Format maps d onto a go-audio Format. go-audio carries no bit depth;
// keep the Descriptor around if you need it back.
func Format(d format.Descriptor) *gaudio.Format {
	return &gaudio.Format{
		SampleRate:  d.SampleRate(),
		NumChannels: d.Channels(),
	}
}

// Descriptor maps a go-audio Format back onto a Descriptor, with the bit
// depth supplied by the caller. A nil Format yields the zero Descriptor.
func Descriptor(f *gaudio.Format, bitDepth int) format.Descriptor {
	if f == nil {
		return format.Descriptor{}
	}

	return format.New(f.SampleRate, f.NumChannels, bitDepth)
}

// ToFloatBuffer interleaves b into a go-audio FloatBuffer described by d.
// A nil or empty b yields a FloatBuffer with no data.
func ToFloatBuffer(b *buffer.Buffer, d format.Descriptor) *gaudio.FloatBuffer {
	fb := &gaudio.FloatBuffer{Format: Format(d)}
	if b == nil || b.IsEmpty() {
		return fb
	}

	nch := b.NumChannels()
	fb.Data = make([]float64, nch*b.Len())
	for ch := 0; ch < nch; ch++ {
		for i, x := range b.Channel(ch) {
			fb.Data[i*nch+ch] = x
		}
	}

	return fb
}

// FromFloatBuffer deinterleaves fb into a freshly allocated aligned Buffer.
// Trailing values that do not fill a whole frame are dropped. A nil fb or
// one without channel information yields the empty buffer.
func FromFloatBuffer(fb *gaudio.FloatBuffer) *buffer.Buffer {
	if fb == nil || fb.Format == nil || fb.Format.NumChannels <= 0 {
		return buffer.New(0, 0)
	}

	nch := fb.Format.NumChannels
	b := buffer.New(nch, len(fb.Data)/nch)
	if b.IsEmpty() {
		return b
	}

	for ch := 0; ch < nch; ch++ {
		dst := b.Channel(ch)
		for i := range dst {
			dst[i] = fb.Data[i*nch+ch]
		}
	}

	return b
}

// ToIntBuffer interleaves and quantizes b to signed integers at d's bit
// depth, clamping input to [-1, 1] and scaling by full scale minus one so
// +1.0 cannot overflow the container. SourceBitDepth is recorded on the
// result.
func ToIntBuffer(b *buffer.Buffer, d format.Descriptor) *gaudio.IntBuffer {
	ib := &gaudio.IntBuffer{
		Format:         Format(d),
		SourceBitDepth: d.BitDepth(),
	}
	if b == nil || b.IsEmpty() {
		return ib
	}

	scale := core.FullScale(d.BitDepth()) - 1
	nch := b.NumChannels()
	ib.Data = make([]int, nch*b.Len())
	for ch := 0; ch < nch; ch++ {
		for i, x := range b.Channel(ch) {
			ib.Data[i*nch+ch] = int(core.Clamp(x, -1, 1) * scale)
		}
	}

	return ib
}

// FromIntBuffer deinterleaves ib into a Buffer of floats, dividing by the
// full scale of ib.SourceBitDepth (16 assumed when unset, the go-audio
// convention). A nil ib or one without channel information yields the empty
// buffer.
func FromIntBuffer(ib *gaudio.IntBuffer) *buffer.Buffer {
	if ib == nil || ib.Format == nil || ib.Format.NumChannels <= 0 {
		return buffer.New(0, 0)
	}

	depth := ib.SourceBitDepth
	if depth <= 0 {
		depth = defaultBitDepth
	}
	scale := core.FullScale(depth)

	nch := ib.Format.NumChannels
	b := buffer.New(nch, len(ib.Data)/nch)
	if b.IsEmpty() {
		return b
	}

	for ch := 0; ch < nch; ch++ {
		dst := b.Channel(ch)
		for i := range dst {
			dst[i] = float64(ib.Data[i*nch+ch]) / scale
		}
	}

	return b
}
