package buffer

import (
	"github.com/cwbudde/algo-vecmath"
)

// View is a non-owning window over a contiguous run of samples. The zero
// value is the empty view. A View never outlives its storage on its own:
// a view into a Buffer that is later Moved or Released is stale, and
// dereferencing it is the caller's bug to avoid.
type View struct {
	data []float64
}

// ViewOf wraps an existing slice without copying. Mutations through the view
// are visible in the slice and vice versa.
func ViewOf(s []float64) View {
	return View{data: s}
}

// ChannelView returns a view over one channel of b, capturing that channel's
// storage and length at call time; the view does not track later Moves or
// Releases of b. A nil or empty buffer yields the empty view; an
// out-of-range ch panics.
func ChannelView(b *Buffer, ch int) View {
	if b == nil || b.IsEmpty() {
		return View{}
	}

	return View{data: b.channels[ch]}
}

// Len returns the number of samples in the view.
func (v View) Len() int {
	return len(v.data)
}

// IsEmpty reports whether the view spans no samples.
func (v View) IsEmpty() bool {
	return len(v.data) == 0
}

// Data returns the underlying slice. This is the unchecked hot-path surface;
// index it directly inside time-critical loops.
func (v View) Data() []float64 {
	return v.data
}

// At returns sample i. Out-of-range indices panic.
func (v View) At(i int) float64 {
	return v.data[i]
}

// Set stores x at sample i. Out-of-range indices panic.
func (v View) Set(i int, x float64) {
	v.data[i] = x
}

// Sub returns a view over part of v. An offset at or past the end yields the
// empty view. A count of 0 means "through the end"; a count past the end is
// clamped to the samples that remain.
func (v View) Sub(offset, count int) View {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(v.data) {
		return View{}
	}

	remaining := len(v.data) - offset
	if count <= 0 || count > remaining {
		count = remaining
	}

	return View{data: v.data[offset : offset+count]}
}

// Fill writes x into every sample. No-op on an empty view.
func (v View) Fill(x float64) {
	for i := range v.data {
		v.data[i] = x
	}
}

// Clear writes zero into every sample. No-op on an empty view.
func (v View) Clear() {
	v.Fill(0)
}

// Scale multiplies every sample by g in place.
func (v View) Scale(g float64) {
	if len(v.data) == 0 {
		return
	}

	vecmath.ScaleBlock(v.data, v.data, g)
}
