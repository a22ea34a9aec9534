// Package buffer provides the block-storage primitives of the audio core:
// Buffer, an exclusively owned multichannel sample store whose channels are
// zero-initialized and 32-byte aligned, and View, a non-owning window over a
// contiguous run of samples for in-place work without copying. Pool recycles
// fixed-shape Buffers across real-time processing loops.
//
// Neither type carries internal synchronization; concurrent use requires
// external coordination.
package buffer
