// Package goaudio bridges the core's planar float64 buffers to the go-audio
// ecosystem's interleaved buffer types, so blocks can flow to and from
// go-audio encoders, decoders, and transforms without hand-rolled frame
// walking at every call site.
package goaudio
