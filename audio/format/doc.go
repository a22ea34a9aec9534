// Package format defines the immutable stream-format descriptor shared by
// the audio buffer and queue packages: sample rate, channel count, and bit
// depth, plus the byte sizes derived from them.
package format
