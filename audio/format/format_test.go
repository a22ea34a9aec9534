package format

import "testing"

func TestAccessors(t *testing.T) {
	d := New(48000, 2, 24)
	if d.SampleRate() != 48000 {
		t.Fatalf("SampleRate() = %d, want 48000", d.SampleRate())
	}
	if d.Channels() != 2 {
		t.Fatalf("Channels() = %d, want 2", d.Channels())
	}
	if d.BitDepth() != 24 {
		t.Fatalf("BitDepth() = %d, want 24", d.BitDepth())
	}
}

func TestBytesPerSampleRoundsUp(t *testing.T) {
	cases := []struct {
		bitDepth int
		want     int
	}{
		{8, 1},
		{16, 2},
		{17, 3},
		{20, 3},
		{24, 3},
		{32, 4},
		{0, 0},
		{1, 1},
	}
	for _, tc := range cases {
		d := New(44100, 1, tc.bitDepth)
		if got := d.BytesPerSample(); got != tc.want {
			t.Fatalf("BytesPerSample() for depth %d = %d, want %d", tc.bitDepth, got, tc.want)
		}
	}
}

func TestBytesPerFrame(t *testing.T) {
	d := New(44100, 6, 24)
	if got := d.BytesPerFrame(); got != 18 {
		t.Fatalf("BytesPerFrame() = %d, want 18", got)
	}
	if got := New(44100, 0, 16).BytesPerFrame(); got != 0 {
		t.Fatalf("BytesPerFrame() with zero channels = %d, want 0", got)
	}
}

func TestEqual(t *testing.T) {
	base := New(48000, 2, 16)
	if !base.Equal(New(48000, 2, 16)) {
		t.Fatal("identical descriptors should compare equal")
	}

	different := []Descriptor{
		New(44100, 2, 16),
		New(48000, 1, 16),
		New(48000, 2, 24),
	}
	for i, d := range different {
		if base.Equal(d) {
			t.Fatalf("case %d: descriptors differing in one field should compare unequal", i)
		}
	}
}

func TestZeroValuesAccepted(t *testing.T) {
	d := New(0, 0, 0)
	if !d.Equal(Descriptor{}) {
		t.Fatal("all-zero construction should equal the zero Descriptor")
	}
}
