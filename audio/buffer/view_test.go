package buffer

import "testing"

func TestViewOfSharesMemory(t *testing.T) {
	s := []float64{1, 2, 3}
	v := ViewOf(s)
	v.Set(0, 99)
	if s[0] != 99 {
		t.Fatal("ViewOf should share underlying memory")
	}
	if v.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", v.Len())
	}
}

func TestZeroValueIsEmpty(t *testing.T) {
	var v View
	if !v.IsEmpty() || v.Len() != 0 {
		t.Fatal("zero View should be empty")
	}
	v.Fill(1)  // no-op, must not panic
	v.Clear()  // no-op, must not panic
	v.Scale(2) // no-op, must not panic
}

func TestChannelView(t *testing.T) {
	b := New(2, 8)
	b.Set(1, 5, 4.5)

	v := ChannelView(b, 1)
	if v.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", v.Len())
	}
	if v.At(5) != 4.5 {
		t.Fatalf("At(5) = %v, want 4.5", v.At(5))
	}

	v.Set(0, -1)
	if b.At(1, 0) != -1 {
		t.Fatal("ChannelView should alias the buffer's storage")
	}
}

func TestChannelViewEmptyBuffer(t *testing.T) {
	if v := ChannelView(New(0, 0), 0); !v.IsEmpty() {
		t.Fatal("view over an empty buffer should be empty")
	}
	if v := ChannelView(nil, 0); !v.IsEmpty() {
		t.Fatal("view over a nil buffer should be empty")
	}
}

func TestSubCountZeroMeansRest(t *testing.T) {
	v := ViewOf([]float64{0, 1, 2, 3, 4, 5})
	sub := v.Sub(2, 0)
	if sub.Len() != 4 {
		t.Fatalf("Sub(2, 0).Len() = %d, want 4", sub.Len())
	}
	if sub.At(0) != 2 || sub.At(3) != 5 {
		t.Fatalf("Sub(2, 0) spans wrong samples: first %v, last %v", sub.At(0), sub.At(3))
	}
}

func TestSubClampsCount(t *testing.T) {
	v := ViewOf([]float64{0, 1, 2, 3})
	sub := v.Sub(1, 100)
	if sub.Len() != 3 {
		t.Fatalf("Sub(1, 100).Len() = %d, want 3", sub.Len())
	}
	sub = v.Sub(1, 2)
	if sub.Len() != 2 || sub.At(0) != 1 || sub.At(1) != 2 {
		t.Fatalf("Sub(1, 2) = %v", sub.Data())
	}
}

func TestSubOffsetPastEnd(t *testing.T) {
	v := ViewOf([]float64{0, 1, 2})
	if !v.Sub(3, 0).IsEmpty() {
		t.Fatal("Sub at the end should be empty")
	}
	if !v.Sub(10, 5).IsEmpty() {
		t.Fatal("Sub past the end should be empty")
	}

	var empty View
	if !empty.Sub(0, 0).IsEmpty() {
		t.Fatal("Sub of an empty view should be empty")
	}
}

func TestSubOfSubNests(t *testing.T) {
	v := ViewOf([]float64{0, 1, 2, 3, 4, 5, 6, 7})
	sub := v.Sub(2, 0).Sub(1, 3)
	if sub.Len() != 3 {
		t.Fatalf("nested Sub length = %d, want 3", sub.Len())
	}
	if sub.At(0) != 3 {
		t.Fatalf("nested Sub starts at %v, want 3", sub.At(0))
	}
}

func TestFillMutatesOnlyItsRange(t *testing.T) {
	b := New(1, 8)
	full := ChannelView(b, 0)
	full.Fill(1)

	// Fill samples [2, 5) and check the boundaries on either side.
	full.Sub(2, 3).Fill(9)

	want := []float64{1, 1, 9, 9, 9, 1, 1, 1}
	for i, w := range want {
		if got := b.At(0, i); got != w {
			t.Fatalf("sample %d = %v, want %v", i, got, w)
		}
	}
}

func TestClear(t *testing.T) {
	v := ViewOf([]float64{1, 2, 3})
	v.Clear()
	for i := 0; i < v.Len(); i++ {
		if v.At(i) != 0 {
			t.Fatalf("At(%d) = %v after Clear", i, v.At(i))
		}
	}
}

func TestScale(t *testing.T) {
	v := ViewOf([]float64{1, -2, 0.5, 0})
	v.Scale(2)
	want := []float64{2, -4, 1, 0}
	for i, w := range want {
		if got := v.At(i); got != w {
			t.Fatalf("At(%d) = %v after Scale, want %v", i, got, w)
		}
	}
}

func TestViewStaysValidAcrossMove(t *testing.T) {
	b := New(1, 4)
	v := ChannelView(b, 0)

	moved := b.Move()
	v.Set(0, 3)
	if moved.At(0, 0) != 3 {
		t.Fatal("view taken before Move should alias the moved-to storage")
	}
}
