package x12

import "testing"

func TestSegmentRenderDropsTrailingEmpty(t *testing.T) {
	d := DefaultDelimiters()
	seg := NewSegment("DTP", d)
	seg.Append(NewScalar("291"))
	seg.Append(NewScalar("D8"))
	seg.Append(NewScalar("20060101"))
	seg.Append(Element{Reps: []Composite{{""}}})

	got := seg.Render(d)
	want := "DTP*291*D8*20060101"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestSegmentBytesAppendsTerminator(t *testing.T) {
	d := DefaultDelimiters()
	seg := NewSegment("SE", d)
	seg.Append(NewScalar("17"))
	seg.Append(NewScalar("0001"))

	got := string(seg.Bytes(d))
	want := "SE*17*0001~"
	if got != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}
}

func TestElementRepetitionsAndComposite(t *testing.T) {
	d := DefaultDelimiters()
	e := ParseElement("W^123:456", d)
	if !e.IsRepeated() {
		t.Fatalf("expected repeated element")
	}
	if got := e.Reps[0].Scalar(); got != "W" {
		t.Errorf("rep0 = %q, want W", got)
	}
	if got := e.Reps[1].Scalar(); got != "123" {
		t.Errorf("rep1 scalar = %q, want 123", got)
	}
	if !e.Reps[1].IsComposite() {
		t.Errorf("rep1 expected composite")
	}
}

func TestSegmentGetMissing(t *testing.T) {
	seg := NewSegment("NM1", DefaultDelimiters())
	if _, ok := seg.Get(5); ok {
		t.Errorf("Get() on empty segment should report not-ok")
	}
	if got := seg.Scalar(5); got != "" {
		t.Errorf("Scalar() on missing element = %q, want empty", got)
	}
}
