package serialize

import (
	"context"
	"strings"
	"testing"

	"github.com/healthedi/x12/model"
	"github.com/healthedi/x12/x12"
)

func TestSerializeRendersSegmentsInAttachOrder(t *testing.T) {
	d := x12.DefaultDelimiters()
	tx := model.New("270", "005010X279A1", d)
	tx.Delims = d
	root := tx.Root()

	st := x12.NewSegment("ST", d)
	st.Set(1, x12.NewScalar("270"))
	root.Attach("ST", st)

	bht := x12.NewSegment("BHT", d)
	bht.Set(1, x12.NewScalar("0022"))
	root.Attach("BHT", bht)

	out, err := New().Serialize(tx)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	s := string(out)
	if !strings.HasPrefix(s, "ST*270~") {
		t.Errorf("Serialize() = %q, want prefix ST*270~", s)
	}
	if !strings.Contains(s, "BHT*0022~") {
		t.Errorf("Serialize() = %q, want BHT*0022~", s)
	}
}

func TestSerializeWalksChildLoopsAfterOwnSegments(t *testing.T) {
	d := x12.DefaultDelimiters()
	tx := model.New("270", "005010X279A1", d)
	tx.Delims = d
	root := tx.Root()
	st := x12.NewSegment("ST", d)
	root.Attach("ST", st)

	child := tx.NewLoop("loop_2000a", root.Index())
	hl := x12.NewSegment("HL", d)
	hl.Set(1, x12.NewScalar("1"))
	child.Attach("HL", hl)

	out, err := New().Serialize(tx)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	s := string(out)
	stIdx := strings.Index(s, "ST")
	hlIdx := strings.Index(s, "HL")
	if stIdx < 0 || hlIdx < 0 || stIdx > hlIdx {
		t.Errorf("Serialize() = %q, want ST before HL", s)
	}
}

func TestSerializeToWriterHonorsCancellation(t *testing.T) {
	tx := model.New("270", "005010X279A1", x12.DefaultDelimiters())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf strings.Builder
	err := New().SerializeToWriter(ctx, &buf, tx)
	if err == nil {
		t.Fatal("SerializeToWriter() error = nil, want context canceled")
	}
}

func TestSerializeNilTransactionErrors(t *testing.T) {
	if _, err := New().Serialize(nil); err == nil {
		t.Fatal("Serialize(nil) error = nil, want error")
	}
}
