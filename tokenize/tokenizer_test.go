package tokenize

import (
	"io"
	"strings"
	"testing"
)

const minimal270 = "ISA*00*          *00*          *ZZ*SENDER         *ZZ*RECEIVER       *210101*1253*^*00501*000000905*1*P*:~" +
	"GS*HS*SENDER*RECEIVER*20210101*1253*1*X*005010X279A1~" +
	"ST*270*0001*005010X279A1~" +
	"BHT*0022*13*10001234*20210101*1319~" +
	"HL*1**20*1~" +
	"NM1*PR*2*PAYER NAME*****PI*12345~" +
	"HL*2*1*21*1~" +
	"NM1*1P*1*PROVIDER*JOHN****XX*1234567893~" +
	"HL*3*2*22*0~" +
	"NM1*IL*1*DOE*JOHN****MI*123456789A~" +
	"DMG*D8*19800101*M~" +
	"DTP*291*D8*20210101~" +
	"EQ*30~" +
	"SE*13*0001~"

func TestScanYieldsAllSegmentsInOrder(t *testing.T) {
	tok := New(strings.NewReader(minimal270))
	var ids []string
	for tok.Scan() {
		ids = append(ids, tok.Segment().ID)
	}
	if err := tok.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	want := []string{"ISA", "GS", "ST", "BHT", "HL", "NM1", "HL", "NM1", "HL", "NM1", "DMG", "DTP", "EQ", "SE"}
	if len(ids) != len(want) {
		t.Fatalf("got %d segments, want %d: %v", len(ids), len(want), ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("segment %d = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestScanRecoversDelimiters(t *testing.T) {
	tok := New(strings.NewReader(minimal270))
	if !tok.Scan() {
		t.Fatalf("Scan() = false, err = %v", tok.Err())
	}
	d := tok.Delimiters()
	if d.Element != '*' || d.Component != ':' || d.Repetition != '^' || d.Terminator != '~' {
		t.Errorf("Delimiters() = %+v, want *:^~", d)
	}
}

func TestScanAbsorbsInterSegmentWhitespace(t *testing.T) {
	withCRLF := strings.ReplaceAll(minimal270, "~", "~\r\n")
	tok := New(strings.NewReader(withCRLF))
	count := 0
	for tok.Scan() {
		count++
	}
	if err := tok.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	if count != 14 {
		t.Errorf("count = %d, want 14", count)
	}
}

func TestScanTruncatedSegmentIsError(t *testing.T) {
	tok := New(strings.NewReader(minimal270[:120]))
	for tok.Scan() {
	}
	if err := tok.Err(); err == nil {
		t.Fatalf("expected truncation error, got nil")
	}
}

func TestScanMalformedInterchange(t *testing.T) {
	tok := New(strings.NewReader("not x12 at all"))
	if tok.Scan() {
		t.Fatalf("Scan() = true for malformed interchange")
	}
	if tok.Err() == nil {
		t.Fatalf("expected error for malformed interchange")
	}
}

func TestScanISAFieldsPreserveDelimiterLiterals(t *testing.T) {
	tok := New(strings.NewReader(minimal270))
	if !tok.Scan() {
		t.Fatalf("Scan() = false, err = %v", tok.Err())
	}
	isa := tok.Segment()
	if got := isa.Scalar(11); got != "^" {
		t.Errorf("ISA11 = %q, want %q", got, "^")
	}
	if got := isa.Scalar(16); got != ":" {
		t.Errorf("ISA16 = %q, want %q", got, ":")
	}
}

func TestScanEOFAfterAllSegments(t *testing.T) {
	tok := New(strings.NewReader(minimal270))
	for tok.Scan() {
	}
	if err := tok.Err(); err != nil && err != io.EOF {
		t.Fatalf("Err() = %v", err)
	}
}
