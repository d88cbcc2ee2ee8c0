package framer

import (
	"strings"
	"testing"

	_ "github.com/healthedi/x12/schema"
)

const minimal270Interchange = "ISA*00*          *00*          *ZZ*SENDER         *ZZ*RECEIVER       *210101*1253*^*00501*000000905*1*P*:~" +
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
	"SE*13*0001~" +
	"GE*1*1~" +
	"IEA*1*000000905~"

func TestFramerYieldsOneTransaction(t *testing.T) {
	f := New(strings.NewReader(minimal270Interchange))

	count := 0
	for f.Scan() {
		count++
		tx := f.Transaction()
		if tx.Code != "270" {
			t.Errorf("Code = %q, want 270", tx.Code)
		}
		if tx.Version != "005010X279A1" {
			t.Errorf("Version = %q, want 005010X279A1", tx.Version)
		}
		if tx.ControlNumber != "0001" {
			t.Errorf("ControlNumber = %q, want 0001", tx.ControlNumber)
		}
		if len(tx.HLRecords) != 3 {
			t.Errorf("len(HLRecords) = %d, want 3", len(tx.HLRecords))
		}
	}
	if err := f.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
	if errs := f.EnvelopeErrors(); len(errs) != 0 {
		t.Errorf("EnvelopeErrors() = %v, want none", errs)
	}
}

func TestFramerDetectsEnvelopeCountMismatch(t *testing.T) {
	bad := strings.Replace(minimal270Interchange, "GE*1*1~", "GE*2*1~", 1)
	f := New(strings.NewReader(bad))
	for f.Scan() {
	}
	if err := f.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	if errs := f.EnvelopeErrors(); len(errs) != 1 {
		t.Fatalf("EnvelopeErrors() = %v, want 1", errs)
	}
}

func TestFramerUnknownTransactionVersionErrors(t *testing.T) {
	bad := strings.Replace(minimal270Interchange, "005010X279A1", "009999X999A1", -1)
	f := New(strings.NewReader(bad))
	for f.Scan() {
	}
	if f.Err() == nil {
		t.Fatal("Err() = nil, want unknown transaction version error")
	}
}
