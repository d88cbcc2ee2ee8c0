package engine

import (
	"context"
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
	"SE*12*0001~" +
	"GE*1*1~" +
	"IEA*1*000000905~"

func TestParseReturnsOneValidatedTransaction(t *testing.T) {
	e := New()
	out, err := e.Parse(strings.NewReader(minimal270Interchange))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(out.Transactions) != 1 {
		t.Fatalf("len(Transactions) = %d, want 1", len(out.Transactions))
	}
	res := out.Transactions[0]
	if res.Report.Code != "270" {
		t.Errorf("Report.Code = %q, want 270", res.Report.Code)
	}
	if !res.Report.Valid {
		t.Errorf("Report.Valid = false, errors = %v", res.Report.Errors)
	}
}

func TestParseSegmentsStreamsCallback(t *testing.T) {
	e := New()
	count := 0
	err := e.ParseSegments(context.Background(), strings.NewReader(minimal270Interchange), func(res Result) error {
		count++
		return nil
	})
	if err != nil {
		t.Fatalf("ParseSegments() error = %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

const twoClaim835Interchange = "ISA*00*          *00*          *ZZ*SENDER         *ZZ*RECEIVER       *210101*1253*^*00501*000000905*1*P*:~" +
	"GS*HP*SENDER*RECEIVER*20210101*1253*1*X*005010X221A1~" +
	"ST*835*0001*005010X221A1~" +
	"BPR*I*500*C*ACH*CTX*01*999999999*DA*123456*01*999999999*DA*123456*20210101~" +
	"TRN*1*12345*1999999999~" +
	"N1*PR*INSURANCE CO~" +
	"N1*PE*PROVIDER NAME*XX*1234567893~" +
	"LX*1~" +
	"CLP*CLAIM001*1*100*80*0*12*987654321~" +
	"CAS*CO*45*20~" +
	"SVC*HC:99213*100*80~" +
	"CLP*CLAIM002*1*200*150*0*12*987654322~" +
	"CAS*CO*45*50~" +
	"SVC*HC:99214*200*150~" +
	"PLB*1234567893*20210101*CVD*50~" +
	"SE*14*0001~" +
	"GE*1*1~" +
	"IEA*1*000000905~"

// TestParse835MultiClaimNestsUnderSharedHeaderLoop guards against a claim
// loop drifting under the previous claim's service-line loop: both CLP
// claims must anchor under the same loop_2000, each with its own
// loop_2110 balancing only against its own CAS adjustments.
func TestParse835MultiClaimNestsUnderSharedHeaderLoop(t *testing.T) {
	e := New()
	out, err := e.Parse(strings.NewReader(twoClaim835Interchange))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(out.Transactions) != 1 {
		t.Fatalf("len(Transactions) = %d, want 1", len(out.Transactions))
	}
	res := out.Transactions[0]
	tx := res.Transaction

	headerLoops := tx.FindAll("loop_2000")
	if len(headerLoops) != 1 {
		t.Fatalf("len(loop_2000) = %d, want 1", len(headerLoops))
	}
	header := headerLoops[0]

	claims := tx.FindAll("loop_2100")
	if len(claims) != 2 {
		t.Fatalf("len(loop_2100) = %d, want 2", len(claims))
	}
	for _, claim := range claims {
		if claim.ParentIndex() != header.Index() {
			t.Errorf("claim %d ParentIndex() = %d, want header loop index %d", claim.Index(), claim.ParentIndex(), header.Index())
		}
	}

	if got := tx.Trailer["PLB"]; len(got) != 1 {
		t.Fatalf("Trailer[PLB] = %v, want 1 segment", got)
	}

	if !res.Report.Valid {
		t.Errorf("Report.Valid = false, errors = %v", res.Report.Errors)
	}
}

func TestSerializeRoundTripsThroughEngine(t *testing.T) {
	e := New()
	out, err := e.Parse(strings.NewReader(minimal270Interchange))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	data, err := e.Serialize(out.Transactions[0].Transaction)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if !strings.Contains(string(data), "ST*270*0001*005010X279A1~") {
		t.Errorf("Serialize() = %q, missing ST segment", data)
	}
}
