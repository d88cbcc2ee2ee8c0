package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthedi/x12/x12"
)

func TestRealTransactionsRegisterAtInit(t *testing.T) {
	for _, tc := range []struct {
		code, version string
	}{
		{"270", "005010X279A1"},
		{"271", "005010X279A1"},
		{"276", "005010X212"},
		{"277", "005010X212"},
		{"834", "005010X220A1"},
		{"835", "005010X221A1"},
		{"837P", "005010X222A1"},
		{"837I", "005010X223A2"},
	} {
		ts, ok := Lookup(tc.code, tc.version)
		if !assert.Truef(t, ok, "Lookup(%s, %s) not registered", tc.code, tc.version) {
			continue
		}
		assert.NotNil(t, ts.Root)
		assert.NotEmpty(t, ts.Rules)
	}
}

func TestLookupUnknownVersionFails(t *testing.T) {
	_, ok := Lookup("270", "not-a-real-version")
	assert.False(t, ok)
}

func TestLoopSchemaNamedResolvesDescendants(t *testing.T) {
	ts, ok := Lookup("270", "005010X279A1")
	require.True(t, ok)

	_, ok = ts.LoopSchemaNamed("loop_2100c")
	assert.True(t, ok, "loop_2100c should be indexed under the 270 schema")

	_, ok = ts.LoopSchemaNamed("no-such-loop")
	assert.False(t, ok)
}

func TestRegisterPanicsOnDuplicateKey(t *testing.T) {
	ts := &TransactionSchema{Code: "TESTDUP", Version: "v1", Root: &LoopSchema{Name: "root"}}
	Register(ts)

	assert.Panics(t, func() {
		Register(&TransactionSchema{Code: "TESTDUP", Version: "v1", Root: &LoopSchema{Name: "root"}})
	})
}

func TestRegisterPanicsOnDuplicateUnconditionalRule(t *testing.T) {
	alwaysTrue := func(seg x12.Segment) bool { return true }

	ts := &TransactionSchema{
		Code: "TESTDUPRULE",
		Version: "v1",
		Root:    &LoopSchema{Name: "root"},
		Rules: []Rule{
			{SegmentID: "NM1", Condition: "", Predicate: nil},
			{SegmentID: "NM1", Condition: "", Predicate: nil},
		},
	}
	assert.Panics(t, func() { Register(ts) })

	// A second, independent key with two *conditioned* rules sharing the
	// same condition label should also panic.
	ts2 := &TransactionSchema{
		Code: "TESTDUPCOND",
		Version: "v1",
		Root:    &LoopSchema{Name: "root"},
		Rules: []Rule{
			{SegmentID: "NM1", Condition: "entity=IL", Predicate: alwaysTrue},
			{SegmentID: "NM1", Condition: "entity=IL", Predicate: alwaysTrue},
		},
	}
	assert.Panics(t, func() { Register(ts2) })
}
