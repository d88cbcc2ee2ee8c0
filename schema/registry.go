package schema

import (
	"fmt"
)

// registry is the process-wide, read-only-after-init Schema Registry.
// It is populated exclusively by Register calls made from this
// package's transaction_*.go files at init() time; no lock is needed
// because no write happens after program start (spec §5: "read-only
// after initialization; any number of parsers may share it
// concurrently").
var registry = map[string]*TransactionSchema{}

func key(code, version string) string {
	return code + "_" + version
}

// Register adds ts to the registry, keyed by (ts.Code, ts.Version). It
// panics — a build-time programmer error, not a runtime error — if the
// key is already registered, if two of ts's rules for the same segment
// ID carry the same Condition label, or if more than one rule for a
// segment ID has a nil Predicate. The predicate functions themselves
// are not compared: two rules with different labels whose predicates
// accept the same segment are not detected, and Dispatch applies the
// first of them in declaration order.
func Register(ts *TransactionSchema) {
	k := key(ts.Code, ts.Version)
	if _, exists := registry[k]; exists {
		panic(fmt.Sprintf("schema: duplicate registration for %s", k))
	}
	checkNonOverlapping(ts)
	ts.buildLoopIndex()
	registry[k] = ts
}

func checkNonOverlapping(ts *TransactionSchema) {
	bySegment := map[string][]Rule{}
	for _, r := range ts.Rules {
		bySegment[r.SegmentID] = append(bySegment[r.SegmentID], r)
	}
	for segID, rules := range bySegment {
		unconditional := 0
		seen := map[string]bool{}
		for _, r := range rules {
			if r.Predicate == nil {
				unconditional++
				continue
			}
			if seen[r.Condition] {
				panic(fmt.Sprintf("schema: %s/%s segment %s has two rules with condition %q", ts.Code, ts.Version, segID, r.Condition))
			}
			seen[r.Condition] = true
		}
		if unconditional > 1 {
			panic(fmt.Sprintf("schema: %s/%s segment %s has %d unconditional rules, want at most 1", ts.Code, ts.Version, segID, unconditional))
		}
	}
}

// Lookup returns the TransactionSchema for (code, version), or
// (nil, false) if none is registered.
func Lookup(code, version string) (*TransactionSchema, bool) {
	ts, ok := registry[key(code, version)]
	return ts, ok
}

// Registered returns every (code, version) pair currently registered,
// for diagnostics.
func Registered() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	return out
}
