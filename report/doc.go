// Package report builds diagnostic TransactionReport values summarizing
// a closed model.Transaction's validation outcome. It follows the
// teacher's ack package's Builder-with-injectable-clock idiom, but the
// built value is a JSON-renderable domain report rather than a new wire
// transaction — generating a new X12 functional acknowledgment (997/999)
// from scratch is out of scope.
package report
