// Package view renders the engine's internal types (x12.Segment,
// model.Transaction) into JSON-friendly structures for the CLI and HTTP
// shim named in spec §6. Neither the tokenizer, the transaction model,
// nor the serializer know anything about JSON; this package is the one
// place that translation happens, so both external collaborators render
// identically.
package view
