// Package tokenize provides the Delimiter Probe and Segment Tokenizer:
// the bottom of the streaming engine. A Tokenizer pulls octets from an
// io.Reader and yields one x12.Segment at a time, absorbing whitespace
// between segments and handling segments that straddle internal buffer
// refills transparently (bufio.Reader does the refilling; the Tokenizer
// only ever looks at one byte at a time).
package tokenize
