// Package json implements a streaming JSON parser and value model: a
// recursive-descent scanner that turns a byte stream into a tree of
// *Value nodes while collecting parse statistics, plus a serializer that
// walks the tree back into compact or pretty-printed text.
//
// Documents can be read from an io.Reader, a plain []byte, or an Input
// (either a memory-mapped file via OpenMmap or a borrowed buffer via
// NewBufferInput), so a caller scanning a large file never has to copy it
// into the process's own memory.
//
// Beyond strict RFC 8259, Control can opt into // and /* */ comments,
// single-quoted or bare object keys, single-quoted strings, case-
// insensitive true/false/null, and a choice of four policies for objects
// that repeat a key.
package json
