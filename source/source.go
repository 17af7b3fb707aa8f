// Package source implements the file collaborator described in the
// compiler's external interfaces: it turns a path on disk into the
// immutable byte buffer the lexer scans. It is deliberately thin —
// the core never retains an open file handle between stages.
package source

import "os"

// Buffer is an immutable, ordered sequence of bytes with a path label.
// Tokens do not reference it: the lexer copies each token's bytes
// into the token's Text.
type Buffer struct {
	Path  string
	Bytes []byte
}

// Load reads the file at path in full and wraps it in a Buffer.
// It does not validate encoding — ASCII validity is the lexer's
// pre-check, not the file collaborator's.
func Load(path string) (*Buffer, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Buffer{Path: path, Bytes: bytes}, nil
}

// FromBytes wraps an in-memory byte slice as a Buffer, labeled with
// path. Used by tests and by cmd/iron-inspect, which never touch disk.
func FromBytes(path string, bytes []byte) *Buffer {
	return &Buffer{Path: path, Bytes: bytes}
}

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int { return len(b.Bytes) }

// Slice returns the byte-view of the buffer between [start, end).
// The returned slice shares the buffer's backing array.
func (b *Buffer) Slice(start, end int) []byte {
	return b.Bytes[start:end]
}
