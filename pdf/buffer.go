// shelfverse.dev/go/receipt - PDF receipts for the ShelfVerse store
// Copyright (C) 2026  The ShelfVerse Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdf

import "fmt"

// Buffer is an append-only byte buffer.  The current length is the byte
// offset at which the next write will start, which is what the
// cross-reference table records.
//
// The zero value is an empty buffer ready to use.
type Buffer struct {
	data []byte
}

// Write appends p to the buffer.  It never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

// WriteString appends s to the buffer.  It never fails.
func (b *Buffer) WriteString(s string) (int, error) {
	b.data = append(b.data, s...)
	return len(s), nil
}

// WriteName appends the encoded form of n, including the leading slash.
func (b *Buffer) WriteName(n Name) {
	b.data = n.appendTo(b.data)
}

// Printf appends formatted text to the buffer.
func (b *Buffer) Printf(format string, args ...any) {
	b.data = fmt.Appendf(b.data, format, args...)
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int64 {
	return int64(len(b.data))
}

// Bytes returns the buffer contents.  The caller must not modify the
// returned slice while the buffer is still in use.
func (b *Buffer) Bytes() []byte {
	return b.data
}
