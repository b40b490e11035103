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

// Header is the first line of every file produced by a Writer.
const Header = "%PDF-1.4\n"

// Writer serializes indirect objects into an in-memory PDF file and keeps
// track of their byte offsets for the cross-reference table.
type Writer struct {
	buf     Buffer
	offsets []int64 // offsets[i] belongs to object i+1
	closed  bool
}

// NewWriter starts a new PDF file.  The header has already been written
// when NewWriter returns.
func NewWriter() *Writer {
	w := &Writer{}
	w.buf.WriteString(Header)
	return w
}

// WriteObject appends obj to the file.  Objects must be written in ascending
// order of their IDs, starting at 1 and without gaps.
func (w *Writer) WriteObject(obj *Object) error {
	if w.closed {
		return ErrClosed
	}
	want := len(w.offsets) + 1
	if obj.ID != want {
		return &ObjectOrderError{Want: want, Got: obj.ID}
	}

	w.offsets = append(w.offsets, w.buf.Len())

	w.buf.Printf("%d 0 obj ", obj.ID)
	if obj.Stream == nil {
		err := obj.Dict.PDF(&w.buf)
		if err != nil {
			return err
		}
		w.buf.WriteString(" endobj\n")
		return nil
	}

	dict := append(obj.Dict[:len(obj.Dict):len(obj.Dict)],
		DictEntry{Key: "Length", Value: Integer(len(obj.Stream))})
	err := dict.PDF(&w.buf)
	if err != nil {
		return err
	}
	w.buf.WriteString(" stream\n")
	w.buf.Write(obj.Stream)
	w.buf.WriteString("endstream\nendobj\n")
	return nil
}

// Offsets returns the recorded byte offset of every object written so far.
// Entry i belongs to object i+1.
func (w *Writer) Offsets() []int64 {
	return append([]int64(nil), w.offsets...)
}

// Close writes the cross-reference table, the trailer and the end-of-file
// marker, and returns the complete file.  The file ends with "%%EOF", without
// a trailing newline.
func (w *Writer) Close(root Reference) ([]byte, error) {
	if w.closed {
		return nil, ErrClosed
	}
	w.closed = true

	size := len(w.offsets) + 1
	xRefPos := w.buf.Len()
	w.buf.Printf("xref\n0 %d\n", size)
	w.buf.WriteString("0000000000 65535 f \n")
	for _, pos := range w.offsets {
		w.buf.Printf("%010d 00000 n \n", pos)
	}

	trailer := Dict{
		{Key: "Size", Value: Integer(size)},
		{Key: "Root", Value: root},
	}
	w.buf.WriteString("trailer ")
	err := trailer.PDF(&w.buf)
	if err != nil {
		return nil, err
	}
	w.buf.Printf("\nstartxref\n%d\n%%%%EOF", xRefPos)

	return w.buf.Bytes(), nil
}
