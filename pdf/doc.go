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

// Package pdf writes minimal PDF 1.4 files consisting of fixed-pitch text.
//
// A document is a list of indirect objects which are written, in order of
// their object numbers, by a [Writer].  The writer records the byte offset of
// every object in an append-only [Buffer] and emits the cross-reference table
// and trailer on Close:
//
//	w := pdf.NewWriter()
//	for _, obj := range pdf.Build(pages, nil) {
//	    err := w.WriteObject(obj)
//	    ...
//	}
//	data, err := w.Close(pdf.CatalogID)
//
// Fonts are never embedded; pages refer to one of the standard fixed-pitch
// fonts.  Compression and encryption are not supported.
package pdf
