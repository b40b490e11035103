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

package receipt

import (
	"shelfverse.dev/go/receipt/layout"
	"shelfverse.dev/go/receipt/pdf"
)

// Encode renders the receipt as a PDF file.  If opt is nil, the default
// options are used.
//
// Every call works on its own buffers, so Encode can be called concurrently.
func Encode(r *Receipt, opt *Options) []byte {
	o := opt.withDefaults()
	pages := layout.Paginate(Lines(r, &o), o.PageCapacity)
	data, err := pdf.Encode(pages, o.Page)
	if err != nil {
		// Build numbers the objects itself, so the writer cannot reject them.
		panic("receipt: " + err.Error())
	}
	return data
}
