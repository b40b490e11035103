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

package layout

// PageCapacity is the default number of lines per page.
const PageCapacity = 42

// Paginate breaks lines into pages of at most capacity lines each.  The
// pages share the backing array of lines; concatenating them gives back the
// original sequence.
//
// The result always contains at least one page, which is empty if lines is.
// A capacity below 1 selects [PageCapacity].
func Paginate(lines []string, capacity int) [][]string {
	if capacity < 1 {
		capacity = PageCapacity
	}
	if len(lines) == 0 {
		return [][]string{{}}
	}

	pages := make([][]string, 0, (len(lines)+capacity-1)/capacity)
	for len(lines) > capacity {
		pages = append(pages, lines[:capacity:capacity])
		lines = lines[capacity:]
	}
	return append(pages, lines)
}
