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

import (
	"strconv"

	"seehuhn.de/go/geom/vec"
)

// TextContent returns a content stream which shows one line of text per
// element of lines.  The first line starts at origin, every following line is
// moved by step relative to the previous one.
//
// The lines must already be sanitized, see [Sanitize].
func TextContent(lines []string, font Name, size float64, origin, step vec.Vec2) []byte {
	buf := &Buffer{}
	buf.WriteString("BT\n")
	buf.WriteName(font)
	buf.Printf(" %s Tf\n", num(size))
	buf.Printf("%s %s Td\n", num(origin.X), num(origin.Y))
	for i, line := range lines {
		if i > 0 {
			buf.Printf("%s %s Td ", num(step.X), num(step.Y))
		}
		buf.Printf("(%s) Tj\n", line)
	}
	buf.WriteString("ET\n")
	return buf.Bytes()
}

func num(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
