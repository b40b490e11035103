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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Letter is the US Letter paper size, in PDF units.
var Letter = rect.Rect{URx: 612, URy: 792}

// Fixed object numbers of the document skeleton.  Page objects follow the
// font, and the content streams follow the last page object.
const (
	CatalogID = 1
	PagesID   = 2
	FontID    = 3
	firstPage = 4
)

// PageOptions describes the layout shared by all pages of a document.
type PageOptions struct {
	// MediaBox is the page size.  The default is Letter.
	MediaBox rect.Rect

	// BaseFont is one of the fixed-pitch standard fonts.  The default is
	// "Courier".
	BaseFont Name

	// FontSize is the font size in PDF units.  The default is 12.
	FontSize float64

	// Origin is the position of the first line on each page.  The default
	// is (50, 790).
	Origin vec.Vec2

	// LineStep is the offset from one line to the next.  The default is
	// (0, -16).
	LineStep vec.Vec2
}

// fontResource is the name under which every page refers to the font.
const fontResource Name = "F1"

func (opt *PageOptions) withDefaults() PageOptions {
	var res PageOptions
	if opt != nil {
		res = *opt
	}
	if res.MediaBox == (rect.Rect{}) {
		res.MediaBox = Letter
	}
	if res.BaseFont == "" {
		res.BaseFont = "Courier"
	}
	if res.FontSize <= 0 {
		res.FontSize = 12
	}
	if res.Origin == (vec.Vec2{}) {
		res.Origin = vec.Vec2{X: 50, Y: 790}
	}
	if res.LineStep == (vec.Vec2{}) {
		res.LineStep = vec.Vec2{X: 0, Y: -16}
	}
	return res
}

// Build returns the objects of a document showing the given pages of text,
// in ascending ID order.  For n pages, the objects are the catalog (1), the
// page tree root (2), the font (3), the page objects 4 to n+3 and the
// content streams n+4 to 2n+3, where content stream i belongs to page i.
//
// The lines must already be sanitized, see [Sanitize].  If pages is empty, a
// single blank page is produced.
func Build(pages [][]string, opt *PageOptions) []*Object {
	o := opt.withDefaults()
	if len(pages) == 0 {
		pages = [][]string{nil}
	}
	n := len(pages)

	pageID := func(i int) int { return firstPage + i }
	contentID := func(i int) int { return firstPage + n + i }

	objs := make([]*Object, 0, 3+2*n)

	objs = append(objs, &Object{
		ID: CatalogID,
		Dict: Dict{
			{Key: "Type", Value: Name("Catalog")},
			{Key: "Pages", Value: Reference(PagesID)},
		},
	})

	kids := make(Array, n)
	for i := range pages {
		kids[i] = Reference(pageID(i))
	}
	objs = append(objs, &Object{
		ID: PagesID,
		Dict: Dict{
			{Key: "Type", Value: Name("Pages")},
			{Key: "Kids", Value: kids},
			{Key: "Count", Value: Integer(n)},
		},
	})

	objs = append(objs, &Object{
		ID: FontID,
		Dict: Dict{
			{Key: "Type", Value: Name("Font")},
			{Key: "Subtype", Value: Name("Type1")},
			{Key: "BaseFont", Value: o.BaseFont},
		},
	})

	box := o.MediaBox
	mediaBox := Array{Number(box.LLx), Number(box.LLy), Number(box.URx), Number(box.URy)}
	for i := range pages {
		objs = append(objs, &Object{
			ID: pageID(i),
			Dict: Dict{
				{Key: "Type", Value: Name("Page")},
				{Key: "Parent", Value: Reference(PagesID)},
				{Key: "MediaBox", Value: mediaBox},
				{Key: "Contents", Value: Reference(contentID(i))},
				{Key: "Resources", Value: Dict{
					{Key: "Font", Value: Dict{
						{Key: fontResource, Value: Reference(FontID)},
					}},
				}},
			},
		})
	}

	for i, lines := range pages {
		objs = append(objs, &Object{
			ID:     contentID(i),
			Stream: TextContent(lines, fontResource, o.FontSize, o.Origin, o.LineStep),
		})
	}

	return objs
}

// Encode builds the document for the given pages and serializes it.
func Encode(pages [][]string, opt *PageOptions) ([]byte, error) {
	w := NewWriter()
	for _, obj := range Build(pages, opt) {
		err := w.WriteObject(obj)
		if err != nil {
			return nil, err
		}
	}
	return w.Close(CatalogID)
}
