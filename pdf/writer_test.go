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
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriterOffsets(t *testing.T) {
	w := NewWriter()
	objs := []*Object{
		{ID: 1, Dict: Dict{{Key: "Type", Value: Name("Catalog")}, {Key: "Pages", Value: Reference(2)}}},
		{ID: 2, Dict: Dict{{Key: "Type", Value: Name("Pages")}, {Key: "Kids", Value: Array{}}, {Key: "Count", Value: Integer(0)}}},
		{ID: 3, Stream: []byte("BT\nET\n")},
	}
	var want []int64
	for _, obj := range objs {
		want = append(want, w.buf.Len())
		err := w.WriteObject(obj)
		if err != nil {
			t.Fatal(err)
		}
	}
	if d := cmp.Diff(want, w.Offsets()); d != "" {
		t.Errorf("offsets (-want +got):\n%s", d)
	}

	data, err := w.Close(CatalogID)
	if err != nil {
		t.Fatal(err)
	}
	for i, pos := range want {
		prefix := fmt.Sprintf("%d 0 obj", i+1)
		if !bytes.HasPrefix(data[pos:], []byte(prefix)) {
			t.Errorf("object %d: found %q at offset %d", i+1, data[pos:pos+10], pos)
		}
	}
}

func TestWriterOutput(t *testing.T) {
	w := NewWriter()
	err := w.WriteObject(&Object{ID: 1, Dict: Dict{{Key: "Type", Value: Name("Catalog")}}})
	if err != nil {
		t.Fatal(err)
	}
	err = w.WriteObject(&Object{ID: 2, Dict: Dict{{Key: "Filter", Value: nil}}, Stream: []byte("abc\n")})
	if err != nil {
		t.Fatal(err)
	}
	data, err := w.Close(CatalogID)
	if err != nil {
		t.Fatal(err)
	}

	obj1 := "1 0 obj << /Type /Catalog >> endobj\n"
	obj2 := "2 0 obj << /Filter null /Length 4 >> stream\nabc\nendstream\nendobj\n"
	xRefPos := len(Header) + len(obj1) + len(obj2)
	want := Header + obj1 + obj2 +
		"xref\n0 3\n" +
		"0000000000 65535 f \n" +
		"0000000009 00000 n \n" +
		fmt.Sprintf("%010d 00000 n \n", len(Header)+len(obj1)) +
		"trailer << /Size 3 /Root 1 0 R >>\n" +
		"startxref\n" + strconv.Itoa(xRefPos) + "\n%%EOF"
	if d := cmp.Diff(want, string(data)); d != "" {
		t.Errorf("output (-want +got):\n%s", d)
	}
}

func TestXRefEntries(t *testing.T) {
	data, err := Encode([][]string{{"a"}, {"b"}, {"c"}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)

	m := regexp.MustCompile(`startxref\n(\d+)\n%%EOF$`).FindStringSubmatch(s)
	if m == nil {
		t.Fatal("missing startxref")
	}
	xRefPos, _ := strconv.Atoi(m[1])
	if !strings.HasPrefix(s[xRefPos:], "xref\n0 10\n") {
		t.Fatalf("no xref section at %d: %q", xRefPos, s[xRefPos:xRefPos+12])
	}

	table := s[xRefPos+len("xref\n0 10\n"):]
	for i := 0; i < 10; i++ {
		entry := table[20*i : 20*(i+1)]
		if entry[19] != '\n' || entry[18] != ' ' {
			t.Errorf("entry %d is not 20 bytes: %q", i, entry)
		}
		if i == 0 {
			if entry != "0000000000 65535 f \n" {
				t.Errorf("free list head is %q", entry)
			}
			continue
		}
		pos, err := strconv.Atoi(entry[:10])
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(s[pos:], fmt.Sprintf("%d 0 obj", i)) {
			t.Errorf("entry %d points at %q", i, s[pos:pos+8])
		}
	}
	if !strings.HasPrefix(table[200:], "trailer << /Size 10 /Root 1 0 R >>\n") {
		t.Errorf("unexpected trailer: %q", table[200:])
	}
}

func TestWriterOrder(t *testing.T) {
	w := NewWriter()
	err := w.WriteObject(&Object{ID: 2})
	var orderErr *ObjectOrderError
	if !errors.As(err, &orderErr) {
		t.Fatalf("got %v, want ObjectOrderError", err)
	}
	if orderErr.Want != 1 || orderErr.Got != 2 {
		t.Errorf("got %+v", orderErr)
	}

	err = w.WriteObject(&Object{ID: 1})
	if err != nil {
		t.Fatal(err)
	}
	err = w.WriteObject(&Object{ID: 1})
	if !errors.As(err, &orderErr) {
		t.Errorf("duplicate ID: got %v", err)
	}
}

func TestWriterClosed(t *testing.T) {
	w := NewWriter()
	_, err := w.Close(CatalogID)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Close(CatalogID); !errors.Is(err, ErrClosed) {
		t.Errorf("second Close: got %v", err)
	}
	if err := w.WriteObject(&Object{ID: 1}); !errors.Is(err, ErrClosed) {
		t.Errorf("WriteObject after Close: got %v", err)
	}
}

func TestStreamLengthBytes(t *testing.T) {
	w := NewWriter()
	data := []byte("(\xc3\xa9) Tj\n") // two bytes for one rune
	err := w.WriteObject(&Object{ID: 1, Stream: data})
	if err != nil {
		t.Fatal(err)
	}
	out, err := w.Close(1)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(out, []byte("<< /Length 8 >>")) {
		t.Errorf("wrong length in %q", out)
	}
}
