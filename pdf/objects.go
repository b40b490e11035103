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
	"fmt"
	"io"
	"strconv"
)

// Native is a PDF value which can appear inside an object body.  Only the
// handful of types needed for text-only documents are implemented: Array,
// Dict, Integer, Name, Number and Reference.
type Native interface {
	// PDF writes the PDF file representation of the value to w.
	PDF(w io.Writer) error
}

// Integer represents an integer constant in a PDF file.
type Integer int64

// PDF implements the Native interface.
func (x Integer) PDF(w io.Writer) error {
	_, err := io.WriteString(w, strconv.FormatInt(int64(x), 10))
	return err
}

// Number represents a real number in a PDF file.  Integral values are
// written without a decimal point, so that 612 stays "612".
type Number float64

// PDF implements the Native interface.
func (x Number) PDF(w io.Writer) error {
	_, err := io.WriteString(w, strconv.FormatFloat(float64(x), 'f', -1, 64))
	return err
}

// Name represents a name object in a PDF file.
type Name string

// PDF implements the Native interface.
func (x Name) PDF(w io.Writer) error {
	_, err := w.Write(x.appendTo(nil))
	return err
}

// appendTo appends the encoded name, including the leading slash, to dst.
func (x Name) appendTo(dst []byte) []byte {
	dst = append(dst, '/')
	for _, c := range []byte(x) {
		if c < 0x21 || c > 0x7e || c == '#' || isDelimiter(c) {
			dst = fmt.Appendf(dst, "#%02x", c)
		} else {
			dst = append(dst, c)
		}
	}
	return dst
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

// Reference refers to the indirect object with the given number.  All
// objects written by this package use generation 0.
type Reference int

// PDF implements the Native interface.
func (x Reference) PDF(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%d 0 R", int(x))
	return err
}

// Array represents an array in a PDF file.
type Array []Native

// PDF implements the Native interface.
func (x Array) PDF(w io.Writer) error {
	_, err := io.WriteString(w, "[")
	if err != nil {
		return err
	}
	for i, val := range x {
		if i > 0 {
			_, err = io.WriteString(w, " ")
			if err != nil {
				return err
			}
		}
		if val == nil {
			_, err = io.WriteString(w, "null")
		} else {
			err = val.PDF(w)
		}
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "]")
	return err
}

// DictEntry is a single key/value pair of a Dict.
type DictEntry struct {
	Key   Name
	Value Native
}

// Dict represents a dictionary in a PDF file.  Unlike a map, the entries are
// written in the order given, which keeps the output byte-for-byte
// reproducible.
type Dict []DictEntry

// Get returns the value stored under key, or nil if there is none.
func (x Dict) Get(key Name) Native {
	for _, e := range x {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}

// PDF implements the Native interface.
func (x Dict) PDF(w io.Writer) error {
	_, err := io.WriteString(w, "<<")
	if err != nil {
		return err
	}
	for _, e := range x {
		_, err = io.WriteString(w, " ")
		if err != nil {
			return err
		}
		err = e.Key.PDF(w)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, " ")
		if err != nil {
			return err
		}
		if e.Value == nil {
			_, err = io.WriteString(w, "null")
		} else {
			err = e.Value.PDF(w)
		}
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, " >>")
	return err
}

// Object is an indirect object, ready to be written by a Writer.
//
// If Stream is non-nil, the object is a stream object and the writer appends
// the /Length entry to Dict.
type Object struct {
	ID     int
	Dict   Dict
	Stream []byte
}

// Ref returns a reference to the object.
func (obj *Object) Ref() Reference {
	return Reference(obj.ID)
}
