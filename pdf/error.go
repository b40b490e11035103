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
	"errors"
	"strconv"
)

// ErrClosed is returned when a Writer is used after Close.
var ErrClosed = errors.New("pdf: writer is closed")

// ObjectOrderError indicates that objects were not written in ascending,
// gap-free ID order.
type ObjectOrderError struct {
	Want int
	Got  int
}

func (err *ObjectOrderError) Error() string {
	return "pdf: expected object " + strconv.Itoa(err.Want) +
		", got object " + strconv.Itoa(err.Got)
}
