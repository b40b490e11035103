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

// Package receipt renders purchase receipts of the ShelfVerse store as PDF
// documents.
//
// [Encode] turns a [Receipt] into the bytes of a self-contained PDF 1.4 file
// showing the receipt as fixed-pitch text, spread over as many pages as
// needed.  Encoding never fails: missing fields are shown as "N/A".
// An [Emitter] hands the result to a [Sink] under the file name returned by
// [Filename], and a [Session] ties loading, automatic saving and on-demand
// downloads together.
package receipt

import "time"

// Receipt is a completed purchase.
type Receipt struct {
	ID              string
	Date            time.Time
	Buyer           string // contact e-mail address
	ShippingAddress string
	Payment         Payment
	Items           []LineItem
	Total           float64
}

// Payment describes how a purchase was paid for.
type Payment struct {
	Method    string
	Status    string
	Reference string
}

// LineItem is one row of a receipt.  A Quantity below 1 is treated as 1.
type LineItem struct {
	Title     string
	UnitPrice float64
	Quantity  int
}

// Amount returns the price of all units of the item.
func (item LineItem) Amount() float64 {
	return item.UnitPrice * float64(item.quantity())
}

func (item LineItem) quantity() int {
	if item.Quantity < 1 {
		return 1
	}
	return item.Quantity
}
