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
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"shelfverse.dev/go/receipt/layout"
	"shelfverse.dev/go/receipt/pdf"
)

// Options control the layout of a receipt.  The zero value, and a nil
// pointer, select the defaults documented for each field.
type Options struct {
	// Brand is the first line of the receipt.  The default is "SHELFVERSE".
	Brand string

	// Title is the second line of the receipt.  The default is
	// "DIGITAL PURCHASE RECEIPT".
	Title string

	// Currency is the prefix of all amounts.  The default is "INR".
	Currency string

	// DateLayout is the time.Format layout for the receipt date.  The
	// default is "02/01/2006".
	DateLayout string

	// AddressWidth is the wrap width of the shipping address.  The default
	// is 38.
	AddressWidth int

	// TitleWidth is the wrap width of item titles.  The default is 24.
	TitleWidth int

	// PageCapacity is the maximum number of lines per page.  The default is
	// [layout.PageCapacity].
	PageCapacity int

	// Transliterate replaces accented letters by their unaccented base
	// letters before sanitization.  If unset, every non-ASCII character is
	// shown as '?'.
	Transliterate bool

	// Page describes the page geometry and font.  If nil, the defaults of
	// [pdf.PageOptions] are used.
	Page *pdf.PageOptions
}

// The defaults below are shared with the command line tools.
const (
	DefaultBrand        = "SHELFVERSE"
	DefaultTitle        = "DIGITAL PURCHASE RECEIPT"
	DefaultCurrency     = "INR"
	DefaultDateLayout   = "02/01/2006"
	DefaultAddressWidth = 38
	DefaultTitleWidth   = 24
)

func (opt *Options) withDefaults() Options {
	var res Options
	if opt != nil {
		res = *opt
	}
	if res.Brand == "" {
		res.Brand = DefaultBrand
	}
	if res.Title == "" {
		res.Title = DefaultTitle
	}
	if res.Currency == "" {
		res.Currency = DefaultCurrency
	}
	if res.DateLayout == "" {
		res.DateLayout = DefaultDateLayout
	}
	if res.AddressWidth < 1 {
		res.AddressWidth = DefaultAddressWidth
	}
	if res.TitleWidth < 1 {
		res.TitleWidth = DefaultTitleWidth
	}
	if res.PageCapacity < 1 {
		res.PageCapacity = layout.PageCapacity
	}
	return res
}

const (
	ruleWidth   = 40
	labelWidth  = 16
	qtyWidth    = 2
	amountWidth = 13
	totalWidth  = 22
)

var (
	doubleRule  = strings.Repeat("=", ruleWidth)
	singleRule  = strings.Repeat("-", ruleWidth)
	itemsHeader = "ITEM                    QTY      AMOUNT"

	// continuation lines of a labelled value start below the value
	valueIndent = strings.Repeat(" ", labelWidth+2)
)

// Lines returns the text lines of the receipt, in the order in which they
// are printed.  Every line is already sanitized for use in a PDF string.
func Lines(r *Receipt, opt *Options) []string {
	o := opt.withDefaults()
	f := &formatter{opt: &o}
	if r == nil {
		r = &Receipt{}
	}

	f.add(o.Brand)
	f.add(o.Title)
	f.add(doubleRule)

	f.field("Receipt ID", r.ID)
	date := ""
	if !r.Date.IsZero() {
		date = r.Date.Format(o.DateLayout)
	}
	f.field("Date", date)
	f.field("Buyer Email", r.Buyer)

	address := layout.Wrap(f.text(r.ShippingAddress), o.AddressWidth)
	f.add(label("Shipping Addr") + address[0])
	for _, line := range address[1:] {
		f.add(valueIndent + line)
	}

	f.field("Payment Method", r.Payment.Method)
	f.field("Payment Ref", r.Payment.Reference)

	f.add(singleRule)
	f.add(itemsHeader)
	f.add(singleRule)

	for _, item := range r.Items {
		chunks := layout.Wrap(f.text(item.Title), o.TitleWidth)
		f.add(layout.PadRight(chunks[0], o.TitleWidth) +
			"  x" + layout.PadLeft(strconv.Itoa(item.quantity()), qtyWidth) +
			"  " + layout.PadLeft(f.money(item.Amount()), amountWidth))
		for _, chunk := range chunks[1:] {
			f.add(chunk)
		}
	}

	f.add(doubleRule)
	// at least one space between label and amount, even for huge totals
	f.add("TOTAL PAID " + layout.PadLeft(f.money(r.Total), totalWidth-1))

	return f.lines
}

type formatter struct {
	opt   *Options
	lines []string
}

// add appends a finished line.  This is the only place where sanitization
// happens.
func (f *formatter) add(line string) {
	f.lines = append(f.lines, pdf.Sanitize(line))
}

func (f *formatter) field(name, value string) {
	value = strings.TrimSpace(f.text(value))
	if value == "" {
		value = layout.Placeholder
	}
	f.add(label(name) + value)
}

// text prepares a raw field value for layout.
func (f *formatter) text(s string) string {
	if !f.opt.Transliterate {
		return s
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	res, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return res
}

func (f *formatter) money(x float64) string {
	return f.opt.Currency + " " + formatAmount(x)
}

// formatAmount formats x with two decimals.  Rounding works on the exact
// binary value of x, with halves rounded away from zero: 0.125 gives "0.13",
// but 1.005, which is stored as slightly less, gives "1.00".
func formatAmount(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		x = 0
	}
	return new(big.Rat).SetFloat64(x).FloatString(2)
}

func label(name string) string {
	return layout.PadRight(name, labelWidth) + ": "
}
