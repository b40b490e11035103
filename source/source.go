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

// Package source loads receipt records from YAML or JSON files.
//
// A record file looks like this:
//
//	id: pay_Nf81kQ2
//	date: 2026-03-14T10:22:00+05:30
//	buyerEmail: reader@example.com
//	shippingAddress: 221B Baker Street, London
//	payment:
//	  method: razorpay
//	  status: captured
//	  reference: pay_Nf81kQ2
//	items:
//	  - title: Clean Code
//	    price: 1999
//	    quantity: 1
//	total: 1999
//
// JSON files with the same field names are accepted as well.
package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"shelfverse.dev/go/receipt"
)

type record struct {
	ID              string  `yaml:"id"`
	Date            string  `yaml:"date"`
	BuyerEmail      string  `yaml:"buyerEmail"`
	ShippingAddress string  `yaml:"shippingAddress"`
	Payment         payment `yaml:"payment"`
	Items           []item  `yaml:"items"`
	Total           float64 `yaml:"total"`
}

type payment struct {
	Method    string `yaml:"method"`
	Status    string `yaml:"status"`
	Reference string `yaml:"reference"`
}

type item struct {
	Title    string  `yaml:"title"`
	Price    float64 `yaml:"price"`
	Quantity int     `yaml:"quantity"`
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// Decode parses a receipt record.  If the record has no ID, id is used.
func Decode(data []byte, id string) (*receipt.Receipt, error) {
	var rec record
	err := yaml.Unmarshal(data, &rec)
	if err != nil {
		return nil, err
	}
	date, err := parseDate(rec.Date)
	if err != nil {
		return nil, err
	}
	if rec.ID == "" {
		rec.ID = id
	}

	r := &receipt.Receipt{
		ID:              rec.ID,
		Date:            date,
		Buyer:           rec.BuyerEmail,
		ShippingAddress: rec.ShippingAddress,
		Payment: receipt.Payment{
			Method:    rec.Payment.Method,
			Status:    rec.Payment.Status,
			Reference: rec.Payment.Reference,
		},
		Total: rec.Total,
	}
	for _, it := range rec.Items {
		r.Items = append(r.Items, receipt.LineItem{
			Title:     it.Title,
			UnitPrice: it.Price,
			Quantity:  it.Quantity,
		})
	}
	return r, nil
}

// Extensions lists the file name extensions tried by Dir, in order.
var Extensions = []string{".yaml", ".yml", ".json"}

// Dir reads receipts from the files <id>.yaml, <id>.yml or <id>.json in a
// directory.
type Dir struct {
	Path string
}

// Receipt implements the receipt.Source interface.
func (d *Dir) Receipt(ctx context.Context, id string) (*receipt.Receipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, &receipt.FetchError{ID: id, Err: err}
	}
	if id == "" || id != filepath.Base(id) || strings.HasPrefix(id, ".") {
		return nil, fmt.Errorf("%w: %q", receipt.ErrNotFound, id)
	}

	for _, ext := range Extensions {
		data, err := os.ReadFile(filepath.Join(d.Path, id+ext))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		} else if err != nil {
			return nil, &receipt.FetchError{ID: id, Err: err}
		}

		r, err := Decode(data, id)
		if err != nil {
			return nil, &receipt.FetchError{ID: id, Err: err}
		}
		return r, nil
	}
	return nil, fmt.Errorf("%w: %q", receipt.ErrNotFound, id)
}
