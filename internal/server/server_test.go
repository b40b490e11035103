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

package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"shelfverse.dev/go/receipt"
)

type stubSource map[string]*receipt.Receipt

func (s stubSource) Receipt(_ context.Context, id string) (*receipt.Receipt, error) {
	if id == "flaky" {
		return nil, &receipt.FetchError{ID: id, Err: errors.New("backend unavailable")}
	}
	r, ok := s[id]
	if !ok {
		return nil, receipt.ErrNotFound
	}
	return r, nil
}

func newServer(t *testing.T) *httptest.Server {
	s := &Server{
		Source: stubSource{
			"pay_1": {
				ID:    "pay_1",
				Items: []receipt.LineItem{{Title: "Clean Code", UnitPrice: 1999, Quantity: 1}},
				Total: 1999,
			},
		},
		Emitter: &receipt.Emitter{TempDir: t.TempDir()},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestServeReceipt(t *testing.T) {
	ts := newServer(t)

	res, err := http.Get(ts.URL + "/receipts/pay_1.pdf")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d: %s", res.StatusCode, body)
	}
	if got := res.Header.Get("Content-Type"); got != receipt.MediaType {
		t.Errorf("Content-Type %q", got)
	}
	if got := res.Header.Get("Content-Disposition"); got != "attachment; filename=receipt-pay_1.pdf" {
		t.Errorf("Content-Disposition %q", got)
	}
	if _, err := uuid.Parse(res.Header.Get("X-Request-Id")); err != nil {
		t.Errorf("bad request ID: %v", err)
	}

	want := receipt.Encode(&receipt.Receipt{
		ID:    "pay_1",
		Items: []receipt.LineItem{{Title: "Clean Code", UnitPrice: 1999, Quantity: 1}},
		Total: 1999,
	}, nil)
	if !bytes.Equal(body, want) {
		t.Error("response body differs from Encode output")
	}
}

func TestServeErrors(t *testing.T) {
	ts := newServer(t)

	cases := map[string]int{
		"/receipts/missing.pdf": http.StatusNotFound,
		"/receipts/flaky.pdf":   http.StatusBadGateway,
		"/receipts/pay_1":       http.StatusNotFound,
		"/receipts/.pdf":        http.StatusNotFound,
	}
	for path, status := range cases {
		res, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatal(err)
		}
		res.Body.Close()
		if res.StatusCode != status {
			t.Errorf("%s: status %d, want %d", path, res.StatusCode, status)
		}
	}

	res, err := http.Post(ts.URL+"/receipts/pay_1.pdf", "text/plain", nil)
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("POST: status %d", res.StatusCode)
	}
}

func TestHealth(t *testing.T) {
	ts := newServer(t)
	res, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Errorf("status %d", res.StatusCode)
	}
}
