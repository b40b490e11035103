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

package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"shelfverse.dev/go/receipt"
	"shelfverse.dev/go/receipt/internal/server"
)

// gatedSource holds every lookup until release is closed.
type gatedSource struct {
	started chan struct{}
	release chan struct{}
	r       *receipt.Receipt
}

func (s *gatedSource) Receipt(ctx context.Context, id string) (*receipt.Receipt, error) {
	close(s.started)
	select {
	case <-s.release:
		return s.r, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestServeDrainsRequests(t *testing.T) {
	src := &gatedSource{
		started: make(chan struct{}),
		release: make(chan struct{}),
		r: &receipt.Receipt{
			ID:    "pay_1",
			Items: []receipt.LineItem{{Title: "Clean Code", UnitPrice: 1999, Quantity: 1}},
			Total: 1999,
		},
	}
	s := &server.Server{
		Source:  src,
		Emitter: &receipt.Emitter{TempDir: t.TempDir()},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	srv := &http.Server{Handler: s.Handler()}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	served := make(chan error, 1)
	go func() {
		served <- serve(ctx, srv, ln)
	}()

	type response struct {
		status int
		body   []byte
		err    error
	}
	responses := make(chan response, 1)
	go func() {
		res, err := http.Get("http://" + ln.Addr().String() + "/receipts/pay_1.pdf")
		if err != nil {
			responses <- response{err: err}
			return
		}
		defer res.Body.Close()
		body, err := io.ReadAll(res.Body)
		responses <- response{status: res.StatusCode, body: body, err: err}
	}()

	select {
	case <-src.started:
	case <-time.After(5 * time.Second):
		t.Fatal("request did not arrive")
	}

	cancel()
	select {
	case err := <-served:
		t.Fatalf("serve returned while a request was in flight: %v", err)
	case <-time.After(100 * time.Millisecond):
	}
	close(src.release)

	var res response
	select {
	case res = <-responses:
	case <-time.After(5 * time.Second):
		t.Fatal("no response")
	}
	if res.err != nil {
		t.Fatal(res.err)
	}
	if res.status != http.StatusOK {
		t.Fatalf("status %d", res.status)
	}
	if !bytes.Equal(res.body, receipt.Encode(src.r, nil)) {
		t.Error("response body is incomplete")
	}

	select {
	case err := <-served:
		if err != nil {
			t.Errorf("serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after the last request")
	}
}

func TestServeListenerError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	ln.Close()

	err = serve(context.Background(), &http.Server{}, ln)
	if err == nil {
		t.Error("serve on a closed listener succeeded")
	}
}

func TestRunErrors(t *testing.T) {
	err := run([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")})
	if err == nil {
		t.Error("missing configuration file accepted")
	}

	err = run([]string{"-no-such-flag"})
	if err != errUsage {
		t.Errorf("unknown flag: got %v, want %v", err, errUsage)
	}
}
