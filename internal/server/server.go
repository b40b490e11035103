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

// Package server serves receipts as PDF downloads over HTTP.
package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"shelfverse.dev/go/receipt"
	"shelfverse.dev/go/receipt/sink"
)

// Server answers "GET /receipts/{id}.pdf" with the encoded receipt, sent as
// an attachment.
type Server struct {
	Source  receipt.Source
	Emitter *receipt.Emitter
	Options *receipt.Options
	Logger  *slog.Logger // defaults to slog.Default()
}

func (s *Server) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /receipts/{file}", s.serveReceipt)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n"))
	})
	return mux
}

func (s *Server) serveReceipt(w http.ResponseWriter, req *http.Request) {
	start := time.Now()
	reqID := uuid.NewString()
	w.Header().Set("X-Request-Id", reqID)
	log := s.logger().With("request", reqID)

	id, ok := strings.CutSuffix(req.PathValue("file"), ".pdf")
	if !ok || id == "" {
		http.NotFound(w, req)
		return
	}
	log = log.With("receipt", id)

	ctx := req.Context()
	r, err := s.Source.Receipt(ctx, id)
	var fetchErr *receipt.FetchError
	switch {
	case errors.Is(err, receipt.ErrNotFound):
		log.InfoContext(ctx, "receipt not found")
		http.Error(w, "Receipt not found.", http.StatusNotFound)
		return
	case errors.As(err, &fetchErr):
		log.ErrorContext(ctx, "fetch failed", "err", err)
		http.Error(w, "Unable to load receipt.", http.StatusBadGateway)
		return
	case err != nil:
		log.ErrorContext(ctx, "load failed", "err", err)
		http.Error(w, "Unable to load receipt.", http.StatusInternalServerError)
		return
	}

	out := &sink.HTTP{W: w, R: req, ModTime: r.Date}
	err = s.Emitter.Save(ctx, out, r, s.Options)
	if err != nil {
		// headers may be gone already, so only log
		log.ErrorContext(ctx, "send failed", "err", err)
		return
	}
	log.InfoContext(ctx, "receipt sent", "duration", time.Since(start))
}
