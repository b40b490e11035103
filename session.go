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
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
)

// ErrNotFound is returned by a Source if no receipt has the requested ID.
var ErrNotFound = errors.New("receipt not found")

// ErrNotLoaded is returned by Session.Download before a receipt has been
// loaded.
var ErrNotLoaded = errors.New("no receipt loaded")

// FetchError indicates that a Source failed to retrieve a receipt for
// reasons other than the receipt not existing.
type FetchError struct {
	ID  string
	Err error
}

func (err *FetchError) Error() string {
	return "unable to load receipt " + err.ID + ": " + err.Err.Error()
}

func (err *FetchError) Unwrap() error {
	return err.Err
}

// A Source retrieves receipts by ID.  Implementations report unknown IDs
// with an error wrapping ErrNotFound, and all other failures as *FetchError.
type Source interface {
	Receipt(ctx context.Context, id string) (*Receipt, error)
}

// Session follows a single receipt from loading to download.  The first
// successful Load saves the receipt automatically; later loads do not.
// Download saves the loaded receipt whenever it is called.
//
// A Session is safe for concurrent use.
type Session struct {
	Source  Source
	Sink    Sink
	Emitter *Emitter
	Options *Options

	// Logger receives progress messages.  If nil, nothing is logged.
	Logger *slog.Logger

	autoSaved atomic.Bool

	mu      sync.Mutex
	receipt *Receipt
}

// Load retrieves the receipt with the given ID and makes it the current
// receipt of the session.  If this is the first successful load, the receipt
// is saved before Load returns.
//
// Errors from the Source are returned unchanged and leave the automatic save
// pending.
func (s *Session) Load(ctx context.Context, id string) (*Receipt, error) {
	log := s.logger().With("receipt", id)

	r, err := s.Source.Receipt(ctx, id)
	if err != nil {
		log.WarnContext(ctx, "load failed", "err", err)
		return nil, err
	}

	s.mu.Lock()
	s.receipt = r
	s.mu.Unlock()
	log.DebugContext(ctx, "loaded", "items", len(r.Items))

	if s.autoSaved.CompareAndSwap(false, true) {
		err = s.save(ctx, r, "auto")
		if err != nil {
			return r, err
		}
	}
	return r, nil
}

// Download saves the current receipt.
func (s *Session) Download(ctx context.Context) error {
	s.mu.Lock()
	r := s.receipt
	s.mu.Unlock()
	if r == nil {
		return ErrNotLoaded
	}
	return s.save(ctx, r, "manual")
}

func (s *Session) save(ctx context.Context, r *Receipt, trigger string) error {
	name := Filename(r.ID)
	err := s.Emitter.Emit(ctx, s.Sink, name, Encode(r, s.Options))
	if err != nil {
		s.logger().ErrorContext(ctx, "save failed",
			"receipt", r.ID, "trigger", trigger, "err", err)
		return err
	}
	s.logger().InfoContext(ctx, "saved",
		"receipt", r.ID, "trigger", trigger, "file", name)
	return nil
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func (s *Session) logger() *slog.Logger {
	if s.Logger == nil {
		return discard
	}
	return s.Logger
}
