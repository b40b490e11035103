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
	"fmt"
	"io"
	"os"
	"strings"
)

// MediaType is the MIME type of encoded receipts.
const MediaType = "application/pdf"

// Filename returns the suggested file name for the receipt with the given
// ID, "receipt-<id>.pdf".  Characters which cannot appear in a file name
// are replaced by '_'.
func Filename(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		id = "N/A"
	}
	id = strings.Map(func(r rune) rune {
		switch {
		case r < 0x20 || r == 0x7f:
			return '_'
		case strings.ContainsRune(`/\:*?"<>|`, r):
			return '_'
		}
		return r
	}, id)
	return "receipt-" + id + ".pdf"
}

// A Sink accepts a finished document, for example by storing it in a file or
// by sending it to a web browser as a download.
//
// Content is only valid until Save returns.
type Sink interface {
	Save(ctx context.Context, name, mediaType string, content io.ReadSeeker) error
}

// Emitter passes encoded receipts to a Sink.  The bytes are exposed through
// a temporary file, which is removed again before Emit returns.
type Emitter struct {
	// TempDir is the directory for temporary files.  If empty, the default
	// directory for temporary files is used.
	TempDir string
}

// Emit hands data to sink under the given file name.
func (e *Emitter) Emit(ctx context.Context, sink Sink, name string, data []byte) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := ""
	if e != nil {
		dir = e.TempDir
	}
	fd, err := os.CreateTemp(dir, "receipt-*.pdf")
	if err != nil {
		return fmt.Errorf("emit %s: %w", name, err)
	}
	defer func() {
		err = errors.Join(err, fd.Close(), os.Remove(fd.Name()))
	}()

	_, err = fd.Write(data)
	if err != nil {
		return fmt.Errorf("emit %s: %w", name, err)
	}
	_, err = fd.Seek(0, io.SeekStart)
	if err != nil {
		return fmt.Errorf("emit %s: %w", name, err)
	}

	err = sink.Save(ctx, name, MediaType, fd)
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

// Save encodes r and emits it under the file name derived from its ID.
func (e *Emitter) Save(ctx context.Context, sink Sink, r *Receipt, opt *Options) error {
	id := ""
	if r != nil {
		id = r.ID
	}
	return e.Emit(ctx, sink, Filename(id), Encode(r, opt))
}
