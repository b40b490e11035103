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

// Package sink provides destinations for finished receipt documents.
package sink

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Dir stores documents as files in a directory.  Files are written under a
// temporary name and renamed once complete, so that readers never see a
// partial file.
type Dir struct {
	Path string
	Perm os.FileMode // defaults to 0o644
}

// Save implements the receipt.Sink interface.
func (d *Dir) Save(ctx context.Context, name, _ string, content io.ReadSeeker) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if name != filepath.Base(name) {
		return fmt.Errorf("invalid file name %q", name)
	}

	fd, err := os.CreateTemp(d.Path, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := fd.Name()
	defer func() {
		if err != nil {
			fd.Close()
			os.Remove(tmpName)
		}
	}()

	_, err = io.Copy(fd, content)
	if err != nil {
		return err
	}
	perm := d.Perm
	if perm == 0 {
		perm = 0o644
	}
	err = fd.Chmod(perm)
	if err != nil {
		return err
	}
	err = fd.Close()
	if err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	return os.Rename(tmpName, filepath.Join(d.Path, name))
}

// HTTP sends documents as a download in response to an HTTP request.  Browsers
// show a save dialog for the response, using the suggested file name.
type HTTP struct {
	W http.ResponseWriter
	R *http.Request

	// ModTime is the modification time reported to the client.  If zero,
	// no Last-Modified header is sent.
	ModTime time.Time
}

// Save implements the receipt.Sink interface.
func (h *HTTP) Save(ctx context.Context, name, mediaType string, content io.ReadSeeker) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	hdr := h.W.Header()
	hdr.Set("Content-Type", mediaType)
	hdr.Set("Content-Disposition",
		mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	hdr.Set("X-Content-Type-Options", "nosniff")
	http.ServeContent(h.W, h.R, name, h.ModTime, content)
	return nil
}

// Document is a document captured by a Memory sink.
type Document struct {
	Name      string
	MediaType string
	Data      []byte
}

// Memory keeps all saved documents in memory.  It is safe for concurrent
// use.
type Memory struct {
	mu   sync.Mutex
	docs []Document
}

// Save implements the receipt.Sink interface.
func (m *Memory) Save(ctx context.Context, name, mediaType string, content io.ReadSeeker) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.docs = append(m.docs, Document{Name: name, MediaType: mediaType, Data: data})
	m.mu.Unlock()
	return nil
}

// Documents returns the documents saved so far, in order.
func (m *Memory) Documents() []Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Document(nil), m.docs...)
}
