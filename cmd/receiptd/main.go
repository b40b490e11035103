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

// Receiptd serves receipts as PDF downloads.
//
// Usage:
//
//	receiptd [-config file] [-dir dir] [-listen addr]
//
// The server answers GET /receipts/<id>.pdf with the receipt stored in
// <dir>/<id>.yaml (or .yml, .json), and GET /healthz with "ok".
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shelfverse.dev/go/receipt"
	"shelfverse.dev/go/receipt/internal/config"
	"shelfverse.dev/go/receipt/internal/server"
	"shelfverse.dev/go/receipt/source"
)

// shutdownTimeout bounds how long requests in flight may take to complete
// once a shutdown has been requested.
const shutdownTimeout = 5 * time.Second

var errUsage = errors.New("invalid command line")

func main() {
	err := run(os.Args[1:])
	if errors.Is(err, errUsage) {
		os.Exit(2)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := flag.NewFlagSet("receiptd", flag.ContinueOnError)
	configFile := flags.String("config", "", "configuration file")
	receiptDir := flags.String("dir", "", "directory containing receipt records")
	listen := flags.String("listen", "", "address to listen on")
	err := flags.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	} else if err != nil {
		return errUsage
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}
	if *receiptDir != "" {
		cfg.ReceiptDir = *receiptDir
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	logger := cfg.NewLogger(os.Stderr)

	s := &server.Server{
		Source:  &source.Dir{Path: cfg.ReceiptDir},
		Emitter: &receipt.Emitter{TempDir: cfg.TempDir},
		Options: cfg.Options(),
		Logger:  logger,
	}
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return err
	}
	logger.Info("listening", "addr", ln.Addr().String(), "receipts", cfg.ReceiptDir)
	err = serve(ctx, srv, ln)
	if err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

// serve answers requests on ln until ctx is cancelled.  It then stops
// accepting connections and returns once the requests in flight have
// completed, or shutdownTimeout has passed.
func serve(ctx context.Context, srv *http.Server, ln net.Listener) error {
	done := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		done <- srv.Shutdown(shutdownCtx)
	}()

	err := srv.Serve(ln)
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-done
}
