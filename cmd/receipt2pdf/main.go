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

// Receipt2pdf converts stored receipt records into PDF files.
//
// Usage:
//
//	receipt2pdf [-config file] [-dir dir] [-o dir] [-j n] id...
//	receipt2pdf [-config file] [-dir dir] -stdout id
//
// For every id, the record <dir>/<id>.yaml (or .yml, .json) is read and the
// receipt is written to receipt-<id>.pdf in the output directory.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"sync/atomic"
	"syscall"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"shelfverse.dev/go/receipt"
	"shelfverse.dev/go/receipt/internal/config"
	"shelfverse.dev/go/receipt/sink"
	"shelfverse.dev/go/receipt/source"
)

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
	flags := flag.NewFlagSet("receipt2pdf", flag.ContinueOnError)
	configFile := flags.String("config", "", "configuration file")
	receiptDir := flags.String("dir", "", "directory containing receipt records")
	outputDir := flags.String("o", "", "output directory")
	toStdout := flags.Bool("stdout", false, "write a single receipt to standard output")
	jobs := flags.Int("j", runtime.GOMAXPROCS(0), "number of receipts to encode in parallel")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: %s [options] id...\n", flags.Name())
		flags.PrintDefaults()
	}
	err := flags.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	} else if err != nil {
		return errUsage
	}

	if flags.NArg() == 0 || *toStdout && flags.NArg() != 1 {
		flags.Usage()
		return errUsage
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}
	if *receiptDir != "" {
		cfg.ReceiptDir = *receiptDir
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	logger := cfg.NewLogger(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src := &source.Dir{Path: cfg.ReceiptDir}
	if *toStdout {
		return writeStdout(ctx, src, flags.Arg(0), cfg.Options())
	}
	return convertAll(ctx, cfg, src, logger, flags.Args(), *jobs)
}

func writeStdout(ctx context.Context, src receipt.Source, id string, opt *receipt.Options) error {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("refusing to write PDF data to a terminal")
	}
	r, err := src.Receipt(ctx, id)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(receipt.Encode(r, opt))
	return err
}

func convertAll(ctx context.Context, cfg *config.Config, src receipt.Source, logger *slog.Logger, ids []string, jobs int) error {
	out := &sink.Dir{Path: cfg.OutputDir}
	emitter := &receipt.Emitter{TempDir: cfg.TempDir}
	opt := cfg.Options()

	var failed atomic.Int32
	g := &errgroup.Group{}
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for _, id := range ids {
		g.Go(func() error {
			s := &receipt.Session{
				Source:  src,
				Sink:    out,
				Emitter: emitter,
				Options: opt,
				Logger:  logger,
			}
			_, err := s.Load(ctx, id)
			if err != nil {
				failed.Add(1)
			}
			return nil
		})
	}
	g.Wait()

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d receipts failed", n, len(ids))
	}
	return nil
}
