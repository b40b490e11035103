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

// Package config reads the configuration file shared by the receipt
// command line tools.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"shelfverse.dev/go/receipt"
	"shelfverse.dev/go/receipt/pdf"
)

// Config is the contents of a configuration file.  Missing values keep
// their defaults.
type Config struct {
	ReceiptDir string `yaml:"receiptDir"`
	OutputDir  string `yaml:"outputDir"`
	TempDir    string `yaml:"tempDir"`
	Listen     string `yaml:"listen"`
	LogLevel   string `yaml:"logLevel"`

	Layout Layout `yaml:"layout"`
}

// Layout holds the receipt layout settings.
type Layout struct {
	Brand         string  `yaml:"brand"`
	Title         string  `yaml:"title"`
	Currency      string  `yaml:"currency"`
	DateLayout    string  `yaml:"dateLayout"`
	AddressWidth  int     `yaml:"addressWidth"`
	TitleWidth    int     `yaml:"titleWidth"`
	PageCapacity  int     `yaml:"pageCapacity"`
	Transliterate bool    `yaml:"transliterate"`
	Paper         string  `yaml:"paper"` // "letter" or "a4"
	Font          string  `yaml:"font"`
	FontSize      float64 `yaml:"fontSize"`
	Leading       float64 `yaml:"leading"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ReceiptDir: ".",
		OutputDir:  ".",
		Listen:     "localhost:8080",
		LogLevel:   "info",
	}
}

// Load reads the configuration file at path.  An empty path gives the
// default configuration.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	err = cfg.validate()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

var fixedPitch = map[string]bool{
	"Courier":             true,
	"Courier-Bold":        true,
	"Courier-Oblique":     true,
	"Courier-BoldOblique": true,
}

func (cfg *Config) validate() error {
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return err
	}
	if _, err := paper(cfg.Layout.Paper); err != nil {
		return err
	}
	if f := cfg.Layout.Font; f != "" && !fixedPitch[f] {
		return fmt.Errorf("font %q is not a fixed-pitch standard font", f)
	}
	if cfg.Layout.FontSize < 0 || cfg.Layout.Leading < 0 {
		return fmt.Errorf("negative font size or leading")
	}
	return nil
}

func paper(name string) (rect.Rect, error) {
	switch strings.ToLower(name) {
	case "", "letter":
		return pdf.Letter, nil
	case "a4":
		return rect.Rect{URx: 595.276, URy: 841.890}, nil
	}
	return rect.Rect{}, fmt.Errorf("unknown paper size %q", name)
}

// Options converts the layout settings into encoder options.
func (cfg *Config) Options() *receipt.Options {
	l := &cfg.Layout
	box, err := paper(l.Paper)
	if err != nil {
		box = pdf.Letter
	}
	page := &pdf.PageOptions{
		MediaBox: box,
		BaseFont: pdf.Name(l.Font),
		FontSize: l.FontSize,
	}
	if box != pdf.Letter {
		page.Origin = vec.Vec2{X: 50, Y: box.URy - 2}
	}
	if l.Leading > 0 {
		page.LineStep = vec.Vec2{X: 0, Y: -l.Leading}
	}
	return &receipt.Options{
		Brand:         l.Brand,
		Title:         l.Title,
		Currency:      l.Currency,
		DateLayout:    l.DateLayout,
		AddressWidth:  l.AddressWidth,
		TitleWidth:    l.TitleWidth,
		PageCapacity:  l.PageCapacity,
		Transliterate: l.Transliterate,
		Page:          page,
	}
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	err := level.UnmarshalText([]byte(s))
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

// NewLogger returns a text logger writing to w at the configured level.
func (cfg *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
