// Package main provides the sheet binary that derives a fighter's effective
// characteristics, armour save and weapon profiles from a snapshot file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/gangsheet/internal/config"
	"github.com/cory-johannsen/gangsheet/internal/game/fighter"
	"github.com/cory-johannsen/gangsheet/internal/observability"
	"github.com/cory-johannsen/gangsheet/internal/rules"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("sheet: %v", err)
	}
}

// run parses args, loads configuration and content, and writes the derived
// sheet for one snapshot to out.
func run(args []string, out io.Writer) error {
	start := time.Now()

	fs := flag.NewFlagSet("sheet", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to configuration file (empty = defaults and environment only)")
	snapshotPath := fs.String("snapshot", "", "path to a fighter snapshot (.json, .yaml or .yml)")
	contentDir := fs.String("content", "", "directory of reference tables; overrides content.dir")
	output := fs.String("output", "", "sheet rendering: json or text; overrides sheet.output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *snapshotPath == "" {
		return errors.New("-snapshot is required")
	}

	v, err := config.NewViperFromFile(*configPath)
	if err != nil {
		return err
	}
	if *contentDir != "" {
		v.Set("content.dir", *contentDir)
	}
	if *output != "" {
		v.Set("sheet.output", *output)
	}
	cfg, err := config.LoadFromViper(v)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	engine, err := rules.FromConfig(cfg.Content, logger)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(*snapshotPath)
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}
	f, err := fighter.DecodeSnapshot(data, fighter.FormatFromPath(*snapshotPath))
	if err != nil {
		return fmt.Errorf("decoding %s: %w", *snapshotPath, err)
	}

	sheet := engine.Sheet(f)
	switch cfg.Sheet.Output {
	case "json":
		err = sheet.WriteJSON(out)
	default:
		err = sheet.WriteText(out)
	}
	if err != nil {
		return fmt.Errorf("writing sheet: %w", err)
	}

	logger.Debug("sheet derived",
		zap.String("fighter", f.Name),
		zap.Int("effects", f.Effects.Len()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}
