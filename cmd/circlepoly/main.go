// Command circlepoly prints the polyline approximating a circle in the XZ
// plane.
//
// Usage:
//
//	circlepoly [-config file.yaml] [-radius r] [-segments n] [-format text|json|svg] [-float32] [-v]
//
// Flags override values read from the configuration file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"honnef.co/go/circlepoly"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "circlepoly:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("circlepoly", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML configuration file")
	radius := fs.Float64("radius", circlepoly.DefaultSpec.Radius, "circle radius")
	segments := fs.Int("segments", circlepoly.DefaultSpec.Segments, "number of segments")
	format := fs.String("format", "text", "output format: text, json or svg")
	single := fs.Bool("float32", false, "compute positions in single precision")
	verbose := fs.Bool("v", false, "enable debug logs")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	_, isFile := stderr.(*os.File)
	logger := newLogger(stderr, level, !isFile)

	cfg := Default()
	if *configPath != "" {
		var err error
		cfg, err = LoadConfig(*configPath)
		if err != nil {
			return err
		}
		logger.Debug("loaded config", "path", *configPath)
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "radius":
			cfg.Radius = *radius
		case "segments":
			cfg.Segments = *segments
		case "format":
			cfg.Format = *format
		case "float32":
			cfg.Float32 = *single
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	spec := cfg.Spec()
	clamped := spec.Clamp()
	if clamped.Radius != spec.Radius {
		logger.Warn("radius clamped", "from", spec.Radius, "to", clamped.Radius)
	}
	if clamped.Segments != spec.Segments {
		logger.Warn("segments clamped", "from", spec.Segments, "to", clamped.Segments)
	}

	var err error
	if cfg.Float32 {
		pts := circlepoly.Generate32(clamped.Radius, clamped.Segments)
		vs := make([][3]float32, len(pts))
		for i, v := range pts {
			vs[i] = v
		}
		err = write(stdout, cfg.Format, clamped, vs)
	} else {
		lr := &circlepoly.LineRenderer{}
		ed := circlepoly.NewEditor(lr)
		if !ed.Set(clamped) {
			ed.Refresh()
		}
		if p := circlepoly.Polyline(lr.Positions()); p.IsInf() || p.IsNaN() {
			logger.Warn("polyline measurements overflow", "radius", clamped.Radius)
		}
		logger.Debug("generated polyline",
			"points", lr.PositionCount(),
			"length", circlepoly.Polyline(lr.Positions()).Length(),
			"max_deviation", clamped.MaxDeviation())
		err = write(stdout, cfg.Format, clamped, rows(lr.Positions()))
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", cfg.Format, err)
	}
	logger.Info("wrote circle", "radius", clamped.Radius, "segments", clamped.Segments, "format", cfg.Format)
	return nil
}
