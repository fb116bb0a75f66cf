package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/cgudrian/adventofcode/internal/cave"
	"github.com/cgudrian/adventofcode/internal/config"
	"github.com/cgudrian/adventofcode/internal/rockpath"
)

type answers struct {
	Abyss int `json:"abyss"`
	Floor int `json:"floor"`
}

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Count grains for both the abyss and the floor variant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoth(cmd, opts)
		},
	}
}

// prepare loads the config, sets up logging and rasterizes the input.
func prepare(cmd *cobra.Command, opts *options) (*config.Config, rockpath.PointSet, error) {
	cfg, err := opts.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := setupLogging(cmd, cfg, opts.verbose); err != nil {
		return nil, nil, err
	}
	log.WithFields(cfg.Fields()).Debug("config")

	rocks, err := readRocks(cmd.InOrStdin(), cfg.Input)
	if err != nil {
		return nil, nil, err
	}
	if lo, hi, ok := rocks.Bounds(); ok {
		log.WithFields(logrus.Fields{
			"rocks": rocks.Len(), "min": lo.String(), "max": hi.String(),
		}).Debug("rock paths rasterized")
	}
	return cfg, rocks, nil
}

func readRocks(stdin io.Reader, path string) (rockpath.PointSet, error) {
	if path == "" || path == "-" {
		return rockpath.Load(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open input: %w", err)
	}
	defer f.Close()
	rocks, err := rockpath.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rocks, nil
}

func simulate(ctx context.Context, cfg *config.Config, rocks rockpath.PointSet, floor bool) (cave.Result, error) {
	variant := "abyss"
	if floor {
		variant = "floor"
	}
	start := time.Now()
	res, err := cave.Simulate(ctx, rocks.All(), cave.Options{
		Inlet:    cfg.Inlet.Point(),
		Floor:    floor,
		MaxDrops: cfg.MaxDrops,
	})
	if err != nil {
		return res, fmt.Errorf("%s variant: %w", variant, err)
	}
	log.WithFields(logrus.Fields{
		"variant": variant,
		"grains":  res.Grains,
		"drops":   res.Drops,
		"bounds":  res.Grid.Bounds().String(),
		"elapsed": time.Since(start).String(),
	}).Info("simulation done")
	return res, nil
}

func runBoth(cmd *cobra.Command, opts *options) error {
	cfg, rocks, err := prepare(cmd, opts)
	if err != nil {
		return err
	}
	ctx, cancel := runContext(cmd.Context(), cfg)
	defer cancel()

	// The variants share nothing but the read-only rock set.
	var ans answers
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := simulate(gCtx, cfg, rocks, false)
		ans.Abyss = res.Grains
		return err
	})
	g.Go(func() error {
		res, err := simulate(gCtx, cfg, rocks, true)
		ans.Floor = res.Grains
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.json {
		return json.NewEncoder(out).Encode(ans)
	}
	fmt.Fprintf(out, "Answer 1: %d\n", ans.Abyss)
	fmt.Fprintf(out, "Answer 2: %d\n", ans.Floor)
	return nil
}
