// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/treach/builder"
	"github.com/katalvlaran/treach/reach"
)

type genOptions struct {
	kind     string
	vertices int
	edges    int
	tmax     int
	p        float64
	seed     int64
	step     int
	output   string
}

func newGenCmd() *cobra.Command {
	var o genOptions
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a synthetic temporal edge list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctor, err := o.constructor()
			if err != nil {
				return err
			}
			el, err := builder.BuildEdges([]builder.BuilderOption{
				builder.WithSeed(o.seed),
				builder.WithTimeStep(o.step),
			}, ctor)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if o.output != "" {
				f, err := os.Create(o.output)
				if err != nil {
					return fmt.Errorf("gen: %w", err)
				}
				defer f.Close()
				w = f
			}
			_, err = el.WriteTo(w)
			return err
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&o.kind, "kind", "random", "topology: random|sparse|path|star|burst")
	fs.IntVarP(&o.vertices, "vertices", "n", 100, "number of vertices")
	fs.IntVarP(&o.edges, "edges", "m", 1000, "number of edges (random)")
	fs.IntVar(&o.tmax, "tmax", 100, "largest timestamp (random, sparse, burst)")
	fs.Float64Var(&o.p, "p", 0.05, "edge probability (sparse)")
	fs.Int64Var(&o.seed, "seed", 1, "random seed")
	fs.IntVar(&o.step, "step", 1, "timestamp step (path, star)")
	fs.StringVarP(&o.output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func (o genOptions) constructor() (builder.Constructor, error) {
	if o.step < 0 {
		return nil, fmt.Errorf("%w: gen: step %d < 0", reach.ErrInvalidConfiguration, o.step)
	}
	switch o.kind {
	case "random":
		return builder.RandomTemporal(o.vertices, o.edges, o.tmax), nil
	case "sparse":
		return builder.RandomSparse(o.vertices, o.p, o.tmax), nil
	case "path":
		return builder.Path(o.vertices), nil
	case "star":
		return builder.Star(o.vertices), nil
	case "burst":
		return builder.Burst(o.vertices, o.tmax), nil
	default:
		return nil, fmt.Errorf("%w: gen: unknown kind %q", reach.ErrInvalidConfiguration, o.kind)
	}
}
