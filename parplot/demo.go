// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/parplot/parbar"
	"github.com/spf13/cobra"
)

var demoDomain = parbar.Domain{
	"Issue Type":  parbar.Levels("Material", "Process"),
	"Disposition": parbar.Levels("Rework", "Reject", "Conceded"),
	"Issue Code":  parbar.Levels("Quality Control", "Production Planning", "Rental", "Shipping"),
	"Cost":        parbar.Interval(0, 25000),
}

// demoTable returns n random quality issues.
func demoTable(n int, rng *rand.Rand) *table.Table {
	choose := func(name string) []string {
		levels := demoDomain[name].Levels
		seq := make([]string, n)
		for i := range seq {
			seq[i] = levels[rng.Intn(len(levels))]
		}
		return seq
	}
	cost := demoDomain["Cost"]
	costs := make([]float64, n)
	for i := range costs {
		costs[i] = cost.Min + rng.Float64()*(cost.Max-cost.Min)
	}

	return new(table.Builder).
		Add("Issue Type", choose("Issue Type")).
		Add("Disposition", choose("Disposition")).
		Add("Issue Code", choose("Issue Code")).
		Add("Cost", costs).
		Done()
}

// demoPlot lays out the demo's bars: issue types feed a hub next to
// the dispositions, which lead to issue codes and finally cost.
func demoPlot(rng *rand.Rand) (*parbar.Plot, error) {
	p := parbar.New(demoDomain).SetRand(rng)
	for _, rows := range []int{1, 2, 1, 1} {
		if _, err := p.AddColumn(rows); err != nil {
			return nil, err
		}
	}
	for _, b := range []struct {
		col, row int
		kind     parbar.BarKind
		variable string
	}{
		{0, 0, parbar.Discrete, "Issue Type"},
		{1, 0, parbar.Dummy, ""},
		{1, 1, parbar.Discrete, "Disposition"},
		{2, 0, parbar.Discrete, "Issue Code"},
		{3, 0, parbar.Continuous, "Cost"},
	} {
		if _, err := p.AddBar(b.col, b.row, b.kind, b.variable); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func newDemoCmd() *cobra.Command {
	var (
		out  output
		n    int
		seed int64
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Draw a plot of random quality issues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
				log.Printf("seed %d", seed)
			}
			rng := rand.New(rand.NewSource(seed))
			p, err := demoPlot(rng)
			if err != nil {
				return err
			}
			if err := p.Link(demoTable(n, rng)); err != nil {
				return err
			}
			return out.write(p, cmd.OutOrStdout())
		},
	}
	out.addFlags(cmd)
	cmd.Flags().IntVarP(&n, "count", "n", 50, "number of random observations")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random `seed` (default: time-based)")
	return cmd
}
