// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command parplot draws parallel bar plots.
//
// parplot render reads a plot description (JSON, YAML, or msgpack; see
// package plotfile) and writes the plot. The output format follows
// the output file's extension: .svg is written directly, and .png,
// .jpg, .pdf, .eps, and .tif are drawn with gonum/plot. With no -o
// flag, render writes SVG to stdout.
//
// parplot demo draws a plot of randomly generated quality issues.
//
// parplot serve runs an HTTP server that renders JSON plot
// descriptions POSTed to /render as SVG.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
)

func main() {
	log.SetPrefix("parplot: ")
	log.SetFlags(0)

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "parplot",
		Short:         "Draw parallel bar plots",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(os.Stdout)

	root.AddCommand(newRenderCmd())
	root.AddCommand(newDemoCmd())
	root.AddCommand(newServeCmd())
	return root
}
