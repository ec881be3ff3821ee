// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"log"
	"net/http"

	"github.com/aclements/parplot/internal/plotfile"
	"github.com/aclements/parplot/parbar/svgcanvas"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
)

// maxBody limits the size of a POSTed description.
const maxBody = "8M"

type renderHandler struct{}

func (h *renderHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.health)
	e.POST("/render", h.render)
}

func (h *renderHandler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// render draws the JSON plot description in the request body as SVG.
// Descriptions must carry their data inline.
func (h *renderHandler) render(c echo.Context) error {
	f, err := plotfile.Decode(c.Request().Body, "json")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if f.CSV != "" {
		return echo.NewHTTPError(http.StatusBadRequest, "csv references are not allowed; send data inline")
	}
	p, err := f.Plot()
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	width, height := defaultWidth, defaultHeight
	if f.Width > 0 {
		width = f.Width
	}
	if f.Height > 0 {
		height = f.Height
	}
	var buf bytes.Buffer
	canvas := svgcanvas.New(&buf, width, height)
	if err := p.Draw(canvas, f.PlotPadding()); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if err := canvas.Close(); err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/svg+xml", buf.Bytes())
}

func newServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(maxBody))
	(&renderHandler{}).RegisterRoutes(e)
	return e
}

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve plot rendering over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := newServer()
			e.Use(middleware.Logger())
			log.Printf("serving on %s", addr)
			return e.Start(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "listen on `address`")
	return cmd
}
