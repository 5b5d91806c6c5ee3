package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pjot/routeconv/internal/nav"
	"github.com/pjot/routeconv/internal/render"
)

type renderCommand struct {
	Height int    `long:"height" description:"Height of output image" default:"500"`
	Width  int    `long:"width" description:"Width of output image" default:"1000"`
	Out    string `short:"o" long:"out" description:"Output filename" required:"true"`
	Args   struct {
		Inputs []string `positional-arg-name:"INPUT"`
	} `positional-args:"yes" required:"yes"`
}

func (c *renderCommand) Execute(args []string) error {
	registry, err := setup()
	if err != nil {
		return err
	}

	var routes []*nav.Route
	for _, path := range c.Args.Inputs {
		f, err := registry.ByExtension(path)
		if err != nil {
			return err
		}
		rs, err := f.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		logger.Debug("Read", zap.String("path", path), zap.Int("routes", len(rs)))
		routes = append(routes, rs...)
	}

	if err := render.DrawFile(c.Out, routes, c.Width, c.Height); err != nil {
		return err
	}
	logger.Info("Rendered", zap.String("out", c.Out), zap.Int("width", c.Width), zap.Int("height", c.Height))
	return nil
}
