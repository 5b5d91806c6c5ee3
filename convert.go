package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/pjot/routeconv/internal/formats"
	"github.com/pjot/routeconv/internal/nav"
)

// allRoutes is the --route default: every route if the output format holds
// several, the first one otherwise.
const allRoutes = -1

type convertCommand struct {
	Out   string `short:"o" long:"out" description:"Output file" required:"true"`
	Route int    `short:"r" long:"route" description:"Index of the route to write, all routes by default where the output format allows" default:"-1"`
	Force bool   `short:"f" long:"force" description:"Overwrite an existing output file"`
	Args  struct {
		Input string `positional-arg-name:"INPUT"`
	} `positional-args:"yes" required:"yes"`
}

func (c *convertCommand) Execute(args []string) error {
	registry, err := setup()
	if err != nil {
		return err
	}

	in, err := registry.ByExtension(c.Args.Input)
	if err != nil {
		return err
	}
	out, err := registry.Writer(c.Out)
	if err != nil {
		return err
	}

	if src, ok := in.(*formats.Tour); ok {
		if dst, ok := out.(*formats.Tour); ok {
			return c.copyTour(src, dst)
		}
	}

	logger.Debug("Reading", zap.String("path", c.Args.Input), zap.String("format", in.Name()))
	routes, err := in.ReadFile(c.Args.Input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.Args.Input, err)
	}
	selected, err := c.selectRoutes(routes, out)
	if err != nil {
		return err
	}

	err = c.writeOutput(func(w io.Writer) error {
		if multi, ok := out.(formats.MultiWriter); ok {
			return multi.WriteAll(w, selected)
		}
		return out.Write(w, selected[0])
	})
	if err != nil {
		return err
	}

	for _, route := range selected {
		logger.Info("Converted",
			zap.String("from", c.Args.Input),
			zap.String("to", c.Out),
			zap.String("route", route.Name),
			zap.Int("positions", len(route.Positions)))
	}
	return nil
}

func (c *convertCommand) selectRoutes(routes []*nav.Route, out formats.Writer) ([]*nav.Route, error) {
	if len(routes) == 0 {
		return nil, fmt.Errorf("%s holds no routes", c.Args.Input)
	}
	if c.Route == allRoutes {
		if _, ok := out.(formats.MultiWriter); ok {
			return routes, nil
		}
		return routes[:1], nil
	}
	if c.Route < 0 || c.Route >= len(routes) {
		return nil, fmt.Errorf("%s has %d routes, no route %d", c.Args.Input, len(routes), c.Route)
	}
	return routes[c.Route : c.Route+1], nil
}

// copyTour keeps every vendor field, which a detour through nav.Route drops.
func (c *convertCommand) copyTour(src, dst *formats.Tour) error {
	if c.Route > 0 {
		return fmt.Errorf("%s has 1 route, no route %d", c.Args.Input, c.Route)
	}
	route, err := src.ReadTour(c.Args.Input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.Args.Input, err)
	}
	if err := c.writeOutput(func(w io.Writer) error { return dst.WriteTour(w, route) }); err != nil {
		return err
	}
	logger.Info("Copied",
		zap.String("from", c.Args.Input),
		zap.String("to", c.Out),
		zap.String("route", route.Name),
		zap.Int("positions", len(route.Positions)))
	return nil
}

var errExists = errors.New("already exists")

// writeOutput refuses to replace an existing file unless --force is given.
func (c *convertCommand) writeOutput(write func(io.Writer) error) error {
	flag := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if c.Force {
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(c.Out, flag, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%s %w, use --force to overwrite", c.Out, errExists)
		}
		return err
	}

	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", c.Out, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
