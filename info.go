package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pjot/routeconv/internal/formats"
)

type infoCommand struct {
	Args struct {
		Inputs []string `positional-arg-name:"INPUT"`
	} `positional-args:"yes" required:"yes"`
}

func (c *infoCommand) Execute(args []string) error {
	registry, err := setup()
	if err != nil {
		return err
	}
	for _, path := range c.Args.Inputs {
		if err := describe(os.Stdout, registry, path); err != nil {
			return err
		}
	}
	return nil
}

func describe(w io.Writer, registry *formats.Registry, path string) error {
	f, err := registry.ByExtension(path)
	if err != nil {
		return err
	}
	routes, err := f.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	fmt.Fprintf(w, "%s: %s, %d routes\n", path, f.Name(), len(routes))
	for i, r := range routes {
		name := r.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(w, "  %d %s: %s, %d positions\n", i, r.Characteristics, name, len(r.Positions))
	}

	// tour files are address books, list the addresses
	if t, ok := f.(*formats.Tour); ok {
		route, err := t.ReadTour(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, p := range route.Positions {
			loc := p.Location()
			fmt.Fprintf(w, "    %.5f,%.5f %s\n", loc.Lat, loc.Lng, p.Address().FormattedAddress)
		}
	}
	return nil
}
