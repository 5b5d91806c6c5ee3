package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pjot/routeconv/internal/formats"
)

var logger = zap.NewNop()

type Options struct {
	Verbose  bool               `short:"v" long:"verbose" description:"Log debug output"`
	Encoding string             `short:"e" long:"encoding" description:"Character set of .tour input" default:"utf-8"`
	Config   func(string) error `long:"config" description:"INI file with default options"`
}

var opts Options

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// setup runs before a command executes, once all options are parsed.
func setup() (*formats.Registry, error) {
	l, err := newLogger(opts.Verbose)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	logger = l
	return formats.NewRegistry(opts.Encoding), nil
}

func newParser() *flags.Parser {
	parser := flags.NewParser(&opts, flags.Default)
	opts.Config = func(path string) error {
		return flags.NewIniParser(parser).ParseFile(path)
	}
	parser.AddCommand("convert", "Convert a route file",
		"Reads INPUT and writes one of its routes to the file given with --out. The output format follows the extension of --out.",
		&convertCommand{})
	parser.AddCommand("info", "Describe route files",
		"Prints format, routes and position counts of each file.",
		&infoCommand{})
	parser.AddCommand("render", "Draw route files as PNG",
		"Draws every route of every INPUT as a white line on black.",
		&renderCommand{})
	return parser
}

func main() {
	_, err := newParser().Parse()
	logger.Sync()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
