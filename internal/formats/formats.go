// Package formats adapts the navigation file formats routeconv understands
// to the nav model.
package formats

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pjot/routeconv/internal/nav"
)

type Format interface {
	Name() string
	Extensions() []string
	ReadFile(path string) ([]*nav.Route, error)
}

// Writer is implemented by formats that can also be written.
type Writer interface {
	Format
	Write(w io.Writer, route *nav.Route) error
}

// MultiWriter is implemented by formats that hold several routes per file.
type MultiWriter interface {
	Writer
	WriteAll(w io.Writer, routes []*nav.Route) error
}

type Registry struct {
	byExt map[string]Format
	all   []Format
}

// NewRegistry registers every known format. encoding applies to .tour input.
func NewRegistry(encoding string) *Registry {
	r := &Registry{byExt: map[string]Format{}}
	r.Register(&Tour{Encoding: encoding})
	r.Register(GPX{})
	r.Register(TCX{})
	r.Register(FIT{})
	return r
}

func (r *Registry) Register(f Format) {
	for _, ext := range f.Extensions() {
		r.byExt[strings.ToLower(ext)] = f
	}
	r.all = append(r.all, f)
}

func (r *Registry) All() []Format {
	return r.all
}

// ByExtension picks the format whose extension is the longest suffix of
// path, so "ride.fit.gz" resolves to FIT.
func (r *Registry) ByExtension(path string) (Format, error) {
	name := strings.ToLower(filepath.Base(path))
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Slice(exts, func(i, j int) bool { return len(exts[i]) > len(exts[j]) })
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return r.byExt[ext], nil
		}
	}
	return nil, fmt.Errorf("no format for %q", path)
}

// Writer returns the format for path if it supports writing.
func (r *Registry) Writer(path string) (Writer, error) {
	f, err := r.ByExtension(path)
	if err != nil {
		return nil, err
	}
	w, ok := f.(Writer)
	if !ok {
		return nil, fmt.Errorf("%s cannot be written", f.Name())
	}
	return w, nil
}
