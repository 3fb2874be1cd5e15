// Package router holds the application's page route table: an ordered,
// immutable set of {path, name, view} entries resolved by exact path or by
// route name.
package router

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// ErrUnknownRoute is returned when a route name is not in the table.
var ErrUnknownRoute = errors.New("unknown route")

// View renders the page bound to a route.
type View interface {
	// Template is the page template name relative to templates/,
	// e.g. "product/list.html".
	Template() string
	// Load returns the template data for one render.
	Load(ctx context.Context) (gin.H, error)
}

// Route binds a URL path and a unique name to a view.
type Route struct {
	Path string
	Name string
	View View
}

// Table is an ordered set of routes with unique paths and names.
// A Table is safe for concurrent use; it is never modified after New.
type Table struct {
	routes []Route
	byPath map[string]int
	byName map[string]int
}

// New validates routes and returns a Table preserving their order.
func New(routes ...Route) (*Table, error) {
	if len(routes) == 0 {
		return nil, errors.New("at least one route is required")
	}

	t := &Table{
		routes: make([]Route, 0, len(routes)),
		byPath: make(map[string]int, len(routes)),
		byName: make(map[string]int, len(routes)),
	}

	for i, r := range routes {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			return nil, fmt.Errorf("route at index %d: name is required", i)
		}
		if !strings.HasPrefix(r.Path, "/") {
			return nil, fmt.Errorf("route %q: path %q must start with '/'", name, r.Path)
		}
		if r.View == nil {
			return nil, fmt.Errorf("route %q: view is nil", name)
		}

		path := normalizePath(r.Path)
		if prev, ok := t.byPath[path]; ok {
			return nil, fmt.Errorf("route %q: path %q already bound to route %q", name, path, t.routes[prev].Name)
		}
		if _, ok := t.byName[name]; ok {
			return nil, fmt.Errorf("route %q: duplicate name", name)
		}

		t.byPath[path] = len(t.routes)
		t.byName[name] = len(t.routes)
		t.routes = append(t.routes, Route{Path: path, Name: name, View: r.View})
	}

	return t, nil
}

// Routes returns a copy of the routes in table order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Len returns the number of routes.
func (t *Table) Len() int {
	return len(t.routes)
}

// Lookup returns the route bound to path. A trailing slash is ignored.
func (t *Table) Lookup(path string) (Route, bool) {
	i, ok := t.byPath[normalizePath(path)]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// ByName returns the route with the given name.
func (t *Table) ByName(name string) (Route, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// URLFor returns the path of the named route.
func (t *Table) URLFor(name string) (string, error) {
	r, ok := t.ByName(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoute, name)
	}
	return r.Path, nil
}

func normalizePath(p string) string {
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			return "/"
		}
	}
	return p
}

// staticView is a view without page data.
type staticView struct {
	template string
}

// Static returns a View that renders template with no data.
func Static(template string) View {
	return staticView{template: template}
}

func (v staticView) Template() string { return v.template }

func (v staticView) Load(context.Context) (gin.H, error) { return gin.H{}, nil }
