package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/render"
)

// fragmentSep separates a page name from a block name, as in
// "product/list.html#content".
const fragmentSep = "#"

// TemplateRenderer is a custom Gin HTML renderer that supports layout + partial
// template inheritance and dual-mode operation (debug / release).
//
// In debug mode, templates are re-parsed from the filesystem on every request,
// enabling instant hot-reload during development. In release mode, templates are
// parsed once at startup and served from memory.
//
// Template loading strategy:
//  1. Load all layout templates   (templates/layouts/*.html)
//  2. Load all partial templates  (templates/partials/*.html)
//  3. For each page template, clone the base set (layouts + partials) and parse
//     the page template on top, allowing the page to override blocks defined in layouts.
//
// Page templates use {{ template "base" . }} to invoke the layout, and define
// blocks ({{ define "title" }}, {{ define "content" }}) to fill the layout's
// slots. A name such as "dashboard/index.html#content" executes only the
// "content" block of that page, which is what htmx navigations swap in.
type TemplateRenderer struct {
	templates map[string]*template.Template // page name -> compiled template set (release mode only)
	fs        fs.FS                         // filesystem containing templates/ directory
	funcMap   template.FuncMap
	debug     bool
}

// Compile-time check: TemplateRenderer implements render.HTMLRender.
var _ render.HTMLRender = (*TemplateRenderer)(nil)

// NewTemplateRenderer creates a TemplateRenderer backed by the given filesystem.
//
// Use os.DirFS("web") for debug mode (hot reload from disk) or web.EmbeddedFS
// for release mode. The filesystem must contain a templates/ directory
// structured as:
//
//	templates/
//	  layouts/   – layout templates defining the page skeleton (base.html)
//	  partials/  – reusable partial templates (nav)
//	  <module>/  – page templates organized by module (product/, errors/)
func NewTemplateRenderer(fsys fs.FS, debug bool) (*TemplateRenderer, error) {
	r := &TemplateRenderer{
		fs:      fsys,
		funcMap: templateFuncMap(),
		debug:   debug,
	}

	// Parse once even in debug mode so broken templates fail at startup.
	templates, err := r.parseAllTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	if !debug {
		r.templates = templates
	}

	return r, nil
}

// Instance returns a render.Render that executes the named page template with data.
// The name is the page template path relative to templates/, optionally
// followed by "#block" to render a single block of that page.
func (r *TemplateRenderer) Instance(name string, data any) render.Render {
	page, block, ok := strings.Cut(name, fragmentSep)
	if !ok {
		block = page
	}

	templates := r.templates
	if r.debug {
		var err error
		templates, err = r.parseAllTemplates()
		if err != nil {
			return &HTMLInstance{Name: name, err: err}
		}
	}

	return &HTMLInstance{
		Template: templates[page],
		Name:     block,
		Data:     data,
	}
}

// Has reports whether page (without a "#block" suffix) is a known page template.
func (r *TemplateRenderer) Has(page string) bool {
	templates := r.templates
	if r.debug {
		var err error
		if templates, err = r.parseAllTemplates(); err != nil {
			return false
		}
	}
	_, ok := templates[page]
	return ok
}

// parseAllTemplates walks the templates directory, builds a base template set from
// layouts and partials, then creates a separate compiled template for each page by
// cloning the base and parsing the page on top.
func (r *TemplateRenderer) parseAllTemplates() (map[string]*template.Template, error) {
	layoutFiles, err := fs.Glob(r.fs, "templates/layouts/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob layouts: %w", err)
	}
	partialFiles, err := fs.Glob(r.fs, "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob partials: %w", err)
	}

	base := template.New("").Funcs(r.funcMap)
	baseFiles := append(layoutFiles, partialFiles...)
	for _, f := range baseFiles {
		content, err := fs.ReadFile(r.fs, f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f, err)
		}
		if _, err := base.New(f).Parse(string(content)); err != nil {
			return nil, fmt.Errorf("parse %s: %w", f, err)
		}
	}

	pageFiles, err := r.discoverPageTemplates()
	if err != nil {
		return nil, fmt.Errorf("discover pages: %w", err)
	}

	templates := make(map[string]*template.Template, len(pageFiles))
	for _, pf := range pageFiles {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone base for %s: %w", pf, err)
		}
		content, err := fs.ReadFile(r.fs, pf)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", pf, err)
		}
		name := strings.TrimPrefix(pf, "templates/")
		if _, err := clone.New(name).Parse(string(content)); err != nil {
			return nil, fmt.Errorf("parse %s: %w", pf, err)
		}
		templates[name] = clone
	}

	return templates, nil
}

// discoverPageTemplates finds all .html files under templates/ that are not in
// the layouts/ or partials/ subdirectories.
func (r *TemplateRenderer) discoverPageTemplates() ([]string, error) {
	var pages []string
	err := fs.WalkDir(r.fs, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}
		rel := strings.TrimPrefix(path, "templates/")
		if strings.HasPrefix(rel, "layouts/") || strings.HasPrefix(rel, "partials/") {
			return nil
		}
		pages = append(pages, path)
		return nil
	})
	return pages, err
}

func templateFuncMap() template.FuncMap {
	return template.FuncMap{
		// cell formats one decoded JSON value for a table cell. Nested
		// objects and arrays are shown as compact JSON.
		"cell": func(v any) string {
			switch t := v.(type) {
			case nil:
				return ""
			case string:
				return t
			case json.Number:
				return t.String()
			case float64:
				return strconv.FormatFloat(t, 'f', -1, 64)
			case bool:
				return strconv.FormatBool(t)
			default:
				b, err := json.Marshal(t)
				if err != nil {
					return fmt.Sprint(t)
				}
				return string(b)
			}
		},

		// prettyJSON re-indents a raw JSON document without re-encoding its
		// values; invalid input is returned as-is.
		"prettyJSON": func(s string) string {
			var buf bytes.Buffer
			if err := json.Indent(&buf, []byte(s), "", "  "); err != nil {
				return s
			}
			return buf.String()
		},
	}
}

// HTMLInstance implements gin's render.Render interface for a single template
// execution. It is returned by TemplateRenderer.Instance.
type HTMLInstance struct {
	Template *template.Template
	Name     string
	Data     any
	err      error // set when template parsing failed (debug mode)
}

const htmlContentType = "text/html; charset=utf-8"

// Render writes the template output to the HTTP response writer.
func (h *HTMLInstance) Render(w http.ResponseWriter) error {
	h.WriteContentType(w)
	if h.err != nil {
		return h.err
	}
	if h.Template == nil {
		return fmt.Errorf("template %q not found", h.Name)
	}
	return h.Template.ExecuteTemplate(w, h.Name, h.Data)
}

// WriteContentType sets the Content-Type header to text/html; charset=utf-8
// if it has not already been set.
func (h *HTMLInstance) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = []string{htmlContentType}
	}
}
