// Package render turns a template name and a small set of string parameters
// into an HTML body.
//
// Three templates exist: "index" (no parameters), "color_block" (color) and
// "message" (message). They are embedded in the binary and can be replaced at
// runtime by pointing the renderer at a directory holding files with the same
// names (index.html, color_block.html, message.html).
package render

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/exp/slices"
)

// Template names.
const (
	Index      = "index"
	ColorBlock = "color_block"
	Message    = "message"
)

// Names lists every template a Renderer knows about.
var Names = []string{Index, ColorBlock, Message}

// ErrUnknownTemplate is returned when Render is called with a name outside Names.
var ErrUnknownTemplate = errors.New("unknown template")

//go:embed templates/*.html
var embedded embed.FS

// Renderer executes the named HTML templates.
// Safe for concurrent use once constructed.
type Renderer struct {
	tmpl *template.Template
}

// New loads templates from dir, or the embedded set when dir is empty.
func New(dir string) (*Renderer, error) {
	if dir == "" {
		sub, err := fs.Sub(embedded, "templates")
		if err != nil {
			return nil, err
		}
		return NewFromFS(sub)
	}
	return NewFromFS(os.DirFS(dir))
}

// Funcs are available to every template, including ones loaded from a
// directory.
var Funcs = template.FuncMap{
	"cssColor": CSSColor,
}

// cssBreakers are substrings that could end the declaration, open a block,
// leave the attribute or pull in a resource.
var cssBreakers = []string{";", "{", "}", "<", ">", "\"", "'", "\\", "\n", "\r", "/*", "*/"}

// CSSColor returns color as template.CSS when it cannot escape a single
// declaration value, so colors like "rgb(0 0 0 / 50%)" reach the style
// attribute unchanged. Anything else is returned as a plain string and goes
// through html/template's CSS filter.
func CSSColor(color string) any {
	lower := strings.ToLower(color)
	for _, b := range cssBreakers {
		if strings.Contains(lower, b) {
			return color
		}
	}
	if strings.Contains(lower, "url(") || strings.Contains(lower, "expression(") {
		return color
	}
	return template.CSS(color)
}

// NewFromFS loads "<name>.html" for every name in Names from fsys.
func NewFromFS(fsys fs.FS) (*Renderer, error) {
	root := template.New("swatch").Option("missingkey=zero").Funcs(Funcs)
	for _, name := range Names {
		data, err := fs.ReadFile(fsys, name+".html")
		if err != nil {
			return nil, fmt.Errorf("read template %s: %w", name, err)
		}
		if _, err := root.New(name).Parse(string(data)); err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
	}
	return &Renderer{tmpl: root}, nil
}

// MustNew is like New but panics on error.
func MustNew(dir string) *Renderer {
	r, err := New(dir)
	if err != nil {
		panic(err)
	}
	return r
}

// Render writes the named template to w with params as its data.
// A nil params map is treated as empty.
func (r *Renderer) Render(w io.Writer, name string, params map[string]string) error {
	if !slices.Contains(Names, name) {
		return fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	if params == nil {
		params = map[string]string{}
	}
	if err := r.tmpl.ExecuteTemplate(w, name, params); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}
