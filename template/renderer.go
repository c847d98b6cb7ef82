// Package template renders entries through user-supplied Jinja templates.
package template

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/fwojciec/spy"
	"github.com/nikolalohinski/gonja/v2"
	"github.com/nikolalohinski/gonja/v2/config"
	"github.com/nikolalohinski/gonja/v2/exec"
	"github.com/nikolalohinski/gonja/v2/loaders"
)

// Compile-time interface verification.
var (
	_ spy.EntryRenderer = (*Renderer)(nil)
	_ spy.EntryRenderer = (*JSONRenderer)(nil)
)

// Renderer renders entries with a Jinja template. Undefined variables are
// errors and output is never escaped.
type Renderer struct {
	source string
	tmpl   *exec.Template
}

// NewRenderer parses source. A parse failure is reported as EINVALID.
func NewRenderer(source string) (*Renderer, error) {
	tmpl, err := compile(source)
	if err != nil {
		return nil, spy.WrapError(spy.EINVALID, err, "failed to initialise template %q", source)
	}
	return &Renderer{source: source, tmpl: tmpl}, nil
}

func compile(source string) (*exec.Template, error) {
	sum := sha256.Sum256([]byte(source))
	id := "entry-" + hex.EncodeToString(sum[:8])

	root, err := loaders.NewFileSystemLoader("")
	if err != nil {
		return nil, err
	}
	loader, err := loaders.NewShiftedLoader(id, bytes.NewReader([]byte(source)), root)
	if err != nil {
		return nil, err
	}
	return exec.NewTemplate(id, Config(), loader, gonja.DefaultEnvironment)
}

// Config returns the engine settings: strict undefined, no auto-escaping.
func Config() *config.Config {
	cfg := config.New()
	cfg.StrictUndefined = true
	cfg.AutoEscape = false
	return cfg
}

// Render executes the template against the entry's template context.
func (r *Renderer) Render(entry *spy.Entry) (string, error) {
	data, err := entry.TemplateContext()
	if err != nil {
		return "", spy.WrapError(spy.EINTERNAL, err, "failed to build template context")
	}

	out, err := r.tmpl.ExecuteToString(exec.NewContext(data))
	if err != nil {
		return "", spy.WrapError(spy.EINVALID, err, "failed to render template %q for %s", r.source, entry.URL())
	}
	return out, nil
}

// JSONRenderer renders entries as their JSON view on a single line.
type JSONRenderer struct{}

// Render encodes entry as JSON.
func (JSONRenderer) Render(entry *spy.Entry) (string, error) {
	b, err := json.Marshal(entry)
	if err != nil {
		return "", spy.WrapError(spy.EINTERNAL, err, "failed to encode entry")
	}
	return string(b), nil
}
