package elsql

import (
	"io/fs"
	"strings"
)

// Bundle is an immutable, named collection of parsed fragments plus
// the dialect config used to render them. The zero value is not
// useful; build one with Parse or Of.
type Bundle struct {
	fragments map[string]*NameFragment
	order     []string
	config    Config
}

// Parse builds a Bundle from one or more already-read resource bodies,
// given in layer order: later resources override fragments of the same
// name defined by earlier ones. Each resource is parsed independently
// before merging, so a parse error in resource i always reports that
// resource's own index.
func Parse(cfg Config, resources ...string) (*Bundle, error) {
	if cfg == nil {
		cfg = DefaultConfig{}
	}
	fragments := make(map[string]*NameFragment)
	var order []string
	seen := make(map[string]bool)

	for i, content := range resources {
		names, err := ParseResource(cfg, i, content)
		if err != nil {
			return nil, err
		}
		for name, frag := range names {
			fragments[name] = frag
			if !seen[name] {
				seen[name] = true
				order = append(order, name)
			}
		}
	}

	return &Bundle{fragments: fragments, order: order, config: cfg}, nil
}

// Of loads a bundle the way a long-lived service typically does: a
// base resource "<typeIdentifier>.elsql" from fsys, layered with an
// optional dialect overlay "<typeIdentifier>-<config.Name()>.elsql"
// when present. typeIdentifier is a simple resource name such as
// "orders"; a path or an explicit ".elsql" suffix is tolerated and
// normalized away, so callers can pass through a filename they already
// have in hand without stripping it themselves.
func Of(fsys fs.FS, cfg Config, typeIdentifier string) (*Bundle, error) {
	if cfg == nil {
		cfg = DefaultConfig{}
	}
	typeIdentifier = simpleResourceName(typeIdentifier)
	base := typeIdentifier + ".elsql"
	baseContent, err := readResource(fsys, base)
	if err != nil {
		return nil, &ResourceNotFoundError{Name: base}
	}

	resources := []string{baseContent}

	overlay := typeIdentifier + "-" + cfg.Name() + ".elsql"
	if overlayContent, err := readResource(fsys, overlay); err == nil {
		resources = append(resources, overlayContent)
	}

	return Parse(cfg, resources...)
}

func readResource(fsys fs.FS, name string) (string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GetSQL renders the named fragment. With no params argument,
// rendering uses an empty parameter source, so any fragment needing a
// variable fails with MissingVariableError.
func (b *Bundle) GetSQL(name string, params ...ParamSource) (string, error) {
	var src ParamSource = EmptyParams{}
	if len(params) > 0 && params[0] != nil {
		src = params[0]
	}
	if mp, ok := src.(*MapParams); ok && mp.IsEmpty() {
		src = EmptyParams{}
	}
	return render(b, name, src)
}

// WithConfig returns a new Bundle sharing this one's fragment map but
// rendering against cfg instead. The original Bundle is unaffected.
func (b *Bundle) WithConfig(cfg Config) *Bundle {
	return &Bundle{fragments: b.fragments, order: b.order, config: cfg}
}

// Config returns the bundle's active dialect config.
func (b *Bundle) Config() Config {
	return b.config
}

// Names returns the bundle's fragment names in first-seen layering
// order, for callers that want to enumerate a bundle's contents.
func (b *Bundle) Names() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Has reports whether name is defined in the bundle.
func (b *Bundle) Has(name string) bool {
	_, ok := b.fragments[name]
	return ok
}

// simpleResourceName strips any directory and .elsql extension from a
// path, mirroring how Of derives base/overlay filenames.
func simpleResourceName(path string) string {
	path = strings.TrimSuffix(path, ".elsql")
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		path = path[idx+1:]
	}
	return path
}
