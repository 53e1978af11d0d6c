package theme

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultKey is the reserved identifier of the fallback theme.
const DefaultKey = "default"

// Role names a styled surface of the profile page.
type Role string

const (
	RolePage        Role = "page"
	RoleCard        Role = "card"
	RoleAvatar      Role = "avatar"
	RoleName        Role = "name"
	RoleBio         Role = "bio"
	RoleLinksButton Role = "links_button"
	RoleFooter      Role = "footer"
)

var roles = [...]Role{RolePage, RoleCard, RoleAvatar, RoleName, RoleBio, RoleLinksButton, RoleFooter}

var (
	// ErrMissingDefault is returned when a registry lacks the "default" entry.
	ErrMissingDefault = errors.New("theme registry has no default entry")
	// ErrDuplicateKey is returned when two definitions share a key.
	ErrDuplicateKey = errors.New("duplicate theme key")
	// ErrEmptyKey is returned for a definition without a key.
	ErrEmptyKey = errors.New("empty theme key")
)

// Definition is the static description a Record is built from.
type Definition struct {
	Key    string
	Label  string
	Values map[Role]string
}

// Record is a resolved theme. Records are shared between callers and expose no
// way to change them.
type Record struct {
	key    string
	label  string
	values map[Role]string
}

// Key returns the registry identifier of the theme.
func (r *Record) Key() string { return r.key }

// Label returns the human readable theme name.
func (r *Record) Label() string { return r.label }

// Value returns the class list for a role, or "" when the theme leaves it unset.
func (r *Record) Value(role Role) string { return r.values[role] }

// Roles returns a copy of every role value defined by the theme.
func (r *Record) Roles() map[Role]string {
	out := make(map[Role]string, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// Option represents a selectable theme exposed to the UI.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Registry maps theme identifiers to records. It is read-only once built.
type Registry struct {
	records map[string]*Record
	keys    []string
}

// NewRegistry validates the definitions and builds a registry from them.
func NewRegistry(defs ...Definition) (*Registry, error) {
	records := make(map[string]*Record, len(defs))
	for _, def := range defs {
		if def.Key == "" {
			return nil, fmt.Errorf("%w (label %q)", ErrEmptyKey, def.Label)
		}
		if _, exists := records[def.Key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, def.Key)
		}
		values := make(map[Role]string, len(def.Values))
		for role, value := range def.Values {
			values[role] = value
		}
		label := def.Label
		if label == "" {
			label = def.Key
		}
		records[def.Key] = &Record{key: def.Key, label: label, values: values}
	}
	if _, ok := records[DefaultKey]; !ok {
		return nil, ErrMissingDefault
	}

	keys := make([]string, 0, len(records))
	for key := range records {
		if key != DefaultKey {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	keys = append([]string{DefaultKey}, keys...)

	return &Registry{records: records, keys: keys}, nil
}

// MustRegistry is NewRegistry for static data; it panics on invalid definitions.
func MustRegistry(defs ...Definition) *Registry {
	registry, err := NewRegistry(defs...)
	if err != nil {
		panic(fmt.Sprintf("theme: %v", err))
	}
	return registry
}

// Resolve returns the record registered under key, or the default record when
// key is not registered. Matching is exact.
func (r *Registry) Resolve(key string) *Record {
	if record, ok := r.records[key]; ok {
		return record
	}
	return r.records[DefaultKey]
}

// Lookup reports whether key is registered without falling back.
func (r *Registry) Lookup(key string) (*Record, bool) {
	record, ok := r.records[key]
	return record, ok
}

// Default returns the fallback record.
func (r *Registry) Default() *Record {
	return r.records[DefaultKey]
}

// Keys lists registered identifiers, default first and the rest sorted.
func (r *Registry) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Options exposes the available theme selections for rendering in a form control.
func (r *Registry) Options() []Option {
	options := make([]Option, 0, len(r.keys))
	for _, key := range r.keys {
		options = append(options, Option{Value: key, Label: r.records[key].label})
	}
	return options
}

var builtin = MustRegistry(builtinDefinitions()...)

// Builtin returns the registry holding the themes shipped with linkshelf.
func Builtin() *Registry { return builtin }

// Resolve looks key up in the built-in registry, falling back to the default theme.
func Resolve(key string) *Record { return builtin.Resolve(key) }

// Default returns the built-in fallback theme.
func Default() *Record { return builtin.Default() }

// Options lists the built-in themes for the theme picker.
func Options() []Option { return builtin.Options() }
