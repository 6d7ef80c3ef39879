// Package theme provides named chrome presets for floating windows and a
// loader for user-supplied theme files.
package theme

import "sync"

// DefaultName is the preset applied when a window names no theme, or
// names one the registry does not know.
const DefaultName = "default"

// Theme describes the chrome colors for one preset. Color values are
// anything lipgloss accepts: ANSI indexes ("63") or hex ("#7aa2f7").
type Theme struct {
	Name     string `yaml:"name"`
	Border   string `yaml:"border"`
	HeaderFg string `yaml:"header_fg"`
	HeaderBg string `yaml:"header_bg"`
	BodyFg   string `yaml:"body_fg"`
	BodyBg   string `yaml:"body_bg"`
	FooterBg string `yaml:"footer_bg"`
}

// builtins are always available; user theme files may shadow them by name.
var builtins = map[string]Theme{
	"default": {
		Name:     "default",
		Border:   "245",
		HeaderFg: "231",
		HeaderBg: "24",
		BodyFg:   "252",
		BodyBg:   "235",
		FooterBg: "24",
	},
	"dark": {
		Name:     "dark",
		Border:   "240",
		HeaderFg: "250",
		HeaderBg: "236",
		BodyFg:   "248",
		BodyBg:   "233",
		FooterBg: "236",
	},
	"light": {
		Name:     "light",
		Border:   "250",
		HeaderFg: "235",
		HeaderBg: "253",
		BodyFg:   "236",
		BodyBg:   "255",
		FooterBg: "253",
	},
	"accent": {
		Name:     "accent",
		Border:   "141",
		HeaderFg: "231",
		HeaderBg: "97",
		BodyFg:   "252",
		BodyBg:   "235",
		FooterBg: "97",
	},
}

// Registry resolves theme names to presets. Lookups never fail: unknown
// names resolve to the default preset, matching the cosmetic-only failure
// mode of the window layer.
type Registry struct {
	mu     sync.RWMutex
	themes map[string]Theme
}

// NewRegistry returns a registry seeded with the built-in presets.
func NewRegistry() *Registry {
	r := &Registry{themes: make(map[string]Theme, len(builtins))}
	for name, t := range builtins {
		r.themes[name] = t
	}
	return r
}

// Lookup returns the preset for name, falling back to the default preset
// when the name is unknown or empty.
func (r *Registry) Lookup(name string) Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if t, ok := r.themes[name]; ok {
		return t
	}
	return r.themes[DefaultName]
}

// Has reports whether name resolves to a real preset (not the fallback).
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.themes[name]
	return ok
}

// Names returns all registered preset names, unsorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	return names
}

// put registers or replaces a preset.
func (r *Registry) put(t Theme) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.themes[t.Name] = t
}
