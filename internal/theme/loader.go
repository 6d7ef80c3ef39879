package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDir reads every *.yaml theme file in dir into the registry. The
// file's base name becomes the preset name unless the file sets one
// explicitly. A missing directory is not an error; the built-ins simply
// remain the full preset set.
func (r *Registry) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read themes directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		if err := r.LoadFile(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile reads a single theme file into the registry.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read theme file %s: %w", path, err)
	}

	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("failed to parse theme file %s: %w", path, err)
	}
	if t.Name == "" {
		t.Name = strings.TrimSuffix(filepath.Base(path), ".yaml")
	}

	// Unset colors inherit from the default preset so partial theme
	// files stay usable.
	def := r.Lookup(DefaultName)
	if t.Border == "" {
		t.Border = def.Border
	}
	if t.HeaderFg == "" {
		t.HeaderFg = def.HeaderFg
	}
	if t.HeaderBg == "" {
		t.HeaderBg = def.HeaderBg
	}
	if t.BodyFg == "" {
		t.BodyFg = def.BodyFg
	}
	if t.BodyBg == "" {
		t.BodyBg = def.BodyBg
	}
	if t.FooterBg == "" {
		t.FooterBg = def.FooterBg
	}

	r.put(t)
	return nil
}
